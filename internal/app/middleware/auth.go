package middleware

import (
	"net/http"
	"strings"

	"medconsult/internal/app/ds"
	"medconsult/internal/app/pkg/auth"

	"github.com/gin-gonic/gin"
)

const (
	UserIDKey      = "user_id"
	EmailKey       = "email"
	UserTypeKey    = "user_type"
	IsSuperuserKey = "is_superuser"
)

// AuthService bundles the two credential resolvers: bearer JWT and the
// Redis-backed session cookie.
type AuthService struct {
	JWT     *auth.JWTService
	Session *auth.SessionService
}

// AuthMiddleware resolves the caller's identity from a bearer token or a
// session cookie and puts it on the gin context.
func AuthMiddleware(authSvc *AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			claims, err := authSvc.JWT.Validate(tokenString)
			if err == nil {
				setIdentity(c, claims.UserID, claims.Email, claims.UserType, claims.IsSuperuser)
				c.Next()
				return
			}
		}

		sessionID, err := c.Cookie("session_id")
		if err == nil && sessionID != "" {
			sessionData, err := authSvc.Session.Get(c.Request.Context(), sessionID)
			if err == nil && sessionData != nil {
				setIdentity(c, sessionData.UserID, sessionData.Email, sessionData.UserType, sessionData.IsSuperuser)
				// Sliding expiry on every authenticated request
				_ = authSvc.Session.Extend(c.Request.Context(), sessionID)
				c.Next()
				return
			}
		}

		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		c.Abort()
	}
}

func setIdentity(c *gin.Context, userID uint, email, userType string, isSuperuser bool) {
	c.Set(UserIDKey, userID)
	c.Set(EmailKey, email)
	c.Set(UserTypeKey, userType)
	c.Set(IsSuperuserKey, isSuperuser)
}

// RequireDoctor passes doctors and superusers.
func RequireDoctor() gin.HandlerFunc {
	return requireRole(ds.UserTypeDoctor)
}

// RequirePatient passes patients and superusers.
func RequirePatient() gin.HandlerFunc {
	return requireRole(ds.UserTypePatient)
}

func requireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if IsCurrentUserSuperuser(c) {
			c.Next()
			return
		}
		userType, exists := c.Get(UserTypeKey)
		if !exists || userType.(string) != role {
			c.JSON(http.StatusForbidden, gin.H{"error": "the user does not have the right privileges"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireSuperuser passes only superusers.
func RequireSuperuser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsCurrentUserSuperuser(c) {
			c.JSON(http.StatusForbidden, gin.H{"error": "not enough permissions"})
			c.Abort()
			return
		}
		c.Next()
	}
}

func GetCurrentUserID(c *gin.Context) (uint, bool) {
	userID, exists := c.Get(UserIDKey)
	if !exists {
		return 0, false
	}
	return userID.(uint), true
}

func GetCurrentUserType(c *gin.Context) (string, bool) {
	userType, exists := c.Get(UserTypeKey)
	if !exists {
		return "", false
	}
	return userType.(string), true
}

func IsCurrentUserSuperuser(c *gin.Context) bool {
	isSuperuser, exists := c.Get(IsSuperuserKey)
	if !exists {
		return false
	}
	return isSuperuser.(bool)
}
