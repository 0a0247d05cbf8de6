package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"medconsult/internal/app/ds"
	"medconsult/internal/app/middleware"
	"medconsult/internal/app/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// POST /api/users/register
func (h *Handler) ApiRegisterUser(ctx *gin.Context) {
	type requestBody struct {
		Email       string `json:"email" binding:"required,email"`
		Password    string `json:"password" binding:"required,min=6"`
		UserType    string `json:"user_type" binding:"required,oneof=Doctor Patient"`
		IsSuperuser *bool  `json:"is_superuser,omitempty"`
	}

	var body requestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	existing, err := h.Repository.GetUserByEmail(body.Email)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	if existing != nil {
		h.errorHandler(ctx, http.StatusBadRequest, errors.New("user already exists"))
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	user := &ds.User{
		Email:    body.Email,
		Password: string(hashedPassword),
		UserType: body.UserType,
	}
	if body.IsSuperuser != nil {
		user.IsSuperuser = *body.IsSuperuser
	}

	if err := h.Repository.CreateUser(user); err != nil {
		if isDuplicateKey(err) {
			h.errorHandler(ctx, http.StatusBadRequest, errors.New("user already exists"))
			return
		}
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	ctx.JSON(http.StatusCreated, user)
}

// POST /api/users/login
func (h *Handler) ApiLogin(ctx *gin.Context) {
	type requestBody struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var body requestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	user, err := h.Repository.GetUserByEmail(body.Email)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	if user == nil {
		h.errorHandler(ctx, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)); err != nil {
		h.errorHandler(ctx, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	token, err := h.JWTService.Generate(user.ID, user.Email, user.UserType, user.IsSuperuser)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	sessionID := uuid.New().String()
	sessionData := auth.SessionData{
		UserID:      user.ID,
		Email:       user.Email,
		UserType:    user.UserType,
		IsSuperuser: user.IsSuperuser,
	}
	if err := h.Sessions.Create(ctx.Request.Context(), sessionID, sessionData); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	ctx.SetCookie("session_id", sessionID, 86400, "/", "", false, true)

	ctx.JSON(http.StatusOK, gin.H{
		"user":       user,
		"token":      token,
		"session_id": sessionID,
	})
}

// POST /api/users/logout
func (h *Handler) ApiLogout(ctx *gin.Context) {
	if sessionID, err := ctx.Cookie("session_id"); err == nil && sessionID != "" {
		_ = h.Sessions.Delete(ctx.Request.Context(), sessionID)
	}

	ctx.SetCookie("session_id", "", -1, "/", "", false, true)

	ctx.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// GET /api/users/me
func (h *Handler) ApiGetMe(ctx *gin.Context) {
	userID, _ := middleware.GetCurrentUserID(ctx)
	user, err := h.Repository.GetUserByID(userID)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	if user == nil {
		h.errorHandler(ctx, http.StatusNotFound, errors.New("user not found"))
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// GET /api/users/:id
func (h *Handler) ApiGetUser(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}
	user, err := h.Repository.GetUserByID(uint(id))
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	if user == nil {
		h.errorHandler(ctx, http.StatusNotFound, fmt.Errorf("user with id %d does not exist", id))
		return
	}
	ctx.JSON(http.StatusOK, user)
}
