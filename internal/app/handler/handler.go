package handler

import (
	"context"
	"mime/multipart"
	"strings"

	"medconsult/internal/app/config"
	"medconsult/internal/app/middleware"
	"medconsult/internal/app/pkg/auth"
	"medconsult/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// SessionStore is the part of the session service the handlers need.
type SessionStore interface {
	Create(ctx context.Context, sessionID string, data auth.SessionData) error
	Delete(ctx context.Context, sessionID string) error
}

// FileStore stores uploaded attachments.
type FileStore interface {
	Upload(ctx context.Context, fileHeader *multipart.FileHeader, prefix string) (key string, publicURL string, err error)
	PublicURL(key string) string
}

type Handler struct {
	Repository repository.Contract
	Config     *config.Config
	JWTService *auth.JWTService
	Sessions   SessionStore
	Storage    FileStore
}

func NewHandler(r repository.Contract, cfg *config.Config, jwtSvc *auth.JWTService, sessions SessionStore, storage FileStore) *Handler {
	return &Handler{
		Repository: r,
		Config:     cfg,
		JWTService: jwtSvc,
		Sessions:   sessions,
		Storage:    storage,
	}
}

// RegisterHandler wires the routes. Everything except register/login and the
// public catalog reads sits behind the auth middleware; role guards follow
// per group.
func (h *Handler) RegisterHandler(router *gin.Engine, authSvc *middleware.AuthService) {
	api := router.Group("/api")

	api.POST("/users/register", h.ApiRegisterUser)
	api.POST("/users/login", h.ApiLogin)
	api.GET("/language-models", h.ApiListLanguageModels)
	api.GET("/specialties", h.ApiListSpecialties)

	authed := api.Group("", middleware.AuthMiddleware(authSvc))
	{
		authed.POST("/users/logout", h.ApiLogout)
		authed.GET("/users/me", h.ApiGetMe)
		authed.GET("/users/:id", h.ApiGetUser)
		authed.POST("/users/doctors", h.ApiCreateDoctorProfile)
		authed.POST("/users/patients", h.ApiCreatePatientProfile)

		authed.GET("/doctor-requests", h.ApiListDoctorRequests)
		authed.GET("/patient-requests", h.ApiListPatientRequests)
		authed.PUT("/doctor-requests/:id/status", h.ApiDecideDoctorRequest)
		authed.PUT("/patient-requests/:id/status", h.ApiDecidePatientRequest)
		authed.GET("/doctors/:id/patients", h.ApiListDoctorPatients)

		authed.GET("/questions", h.ApiListQuestions)
		authed.GET("/questions/:id", h.ApiGetQuestion)
	}

	doctors := api.Group("", middleware.AuthMiddleware(authSvc), middleware.RequireDoctor())
	{
		doctors.POST("/doctor-requests", h.ApiCreateDoctorRequest)
		doctors.POST("/doctor-patient", h.ApiEstablishConnection)
		doctors.POST("/doctors/specialties", h.ApiAddDoctorSpecialty)
		doctors.POST("/comments", h.ApiCreateComment)
	}

	patients := api.Group("", middleware.AuthMiddleware(authSvc), middleware.RequirePatient())
	{
		patients.POST("/patient-requests", h.ApiCreatePatientRequest)
		patients.POST("/questions", h.ApiCreateQuestion)
		patients.POST("/questions/:id/attachment", h.ApiUploadQuestionAttachment)
	}

	admin := api.Group("", middleware.AuthMiddleware(authSvc), middleware.RequireSuperuser())
	{
		admin.POST("/language-models", h.ApiCreateLanguageModel)
		admin.POST("/specialties", h.ApiCreateSpecialty)
		admin.POST("/answers", h.ApiCreateAnswer)
	}
}

func (h *Handler) errorHandler(ctx *gin.Context, errorStatusCode int, err error) {
	logrus.Error(err.Error())
	ctx.JSON(errorStatusCode, gin.H{
		"status":      "error",
		"description": err.Error(),
	})
}

// isDuplicateKey recognizes postgres unique-violation errors (23505) that
// slip past the existence checks under concurrency.
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "23505") || strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate")
}
