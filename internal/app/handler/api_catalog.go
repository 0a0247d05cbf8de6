package handler

import (
	"errors"
	"net/http"
	"strconv"

	"medconsult/internal/app/ds"
	"medconsult/internal/app/middleware"

	"github.com/gin-gonic/gin"
)

// POST /api/language-models (superuser only)
func (h *Handler) ApiCreateLanguageModel(ctx *gin.Context) {
	type requestBody struct {
		Name string `json:"name" binding:"required"`
	}
	var body requestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	model := &ds.LanguageModel{Name: body.Name}
	if err := h.Repository.CreateLanguageModel(model); err != nil {
		if isDuplicateKey(err) {
			h.errorHandler(ctx, http.StatusConflict, errors.New("language model with this name already exists"))
			return
		}
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	ctx.JSON(http.StatusCreated, model)
}

// GET /api/language-models?skip=&limit=
func (h *Handler) ApiListLanguageModels(ctx *gin.Context) {
	skip, _ := strconv.Atoi(ctx.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "100"))

	list, err := h.Repository.ListLanguageModels(skip, limit)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	ctx.JSON(http.StatusOK, list)
}

// POST /api/specialties (superuser only)
func (h *Handler) ApiCreateSpecialty(ctx *gin.Context) {
	type requestBody struct {
		Name string `json:"name" binding:"required"`
	}
	var body requestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	specialty := &ds.Specialty{Name: body.Name}
	if err := h.Repository.CreateSpecialty(specialty); err != nil {
		if isDuplicateKey(err) {
			h.errorHandler(ctx, http.StatusConflict, errors.New("specialty with this name already exists"))
			return
		}
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	ctx.JSON(http.StatusCreated, specialty)
}

// GET /api/specialties
func (h *Handler) ApiListSpecialties(ctx *gin.Context) {
	list, err := h.Repository.ListSpecialties()
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	ctx.JSON(http.StatusOK, list)
}

// POST /api/doctors/specialties
//
// A doctor tags their own profile with a catalog specialty.
func (h *Handler) ApiAddDoctorSpecialty(ctx *gin.Context) {
	type requestBody struct {
		SpecialtyID uint `json:"specialty_id" binding:"required"`
	}
	var body requestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	userID, _ := middleware.GetCurrentUserID(ctx)
	doctor, err := h.Repository.GetDoctorByUserID(userID)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	if doctor == nil {
		h.errorHandler(ctx, http.StatusNotFound, errors.New("user is not a doctor"))
		return
	}

	specialty, err := h.Repository.GetSpecialtyByID(body.SpecialtyID)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	if specialty == nil {
		h.errorHandler(ctx, http.StatusNotFound, errors.New("specialty not found"))
		return
	}

	if err := h.Repository.AddDoctorSpecialty(doctor.ID, specialty.ID); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"detail": "specialty has been added to the doctor"})
}
