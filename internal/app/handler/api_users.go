package handler

import (
	"errors"
	"fmt"
	"net/http"

	"medconsult/internal/app/ds"

	"github.com/gin-gonic/gin"
)

// POST /api/users/doctors
func (h *Handler) ApiCreateDoctorProfile(ctx *gin.Context) {
	type requestBody struct {
		UserID uint   `json:"user_id" binding:"required"`
		Degree string `json:"degree" binding:"required"`
	}

	var body requestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	user, err := h.Repository.GetUserByID(body.UserID)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	if user == nil {
		h.errorHandler(ctx, http.StatusNotFound, fmt.Errorf("user with id %d does not exist", body.UserID))
		return
	}
	if user.UserType != ds.UserTypeDoctor {
		h.errorHandler(ctx, http.StatusBadRequest, errors.New("user type is not Doctor"))
		return
	}

	existing, err := h.Repository.GetDoctorByUserID(body.UserID)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	if existing != nil {
		h.errorHandler(ctx, http.StatusConflict, errors.New("doctor profile already exists for this user"))
		return
	}

	doctor := &ds.Doctor{UserID: body.UserID, Degree: body.Degree}
	if err := h.Repository.CreateDoctor(doctor); err != nil {
		if isDuplicateKey(err) {
			h.errorHandler(ctx, http.StatusConflict, errors.New("doctor profile already exists for this user"))
			return
		}
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	ctx.JSON(http.StatusCreated, doctor)
}

// POST /api/users/patients
func (h *Handler) ApiCreatePatientProfile(ctx *gin.Context) {
	type requestBody struct {
		UserID uint `json:"user_id" binding:"required"`
	}

	var body requestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	user, err := h.Repository.GetUserByID(body.UserID)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	if user == nil {
		h.errorHandler(ctx, http.StatusNotFound, fmt.Errorf("user with id %d does not exist", body.UserID))
		return
	}
	if user.UserType != ds.UserTypePatient {
		h.errorHandler(ctx, http.StatusBadRequest, errors.New("user type is not Patient"))
		return
	}

	existing, err := h.Repository.GetPatientByUserID(body.UserID)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	if existing != nil {
		h.errorHandler(ctx, http.StatusConflict, errors.New("patient profile already exists for this user"))
		return
	}

	patient := &ds.Patient{UserID: body.UserID}
	if err := h.Repository.CreatePatient(patient); err != nil {
		if isDuplicateKey(err) {
			h.errorHandler(ctx, http.StatusConflict, errors.New("patient profile already exists for this user"))
			return
		}
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	ctx.JSON(http.StatusCreated, patient)
}
