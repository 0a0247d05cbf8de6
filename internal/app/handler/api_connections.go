package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"medconsult/internal/app/ds"
	"medconsult/internal/app/middleware"

	"github.com/gin-gonic/gin"
)

// POST /api/doctor-requests?patient_id=
//
// A doctor proposes a connection to a patient. At most one request per
// (doctor, patient) pair may exist in Pending or Accepted; a second submission
// is a conflict. A Rejected pair may be resubmitted only when
// AllowRequestResubmission is on, in which case the existing row is reset to
// Pending rather than duplicated.
func (h *Handler) ApiCreateDoctorRequest(ctx *gin.Context) {
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

	patientID64, err := strconv.ParseUint(ctx.Query("patient_id"), 10, 64)
	if err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, errors.New("patient_id is required"))
		return
	}
	patientID := uint(patientID64)

	patient, err := h.Repository.GetPatientByID(patientID)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	if patient == nil {
		h.errorHandler(ctx, http.StatusNotFound, errors.New("patient not found"))
		return
	}

	existing, err := h.Repository.GetDoctorRequestByPair(doctor.ID, patientID)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	if existing != nil {
		if existing.Status == ds.StatusRejected && h.Config.AllowRequestResubmission {
			if err := h.Repository.UpdateDoctorRequestStatus(existing.ID, ds.StatusPending); err != nil {
				h.errorHandler(ctx, http.StatusInternalServerError, err)
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"detail": "doctor's request to patient has been resubmitted"})
			return
		}
		h.errorHandler(ctx, http.StatusConflict, errors.New("doctor has already sent a request to this patient"))
		return
	}

	request := &ds.DoctorRequest{DoctorID: doctor.ID, PatientID: patientID, Status: ds.StatusPending}
	if err := h.Repository.CreateDoctorRequest(request); err != nil {
		if isDuplicateKey(err) {
			h.errorHandler(ctx, http.StatusConflict, errors.New("doctor has already sent a request to this patient"))
			return
		}
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"detail": "doctor's request to patient has been created successfully"})
}

// POST /api/patient-requests?doctor_id=
func (h *Handler) ApiCreatePatientRequest(ctx *gin.Context) {
	userID, _ := middleware.GetCurrentUserID(ctx)
	patient, err := h.Repository.GetPatientByUserID(userID)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	if patient == nil {
		h.errorHandler(ctx, http.StatusNotFound, errors.New("user is not a patient"))
		return
	}

	doctorID64, err := strconv.ParseUint(ctx.Query("doctor_id"), 10, 64)
	if err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, errors.New("doctor_id is required"))
		return
	}
	doctorID := uint(doctorID64)

	doctor, err := h.Repository.GetDoctorByID(doctorID)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	if doctor == nil {
		h.errorHandler(ctx, http.StatusNotFound, errors.New("doctor not found"))
		return
	}

	existing, err := h.Repository.GetPatientRequestByPair(doctorID, patient.ID)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	if existing != nil {
		if existing.Status == ds.StatusRejected && h.Config.AllowRequestResubmission {
			if err := h.Repository.UpdatePatientRequestStatus(existing.ID, ds.StatusPending); err != nil {
				h.errorHandler(ctx, http.StatusInternalServerError, err)
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"detail": "patient's request to doctor has been resubmitted"})
			return
		}
		h.errorHandler(ctx, http.StatusConflict, errors.New("patient has already sent a request to this doctor"))
		return
	}

	request := &ds.PatientRequest{DoctorID: doctorID, PatientID: patient.ID, Status: ds.StatusPending}
	if err := h.Repository.CreatePatientRequest(request); err != nil {
		if isDuplicateKey(err) {
			h.errorHandler(ctx, http.StatusConflict, errors.New("patient has already sent a request to this doctor"))
			return
		}
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"detail": "patient's request to doctor has been created successfully"})
}

// PUT /api/doctor-requests/:id/status
//
// The addressed patient (or a superuser) accepts or rejects a doctor's
// request. Pending is the only state that may transition; Accepted and
// Rejected are terminal.
func (h *Handler) ApiDecideDoctorRequest(ctx *gin.Context) {
	id64, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	type requestBody struct {
		Status string `json:"status" binding:"required,oneof=Accepted Rejected"`
	}
	var body requestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	request, err := h.Repository.GetDoctorRequestByID(uint(id64))
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	if request == nil {
		h.errorHandler(ctx, http.StatusNotFound, errors.New("request not found"))
		return
	}

	if !middleware.IsCurrentUserSuperuser(ctx) {
		userID, _ := middleware.GetCurrentUserID(ctx)
		patient, err := h.Repository.GetPatientByUserID(userID)
		if err != nil {
			h.errorHandler(ctx, http.StatusInternalServerError, err)
			return
		}
		if patient == nil || patient.ID != request.PatientID {
			h.errorHandler(ctx, http.StatusForbidden, errors.New("only the addressed patient may decide this request"))
			return
		}
	}

	if request.Status != ds.StatusPending {
		h.errorHandler(ctx, http.StatusConflict, fmt.Errorf("request is already %s", request.Status))
		return
	}

	if err := h.Repository.UpdateDoctorRequestStatus(request.ID, body.Status); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"detail": fmt.Sprintf("request has been %s", body.Status)})
}

// PUT /api/patient-requests/:id/status
//
// Mirror of ApiDecideDoctorRequest: the addressed doctor decides.
func (h *Handler) ApiDecidePatientRequest(ctx *gin.Context) {
	id64, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	type requestBody struct {
		Status string `json:"status" binding:"required,oneof=Accepted Rejected"`
	}
	var body requestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	request, err := h.Repository.GetPatientRequestByID(uint(id64))
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	if request == nil {
		h.errorHandler(ctx, http.StatusNotFound, errors.New("request not found"))
		return
	}

	if !middleware.IsCurrentUserSuperuser(ctx) {
		userID, _ := middleware.GetCurrentUserID(ctx)
		doctor, err := h.Repository.GetDoctorByUserID(userID)
		if err != nil {
			h.errorHandler(ctx, http.StatusInternalServerError, err)
			return
		}
		if doctor == nil || doctor.ID != request.DoctorID {
			h.errorHandler(ctx, http.StatusForbidden, errors.New("only the addressed doctor may decide this request"))
			return
		}
	}

	if request.Status != ds.StatusPending {
		h.errorHandler(ctx, http.StatusConflict, fmt.Errorf("request is already %s", request.Status))
		return
	}

	if err := h.Repository.UpdatePatientRequestStatus(request.ID, body.Status); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"detail": fmt.Sprintf("request has been %s", body.Status)})
}

// POST /api/doctor-patient?doctor_id=&patient_id=
//
// Promotes a mutually accepted pair into the durable link. Both directional
// requests must be Accepted, in any order of acceptance. The requests are
// kept afterwards as an audit trail.
func (h *Handler) ApiEstablishConnection(ctx *gin.Context) {
	doctorID64, err := strconv.ParseUint(ctx.Query("doctor_id"), 10, 64)
	if err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, errors.New("doctor_id is required"))
		return
	}
	patientID64, err := strconv.ParseUint(ctx.Query("patient_id"), 10, 64)
	if err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, errors.New("patient_id is required"))
		return
	}
	doctorID := uint(doctorID64)
	patientID := uint(patientID64)

	doctorRequest, err := h.Repository.GetDoctorRequestByPair(doctorID, patientID)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	if doctorRequest == nil || doctorRequest.Status != ds.StatusAccepted {
		h.errorHandler(ctx, http.StatusPreconditionFailed, errors.New("the doctor's request has not been accepted by this patient"))
		return
	}

	patientRequest, err := h.Repository.GetPatientRequestByPair(doctorID, patientID)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	if patientRequest == nil || patientRequest.Status != ds.StatusAccepted {
		h.errorHandler(ctx, http.StatusPreconditionFailed, errors.New("the patient's request has not been accepted by this doctor"))
		return
	}

	link, err := h.Repository.GetDoctorPatientLink(doctorID, patientID)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	if link != nil {
		h.errorHandler(ctx, http.StatusConflict, errors.New("doctor and patient are already connected"))
		return
	}

	if err := h.Repository.CreateDoctorPatientLink(doctorID, patientID); err != nil {
		if isDuplicateKey(err) {
			h.errorHandler(ctx, http.StatusConflict, errors.New("doctor and patient are already connected"))
			return
		}
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"detail": "doctor and patient are now connected"})
}

// GET /api/doctor-requests
func (h *Handler) ApiListDoctorRequests(ctx *gin.Context) {
	userID, _ := middleware.GetCurrentUserID(ctx)

	if doctor, err := h.Repository.GetDoctorByUserID(userID); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	} else if doctor != nil {
		list, err := h.Repository.ListDoctorRequestsByDoctor(doctor.ID)
		if err != nil {
			h.errorHandler(ctx, http.StatusInternalServerError, err)
			return
		}
		ctx.JSON(http.StatusOK, list)
		return
	}

	if patient, err := h.Repository.GetPatientByUserID(userID); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	} else if patient != nil {
		list, err := h.Repository.ListDoctorRequestsByPatient(patient.ID)
		if err != nil {
			h.errorHandler(ctx, http.StatusInternalServerError, err)
			return
		}
		ctx.JSON(http.StatusOK, list)
		return
	}

	h.errorHandler(ctx, http.StatusNotFound, errors.New("user has no doctor or patient profile"))
}

// GET /api/patient-requests
func (h *Handler) ApiListPatientRequests(ctx *gin.Context) {
	userID, _ := middleware.GetCurrentUserID(ctx)

	if doctor, err := h.Repository.GetDoctorByUserID(userID); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	} else if doctor != nil {
		list, err := h.Repository.ListPatientRequestsByDoctor(doctor.ID)
		if err != nil {
			h.errorHandler(ctx, http.StatusInternalServerError, err)
			return
		}
		ctx.JSON(http.StatusOK, list)
		return
	}

	if patient, err := h.Repository.GetPatientByUserID(userID); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	} else if patient != nil {
		list, err := h.Repository.ListPatientRequestsByPatient(patient.ID)
		if err != nil {
			h.errorHandler(ctx, http.StatusInternalServerError, err)
			return
		}
		ctx.JSON(http.StatusOK, list)
		return
	}

	h.errorHandler(ctx, http.StatusNotFound, errors.New("user has no doctor or patient profile"))
}

// GET /api/doctors/:id/patients
func (h *Handler) ApiListDoctorPatients(ctx *gin.Context) {
	id64, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	doctor, err := h.Repository.GetDoctorByID(uint(id64))
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	if doctor == nil {
		h.errorHandler(ctx, http.StatusNotFound, errors.New("doctor not found"))
		return
	}

	patients, err := h.Repository.ListPatientsOfDoctor(doctor.ID)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	ctx.JSON(http.StatusOK, patients)
}
