package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"medconsult/internal/app/ds"
	"medconsult/internal/app/middleware"

	"github.com/gin-gonic/gin"
)

// POST /api/questions
func (h *Handler) ApiCreateQuestion(ctx *gin.Context) {
	type requestBody struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description" binding:"required"`
	}
	var body requestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

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

	question := &ds.Question{
		Title:        body.Title,
		Description:  body.Description,
		CreationDate: time.Now(),
		PatientID:    patient.ID,
	}
	if err := h.Repository.CreateQuestion(question); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	ctx.JSON(http.StatusCreated, question)
}

// GET /api/questions?patient_id=
func (h *Handler) ApiListQuestions(ctx *gin.Context) {
	var patientID *uint
	if v := ctx.Query("patient_id"); v != "" {
		id64, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			h.errorHandler(ctx, http.StatusBadRequest, err)
			return
		}
		id := uint(id64)
		patientID = &id
	}

	list, err := h.Repository.ListQuestions(patientID)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	ctx.JSON(http.StatusOK, list)
}

// GET /api/questions/:id
//
// Returns the question together with its answers and comments.
func (h *Handler) ApiGetQuestion(ctx *gin.Context) {
	id64, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	question, err := h.Repository.GetQuestionByID(uint(id64))
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	if question == nil {
		h.errorHandler(ctx, http.StatusNotFound, errors.New("question not found"))
		return
	}

	answers, err := h.Repository.ListAnswersByQuestion(question.ID)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	// The thread view carries every comment: those on the question itself and
	// those on each of its answers.
	comments, err := h.Repository.ListCommentsByQuestion(question.ID)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	for _, answer := range answers {
		answerComments, err := h.Repository.ListCommentsByAnswer(answer.ID)
		if err != nil {
			h.errorHandler(ctx, http.StatusInternalServerError, err)
			return
		}
		comments = append(comments, answerComments...)
	}

	attachmentURL := ""
	if h.Storage != nil && question.AttachmentKey != "" {
		attachmentURL = h.Storage.PublicURL(question.AttachmentKey)
	}

	ctx.JSON(http.StatusOK, gin.H{
		"question":       question,
		"answers":        answers,
		"comments":       comments,
		"attachment_url": attachmentURL,
	})
}

// POST /api/questions/:id/attachment
//
// Multipart upload; the object lands in MinIO and the key is kept on the
// question. Only the authoring patient (or a superuser) may attach.
func (h *Handler) ApiUploadQuestionAttachment(ctx *gin.Context) {
	id64, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	question, err := h.Repository.GetQuestionByID(uint(id64))
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	if question == nil {
		h.errorHandler(ctx, http.StatusNotFound, errors.New("question not found"))
		return
	}

	if !middleware.IsCurrentUserSuperuser(ctx) {
		userID, _ := middleware.GetCurrentUserID(ctx)
		patient, err := h.Repository.GetPatientByUserID(userID)
		if err != nil {
			h.errorHandler(ctx, http.StatusInternalServerError, err)
			return
		}
		if patient == nil || patient.ID != question.PatientID {
			h.errorHandler(ctx, http.StatusForbidden, errors.New("only the question author may attach files"))
			return
		}
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, errors.New("file is required"))
		return
	}

	key, publicURL, err := h.Storage.Upload(ctx.Request.Context(), fileHeader, "question")
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	if err := h.Repository.SetQuestionAttachment(question.ID, key); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"attachment_key": key, "attachment_url": publicURL})
}

// POST /api/answers (superuser only)
//
// Answers are inserted by the automated-answer pipeline on behalf of a
// registered language model.
func (h *Handler) ApiCreateAnswer(ctx *gin.Context) {
	type requestBody struct {
		QuestionID uint   `json:"question_id" binding:"required"`
		LLMID      uint   `json:"llm_id" binding:"required"`
		Content    string `json:"content" binding:"required"`
	}
	var body requestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	question, err := h.Repository.GetQuestionByID(body.QuestionID)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	if question == nil {
		h.errorHandler(ctx, http.StatusNotFound, errors.New("question not found"))
		return
	}

	model, err := h.Repository.GetLanguageModelByID(body.LLMID)
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}
	if model == nil {
		h.errorHandler(ctx, http.StatusNotFound, errors.New("language model not found"))
		return
	}

	answer := &ds.Answer{
		Content:      body.Content,
		CreationDate: time.Now(),
		QuestionID:   question.ID,
		LLMID:        model.ID,
	}
	if err := h.Repository.CreateAnswer(answer); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	ctx.JSON(http.StatusCreated, answer)
}

// POST /api/comments
//
// A doctor comments on a question or on an answer, never both at once.
func (h *Handler) ApiCreateComment(ctx *gin.Context) {
	type requestBody struct {
		Content    string `json:"content" binding:"required"`
		QuestionID *uint  `json:"question_id"`
		AnswerID   *uint  `json:"answer_id"`
	}
	var body requestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	if (body.QuestionID == nil) == (body.AnswerID == nil) {
		h.errorHandler(ctx, http.StatusBadRequest, errors.New("comment must target exactly one of question_id or answer_id"))
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

	if body.QuestionID != nil {
		question, err := h.Repository.GetQuestionByID(*body.QuestionID)
		if err != nil {
			h.errorHandler(ctx, http.StatusInternalServerError, err)
			return
		}
		if question == nil {
			h.errorHandler(ctx, http.StatusNotFound, errors.New("question not found"))
			return
		}
	} else {
		answer, err := h.Repository.GetAnswerByID(*body.AnswerID)
		if err != nil {
			h.errorHandler(ctx, http.StatusInternalServerError, err)
			return
		}
		if answer == nil {
			h.errorHandler(ctx, http.StatusNotFound, errors.New("answer not found"))
			return
		}
	}

	comment := &ds.Comment{
		Content:      body.Content,
		CreationDate: time.Now(),
		QuestionID:   body.QuestionID,
		AnswerID:     body.AnswerID,
		DoctorID:     doctor.ID,
	}
	if err := h.Repository.CreateComment(comment); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	ctx.JSON(http.StatusCreated, comment)
}
