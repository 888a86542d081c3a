package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ptit-dev/qldsv-api/internal/middleware"
	"github.com/ptit-dev/qldsv-api/internal/models"
	"github.com/ptit-dev/qldsv-api/internal/service"
	appErrors "github.com/ptit-dev/qldsv-api/pkg/errors"
	"github.com/ptit-dev/qldsv-api/pkg/response"
)

// GradeHandler exposes score recording and transcript endpoints.
type GradeHandler struct {
	service *service.GradeService
}

// NewGradeHandler creates a new handler.
func NewGradeHandler(svc *service.GradeService) *GradeHandler {
	return &GradeHandler{service: svc}
}

// RecordScore godoc
// @Summary Record a score component
// @Description Stores one of attendance, midterm or final for a student
// @Tags Grades
// @Accept json
// @Produce json
// @Param payload body service.RecordScoreRequest true "Score payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /grades [post]
func (h *GradeHandler) RecordScore(c *gin.Context) {
	var req service.RecordScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid grade payload"))
		return
	}

	grade, err := h.service.RecordScore(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, grade)
}

// List godoc
// @Summary List recorded grades
// @Description Grades narrowed by subject code and student ID
// @Tags Grades
// @Produce json
// @Param subject_code query string false "Subject filter"
// @Param student_id query string false "Student filter"
// @Success 200 {object} response.Envelope
// @Router /grades [get]
func (h *GradeHandler) List(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Grades(c.Request.Context(), c.Query("subject_code"), c.Query("student_id")))
}

// Transcript godoc
// @Summary Student transcript
// @Description Classified grade report with credit-weighted GPA
// @Tags Grades
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /students/{id}/transcript [get]
func (h *GradeHandler) Transcript(c *gin.Context) {
	studentID := c.Param("id")

	// Students may only read their own transcript.
	record := currentSession(c)
	if record != nil && record.Role == models.RoleStudent && record.ID != studentID {
		response.Redirect(c, appErrors.ErrUnauthorized, middleware.LoginPath)
		return
	}

	transcript, err := h.service.Transcript(c.Request.Context(), studentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, transcript)
}

// Distribution godoc
// @Summary Grade tier distribution
// @Description Counts of completed grades per performance tier
// @Tags Grades
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /grades/distribution [get]
func (h *GradeHandler) Distribution(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Distribution(c.Request.Context()))
}
