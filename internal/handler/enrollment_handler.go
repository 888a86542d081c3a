package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ptit-dev/qldsv-api/internal/models"
	"github.com/ptit-dev/qldsv-api/internal/service"
	appErrors "github.com/ptit-dev/qldsv-api/pkg/errors"
	"github.com/ptit-dev/qldsv-api/pkg/response"
)

// EnrollmentHandler exposes enrollment management endpoints.
type EnrollmentHandler struct {
	service *service.EnrollmentService
	metrics *service.MetricsService
}

// NewEnrollmentHandler creates a new handler.
func NewEnrollmentHandler(svc *service.EnrollmentService, metrics *service.MetricsService) *EnrollmentHandler {
	return &EnrollmentHandler{service: svc, metrics: metrics}
}

// List godoc
// @Summary List enrollments
// @Description Enrollments filtered by student, credit class and search
// @Tags Enrollments
// @Produce json
// @Param student_id query string false "Student ID filter"
// @Param credit_class_id query string false "Credit class filter"
// @Param q query string false "Search query"
// @Success 200 {object} response.Envelope
// @Router /enrollments [get]
func (h *EnrollmentHandler) List(c *gin.Context) {
	filter := models.EnrollmentFilter{
		StudentID:     c.Query("student_id"),
		CreditClassID: c.Query("credit_class_id"),
		Search:        c.Query("q"),
	}
	response.JSON(c, http.StatusOK, h.service.List(c.Request.Context(), filter))
}

// Create godoc
// @Summary Enroll a student
// @Description Registers a student into a credit class and takes a seat
// @Tags Enrollments
// @Accept json
// @Produce json
// @Param payload body service.EnrollRequest true "Enrollment payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /enrollments [post]
func (h *EnrollmentHandler) Create(c *gin.Context) {
	var req service.EnrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid enrollment payload"))
		return
	}

	enrollment, err := h.service.Enroll(c.Request.Context(), req)
	if err != nil {
		h.metrics.RecordEnrollmentDecision(appErrors.FromError(err).Code)
		response.Error(c, err)
		return
	}
	h.metrics.RecordEnrollmentDecision("accepted")
	response.Created(c, enrollment)
}

// Delete godoc
// @Summary Remove an enrollment
// @Description Deletes the enrollment and releases the class seat
// @Tags Enrollments
// @Produce json
// @Param id path string true "Enrollment ID"
// @Success 204 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /enrollments/{id} [delete]
func (h *EnrollmentHandler) Delete(c *gin.Context) {
	if err := h.service.Remove(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
