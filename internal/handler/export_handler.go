package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ptit-dev/qldsv-api/internal/middleware"
	"github.com/ptit-dev/qldsv-api/internal/models"
	"github.com/ptit-dev/qldsv-api/internal/service"
	appErrors "github.com/ptit-dev/qldsv-api/pkg/errors"
	"github.com/ptit-dev/qldsv-api/pkg/response"
)

// ExportHandler serves transcript downloads.
type ExportHandler struct {
	service *service.ExportService
}

// NewExportHandler creates a new handler.
func NewExportHandler(svc *service.ExportService) *ExportHandler {
	return &ExportHandler{service: svc}
}

func (h *ExportHandler) guardStudent(c *gin.Context, studentID string) bool {
	record := currentSession(c)
	if record != nil && record.Role == models.RoleStudent && record.ID != studentID {
		response.Redirect(c, appErrors.ErrUnauthorized, middleware.LoginPath)
		return false
	}
	return true
}

// TranscriptCSV godoc
// @Summary Download transcript as CSV
// @Tags Exports
// @Produce text/csv
// @Param id path string true "Student ID"
// @Success 200 {file} file
// @Failure 404 {object} response.Envelope
// @Router /students/{id}/transcript/csv [get]
func (h *ExportHandler) TranscriptCSV(c *gin.Context) {
	studentID := c.Param("id")
	if !h.guardStudent(c, studentID) {
		return
	}

	data, err := h.service.TranscriptCSV(c.Request.Context(), studentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=transcript-%s.csv", studentID))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

// TranscriptPDF godoc
// @Summary Download transcript as PDF
// @Tags Exports
// @Produce application/pdf
// @Param id path string true "Student ID"
// @Success 200 {file} file
// @Failure 404 {object} response.Envelope
// @Router /students/{id}/transcript/pdf [get]
func (h *ExportHandler) TranscriptPDF(c *gin.Context) {
	studentID := c.Param("id")
	if !h.guardStudent(c, studentID) {
		return
	}

	data, err := h.service.TranscriptPDF(c.Request.Context(), studentID)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=transcript-%s.pdf", studentID))
	c.Data(http.StatusOK, "application/pdf", data)
}
