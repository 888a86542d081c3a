package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ptit-dev/qldsv-api/internal/middleware"
	"github.com/ptit-dev/qldsv-api/internal/service"
	appErrors "github.com/ptit-dev/qldsv-api/pkg/errors"
	"github.com/ptit-dev/qldsv-api/pkg/response"
)

// NotificationHandler exposes announcement endpoints.
type NotificationHandler struct {
	service *service.NotificationService
}

// NewNotificationHandler creates a new handler.
func NewNotificationHandler(svc *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: svc}
}

// List godoc
// @Summary List my notifications
// @Tags Notifications
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	record := currentSession(c)
	if record == nil {
		response.Redirect(c, appErrors.ErrUnauthorized, middleware.LoginPath)
		return
	}
	response.JSON(c, http.StatusOK, h.service.ListFor(c.Request.Context(), record.Username))
}

// Create godoc
// @Summary Publish a notification
// @Tags Notifications
// @Accept json
// @Produce json
// @Param payload body service.CreateNotificationRequest true "Notification payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /notifications [post]
func (h *NotificationHandler) Create(c *gin.Context) {
	var req service.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid notification payload"))
		return
	}

	notification, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, notification)
}

// MarkRead godoc
// @Summary Mark a notification as read
// @Tags Notifications
// @Produce json
// @Param id path string true "Notification ID"
// @Success 204 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	record := currentSession(c)
	if record == nil {
		response.Redirect(c, appErrors.ErrUnauthorized, middleware.LoginPath)
		return
	}
	if err := h.service.MarkRead(c.Request.Context(), c.Param("id"), record.Username); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
