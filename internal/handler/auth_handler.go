package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ptit-dev/qldsv-api/internal/middleware"
	"github.com/ptit-dev/qldsv-api/internal/service"
	appErrors "github.com/ptit-dev/qldsv-api/pkg/errors"
	"github.com/ptit-dev/qldsv-api/pkg/response"
)

// AuthHandler wires HTTP endpoints to the auth service.
type AuthHandler struct {
	service    *service.AuthService
	metrics    *service.MetricsService
	cookieName string
}

// NewAuthHandler creates a new handler.
func NewAuthHandler(svc *service.AuthService, metrics *service.MetricsService, cookieName string) *AuthHandler {
	return &AuthHandler{service: svc, metrics: metrics, cookieName: cookieName}
}

// Login godoc
// @Summary Authenticate user
// @Description Match role, username and password against the account tables
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body service.LoginRequest true "Login payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid login payload"))
		return
	}

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.metrics.RecordLogin(req.Role, false)
		response.Error(c, err)
		return
	}
	h.metrics.RecordLogin(req.Role, true)

	c.SetCookie(h.cookieName, res.SessionKey, 0, "/", "", false, true)
	response.JSON(c, http.StatusOK, res)
}

// Logout godoc
// @Summary Logout current session
// @Description Clear the stored session record
// @Tags Authentication
// @Produce json
// @Success 204 {object} response.Envelope
// @Router /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	key := middleware.SessionKey(c, h.cookieName)
	if err := h.service.Logout(c.Request.Context(), key); err != nil {
		response.Error(c, err)
		return
	}
	c.SetCookie(h.cookieName, "", -1, "/", "", false, true)
	response.NoContent(c)
}

// Me godoc
// @Summary Get current user
// @Description Returns the resolved session record
// @Tags Authentication
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	record := currentSession(c)
	if record == nil {
		response.Redirect(c, appErrors.ErrUnauthorized, middleware.LoginPath)
		return
	}
	response.JSON(c, http.StatusOK, record)
}
