package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ptit-dev/qldsv-api/internal/models"
	"github.com/ptit-dev/qldsv-api/internal/service"
	appErrors "github.com/ptit-dev/qldsv-api/pkg/errors"
	"github.com/ptit-dev/qldsv-api/pkg/response"
)

// AccountHandler exposes the admin account management endpoints.
type AccountHandler struct {
	service *service.AccountService
}

// NewAccountHandler creates a new handler.
func NewAccountHandler(svc *service.AccountService) *AccountHandler {
	return &AccountHandler{service: svc}
}

// List godoc
// @Summary List accounts
// @Description Accounts filtered by role, status and free-text search
// @Tags Accounts
// @Produce json
// @Param role query string false "Role filter"
// @Param status query string false "Status filter"
// @Param q query string false "Search query"
// @Success 200 {object} response.Envelope
// @Router /accounts [get]
func (h *AccountHandler) List(c *gin.Context) {
	filter := models.AccountFilter{
		Role:   models.Role(c.Query("role")),
		Status: models.AccountStatus(c.Query("status")),
		Search: c.Query("q"),
	}
	response.JSON(c, http.StatusOK, h.service.List(c.Request.Context(), filter))
}

// Create godoc
// @Summary Create account
// @Tags Accounts
// @Accept json
// @Produce json
// @Param payload body service.CreateAccountRequest true "Account payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /accounts [post]
func (h *AccountHandler) Create(c *gin.Context) {
	var req service.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid account payload"))
		return
	}

	account, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, account)
}

// Update godoc
// @Summary Update account
// @Tags Accounts
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param payload body service.UpdateAccountRequest true "Account payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /accounts/{id} [put]
func (h *AccountHandler) Update(c *gin.Context) {
	var req service.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid account payload"))
		return
	}

	account, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, account)
}

// Delete godoc
// @Summary Delete account
// @Tags Accounts
// @Produce json
// @Param id path string true "Account ID"
// @Success 204 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /accounts/{id} [delete]
func (h *AccountHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
