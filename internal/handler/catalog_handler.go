package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ptit-dev/qldsv-api/internal/service"
	appErrors "github.com/ptit-dev/qldsv-api/pkg/errors"
	"github.com/ptit-dev/qldsv-api/pkg/response"
)

// CatalogHandler serves the management screens for departments,
// administrative classes, subjects and credit classes.
type CatalogHandler struct {
	service *service.CatalogService
}

// NewCatalogHandler creates a new handler.
func NewCatalogHandler(svc *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: svc}
}

// Departments godoc
// @Summary List departments
// @Tags Catalog
// @Produce json
// @Param q query string false "Search query"
// @Success 200 {object} response.Envelope
// @Router /departments [get]
func (h *CatalogHandler) Departments(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Departments(c.Request.Context(), c.Query("q")))
}

// CreateDepartment godoc
// @Summary Create department
// @Tags Catalog
// @Accept json
// @Produce json
// @Param payload body service.DepartmentRequest true "Department payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /departments [post]
func (h *CatalogHandler) CreateDepartment(c *gin.Context) {
	var req service.DepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid department payload"))
		return
	}

	department, err := h.service.CreateDepartment(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, department)
}

// UpdateDepartment godoc
// @Summary Update department
// @Tags Catalog
// @Accept json
// @Produce json
// @Param code path string true "Department code"
// @Param payload body service.UpdateDepartmentRequest true "Department payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /departments/{code} [put]
func (h *CatalogHandler) UpdateDepartment(c *gin.Context) {
	var req service.UpdateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid department payload"))
		return
	}

	department, err := h.service.UpdateDepartment(c.Request.Context(), c.Param("code"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, department)
}

// DeleteDepartment godoc
// @Summary Delete department
// @Tags Catalog
// @Produce json
// @Param code path string true "Department code"
// @Success 204 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /departments/{code} [delete]
func (h *CatalogHandler) DeleteDepartment(c *gin.Context) {
	if err := h.service.DeleteDepartment(c.Request.Context(), c.Param("code")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// AdministrativeClasses godoc
// @Summary List administrative classes
// @Tags Catalog
// @Produce json
// @Param q query string false "Search query"
// @Success 200 {object} response.Envelope
// @Router /administrative-classes [get]
func (h *CatalogHandler) AdministrativeClasses(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.AdministrativeClasses(c.Request.Context(), c.Query("q")))
}

// CreateAdministrativeClass godoc
// @Summary Create administrative class
// @Tags Catalog
// @Accept json
// @Produce json
// @Param payload body service.AdministrativeClassRequest true "Class payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /administrative-classes [post]
func (h *CatalogHandler) CreateAdministrativeClass(c *gin.Context) {
	var req service.AdministrativeClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid class payload"))
		return
	}

	class, err := h.service.CreateAdministrativeClass(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, class)
}

// UpdateAdministrativeClass godoc
// @Summary Update administrative class
// @Tags Catalog
// @Accept json
// @Produce json
// @Param code path string true "Class code"
// @Param payload body service.UpdateAdministrativeClassRequest true "Class payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /administrative-classes/{code} [put]
func (h *CatalogHandler) UpdateAdministrativeClass(c *gin.Context) {
	var req service.UpdateAdministrativeClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid class payload"))
		return
	}

	class, err := h.service.UpdateAdministrativeClass(c.Request.Context(), c.Param("code"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, class)
}

// DeleteAdministrativeClass godoc
// @Summary Delete administrative class
// @Tags Catalog
// @Produce json
// @Param code path string true "Class code"
// @Success 204 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /administrative-classes/{code} [delete]
func (h *CatalogHandler) DeleteAdministrativeClass(c *gin.Context) {
	if err := h.service.DeleteAdministrativeClass(c.Request.Context(), c.Param("code")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Subjects godoc
// @Summary List subjects
// @Tags Catalog
// @Produce json
// @Param q query string false "Search query"
// @Success 200 {object} response.Envelope
// @Router /subjects [get]
func (h *CatalogHandler) Subjects(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Subjects(c.Request.Context(), c.Query("q")))
}

// CreateSubject godoc
// @Summary Create subject
// @Tags Catalog
// @Accept json
// @Produce json
// @Param payload body service.SubjectRequest true "Subject payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /subjects [post]
func (h *CatalogHandler) CreateSubject(c *gin.Context) {
	var req service.SubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid subject payload"))
		return
	}

	subject, err := h.service.CreateSubject(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, subject)
}

// UpdateSubject godoc
// @Summary Update subject
// @Tags Catalog
// @Accept json
// @Produce json
// @Param code path string true "Subject code"
// @Param payload body service.UpdateSubjectRequest true "Subject payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /subjects/{code} [put]
func (h *CatalogHandler) UpdateSubject(c *gin.Context) {
	var req service.UpdateSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid subject payload"))
		return
	}

	subject, err := h.service.UpdateSubject(c.Request.Context(), c.Param("code"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, subject)
}

// DeleteSubject godoc
// @Summary Delete subject
// @Tags Catalog
// @Produce json
// @Param code path string true "Subject code"
// @Success 204 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /subjects/{code} [delete]
func (h *CatalogHandler) DeleteSubject(c *gin.Context) {
	if err := h.service.DeleteSubject(c.Request.Context(), c.Param("code")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// CreditClasses godoc
// @Summary List credit classes
// @Tags Catalog
// @Produce json
// @Param q query string false "Search query"
// @Param teacher query string false "Restrict to a teacher's classes"
// @Success 200 {object} response.Envelope
// @Router /credit-classes [get]
func (h *CatalogHandler) CreditClasses(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.CreditClasses(c.Request.Context(), c.Query("q"), c.Query("teacher")))
}

// CreateCreditClass godoc
// @Summary Create credit class
// @Tags Catalog
// @Accept json
// @Produce json
// @Param payload body service.CreditClassRequest true "Credit class payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /credit-classes [post]
func (h *CatalogHandler) CreateCreditClass(c *gin.Context) {
	var req service.CreditClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid credit class payload"))
		return
	}

	class, err := h.service.CreateCreditClass(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, class)
}

// UpdateCreditClass godoc
// @Summary Update credit class
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Credit class ID"
// @Param payload body service.UpdateCreditClassRequest true "Credit class payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /credit-classes/{id} [put]
func (h *CatalogHandler) UpdateCreditClass(c *gin.Context) {
	var req service.UpdateCreditClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid credit class payload"))
		return
	}

	class, err := h.service.UpdateCreditClass(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, class)
}

// DeleteCreditClass godoc
// @Summary Delete credit class
// @Tags Catalog
// @Produce json
// @Param id path string true "Credit class ID"
// @Success 204 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /credit-classes/{id} [delete]
func (h *CatalogHandler) DeleteCreditClass(c *gin.Context) {
	if err := h.service.DeleteCreditClass(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
