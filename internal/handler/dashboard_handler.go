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

// DashboardHandler resolves the landing route and serves the three
// role-scoped dashboard payloads.
type DashboardHandler struct {
	accounts    *service.AccountService
	catalog     *service.CatalogService
	enrollments *service.EnrollmentService
	grades      *service.GradeService
	metrics     *service.MetricsService
}

// NewDashboardHandler creates a new handler.
func NewDashboardHandler(accounts *service.AccountService, catalog *service.CatalogService, enrollments *service.EnrollmentService, grades *service.GradeService, metrics *service.MetricsService) *DashboardHandler {
	return &DashboardHandler{accounts: accounts, catalog: catalog, enrollments: enrollments, grades: grades, metrics: metrics}
}

func dashboardPath(role models.Role) string {
	switch role {
	case models.RoleAdmin:
		return "/admin"
	case models.RoleTeacher:
		return "/teacher"
	case models.RoleStudent:
		return "/student"
	}
	return middleware.LoginPath
}

// Root godoc
// @Summary Resolve landing route
// @Description Points the client at its role dashboard, or at login
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router / [get]
func (h *DashboardHandler) Root(c *gin.Context) {
	record := currentSession(c)
	if record == nil {
		response.Redirect(c, appErrors.ErrUnauthorized, middleware.LoginPath)
		return
	}
	response.JSON(c, http.StatusOK, record, map[string]interface{}{"redirect": dashboardPath(record.Role)})
}

// Admin godoc
// @Summary Admin dashboard
// @Description System-wide counts, grade distribution and runtime metrics
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /admin [get]
func (h *DashboardHandler) Admin(c *gin.Context) {
	ctx := c.Request.Context()
	accounts := h.accounts.List(ctx, models.AccountFilter{})
	byRole := map[models.Role]int{}
	for _, a := range accounts {
		byRole[a.Role]++
	}

	payload := gin.H{
		"accounts": gin.H{
			"total":    len(accounts),
			"admins":   byRole[models.RoleAdmin],
			"teachers": byRole[models.RoleTeacher],
			"students": byRole[models.RoleStudent],
		},
		"departments":    len(h.catalog.Departments(ctx, "")),
		"subjects":       len(h.catalog.Subjects(ctx, "")),
		"credit_classes": len(h.catalog.CreditClasses(ctx, "", "")),
		"distribution":   h.grades.Distribution(ctx),
		"system":         h.metrics.Snapshot(),
	}
	response.JSON(c, http.StatusOK, payload)
}

// Teacher godoc
// @Summary Teacher dashboard
// @Description The teacher's credit classes and the grade distribution
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /teacher [get]
func (h *DashboardHandler) Teacher(c *gin.Context) {
	record := currentSession(c)
	ctx := c.Request.Context()

	payload := gin.H{
		"teacher":        record.Name,
		"credit_classes": h.catalog.CreditClasses(ctx, "", record.Name),
		"distribution":   h.grades.Distribution(ctx),
	}
	response.JSON(c, http.StatusOK, payload)
}

// Student godoc
// @Summary Student dashboard
// @Description The student's enrollments and classified transcript
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /student [get]
func (h *DashboardHandler) Student(c *gin.Context) {
	record := currentSession(c)
	ctx := c.Request.Context()

	transcript, err := h.grades.Transcript(ctx, record.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	payload := gin.H{
		"student":     record.Name,
		"enrollments": h.enrollments.List(ctx, models.EnrollmentFilter{StudentID: record.ID}),
		"transcript":  transcript,
	}
	response.JSON(c, http.StatusOK, payload)
}
