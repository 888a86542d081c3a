package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ptit-dev/qldsv-api/internal/middleware"
	"github.com/ptit-dev/qldsv-api/internal/models"
	"github.com/ptit-dev/qldsv-api/internal/repository"
	"github.com/ptit-dev/qldsv-api/internal/service"
	"github.com/ptit-dev/qldsv-api/internal/session"
	"github.com/ptit-dev/qldsv-api/pkg/config"
	appErrors "github.com/ptit-dev/qldsv-api/pkg/errors"
	"github.com/ptit-dev/qldsv-api/pkg/response"
)

const testCookieName = "qldsv_session"

type testEnvelope struct {
	Data  json.RawMessage        `json:"data"`
	Error *appErrors.Error       `json:"error"`
	Meta  map[string]interface{} `json:"meta"`
}

func buildRouter(store session.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)

	dataset := repository.NewDataset()
	validate := validator.New()
	logr := zap.NewNop()
	weights := config.GradingConfig{AttendanceWeight: 0.1, MidtermWeight: 0.3, FinalWeight: 0.6}

	metricsSvc := service.NewMetricsService()
	authSvc := service.NewAuthService(dataset, store, validate, logr)
	accountSvc := service.NewAccountService(dataset, validate, logr)
	catalogSvc := service.NewCatalogService(dataset, validate, logr)
	enrollmentSvc := service.NewEnrollmentService(dataset, dataset, dataset, validate, logr)
	gradeSvc := service.NewGradeService(dataset, dataset, dataset, weights, validate, logr)
	notificationSvc := service.NewNotificationService(dataset, validate, logr)
	exportSvc := service.NewExportService(gradeSvc, logr)

	authHandler := NewAuthHandler(authSvc, metricsSvc, testCookieName)
	dashboardHandler := NewDashboardHandler(accountSvc, catalogSvc, enrollmentSvc, gradeSvc, metricsSvc)
	accountHandler := NewAccountHandler(accountSvc)
	catalogHandler := NewCatalogHandler(catalogSvc)
	enrollmentHandler := NewEnrollmentHandler(enrollmentSvc, metricsSvc)
	gradeHandler := NewGradeHandler(gradeSvc)
	notificationHandler := NewNotificationHandler(notificationSvc)
	exportHandler := NewExportHandler(exportSvc)

	r := gin.New()
	r.Use(middleware.Resolve(store, testCookieName))

	r.POST("/login", authHandler.Login)
	r.POST("/logout", authHandler.Logout)
	r.GET("/me", authHandler.Me)
	r.GET("/", dashboardHandler.Root)

	anyRole := middleware.RequireRoles(models.RoleAdmin, models.RoleTeacher, models.RoleStudent)

	r.GET("/admin", middleware.RequireRoles(models.RoleAdmin), dashboardHandler.Admin)
	r.GET("/teacher", middleware.RequireRoles(models.RoleTeacher), dashboardHandler.Teacher)
	r.GET("/student", middleware.RequireRoles(models.RoleStudent), dashboardHandler.Student)

	accounts := r.Group("/accounts", middleware.RequireRoles(models.RoleAdmin))
	{
		accounts.GET("", accountHandler.List)
		accounts.POST("", accountHandler.Create)
	}

	adminOnly := middleware.RequireRoles(models.RoleAdmin)

	r.GET("/departments", anyRole, catalogHandler.Departments)
	r.POST("/departments", adminOnly, catalogHandler.CreateDepartment)
	r.PUT("/departments/:code", adminOnly, catalogHandler.UpdateDepartment)
	r.DELETE("/departments/:code", adminOnly, catalogHandler.DeleteDepartment)

	r.POST("/subjects", adminOnly, catalogHandler.CreateSubject)

	r.GET("/credit-classes", anyRole, catalogHandler.CreditClasses)
	r.POST("/credit-classes", adminOnly, catalogHandler.CreateCreditClass)
	r.DELETE("/credit-classes/:id", adminOnly, catalogHandler.DeleteCreditClass)

	r.GET("/enrollments", anyRole, enrollmentHandler.List)
	r.POST("/enrollments", middleware.RequireRoles(models.RoleAdmin, models.RoleStudent), enrollmentHandler.Create)

	r.POST("/grades", middleware.RequireRoles(models.RoleAdmin, models.RoleTeacher), gradeHandler.RecordScore)
	r.GET("/students/:id/transcript", anyRole, gradeHandler.Transcript)
	r.GET("/students/:id/transcript/csv", anyRole, exportHandler.TranscriptCSV)

	r.GET("/notifications", anyRole, notificationHandler.List)

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "route not found"))
	})

	return r
}

func performRequest(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, r *gin.Engine, role, username, password string) string {
	t.Helper()
	payload, _ := json.Marshal(map[string]string{"role": role, "username": username, "password": password})
	req, _ := http.NewRequest(http.MethodPost, "/login", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := performRequest(r, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var envelope testEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	var data struct {
		SessionKey string `json:"session_key"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &data))
	require.NotEmpty(t, data.SessionKey)
	return data.SessionKey
}

func authed(method, target, key string) *http.Request {
	req, _ := http.NewRequest(method, target, nil)
	req.Header.Set(middleware.SessionKeyHeader, key)
	return req
}

func TestRoutesLoginGrantsOwnDashboardOnly(t *testing.T) {
	router := buildRouter(session.NewMemoryStore())
	key := login(t, router, "teacher", "tuan.da", "teacher123")

	resp := performRequest(router, authed(http.MethodGet, "/teacher", key))
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "Đặng Anh Tuấn")

	// The wrong dashboard answers exactly like being logged out.
	resp = performRequest(router, authed(http.MethodGet, "/admin", key))
	require.Equal(t, http.StatusUnauthorized, resp.Code)
	var envelope testEnvelope
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &envelope))
	assert.Equal(t, middleware.LoginPath, envelope.Meta["redirect"])

	anon := performRequest(router, authed(http.MethodGet, "/admin", ""))
	require.Equal(t, http.StatusUnauthorized, anon.Code)
	var anonEnvelope testEnvelope
	require.NoError(t, json.Unmarshal(anon.Body.Bytes(), &anonEnvelope))
	assert.Equal(t, envelope.Error.Code, anonEnvelope.Error.Code)
	assert.Equal(t, envelope.Error.Message, anonEnvelope.Error.Message)
}

func TestRoutesRootResolvesSession(t *testing.T) {
	router := buildRouter(session.NewMemoryStore())

	resp := performRequest(router, authed(http.MethodGet, "/", ""))
	require.Equal(t, http.StatusUnauthorized, resp.Code)
	var envelope testEnvelope
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &envelope))
	assert.Equal(t, middleware.LoginPath, envelope.Meta["redirect"])

	key := login(t, router, "student", "B24DCCC016", "student123")
	resp = performRequest(router, authed(http.MethodGet, "/", key))
	require.Equal(t, http.StatusOK, resp.Code)
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &envelope))
	assert.Equal(t, "/student", envelope.Meta["redirect"])
}

func TestRoutesLoginFailure(t *testing.T) {
	router := buildRouter(session.NewMemoryStore())

	payload, _ := json.Marshal(map[string]string{"role": "admin", "username": "admin", "password": "admin124"})
	req, _ := http.NewRequest(http.MethodPost, "/login", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := performRequest(router, req)
	require.Equal(t, http.StatusUnauthorized, resp.Code)

	var envelope testEnvelope
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Error)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, envelope.Error.Code)
}

func TestRoutesLoginSetsCookie(t *testing.T) {
	router := buildRouter(session.NewMemoryStore())

	payload, _ := json.Marshal(map[string]string{"role": "admin", "username": "admin", "password": "admin123"})
	req, _ := http.NewRequest(http.MethodPost, "/login", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := performRequest(router, req)
	require.Equal(t, http.StatusOK, resp.Code)

	cookies := resp.Result().Cookies()
	var found *http.Cookie
	for _, cookie := range cookies {
		if cookie.Name == testCookieName {
			found = cookie
		}
	}
	require.NotNil(t, found)
	assert.NotEmpty(t, found.Value)

	// The cookie alone carries the session on the next request.
	dash, _ := http.NewRequest(http.MethodGet, "/admin", nil)
	dash.AddCookie(found)
	dashResp := performRequest(router, dash)
	assert.Equal(t, http.StatusOK, dashResp.Code)
}

func TestRoutesMalformedSessionReadsAsLoggedOut(t *testing.T) {
	store := session.NewMemoryStore()
	router := buildRouter(store)

	key := login(t, router, "student", "B24DCCC016", "student123")
	store.SetRaw(key, []byte(`{"username": "B24DCCC016", "role":`))

	resp := performRequest(router, authed(http.MethodGet, "/student", key))
	require.Equal(t, http.StatusUnauthorized, resp.Code)
	var envelope testEnvelope
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &envelope))
	assert.Equal(t, middleware.LoginPath, envelope.Meta["redirect"])
}

func TestRoutesLogoutClearsSession(t *testing.T) {
	router := buildRouter(session.NewMemoryStore())
	key := login(t, router, "teacher", "tuan.da", "teacher123")

	resp := performRequest(router, authed(http.MethodPost, "/logout", key))
	require.Equal(t, http.StatusNoContent, resp.Code)

	resp = performRequest(router, authed(http.MethodGet, "/teacher", key))
	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	// Logging out again is harmless.
	resp = performRequest(router, authed(http.MethodPost, "/logout", key))
	assert.Equal(t, http.StatusNoContent, resp.Code)
}

func TestRoutesEnrollmentFlow(t *testing.T) {
	router := buildRouter(session.NewMemoryStore())
	key := login(t, router, "admin", "admin", "admin123")

	// B24DCCC148 is not yet enrolled in credit class 1.
	payload, _ := json.Marshal(map[string]string{"student_id": "B24DCCC148", "credit_class_id": "1"})
	req, _ := http.NewRequest(http.MethodPost, "/enrollments", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.SessionKeyHeader, key)
	resp := performRequest(router, req)
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	// The identical registration is rejected.
	req, _ = http.NewRequest(http.MethodPost, "/enrollments", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.SessionKeyHeader, key)
	resp = performRequest(router, req)
	require.Equal(t, http.StatusConflict, resp.Code)
	var envelope testEnvelope
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &envelope))
	assert.Equal(t, appErrors.ErrDuplicateEnrollment.Code, envelope.Error.Code)
}

func TestRoutesCatalogManagement(t *testing.T) {
	router := buildRouter(session.NewMemoryStore())
	adminKey := login(t, router, "admin", "admin", "admin123")

	payload, _ := json.Marshal(map[string]string{"code": "ATTT", "name": "An toàn thông tin"})
	req, _ := http.NewRequest(http.MethodPost, "/departments", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.SessionKeyHeader, adminKey)
	resp := performRequest(router, req)
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	resp = performRequest(router, authed(http.MethodGet, "/departments?q=attt", adminKey))
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "An toàn thông tin")

	payload, _ = json.Marshal(map[string]string{"name": "Khoa An toàn thông tin"})
	req, _ = http.NewRequest(http.MethodPut, "/departments/ATTT", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.SessionKeyHeader, adminKey)
	resp = performRequest(router, req)
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	assert.Contains(t, resp.Body.String(), "Khoa An toàn thông tin")

	resp = performRequest(router, authed(http.MethodDelete, "/departments/ATTT", adminKey))
	require.Equal(t, http.StatusNoContent, resp.Code)

	// Catalog mutations belong to the admin alone; a teacher gets the same
	// answer as someone logged out.
	teacherKey := login(t, router, "teacher", "tuan.da", "teacher123")
	payload, _ = json.Marshal(map[string]string{"code": "KTDL", "name": "Kỹ thuật điện lạnh"})
	req, _ = http.NewRequest(http.MethodPost, "/departments", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.SessionKeyHeader, teacherKey)
	resp = performRequest(router, req)
	require.Equal(t, http.StatusUnauthorized, resp.Code)
	var envelope testEnvelope
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &envelope))
	assert.Equal(t, middleware.LoginPath, envelope.Meta["redirect"])
}

func TestRoutesCreditClassDeleteGuard(t *testing.T) {
	router := buildRouter(session.NewMemoryStore())
	key := login(t, router, "admin", "admin", "admin123")

	// Seeded class 1 has enrolled students; deleting it would orphan them.
	resp := performRequest(router, authed(http.MethodDelete, "/credit-classes/1", key))
	require.Equal(t, http.StatusConflict, resp.Code)
	var envelope testEnvelope
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Error)
	assert.Equal(t, appErrors.ErrConflict.Code, envelope.Error.Code)
}

func TestRoutesStudentTranscriptOwnership(t *testing.T) {
	router := buildRouter(session.NewMemoryStore())
	key := login(t, router, "student", "B24DCCC016", "student123")

	resp := performRequest(router, authed(http.MethodGet, "/students/B24DCCC016/transcript", key))
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"gpa4"`)

	resp = performRequest(router, authed(http.MethodGet, "/students/B24DCCC148/transcript", key))
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestRoutesTranscriptCSVDownload(t *testing.T) {
	router := buildRouter(session.NewMemoryStore())
	key := login(t, router, "admin", "admin", "admin123")

	resp := performRequest(router, authed(http.MethodGet, "/students/B24DCCC016/transcript/csv", key))
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Header().Get("Content-Disposition"), "transcript-B24DCCC016.csv")
	assert.Contains(t, resp.Body.String(), "subject_code")
}

func TestRoutesUnknownRoute(t *testing.T) {
	router := buildRouter(session.NewMemoryStore())

	resp := performRequest(router, authed(http.MethodGet, "/does-not-exist", ""))
	require.Equal(t, http.StatusNotFound, resp.Code)
	var envelope testEnvelope
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Error)
	assert.Equal(t, appErrors.ErrNotFound.Code, envelope.Error.Code)
}
