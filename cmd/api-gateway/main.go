package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/ptit-dev/qldsv-api/api/swagger"
	"github.com/ptit-dev/qldsv-api/internal/handler"
	"github.com/ptit-dev/qldsv-api/internal/middleware"
	"github.com/ptit-dev/qldsv-api/internal/models"
	"github.com/ptit-dev/qldsv-api/internal/repository"
	"github.com/ptit-dev/qldsv-api/internal/service"
	"github.com/ptit-dev/qldsv-api/internal/session"
	"github.com/ptit-dev/qldsv-api/pkg/cache"
	"github.com/ptit-dev/qldsv-api/pkg/config"
	"github.com/ptit-dev/qldsv-api/pkg/database"
	appErrors "github.com/ptit-dev/qldsv-api/pkg/errors"
	"github.com/ptit-dev/qldsv-api/pkg/logger"
	corsmiddleware "github.com/ptit-dev/qldsv-api/pkg/middleware/cors"
	reqidmiddleware "github.com/ptit-dev/qldsv-api/pkg/middleware/requestid"
	"github.com/ptit-dev/qldsv-api/pkg/response"
)

// @title QLDSV API
// @version 0.1.0
// @description Student records management for PTIT
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	metricsSvc := service.NewMetricsService()

	store, err := newSessionStore(cfg)
	if err != nil {
		logr.Sugar().Fatalw("failed to init session store", "backend", cfg.Session.Backend, "error", err)
	}
	store = session.Instrument(store, metricsSvc)

	dataset := repository.NewDataset()
	validate := validator.New()

	authSvc := service.NewAuthService(dataset, store, validate, logr)
	accountSvc := service.NewAccountService(dataset, validate, logr)
	catalogSvc := service.NewCatalogService(dataset, validate, logr)
	enrollmentSvc := service.NewEnrollmentService(dataset, dataset, dataset, validate, logr)
	gradeSvc := service.NewGradeService(dataset, dataset, dataset, cfg.Grading, validate, logr)
	notificationSvc := service.NewNotificationService(dataset, validate, logr)
	exportSvc := service.NewExportService(gradeSvc, logr)

	authHandler := handler.NewAuthHandler(authSvc, metricsSvc, cfg.Session.CookieName)
	dashboardHandler := handler.NewDashboardHandler(accountSvc, catalogSvc, enrollmentSvc, gradeSvc, metricsSvc)
	accountHandler := handler.NewAccountHandler(accountSvc)
	catalogHandler := handler.NewCatalogHandler(catalogSvc)
	enrollmentHandler := handler.NewEnrollmentHandler(enrollmentSvc, metricsSvc)
	gradeHandler := handler.NewGradeHandler(gradeSvc)
	notificationHandler := handler.NewNotificationHandler(notificationSvc)
	exportHandler := handler.NewExportHandler(exportSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))
	r.Use(middleware.Resolve(store, cfg.Session.CookieName))

	r.GET("/health", metricsHandler.Health)
	r.GET("/metrics", metricsHandler.Prometheus)

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
		accounts.PUT("/:id", accountHandler.Update)
		accounts.DELETE("/:id", accountHandler.Delete)
	}

	adminOnly := middleware.RequireRoles(models.RoleAdmin)

	r.GET("/departments", anyRole, catalogHandler.Departments)
	r.POST("/departments", adminOnly, catalogHandler.CreateDepartment)
	r.PUT("/departments/:code", adminOnly, catalogHandler.UpdateDepartment)
	r.DELETE("/departments/:code", adminOnly, catalogHandler.DeleteDepartment)

	r.GET("/administrative-classes", anyRole, catalogHandler.AdministrativeClasses)
	r.POST("/administrative-classes", adminOnly, catalogHandler.CreateAdministrativeClass)
	r.PUT("/administrative-classes/:code", adminOnly, catalogHandler.UpdateAdministrativeClass)
	r.DELETE("/administrative-classes/:code", adminOnly, catalogHandler.DeleteAdministrativeClass)

	r.GET("/subjects", anyRole, catalogHandler.Subjects)
	r.POST("/subjects", adminOnly, catalogHandler.CreateSubject)
	r.PUT("/subjects/:code", adminOnly, catalogHandler.UpdateSubject)
	r.DELETE("/subjects/:code", adminOnly, catalogHandler.DeleteSubject)

	r.GET("/credit-classes", anyRole, catalogHandler.CreditClasses)
	r.POST("/credit-classes", adminOnly, catalogHandler.CreateCreditClass)
	r.PUT("/credit-classes/:id", adminOnly, catalogHandler.UpdateCreditClass)
	r.DELETE("/credit-classes/:id", adminOnly, catalogHandler.DeleteCreditClass)

	enrollments := r.Group("/enrollments")
	{
		enrollments.GET("", anyRole, enrollmentHandler.List)
		enrollments.POST("", middleware.RequireRoles(models.RoleAdmin, models.RoleStudent), enrollmentHandler.Create)
		enrollments.DELETE("/:id", middleware.RequireRoles(models.RoleAdmin, models.RoleStudent), enrollmentHandler.Delete)
	}

	r.GET("/grades", middleware.RequireRoles(models.RoleAdmin, models.RoleTeacher), gradeHandler.List)
	r.POST("/grades", middleware.RequireRoles(models.RoleAdmin, models.RoleTeacher), gradeHandler.RecordScore)
	r.GET("/grades/distribution", middleware.RequireRoles(models.RoleAdmin, models.RoleTeacher), gradeHandler.Distribution)
	r.GET("/students/:id/transcript", anyRole, gradeHandler.Transcript)
	r.GET("/students/:id/transcript/csv", anyRole, exportHandler.TranscriptCSV)
	r.GET("/students/:id/transcript/pdf", anyRole, exportHandler.TranscriptPDF)

	notifications := r.Group("/notifications")
	{
		notifications.GET("", anyRole, notificationHandler.List)
		notifications.POST("", middleware.RequireRoles(models.RoleAdmin, models.RoleTeacher), notificationHandler.Create)
		notifications.POST("/:id/read", anyRole, notificationHandler.MarkRead)
	}

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "route not found"))
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "session_backend", cfg.Session.Backend)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

// newSessionStore selects the session backend. Memory is the default;
// Redis and Postgres survive restarts.
func newSessionStore(cfg *config.Config) (session.Store, error) {
	switch cfg.Session.Backend {
	case config.SessionBackendRedis:
		client, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			return nil, err
		}
		return session.NewRedisStore(client, cfg.Session.KeyPrefix), nil
	case config.SessionBackendPostgres:
		db, err := database.NewPostgres(cfg.Database)
		if err != nil {
			return nil, err
		}
		return session.NewPostgresStore(repository.NewSessionRepository(db)), nil
	default:
		return session.NewMemoryStore(), nil
	}
}
