package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hosteldesk/hostel-portal/internal/api/handler"
	"github.com/hosteldesk/hostel-portal/internal/api/middleware"
	"github.com/hosteldesk/hostel-portal/internal/core/domain"
	"github.com/hosteldesk/hostel-portal/internal/core/service"
	"github.com/hosteldesk/hostel-portal/internal/infrastructure/config"
	mongostore "github.com/hosteldesk/hostel-portal/internal/infrastructure/db/mongo"
	redisstore "github.com/hosteldesk/hostel-portal/internal/infrastructure/db/redis"
	"github.com/hosteldesk/hostel-portal/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("hostel"))

	// --- Dependencies ---
	policy := domain.NewAccessPolicy(cfg.AllowedEmails, cfg.AdminEmails)
	authService := service.NewAuthService(policy, cfg.JWTSecret, 24*time.Hour, log)
	authHandler := handler.NewAuthHandler(authService)

	complaintRepo := mongostore.NewComplaintRepository(db)
	var guard service.DuplicateGuard
	if rdb != nil {
		guard = redisstore.NewSubmissionGuard(rdb)
	}
	complaintService := service.NewComplaintService(complaintRepo, guard, log)
	complaintHandler := handler.NewComplaintHandler(complaintService)

	coolerRepo := mongostore.NewWaterCoolerRepository(db)
	coolerService := service.NewWaterCoolerService(coolerRepo, log)
	coolerHandler := handler.NewWaterCoolerHandler(coolerService)

	authRequired := middleware.Auth(cfg.JWTSecret)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- Auth ---
	e.POST("/auth/signin", authHandler.SignIn)

	// --- Complaints ---
	e.POST("/complaints", complaintHandler.Submit, authRequired)
	e.GET("/complaints/me", complaintHandler.ListMine, authRequired)

	admin := e.Group("/admin", authRequired, adminOnly)
	admin.GET("/complaints", complaintHandler.ListAll)
	admin.PATCH("/complaints/:id", complaintHandler.UpdateStatus)
	admin.DELETE("/complaints/:id", complaintHandler.Delete)
	admin.POST("/watercoolers", coolerHandler.Upsert)

	// --- Water coolers (public) ---
	e.GET("/watercoolers", coolerHandler.List)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
