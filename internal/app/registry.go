package app

import (
	"database/sql"

	"go-leave/internal/config"
	"go-leave/internal/employee"
	"go-leave/internal/holiday"
	"go-leave/internal/leave"
	"go-leave/internal/messaging/kafka"
	"go-leave/internal/middleware"
	"go-leave/internal/rbac"
	"go-leave/internal/rbac/infra"
	"go-leave/internal/settings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	// --- Repositories ---
	employeeRepo := employee.NewRepository(gormDB)
	holidayRepo := holiday.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	settingsRepo := settings.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewDefaultEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(enforcer, logger)

	// --- Services ---
	employeeService := employee.NewService(employeeRepo, logger)
	holidayService := holiday.NewService(holidayRepo, logger)
	settingsService := settings.NewService(settingsRepo, rdb, cfg.Redis.SettingsTTL, logger)
	leaveService := leave.NewService(db, leaveRepo, leave.Dependencies{
		Employees: employeeService,
		Settings:  settingsService,
		Holidays:  holidayService,
		Outbox:    outboxRepo,
	}, logger)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService, logger)
	holidayHandler := holiday.NewHandler(holidayService, logger)
	leaveHandler := leave.NewHandler(leaveService, logger)
	settingsHandler := settings.NewHandler(settingsService, logger)
	rbacHandler := rbac.NewHandler(rbacService, logger)

	// --- Routes Registration ---
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader, middleware.IdempotencyHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader, middleware.ReplayedHeader},
		AllowCredentials: !allowsAnyOrigin(cfg.Server.AllowedOrigins),
	}))
	router.Use(middleware.RequestID())
	router.GET("/healthz", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	api := router.Group("/api/v1")
	api.Use(
		middleware.AuthMiddleware(cfg.JWT.Secret),
		middleware.ExtractUserID(),
		middleware.ContextLogger(logger),
	)
	{
		employee.RegisterRoutes(api, employeeHandler, rbacService)
		holiday.RegisterRoutes(api, holidayHandler, rbacService)
		settings.RegisterRoutes(api, settingsHandler, rbacService)
		leave.RegisterRoutes(api, leaveHandler, rbacService,
			middleware.RateLimitByUser(rate.Limit(cfg.RateLimit.ApplyPerSecond), cfg.RateLimit.ApplyBurst),
			middleware.Idempotency(rdb, cfg.Redis.IdempotencyTTL, logger),
		)
		rbac.RegisterRoutes(api, rbacHandler)
	}

	return nil
}

func allowsAnyOrigin(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
