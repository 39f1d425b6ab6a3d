// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"fmt"
	"log"
	"time"

	"wrenchbase/internal/cache"
	"wrenchbase/internal/config"
	"wrenchbase/internal/database"
	"wrenchbase/internal/middleware"
	"wrenchbase/internal/models"
	"wrenchbase/internal/repository"
	"wrenchbase/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	vehicleRepo    repository.VehicleRepository
	problemRepo    repository.ProblemRepository
	userRepo       repository.UserRepository
	searchSvc      *service.SearchService
	identitySync   *service.IdentitySyncService
	promMiddleware *fiberprometheus.FiberPrometheus
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	redisClient := cache.GetClient()

	middleware.InitMiddleware(cfg)

	vehicleRepo := repository.NewVehicleRepository(db)
	problemRepo := repository.NewProblemRepository(db)
	userRepo := repository.NewUserRepository(db)

	searchTimeout := time.Duration(cfg.SearchTimeoutSeconds) * time.Second

	return &Server{
		config:       cfg,
		db:           db,
		redis:        redisClient,
		vehicleRepo:  vehicleRepo,
		problemRepo:  problemRepo,
		userRepo:     userRepo,
		searchSvc:    service.NewSearchService(vehicleRepo, problemRepo, searchTimeout),
		identitySync: service.NewIdentitySyncService(userRepo, cfg.AdminEmail),
	}, nil
}

// NewTestServer wires a server around an existing DB handle. Intended for tests.
func NewTestServer(cfg *config.Config, db *gorm.DB) *Server {
	middleware.InitMiddleware(cfg)

	vehicleRepo := repository.NewVehicleRepository(db)
	problemRepo := repository.NewProblemRepository(db)
	userRepo := repository.NewUserRepository(db)

	return &Server{
		config:       cfg,
		db:           db,
		vehicleRepo:  vehicleRepo,
		problemRepo:  problemRepo,
		userRepo:     userRepo,
		searchSvc:    service.NewSearchService(vehicleRepo, problemRepo, time.Duration(cfg.SearchTimeoutSeconds)*time.Second),
		identitySync: service.NewIdentitySyncService(userRepo, cfg.AdminEmail),
	}
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Request ID for tracing
	app.Use(requestid.New())

	// Security headers
	app.Use(helmet.New())

	// Structured Logging middleware
	app.Use(middleware.StructuredLogger())

	// OpenTelemetry spans per request
	app.Use(middleware.TracingMiddleware())

	// Prometheus HTTP metrics
	if s.promMiddleware == nil {
		s.promMiddleware = fiberprometheus.New("wrenchbase-api")
	}
	app.Use(s.promMiddleware.Middleware)

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"success": false,
				"error":   "Too many requests, please try again later.",
			})
		},
	}))

	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health check
	api.Get("/", s.HealthCheck)

	// Prometheus metrics endpoint plus the built-in dashboard
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/api/metrics")
	}
	api.Get("/metrics/dashboard", monitor.New(monitor.Config{
		Title: "Wrenchbase Backend Metrics",
	}))

	// Search endpoints: read-style via query string, write-style via JSON body
	searchRoutes := api.Group("/search")
	searchRoutes.Get("/", middleware.RateLimit(s.redis, 30, time.Minute, "search"), s.Search)
	searchRoutes.Post("/", middleware.RateLimit(s.redis, 30, time.Minute, "search"), s.SearchPost)

	// Vehicle reference data
	vehicles := api.Group("/vehicles")
	vehicles.Get("/", s.GetVehicles)
	vehicles.Get("/makes", s.GetVehicleMakes)
	vehicles.Get("/:id/problems", s.GetVehicleProblems)
	vehicles.Get("/:id", s.GetVehicle)

	// Problems with solutions
	problems := api.Group("/problems")
	problems.Get("/:id", s.GetProblem)

	// Identity provider webhook
	webhooks := api.Group("/webhooks")
	webhooks.Post("/identity", middleware.RateLimit(s.redis, 60, time.Minute, "webhook"), s.HandleIdentityWebhook)

	// Routes requiring a provider-issued token
	users := api.Group("/users", middleware.AuthRequired)
	users.Get("/me", s.GetMyProfile)
}

// HealthCheck handles health check requests
func (s *Server) HealthCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
	}

	return c.Status(status).JSON(fiber.Map{
		"message": "Wrenchbase",
		"version": "1.0.0",
		"status":  "healthy",
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// Start starts the server
func (s *Server) Start() error {
	app := fiber.New(fiber.Config{
		AppName: "Wrenchbase API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Custom error handler
			log.Printf("Error: %v", err)
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	log.Printf("Server starting on port %s...", s.config.Port)
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	// Close database connection
	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Printf("error closing sql DB: %v", cerr)
		}
	}

	// Close Redis connection
	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			log.Printf("error closing redis: %v", rerr)
		}
	}

	log.Println("Server shutdown complete")
	return nil
}
