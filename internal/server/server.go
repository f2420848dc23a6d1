// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"time"

	"matchday/internal/cache"
	"matchday/internal/config"
	"matchday/internal/database"
	"matchday/internal/footballdata"
	"matchday/internal/middleware"
	"matchday/internal/models"
	"matchday/internal/repository"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	promMiddleware *fiberprometheus.FiberPrometheus
	userRepo       repository.UserRepository
	friendRepo     repository.FriendRepository
	flightRepo     repository.OwnedRepository[models.Flight]
	attendanceRepo repository.OwnedRepository[models.Attendance]
	football       *footballdata.Client
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}

	cache.InitRedis(cfg.RedisURL)

	return NewServerWithDeps(cfg, db, cache.GetClient()), nil
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis itself.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	middleware.InitMiddleware(cfg)

	return &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: fiberprometheus.New("matchday-api"),
		userRepo:       repository.NewUserRepository(db),
		friendRepo:     repository.NewFriendRepository(db),
		flightRepo:     repository.NewOwnedRepository[models.Flight](db, "Flight"),
		attendanceRepo: repository.NewOwnedRepository[models.Attendance](db, "Attendance"),
		football: footballdata.NewClient(
			cfg.FootballAPIURL,
			cfg.FootballAPIKey,
			time.Duration(cfg.FootballAPITimeout)*time.Second,
		),
	}
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Server span per request, before anything that logs or short-circuits
	app.Use(middleware.TracingMiddleware())

	// Context middleware to propagate request ID and user ID into the request context
	app.Use(middleware.ContextMiddleware())

	// Prometheus metrics
	if s.promMiddleware != nil {
		app.Use(s.promMiddleware.Middleware)
	}

	// Security headers
	app.Use(helmet.New())

	// Structured logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS must run before middlewares that can short-circuit (e.g. limiter)
	// so browser clients still receive CORS headers on error responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		// Never rate-limit preflight requests; they are handled by CORS.
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/signup", middleware.RateLimit(
		s.redis, 3, 10*time.Minute, "signup"), s.Signup)
	auth.Post("/login", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "login"), s.Login)

	// Match-data proxy (public, like the rest of the read-only surface)
	api.Get("/matches", s.GetMatches)
	api.Get("/matches/:matchId", s.GetMatch)

	// Protected routes
	protected := api.Group("", middleware.AuthRequired)

	// User routes. /current must be registered before friend-request actions
	// so it is not swallowed by the :userId parameter.
	users := protected.Group("/users")
	users.Get("/", s.GetUsers)
	users.Get("/current", s.GetCurrentUser)
	users.Post("/:userId/send-friend-request", middleware.RateLimit(
		s.redis, 5, 5*time.Minute, "friend_request"), s.SendFriendRequest)
	users.Post("/:userId/accept-friend-request", s.AcceptFriendRequest)
	users.Post("/:userId/decline-friend-request", s.DeclineFriendRequest)

	// Friend listings
	friends := protected.Group("/friends")
	friends.Get("/", s.GetFriends)
	friends.Get("/requests", s.GetPendingRequests)
	friends.Get("/requests/sent", s.GetSentRequests)

	// Owned resources
	flights := protected.Group("/flights")
	flights.Get("/", s.GetFlights)
	flights.Post("/", s.CreateFlight)
	flights.Get("/:id", s.GetFlight)
	flights.Put("/:id", s.UpdateFlight)
	flights.Delete("/:id", s.DeleteFlight)

	attendances := protected.Group("/attendances")
	attendances.Get("/", s.GetAttendances)
	attendances.Post("/", s.CreateAttendance)
	attendances.Get("/:id", s.GetAttendance)
	attendances.Put("/:id", s.UpdateAttendance)
	attendances.Delete("/:id", s.DeleteAttendance)
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "disabled"
	if s.redis != nil {
		redisStatus = "healthy"
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	}

	status := fiber.StatusOK
	if dbStatus != "healthy" {
		status = fiber.StatusServiceUnavailable
	}

	return c.Status(status).JSON(fiber.Map{
		"status": dbStatus,
		"redis":  redisStatus,
		"time":   time.Now(),
	})
}

// Shutdown releases server-held resources.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.redis != nil {
		if err := s.redis.Close(); err != nil {
			return err
		}
	}
	if sqlDB, err := s.db.DB(); err == nil {
		return sqlDB.Close()
	}
	return nil
}
