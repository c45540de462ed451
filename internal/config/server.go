package config

import (
	"BloggerPlatform/database/postgres"
	blogHandler "BloggerPlatform/internal/api/blog/handler"
	blogRepository "BloggerPlatform/internal/api/blog/repository"
	blogService "BloggerPlatform/internal/api/blog/service"
	maintenanceHandler "BloggerPlatform/internal/api/maintenance/handler"
	maintenanceService "BloggerPlatform/internal/api/maintenance/service"
	postHandler "BloggerPlatform/internal/api/post/handler"
	postRepository "BloggerPlatform/internal/api/post/repository"
	postService "BloggerPlatform/internal/api/post/service"
	"BloggerPlatform/internal/middleware"
	"BloggerPlatform/pkg/bcrypt"
	"BloggerPlatform/pkg/metrics"
	"BloggerPlatform/pkg/utils"
	"BloggerPlatform/pkg/validation"
	"context"
	"fmt"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
	"time"
)

type ServerOption func(*Server) error

type Server struct {
	engine      *fiber.App
	db          *sqlx.DB
	log         *logrus.Logger
	env         Env
	middleware  middleware.Middleware
	validator   *validation.Validator
	utils       utils.IUtils
	bcryptUtils bcrypt.IBcrypt
	metrics     *metrics.Metrics
	handlers    []handler
	mounted     bool
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if server.db == nil {
		return nil, fmt.Errorf("database is required")
	}
	if server.middleware == nil {
		return nil, fmt.Errorf("middleware is required")
	}
	if server.validator == nil {
		return nil, fmt.Errorf("validator is required")
	}
	if server.utils == nil {
		server.utils = utils.New()
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithEnv(env Env) ServerOption {
	return func(s *Server) error {
		s.env = env
		return nil
	}
}

func WithValidator(validator *validation.Validator) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

// WithDB uses an already opened database instead of connecting.
func WithDB(db *sqlx.DB) ServerOption {
	return func(s *Server) error {
		s.db = db
		return nil
	}
}

func WithMetrics(m *metrics.Metrics) ServerOption {
	return func(s *Server) error {
		s.metrics = m
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		if s.metrics == nil {
			return fmt.Errorf("metrics must be initialized before middleware")
		}

		mw, err := middleware.New(s.log, middleware.Config{
			BasicAuthUsername:     s.env.BasicAuthUsername,
			BasicAuthPassword:     s.env.BasicAuthPassword,
			BasicAuthPasswordHash: s.env.BasicAuthPasswordHash,
			RateLimit:             rate.Limit(s.env.RateLimitRPS),
			RateBurst:             s.env.RateLimitBurst,
			Hasher:                s.bcryptUtils,
			Metrics:               s.metrics,
		})
		if err != nil {
			return fmt.Errorf("failed to create middleware: %w", err)
		}
		s.middleware = mw
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func WithBcryptUtils(hasher bcrypt.IBcrypt) ServerOption {
	return func(s *Server) error {
		s.bcryptUtils = hasher
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Blogs
	blogRepo := blogRepository.New(s.db, s.log)
	blogServices := blogService.NewBlogsService(s.log, blogRepo, s.validator, s.utils)
	blogHandlers := blogHandler.New(s.log, s.middleware, blogServices)

	// Posts
	postRepo := postRepository.New(s.db, s.log)
	postServices := postService.NewPostsService(s.log, postRepo, s.validator, s.utils)
	postHandlers := postHandler.New(s.log, s.middleware, postServices)

	s.handlers = append(s.handlers, blogHandlers, postHandlers)

	// Data reset for end-to-end suites
	if !s.env.IsProduction() {
		maintenanceServices := maintenanceService.NewMaintenanceService(s.log, blogRepo, postRepo)
		s.handlers = append(s.handlers, maintenanceHandler.New(s.log, s.middleware, maintenanceServices))
	}
}

// Mount installs the global middleware, the operational endpoints and every
// registered handler. It is safe to call more than once.
func (s *Server) Mount() *fiber.App {
	if s.mounted {
		return s.engine
	}
	s.mounted = true

	s.engine.Use(
		recover.New(),
		cors.New(),
		s.middleware.NewRequestIDMiddleware(),
		s.middleware.NewLoggingMiddleware(),
		s.middleware.NewMetricsMiddleware(),
		s.middleware.NewRateLimiter,
	)

	s.setupHealthCheck()

	for _, h := range s.handlers {
		h.Start(s.engine)
	}

	return s.engine
}

func (s *Server) Run() error {
	s.Mount()

	port := s.env.AppPort
	if port == "" {
		port = defaultPort
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	err := s.engine.ShutdownWithContext(ctx)
	if dbErr := s.db.Close(); dbErr != nil && err == nil {
		err = dbErr
	}
	return err
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})

	s.engine.Get("/health/ready", func(ctx *fiber.Ctx) error {
		c, cancel := context.WithTimeout(ctx.UserContext(), 2*time.Second)
		defer cancel()

		if err := s.db.PingContext(c); err != nil {
			s.log.WithFields(logrus.Fields{
				"error": err.Error(),
			}).Warn("Readiness check failed")
			return ctx.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "unavailable",
			})
		}

		return ctx.JSON(fiber.Map{"status": "ok"})
	})

	if s.metrics != nil {
		s.engine.Get("/metrics", adaptor.HTTPHandler(s.metrics.Handler()))
	}
}
