package middleware

import (
	"BloggerPlatform/pkg/bcrypt"
	"BloggerPlatform/pkg/metrics"
	"errors"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

type Middleware interface {
	NewRateLimiter(ctx *fiber.Ctx) error
	NewBasicAuthMiddleware(ctx *fiber.Ctx) error
	NewRequestIDMiddleware() fiber.Handler
	NewLoggingMiddleware() fiber.Handler
	NewMetricsMiddleware() fiber.Handler
	GetRequestID(ctx *fiber.Ctx) string
}

type Config struct {
	BasicAuthUsername     string
	BasicAuthPassword     string
	BasicAuthPasswordHash string
	RateLimit             rate.Limit
	RateBurst             int
	Hasher                bcrypt.IBcrypt
	Metrics               *metrics.Metrics
}

type middleware struct {
	basicAuth           *basicAuth
	rateLimitter        *rateLimiter
	requestIDMiddleware fiber.Handler
	metrics             *metrics.Metrics
	log                 *logrus.Logger
}

func New(logger *logrus.Logger, cfg Config) (Middleware, error) {
	if cfg.Hasher == nil {
		cfg.Hasher = bcrypt.New()
	}
	if cfg.Metrics == nil {
		return nil, errors.New("metrics are required")
	}

	auth, err := newBasicAuth(cfg.BasicAuthUsername, cfg.BasicAuthPassword, cfg.BasicAuthPasswordHash, cfg.Hasher)
	if err != nil {
		return nil, err
	}

	rateLimit := newRateLimiter(cfg.RateLimit, cfg.RateBurst)
	requestID := NewRequestIDMiddleware()

	return &middleware{
		basicAuth:           auth,
		rateLimitter:        rateLimit,
		requestIDMiddleware: requestID,
		metrics:             cfg.Metrics,
		log:                 logger,
	}, nil
}

func (m *middleware) GetRequestID(ctx *fiber.Ctx) string {
	requestID, ok := ctx.Locals(RequestIDKey).(string)
	if !ok || requestID == "" {
		return "unknown"
	}
	return requestID
}

func (m *middleware) NewRequestIDMiddleware() fiber.Handler {
	return m.requestIDMiddleware
}
