package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

func (m *middleware) NewMetricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		m.metrics.HTTPRequestsActive.Inc()
		defer m.metrics.HTTPRequestsActive.Dec()

		err := c.Next()

		// Route().Path is the pattern ("/blogs/:id"), keeping label
		// cardinality bounded.
		route := c.Route().Path
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}

		m.metrics.HTTPRequestsTotal.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		m.metrics.HTTPRequestDuration.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())

		return err
	}
}
