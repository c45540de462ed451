package config

import (
	contextPkg "BloggerPlatform/pkg/context"
	"BloggerPlatform/pkg/handlerUtil"
	"BloggerPlatform/pkg/log"
	"errors"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

func NewFiber(logger *logrus.Logger) *fiber.App {
	app := fiber.New(
		fiber.Config{
			AppName:           "Blogger Platform",
			BodyLimit:         1 * 1024 * 1024,
			DisableKeepalive:  false,
			StrictRouting:     false,
			CaseSensitive:     true,
			EnablePrintRoutes: false,
			JSONEncoder:       handlerUtil.JSON.Marshal,
			JSONDecoder:       handlerUtil.JSON.Unmarshal,
			ErrorHandler:      newErrorHandler(logger),
		})

	return app
}

// newErrorHandler renders errors that escaped the handlers, such as unknown
// routes, oversized bodies and recovered panics.
func newErrorHandler(logger *logrus.Logger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
		}

		requestID, _ := ctx.Locals(contextPkg.LocalsRequestIDKey).(string)

		if code >= fiber.StatusInternalServerError {
			traceID := log.ErrorWithTraceID(log.Fields{
				log.RequestIDKey: requestID,
				"path":           ctx.Path(),
				"error":          err.Error(),
			}, "Unhandled error")
			return ctx.Status(code).JSON(fiber.Map{
				"error":    "An unexpected error occurred",
				"trace_id": traceID,
			})
		}

		logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"path":       ctx.Path(),
			"code":       code,
		}).Debug("Request rejected")

		return ctx.Status(code).JSON(fiber.Map{"error": err.Error()})
	}
}
