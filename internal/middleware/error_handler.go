package middleware

import (
	"errors"

	"github.com/06bhavi/ecommerce-inventory-system/pkg/apperrors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorHandler translates every error escaping a handler into the JSON
// error contract: {status, error, message} plus details when present.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		// Fiber's own errors (bad route params, body limits) keep their
		// status codes.
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(fiber.Map{
				"status":  fiberErr.Code,
				"error":   "InvalidRequest",
				"message": fiberErr.Message,
			})
		}

		stdErr := apperrors.AsStandardError(err)
		status := stdErr.HTTPStatus()
		if status >= 500 {
			log.Error("request failed",
				zap.String("path", c.Path()),
				zap.String("method", c.Method()),
				zap.Error(err))
		}

		body := fiber.Map{
			"status":  status,
			"error":   stdErr.Code,
			"message": stdErr.Message,
		}
		if stdErr.Details != "" {
			body["details"] = stdErr.Details
		}
		return c.Status(status).JSON(body)
	}
}
