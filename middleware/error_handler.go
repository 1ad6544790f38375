package middleware

import (
	"context"
	"errors"

	"comicprices/store"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// StatusClientClosedRequest is sent when the client went away before the
// response was ready. Nobody reads it; it shows up in the access log.
const StatusClientClosedRequest = 499

// ErrorHandler maps handler errors onto status codes:
// store.ErrNotFound → 404, *fiber.Error → its code, cancelled → 499,
// deadline → 504, anything else → 500 (logged).
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		switch {
		case errors.Is(err, store.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		case errors.As(err, &fe):
			return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
		case errors.Is(err, context.Canceled):
			return c.SendStatus(StatusClientClosedRequest)
		case errors.Is(err, context.DeadlineExceeded):
			log.Warn("request deadline exceeded",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()))
			return c.Status(fiber.StatusGatewayTimeout).JSON(fiber.Map{"error": "request timed out"})
		}

		log.Error("request failed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
}
