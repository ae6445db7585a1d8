package serverutils

import (
	"errors"

	"medinfo-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse is the body every failed request carries. Clients read "detail".
func ErrorResponse(code int, detail string) fiber.Map {
	return fiber.Map{
		"code":   code,
		"detail": detail,
	}
}

func MessageResponse(message string) fiber.Map {
	return fiber.Map{"message": message}
}

// ErrorHandlerMiddleware turns errors that escape a handler into a JSON error body.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}

		if code >= fiber.StatusInternalServerError {
			log.Error("HTTP", "Unhandled error", map[string]interface{}{
				"path":   ctx.Path(),
				"method": ctx.Method(),
				"error":  err.Error(),
			})
		}

		message := err.Error()
		if code == fiber.StatusInternalServerError && fe == nil {
			message = "An unexpected server error occurred."
		}
		return ctx.Status(code).JSON(ErrorResponse(code, message))
	}
}
