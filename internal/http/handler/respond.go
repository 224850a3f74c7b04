package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"notehub/internal/service"
)

// serviceError translates the service layer's sentinel errors into the
// standardized error envelope. Unknown errors become opaque 500s.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrIDRequired):
		return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
	case errors.Is(err, service.ErrValidation):
		return writeError(c, fiber.StatusBadRequest, "INVALID_INPUT", "invalid input")
	case errors.Is(err, service.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "resource not found")
	case errors.Is(err, service.ErrNotOwner):
		return writeError(c, fiber.StatusForbidden, "FORBIDDEN", "you do not own this resource")
	case errors.Is(err, service.ErrTokenInvalid):
		return writeError(c, fiber.StatusUnauthorized, "INVALID_TOKEN", "share token is invalid or expired")
	case errors.Is(err, service.ErrQuotaExceeded):
		return writeError(c, fiber.StatusTooManyRequests, "QUOTA_EXCEEDED", "daily quota exceeded")
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}
