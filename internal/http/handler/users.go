package handler

import (
	"github.com/gofiber/fiber/v2"

	"notehub/internal/auth"
	"notehub/internal/service"
)

type loginTokenRequest struct {
	Token string `json:"token"`
}

// GetUserTier returns a user's subscription tier. Callers may only read
// their own.
func GetUserTier(usage service.UsageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Params("userId")
		if userID != auth.UserID(c) {
			return writeError(c, fiber.StatusForbidden, "FORBIDDEN", "you may only read your own tier")
		}
		tier, err := usage.Tier(c.UserContext(), userID)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(fiber.Map{"tier": tier})
	}
}

// TrackDownload spends one unit of the caller's daily download quota.
func TrackDownload(usage service.UsageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		count, err := usage.Consume(c.UserContext(), auth.UserID(c), service.MetricDownloads)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(fiber.Map{"used_today": count})
	}
}

// PutLoginToken rotates the caller's device-handoff token.
func PutLoginToken(usage service.UsageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req loginTokenRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "malformed request body")
		}
		if err := usage.RotateLoginToken(c.UserContext(), auth.UserID(c), req.Token); err != nil {
			return serviceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// GetLoginToken returns the caller's current device-handoff token.
func GetLoginToken(usage service.UsageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		lt, err := usage.LoginToken(c.UserContext(), auth.UserID(c))
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(fiber.Map{"token": lt.Token, "updated_at": lt.UpdatedAt})
	}
}
