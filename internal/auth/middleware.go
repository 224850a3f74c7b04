package auth

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	// UserIDLocalKey is the key under which the authenticated user's id is
	// stored in Fiber's context locals.
	UserIDLocalKey = "user_id"

	// TokenCookieName is the cookie the auth front-end sets on login.
	TokenCookieName = "token"
)

// RequireAuth verifies the caller's access token (Authorization bearer header
// or login cookie) and injects the user id into context locals. Requests
// without a valid token are rejected with 401 before reaching the handler.
func RequireAuth(m *Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c)
		if token == "" {
			token = c.Cookies(TokenCookieName)
		}
		if token == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "authorization token is missing")
		}

		claims, err := m.VerifyAccessToken(token, time.Now())
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid or expired token")
		}

		c.Locals(UserIDLocalKey, claims.UserID)
		return c.Next()
	}
}

// UserID extracts the authenticated user id set by RequireAuth.
func UserID(c *fiber.Ctx) string {
	if v, ok := c.Locals(UserIDLocalKey).(string); ok {
		return v
	}
	return ""
}

func bearerToken(c *fiber.Ctx) string {
	h := c.Get(fiber.HeaderAuthorization)
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
