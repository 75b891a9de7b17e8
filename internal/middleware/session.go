package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"gharbari_backend/pkg/utils/jwt"
)

// SessionMiddleware resolves the conversation session for a request and
// stores it in c.Locals("session_id"). A Bearer token wins over the
// X-Session-ID header; requests with neither proceed with an empty session
// and simply get no preference memory. A token that is present but invalid
// is rejected so a client never silently loses its session.
func SessionMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		auth := c.Get("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			claims, err := jwt.ValidateToken(strings.TrimPrefix(auth, "Bearer "))
			if err != nil {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Invalid or expired session token",
				})
			}
			c.Locals("session_id", claims.SessionID)
			return c.Next()
		}

		c.Locals("session_id", c.Get("X-Session-ID"))
		return c.Next()
	}
}

// SessionID returns the session resolved by SessionMiddleware, or "".
func SessionID(c *fiber.Ctx) string {
	if id, ok := c.Locals("session_id").(string); ok {
		return id
	}
	return ""
}
