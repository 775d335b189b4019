package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"propapi/internal/auth"
	"propapi/internal/model"
)

// CallerLocalKey is the key the authenticated caller is stored under in
// Fiber's context locals.
const CallerLocalKey = "caller"

// Auth verifies the bearer token and stashes the caller identity in the
// locals and in the request context, where the validation entry point
// expects it. Requests without a valid token are rejected before any
// handler runs.
func Auth(tokens *auth.Tokens) fiber.Handler {
	const prefix = "Bearer "
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
			return fiber.NewError(fiber.StatusUnauthorized, "missing bearer token")
		}
		claims, err := tokens.Parse(strings.TrimSpace(header[len(prefix):]))
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid or expired token")
		}

		caller := auth.Caller{UID: claims.UID, Email: claims.Email, Role: model.Role(claims.Role)}
		c.Locals(CallerLocalKey, caller)
		c.SetUserContext(auth.WithCaller(c.UserContext(), caller))

		return c.Next()
	}
}
