package middleware

import (
	"github.com/dursunaydin1/refik-app/internal/httpx"
	"github.com/dursunaydin1/refik-app/internal/models"
	"github.com/gofiber/fiber/v2"
)

// RequireRole lets the request through when the session role is one of
// roles. It runs after AuthRequired.
func RequireRole(roles ...models.Role) fiber.Handler {
	allowed := make(map[models.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role := models.Role(httpx.LocalString(c, "role"))
		if _, ok := allowed[role]; !ok {
			return httpx.Forbidden(c, "forbidden", "Insufficient permissions")
		}
		return c.Next()
	}
}
