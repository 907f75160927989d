package middleware

import (
	"crypto/subtle"

	"github.com/dursunaydin1/refik-app/internal/httpx"
	"github.com/gofiber/fiber/v2"
)

// CronSecret guards scheduler endpoints with "Authorization: Bearer <secret>".
// An empty secret leaves the endpoint open.
func CronSecret(secret string) fiber.Handler {
	want := []byte("Bearer " + secret)
	return func(c *fiber.Ctx) error {
		if secret == "" {
			return c.Next()
		}
		if subtle.ConstantTimeCompare([]byte(c.Get("Authorization")), want) != 1 {
			return httpx.Unauthorized(c, "invalid_cron_secret", "Unauthorized")
		}
		return c.Next()
	}
}
