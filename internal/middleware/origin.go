package middleware

import (
	"strings"

	"github.com/dursunaydin1/refik-app/internal/httpx"
	"github.com/gofiber/fiber/v2"
)

// originSet holds normalized origins. A nil set admits everything.
type originSet map[string]struct{}

// parseOrigins reads the same comma separated list the CORS middleware gets.
// An empty list or a "*" entry disables the check.
func parseOrigins(csv string) originSet {
	set := make(originSet)
	for _, entry := range strings.Split(csv, ",") {
		origin := normalizeOrigin(entry)
		if origin == "*" {
			return nil
		}
		if origin != "" {
			set[origin] = struct{}{}
		}
	}
	if len(set) == 0 {
		return nil
	}
	return set
}

func normalizeOrigin(origin string) string {
	return strings.TrimRight(strings.ToLower(strings.TrimSpace(origin)), "/")
}

func (s originSet) admits(origin string) bool {
	if s == nil {
		return true
	}
	_, ok := s[normalizeOrigin(origin)]
	return ok
}

// OriginAllowed rejects browser requests whose Origin header is outside
// allowedCSV. Requests without an Origin header (curl, cron) pass.
func OriginAllowed(allowedCSV string) fiber.Handler {
	allowed := parseOrigins(allowedCSV)
	return func(c *fiber.Ctx) error {
		origin := c.Get(fiber.HeaderOrigin)
		if strings.TrimSpace(origin) == "" || allowed.admits(origin) {
			return c.Next()
		}
		return httpx.Forbidden(c, "forbidden_origin", "Origin not allowed")
	}
}
