package handlers

import (
	"strconv"

	"github.com/dursunaydin1/refik-app/internal/httpx"
	"github.com/dursunaydin1/refik-app/internal/models"
	"github.com/dursunaydin1/refik-app/internal/service"
	"github.com/gofiber/fiber/v2"
)

func sessionUser(c *fiber.Ctx) (uint, bool) {
	userID, err := httpx.LocalUint(c, "userID")
	return userID, err == nil
}

func isAdminSession(c *fiber.Ctx) bool {
	return httpx.LocalString(c, "role") == string(models.RoleAdmin)
}

// queryUserID reads ?userId= for read endpoints. Members may only read
// themselves; admins may read anyone.
func queryUserID(c *fiber.Ctx) (uint, error) {
	raw := c.Query("userId")
	if raw == "" {
		return 0, errMissingUserID
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errInvalidUserID
	}
	return authorizeTarget(c, uint(id), true)
}

// bodyUserID checks a userId from a write request. Writes are always
// self-only.
func bodyUserID(c *fiber.Ctx, id uint) (uint, error) {
	if id == 0 {
		return 0, errMissingUserID
	}
	return authorizeTarget(c, id, false)
}

func authorizeTarget(c *fiber.Ctx, id uint, adminMayAct bool) (uint, error) {
	self, ok := sessionUser(c)
	if !ok {
		return 0, service.ErrNotAuthorized
	}
	if id == self || (adminMayAct && isAdminSession(c)) {
		return id, nil
	}
	return 0, service.ErrNotAuthorized
}
