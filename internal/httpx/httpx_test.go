package httpx

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, app *fiber.App, path string) (int, map[string]interface{}) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestErrorHelpers(t *testing.T) {
	app := fiber.New()
	app.Use(requestid.New())
	app.Get("/bad", func(c *fiber.Ctx) error { return BadRequest(c, "invalid_day", "Invalid day") })
	app.Get("/empty", func(c *fiber.Ctx) error { return Forbidden(c, "forbidden", "") })
	app.Get("/internal", func(c *fiber.Ctx) error { return Internal(c, "internal_error") })
	app.Get("/extra", func(c *fiber.Ctx) error {
		return ErrorWith(c, fiber.StatusUnauthorized, "password_required", "Password required", fiber.Map{"needsPassword": true})
	})

	status, body := decode(t, app, "/bad")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "invalid_day", body["code"])
	assert.Equal(t, "Invalid day", body["error"])
	assert.NotEmpty(t, body["request_id"])

	status, body = decode(t, app, "/empty")
	assert.Equal(t, fiber.StatusForbidden, status)
	assert.Equal(t, "Request failed", body["error"])

	status, body = decode(t, app, "/internal")
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, "Internal server error", body["error"])

	status, body = decode(t, app, "/extra")
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, true, body["needsPassword"])
	assert.Equal(t, "password_required", body["code"])
	assert.NotEmpty(t, body["request_id"])
}

func TestLocals(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		_, err := LocalUint(c, "user_id")
		assert.Error(t, err)

		c.Locals("user_id", "7")
		_, err = LocalUint(c, "user_id")
		assert.Error(t, err)

		c.Locals("user_id", uint(7))
		id, err := LocalUint(c, "user_id")
		assert.NoError(t, err)
		assert.Equal(t, uint(7), id)

		assert.Equal(t, "", LocalString(c, "role"))
		c.Locals("role", "admin")
		assert.Equal(t, "admin", LocalString(c, "role"))
		return c.JSON(fiber.Map{})
	})
	status, _ := decode(t, app, "/")
	assert.Equal(t, fiber.StatusOK, status)
}
