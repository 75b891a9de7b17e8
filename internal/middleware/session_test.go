package middleware

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gharbari_backend/pkg/utils/jwt"
)

func sessionEchoApp() *fiber.App {
	app := fiber.New()
	app.Get("/whoami", SessionMiddleware(), func(c *fiber.Ctx) error {
		return c.SendString(SessionID(c))
	})
	return app
}

func TestSessionMiddlewareBearerToken(t *testing.T) {
	app := sessionEchoApp()

	token, err := jwt.GenerateSessionToken("session-123", "web")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "session-123", string(body))
}

func TestSessionMiddlewareInvalidBearerRejected(t *testing.T) {
	app := sessionEchoApp()

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestSessionMiddlewareHeaderFallback(t *testing.T) {
	app := sessionEchoApp()

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("X-Session-ID", "header-session")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "header-session", string(body))
}

func TestSessionMiddlewareAnonymous(t *testing.T) {
	app := sessionEchoApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/whoami", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Empty(t, string(body))
}
