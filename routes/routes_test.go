package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	appconfig "app/config"
	"app/webhook"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func testApp() *fiber.App {
	app := fiber.New()
	cache := appconfig.NewCache()
	SetupRoutes(app, cache, webhook.NewClient(cache))
	return app
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	app := testApp()

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/stats"},
		{http.MethodPost, "/api/v1/insights"},
		{http.MethodGet, "/api/v1/citas/search"},
		{http.MethodGet, "/api/v1/settings/"},
		{http.MethodGet, "/api/v1/themes/"},
		{http.MethodGet, "/api/v1/usuarios/"},
	}
	for _, p := range paths {
		req := httptest.NewRequest(p.method, p.path, nil)
		resp, err := app.Test(req, -1)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, "%s %s should demand a token", p.method, p.path)
	}
}

func TestLoginRouteIsPublic(t *testing.T) {
	app := testApp()

	// No token needed; an empty body is rejected by the handler, not by the
	// auth middleware.
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.NotEqual(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.NotEqual(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestUnknownRouteIs404(t *testing.T) {
	app := testApp()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/no-existe", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
