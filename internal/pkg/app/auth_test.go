package app

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SlavaShagalov/camp-enroll/internal/models"
	"github.com/SlavaShagalov/camp-enroll/internal/tokens"
)

type stubRoles map[string]models.Role

func (s stubRoles) RoleByEmail(_ context.Context, email string) (models.Role, error) {
	role, ok := s[email]
	if !ok {
		return "", assert.AnError
	}
	return role, nil
}

func newTestApp(roles RoleSource, service *tokens.Service) *fiber.App {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	app := fiber.New()
	app.Get("/protected", RequireAuth(service, logger), func(c *fiber.Ctx) error {
		return c.SendString(CallerEmail(c))
	})
	app.Get("/admin", RequireAuth(service, logger), RequireRole(roles, models.RoleAdmin, logger), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	return app
}

func TestRequireAuthMissingHeader(t *testing.T) {
	app := newTestApp(stubRoles{}, tokens.New("secret", time.Hour))

	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireAuthMalformedToken(t *testing.T) {
	app := newTestApp(stubRoles{}, tokens.New("secret", time.Hour))

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRequireAuthExpiredToken(t *testing.T) {
	expired := tokens.New("secret", -time.Minute)
	app := newTestApp(stubRoles{}, tokens.New("secret", time.Hour))

	token, err := expired.Issue("student@camp.dev")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRequireAuthValidToken(t *testing.T) {
	service := tokens.New("secret", time.Hour)
	app := newTestApp(stubRoles{}, service)

	token, err := service.Issue("student@camp.dev")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "student@camp.dev", string(body))
}

func TestRequireRole(t *testing.T) {
	service := tokens.New("secret", time.Hour)
	roles := stubRoles{
		"admin@camp.dev":   models.RoleAdmin,
		"student@camp.dev": models.RoleNone,
	}
	app := newTestApp(roles, service)

	tests := []struct {
		name   string
		email  string
		status int
	}{
		{name: "admin allowed", email: "admin@camp.dev", status: fiber.StatusOK},
		{name: "student rejected", email: "student@camp.dev", status: fiber.StatusForbidden},
		{name: "unknown rejected", email: "ghost@camp.dev", status: fiber.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := service.Issue(tt.email)
			require.NoError(t, err)

			req := httptest.NewRequest("GET", "/admin", nil)
			req.Header.Set("Authorization", "Bearer "+token)

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	service := tokens.New("secret", time.Hour)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	app := fiber.New()
	app.Get("/classes", OptionalAuth(service, logger), func(c *fiber.Ctx) error {
		return c.SendString(CallerEmail(c))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/classes", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	req := httptest.NewRequest("GET", "/classes", nil)
	req.Header.Set("Authorization", "Bearer junk")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
