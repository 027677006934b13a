package delivery_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SlavaShagalov/camp-enroll/internal/models"
	"github.com/SlavaShagalov/camp-enroll/internal/pkg/app"
	"github.com/SlavaShagalov/camp-enroll/internal/users/delivery"
	"github.com/SlavaShagalov/camp-enroll/internal/users/usecase"
)

// stubUseCase returns canned answers; the state it records lets tests check
// what the handlers passed down.
type stubUseCase struct {
	existing map[string]models.User
	roles    map[string]models.Role

	createdParams usecase.CreateParams
}

func (s *stubUseCase) HealthCheck(context.Context) error { return nil }

func (s *stubUseCase) Create(_ context.Context, params usecase.CreateParams) (models.User, bool, error) {
	if user, ok := s.existing[params.Email]; ok {
		return user, true, nil
	}
	s.createdParams = params
	return models.User{
		ID:       "c3bb279e-57a1-4f9a-9f4a-9a3e7b0f8d21",
		Email:    params.Email,
		Name:     params.Name,
		PhotoURL: params.PhotoURL,
		Role:     models.RoleNone,
	}, false, nil
}

func (s *stubUseCase) List(context.Context) ([]models.User, error) { return nil, nil }

func (s *stubUseCase) ChangeRole(context.Context, string, models.Role) (int64, error) {
	return 1, nil
}

func (s *stubUseCase) Delete(context.Context, string) (int64, error) { return 0, nil }

func (s *stubUseCase) HasRole(_ context.Context, callerEmail, email string, role models.Role) (bool, error) {
	if callerEmail != email {
		return false, nil
	}
	return s.roles[email] == role, nil
}

func newTestApp(uc *stubUseCase, caller string) *fiber.App {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	passthrough := func(c *fiber.Ctx) error { return c.Next() }
	asCaller := func(c *fiber.Ctx) error {
		c.Locals("authEmail", caller)
		return c.Next()
	}
	gate := app.Gate{
		Auth:         asCaller,
		OptionalAuth: asCaller,
		Admin:        passthrough,
		Instructor:   passthrough,
	}

	webApp := app.NewFiberApp(app.WebConfig{}, gate, passthrough, logger, uc,
		delivery.New(uc, logger))
	return webApp.App()
}

func do(t *testing.T, fiberApp *fiber.App, method, target, body string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := fiberApp.Test(req)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()

	var parsed map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return parsed
}

func TestDelivery_Create(t *testing.T) {
	uc := &stubUseCase{existing: map[string]models.User{}}
	fiberApp := newTestApp(uc, "")

	resp := do(t, fiberApp, fiber.MethodPost, "/users",
		`{"email":"new@camp.dev","name":"New Student","photoUrl":"https://img/1.png"}`)

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	body := decode(t, resp)
	assert.Equal(t, "new@camp.dev", body["email"])
	assert.Equal(t, "New Student", uc.createdParams.Name)
}

func TestDelivery_CreateExisting(t *testing.T) {
	uc := &stubUseCase{existing: map[string]models.User{
		"old@camp.dev": {ID: "d7d9a4cf-68f4-44b5-bd4d-ff0f9e5b1852", Email: "old@camp.dev"},
	}}
	fiberApp := newTestApp(uc, "")

	resp := do(t, fiberApp, fiber.MethodPost, "/users", `{"email":"old@camp.dev"}`)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decode(t, resp)
	assert.Equal(t, "user already exists", body["message"])
}

func TestDelivery_CreateInvalidEmail(t *testing.T) {
	uc := &stubUseCase{existing: map[string]models.User{}}
	fiberApp := newTestApp(uc, "")

	resp := do(t, fiberApp, fiber.MethodPost, "/users", `{"email":"not-an-email"}`)

	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	body := decode(t, resp)
	errBody, ok := body["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "invalid request body", errBody["message"])
}

func TestDelivery_ChangeRoleBadID(t *testing.T) {
	uc := &stubUseCase{}
	fiberApp := newTestApp(uc, "root@camp.dev")

	resp := do(t, fiberApp, fiber.MethodPut, "/users/not-a-uuid/role", `{"role":"admin"}`)

	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestDelivery_ChangeRoleInvalidRole(t *testing.T) {
	uc := &stubUseCase{}
	fiberApp := newTestApp(uc, "root@camp.dev")

	resp := do(t, fiberApp, fiber.MethodPut,
		"/users/c3bb279e-57a1-4f9a-9f4a-9a3e7b0f8d21/role", `{"role":"superuser"}`)

	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	body := decode(t, resp)
	errBody, ok := body["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "role must be one of none, admin, instructor", errBody["message"])
}

func TestDelivery_DeleteMissing(t *testing.T) {
	uc := &stubUseCase{}
	fiberApp := newTestApp(uc, "root@camp.dev")

	resp := do(t, fiberApp, fiber.MethodDelete,
		"/users/c3bb279e-57a1-4f9a-9f4a-9a3e7b0f8d21", "")

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decode(t, resp)
	assert.Equal(t, float64(0), body["deleted"])
}

func TestDelivery_CheckAdmin(t *testing.T) {
	uc := &stubUseCase{roles: map[string]models.Role{"boss@camp.dev": models.RoleAdmin}}

	t.Run("own email with the role", func(t *testing.T) {
		fiberApp := newTestApp(uc, "boss@camp.dev")
		resp := do(t, fiberApp, fiber.MethodGet, "/users/admin/boss@camp.dev", "")

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, map[string]any{"admin": true}, decode(t, resp))
	})

	t.Run("foreign email answers false, not forbidden", func(t *testing.T) {
		fiberApp := newTestApp(uc, "someone@camp.dev")
		resp := do(t, fiberApp, fiber.MethodGet, "/users/admin/boss@camp.dev", "")

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, map[string]any{"admin": false}, decode(t, resp))
	})
}
