package app

import (
	"context"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/SlavaShagalov/camp-enroll/internal/models"
	pkgErrors "github.com/SlavaShagalov/camp-enroll/internal/pkg/errors"
)

const emailLocal = "authEmail"

// TokenParser validates a signed token and extracts the email claim.
type TokenParser interface {
	Parse(token string) (string, error)
}

// RoleSource resolves the stored role of a caller. Roles live in the users
// collection, not in the token, so a role change takes effect on the next
// request without reissuing tokens.
type RoleSource interface {
	RoleByEmail(ctx context.Context, email string) (models.Role, error)
}

// RequireAuth checks the Authorization header. A missing header is
// Unauthorized; a header whose token is missing, malformed or expired is
// Forbidden. On success the claims email is stored for downstream handlers.
func RequireAuth(tokens TokenParser, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(pkgErrors.ErrMissingAuthHeader.Map())
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return c.Status(fiber.StatusForbidden).JSON(pkgErrors.ErrInvalidToken.Map())
		}

		email, err := tokens.Parse(token)
		if err != nil {
			logger.Debug("reject token", slog.String("error", err.Error()))
			return c.Status(fiber.StatusForbidden).JSON(pkgErrors.ErrInvalidToken.Map())
		}

		c.Locals(emailLocal, email)

		return c.Next()
	}
}

// OptionalAuth authenticates when an Authorization header is present and
// lets anonymous requests through untouched. A present-but-bad credential is
// still Forbidden; silently downgrading it to anonymous would mask expiry.
func OptionalAuth(tokens TokenParser, logger *slog.Logger) fiber.Handler {
	authed := RequireAuth(tokens, logger)
	return func(c *fiber.Ctx) error {
		if c.Get(fiber.HeaderAuthorization) == "" {
			return c.Next()
		}
		return authed(c)
	}
}

// RequireRole allows the request through only if the caller's stored role
// matches. Must be registered after RequireAuth.
func RequireRole(roles RoleSource, role models.Role, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email := CallerEmail(c)
		if email == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(pkgErrors.ErrMissingAuthHeader.Map())
		}

		stored, err := roles.RoleByEmail(c.Context(), email)
		if err != nil {
			logger.Debug("resolve role", slog.String("email", email), slog.String("error", err.Error()))
			return c.Status(fiber.StatusForbidden).JSON(pkgErrors.ErrForbidden.Map())
		}

		if stored != role {
			return c.Status(fiber.StatusForbidden).JSON(pkgErrors.ErrForbidden.Map())
		}

		return c.Next()
	}
}

// CallerEmail returns the authenticated email attached by RequireAuth,
// or "" on an ungated route.
func CallerEmail(c *fiber.Ctx) string {
	email, _ := c.Locals(emailLocal).(string)
	return email
}
