package usecase

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/SlavaShagalov/camp-enroll/internal/models"
	pkgErrors "github.com/SlavaShagalov/camp-enroll/internal/pkg/errors"
)

type UseCase struct {
	repo   Repository
	logger *slog.Logger
}

func New(repo Repository, logger *slog.Logger) *UseCase {
	return &UseCase{
		repo:   repo,
		logger: logger,
	}
}

func (u *UseCase) HealthCheck(ctx context.Context) error {
	return u.repo.HealthCheck(ctx)
}

// Create stores a user on first sign-in. If the email is already known the
// existing record is returned untouched, role included.
func (u *UseCase) Create(ctx context.Context, params CreateParams) (models.User, bool, error) {
	existing, err := u.repo.GetByEmail(ctx, params.Email)
	if err == nil {
		return existing, true, nil
	}
	if !errors.Is(err, pkgErrors.ErrUserNotFound) {
		return models.User{}, false, err
	}

	user, err := u.repo.Create(ctx, params)
	if err != nil {
		return models.User{}, false, err
	}

	return user, false, nil
}

func (u *UseCase) List(ctx context.Context) ([]models.User, error) {
	return u.repo.List(ctx)
}

func (u *UseCase) ChangeRole(ctx context.Context, id string, role models.Role) (int64, error) {
	switch role {
	case models.RoleNone, models.RoleAdmin, models.RoleInstructor:
	default:
		return 0, pkgErrors.ErrInvalidRole
	}

	updated, err := u.repo.UpdateRole(ctx, id, role)
	if err != nil {
		return 0, err
	}
	if updated == 0 {
		return 0, pkgErrors.ErrUserNotFound
	}

	return updated, nil
}

// Delete reports how many records were removed. A missing id is a zero
// count, not an error.
func (u *UseCase) Delete(ctx context.Context, id string) (int64, error) {
	return u.repo.Delete(ctx, id)
}

// RoleByEmail backs the role gate middleware.
func (u *UseCase) RoleByEmail(ctx context.Context, email string) (models.Role, error) {
	user, err := u.repo.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	return user.Role, nil
}

// HasRole answers the admin/instructor self-check. A caller asking about
// somebody else's email gets a plain false, matching the original contract:
// the dashboard probes its own privileges, it never errors.
func (u *UseCase) HasRole(ctx context.Context, callerEmail, email string, role models.Role) (bool, error) {
	if callerEmail != email {
		return false, nil
	}

	user, err := u.repo.GetByEmail(ctx, email)
	if errors.Is(err, pkgErrors.ErrUserNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return user.Role == role, nil
}
