package usecase

import (
	"context"
	"log/slog"

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

func (u *UseCase) Create(ctx context.Context, params CreateParams) (models.Class, error) {
	return u.repo.Create(ctx, params)
}

// List returns the approved catalog, or an instructor's own classes when an
// email filter is given.
func (u *UseCase) List(ctx context.Context, instructorEmail string) ([]models.Class, error) {
	if instructorEmail == "" {
		return u.repo.ListApproved(ctx)
	}
	return u.repo.ListByInstructor(ctx, instructorEmail)
}

func (u *UseCase) Get(ctx context.Context, id string) (models.Class, error) {
	return u.repo.Get(ctx, id)
}

// Update lets the owning instructor overwrite the editable fields.
func (u *UseCase) Update(ctx context.Context, callerEmail, id string, params UpdateParams) (int64, error) {
	class, err := u.repo.Get(ctx, id)
	if err != nil {
		return 0, err
	}
	if class.InstructorEmail != callerEmail {
		return 0, pkgErrors.ErrForbidden
	}

	return u.repo.Update(ctx, id, params)
}

func (u *UseCase) ChangeStatus(ctx context.Context, id string, status models.ClassStatus) (int64, error) {
	switch status {
	case models.ClassPending, models.ClassApproved, models.ClassDenied:
	default:
		return 0, pkgErrors.ErrInvalidRequest
	}

	updated, err := u.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return 0, err
	}
	if updated == 0 {
		return 0, pkgErrors.ErrClassNotFound
	}

	return updated, nil
}

// AdjustSeats takes one seat and counts one enrollment for the class. The
// statement is atomic and refuses to take the last seat twice.
func (u *UseCase) AdjustSeats(ctx context.Context, id string) (int64, error) {
	return u.repo.AdjustSeats(ctx, id)
}
