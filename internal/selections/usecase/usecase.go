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

// Select records a student's intent to enroll. The (email, courseId) pair is
// unique in the store, so a concurrent duplicate loses at insert time rather
// than slipping past a check.
func (u *UseCase) Select(ctx context.Context, studentEmail, courseID string) (models.Selection, error) {
	return u.repo.Create(ctx, CreateParams{
		StudentEmail: studentEmail,
		CourseID:     courseID,
	})
}

func (u *UseCase) List(ctx context.Context, email string) ([]models.Selection, error) {
	return u.repo.ListByEmail(ctx, email)
}

// Get returns a selection only to the student who made it.
func (u *UseCase) Get(ctx context.Context, callerEmail, id string) (models.Selection, error) {
	selection, err := u.repo.Get(ctx, id)
	if err != nil {
		return models.Selection{}, err
	}
	if selection.StudentEmail != callerEmail {
		return models.Selection{}, pkgErrors.ErrForbidden
	}

	return selection, nil
}

// Delete removes the caller's own selection. A missing id is a zero count.
func (u *UseCase) Delete(ctx context.Context, callerEmail, id string) (int64, error) {
	selection, err := u.repo.Get(ctx, id)
	if errors.Is(err, pkgErrors.ErrSelectionNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	if selection.StudentEmail != callerEmail {
		return 0, pkgErrors.ErrForbidden
	}

	return u.repo.Delete(ctx, id)
}
