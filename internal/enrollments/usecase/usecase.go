package usecase

import (
	"context"
	"log/slog"

	"github.com/SlavaShagalov/camp-enroll/internal/models"
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

// Enroll appends the enrollment record. Seat accounting and selection
// cleanup are separate operations driven by the client flow; there is no
// transaction spanning them.
func (u *UseCase) Enroll(ctx context.Context, params CreateParams) (models.Enrollment, error) {
	return u.repo.Create(ctx, params)
}

func (u *UseCase) List(ctx context.Context) ([]models.Enrollment, error) {
	return u.repo.List(ctx)
}

func (u *UseCase) ListByEmail(ctx context.Context, email string) ([]models.Enrollment, error) {
	return u.repo.ListByEmail(ctx, email)
}
