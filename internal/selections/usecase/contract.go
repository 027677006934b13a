package usecase

import (
	"context"

	"github.com/SlavaShagalov/camp-enroll/internal/models"
)

type CreateParams struct {
	StudentEmail string
	CourseID     string
}

type Repository interface {
	HealthCheck(ctx context.Context) error

	Create(ctx context.Context, params CreateParams) (models.Selection, error)
	ListByEmail(ctx context.Context, email string) ([]models.Selection, error)
	Get(ctx context.Context, id string) (models.Selection, error)
	Delete(ctx context.Context, id string) (int64, error)
}
