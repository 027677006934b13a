package usecase

import (
	"context"

	"github.com/SlavaShagalov/camp-enroll/internal/models"
)

type CreateParams struct {
	Email    string
	Name     string
	PhotoURL string
}

type Repository interface {
	HealthCheck(ctx context.Context) error

	Create(ctx context.Context, params CreateParams) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	List(ctx context.Context) ([]models.User, error)
	UpdateRole(ctx context.Context, id string, role models.Role) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}
