package delivery

import (
	"context"

	"github.com/SlavaShagalov/camp-enroll/internal/models"
	"github.com/SlavaShagalov/camp-enroll/internal/pkg/app"
	"github.com/SlavaShagalov/camp-enroll/internal/users/usecase"
)

type UseCase interface {
	app.HealthChecker

	Create(ctx context.Context, params usecase.CreateParams) (models.User, bool, error)
	List(ctx context.Context) ([]models.User, error)
	ChangeRole(ctx context.Context, id string, role models.Role) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
	HasRole(ctx context.Context, callerEmail, email string, role models.Role) (bool, error)
}
