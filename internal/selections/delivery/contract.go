package delivery

import (
	"context"

	"github.com/SlavaShagalov/camp-enroll/internal/models"
	"github.com/SlavaShagalov/camp-enroll/internal/pkg/app"
)

type UseCase interface {
	app.HealthChecker

	Select(ctx context.Context, studentEmail, courseID string) (models.Selection, error)
	List(ctx context.Context, email string) ([]models.Selection, error)
	Get(ctx context.Context, callerEmail, id string) (models.Selection, error)
	Delete(ctx context.Context, callerEmail, id string) (int64, error)
}
