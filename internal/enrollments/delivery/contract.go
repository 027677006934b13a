package delivery

import (
	"context"

	"github.com/SlavaShagalov/camp-enroll/internal/enrollments/usecase"
	"github.com/SlavaShagalov/camp-enroll/internal/models"
	"github.com/SlavaShagalov/camp-enroll/internal/pkg/app"
)

type UseCase interface {
	app.HealthChecker

	Enroll(ctx context.Context, params usecase.CreateParams) (models.Enrollment, error)
	List(ctx context.Context) ([]models.Enrollment, error)
	ListByEmail(ctx context.Context, email string) ([]models.Enrollment, error)
}
