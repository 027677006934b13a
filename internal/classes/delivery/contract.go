package delivery

import (
	"context"

	"github.com/SlavaShagalov/camp-enroll/internal/classes/usecase"
	"github.com/SlavaShagalov/camp-enroll/internal/models"
	"github.com/SlavaShagalov/camp-enroll/internal/pkg/app"
)

type UseCase interface {
	app.HealthChecker

	Create(ctx context.Context, params usecase.CreateParams) (models.Class, error)
	List(ctx context.Context, instructorEmail string) ([]models.Class, error)
	Get(ctx context.Context, id string) (models.Class, error)
	Update(ctx context.Context, callerEmail, id string, params usecase.UpdateParams) (int64, error)
	ChangeStatus(ctx context.Context, id string, status models.ClassStatus) (int64, error)
	AdjustSeats(ctx context.Context, id string) (int64, error)
}
