package usecase

import (
	"context"

	"github.com/SlavaShagalov/camp-enroll/internal/models"
)

type CreateParams struct {
	StudentEmail    string
	CourseID        string
	ClassName       string
	PaymentIntentID string
	AmountCents     int64
}

type Repository interface {
	HealthCheck(ctx context.Context) error

	Create(ctx context.Context, params CreateParams) (models.Enrollment, error)
	List(ctx context.Context) ([]models.Enrollment, error)
	ListByEmail(ctx context.Context, email string) ([]models.Enrollment, error)
}
