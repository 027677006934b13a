package usecase

import (
	"context"

	"github.com/SlavaShagalov/camp-enroll/internal/models"
)

type CreateParams struct {
	Name            string
	Thumbnail       string
	InstructorEmail string
	InstructorName  string
	Price           float64
	AvailableSeats  int
	Description     string
}

// UpdateParams overwrites exactly the five instructor-editable fields.
type UpdateParams struct {
	Name           string
	Thumbnail      string
	Price          float64
	AvailableSeats int
	Description    string
}

type Repository interface {
	HealthCheck(ctx context.Context) error

	Create(ctx context.Context, params CreateParams) (models.Class, error)
	ListApproved(ctx context.Context) ([]models.Class, error)
	ListByInstructor(ctx context.Context, email string) ([]models.Class, error)
	Get(ctx context.Context, id string) (models.Class, error)
	Update(ctx context.Context, id string, params UpdateParams) (int64, error)
	UpdateStatus(ctx context.Context, id string, status models.ClassStatus) (int64, error)
	AdjustSeats(ctx context.Context, id string) (int64, error)
}
