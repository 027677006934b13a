package repository

import (
	"context"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/SlavaShagalov/camp-enroll/internal/enrollments/usecase"
	"github.com/SlavaShagalov/camp-enroll/internal/models"
	pkgErrors "github.com/SlavaShagalov/camp-enroll/internal/pkg/errors"
	"github.com/SlavaShagalov/camp-enroll/pkg/sqlxutils"
)

const enrollmentColumns = `id, student_email, course_id, class_name, payment_intent_id, amount_cents, created_at`

type SqlxRepository struct {
	db     *sqlx.DB
	logger *slog.Logger
}

func NewSqlxRepository(db *sqlx.DB, logger *slog.Logger) *SqlxRepository {
	return &SqlxRepository{
		db:     db,
		logger: logger,
	}
}

func (r *SqlxRepository) HealthCheck(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *SqlxRepository) Create(ctx context.Context, params usecase.CreateParams) (models.Enrollment, error) {
	const createCmd = `
	INSERT INTO enrollments (student_email, course_id, class_name, payment_intent_id, amount_cents)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING ` + enrollmentColumns + `;`

	var enrollment models.Enrollment
	err := sqlxutils.Get(ctx, r.db, &enrollment, createCmd,
		params.StudentEmail, params.CourseID, params.ClassName, params.PaymentIntentID, params.AmountCents)
	if err != nil {
		r.logger.Error(err.Error())
		return models.Enrollment{}, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return enrollment, nil
}

func (r *SqlxRepository) List(ctx context.Context) ([]models.Enrollment, error) {
	const listCmd = `
	SELECT ` + enrollmentColumns + `
	FROM enrollments
	ORDER BY created_at;`

	return r.list(ctx, listCmd)
}

func (r *SqlxRepository) ListByEmail(ctx context.Context, email string) ([]models.Enrollment, error) {
	const listCmd = `
	SELECT ` + enrollmentColumns + `
	FROM enrollments
	WHERE student_email = $1
	ORDER BY created_at;`

	return r.list(ctx, listCmd, email)
}

func (r *SqlxRepository) list(ctx context.Context, cmd string, args ...interface{}) ([]models.Enrollment, error) {
	enrollments := make([]models.Enrollment, 0)
	err := sqlxutils.Select(ctx, r.db, &enrollments, cmd, args...)
	if err != nil {
		r.logger.Error(err.Error())
		return nil, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return enrollments, nil
}
