package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/SlavaShagalov/camp-enroll/internal/models"
	pkgErrors "github.com/SlavaShagalov/camp-enroll/internal/pkg/errors"
	"github.com/SlavaShagalov/camp-enroll/internal/selections/usecase"
	"github.com/SlavaShagalov/camp-enroll/pkg/sqlxutils"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

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

func (r *SqlxRepository) Create(ctx context.Context, params usecase.CreateParams) (models.Selection, error) {
	const createCmd = `
	INSERT INTO selected_classes (student_email, course_id)
	VALUES ($1, $2)
	RETURNING id, student_email, course_id, selected, created_at;`

	var selection models.Selection
	err := sqlxutils.Get(ctx, r.db, &selection, createCmd, params.StudentEmail, params.CourseID)
	if err != nil {
		mapped := mapInsertError(err)
		if errors.Is(mapped, pkgErrors.ErrDb) {
			r.logger.Error(err.Error())
		}
		return models.Selection{}, mapped
	}

	return selection, nil
}

// mapInsertError translates the constraint violations the selection insert
// can raise: a duplicate (student_email, course_id) pair is a conflict, a
// course_id no class row carries is a missing class.
func mapInsertError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case uniqueViolation:
			return pkgErrors.ErrAlreadySelected
		case foreignKeyViolation:
			return pkgErrors.ErrClassNotFound
		}
	}
	return errors.Wrap(pkgErrors.ErrDb, err.Error())
}

func (r *SqlxRepository) ListByEmail(ctx context.Context, email string) ([]models.Selection, error) {
	const listCmd = `
	SELECT id, student_email, course_id, selected, created_at
	FROM selected_classes
	WHERE student_email = $1
	ORDER BY created_at;`

	selections := make([]models.Selection, 0)
	err := sqlxutils.Select(ctx, r.db, &selections, listCmd, email)
	if err != nil {
		r.logger.Error(err.Error())
		return nil, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return selections, nil
}

func (r *SqlxRepository) Get(ctx context.Context, id string) (models.Selection, error) {
	const getCmd = `
	SELECT id, student_email, course_id, selected, created_at
	FROM selected_classes
	WHERE id = $1;`

	var selection models.Selection
	err := sqlxutils.Get(ctx, r.db, &selection, getCmd, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Selection{}, pkgErrors.ErrSelectionNotFound
	} else if err != nil {
		r.logger.Error(err.Error())
		return models.Selection{}, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return selection, nil
}

func (r *SqlxRepository) Delete(ctx context.Context, id string) (int64, error) {
	const deleteCmd = `DELETE FROM selected_classes WHERE id = $1;`

	res, err := r.db.ExecContext(ctx, deleteCmd, id)
	if err != nil {
		r.logger.Error(err.Error())
		return 0, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return res.RowsAffected()
}
