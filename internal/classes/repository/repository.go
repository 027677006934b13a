package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/SlavaShagalov/camp-enroll/internal/classes/usecase"
	"github.com/SlavaShagalov/camp-enroll/internal/models"
	pkgErrors "github.com/SlavaShagalov/camp-enroll/internal/pkg/errors"
	"github.com/SlavaShagalov/camp-enroll/pkg/sqlxutils"
)

const classColumns = `id, name, thumbnail, instructor_email, instructor_name,
	price, available_seats, description, status, enrolled, created_at`

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

func (r *SqlxRepository) Create(ctx context.Context, params usecase.CreateParams) (models.Class, error) {
	const createCmd = `
	INSERT INTO classes (name, thumbnail, instructor_email, instructor_name, price, available_seats, description)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING ` + classColumns + `;`

	var class models.Class
	err := sqlxutils.Get(ctx, r.db, &class, createCmd,
		params.Name, params.Thumbnail, params.InstructorEmail, params.InstructorName,
		params.Price, params.AvailableSeats, params.Description)
	if err != nil {
		r.logger.Error(err.Error())
		return models.Class{}, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return class, nil
}

func (r *SqlxRepository) ListApproved(ctx context.Context) ([]models.Class, error) {
	const listCmd = `
	SELECT ` + classColumns + `
	FROM classes
	WHERE status = 'approved'
	ORDER BY created_at;`

	return r.list(ctx, listCmd)
}

func (r *SqlxRepository) ListByInstructor(ctx context.Context, email string) ([]models.Class, error) {
	const listCmd = `
	SELECT ` + classColumns + `
	FROM classes
	WHERE instructor_email = $1
	ORDER BY created_at;`

	return r.list(ctx, listCmd, email)
}

func (r *SqlxRepository) list(ctx context.Context, cmd string, args ...interface{}) ([]models.Class, error) {
	classes := make([]models.Class, 0)
	err := sqlxutils.Select(ctx, r.db, &classes, cmd, args...)
	if err != nil {
		r.logger.Error(err.Error())
		return nil, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return classes, nil
}

func (r *SqlxRepository) Get(ctx context.Context, id string) (models.Class, error) {
	const getCmd = `
	SELECT ` + classColumns + `
	FROM classes
	WHERE id = $1;`

	var class models.Class
	err := sqlxutils.Get(ctx, r.db, &class, getCmd, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Class{}, pkgErrors.ErrClassNotFound
	} else if err != nil {
		r.logger.Error(err.Error())
		return models.Class{}, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return class, nil
}

func (r *SqlxRepository) Update(ctx context.Context, id string, params usecase.UpdateParams) (int64, error) {
	const updateCmd = `
	UPDATE classes
	SET name = $2, thumbnail = $3, price = $4, available_seats = $5, description = $6
	WHERE id = $1;`

	res, err := r.db.ExecContext(ctx, updateCmd,
		id, params.Name, params.Thumbnail, params.Price, params.AvailableSeats, params.Description)
	if err != nil {
		r.logger.Error(err.Error())
		return 0, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return res.RowsAffected()
}

func (r *SqlxRepository) UpdateStatus(ctx context.Context, id string, status models.ClassStatus) (int64, error) {
	const updateCmd = `
	UPDATE classes
	SET status = $2
	WHERE id = $1;`

	res, err := r.db.ExecContext(ctx, updateCmd, id, status)
	if err != nil {
		r.logger.Error(err.Error())
		return 0, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return res.RowsAffected()
}

func (r *SqlxRepository) AdjustSeats(ctx context.Context, id string) (int64, error) {
	const adjustCmd = `
	UPDATE classes
	SET available_seats = available_seats - 1, enrolled = enrolled + 1
	WHERE id = $1 AND available_seats > 0;`

	res, err := r.db.ExecContext(ctx, adjustCmd, id)
	if err != nil {
		r.logger.Error(err.Error())
		return 0, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return res.RowsAffected()
}
