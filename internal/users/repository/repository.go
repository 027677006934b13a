package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/SlavaShagalov/camp-enroll/internal/models"
	pkgErrors "github.com/SlavaShagalov/camp-enroll/internal/pkg/errors"
	"github.com/SlavaShagalov/camp-enroll/internal/users/usecase"
	"github.com/SlavaShagalov/camp-enroll/pkg/sqlxutils"
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

func (r *SqlxRepository) Create(ctx context.Context, params usecase.CreateParams) (models.User, error) {
	const createCmd = `
	INSERT INTO users (email, name, photo_url)
	VALUES ($1, $2, $3)
	RETURNING id, email, name, photo_url, role, created_at, updated_at;`

	var user models.User
	err := sqlxutils.Get(ctx, r.db, &user, createCmd, params.Email, params.Name, params.PhotoURL)
	if err != nil {
		r.logger.Error(err.Error())
		return models.User{}, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return user, nil
}

func (r *SqlxRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	const getCmd = `
	SELECT id, email, name, photo_url, role, created_at, updated_at
	FROM users
	WHERE email = $1;`

	var user models.User
	err := sqlxutils.Get(ctx, r.db, &user, getCmd, email)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, pkgErrors.ErrUserNotFound
	} else if err != nil {
		r.logger.Error(err.Error())
		return models.User{}, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return user, nil
}

func (r *SqlxRepository) List(ctx context.Context) ([]models.User, error) {
	const listCmd = `
	SELECT id, email, name, photo_url, role, created_at, updated_at
	FROM users
	ORDER BY created_at;`

	users := make([]models.User, 0)
	err := sqlxutils.Select(ctx, r.db, &users, listCmd)
	if err != nil {
		r.logger.Error(err.Error())
		return nil, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return users, nil
}

func (r *SqlxRepository) UpdateRole(ctx context.Context, id string, role models.Role) (int64, error) {
	const updateCmd = `
	UPDATE users
	SET role = $2, updated_at = now()
	WHERE id = $1;`

	res, err := r.db.ExecContext(ctx, updateCmd, id, role)
	if err != nil {
		r.logger.Error(err.Error())
		return 0, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return res.RowsAffected()
}

func (r *SqlxRepository) Delete(ctx context.Context, id string) (int64, error) {
	const deleteCmd = `DELETE FROM users WHERE id = $1;`

	res, err := r.db.ExecContext(ctx, deleteCmd, id)
	if err != nil {
		r.logger.Error(err.Error())
		return 0, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return res.RowsAffected()
}
