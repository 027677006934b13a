package migrations

import (
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	"github.com/pkg/errors"
)

// Do applies all pending migrations from the given directory.
func Do(connString, migrationsPath string, logger *slog.Logger) error {
	m, err := migrate.New("file://"+migrationsPath, connString)
	if err != nil {
		return errors.Wrap(err, "open migrations")
	}
	defer m.Close()

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Debug("migrations are up to date")
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "apply migrations")
	}

	logger.Debug("migrations applied")
	return nil
}
