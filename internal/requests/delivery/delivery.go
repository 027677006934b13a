package delivery

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/SlavaShagalov/camp-enroll/internal/pkg/app"
	"github.com/SlavaShagalov/camp-enroll/internal/requests/repository"
)

// Repository reads the request log the statistics consumer fills.
type Repository interface {
	GetRequests(ctx context.Context) ([]repository.Request, error)
}

type Delivery struct {
	repo   Repository
	logger *slog.Logger
}

func New(repo Repository, logger *slog.Logger) *Delivery {
	return &Delivery{
		repo:   repo,
		logger: logger,
	}
}

func (d *Delivery) AddHandlers(router fiber.Router, gate app.Gate) {
	router.Get("/requests", gate.Auth, gate.Admin, d.list)
}

func (d *Delivery) list(ctx *fiber.Ctx) error {
	requests, err := d.repo.GetRequests(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(requests)
}
