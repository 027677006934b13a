package delivery

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/SlavaShagalov/camp-enroll/internal/payments/usecase"
	"github.com/SlavaShagalov/camp-enroll/internal/pkg/app"
	pkgErrors "github.com/SlavaShagalov/camp-enroll/internal/pkg/errors"
)

type UseCase interface {
	CreateIntent(ctx context.Context, price float64) (usecase.Intent, error)
}

type CreateIntentDTO struct {
	Price float64 `json:"price"`
}

type IntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

type Delivery struct {
	useCase UseCase
	logger  *slog.Logger
}

func New(useCase UseCase, logger *slog.Logger) *Delivery {
	return &Delivery{
		useCase: useCase,
		logger:  logger,
	}
}

func (d *Delivery) AddHandlers(router fiber.Router, gate app.Gate) {
	router.Post("/create-payment-intent", gate.Auth, d.createIntent)
}

func (d *Delivery) createIntent(ctx *fiber.Ctx) error {
	var dto CreateIntentDTO
	if err := ctx.BodyParser(&dto); err != nil {
		d.logger.Debug(err.Error())
		return pkgErrors.ErrInvalidRequest
	}

	intent, err := d.useCase.CreateIntent(ctx.Context(), dto.Price)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusOK).JSON(IntentResponse{ClientSecret: intent.ClientSecret})
}
