package usecase

import (
	"context"
	"log/slog"
	"math"

	pkgErrors "github.com/SlavaShagalov/camp-enroll/internal/pkg/errors"
)

// Prices are dollars on the wire, the processor takes cents.
const currency = "usd"

type UseCase struct {
	gateway Gateway
	logger  *slog.Logger
}

func New(gateway Gateway, logger *slog.Logger) *UseCase {
	return &UseCase{
		gateway: gateway,
		logger:  logger,
	}
}

// CreateIntent validates the price and asks the gateway for an intent. A
// missing or non-positive price is an explicit validation error, never a
// silent empty response.
func (u *UseCase) CreateIntent(ctx context.Context, price float64) (Intent, error) {
	if price <= 0 {
		return Intent{}, pkgErrors.ErrInvalidPrice
	}

	amountCents := int64(math.Round(price * 100))

	intent, err := u.gateway.CreateIntent(ctx, amountCents, currency)
	if err != nil {
		u.logger.Error("create payment intent", slog.String("error", err.Error()))
		return Intent{}, err
	}

	return intent, nil
}
