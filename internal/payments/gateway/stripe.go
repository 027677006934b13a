package gateway

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/sony/gobreaker/v2"
	stripe "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"

	"github.com/SlavaShagalov/camp-enroll/internal/payments/usecase"
	pkgErrors "github.com/SlavaShagalov/camp-enroll/internal/pkg/errors"
)

// StripeGateway creates PaymentIntents. Calls go through a circuit breaker:
// when the processor is down there is no point queueing every checkout
// behind its timeout.
type StripeGateway struct {
	client  *client.API
	breaker *gobreaker.CircuitBreaker[*stripe.PaymentIntent]
	logger  *slog.Logger
}

func NewStripe(secretKey string, logger *slog.Logger) *StripeGateway {
	api := &client.API{}
	api.Init(secretKey, nil)

	breaker := gobreaker.NewCircuitBreaker[*stripe.PaymentIntent](gobreaker.Settings{
		Name: "stripe",
	})

	return &StripeGateway{
		client:  api,
		breaker: breaker,
		logger:  logger,
	}
}

func (g *StripeGateway) CreateIntent(ctx context.Context, amountCents int64, currency string) (usecase.Intent, error) {
	params := &stripe.PaymentIntentParams{
		Params:             stripe.Params{Context: ctx},
		Amount:             stripe.Int64(amountCents),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}

	intent, err := g.breaker.Execute(func() (*stripe.PaymentIntent, error) {
		return g.client.PaymentIntents.New(params)
	})
	if err != nil {
		g.logger.Error("stripe payment intent", slog.String("error", err.Error()))
		return usecase.Intent{}, errors.Wrap(pkgErrors.ErrPaymentGateway, err.Error())
	}

	return usecase.Intent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
	}, nil
}
