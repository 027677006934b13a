package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SlavaShagalov/camp-enroll/internal/payments/usecase"
	"github.com/SlavaShagalov/camp-enroll/internal/payments/usecase/mocks"
	pkgErrors "github.com/SlavaShagalov/camp-enroll/internal/pkg/errors"
)

func newUseCase(t *testing.T) (*usecase.UseCase, *mocks.MockGateway) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	gateway := mocks.NewMockGateway(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return usecase.New(gateway, logger), gateway
}

// A $50 class is a 5000-cent usd intent.
func TestCreateIntentAmount(t *testing.T) {
	uc, gateway := newUseCase(t)

	gateway.EXPECT().CreateIntent(gomock.Any(), int64(5000), "usd").
		Return(usecase.Intent{ID: "pi_1", ClientSecret: "pi_1_secret"}, nil)

	intent, err := uc.CreateIntent(context.Background(), 50)
	require.NoError(t, err)
	assert.Equal(t, "pi_1_secret", intent.ClientSecret)
}

func TestCreateIntentRoundsCents(t *testing.T) {
	uc, gateway := newUseCase(t)

	gateway.EXPECT().CreateIntent(gomock.Any(), int64(1999), "usd").Return(usecase.Intent{ID: "pi_2"}, nil)

	_, err := uc.CreateIntent(context.Background(), 19.99)
	require.NoError(t, err)
}

// A falsy price is an explicit validation error; the gateway is never
// called and the client always gets a response.
func TestCreateIntentZeroPrice(t *testing.T) {
	uc, _ := newUseCase(t)

	_, err := uc.CreateIntent(context.Background(), 0)
	assert.ErrorIs(t, err, pkgErrors.ErrInvalidPrice)
}

func TestCreateIntentNegativePrice(t *testing.T) {
	uc, _ := newUseCase(t)

	_, err := uc.CreateIntent(context.Background(), -10)
	assert.ErrorIs(t, err, pkgErrors.ErrInvalidPrice)
}
