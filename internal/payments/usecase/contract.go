package usecase

import "context"

// Intent is the client-usable payment handle the gateway returns.
type Intent struct {
	ID           string
	ClientSecret string
}

// Gateway creates payment intents with a third-party processor.
type Gateway interface {
	CreateIntent(ctx context.Context, amountCents int64, currency string) (Intent, error)
}
