package payments

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v84"

	pkgerrors "github.com/dcastano/modaluxe-backend/pkg/errors"
	modstripe "github.com/dcastano/modaluxe-backend/pkg/stripe"
)

// Intent is the subset of a provider payment intent the platform needs.
type Intent struct {
	ID               string `json:"id"`
	ClientSecret     string `json:"client_secret"`
	AmountMinorUnits int64  `json:"amount_minor_units"`
	Currency         string `json:"currency"`
}

// IntentCreator requests a payment intent from the payment provider.
type IntentCreator interface {
	CreateIntent(ctx context.Context, amountMinorUnits int64, currency string) (*Intent, error)
}

type stripeIntentCreator struct {
	client *modstripe.Client
}

// NewStripeIntentCreator builds the Stripe-backed intent creator.
func NewStripeIntentCreator(client *modstripe.Client) (IntentCreator, error) {
	if client == nil || client.API() == nil {
		return nil, fmt.Errorf("stripe client is required")
	}
	return &stripeIntentCreator{client: client}, nil
}

func (c *stripeIntentCreator) CreateIntent(ctx context.Context, amountMinorUnits int64, currency string) (*Intent, error) {
	if amountMinorUnits <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "amount must be positive")
	}
	if currency == "" {
		currency = "usd"
	}

	params := &stripe.PaymentIntentCreateParams{
		Amount:             stripe.Int64(amountMinorUnits),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}

	intent, err := c.client.API().V1PaymentIntents.Create(ctx, params)
	if err != nil {
		return nil, wrapStripeError(err)
	}

	return &Intent{
		ID:               intent.ID,
		ClientSecret:     intent.ClientSecret,
		AmountMinorUnits: intent.Amount,
		Currency:         string(intent.Currency),
	}, nil
}

// wrapStripeError surfaces the provider message on dependency failures.
func wrapStripeError(err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) && stripeErr.Msg != "" {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, stripeErr.Msg)
	}
	return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "payment provider unavailable")
}
