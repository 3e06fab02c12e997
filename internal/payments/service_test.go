package payments

import (
	"context"
	"testing"

	pkgerrors "github.com/dcastano/modaluxe-backend/pkg/errors"
)

type stubIntentCreator struct {
	lastAmount   int64
	lastCurrency string
	err          error
}

func (s *stubIntentCreator) CreateIntent(ctx context.Context, amountMinorUnits int64, currency string) (*Intent, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.lastAmount = amountMinorUnits
	s.lastCurrency = currency
	return &Intent{
		ID:               "pi_test",
		ClientSecret:     "pi_test_secret",
		AmountMinorUnits: amountMinorUnits,
		Currency:         currency,
	}, nil
}

func TestCreatePaymentIntent(t *testing.T) {
	t.Parallel()

	creator := &stubIntentCreator{}
	svc, err := NewService(creator)
	if err != nil {
		t.Fatalf("build service: %v", err)
	}

	intent, err := svc.CreatePaymentIntent(context.Background(), 5499)
	if err != nil {
		t.Fatalf("create intent: %v", err)
	}
	if intent.ClientSecret != "pi_test_secret" {
		t.Fatalf("unexpected client secret %q", intent.ClientSecret)
	}
	if creator.lastAmount != 5499 || creator.lastCurrency != "usd" {
		t.Fatalf("unexpected creator call amount=%d currency=%q", creator.lastAmount, creator.lastCurrency)
	}
}

func TestCreatePaymentIntentRejectsNonPositiveAmount(t *testing.T) {
	t.Parallel()

	svc, err := NewService(&stubIntentCreator{})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}

	for _, amount := range []int64{0, -100} {
		_, err := svc.CreatePaymentIntent(context.Background(), amount)
		typed := pkgerrors.As(err)
		if typed == nil || typed.Code() != pkgerrors.CodeValidation {
			t.Fatalf("amount %d: expected validation error, got %v", amount, err)
		}
	}
}

func TestCreatePaymentIntentPropagatesProviderError(t *testing.T) {
	t.Parallel()

	providerErr := pkgerrors.New(pkgerrors.CodeDependency, "Your card was declined.")
	svc, err := NewService(&stubIntentCreator{err: providerErr})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}

	_, err = svc.CreatePaymentIntent(context.Background(), 1000)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
	if typed.Message() != "Your card was declined." {
		t.Fatalf("expected provider message passthrough, got %q", typed.Message())
	}
}
