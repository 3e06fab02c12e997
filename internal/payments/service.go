package payments

import (
	"context"
	"fmt"

	pkgerrors "github.com/dcastano/modaluxe-backend/pkg/errors"
)

const defaultCurrency = "usd"

// Service exposes the standalone payment-intent operation.
type Service interface {
	CreatePaymentIntent(ctx context.Context, amountMinorUnits int64) (*Intent, error)
}

type service struct {
	creator IntentCreator
}

// NewService builds a payments service around the provided intent creator.
func NewService(creator IntentCreator) (Service, error) {
	if creator == nil {
		return nil, fmt.Errorf("intent creator is required")
	}
	return &service{creator: creator}, nil
}

func (s *service) CreatePaymentIntent(ctx context.Context, amountMinorUnits int64) (*Intent, error) {
	if amountMinorUnits <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "amount is required")
	}
	return s.creator.CreateIntent(ctx, amountMinorUnits, defaultCurrency)
}
