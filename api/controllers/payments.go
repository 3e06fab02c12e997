package controllers

import (
	"net/http"

	"github.com/dcastano/modaluxe-backend/api/responses"
	"github.com/dcastano/modaluxe-backend/api/validators"
	"github.com/dcastano/modaluxe-backend/internal/payments"
	pkgerrors "github.com/dcastano/modaluxe-backend/pkg/errors"
	"github.com/dcastano/modaluxe-backend/pkg/logger"
)

type createIntentPayload struct {
	// Amount is expressed in minor units (cents).
	Amount int64 `json:"amount" validate:"required,gt=0"`
}

// PaymentIntentCreate mints a standalone payment intent for the given amount.
func PaymentIntentCreate(svc payments.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "payment service unavailable"))
			return
		}

		var payload createIntentPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		intent, err := svc.CreatePaymentIntent(ctx, payload.Amount)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"client_secret": intent.ClientSecret})
	}
}
