package controllers

import (
	"net/http"

	"github.com/dcastano/modaluxe-backend/api/responses"
	"github.com/dcastano/modaluxe-backend/api/validators"
	"github.com/dcastano/modaluxe-backend/internal/orders"
	pkgerrors "github.com/dcastano/modaluxe-backend/pkg/errors"
	"github.com/dcastano/modaluxe-backend/pkg/logger"
)

// OrderCreate places an order for every cart line and returns the payment
// intent client secret alongside the created order ids.
func OrderCreate(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order service unavailable"))
			return
		}

		var payload orders.PlaceOrderInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		result, err := svc.PlaceOrder(ctx, payload)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}

// OrderPay marks an order as paid after the client confirms the intent.
func OrderPay(svc orders.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "order service unavailable"))
			return
		}

		id, err := parsePathUUID(r, "orderId")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if err := svc.ConfirmPayment(ctx, id); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"message": "payment confirmed"})
	}
}
