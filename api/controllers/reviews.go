package controllers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/dcastano/modaluxe-backend/api/responses"
	"github.com/dcastano/modaluxe-backend/api/validators"
	"github.com/dcastano/modaluxe-backend/internal/reviews"
	pkgerrors "github.com/dcastano/modaluxe-backend/pkg/errors"
	"github.com/dcastano/modaluxe-backend/pkg/logger"
)

type addReviewPayload struct {
	ProductID string `json:"product_id" validate:"required"`
	UserName  string `json:"user_name"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Comment   string `json:"comment"`
}

// ReviewCreate records a review and refreshes the product's aggregates.
func ReviewCreate(svc reviews.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "review service unavailable"))
			return
		}

		var payload addReviewPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		productID, err := uuid.Parse(strings.TrimSpace(payload.ProductID))
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
			return
		}

		err = svc.AddReview(ctx, reviews.AddReviewInput{
			ProductID: productID,
			UserName:  strings.TrimSpace(payload.UserName),
			Rating:    payload.Rating,
			Comment:   strings.TrimSpace(payload.Comment),
		})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]string{"message": "review added"})
	}
}
