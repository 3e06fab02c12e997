package controllers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/dcastano/modaluxe-backend/api/middleware"
	"github.com/dcastano/modaluxe-backend/api/responses"
	"github.com/dcastano/modaluxe-backend/api/validators"
	"github.com/dcastano/modaluxe-backend/internal/wishlist"
	pkgerrors "github.com/dcastano/modaluxe-backend/pkg/errors"
	"github.com/dcastano/modaluxe-backend/pkg/logger"
)

type wishlistItemPayload struct {
	UserID    string `json:"user_id"`
	ProductID string `json:"product_id" validate:"required"`
}

// WishlistGet returns the user's wishlist joined with product data.
func WishlistGet(svc wishlist.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "wishlist service unavailable"))
			return
		}

		userID, err := resolveWishlistUser(r, r.URL.Query().Get("user_id"))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		items, err := svc.List(ctx, userID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, items)
	}
}

// WishlistAdd adds a product to the user's wishlist. Re-adding an existing
// product succeeds without creating a duplicate row.
func WishlistAdd(svc wishlist.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "wishlist service unavailable"))
			return
		}

		userID, productID, err := decodeWishlistPayload(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if err := svc.Add(ctx, userID, productID); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]string{"message": "added to wishlist"})
	}
}

// WishlistRemove deletes a product from the user's wishlist.
func WishlistRemove(svc wishlist.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "wishlist service unavailable"))
			return
		}

		userID, productID, err := decodeWishlistPayload(r)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		if err := svc.Remove(ctx, userID, productID); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"message": "removed from wishlist"})
	}
}

// WishlistCheck reports whether a product is on the user's wishlist.
func WishlistCheck(svc wishlist.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if svc == nil {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeInternal, "wishlist service unavailable"))
			return
		}

		userID, err := resolveWishlistUser(r, r.URL.Query().Get("user_id"))
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		productID, err := validators.ParseQueryUUID(r, "product_id")
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		inWishlist, err := svc.Check(ctx, userID, productID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]bool{"in_wishlist": inWishlist})
	}
}

func decodeWishlistPayload(r *http.Request) (uuid.UUID, uuid.UUID, error) {
	var payload wishlistItemPayload
	if err := validators.DecodeJSONBody(r, &payload); err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	userID, err := resolveWishlistUser(r, payload.UserID)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	productID, err := uuid.Parse(strings.TrimSpace(payload.ProductID))
	if err != nil {
		return uuid.Nil, uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id")
	}

	return userID, productID, nil
}

// resolveWishlistUser prefers an explicit user_id and falls back to the
// authenticated user from the request context.
func resolveWishlistUser(r *http.Request, explicit string) (uuid.UUID, error) {
	raw := strings.TrimSpace(explicit)
	if raw == "" {
		raw = middleware.UserIDFromContext(r.Context())
	}
	if raw == "" {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeValidation, "user_id is required")
	}

	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid user id")
	}
	return userID, nil
}
