package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/dcastano/modaluxe-backend/api/middleware"
	"github.com/dcastano/modaluxe-backend/internal/wishlist"
	pkgerrors "github.com/dcastano/modaluxe-backend/pkg/errors"
)

type stubWishlist struct {
	items     []wishlist.ItemDTO
	contains  bool
	err       error
	lastUser  uuid.UUID
	lastAdded uuid.UUID
}

func (s *stubWishlist) List(ctx context.Context, userID uuid.UUID) ([]wishlist.ItemDTO, error) {
	s.lastUser = userID
	return s.items, s.err
}

func (s *stubWishlist) Add(ctx context.Context, userID, productID uuid.UUID) error {
	s.lastUser = userID
	s.lastAdded = productID
	return s.err
}

func (s *stubWishlist) Remove(ctx context.Context, userID, productID uuid.UUID) error {
	s.lastUser = userID
	return s.err
}

func (s *stubWishlist) Check(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	s.lastUser = userID
	return s.contains, s.err
}

func TestWishlistGetByQueryParam(t *testing.T) {
	userID := uuid.New()
	svc := &stubWishlist{items: []wishlist.ItemDTO{{ProductID: uuid.New(), Name: "Designer Handbag"}}}
	handler := WishlistGet(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/wishlist?user_id="+userID.String(), nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.lastUser != userID {
		t.Fatalf("expected lookup for %s, got %s", userID, svc.lastUser)
	}

	var envelope struct {
		Data []wishlist.ItemDTO `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data) != 1 || envelope.Data[0].Name != "Designer Handbag" {
		t.Fatalf("unexpected payload: %+v", envelope.Data)
	}
}

func TestWishlistGetFallsBackToAuthContext(t *testing.T) {
	userID := uuid.New()
	svc := &stubWishlist{}
	handler := WishlistGet(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/wishlist", nil)
	req = req.WithContext(middleware.WithUserID(req.Context(), userID.String()))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.lastUser != userID {
		t.Fatalf("expected context user %s, got %s", userID, svc.lastUser)
	}
}

func TestWishlistGetMissingUser(t *testing.T) {
	handler := WishlistGet(&stubWishlist{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/wishlist", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestWishlistAdd(t *testing.T) {
	userID := uuid.New()
	productID := uuid.New()
	svc := &stubWishlist{}
	handler := WishlistAdd(svc, nil)

	body := `{"user_id":"` + userID.String() + `","product_id":"` + productID.String() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/wishlist/add", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", resp.Code, resp.Body.String())
	}
	if svc.lastAdded != productID {
		t.Fatalf("expected add for %s, got %s", productID, svc.lastAdded)
	}
}

func TestWishlistAddUnknownProduct(t *testing.T) {
	svc := &stubWishlist{err: pkgerrors.New(pkgerrors.CodeNotFound, "product not found")}
	handler := WishlistAdd(svc, nil)

	body := `{"user_id":"` + uuid.NewString() + `","product_id":"` + uuid.NewString() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/wishlist/add", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}

func TestWishlistCheck(t *testing.T) {
	svc := &stubWishlist{contains: true}
	handler := WishlistCheck(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/wishlist/check?user_id="+uuid.NewString()+"&product_id="+uuid.NewString(), nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Data map[string]bool `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !envelope.Data["in_wishlist"] {
		t.Fatalf("expected in_wishlist true, got %+v", envelope.Data)
	}
}

func TestWishlistRemoveMissingItem(t *testing.T) {
	svc := &stubWishlist{err: pkgerrors.New(pkgerrors.CodeNotFound, "wishlist item not found")}
	handler := WishlistRemove(svc, nil)

	body := `{"user_id":"` + uuid.NewString() + `","product_id":"` + uuid.NewString() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/wishlist/remove", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}
