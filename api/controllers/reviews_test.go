package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/dcastano/modaluxe-backend/internal/reviews"
	pkgerrors "github.com/dcastano/modaluxe-backend/pkg/errors"
)

type stubReviewService struct {
	err       error
	lastInput reviews.AddReviewInput
}

func (s *stubReviewService) AddReview(ctx context.Context, input reviews.AddReviewInput) error {
	s.lastInput = input
	return s.err
}

func TestReviewCreate(t *testing.T) {
	svc := &stubReviewService{}
	handler := ReviewCreate(svc, nil)

	productID := uuid.New()
	body := `{"product_id":"` + productID.String() + `","user_name":"Ana","rating":5,"comment":"Lovely fit"}`
	req := httptest.NewRequest(http.MethodPost, "/api/reviews", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.lastInput.ProductID != productID || svc.lastInput.Rating != 5 {
		t.Fatalf("unexpected input: %+v", svc.lastInput)
	}
}

func TestReviewCreateWithoutUserName(t *testing.T) {
	svc := &stubReviewService{}
	handler := ReviewCreate(svc, nil)

	productID := uuid.New()
	body := `{"product_id":"` + productID.String() + `","rating":5,"comment":"great"}`
	req := httptest.NewRequest(http.MethodPost, "/api/reviews", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.lastInput.ProductID != productID || svc.lastInput.UserName != "" {
		t.Fatalf("unexpected input: %+v", svc.lastInput)
	}
}

func TestReviewCreateRejectsBadRating(t *testing.T) {
	handler := ReviewCreate(&stubReviewService{}, nil)

	body := `{"product_id":"` + uuid.NewString() + `","user_name":"Ana","rating":6}`
	req := httptest.NewRequest(http.MethodPost, "/api/reviews", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestReviewCreateUnknownProduct(t *testing.T) {
	svc := &stubReviewService{err: pkgerrors.New(pkgerrors.CodeNotFound, "product not found")}
	handler := ReviewCreate(svc, nil)

	body := `{"product_id":"` + uuid.NewString() + `","user_name":"Ana","rating":4}`
	req := httptest.NewRequest(http.MethodPost, "/api/reviews", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rec.Code)
	}
}
