package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dcastano/modaluxe-backend/internal/orders"
	pkgerrors "github.com/dcastano/modaluxe-backend/pkg/errors"
)

type stubOrderService struct {
	result     *orders.PlaceOrderResult
	placeErr   error
	confirmErr error

	lastInput     orders.PlaceOrderInput
	lastConfirmID uuid.UUID
}

func (s *stubOrderService) PlaceOrder(ctx context.Context, input orders.PlaceOrderInput) (*orders.PlaceOrderResult, error) {
	s.lastInput = input
	return s.result, s.placeErr
}

func (s *stubOrderService) ConfirmPayment(ctx context.Context, orderID uuid.UUID) error {
	s.lastConfirmID = orderID
	return s.confirmErr
}

func TestOrderCreateSuccess(t *testing.T) {
	result := &orders.PlaceOrderResult{
		OrderIDs:         []uuid.UUID{uuid.New()},
		ClientSecret:     "pi_123_secret_456",
		AmountMinorUnits: 5427,
	}
	svc := &stubOrderService{result: result}
	handler := OrderCreate(svc, nil)

	body := `{"customer_name":"Dana","address":"1 Main St","phone":"555-0100","cart":[{"product_id":"` + uuid.NewString() + `","quantity":2}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", resp.Code, resp.Body.String())
	}
	if svc.lastInput.CustomerName != "Dana" || len(svc.lastInput.Cart) != 1 {
		t.Fatalf("unexpected input: %+v", svc.lastInput)
	}

	var envelope struct {
		Data orders.PlaceOrderResult `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.ClientSecret != "pi_123_secret_456" || envelope.Data.AmountMinorUnits != 5427 {
		t.Fatalf("unexpected payload: %+v", envelope.Data)
	}
}

func TestOrderCreateRejectsEmptyCart(t *testing.T) {
	handler := OrderCreate(&stubOrderService{}, nil)

	body := `{"customer_name":"Dana","address":"1 Main St","phone":"555-0100","cart":[]}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestOrderCreateOutOfStock(t *testing.T) {
	svc := &stubOrderService{
		placeErr: pkgerrors.New(pkgerrors.CodeOutOfStock, "Wool Winter Coat out of stock"),
	}
	handler := OrderCreate(svc, nil)

	body := `{"customer_name":"Dana","address":"1 Main St","phone":"555-0100","cart":[{"product_id":"` + uuid.NewString() + `"}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}

	var envelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Error.Message != "Wool Winter Coat out of stock" {
		t.Fatalf("unexpected message: %q", envelope.Error.Message)
	}
}

func TestOrderPay(t *testing.T) {
	svc := &stubOrderService{}
	router := chi.NewRouter()
	router.Post("/api/orders/{orderId}/pay", OrderPay(svc, nil))

	orderID := uuid.New()
	req := httptest.NewRequest(http.MethodPost, "/api/orders/"+orderID.String()+"/pay", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.lastConfirmID != orderID {
		t.Fatalf("expected confirm for %s, got %s", orderID, svc.lastConfirmID)
	}
}

func TestOrderPayUnknownOrder(t *testing.T) {
	svc := &stubOrderService{confirmErr: pkgerrors.New(pkgerrors.CodeNotFound, "order not found")}
	router := chi.NewRouter()
	router.Post("/api/orders/{orderId}/pay", OrderPay(svc, nil))

	req := httptest.NewRequest(http.MethodPost, "/api/orders/"+uuid.NewString()+"/pay", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}
