package orders

import (
	"time"

	"github.com/google/uuid"

	"github.com/dcastano/modaluxe-backend/pkg/db/models"
)

// CartLine is one product/quantity pair in a checkout request.
type CartLine struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity"`
}

// PlaceOrderInput carries the checkout payload.
type PlaceOrderInput struct {
	CustomerName string     `json:"customer_name" validate:"required"`
	Address      string     `json:"address" validate:"required"`
	Phone        string     `json:"phone" validate:"required"`
	Cart         []CartLine `json:"cart" validate:"required,min=1,dive"`
}

// PlaceOrderResult is returned after a successful checkout.
type PlaceOrderResult struct {
	OrderIDs         []uuid.UUID `json:"order_ids"`
	ClientSecret     string      `json:"client_secret"`
	AmountMinorUnits int64       `json:"amount_minor_units"`
}

// OrderDTO is the transport shape for a single order line.
type OrderDTO struct {
	ID              uuid.UUID `json:"id"`
	ProductID       uuid.UUID `json:"product_id"`
	CustomerName    string    `json:"customer_name"`
	Quantity        int       `json:"quantity"`
	UnitPrice       float64   `json:"unit_price"`
	Status          string    `json:"status"`
	PaymentIntentID string    `json:"payment_intent_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

func orderFromModel(o models.Order) OrderDTO {
	return OrderDTO{
		ID:              o.ID,
		ProductID:       o.ProductID,
		CustomerName:    o.CustomerName,
		Quantity:        o.Quantity,
		UnitPrice:       o.UnitPrice,
		Status:          o.Status,
		PaymentIntentID: o.PaymentIntentID,
		CreatedAt:       o.CreatedAt,
	}
}
