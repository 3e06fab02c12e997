package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/dcastano/modaluxe-backend/internal/payments"
	"github.com/dcastano/modaluxe-backend/pkg/db"
	"github.com/dcastano/modaluxe-backend/pkg/db/models"
	"github.com/dcastano/modaluxe-backend/pkg/enums"
	pkgerrors "github.com/dcastano/modaluxe-backend/pkg/errors"
)

// taxMultiplier applies the flat 18% sales tax on the cart subtotal.
var taxMultiplier = decimal.NewFromFloat(1.18)

const intentCurrency = "usd"

// Service defines the order workflow operations.
type Service interface {
	PlaceOrder(ctx context.Context, input PlaceOrderInput) (*PlaceOrderResult, error)
	ConfirmPayment(ctx context.Context, orderID uuid.UUID) error
}

type service struct {
	db      *db.Client
	intents payments.IntentCreator
}

// ServiceParams bundles the dependencies for the order service.
type ServiceParams struct {
	DB      *db.Client
	Intents payments.IntentCreator
}

// NewService builds an order service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.DB == nil {
		return nil, fmt.Errorf("database client is required")
	}
	if params.Intents == nil {
		return nil, fmt.Errorf("intent creator is required")
	}
	return &service{db: params.DB, intents: params.Intents}, nil
}

// PlaceOrder processes the whole cart in one transaction. Any missing
// product, insufficient stock, or provider failure rolls everything back.
func (s *service) PlaceOrder(ctx context.Context, input PlaceOrderInput) (*PlaceOrderResult, error) {
	if err := validatePlaceOrderInput(&input); err != nil {
		return nil, err
	}

	var result PlaceOrderResult
	err := s.db.WithTx(ctx, func(tx *gorm.DB) error {
		repo := NewRepository(tx)

		subtotal := decimal.Zero
		orderIDs := make([]uuid.UUID, 0, len(input.Cart))

		for _, line := range input.Cart {
			product, err := repo.FindProduct(ctx, line.ProductID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return pkgerrors.New(pkgerrors.CodeNotFound,
						fmt.Sprintf("product %s not found", line.ProductID))
				}
				return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load product")
			}

			decremented, err := repo.DecrementStock(ctx, product.ID, line.Quantity)
			if err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "decrement stock")
			}
			if !decremented {
				return pkgerrors.New(pkgerrors.CodeOutOfStock,
					fmt.Sprintf("%s out of stock", product.Name)).
					WithDetails(map[string]any{
						"product_id": product.ID,
						"requested":  line.Quantity,
						"available":  product.Stock,
					})
			}

			order := &models.Order{
				ProductID:    product.ID,
				CustomerName: input.CustomerName,
				Address:      input.Address,
				Phone:        input.Phone,
				Quantity:     line.Quantity,
				UnitPrice:    product.Price,
				Status:       string(enums.OrderStatusPending),
			}
			if err := repo.CreateOrder(ctx, order); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create order")
			}
			orderIDs = append(orderIDs, order.ID)

			lineTotal := decimal.NewFromFloat(product.Price).Mul(decimal.NewFromInt(int64(line.Quantity)))
			subtotal = subtotal.Add(lineTotal)
		}

		total := subtotal.Mul(taxMultiplier)
		amountMinor := total.Mul(decimal.NewFromInt(100)).Round(0).IntPart()

		// Last step inside the transaction: a provider failure rolls back
		// the orders and the stock decrements together.
		intent, err := s.intents.CreateIntent(ctx, amountMinor, intentCurrency)
		if err != nil {
			return err
		}

		if err := repo.AttachPaymentIntent(ctx, orderIDs, intent.ID); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "attach payment intent")
		}

		result = PlaceOrderResult{
			OrderIDs:         orderIDs,
			ClientSecret:     intent.ClientSecret,
			AmountMinorUnits: amountMinor,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// ConfirmPayment marks the order Paid. Confirming an already paid order is a
// no-op success.
func (s *service) ConfirmPayment(ctx context.Context, orderID uuid.UUID) error {
	if orderID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "order id is required")
	}

	repo := NewRepository(s.db.DB())
	order, err := repo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load order")
	}

	if order.Status == string(enums.OrderStatusPaid) {
		return nil
	}

	if err := repo.UpdateStatus(ctx, order.ID, string(enums.OrderStatusPaid)); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update order status")
	}
	return nil
}

func validatePlaceOrderInput(input *PlaceOrderInput) error {
	input.CustomerName = strings.TrimSpace(input.CustomerName)
	input.Address = strings.TrimSpace(input.Address)
	input.Phone = strings.TrimSpace(input.Phone)

	if input.CustomerName == "" || input.Address == "" || input.Phone == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "customer info is required")
	}
	if len(input.Cart) == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "cart is empty or invalid")
	}

	for i := range input.Cart {
		if input.Cart[i].ProductID == uuid.Nil {
			return pkgerrors.New(pkgerrors.CodeValidation, "cart line product id is required")
		}
		if input.Cart[i].Quantity == 0 {
			input.Cart[i].Quantity = 1
		}
		if input.Cart[i].Quantity < 0 {
			return pkgerrors.New(pkgerrors.CodeValidation, "cart line quantity must be positive")
		}
	}
	return nil
}
