package enums

// OrderStatus tracks the payment lifecycle of an order row. The only legal
// transition is Pending -> Paid; confirmation is idempotent.
type OrderStatus string

const (
	OrderStatusPending OrderStatus = "Pending"
	OrderStatusPaid    OrderStatus = "Paid"
)

// IsValid reports whether the value is a known order status.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid:
		return true
	default:
		return false
	}
}
