package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order is a single purchased line. A checkout with N cart lines produces N
// Order rows sharing one PaymentIntentID. UnitPrice snapshots the product
// price at purchase time.
type Order struct {
	ID              uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	ProductID       uuid.UUID `gorm:"column:product_id;type:uuid;not null;index"`
	CustomerName    string    `gorm:"column:customer_name;not null"`
	Address         string    `gorm:"column:address;not null"`
	Phone           string    `gorm:"column:phone;not null"`
	Quantity        int       `gorm:"column:quantity;not null"`
	UnitPrice       float64   `gorm:"column:unit_price;not null"`
	Status          string    `gorm:"column:status;not null;default:Pending"`
	PaymentIntentID string    `gorm:"column:payment_intent_id;index"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime"`

	Product *Product `gorm:"foreignKey:ProductID"`
}

func (o *Order) BeforeCreate(*gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}
