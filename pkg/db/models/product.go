package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product represents a catalog listing. Rating and ReviewCount are derived
// aggregates over the product's reviews and are rewritten on every new review.
type Product struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Name        string    `gorm:"column:name;not null"`
	Price       float64   `gorm:"column:price;not null"`
	Rating      float64   `gorm:"column:rating;not null;default:0"`
	ReviewCount int       `gorm:"column:review_count;not null;default:0"`
	Category    string    `gorm:"column:category;not null;index"`
	Stock       int       `gorm:"column:stock;not null;default:0"`
	ImageURL    string    `gorm:"column:image_url"`
	Description string    `gorm:"column:description"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// BeforeCreate assigns the primary key so the model works on both postgres
// and the sqlite test databases.
func (p *Product) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
