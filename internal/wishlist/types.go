package wishlist

import (
	"time"

	"github.com/google/uuid"
)

// ItemDTO is one wishlist entry joined with its product data.
type ItemDTO struct {
	ProductID   uuid.UUID `json:"product_id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Rating      float64   `json:"rating"`
	Category    string    `json:"category"`
	Stock       int       `json:"stock"`
	ImageURL    string    `json:"image_url"`
	Description string    `json:"description"`
	AddedAt     time.Time `json:"added_at"`
}
