package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/dcastano/modaluxe-backend/pkg/db/models"
)

// ProductDTO is the transport shape for a catalog listing.
type ProductDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Rating      float64   `json:"rating"`
	ReviewCount int       `json:"review_count"`
	Category    string    `json:"category"`
	Stock       int       `json:"stock"`
	ImageURL    string    `json:"image_url"`
	Description string    `json:"description"`
}

// ReviewDTO is a single review as returned with product details.
type ReviewDTO struct {
	ID        uuid.UUID `json:"id"`
	UserName  string    `json:"user_name,omitempty"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// ProductDetailsDTO bundles a product with its full review list.
type ProductDetailsDTO struct {
	Product ProductDTO  `json:"product"`
	Reviews []ReviewDTO `json:"reviews"`
}

// SearchFilters narrows a catalog search. Nil price bounds mean unbounded.
type SearchFilters struct {
	Query    string
	Category string
	MinPrice *float64
	MaxPrice *float64
}

func productFromModel(p models.Product) ProductDTO {
	return ProductDTO{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Rating:      p.Rating,
		ReviewCount: p.ReviewCount,
		Category:    p.Category,
		Stock:       p.Stock,
		ImageURL:    p.ImageURL,
		Description: p.Description,
	}
}

func productsFromModels(ms []models.Product) []ProductDTO {
	out := make([]ProductDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, productFromModel(m))
	}
	return out
}

func reviewFromModel(r models.Review) ReviewDTO {
	return ReviewDTO{
		ID:        r.ID,
		UserName:  r.UserName,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
}
