package reviews

import (
	"context"

	"github.com/dcastano/modaluxe-backend/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository encapsulates review persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a reviews repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a review row.
func (r *Repository) Create(ctx context.Context, review *models.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

// Aggregate recomputes count and average rating over all reviews of a product.
func (r *Repository) Aggregate(ctx context.Context, productID uuid.UUID) (count int64, average float64, err error) {
	var row struct {
		Count   int64
		Average float64
	}
	err = r.db.WithContext(ctx).
		Model(&models.Review{}).
		Select("COUNT(*) AS count, COALESCE(AVG(rating), 0) AS average").
		Where("product_id = ?", productID).
		Scan(&row).Error
	if err != nil {
		return 0, 0, err
	}
	return row.Count, row.Average, nil
}

// UpdateProductAggregates writes the derived rating fields onto the product.
func (r *Repository) UpdateProductAggregates(ctx context.Context, productID uuid.UUID, count int64, average float64) error {
	return r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", productID).
		Updates(map[string]any{
			"review_count": count,
			"rating":       average,
		}).Error
}
