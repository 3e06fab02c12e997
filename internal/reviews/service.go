package reviews

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dcastano/modaluxe-backend/pkg/db"
	"github.com/dcastano/modaluxe-backend/pkg/db/models"
	pkgerrors "github.com/dcastano/modaluxe-backend/pkg/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AddReviewInput carries the payload for a new review.
type AddReviewInput struct {
	ProductID uuid.UUID
	UserName  string
	Rating    int
	Comment   string
}

// Service handles review submission and product aggregate upkeep.
type Service interface {
	AddReview(ctx context.Context, input AddReviewInput) error
}

type service struct {
	db *db.Client
}

// NewService builds a reviews service with the provided DB client.
func NewService(client *db.Client) (Service, error) {
	if client == nil {
		return nil, fmt.Errorf("database client is required")
	}
	return &service{db: client}, nil
}

// AddReview inserts the review and rewrites the product's rating and
// review_count from all stored reviews in the same transaction.
func (s *service) AddReview(ctx context.Context, input AddReviewInput) error {
	if input.ProductID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	if input.Rating < 1 || input.Rating > 5 {
		return pkgerrors.New(pkgerrors.CodeValidation, "rating must be between 1 and 5")
	}

	return s.db.WithTx(ctx, func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.WithContext(ctx).First(&product, "id = ?", input.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load product")
		}

		repo := NewRepository(tx)
		review := &models.Review{
			ProductID: input.ProductID,
			UserName:  strings.TrimSpace(input.UserName),
			Rating:    input.Rating,
			Comment:   input.Comment,
		}
		if err := repo.Create(ctx, review); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create review")
		}

		count, average, err := repo.Aggregate(ctx, input.ProductID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "aggregate reviews")
		}
		if err := repo.UpdateProductAggregates(ctx, input.ProductID, count, average); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update product rating")
		}
		return nil
	})
}
