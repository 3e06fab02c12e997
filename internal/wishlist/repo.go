package wishlist

import (
	"context"

	"github.com/dcastano/modaluxe-backend/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository encapsulates wishlist persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a wishlist repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// AddItem inserts a wishlist entry. Duplicate pairs are left untouched.
func (r *Repository) AddItem(ctx context.Context, userID, productID uuid.UUID) error {
	exists, err := r.Contains(ctx, userID, productID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	item := models.WishlistItem{UserID: userID, ProductID: productID}
	return r.db.WithContext(ctx).Create(&item).Error
}

// RemoveItem deletes the user-product entry. Returns the number of rows removed.
func (r *Repository) RemoveItem(ctx context.Context, userID, productID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.WishlistItem{})
	return res.RowsAffected, res.Error
}

// Contains reports whether the user has saved the product.
func (r *Repository) Contains(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.WishlistItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListItems joins wishlist entries with their products, newest first.
// Entries whose product no longer exists drop out of the join.
func (r *Repository) ListItems(ctx context.Context, userID uuid.UUID) ([]ItemDTO, error) {
	var items []ItemDTO
	err := r.db.WithContext(ctx).
		Table("wishlist_items wi").
		Select("p.id AS product_id, p.name, p.price, p.rating, p.category, p.stock, p.image_url, p.description, wi.created_at AS added_at").
		Joins("JOIN products p ON p.id = wi.product_id").
		Where("wi.user_id = ?", userID).
		Order("wi.created_at DESC").
		Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
