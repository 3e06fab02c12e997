package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/dcastano/modaluxe-backend/pkg/enums"
	pkgerrors "github.com/dcastano/modaluxe-backend/pkg/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service exposes read operations over the product catalog.
type Service interface {
	List(ctx context.Context, sort enums.ProductSort) ([]ProductDTO, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ProductDTO, error)
	GetDetails(ctx context.Context, id uuid.UUID) (*ProductDetailsDTO, error)
	ListByCategory(ctx context.Context, category string) ([]ProductDTO, error)
	Search(ctx context.Context, filters SearchFilters) ([]ProductDTO, error)
}

type service struct {
	repo *Repository
}

// NewService builds a catalog service around the provided repository.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository is required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context, sort enums.ProductSort) ([]ProductDTO, error) {
	products, err := s.repo.List(ctx, sort)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list products")
	}
	return productsFromModels(products), nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*ProductDTO, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load product")
	}
	dto := productFromModel(*product)
	return &dto, nil
}

func (s *service) GetDetails(ctx context.Context, id uuid.UUID) (*ProductDetailsDTO, error) {
	product, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	reviews, err := s.repo.ListReviews(ctx, id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list reviews")
	}

	out := &ProductDetailsDTO{
		Product: *product,
		Reviews: make([]ReviewDTO, 0, len(reviews)),
	}
	for _, review := range reviews {
		out.Reviews = append(out.Reviews, reviewFromModel(review))
	}
	return out, nil
}

func (s *service) ListByCategory(ctx context.Context, category string) ([]ProductDTO, error) {
	if category == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "category is required")
	}
	products, err := s.repo.ListByCategory(ctx, category)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list products by category")
	}
	return productsFromModels(products), nil
}

func (s *service) Search(ctx context.Context, filters SearchFilters) ([]ProductDTO, error) {
	products, err := s.repo.Search(ctx, filters)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "search products")
	}
	return productsFromModels(products), nil
}
