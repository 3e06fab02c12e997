package reviews

import (
	"context"
	"math"
	"testing"

	"github.com/dcastano/modaluxe-backend/pkg/config"
	"github.com/dcastano/modaluxe-backend/pkg/db"
	"github.com/dcastano/modaluxe-backend/pkg/db/models"
	pkgerrors "github.com/dcastano/modaluxe-backend/pkg/errors"
	"github.com/google/uuid"
)

func newTestClient(t *testing.T) *db.Client {
	t.Helper()

	dsn := "file:reviews_" + uuid.NewString() + "?mode=memory&cache=shared"
	client, err := db.New(context.Background(), config.DBConfig{DSN: dsn, Driver: config.DriverSQLite}, nil)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := client.DB().AutoMigrate(&models.Product{}, &models.Review{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestAddReviewRecomputesAggregates(t *testing.T) {
	t.Parallel()

	client := newTestClient(t)
	ctx := context.Background()

	product := models.Product{Name: "Leather Ankle Boots", Price: 79.99, Category: "Footwear", Stock: 25}
	if err := client.DB().Create(&product).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}

	svc, err := NewService(client)
	if err != nil {
		t.Fatalf("build service: %v", err)
	}

	for _, rating := range []int{5, 4, 3} {
		if err := svc.AddReview(ctx, AddReviewInput{ProductID: product.ID, Rating: rating, Comment: "fine"}); err != nil {
			t.Fatalf("add review %d: %v", rating, err)
		}
	}

	var reloaded models.Product
	if err := client.DB().First(&reloaded, "id = ?", product.ID).Error; err != nil {
		t.Fatalf("reload product: %v", err)
	}
	if reloaded.ReviewCount != 3 {
		t.Fatalf("expected review_count 3, got %d", reloaded.ReviewCount)
	}
	if math.Abs(reloaded.Rating-4.0) > 1e-9 {
		t.Fatalf("expected rating 4.0, got %v", reloaded.Rating)
	}
}

func TestAddReviewUnknownProduct(t *testing.T) {
	t.Parallel()

	client := newTestClient(t)
	svc, err := NewService(client)
	if err != nil {
		t.Fatalf("build service: %v", err)
	}

	err = svc.AddReview(context.Background(), AddReviewInput{ProductID: uuid.New(), Rating: 5})
	if err == nil {
		t.Fatal("expected not found")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found error, got %v", err)
	}

	var count int64
	if err := client.DB().Model(&models.Review{}).Count(&count).Error; err != nil {
		t.Fatalf("count reviews: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no orphan reviews, got %d", count)
	}
}

func TestAddReviewRatingBounds(t *testing.T) {
	t.Parallel()

	client := newTestClient(t)
	svc, err := NewService(client)
	if err != nil {
		t.Fatalf("build service: %v", err)
	}

	for _, rating := range []int{0, 6, -1} {
		err := svc.AddReview(context.Background(), AddReviewInput{ProductID: uuid.New(), Rating: rating})
		typed := pkgerrors.As(err)
		if typed == nil || typed.Code() != pkgerrors.CodeValidation {
			t.Fatalf("rating %d: expected validation error, got %v", rating, err)
		}
	}
}
