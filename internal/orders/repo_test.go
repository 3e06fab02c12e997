package orders

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/dcastano/modaluxe-backend/pkg/db/models"
	"github.com/dcastano/modaluxe-backend/pkg/enums"
)

func setupOrdersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:orders_repo_" + uuid.NewString() + "?mode=memory&cache=shared"
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	require.NoError(t, err)

	require.NoError(t, gdb.AutoMigrate(&models.Product{}, &models.Order{}))

	t.Cleanup(func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})
	return gdb
}

func seedRepoProduct(t *testing.T, gdb *gorm.DB, stock int) *models.Product {
	t.Helper()

	product := &models.Product{Name: "Leather Ankle Boots", Price: 79.99, Category: "Footwear", Stock: stock}
	require.NoError(t, gdb.Create(product).Error)
	return product
}

func TestDecrementStock(t *testing.T) {
	t.Parallel()

	gdb := setupOrdersTestDB(t)
	repo := NewRepository(gdb)
	ctx := context.Background()
	product := seedRepoProduct(t, gdb, 5)

	ok, err := repo.DecrementStock(ctx, product.ID, 3)
	require.NoError(t, err)
	assert.True(t, ok)

	var reloaded models.Product
	require.NoError(t, gdb.First(&reloaded, "id = ?", product.ID).Error)
	assert.Equal(t, 2, reloaded.Stock)

	// more than remaining: no row matches, stock untouched
	ok, err = repo.DecrementStock(ctx, product.ID, 3)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, gdb.First(&reloaded, "id = ?", product.ID).Error)
	assert.Equal(t, 2, reloaded.Stock)
}

func TestDecrementStockUnknownProduct(t *testing.T) {
	t.Parallel()

	gdb := setupOrdersTestDB(t)
	repo := NewRepository(gdb)

	ok, err := repo.DecrementStock(context.Background(), uuid.New(), 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAttachPaymentIntentAndStatus(t *testing.T) {
	t.Parallel()

	gdb := setupOrdersTestDB(t)
	repo := NewRepository(gdb)
	ctx := context.Background()
	product := seedRepoProduct(t, gdb, 10)

	first := &models.Order{ProductID: product.ID, CustomerName: "Dana", Address: "1 Main St", Phone: "555-0100", Quantity: 1, UnitPrice: product.Price, Status: string(enums.OrderStatusPending)}
	second := &models.Order{ProductID: product.ID, CustomerName: "Dana", Address: "1 Main St", Phone: "555-0100", Quantity: 2, UnitPrice: product.Price, Status: string(enums.OrderStatusPending)}
	require.NoError(t, repo.CreateOrder(ctx, first))
	require.NoError(t, repo.CreateOrder(ctx, second))

	require.NoError(t, repo.AttachPaymentIntent(ctx, []uuid.UUID{first.ID, second.ID}, "pi_test_123"))

	for _, id := range []uuid.UUID{first.ID, second.ID} {
		order, err := repo.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "pi_test_123", order.PaymentIntentID)
		assert.Equal(t, string(enums.OrderStatusPending), order.Status)
	}

	require.NoError(t, repo.UpdateStatus(ctx, first.ID, string(enums.OrderStatusPaid)))

	order, err := repo.FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, string(enums.OrderStatusPaid), order.Status)

	// sibling line untouched
	order, err = repo.FindByID(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, string(enums.OrderStatusPending), order.Status)
}

func TestAttachPaymentIntentNoOrders(t *testing.T) {
	t.Parallel()

	gdb := setupOrdersTestDB(t)
	repo := NewRepository(gdb)

	require.NoError(t, repo.AttachPaymentIntent(context.Background(), nil, "pi_test_123"))
}
