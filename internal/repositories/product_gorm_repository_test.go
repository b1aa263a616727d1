package repositories_test

import (
	"fmt"
	"testing"

	"github.com/06bhavi/ecommerce-inventory-system/internal/database"
	"github.com/06bhavi/ecommerce-inventory-system/internal/models"
	"github.com/06bhavi/ecommerce-inventory-system/internal/repositories"
	"github.com/06bhavi/ecommerce-inventory-system/pkg/apperrors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProductRepo(t *testing.T, dbName string) repositories.ProductRepository {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", dbName)
	db, err := database.OpenRelational("sqlite", dsn)
	require.NoError(t, err)
	return repositories.NewGORMProductRepository(db)
}

func mustCreate(t *testing.T, repo repositories.ProductRepository, name, sku, category string, quantity int) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:     name,
		Price:    decimal.NewFromFloat(19.99),
		Quantity: quantity,
		SKU:      sku,
		Category: category,
	}
	require.NoError(t, repo.Create(product))
	return product
}

func TestGORMProductRepository_DuplicateSKU(t *testing.T) {
	repo := newProductRepo(t, "repo_dup_sku")

	mustCreate(t, repo, "USB Hub", "HUB-001", "peripherals", 10)

	err := repo.Create(&models.Product{
		Name:     "USB Hub Clone",
		Price:    decimal.NewFromFloat(9.99),
		Quantity: 5,
		SKU:      "HUB-001",
	})
	require.Error(t, err)
	assert.Equal(t, "DuplicateSKU", apperrors.AsStandardError(err).Code)
}

func TestGORMProductRepository_SearchByName(t *testing.T) {
	repo := newProductRepo(t, "repo_search")

	mustCreate(t, repo, "Gaming Laptop", "LAP-001", "computers", 3)
	mustCreate(t, repo, "Laptop Stand", "STD-001", "accessories", 12)
	mustCreate(t, repo, "Monitor Arm", "ARM-001", "accessories", 7)

	// Search matches substrings regardless of case.
	results, err := repo.SearchByName("LAPTOP")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Gaming Laptop", results[0].Name)

	empty, err := repo.SearchByName("printer")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestGORMProductRepository_List(t *testing.T) {
	repo := newProductRepo(t, "repo_list")

	for i := 1; i <= 5; i++ {
		mustCreate(t, repo, fmt.Sprintf("Item %d", i), fmt.Sprintf("ITM-%03d", i), "misc", i)
	}

	page, total, err := repo.List(0, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, page, 2)
	assert.Equal(t, "Item 1", page[0].Name)

	page, _, err = repo.List(4, 2)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "Item 5", page[0].Name)
}

func TestGORMProductRepository_BeforeSaveKeepsStatusInSync(t *testing.T) {
	repo := newProductRepo(t, "repo_status")

	// Even when the caller forgets SyncStatus, the hook derives it on write.
	product := &models.Product{
		Name:     "Desk Mat",
		Price:    decimal.NewFromFloat(15.00),
		Quantity: 0,
		SKU:      "MAT-001",
		Status:   models.StatusInStock,
	}
	require.NoError(t, repo.Create(product))

	stored, err := repo.GetByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusOutOfStock, stored.Status)
}

func TestGORMProductRepository_UpdateAndDeleteMissing(t *testing.T) {
	repo := newProductRepo(t, "repo_missing")

	assert.True(t, apperrors.IsNotFound(repo.Delete(999)))

	_, err := repo.GetByID(999)
	assert.True(t, apperrors.IsNotFound(err))

	_, err = repo.GetBySKU("GHOST-1")
	assert.True(t, apperrors.IsNotFound(err))
}
