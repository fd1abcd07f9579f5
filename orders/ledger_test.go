package orders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice/models"
)

func TestReserve_DecrementsStock(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "WIDGET", 20, 10)

	require.NoError(t, Reserve(db, product.Id, 4))
	assert.Equal(t, 6, stockOf(t, db, product.Id))

	// reserving down to exactly zero is fine
	require.NoError(t, Reserve(db, product.Id, 6))
	assert.Equal(t, 0, stockOf(t, db, product.Id))
}

func TestReserve_FailsWithoutTouchingStock(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "WIDGET", 20, 3)

	err := Reserve(db, product.Id, 4)
	var stockErr *InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, product.Id, stockErr.ProductID)
	assert.Equal(t, 3, stockErr.Available)
	assert.Equal(t, 4, stockErr.Requested)

	assert.Equal(t, 3, stockOf(t, db, product.Id))
}

func TestReserve_NoDoubleSpendOnLastUnit(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "LAST", 20, 1)

	require.NoError(t, Reserve(db, product.Id, 1))

	err := Reserve(db, product.Id, 1)
	var stockErr *InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 0, stockOf(t, db, product.Id))
}

func TestReserve_UnknownProduct(t *testing.T) {
	db := newTestDB(t)

	err := Reserve(db, 999, 1)
	var notFound *ProductNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, uint(999), notFound.ProductID)
}

func TestRelease_IncrementsStock(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "WIDGET", 20, 2)

	require.NoError(t, Release(db, product.Id, 5))
	assert.Equal(t, 7, stockOf(t, db, product.Id))
}

func TestRelease_ReachesSoftDeletedProducts(t *testing.T) {
	db := newTestDB(t)
	product := seedProduct(t, db, "RETIRED", 20, 2)
	require.NoError(t, db.Delete(&models.Product{}, product.Id).Error)

	require.NoError(t, Release(db, product.Id, 3))
	assert.Equal(t, 5, stockOf(t, db, product.Id))
}

func TestRelease_MissingProductIsNotAnError(t *testing.T) {
	db := newTestDB(t)
	assert.NoError(t, Release(db, 999, 3))
}
