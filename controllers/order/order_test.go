package orderControllers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/syedzainalii/noosh-tuft/models"
)

func testProducts() func(uint) (*models.Product, error) {
	products := map[uint]*models.Product{
		1: {ID: 1, Name: "Wool rug", Price: decimal.RequireFromString("49.90"), StockQuantity: 10, IsActive: true},
		2: {ID: 2, Name: "Tufted coaster", Price: decimal.RequireFromString("7.25"), StockQuantity: 3, IsActive: true},
		3: {ID: 3, Name: "Retired design", Price: decimal.RequireFromString("99.00"), StockQuantity: 5, IsActive: false},
	}
	return func(id uint) (*models.Product, error) {
		product, ok := products[id]
		if !ok {
			return nil, gorm.ErrRecordNotFound
		}
		return product, nil
	}
}

func TestBuildOrderItems(t *testing.T) {
	items, total, err := buildOrderItems(testProducts(), []OrderItemInput{
		{ProductID: 1, Quantity: 2},
		{ProductID: 2, Quantity: 3},
	})
	require.NoError(t, err)
	require.Len(t, items, 2)

	// 2 * 49.90 + 3 * 7.25
	assert.True(t, total.Equal(decimal.RequireFromString("121.55")), "got %s", total)

	// unit prices are captured per line, in client order
	assert.Equal(t, uint(1), items[0].ProductID)
	assert.True(t, items[0].Price.Equal(decimal.RequireFromString("49.90")))
	assert.Equal(t, 3, items[1].Quantity)
}

func TestBuildOrderItemsEmpty(t *testing.T) {
	_, _, err := buildOrderItems(testProducts(), nil)
	assert.ErrorIs(t, err, models.ErrInvalidRequest)
}

func TestBuildOrderItemsUnknownProduct(t *testing.T) {
	_, _, err := buildOrderItems(testProducts(), []OrderItemInput{{ProductID: 42, Quantity: 1}})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestBuildOrderItemsInactiveProduct(t *testing.T) {
	_, _, err := buildOrderItems(testProducts(), []OrderItemInput{{ProductID: 3, Quantity: 1}})
	assert.ErrorIs(t, err, models.ErrProductUnavailable)
}

func TestBuildOrderItemsInsufficientStock(t *testing.T) {
	_, _, err := buildOrderItems(testProducts(), []OrderItemInput{{ProductID: 2, Quantity: 4}})
	assert.ErrorIs(t, err, models.ErrInsufficientStock)
}

func TestBuildOrderItemsValidatesLinesInClientOrder(t *testing.T) {
	// The first line's product exists but is inactive; the second does not
	// exist at all. The first line must fail first.
	_, _, err := buildOrderItems(testProducts(), []OrderItemInput{
		{ProductID: 3, Quantity: 1},
		{ProductID: 42, Quantity: 1},
	})
	assert.ErrorIs(t, err, models.ErrProductUnavailable)
	assert.NotErrorIs(t, err, models.ErrNotFound)
}

func TestBuildOrderItemsFailsBeforeAnyMutation(t *testing.T) {
	// The bad line comes last; the whole order must still be rejected.
	_, _, err := buildOrderItems(testProducts(), []OrderItemInput{
		{ProductID: 1, Quantity: 1},
		{ProductID: 2, Quantity: 100},
	})
	assert.ErrorIs(t, err, models.ErrInsufficientStock)
}

func TestGenerateOrderNumber(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		n := generateOrderNumber()
		assert.Len(t, n, orderNumberLength)
		for _, r := range n {
			assert.True(t, strings.ContainsRune(orderNumberCharset, r), "unexpected character %q in %s", r, n)
		}
		seen[n] = true
	}
	assert.Greater(t, len(seen), 90, "order numbers should almost never collide")
}

func TestStatusForOrderError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{models.ErrNotFound, http.StatusNotFound},
		{models.ErrConflict, http.StatusConflict},
		{models.ErrInvalidRequest, http.StatusBadRequest},
		{models.ErrProductUnavailable, http.StatusBadRequest},
		{models.ErrInsufficientStock, http.StatusBadRequest},
		{assert.AnError, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, statusForOrderError(tt.err), tt.err)
	}
}
