package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestProductPatchApply(t *testing.T) {
	sku := "TUFT-001"
	product := Product{
		Name:          "Wool rug",
		Slug:          "wool-rug",
		Price:         decimal.RequireFromString("49.90"),
		StockQuantity: 12,
		SKU:           &sku,
		IsActive:      true,
	}

	newPrice := decimal.RequireFromString("59.90")
	newStock := 3
	inactive := false
	ProductPatch{
		Price:         &newPrice,
		StockQuantity: &newStock,
		IsActive:      &inactive,
	}.Apply(&product)

	assert.True(t, product.Price.Equal(newPrice))
	assert.Equal(t, 3, product.StockQuantity)
	assert.False(t, product.IsActive)

	// untouched fields keep their values
	assert.Equal(t, "Wool rug", product.Name)
	assert.Equal(t, "wool-rug", product.Slug)
	assert.Equal(t, &sku, product.SKU)
}

func TestProductPatchApplyEmpty(t *testing.T) {
	product := Product{Name: "Wool rug", Price: decimal.RequireFromString("49.90")}
	before := product

	ProductPatch{}.Apply(&product)
	assert.Equal(t, before, product)
}
