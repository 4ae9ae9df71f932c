package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID             uint             `gorm:"primaryKey;autoIncrement" json:"id"`
	Name           string           `gorm:"not null" json:"name"`
	Slug           string           `gorm:"uniqueIndex;not null" json:"slug"`
	Description    string           `gorm:"type:text" json:"description"`
	Price          decimal.Decimal  `gorm:"type:numeric(10,2);not null" json:"price"`
	CompareAtPrice *decimal.Decimal `gorm:"type:numeric(10,2)" json:"compare_at_price"`
	CostPerItem    *decimal.Decimal `gorm:"type:numeric(10,2)" json:"cost_per_item"`
	StockQuantity  int              `gorm:"not null;default:0;check:stock_quantity >= 0" json:"stock_quantity"`
	SKU            *string          `gorm:"uniqueIndex" json:"sku"`
	ImageURL       string           `json:"image_url"`
	Images         string           `gorm:"type:text" json:"images"` // JSON array of hosted URLs
	IsActive       bool             `gorm:"default:true" json:"is_active"`
	IsFeatured     bool             `gorm:"default:false" json:"is_featured"`
	CategoryID     *uint            `json:"category_id"`
	Category       *Category        `json:"category,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// ProductPatch is a partial update payload. Nil fields are left untouched.
type ProductPatch struct {
	Name           *string          `json:"name"`
	Slug           *string          `json:"slug"`
	Description    *string          `json:"description"`
	Price          *decimal.Decimal `json:"price"`
	CompareAtPrice *decimal.Decimal `json:"compare_at_price"`
	CostPerItem    *decimal.Decimal `json:"cost_per_item"`
	StockQuantity  *int             `json:"stock_quantity"`
	SKU            *string          `json:"sku"`
	ImageURL       *string          `json:"image_url"`
	Images         *string          `json:"images"`
	IsActive       *bool            `json:"is_active"`
	IsFeatured     *bool            `json:"is_featured"`
	CategoryID     *uint            `json:"category_id"`
}

func (p ProductPatch) Apply(prod *Product) {
	if p.Name != nil {
		prod.Name = *p.Name
	}
	if p.Slug != nil {
		prod.Slug = *p.Slug
	}
	if p.Description != nil {
		prod.Description = *p.Description
	}
	if p.Price != nil {
		prod.Price = *p.Price
	}
	if p.CompareAtPrice != nil {
		prod.CompareAtPrice = p.CompareAtPrice
	}
	if p.CostPerItem != nil {
		prod.CostPerItem = p.CostPerItem
	}
	if p.StockQuantity != nil {
		prod.StockQuantity = *p.StockQuantity
	}
	if p.SKU != nil {
		prod.SKU = p.SKU
	}
	if p.ImageURL != nil {
		prod.ImageURL = *p.ImageURL
	}
	if p.Images != nil {
		prod.Images = *p.Images
	}
	if p.IsActive != nil {
		prod.IsActive = *p.IsActive
	}
	if p.IsFeatured != nil {
		prod.IsFeatured = *p.IsFeatured
	}
	if p.CategoryID != nil {
		prod.CategoryID = p.CategoryID
	}
}
