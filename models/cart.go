package models

import "time"

// CartItem is one (user, product, quantity) row. Uniqueness of the
// (user, product) pair is enforced by the add-to-cart upsert, not by a
// database constraint.
type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	ProductID uint      `gorm:"not null" json:"product_id"`
	Product   Product   `json:"product"`
	Quantity  int       `gorm:"not null;default:1" json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}
