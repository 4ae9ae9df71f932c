package models

import "time"

type ProductReview struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	ProductID          uint      `gorm:"not null;uniqueIndex:idx_review_product_user" json:"product_id"`
	UserID             uint      `gorm:"not null;uniqueIndex:idx_review_product_user" json:"user_id"`
	User               User      `json:"-"`
	Rating             int       `gorm:"not null" json:"rating"`
	Title              string    `json:"title"`
	Comment            string    `gorm:"type:text;not null" json:"comment"`
	IsVerifiedPurchase bool      `gorm:"default:false" json:"is_verified_purchase"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`

	// Filled in for responses, not persisted.
	UserName string `gorm:"-" json:"user_name"`
}

type ReviewPatch struct {
	Rating  *int    `json:"rating"`
	Title   *string `json:"title"`
	Comment *string `json:"comment"`
}

func (p ReviewPatch) Apply(r *ProductReview) {
	if p.Rating != nil {
		r.Rating = *p.Rating
	}
	if p.Title != nil {
		r.Title = *p.Title
	}
	if p.Comment != nil {
		r.Comment = *p.Comment
	}
}
