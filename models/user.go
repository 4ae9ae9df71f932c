package models

import "time"

type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleCustomer UserRole = "customer"
)

type User struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	Email             string    `gorm:"uniqueIndex;not null" json:"email"`
	HashedPassword    string    `gorm:"not null" json:"-"`
	FullName          string    `gorm:"not null" json:"full_name"`
	Role              UserRole  `gorm:"type:varchar(20);default:'customer'" json:"role"`
	IsActive          bool      `gorm:"default:true" json:"is_active"`
	IsVerified        bool      `gorm:"default:false" json:"is_verified"`
	VerificationToken *string   `json:"-"`
	ResetToken        *string   `json:"-"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`

	Orders    []Order    `gorm:"foreignKey:UserID" json:"-"`
	CartItems []CartItem `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
