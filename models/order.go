package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// legalTransitions lists the allowed status moves. delivered and cancelled
// are terminal; cancellation is possible from any non-terminal state.
var legalTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusDelivered, OrderStatusCancelled},
}

func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return OrderStatus(s), true
	}
	return "", false
}

// CanTransition reports whether an order may move from one status to another.
func CanTransition(from, to OrderStatus) bool {
	for _, next := range legalTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type Order struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	OrderNumber string          `gorm:"uniqueIndex;not null" json:"order_number"`
	UserID      uint            `gorm:"index;not null" json:"user_id"`
	User        User            `json:"-"`
	Status      OrderStatus     `gorm:"type:varchar(20);default:'pending'" json:"status"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"total_amount"`

	// Shipping and contact snapshot, copied at creation time.
	ShippingAddress    string `gorm:"type:text;not null" json:"shipping_address"`
	ShippingCity       string `gorm:"not null" json:"shipping_city"`
	ShippingPostalCode string `gorm:"not null" json:"shipping_postal_code"`
	ShippingCountry    string `gorm:"not null" json:"shipping_country"`
	CustomerName       string `gorm:"not null" json:"customer_name"`
	CustomerEmail      string `gorm:"not null" json:"customer_email"`
	CustomerPhone      string `json:"customer_phone"`
	Notes              string `gorm:"type:text" json:"notes"`

	Items     []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"order_items"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// OrderItem captures the unit price at purchase time; it is never recomputed
// from the live product row.
type OrderItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	OrderID   uint            `gorm:"index;not null" json:"order_id"`
	ProductID uint            `gorm:"not null" json:"product_id"`
	Product   Product         `json:"product"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	Price     decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
}

// OrderPatch is the admin-editable slice of an order. Everything else is
// immutable after creation.
type OrderPatch struct {
	Status *OrderStatus `json:"status"`
	Notes  *string      `json:"notes"`
}

func (p OrderPatch) Apply(o *Order) {
	if p.Status != nil {
		o.Status = *p.Status
	}
	if p.Notes != nil {
		o.Notes = *p.Notes
	}
}
