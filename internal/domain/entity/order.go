package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses.
const (
	OrderPending   = "pending"
	OrderConfirmed = "confirmed"
	OrderShipped   = "shipped"
	OrderDelivered = "delivered"
	OrderCancelled = "cancelled"
)

// Order is a customer purchase. Unit prices are resolved server-side at
// creation time through the pricing engine and frozen on the order.
type Order struct {
	ID         string
	Number     string // human-facing consecutive
	CustomerID string
	Status     string
	Total      decimal.Decimal
	Note       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Items      []OrderItem
}

// OrderItem is one line of an order.
type OrderItem struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  int64
	UnitPrice decimal.Decimal // resolved price at order time
	Subtotal  decimal.Decimal
}

// ValidOrderStatus reports whether s is a known order status.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}
