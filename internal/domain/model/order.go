package model

import "time"

// OrderStatus describes order lifecycle state.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// OrderItem is a single line of an order. Quantity and UnitPrice are frozen
// at order creation and never change afterwards.
type OrderItem struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Quantity  int
	UnitPrice float64
}

// Order describes a customer purchase. TotalAmount is computed once at
// creation from the ordered items and is never recomputed.
type Order struct {
	ID          int64
	CustomerID  int64
	TotalAmount float64
	Status      OrderStatus
	Items       []OrderItem
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
