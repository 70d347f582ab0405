package model

import "time"

// PaymentStatus describes payment lifecycle state.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

// PaymentMethod is the capture channel recorded when a payment is processed.
type PaymentMethod string

const (
	PaymentMethodCash PaymentMethod = "Cash"
	PaymentMethodCard PaymentMethod = "Card"
	PaymentMethodUPI  PaymentMethod = "UPI"
)

// Valid reports whether the method is one of the supported capture channels.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodUPI:
		return true
	}
	return false
}

// Payment is the money record attached to an order. Amount is copied from the
// order total at creation. Method stays nil until the payment reaches PAID.
type Payment struct {
	ID        int64
	OrderID   int64
	Amount    float64
	Status    PaymentStatus
	Method    *PaymentMethod
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Live reports whether the payment blocks creation of another payment for
// the same order. Only refunded payments free the slot.
func (p *Payment) Live() bool {
	return p.Status != PaymentStatusRefunded
}
