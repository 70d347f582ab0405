package dto

import "time"

// ProcessPaymentRequest carries the capture method.
type ProcessPaymentRequest struct {
	Method string `json:"method"`
}

// PaymentResponse describes a payment record. Method is null until the
// payment has been processed.
type PaymentResponse struct {
	ID        int64     `json:"id"`
	OrderID   int64     `json:"order_id"`
	Amount    float64   `json:"amount"`
	Status    string    `json:"status"`
	Method    *string   `json:"method"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
