package repository

import (
	"context"

	"github.com/akarpov/retailhub/internal/domain/model"
)

// PaymentRepository describes persistence operations with payments. Every
// mutating call locks the parent order row first, so create/process/refund
// are linearized per order. Payment writes and the order status changes they
// imply commit in the same transaction.
type PaymentRepository interface {
	CreateForOrder(ctx context.Context, orderID int64) (*model.Payment, error)
	GetByOrder(ctx context.Context, orderID int64) (*model.Payment, error)
	Process(ctx context.Context, orderID int64, method model.PaymentMethod) (*model.Payment, error)
	Refund(ctx context.Context, orderID int64) (*model.Payment, error)
}
