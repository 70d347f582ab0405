package usecase

import (
	"context"
	"time"

	domainErrors "github.com/akarpov/retailhub/internal/domain/errors"
	"github.com/akarpov/retailhub/internal/domain/model"
	"github.com/akarpov/retailhub/internal/domain/repository"
)

// OrderUseCase encapsulates order lifecycle logic. Completion and
// cancellation with a live payment happen through PaymentUseCase, never here.
type OrderUseCase struct {
	orders repository.OrderRepository
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders}
}

// Create validates the requested lines and persists a PENDING order with its
// total computed from current product prices.
func (u *OrderUseCase) Create(ctx context.Context, customerID int64, items []model.OrderItem) (*model.Order, error) {
	if len(items) == 0 {
		return nil, domainErrors.ErrEmptyOrder
	}
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, domainErrors.ErrInvalidQuantity
		}
	}

	return u.orders.Create(ctx, customerID, items)
}

// Get returns order details including line items.
func (u *OrderUseCase) Get(ctx context.Context, orderID int64) (*model.Order, error) {
	return u.orders.GetByID(ctx, orderID)
}

// ListByCustomer returns orders sorted by creation time.
func (u *OrderUseCase) ListByCustomer(ctx context.Context, customerID int64) ([]model.Order, error) {
	return u.orders.ListByCustomer(ctx, customerID)
}

// Cancel marks the order CANCELLED and restores its stock. Cancelling a
// COMPLETED order is rejected; cancelling a CANCELLED one is a no-op.
func (u *OrderUseCase) Cancel(ctx context.Context, orderID int64) (*model.Order, error) {
	return u.orders.Cancel(ctx, orderID)
}

// SelectStalePending returns PENDING orders created before the cutoff.
func (u *OrderUseCase) SelectStalePending(ctx context.Context, olderThan time.Time, limit int) ([]model.Order, error) {
	return u.orders.SelectStalePending(ctx, olderThan, limit)
}
