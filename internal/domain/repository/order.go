package repository

import (
	"context"
	"time"

	"github.com/akarpov/retailhub/internal/domain/model"
)

// OrderRepository describes persistence operations with orders. Create and
// Cancel are transactional: stock adjustments, total computation and status
// writes happen atomically against the same snapshot.
type OrderRepository interface {
	Create(ctx context.Context, customerID int64, items []model.OrderItem) (*model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]model.Order, error)
	Cancel(ctx context.Context, id int64) (*model.Order, error)
	SelectStalePending(ctx context.Context, olderThan time.Time, limit int) ([]model.Order, error)
}
