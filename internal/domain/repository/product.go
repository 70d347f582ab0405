package repository

import (
	"context"

	"github.com/akarpov/retailhub/internal/domain/model"
)

// ProductRepository describes persistence operations with catalog products.
type ProductRepository interface {
	Create(ctx context.Context, name, sku string, price float64, stock int, category *string) (*model.Product, error)
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	List(ctx context.Context, limit int) ([]model.Product, error)
}
