package repository

import (
	"context"

	"github.com/akarpov/retailhub/internal/domain/model"
)

// CustomerRepository describes persistence operations with customers.
type CustomerRepository interface {
	Create(ctx context.Context, name, email, phone, city string) (*model.Customer, error)
	GetByID(ctx context.Context, id int64) (*model.Customer, error)
	List(ctx context.Context) ([]model.Customer, error)
	Update(ctx context.Context, id int64, phone, city *string) (*model.Customer, error)
	Delete(ctx context.Context, id int64) error
}
