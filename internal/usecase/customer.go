package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/akarpov/retailhub/internal/domain/errors"
	"github.com/akarpov/retailhub/internal/domain/model"
	"github.com/akarpov/retailhub/internal/domain/repository"
)

// CustomerUseCase manages customer records.
type CustomerUseCase struct {
	customers repository.CustomerRepository
}

// NewCustomerUseCase constructs CustomerUseCase.
func NewCustomerUseCase(customers repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{customers: customers}
}

// Add registers a new customer.
func (u *CustomerUseCase) Add(ctx context.Context, name, email, phone, city string) (*model.Customer, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" {
		return nil, domainErrors.ErrInvalidCustomer
	}
	return u.customers.Create(ctx, name, email, phone, city)
}

// Get fetches a customer by identifier.
func (u *CustomerUseCase) Get(ctx context.Context, id int64) (*model.Customer, error) {
	return u.customers.GetByID(ctx, id)
}

// List returns all customers.
func (u *CustomerUseCase) List(ctx context.Context) ([]model.Customer, error) {
	return u.customers.List(ctx)
}

// Update changes customer contact fields. Nil fields keep current values.
func (u *CustomerUseCase) Update(ctx context.Context, id int64, phone, city *string) (*model.Customer, error) {
	return u.customers.Update(ctx, id, phone, city)
}

// Delete removes a customer.
func (u *CustomerUseCase) Delete(ctx context.Context, id int64) error {
	return u.customers.Delete(ctx, id)
}
