package test

import (
	"context"
	"time"

	domainErrors "github.com/akarpov/retailhub/internal/domain/errors"
	"github.com/akarpov/retailhub/internal/domain/model"
)

// UserRepositoryStub stores staff accounts in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, login, passwordHash string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if _, exists := s.Users[login]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: s.Next, Login: login, PasswordHash: passwordHash}
	s.Next++
	s.Users[login] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByLogin fetches user by login or returns not found.
func (s *UserRepositoryStub) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[login]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ProductRepositoryStub allows tests to customize catalog behaviour.
type ProductRepositoryStub struct {
	CreateFn  func(context.Context, string, string, float64, int, *string) (*model.Product, error)
	GetByIDFn func(context.Context, int64) (*model.Product, error)
	ListFn    func(context.Context, int) ([]model.Product, error)

	Products []model.Product
}

// Create returns configured response or a default product.
func (s *ProductRepositoryStub) Create(ctx context.Context, name, sku string, price float64, stock int, category *string) (*model.Product, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, name, sku, price, stock, category)
	}
	product := &model.Product{ID: int64(len(s.Products) + 1), Name: name, SKU: sku, Price: price, Stock: stock, Category: category}
	s.Products = append(s.Products, *product)
	return product, nil
}

// GetByID returns matched product either via override or stored slice.
func (s *ProductRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, p := range s.Products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// List returns products from configured slice.
func (s *ProductRepositoryStub) List(ctx context.Context, limit int) ([]model.Product, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, limit)
	}
	if limit > 0 && limit < len(s.Products) {
		return s.Products[:limit], nil
	}
	return s.Products, nil
}

// CustomerRepositoryStub allows tests to customize customer behaviour.
type CustomerRepositoryStub struct {
	CreateFn  func(context.Context, string, string, string, string) (*model.Customer, error)
	GetByIDFn func(context.Context, int64) (*model.Customer, error)
	ListFn    func(context.Context) ([]model.Customer, error)
	UpdateFn  func(context.Context, int64, *string, *string) (*model.Customer, error)
	DeleteFn  func(context.Context, int64) error

	Customers []model.Customer
	Deleted   []int64
}

// Create returns configured response or a default customer.
func (s *CustomerRepositoryStub) Create(ctx context.Context, name, email, phone, city string) (*model.Customer, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, name, email, phone, city)
	}
	customer := &model.Customer{ID: int64(len(s.Customers) + 1), Name: name, Email: email, Phone: phone, City: city}
	s.Customers = append(s.Customers, *customer)
	return customer, nil
}

// GetByID returns matched customer either via override or stored slice.
func (s *CustomerRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, c := range s.Customers {
		if c.ID == id {
			customer := c
			return &customer, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// List returns customers from configured slice.
func (s *CustomerRepositoryStub) List(ctx context.Context) ([]model.Customer, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx)
	}
	return s.Customers, nil
}

// Update applies override or mutates the stored customer.
func (s *CustomerRepositoryStub) Update(ctx context.Context, id int64, phone, city *string) (*model.Customer, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, phone, city)
	}
	for i := range s.Customers {
		if s.Customers[i].ID == id {
			if phone != nil {
				s.Customers[i].Phone = *phone
			}
			if city != nil {
				s.Customers[i].City = *city
			}
			customer := s.Customers[i]
			return &customer, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// Delete records deletion or executes override.
func (s *CustomerRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	s.Deleted = append(s.Deleted, id)
	return nil
}

// OrderCreateCall stores information about order Create invocations.
type OrderCreateCall struct {
	CustomerID int64
	Items      []model.OrderItem
}

// OrderRepositoryStub allows tests to customize order behaviour.
type OrderRepositoryStub struct {
	CreateFn             func(context.Context, int64, []model.OrderItem) (*model.Order, error)
	GetByIDFn            func(context.Context, int64) (*model.Order, error)
	ListByCustomerFn     func(context.Context, int64) ([]model.Order, error)
	CancelFn             func(context.Context, int64) (*model.Order, error)
	SelectStalePendingFn func(context.Context, time.Time, int) ([]model.Order, error)

	Created   []OrderCreateCall
	Orders    []model.Order
	Stale     []model.Order
	Cancelled []int64
}

// Create tracks invocations and returns configured responses.
func (s *OrderRepositoryStub) Create(ctx context.Context, customerID int64, items []model.OrderItem) (*model.Order, error) {
	s.Created = append(s.Created, OrderCreateCall{CustomerID: customerID, Items: items})
	if s.CreateFn != nil {
		return s.CreateFn(ctx, customerID, items)
	}
	order := &model.Order{ID: 1, CustomerID: customerID, Status: model.OrderStatusPending, Items: items}
	return order, nil
}

// GetByID returns matched order either via override or stored slice.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	for _, o := range s.Orders {
		if o.ID == id {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ListByCustomer returns orders from configured slice.
func (s *OrderRepositoryStub) ListByCustomer(ctx context.Context, customerID int64) ([]model.Order, error) {
	if s.ListByCustomerFn != nil {
		return s.ListByCustomerFn(ctx, customerID)
	}
	return s.Orders, nil
}

// Cancel records cancellation and flips stored order status.
func (s *OrderRepositoryStub) Cancel(ctx context.Context, id int64) (*model.Order, error) {
	s.Cancelled = append(s.Cancelled, id)
	if s.CancelFn != nil {
		return s.CancelFn(ctx, id)
	}
	for i := range s.Orders {
		if s.Orders[i].ID == id {
			s.Orders[i].Status = model.OrderStatusCancelled
			order := s.Orders[i]
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// SelectStalePending returns queued stale orders.
func (s *OrderRepositoryStub) SelectStalePending(ctx context.Context, olderThan time.Time, limit int) ([]model.Order, error) {
	if s.SelectStalePendingFn != nil {
		return s.SelectStalePendingFn(ctx, olderThan, limit)
	}
	return s.Stale, nil
}

// PaymentRepositoryStub allows tests to customize payment behaviour.
type PaymentRepositoryStub struct {
	CreateForOrderFn func(context.Context, int64) (*model.Payment, error)
	GetByOrderFn     func(context.Context, int64) (*model.Payment, error)
	ProcessFn        func(context.Context, int64, model.PaymentMethod) (*model.Payment, error)
	RefundFn         func(context.Context, int64) (*model.Payment, error)

	Payments map[int64]*model.Payment
	Refunded []int64
}

// CreateForOrder returns configured response or a fresh pending payment.
func (s *PaymentRepositoryStub) CreateForOrder(ctx context.Context, orderID int64) (*model.Payment, error) {
	if s.CreateForOrderFn != nil {
		return s.CreateForOrderFn(ctx, orderID)
	}
	if s.Payments == nil {
		s.Payments = make(map[int64]*model.Payment)
	}
	if existing, ok := s.Payments[orderID]; ok && existing.Live() {
		return nil, domainErrors.ErrPaymentExists
	}
	payment := &model.Payment{ID: int64(len(s.Payments) + 1), OrderID: orderID, Status: model.PaymentStatusPending}
	s.Payments[orderID] = payment
	return payment, nil
}

// GetByOrder returns the stored payment or not found.
func (s *PaymentRepositoryStub) GetByOrder(ctx context.Context, orderID int64) (*model.Payment, error) {
	if s.GetByOrderFn != nil {
		return s.GetByOrderFn(ctx, orderID)
	}
	if payment, ok := s.Payments[orderID]; ok {
		return payment, nil
	}
	return nil, domainErrors.ErrNotFound
}

// Process transitions the stored payment to PAID.
func (s *PaymentRepositoryStub) Process(ctx context.Context, orderID int64, method model.PaymentMethod) (*model.Payment, error) {
	if s.ProcessFn != nil {
		return s.ProcessFn(ctx, orderID, method)
	}
	payment, ok := s.Payments[orderID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	switch payment.Status {
	case model.PaymentStatusPaid:
		return nil, domainErrors.ErrPaymentProcessed
	case model.PaymentStatusRefunded:
		return nil, domainErrors.ErrPaymentRefunded
	}
	payment.Status = model.PaymentStatusPaid
	payment.Method = &method
	return payment, nil
}

// Refund transitions the stored payment to REFUNDED.
func (s *PaymentRepositoryStub) Refund(ctx context.Context, orderID int64) (*model.Payment, error) {
	s.Refunded = append(s.Refunded, orderID)
	if s.RefundFn != nil {
		return s.RefundFn(ctx, orderID)
	}
	payment, ok := s.Payments[orderID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if payment.Status == model.PaymentStatusRefunded {
		return nil, domainErrors.ErrPaymentRefunded
	}
	payment.Status = model.PaymentStatusRefunded
	return payment, nil
}
