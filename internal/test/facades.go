package test

import (
	"context"
	"sync"
	"time"

	"github.com/akarpov/retailhub/internal/domain/model"
)

// CatalogFacadeStub provides controllable behaviour for product endpoints.
type CatalogFacadeStub struct {
	AddProductFn func(context.Context, string, string, float64, int, *string) (*model.Product, error)
	ProductFn    func(context.Context, int64) (*model.Product, error)
	ProductsFn   func(context.Context, int) ([]model.Product, error)
}

// AddProduct delegates to provided function or returns a default product.
func (s CatalogFacadeStub) AddProduct(ctx context.Context, name, sku string, price float64, stock int, category *string) (*model.Product, error) {
	if s.AddProductFn != nil {
		return s.AddProductFn(ctx, name, sku, price, stock, category)
	}
	return &model.Product{ID: 1, Name: name, SKU: sku, Price: price, Stock: stock, Category: category}, nil
}

// Product returns predefined product for given identifier.
func (s CatalogFacadeStub) Product(ctx context.Context, id int64) (*model.Product, error) {
	if s.ProductFn != nil {
		return s.ProductFn(ctx, id)
	}
	return &model.Product{ID: id, Name: "widget", SKU: "SKU-1", Price: 9.99, Stock: 10}, nil
}

// Products returns predefined catalog listing.
func (s CatalogFacadeStub) Products(ctx context.Context, limit int) ([]model.Product, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx, limit)
	}
	return []model.Product{{ID: 1, Name: "widget", SKU: "SKU-1"}}, nil
}

// CustomerFacadeStub simulates customer operations.
type CustomerFacadeStub struct {
	AddCustomerFn    func(context.Context, string, string, string, string) (*model.Customer, error)
	CustomersFn      func(context.Context) ([]model.Customer, error)
	UpdateCustomerFn func(context.Context, int64, *string, *string) (*model.Customer, error)
	DeleteCustomerFn func(context.Context, int64) error
	CustomerOrdersFn func(context.Context, int64) ([]model.Order, error)
}

// AddCustomer delegates to provided function or returns a default customer.
func (s CustomerFacadeStub) AddCustomer(ctx context.Context, name, email, phone, city string) (*model.Customer, error) {
	if s.AddCustomerFn != nil {
		return s.AddCustomerFn(ctx, name, email, phone, city)
	}
	return &model.Customer{ID: 1, Name: name, Email: email, Phone: phone, City: city}, nil
}

// Customers returns predefined customer listing.
func (s CustomerFacadeStub) Customers(ctx context.Context) ([]model.Customer, error) {
	if s.CustomersFn != nil {
		return s.CustomersFn(ctx)
	}
	return []model.Customer{{ID: 1, Name: "Alice"}}, nil
}

// UpdateCustomer executes configured update handler.
func (s CustomerFacadeStub) UpdateCustomer(ctx context.Context, id int64, phone, city *string) (*model.Customer, error) {
	if s.UpdateCustomerFn != nil {
		return s.UpdateCustomerFn(ctx, id, phone, city)
	}
	return &model.Customer{ID: id, Name: "Alice"}, nil
}

// DeleteCustomer executes configured delete handler.
func (s CustomerFacadeStub) DeleteCustomer(ctx context.Context, id int64) error {
	if s.DeleteCustomerFn != nil {
		return s.DeleteCustomerFn(ctx, id)
	}
	return nil
}

// CustomerOrders returns predefined order history.
func (s CustomerFacadeStub) CustomerOrders(ctx context.Context, customerID int64) ([]model.Order, error) {
	if s.CustomerOrdersFn != nil {
		return s.CustomerOrdersFn(ctx, customerID)
	}
	return []model.Order{{ID: 1, CustomerID: customerID, Status: model.OrderStatusPending}}, nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	PlaceOrderFn  func(context.Context, int64, []model.OrderItem) (*model.Order, error)
	OrderFn       func(context.Context, int64) (*model.Order, error)
	CancelOrderFn func(context.Context, int64) (*model.Order, error)
}

// PlaceOrder delegates to provided function or returns a default order.
func (s OrderFacadeStub) PlaceOrder(ctx context.Context, customerID int64, items []model.OrderItem) (*model.Order, error) {
	if s.PlaceOrderFn != nil {
		return s.PlaceOrderFn(ctx, customerID, items)
	}
	return &model.Order{ID: 1, CustomerID: customerID, Status: model.OrderStatusPending, Items: items}, nil
}

// Order returns predefined order for given identifier.
func (s OrderFacadeStub) Order(ctx context.Context, orderID int64) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, orderID)
	}
	return &model.Order{ID: orderID, CustomerID: 1, Status: model.OrderStatusPending}, nil
}

// CancelOrder executes configured cancellation handler.
func (s OrderFacadeStub) CancelOrder(ctx context.Context, orderID int64) (*model.Order, error) {
	if s.CancelOrderFn != nil {
		return s.CancelOrderFn(ctx, orderID)
	}
	return &model.Order{ID: orderID, CustomerID: 1, Status: model.OrderStatusCancelled}, nil
}

// PaymentFacadeStub simulates payment lifecycle operations.
type PaymentFacadeStub struct {
	CreatePaymentFn  func(context.Context, int64) (*model.Payment, error)
	ProcessPaymentFn func(context.Context, int64, model.PaymentMethod) (*model.Payment, error)
	RefundPaymentFn  func(context.Context, int64) (*model.Payment, error)
}

// CreatePayment delegates to provided function or returns a pending payment.
func (s PaymentFacadeStub) CreatePayment(ctx context.Context, orderID int64) (*model.Payment, error) {
	if s.CreatePaymentFn != nil {
		return s.CreatePaymentFn(ctx, orderID)
	}
	return &model.Payment{ID: 1, OrderID: orderID, Status: model.PaymentStatusPending, Amount: 10}, nil
}

// ProcessPayment delegates to provided function or returns a paid payment.
func (s PaymentFacadeStub) ProcessPayment(ctx context.Context, orderID int64, method model.PaymentMethod) (*model.Payment, error) {
	if s.ProcessPaymentFn != nil {
		return s.ProcessPaymentFn(ctx, orderID, method)
	}
	return &model.Payment{ID: 1, OrderID: orderID, Status: model.PaymentStatusPaid, Method: &method, Amount: 10}, nil
}

// RefundPayment delegates to provided function or returns a refunded payment.
func (s PaymentFacadeStub) RefundPayment(ctx context.Context, orderID int64) (*model.Payment, error) {
	if s.RefundPaymentFn != nil {
		return s.RefundPaymentFn(ctx, orderID)
	}
	return &model.Payment{ID: 1, OrderID: orderID, Status: model.PaymentStatusRefunded, Amount: 10}, nil
}

// RetailFacadeStub aggregates facade dependencies for HTTP layer tests.
type RetailFacadeStub struct {
	AuthFacadeStub
	CatalogFacadeStub
	CustomerFacadeStub
	OrderFacadeStub
	PaymentFacadeStub
}

// SweeperFacadeStub mimics sweeper interactions with the retail facade.
type SweeperFacadeStub struct {
	Batches       [][]model.Order
	StaleOrdersFn func(context.Context, time.Time, int) ([]model.Order, error)
	CancelFn      func(context.Context, int64) (*model.Order, error)
	Cancelled     []int64
	mu            sync.Mutex
	batchCalls    int
}

// Lock exposes internal mutex for external synchronization.
func (s *SweeperFacadeStub) Lock() { s.mu.Lock() }

// Unlock releases previously acquired lock.
func (s *SweeperFacadeStub) Unlock() { s.mu.Unlock() }

// StaleOrders returns batches from configured queue.
func (s *SweeperFacadeStub) StaleOrders(ctx context.Context, olderThan time.Time, limit int) ([]model.Order, error) {
	if s.StaleOrdersFn != nil {
		return s.StaleOrdersFn(ctx, olderThan, limit)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.batchCalls < len(s.Batches) {
		batch := s.Batches[s.batchCalls]
		s.batchCalls++
		return batch, nil
	}
	return nil, nil
}

// CancelOrder records cancellation requests.
func (s *SweeperFacadeStub) CancelOrder(ctx context.Context, orderID int64) (*model.Order, error) {
	if s.CancelFn != nil {
		return s.CancelFn(ctx, orderID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Cancelled = append(s.Cancelled, orderID)
	return &model.Order{ID: orderID, Status: model.OrderStatusCancelled}, nil
}
