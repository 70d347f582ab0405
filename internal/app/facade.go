package app

import (
	"context"
	"errors"
	"time"

	domainErrors "github.com/akarpov/retailhub/internal/domain/errors"
	"github.com/akarpov/retailhub/internal/domain/model"
	"github.com/akarpov/retailhub/internal/metrics"
	"github.com/akarpov/retailhub/internal/usecase"
)

// RetailFacade aggregates the lifecycle managers behind a single surface
// used by the HTTP handlers and the background sweeper.
type RetailFacade struct {
	auth      *usecase.AuthUseCase
	catalog   *usecase.CatalogUseCase
	customers *usecase.CustomerUseCase
	orders    *usecase.OrderUseCase
	payments  *usecase.PaymentUseCase
	metrics   *metrics.Metrics
}

// NewRetailFacade constructs RetailFacade.
func NewRetailFacade(
	auth *usecase.AuthUseCase,
	catalog *usecase.CatalogUseCase,
	customers *usecase.CustomerUseCase,
	orders *usecase.OrderUseCase,
	payments *usecase.PaymentUseCase,
	m *metrics.Metrics,
) *RetailFacade {
	return &RetailFacade{auth: auth, catalog: catalog, customers: customers, orders: orders, payments: payments, metrics: m}
}

func (f *RetailFacade) Register(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Register(ctx, login, password)
	return token, err
}

func (f *RetailFacade) Authenticate(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, login, password)
	return token, err
}

func (f *RetailFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *RetailFacade) AddProduct(ctx context.Context, name, sku string, price float64, stock int, category *string) (*model.Product, error) {
	return f.catalog.AddProduct(ctx, name, sku, price, stock, category)
}

func (f *RetailFacade) Product(ctx context.Context, id int64) (*model.Product, error) {
	return f.catalog.GetProduct(ctx, id)
}

func (f *RetailFacade) Products(ctx context.Context, limit int) ([]model.Product, error) {
	return f.catalog.ListProducts(ctx, limit)
}

func (f *RetailFacade) AddCustomer(ctx context.Context, name, email, phone, city string) (*model.Customer, error) {
	return f.customers.Add(ctx, name, email, phone, city)
}

func (f *RetailFacade) Customers(ctx context.Context) ([]model.Customer, error) {
	return f.customers.List(ctx)
}

func (f *RetailFacade) UpdateCustomer(ctx context.Context, id int64, phone, city *string) (*model.Customer, error) {
	return f.customers.Update(ctx, id, phone, city)
}

func (f *RetailFacade) DeleteCustomer(ctx context.Context, id int64) error {
	return f.customers.Delete(ctx, id)
}

// PlaceOrder creates a PENDING order for the customer.
func (f *RetailFacade) PlaceOrder(ctx context.Context, customerID int64, items []model.OrderItem) (*model.Order, error) {
	order, err := f.orders.Create(ctx, customerID, items)
	if err != nil {
		return nil, err
	}
	f.metrics.OrderCreated()
	return order, nil
}

func (f *RetailFacade) Order(ctx context.Context, orderID int64) (*model.Order, error) {
	return f.orders.Get(ctx, orderID)
}

func (f *RetailFacade) CustomerOrders(ctx context.Context, customerID int64) ([]model.Order, error) {
	return f.orders.ListByCustomer(ctx, customerID)
}

// CancelOrder cancels the order and refunds its live payment, if any. When a
// live payment exists the cancellation goes through the refund path so the
// payment and order rows change in one transaction.
func (f *RetailFacade) CancelOrder(ctx context.Context, orderID int64) (*model.Order, error) {
	order, err := f.orders.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}
	switch order.Status {
	case model.OrderStatusCompleted:
		return nil, domainErrors.ErrOrderCompleted
	case model.OrderStatusCancelled:
		return order, nil
	}

	payment, err := f.payments.GetByOrder(ctx, orderID)
	switch {
	case err == nil && payment.Live():
		if _, err := f.payments.Refund(ctx, orderID); err != nil {
			return nil, err
		}
		f.metrics.PaymentRefunded()
		f.metrics.OrderCancelled()
		return f.orders.Get(ctx, orderID)
	case err != nil && !errors.Is(err, domainErrors.ErrNotFound):
		return nil, err
	}

	order, err = f.orders.Cancel(ctx, orderID)
	if err != nil {
		return nil, err
	}
	f.metrics.OrderCancelled()
	return order, nil
}

func (f *RetailFacade) CreatePayment(ctx context.Context, orderID int64) (*model.Payment, error) {
	payment, err := f.payments.CreateForOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	f.metrics.PaymentCreated()
	return payment, nil
}

func (f *RetailFacade) ProcessPayment(ctx context.Context, orderID int64, method model.PaymentMethod) (*model.Payment, error) {
	payment, err := f.payments.Process(ctx, orderID, method)
	if err != nil {
		return nil, err
	}
	f.metrics.PaymentProcessed()
	return payment, nil
}

func (f *RetailFacade) RefundPayment(ctx context.Context, orderID int64) (*model.Payment, error) {
	payment, err := f.payments.Refund(ctx, orderID)
	if err != nil {
		return nil, err
	}
	f.metrics.PaymentRefunded()
	f.metrics.OrderCancelled()
	return payment, nil
}

// StaleOrders returns PENDING orders older than the cutoff for the sweeper.
func (f *RetailFacade) StaleOrders(ctx context.Context, olderThan time.Time, limit int) ([]model.Order, error) {
	return f.orders.SelectStalePending(ctx, olderThan, limit)
}
