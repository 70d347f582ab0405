package handlers

import (
	"context"

	"github.com/akarpov/retailhub/internal/domain/model"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, login, password string) (string, error)
	Authenticate(ctx context.Context, login, password string) (string, error)
	ParseToken(token string) (int64, error)
}

// CatalogFacade encapsulates product operations exposed via HTTP.
type CatalogFacade interface {
	AddProduct(ctx context.Context, name, sku string, price float64, stock int, category *string) (*model.Product, error)
	Product(ctx context.Context, id int64) (*model.Product, error)
	Products(ctx context.Context, limit int) ([]model.Product, error)
}

// CustomerFacade encapsulates customer operations exposed via HTTP.
type CustomerFacade interface {
	AddCustomer(ctx context.Context, name, email, phone, city string) (*model.Customer, error)
	Customers(ctx context.Context) ([]model.Customer, error)
	UpdateCustomer(ctx context.Context, id int64, phone, city *string) (*model.Customer, error)
	DeleteCustomer(ctx context.Context, id int64) error
	CustomerOrders(ctx context.Context, customerID int64) ([]model.Order, error)
}

// OrderFacade encapsulates order lifecycle operations exposed via HTTP.
type OrderFacade interface {
	PlaceOrder(ctx context.Context, customerID int64, items []model.OrderItem) (*model.Order, error)
	Order(ctx context.Context, orderID int64) (*model.Order, error)
	CancelOrder(ctx context.Context, orderID int64) (*model.Order, error)
}

// PaymentFacade encapsulates payment lifecycle operations exposed via HTTP.
type PaymentFacade interface {
	CreatePayment(ctx context.Context, orderID int64) (*model.Payment, error)
	ProcessPayment(ctx context.Context, orderID int64, method model.PaymentMethod) (*model.Payment, error)
	RefundPayment(ctx context.Context, orderID int64) (*model.Payment, error)
}

// RetailFacade aggregates the full set of operations used across handlers.
type RetailFacade interface {
	AuthFacade
	CatalogFacade
	CustomerFacade
	OrderFacade
	PaymentFacade
}
