package app

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	domainErrors "github.com/akarpov/retailhub/internal/domain/errors"
	"github.com/akarpov/retailhub/internal/domain/model"
	"github.com/akarpov/retailhub/internal/metrics"
	testhelpers "github.com/akarpov/retailhub/internal/test"
	"github.com/akarpov/retailhub/internal/usecase"
)

type facadeDeps struct {
	users     *testhelpers.UserRepositoryStub
	products  *testhelpers.ProductRepositoryStub
	customers *testhelpers.CustomerRepositoryStub
	orders    *testhelpers.OrderRepositoryStub
	payments  *testhelpers.PaymentRepositoryStub
	registry  *prometheus.Registry
}

func newTestFacade(t *testing.T) (*RetailFacade, *facadeDeps) {
	t.Helper()
	deps := &facadeDeps{
		users:     testhelpers.NewUserRepositoryStub(),
		products:  &testhelpers.ProductRepositoryStub{},
		customers: &testhelpers.CustomerRepositoryStub{},
		orders:    &testhelpers.OrderRepositoryStub{},
		payments:  &testhelpers.PaymentRepositoryStub{},
		registry:  prometheus.NewRegistry(),
	}
	facade := NewRetailFacade(
		usecase.NewAuthUseCase(deps.users, testhelpers.HasherStub{}, testhelpers.StrategyStub{}),
		usecase.NewCatalogUseCase(deps.products),
		usecase.NewCustomerUseCase(deps.customers),
		usecase.NewOrderUseCase(deps.orders),
		usecase.NewPaymentUseCase(deps.payments),
		metrics.NewWithRegisterer(deps.registry),
	)
	return facade, deps
}

func counterValue(t *testing.T, registry *prometheus.Registry, name string) float64 {
	t.Helper()
	families, err := registry.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}
	for _, family := range families {
		if family.GetName() == name {
			return family.GetMetric()[0].GetCounter().GetValue()
		}
	}
	return 0
}

func TestRetailFacadePlaceOrder(t *testing.T) {
	facade, deps := newTestFacade(t)

	order, err := facade.PlaceOrder(context.Background(), 1, []model.OrderItem{{ProductID: 2, Quantity: 3}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Status != model.OrderStatusPending {
		t.Fatalf("expected pending order, got %s", order.Status)
	}
	if got := counterValue(t, deps.registry, "retailhub_orders_created_total"); got != 1 {
		t.Fatalf("expected 1 created order metric, got %v", got)
	}

	if _, err := facade.PlaceOrder(context.Background(), 1, nil); err != domainErrors.ErrEmptyOrder {
		t.Fatalf("expected empty order error, got %v", err)
	}
	if got := counterValue(t, deps.registry, "retailhub_orders_created_total"); got != 1 {
		t.Fatalf("expected metric unchanged on failure, got %v", got)
	}
}

func TestRetailFacadeCancelOrderNotFound(t *testing.T) {
	facade, _ := newTestFacade(t)

	if _, err := facade.CancelOrder(context.Background(), 42); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestRetailFacadeCancelOrderCompletedRejected(t *testing.T) {
	facade, deps := newTestFacade(t)
	deps.orders.Orders = []model.Order{{ID: 1, Status: model.OrderStatusCompleted}}

	if _, err := facade.CancelOrder(context.Background(), 1); !errors.Is(err, domainErrors.ErrOrderCompleted) {
		t.Fatalf("expected order completed error, got %v", err)
	}
	if len(deps.orders.Cancelled) != 0 {
		t.Fatalf("expected no cancel calls, got %v", deps.orders.Cancelled)
	}
}

func TestRetailFacadeCancelOrderIdempotent(t *testing.T) {
	facade, deps := newTestFacade(t)
	deps.orders.Orders = []model.Order{{ID: 1, Status: model.OrderStatusCancelled}}

	order, err := facade.CancelOrder(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Status != model.OrderStatusCancelled {
		t.Fatalf("expected cancelled, got %s", order.Status)
	}
	if len(deps.orders.Cancelled) != 0 || len(deps.payments.Refunded) != 0 {
		t.Fatal("expected no writes for already cancelled order")
	}
	if got := counterValue(t, deps.registry, "retailhub_orders_cancelled_total"); got != 0 {
		t.Fatalf("expected no cancel metric, got %v", got)
	}
}

func TestRetailFacadeCancelOrderWithoutPayment(t *testing.T) {
	facade, deps := newTestFacade(t)
	deps.orders.Orders = []model.Order{{ID: 1, Status: model.OrderStatusPending}}

	order, err := facade.CancelOrder(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Status != model.OrderStatusCancelled {
		t.Fatalf("expected cancelled, got %s", order.Status)
	}
	if len(deps.orders.Cancelled) != 1 || deps.orders.Cancelled[0] != 1 {
		t.Fatalf("expected direct cancel call, got %v", deps.orders.Cancelled)
	}
	if len(deps.payments.Refunded) != 0 {
		t.Fatalf("expected no refund calls, got %v", deps.payments.Refunded)
	}
	if got := counterValue(t, deps.registry, "retailhub_orders_cancelled_total"); got != 1 {
		t.Fatalf("expected cancel metric 1, got %v", got)
	}
}

func TestRetailFacadeCancelOrderRefundsLivePayment(t *testing.T) {
	facade, deps := newTestFacade(t)
	deps.orders.Orders = []model.Order{{ID: 1, Status: model.OrderStatusPending}}
	deps.payments.Payments = map[int64]*model.Payment{
		1: {ID: 10, OrderID: 1, Status: model.PaymentStatusPaid},
	}
	// refund flips the order row the way the transactional repository does
	deps.payments.RefundFn = func(ctx context.Context, orderID int64) (*model.Payment, error) {
		deps.orders.Orders[0].Status = model.OrderStatusCancelled
		p := deps.payments.Payments[orderID]
		p.Status = model.PaymentStatusRefunded
		return p, nil
	}

	order, err := facade.CancelOrder(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Status != model.OrderStatusCancelled {
		t.Fatalf("expected cancelled, got %s", order.Status)
	}
	if len(deps.payments.Refunded) != 1 {
		t.Fatalf("expected refund call, got %v", deps.payments.Refunded)
	}
	if len(deps.orders.Cancelled) != 0 {
		t.Fatalf("expected cancellation to go through refund, got direct calls %v", deps.orders.Cancelled)
	}
	if got := counterValue(t, deps.registry, "retailhub_payments_refunded_total"); got != 1 {
		t.Fatalf("expected refund metric 1, got %v", got)
	}
	if got := counterValue(t, deps.registry, "retailhub_orders_cancelled_total"); got != 1 {
		t.Fatalf("expected cancel metric 1, got %v", got)
	}
}

func TestRetailFacadeCancelOrderSkipsRefundedPayment(t *testing.T) {
	facade, deps := newTestFacade(t)
	deps.orders.Orders = []model.Order{{ID: 1, Status: model.OrderStatusPending}}
	deps.payments.Payments = map[int64]*model.Payment{
		1: {ID: 10, OrderID: 1, Status: model.PaymentStatusRefunded},
	}

	order, err := facade.CancelOrder(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Status != model.OrderStatusCancelled {
		t.Fatalf("expected cancelled, got %s", order.Status)
	}
	if len(deps.payments.Refunded) != 0 {
		t.Fatalf("expected no refund for dead payment, got %v", deps.payments.Refunded)
	}
	if len(deps.orders.Cancelled) != 1 {
		t.Fatalf("expected direct cancel, got %v", deps.orders.Cancelled)
	}
}

func TestRetailFacadePaymentLifecycleMetrics(t *testing.T) {
	facade, deps := newTestFacade(t)
	deps.orders.Orders = []model.Order{{ID: 1, Status: model.OrderStatusPending}}

	if _, err := facade.CreatePayment(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := facade.ProcessPayment(context.Background(), 1, model.PaymentMethodCash); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := facade.RefundPayment(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for name, want := range map[string]float64{
		"retailhub_payments_created_total":   1,
		"retailhub_payments_processed_total": 1,
		"retailhub_payments_refunded_total":  1,
		"retailhub_orders_cancelled_total":   1,
	} {
		if got := counterValue(t, deps.registry, name); got != want {
			t.Fatalf("expected %s=%v, got %v", name, want, got)
		}
	}
}

func TestRetailFacadeProcessPaymentInvalidMethod(t *testing.T) {
	facade, deps := newTestFacade(t)
	deps.payments.Payments = map[int64]*model.Payment{
		1: {ID: 10, OrderID: 1, Status: model.PaymentStatusPending},
	}

	if _, err := facade.ProcessPayment(context.Background(), 1, "Barter"); !errors.Is(err, domainErrors.ErrInvalidMethod) {
		t.Fatalf("expected invalid method, got %v", err)
	}
	if got := counterValue(t, deps.registry, "retailhub_payments_processed_total"); got != 0 {
		t.Fatalf("expected metric unchanged, got %v", got)
	}
}

func TestRetailFacadeAuthPassthrough(t *testing.T) {
	facade, _ := newTestFacade(t)

	token, err := facade.Register(context.Background(), "clerk", "secret")
	if err != nil || token == "" {
		t.Fatalf("expected token, got %q %v", token, err)
	}
	if _, err := facade.Authenticate(context.Background(), "clerk", "secret"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id, err := facade.ParseToken("anything"); err != nil || id != 1 {
		t.Fatalf("expected parsed id 1, got %d %v", id, err)
	}
}

func TestRetailFacadeCatalogAndCustomerPassthrough(t *testing.T) {
	facade, deps := newTestFacade(t)

	product, err := facade.AddProduct(context.Background(), "widget", "SKU-1", 9.99, 5, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := facade.Product(context.Background(), product.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := facade.Products(context.Background(), 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	customer, err := facade.AddCustomer(context.Background(), "Alice", "alice@example.com", "555", "Pune")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := facade.Customers(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := facade.DeleteCustomer(context.Background(), customer.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(deps.customers.Deleted) != 1 {
		t.Fatalf("expected delete call, got %v", deps.customers.Deleted)
	}
}
