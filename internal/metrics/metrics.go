package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts order and payment lifecycle transitions.
type Metrics struct {
	ordersCreated     prometheus.Counter
	ordersCancelled   prometheus.Counter
	paymentsCreated   prometheus.Counter
	paymentsProcessed prometheus.Counter
	paymentsRefunded  prometheus.Counter
}

// New registers lifecycle counters on the default registerer.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer registers lifecycle counters on the given registerer.
func NewWithRegisterer(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	return &Metrics{
		ordersCreated: registerCounter(registerer, prometheus.CounterOpts{
			Name: "retailhub_orders_created_total",
			Help: "Total number of orders created",
		}),
		ordersCancelled: registerCounter(registerer, prometheus.CounterOpts{
			Name: "retailhub_orders_cancelled_total",
			Help: "Total number of orders cancelled",
		}),
		paymentsCreated: registerCounter(registerer, prometheus.CounterOpts{
			Name: "retailhub_payments_created_total",
			Help: "Total number of payment records created",
		}),
		paymentsProcessed: registerCounter(registerer, prometheus.CounterOpts{
			Name: "retailhub_payments_processed_total",
			Help: "Total number of payments captured",
		}),
		paymentsRefunded: registerCounter(registerer, prometheus.CounterOpts{
			Name: "retailhub_payments_refunded_total",
			Help: "Total number of payments refunded",
		}),
	}
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	counter := prometheus.NewCounter(opts)
	if err := registerer.Register(counter); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			return already.ExistingCollector.(prometheus.Counter)
		}
		panic(err)
	}
	return counter
}

func (m *Metrics) OrderCreated()     { m.ordersCreated.Inc() }
func (m *Metrics) OrderCancelled()   { m.ordersCancelled.Inc() }
func (m *Metrics) PaymentCreated()   { m.paymentsCreated.Inc() }
func (m *Metrics) PaymentProcessed() { m.paymentsProcessed.Inc() }
func (m *Metrics) PaymentRefunded()  { m.paymentsRefunded.Inc() }
