package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsCountTransitions(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewWithRegisterer(registry)

	m.OrderCreated()
	m.OrderCreated()
	m.OrderCancelled()
	m.PaymentCreated()
	m.PaymentProcessed()
	m.PaymentRefunded()

	cases := []struct {
		name    string
		counter prometheus.Counter
		want    float64
	}{
		{"orders created", m.ordersCreated, 2},
		{"orders cancelled", m.ordersCancelled, 1},
		{"payments created", m.paymentsCreated, 1},
		{"payments processed", m.paymentsProcessed, 1},
		{"payments refunded", m.paymentsRefunded, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := testutil.ToFloat64(tc.counter); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestNewWithRegistererReusesExistingCounters(t *testing.T) {
	registry := prometheus.NewRegistry()
	first := NewWithRegisterer(registry)
	second := NewWithRegisterer(registry)

	first.OrderCreated()
	second.OrderCreated()

	if got := testutil.ToFloat64(first.ordersCreated); got != 2 {
		t.Fatalf("expected shared counter value 2, got %v", got)
	}
}

func TestNewWithNilRegistererFallsBackToDefault(t *testing.T) {
	m := NewWithRegisterer(nil)
	if m == nil {
		t.Fatal("expected metrics instance")
	}
}
