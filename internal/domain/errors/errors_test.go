package errors

import (
	stdErrors "errors"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"not found", ErrNotFound},
		{"already exists", ErrAlreadyExists},
		{"invalid credentials", ErrInvalidCredentials},
		{"empty order", ErrEmptyOrder},
		{"invalid quantity", ErrInvalidQuantity},
		{"invalid product", ErrInvalidProduct},
		{"invalid customer", ErrInvalidCustomer},
		{"invalid method", ErrInvalidMethod},
		{"insufficient stock", ErrInsufficientStock},
		{"payment exists", ErrPaymentExists},
		{"payment processed", ErrPaymentProcessed},
		{"payment refunded", ErrPaymentRefunded},
		{"order completed", ErrOrderCompleted},
		{"order cancelled", ErrOrderCancelled},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !stdErrors.Is(tc.err, tc.err) {
				t.Fatalf("expected error to match itself: %v", tc.err)
			}
		})
	}
}

func TestIsValidation(t *testing.T) {
	for _, err := range []error{ErrEmptyOrder, ErrInvalidQuantity, ErrInvalidProduct, ErrInvalidCustomer, ErrInvalidMethod} {
		if !IsValidation(err) {
			t.Errorf("expected %v to be a validation error", err)
		}
	}
	for _, err := range []error{ErrNotFound, ErrInsufficientStock, ErrPaymentExists, stdErrors.New("boom")} {
		if IsValidation(err) {
			t.Errorf("expected %v not to be a validation error", err)
		}
	}
}

func TestIsConflict(t *testing.T) {
	for _, err := range []error{ErrAlreadyExists, ErrInsufficientStock, ErrPaymentExists, ErrPaymentProcessed, ErrPaymentRefunded, ErrOrderCompleted, ErrOrderCancelled} {
		if !IsConflict(err) {
			t.Errorf("expected %v to be a conflict error", err)
		}
	}
	for _, err := range []error{ErrNotFound, ErrEmptyOrder, ErrInvalidMethod, stdErrors.New("boom")} {
		if IsConflict(err) {
			t.Errorf("expected %v not to be a conflict error", err)
		}
	}
}

func TestWrappedErrorsKeepClassification(t *testing.T) {
	wrapped := stdErrors.Join(stdErrors.New("context"), ErrInsufficientStock)
	if !IsConflict(wrapped) {
		t.Fatalf("expected wrapped insufficient stock to remain a conflict")
	}
}
