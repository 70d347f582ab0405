package errors

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrEmptyOrder      = errors.New("order has no items")
	ErrInvalidQuantity = errors.New("item quantity must be positive")
	ErrInvalidProduct  = errors.New("product name and sku are required")
	ErrInvalidCustomer = errors.New("customer name and email are required")
	ErrInvalidMethod   = errors.New("unsupported payment method")

	ErrInsufficientStock = errors.New("insufficient stock")
	ErrPaymentExists     = errors.New("payment already exists for this order")
	ErrPaymentProcessed  = errors.New("payment already processed")
	ErrPaymentRefunded   = errors.New("payment already refunded")
	ErrOrderCompleted    = errors.New("order already completed")
	ErrOrderCancelled    = errors.New("order is cancelled")
)

// IsValidation reports whether the error describes malformed input that the
// caller must correct before retrying.
func IsValidation(err error) bool {
	return errors.Is(err, ErrEmptyOrder) ||
		errors.Is(err, ErrInvalidQuantity) ||
		errors.Is(err, ErrInvalidProduct) ||
		errors.Is(err, ErrInvalidCustomer) ||
		errors.Is(err, ErrInvalidMethod)
}

// IsConflict reports whether the error is a business-rule rejection of a
// state transition rather than a transient fault.
func IsConflict(err error) bool {
	return errors.Is(err, ErrAlreadyExists) ||
		errors.Is(err, ErrInsufficientStock) ||
		errors.Is(err, ErrPaymentExists) ||
		errors.Is(err, ErrPaymentProcessed) ||
		errors.Is(err, ErrPaymentRefunded) ||
		errors.Is(err, ErrOrderCompleted) ||
		errors.Is(err, ErrOrderCancelled)
}
