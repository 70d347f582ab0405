package usecase

import (
	"context"

	domainErrors "github.com/akarpov/retailhub/internal/domain/errors"
	"github.com/akarpov/retailhub/internal/domain/model"
	"github.com/akarpov/retailhub/internal/domain/repository"
)

// PaymentUseCase is the sole writer of payment status. Order completion and
// refund-triggered cancellation are side effects of its operations.
type PaymentUseCase struct {
	payments repository.PaymentRepository
}

// NewPaymentUseCase constructs PaymentUseCase.
func NewPaymentUseCase(payments repository.PaymentRepository) *PaymentUseCase {
	return &PaymentUseCase{payments: payments}
}

// CreateForOrder opens a PENDING payment for the order total. Fails while a
// non-refunded payment for the order exists.
func (u *PaymentUseCase) CreateForOrder(ctx context.Context, orderID int64) (*model.Payment, error) {
	return u.payments.CreateForOrder(ctx, orderID)
}

// GetByOrder returns the most recent payment for the order.
func (u *PaymentUseCase) GetByOrder(ctx context.Context, orderID int64) (*model.Payment, error) {
	return u.payments.GetByOrder(ctx, orderID)
}

// Process captures the payment with the given method and completes the order.
func (u *PaymentUseCase) Process(ctx context.Context, orderID int64, method model.PaymentMethod) (*model.Payment, error) {
	if !method.Valid() {
		return nil, domainErrors.ErrInvalidMethod
	}
	return u.payments.Process(ctx, orderID, method)
}

// Refund marks the payment REFUNDED and cancels the order unless it is
// cancelled already.
func (u *PaymentUseCase) Refund(ctx context.Context, orderID int64) (*model.Payment, error) {
	return u.payments.Refund(ctx, orderID)
}
