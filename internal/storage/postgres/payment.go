package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/akarpov/retailhub/internal/domain/errors"
	"github.com/akarpov/retailhub/internal/domain/model"
)

func (r *paymentRepository) CreateForOrder(ctx context.Context, orderID int64) (*model.Payment, error) {
	var payment *model.Payment
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		o, err := r.storage.lockOrderTx(ctx, tx, orderID)
		if err != nil {
			return err
		}
		if o.Status == model.OrderStatusCancelled {
			return domainErrors.ErrOrderCancelled
		}

		existing, err := latestPayment(ctx, tx, orderID)
		if err != nil && !errors.Is(err, domainErrors.ErrNotFound) {
			return err
		}
		if existing != nil && existing.Live() {
			return domainErrors.ErrPaymentExists
		}

		p := model.Payment{OrderID: orderID, Amount: o.TotalAmount, Status: model.PaymentStatusPending}
		const insert = `INSERT INTO payments (order_id, amount, status)
                        VALUES ($1, $2, $3) RETURNING id, created_at, updated_at`
		if err := tx.QueryRow(ctx, insert, orderID, o.TotalAmount, model.PaymentStatusPending).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return err
		}

		payment = &p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return payment, nil
}

func (r *paymentRepository) GetByOrder(ctx context.Context, orderID int64) (*model.Payment, error) {
	return latestPayment(ctx, r.storage.pool, orderID)
}

func (r *paymentRepository) Process(ctx context.Context, orderID int64, method model.PaymentMethod) (*model.Payment, error) {
	var payment *model.Payment
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		o, err := r.storage.lockOrderTx(ctx, tx, orderID)
		if err != nil {
			return err
		}
		if o.Status == model.OrderStatusCancelled {
			return domainErrors.ErrOrderCancelled
		}

		p, err := latestPayment(ctx, tx, orderID)
		if err != nil {
			return err
		}
		switch p.Status {
		case model.PaymentStatusPaid:
			return domainErrors.ErrPaymentProcessed
		case model.PaymentStatusRefunded:
			return domainErrors.ErrPaymentRefunded
		}

		const update = `UPDATE payments SET status=$2, method=$3, updated_at=NOW()
                        WHERE id=$1
                        RETURNING id, order_id, amount, status, method, created_at, updated_at`
		if err := scanPayment(tx.QueryRow(ctx, update, p.ID, model.PaymentStatusPaid, method), p); err != nil {
			return err
		}

		if err := r.storage.updateOrderStatusTx(ctx, tx, orderID, model.OrderStatusCompleted); err != nil {
			return err
		}

		payment = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return payment, nil
}

func (r *paymentRepository) Refund(ctx context.Context, orderID int64) (*model.Payment, error) {
	var payment *model.Payment
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		o, err := r.storage.lockOrderTx(ctx, tx, orderID)
		if err != nil {
			return err
		}

		p, err := latestPayment(ctx, tx, orderID)
		if err != nil {
			return err
		}
		if p.Status == model.PaymentStatusRefunded {
			return domainErrors.ErrPaymentRefunded
		}

		const update = `UPDATE payments SET status=$2, updated_at=NOW()
                        WHERE id=$1
                        RETURNING id, order_id, amount, status, method, created_at, updated_at`
		if err := scanPayment(tx.QueryRow(ctx, update, p.ID, model.PaymentStatusRefunded), p); err != nil {
			return err
		}

		if o.Status != model.OrderStatusCancelled {
			if err := r.storage.cancelOrderTx(ctx, tx, o); err != nil {
				return err
			}
		}

		payment = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return payment, nil
}

type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// latestPayment returns the most recent payment for the order. Earlier
// refunded payments stay in the table, only the newest row drives the state
// machine.
func latestPayment(ctx context.Context, q rowQuerier, orderID int64) (*model.Payment, error) {
	const query = `SELECT id, order_id, amount, status, method, created_at, updated_at
                   FROM payments WHERE order_id=$1 ORDER BY id DESC LIMIT 1`
	var p model.Payment
	if err := scanPayment(q.QueryRow(ctx, query, orderID), &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func scanPayment(row pgx.Row, p *model.Payment) error {
	return row.Scan(&p.ID, &p.OrderID, &p.Amount, &p.Status, &p.Method, &p.CreatedAt, &p.UpdatedAt)
}
