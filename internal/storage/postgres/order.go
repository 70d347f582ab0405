package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/akarpov/retailhub/internal/domain/errors"
	"github.com/akarpov/retailhub/internal/domain/model"
)

func (r *orderRepository) Create(ctx context.Context, customerID int64, items []model.OrderItem) (*model.Order, error) {
	var order *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		var customerExists int64
		if err := tx.QueryRow(ctx, `SELECT id FROM customers WHERE id=$1`, customerID).Scan(&customerExists); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}

		// Product rows are locked so the price snapshot and the stock
		// decrement see the same state.
		var total float64
		lines := make([]model.OrderItem, 0, len(items))
		for _, item := range items {
			var price float64
			var stock int
			err := tx.QueryRow(ctx, `SELECT price, stock FROM products WHERE id=$1 FOR UPDATE`, item.ProductID).Scan(&price, &stock)
			if err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return domainErrors.ErrNotFound
				}
				return err
			}
			if stock < item.Quantity {
				return domainErrors.ErrInsufficientStock
			}
			if _, err := tx.Exec(ctx, `UPDATE products SET stock = stock - $2 WHERE id=$1`, item.ProductID, item.Quantity); err != nil {
				return err
			}
			total += price * float64(item.Quantity)
			lines = append(lines, model.OrderItem{ProductID: item.ProductID, Quantity: item.Quantity, UnitPrice: price})
		}

		o := model.Order{CustomerID: customerID, TotalAmount: total, Status: model.OrderStatusPending}
		const insertOrder = `INSERT INTO orders (customer_id, total_amount, status)
                             VALUES ($1, $2, $3) RETURNING id, created_at, updated_at`
		if err := tx.QueryRow(ctx, insertOrder, customerID, total, model.OrderStatusPending).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return err
		}

		const insertItem = `INSERT INTO order_items (order_id, product_id, quantity, unit_price)
                            VALUES ($1, $2, $3, $4) RETURNING id`
		for i := range lines {
			lines[i].OrderID = o.ID
			if err := tx.QueryRow(ctx, insertItem, o.ID, lines[i].ProductID, lines[i].Quantity, lines[i].UnitPrice).Scan(&lines[i].ID); err != nil {
				return err
			}
		}

		o.Items = lines
		order = &o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	const query = `SELECT id, customer_id, total_amount, status, created_at, updated_at
                   FROM orders WHERE id=$1`
	var o model.Order
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&o.ID, &o.CustomerID, &o.TotalAmount, &o.Status, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}

	items, err := r.storage.loadOrderItems(ctx, r.storage.pool, id)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

func (r *orderRepository) ListByCustomer(ctx context.Context, customerID int64) ([]model.Order, error) {
	const query = `SELECT id, customer_id, total_amount, status, created_at, updated_at
                   FROM orders WHERE customer_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrders(rows)
}

func (r *orderRepository) Cancel(ctx context.Context, id int64) (*model.Order, error) {
	var order *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		o, err := r.storage.lockOrderTx(ctx, tx, id)
		if err != nil {
			return err
		}

		switch o.Status {
		case model.OrderStatusCompleted:
			return domainErrors.ErrOrderCompleted
		case model.OrderStatusCancelled:
			// already terminal, keep the row as-is
		default:
			if err := r.storage.cancelOrderTx(ctx, tx, o); err != nil {
				return err
			}
		}

		items, err := r.storage.loadOrderItems(ctx, tx, id)
		if err != nil {
			return err
		}
		o.Items = items
		order = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepository) SelectStalePending(ctx context.Context, olderThan time.Time, limit int) ([]model.Order, error) {
	const query = `SELECT id, customer_id, total_amount, status, created_at, updated_at
                   FROM orders
                   WHERE status=$1 AND created_at < $2
                   ORDER BY created_at
                   LIMIT $3`
	rows, err := r.storage.pool.Query(ctx, query, model.OrderStatusPending, olderThan, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrders(rows)
}

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func (s *Storage) loadOrderItems(ctx context.Context, q querier, orderID int64) ([]model.OrderItem, error) {
	const query = `SELECT id, order_id, product_id, quantity, unit_price
                   FROM order_items WHERE order_id=$1 ORDER BY id`
	rows, err := q.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.OrderItem
	for rows.Next() {
		var it model.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &it.UnitPrice); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func scanOrders(rows pgx.Rows) ([]model.Order, error) {
	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.CustomerID, &o.TotalAmount, &o.Status, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
