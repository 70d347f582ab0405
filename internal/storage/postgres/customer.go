package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/akarpov/retailhub/internal/domain/errors"
	"github.com/akarpov/retailhub/internal/domain/model"
)

func (r *customerRepository) Create(ctx context.Context, name, email, phone, city string) (*model.Customer, error) {
	const query = `INSERT INTO customers (name, email, phone, city)
                   VALUES ($1, $2, $3, $4) RETURNING id, created_at`
	c := model.Customer{Name: name, Email: email, Phone: phone, City: city}
	err := r.storage.pool.QueryRow(ctx, query, name, email, phone, city).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &c, nil
}

func (r *customerRepository) GetByID(ctx context.Context, id int64) (*model.Customer, error) {
	const query = `SELECT id, name, email, phone, city, created_at FROM customers WHERE id=$1`
	var c model.Customer
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.City, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *customerRepository) List(ctx context.Context) ([]model.Customer, error) {
	const query = `SELECT id, name, email, phone, city, created_at FROM customers ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Customer
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.City, &c.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *customerRepository) Update(ctx context.Context, id int64, phone, city *string) (*model.Customer, error) {
	const query = `UPDATE customers SET phone = COALESCE($2, phone), city = COALESCE($3, city)
                   WHERE id=$1 RETURNING id, name, email, phone, city, created_at`
	var c model.Customer
	err := r.storage.pool.QueryRow(ctx, query, id, phone, city).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.City, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *customerRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM customers WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
