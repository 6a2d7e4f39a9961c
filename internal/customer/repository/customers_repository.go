package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"balcao/internal/domain"
	"balcao/internal/errors"
)

type MySQLCustomerRepository struct {
	db *sql.DB
}

func NewMySQLCustomerRepository(db *sql.DB) *MySQLCustomerRepository {
	return &MySQLCustomerRepository{db: db}
}

func (r *MySQLCustomerRepository) FindByID(ctx context.Context, id string) (*domain.Customer, error) {
	query := `
		SELECT id, name, document, email, phone, isActive, createdAt, updatedAt
		FROM Customer
		WHERE id = ?
	`

	var c domain.Customer
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Document, &c.Email, &c.Phone, &c.Active, &c.CreatedAt, &c.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("customer %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying customer by id: %w", err)
	}

	return &c, nil
}

func (r *MySQLCustomerRepository) Search(ctx context.Context, term string) ([]domain.Customer, error) {
	query := `
		SELECT id, name, document, email, phone, isActive, createdAt, updatedAt
		FROM Customer
	`
	args := []interface{}{}
	if term != "" {
		query += ` WHERE LOWER(name) LIKE ? OR LOWER(document) LIKE ? OR LOWER(email) LIKE ?`
		pattern := "%" + strings.ToLower(term) + "%"
		args = append(args, pattern, pattern, pattern)
	}
	query += ` ORDER BY createdAt DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying customers: %w", err)
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		var c domain.Customer
		err := rows.Scan(&c.ID, &c.Name, &c.Document, &c.Email, &c.Phone, &c.Active, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scanning customer row: %w", err)
		}
		customers = append(customers, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating customer rows: %w", err)
	}

	return customers, nil
}

func (r *MySQLCustomerRepository) Insert(ctx context.Context, c domain.Customer) error {
	query := `
		INSERT INTO Customer (id, name, document, email, phone, isActive, createdAt)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query, c.ID, c.Name, c.Document, c.Email, c.Phone, c.Active, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting customer: %w", err)
	}

	return nil
}

func (r *MySQLCustomerRepository) Update(ctx context.Context, c domain.Customer) error {
	query := `UPDATE Customer SET name = ?, document = ?, email = ?, phone = ?, isActive = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, c.Name, c.Document, c.Email, c.Phone, c.Active, c.ID)
	if err != nil {
		return fmt.Errorf("updating customer: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("customer %s not found", c.ID))
	}

	return nil
}

func (r *MySQLCustomerRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM Customer WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("deleting customer: %w", err)
	}

	return nil
}
