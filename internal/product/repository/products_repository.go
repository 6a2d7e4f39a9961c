package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"balcao/internal/domain"
	"balcao/internal/errors"
)

type MySQLProductRepository struct {
	db *sql.DB
}

func NewMySQLProductRepository(db *sql.DB) *MySQLProductRepository {
	return &MySQLProductRepository{db: db}
}

func (r *MySQLProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	query := `
		SELECT id, name, sku, price, stock, isActive, createdAt, updatedAt
		FROM Product
		WHERE id = ?
	`

	var p domain.Product
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.SKU, &p.Price, &p.Stock, &p.Active, &p.CreatedAt, &p.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("product %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying product by id: %w", err)
	}

	return &p, nil
}

// FindByIDForUpdate locks the product row for the duration of tx.
func (r *MySQLProductRepository) FindByIDForUpdate(ctx context.Context, tx *sql.Tx, id string) (*domain.Product, error) {
	query := `
		SELECT id, name, sku, price, stock, isActive, createdAt, updatedAt
		FROM Product
		WHERE id = ?
		FOR UPDATE
	`

	var p domain.Product
	err := tx.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.SKU, &p.Price, &p.Stock, &p.Active, &p.CreatedAt, &p.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("product %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying product for update: %w", err)
	}

	return &p, nil
}

// AdjustStock applies a signed delta to the product's stock. A missing
// row is not an error; release tolerates products deleted after the
// order referencing them was created.
func (r *MySQLProductRepository) AdjustStock(ctx context.Context, tx *sql.Tx, id string, delta int) error {
	query := `UPDATE Product SET stock = stock + ? WHERE id = ?`

	if _, err := tx.ExecContext(ctx, query, delta, id); err != nil {
		return fmt.Errorf("adjusting product stock: %w", err)
	}

	return nil
}

func (r *MySQLProductRepository) Search(ctx context.Context, term string) ([]domain.Product, error) {
	query := `
		SELECT id, name, sku, price, stock, isActive, createdAt, updatedAt
		FROM Product
	`
	args := []interface{}{}
	if term != "" {
		query += ` WHERE LOWER(name) LIKE ? OR LOWER(sku) LIKE ?`
		pattern := "%" + strings.ToLower(term) + "%"
		args = append(args, pattern, pattern)
	}
	query += ` ORDER BY createdAt DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		err := rows.Scan(&p.ID, &p.Name, &p.SKU, &p.Price, &p.Stock, &p.Active, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scanning product row: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating product rows: %w", err)
	}

	return products, nil
}

func (r *MySQLProductRepository) Insert(ctx context.Context, p domain.Product) error {
	query := `
		INSERT INTO Product (id, name, sku, price, stock, isActive, createdAt)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query, p.ID, p.Name, p.SKU, p.Price, p.Stock, p.Active, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting product: %w", err)
	}

	return nil
}

func (r *MySQLProductRepository) Update(ctx context.Context, p domain.Product) error {
	query := `UPDATE Product SET name = ?, sku = ?, price = ?, stock = ?, isActive = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, p.Name, p.SKU, p.Price, p.Stock, p.Active, p.ID)
	if err != nil {
		return fmt.Errorf("updating product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("product %s not found", p.ID))
	}

	return nil
}

func (r *MySQLProductRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM Product WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}

	return nil
}
