package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"balcao/internal/domain"
	"balcao/internal/errors"
)

type MySQLOrderRepository struct {
	db *sql.DB
}

func NewMySQLOrderRepository(db *sql.DB) *MySQLOrderRepository {
	return &MySQLOrderRepository{db: db}
}

// Insert persists the order and assigns its display id from the
// auto-increment key, all inside the caller's transaction. The display
// id stays monotone and unique even after deletions.
func (r *MySQLOrderRepository) Insert(ctx context.Context, tx *sql.Tx, order *domain.Order) error {
	query := `
		INSERT INTO Orders (displayId, customerId, customerName, status, totalPrice, createdAt)
		VALUES ('', ?, ?, ?, ?, ?)
	`

	result, err := tx.ExecContext(ctx, query,
		order.CustomerID, order.CustomerName, order.Status, order.Total, order.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting order: %w", err)
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting last insert id: %w", err)
	}

	order.ID = uint(lastInsertID)
	order.DisplayID = fmt.Sprintf("VND-%03d", order.ID)

	if _, err := tx.ExecContext(ctx, `UPDATE Orders SET displayId = ? WHERE id = ?`, order.DisplayID, order.ID); err != nil {
		return fmt.Errorf("assigning order display id: %w", err)
	}

	return nil
}

// FindByDisplayIDForUpdate locks the order row for the duration of tx.
// Lifecycle mutations go through this so that a concurrent cancel and
// delete cannot both release the same stock.
func (r *MySQLOrderRepository) FindByDisplayIDForUpdate(ctx context.Context, tx *sql.Tx, displayID string) (*domain.Order, error) {
	query := `
		SELECT id, displayId, customerId, customerName, status, totalPrice, createdAt, updatedAt
		FROM Orders
		WHERE displayId = ?
		FOR UPDATE
	`

	var order domain.Order
	err := tx.QueryRowContext(ctx, query, displayID).Scan(
		&order.ID, &order.DisplayID, &order.CustomerID, &order.CustomerName,
		&order.Status, &order.Total, &order.CreatedAt, &order.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order %s not found", displayID))
	}
	if err != nil {
		return nil, fmt.Errorf("querying order for update: %w", err)
	}

	return &order, nil
}

func (r *MySQLOrderRepository) UpdateStatus(ctx context.Context, tx *sql.Tx, id uint, status string) error {
	query := `UPDATE Orders SET status = ? WHERE id = ?`

	result, err := tx.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("updating order status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("order with id %d not found", id))
	}

	return nil
}

// Delete removes the order row; items go with it via cascade. A missing
// row is not an error, delete is repeatable.
func (r *MySQLOrderRepository) Delete(ctx context.Context, tx *sql.Tx, id uint) error {
	query := `DELETE FROM Orders WHERE id = ?`

	if _, err := tx.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("deleting order: %w", err)
	}

	return nil
}

// Search returns orders whose display id, customer name or status
// contains term, case-insensitive, most recent first. An empty term
// returns everything.
func (r *MySQLOrderRepository) Search(ctx context.Context, term string) ([]domain.Order, error) {
	query := `
		SELECT id, displayId, customerId, customerName, status, totalPrice, createdAt, updatedAt
		FROM Orders
	`
	args := []interface{}{}
	if term != "" {
		query += ` WHERE LOWER(displayId) LIKE ? OR LOWER(customerName) LIKE ? OR LOWER(status) LIKE ?`
		pattern := "%" + strings.ToLower(term) + "%"
		args = append(args, pattern, pattern, pattern)
	}
	query += ` ORDER BY createdAt DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		err := rows.Scan(
			&order.ID, &order.DisplayID, &order.CustomerID, &order.CustomerName,
			&order.Status, &order.Total, &order.CreatedAt, &order.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning order row: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order rows: %w", err)
	}

	return orders, nil
}
