package stock

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"balcao/internal/domain"
	"balcao/internal/dto"
	apperrors "balcao/internal/errors"

	"go.uber.org/zap"
)

type ProductRepository interface {
	FindByIDForUpdate(ctx context.Context, tx *sql.Tx, productID string) (*domain.Product, error)
	AdjustStock(ctx context.Context, tx *sql.Tx, productID string, delta int) error
}

// Ledger is the sole authority over product stock. Every mutation runs
// under the caller's transaction so that a failed order never leaves a
// partial decrement behind.
type Ledger struct {
	productRepo ProductRepository
	logger      *zap.Logger
}

func NewLedger(productRepo ProductRepository, logger *zap.Logger) *Ledger {
	return &Ledger{
		productRepo: productRepo,
		logger:      logger,
	}
}

// Reserve decrements stock for every line, all-or-nothing. Duplicate
// product lines are aggregated before validation, so a cart holding the
// same product twice is checked as one combined demand. Every line is
// validated against FOR UPDATE row locks before any stock changes.
// On success the locked product snapshots are returned keyed by id.
func (l *Ledger) Reserve(ctx context.Context, tx *sql.Tx, lines []dto.StockLine) (map[string]domain.Product, error) {
	demand, ids, err := aggregate(lines)
	if err != nil {
		return nil, err
	}

	// Lock rows in ascending id order so concurrent reservations
	// cannot deadlock each other.
	locked := make(map[string]domain.Product, len(ids))
	for _, id := range ids {
		product, err := l.productRepo.FindByIDForUpdate(ctx, tx, id)
		if err != nil {
			return nil, err
		}

		qty := demand[id]
		if !product.Active {
			l.logger.Warn("reservation rejected, product inactive", zap.String("productId", id))
			return nil, apperrors.NewConflictError(fmt.Sprintf("product inactive: %s", product.Name))
		}
		if product.Stock < qty {
			l.logger.Warn("reservation rejected, insufficient stock",
				zap.String("productId", id), zap.Int("requested", qty), zap.Int("available", product.Stock))
			return nil, apperrors.NewConflictError(
				fmt.Sprintf("insufficient stock: %s (available %d)", product.Name, product.Stock))
		}

		locked[id] = *product
	}

	for _, id := range ids {
		if err := l.productRepo.AdjustStock(ctx, tx, id, -demand[id]); err != nil {
			return nil, err
		}
		l.logger.Info("stock reserved", zap.String("productId", id), zap.Int("qty", demand[id]))
	}

	return locked, nil
}

// Release returns previously reserved stock. Unknown products are
// skipped: the product may have been deleted after the order referencing
// it was created. There is no upper bound on restored stock.
func (l *Ledger) Release(ctx context.Context, tx *sql.Tx, lines []dto.StockLine) error {
	demand := make(map[string]int, len(lines))
	ids := make([]string, 0, len(lines))
	for _, line := range lines {
		if line.Qty <= 0 {
			continue
		}
		if _, seen := demand[line.ProductID]; !seen {
			ids = append(ids, line.ProductID)
		}
		demand[line.ProductID] += line.Qty
	}
	sort.Strings(ids)

	for _, id := range ids {
		if err := l.productRepo.AdjustStock(ctx, tx, id, demand[id]); err != nil {
			return err
		}
		l.logger.Info("stock released", zap.String("productId", id), zap.Int("qty", demand[id]))
	}

	return nil
}

func aggregate(lines []dto.StockLine) (map[string]int, []string, error) {
	if len(lines) == 0 {
		return nil, nil, apperrors.NewValidationError("no items to reserve")
	}

	demand := make(map[string]int, len(lines))
	ids := make([]string, 0, len(lines))
	for _, line := range lines {
		if line.Qty <= 0 {
			return nil, nil, apperrors.NewValidationError(
				fmt.Sprintf("invalid quantity for product %s", line.ProductID),
				apperrors.ValidationDetail{Field: "qty", Message: "qty must be a positive integer"},
			)
		}
		if _, seen := demand[line.ProductID]; !seen {
			ids = append(ids, line.ProductID)
		}
		demand[line.ProductID] += line.Qty
	}
	sort.Strings(ids)

	return demand, ids, nil
}
