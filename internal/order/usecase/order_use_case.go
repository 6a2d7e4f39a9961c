package usecase

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/go-sql-driver/mysql"
	"go.uber.org/zap"

	"balcao/internal/domain"
	"balcao/internal/dto"
	apperrors "balcao/internal/errors"
)

type TxRunner interface {
	WithinTx(ctx context.Context, fn func(tx *sql.Tx) error) error
}

type StockLedger interface {
	Reserve(ctx context.Context, tx *sql.Tx, lines []dto.StockLine) (map[string]domain.Product, error)
	Release(ctx context.Context, tx *sql.Tx, lines []dto.StockLine) error
}

type OrderRepository interface {
	Insert(ctx context.Context, tx *sql.Tx, order *domain.Order) error
	FindByDisplayIDForUpdate(ctx context.Context, tx *sql.Tx, displayID string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, tx *sql.Tx, id uint, status string) error
	Delete(ctx context.Context, tx *sql.Tx, id uint) error
	Search(ctx context.Context, term string) ([]domain.Order, error)
}

type OrderItemRepository interface {
	InsertBatch(ctx context.Context, tx *sql.Tx, orderID uint, items []domain.OrderItem) error
	FindByOrderID(ctx context.Context, orderID uint) ([]domain.OrderItem, error)
	FindByOrderIDs(ctx context.Context, orderIDs []uint) (map[uint][]domain.OrderItem, error)
}

type ProductRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Product, error)
}

type CustomerRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Customer, error)
}

// OrderUseCase owns the order lifecycle. It is the only place where
// order writes and stock mutations are composed, and every mutation runs
// as one transaction: either the order and the stock both change, or
// neither does.
type OrderUseCase struct {
	txRunner         TxRunner
	orderRepo        OrderRepository
	orderItemRepo    OrderItemRepository
	productRepo      ProductRepository
	customerRepo     CustomerRepository
	ledger           StockLedger
	logger           *zap.Logger
	maxRetryAttempts int
}

func NewOrderUseCase(
	txRunner TxRunner,
	orderRepo OrderRepository,
	orderItemRepo OrderItemRepository,
	productRepo ProductRepository,
	customerRepo CustomerRepository,
	ledger StockLedger,
	logger *zap.Logger,
	maxRetryAttempts int,
) *OrderUseCase {
	return &OrderUseCase{
		txRunner:         txRunner,
		orderRepo:        orderRepo,
		orderItemRepo:    orderItemRepo,
		productRepo:      productRepo,
		customerRepo:     customerRepo,
		ledger:           ledger,
		logger:           logger,
		maxRetryAttempts: maxRetryAttempts,
	}
}

func (uc *OrderUseCase) CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (*domain.Order, error) {
	uc.logger.Info("create order started",
		zap.String("customerId", req.CustomerID), zap.Int("itemCount", len(req.Items)))

	status := req.Status
	if status == "" {
		status = domain.OrderStatusPending
	}
	if !domain.ValidOrderStatus(status) {
		return nil, apperrors.NewValidationError("invalid status",
			apperrors.ValidationDetail{Field: "status", Message: "status must be PENDING, PAID or CANCELED"})
	}

	customer, err := uc.customerRepo.FindByID(ctx, req.CustomerID)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return nil, apperrors.NewValidationError("invalid customer",
				apperrors.ValidationDetail{Field: "customerId", Message: "customer does not exist"})
		}
		return nil, err
	}

	if len(req.Items) == 0 {
		return nil, apperrors.NewValidationError("empty cart",
			apperrors.ValidationDetail{Field: "items", Message: "add at least 1 item"})
	}

	for _, line := range req.Items {
		if line.Qty <= 0 {
			return nil, apperrors.NewValidationError(
				fmt.Sprintf("invalid quantity for product %s", line.ProductID),
				apperrors.ValidationDetail{Field: "qty", Message: "qty must be a positive integer"})
		}
		if _, err := uc.productRepo.FindByID(ctx, line.ProductID); err != nil {
			if _, ok := apperrors.IsNotFoundError(err); ok {
				return nil, apperrors.NewValidationError("invalid product",
					apperrors.ValidationDetail{Field: "productId", Message: fmt.Sprintf("product %s does not exist", line.ProductID)})
			}
			return nil, err
		}
	}

	var order *domain.Order
	err = uc.withRetry(ctx, func() error {
		return uc.txRunner.WithinTx(ctx, func(tx *sql.Tx) error {
			// Locks every product row and decrements stock, or fails
			// with nothing changed. The returned snapshots are the
			// rows the reservation was validated against, so name and
			// price are captured consistently with the decrement.
			locked, err := uc.ledger.Reserve(ctx, tx, req.Items)
			if err != nil {
				return err
			}

			items := make([]domain.OrderItem, len(req.Items))
			total := 0.0
			for i, line := range req.Items {
				p := locked[line.ProductID]
				lineTotal := p.Price * float64(line.Qty)
				items[i] = domain.OrderItem{
					ProductID:   p.ID,
					ProductName: p.Name,
					UnitPrice:   p.Price,
					Qty:         line.Qty,
					LineTotal:   lineTotal,
				}
				total += lineTotal
			}

			order = &domain.Order{
				CustomerID:   customer.ID,
				CustomerName: customer.Name,
				Status:       status,
				Total:        total,
				CreatedAt:    time.Now(),
			}

			if err := uc.orderRepo.Insert(ctx, tx, order); err != nil {
				return err
			}
			if err := uc.orderItemRepo.InsertBatch(ctx, tx, order.ID, items); err != nil {
				return err
			}
			order.Items = items

			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("order created",
		zap.String("orderId", order.DisplayID), zap.Float64("total", order.Total))
	return order, nil
}

// UpdateOrderStatus moves the order to any status. The only transition
// with a side effect is entering CANCELED from a non-CANCELED status,
// which returns the reserved stock. Leaving CANCELED does not reserve
// again; stock stays untouched on that edge.
func (uc *OrderUseCase) UpdateOrderStatus(ctx context.Context, displayID, newStatus string) error {
	if !domain.ValidOrderStatus(newStatus) {
		return apperrors.NewValidationError("invalid status",
			apperrors.ValidationDetail{Field: "status", Message: "status must be PENDING, PAID or CANCELED"})
	}

	return uc.withRetry(ctx, func() error {
		return uc.txRunner.WithinTx(ctx, func(tx *sql.Tx) error {
			order, err := uc.orderRepo.FindByDisplayIDForUpdate(ctx, tx, displayID)
			if err != nil {
				return err
			}

			if newStatus == domain.OrderStatusCanceled && order.Status != domain.OrderStatusCanceled {
				items, err := uc.orderItemRepo.FindByOrderID(ctx, order.ID)
				if err != nil {
					return err
				}
				if err := uc.ledger.Release(ctx, tx, toStockLines(items)); err != nil {
					return err
				}
				uc.logger.Info("order canceled, stock restored", zap.String("orderId", displayID))
			}

			return uc.orderRepo.UpdateStatus(ctx, tx, order.ID, newStatus)
		})
	})
}

// DeleteOrder removes the order. Deleting an uncancelled order counts
// as an implicit cancellation for stock purposes; an already-canceled
// order had its stock restored when it was canceled, so no second
// release happens. An unknown id is a no-op.
func (uc *OrderUseCase) DeleteOrder(ctx context.Context, displayID string) error {
	return uc.withRetry(ctx, func() error {
		return uc.txRunner.WithinTx(ctx, func(tx *sql.Tx) error {
			order, err := uc.orderRepo.FindByDisplayIDForUpdate(ctx, tx, displayID)
			if err != nil {
				if _, ok := apperrors.IsNotFoundError(err); ok {
					return nil
				}
				return err
			}

			if order.Status != domain.OrderStatusCanceled {
				items, err := uc.orderItemRepo.FindByOrderID(ctx, order.ID)
				if err != nil {
					return err
				}
				if err := uc.ledger.Release(ctx, tx, toStockLines(items)); err != nil {
					return err
				}
				uc.logger.Info("order deleted, stock restored", zap.String("orderId", displayID))
			}

			return uc.orderRepo.Delete(ctx, tx, order.ID)
		})
	})
}

func (uc *OrderUseCase) ListOrders(ctx context.Context, search string) ([]domain.Order, error) {
	orders, err := uc.orderRepo.Search(ctx, search)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
	}

	itemsByOrder, err := uc.orderItemRepo.FindByOrderIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Items = itemsByOrder[orders[i].ID]
	}

	return orders, nil
}

func toStockLines(items []domain.OrderItem) []dto.StockLine {
	lines := make([]dto.StockLine, len(items))
	for i, item := range items {
		lines[i] = dto.StockLine{ProductID: item.ProductID, Qty: item.Qty}
	}
	return lines
}

func (uc *OrderUseCase) withRetry(ctx context.Context, fn func() error) error {
	maxAttempts := uc.maxRetryAttempts
	// Backoff intervals: attempt 1 (0ms), attempt 2 (100ms), attempt 3 (200ms).
	backoffs := []time.Duration{0, 100 * time.Millisecond, 200 * time.Millisecond}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}

		if !isDeadlockError(err) {
			return err
		}

		if attempt < maxAttempts {
			backoff := backoffs[(attempt-1)%len(backoffs)]
			// Jitter: ±20% of the backoff base.
			jitter := time.Duration(float64(backoff) * (0.8 + rand.Float64()*0.4))
			time.Sleep(jitter)
			uc.logger.Warn("deadlock detected, retrying",
				zap.Int("attempt", attempt), zap.Int("maxAttempts", maxAttempts))
		}
	}

	return apperrors.NewDeadlockError("max retries exceeded")
}

func isDeadlockError(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1213 || mysqlErr.Number == 1205
	}
	return false
}
