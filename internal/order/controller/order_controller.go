package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"balcao/internal/domain"
	"balcao/internal/dto"
	apperrors "balcao/internal/errors"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderUseCase interface {
	CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, displayID, newStatus string) error
	DeleteOrder(ctx context.Context, displayID string) error
	ListOrders(ctx context.Context, search string) ([]domain.Order, error)
}

type OrderController struct {
	useCase OrderUseCase
	logger  *zap.Logger
}

func NewOrderController(useCase OrderUseCase, logger *zap.Logger) *OrderController {
	return &OrderController{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *OrderController) Create(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeError(w, traceID, apperrors.NewValidationError("invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		}), logger)
		return
	}

	order, err := c.useCase.CreateOrder(r.Context(), req)
	if err != nil {
		c.writeError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusCreated, toOrderResponse(*order))
}

func (c *OrderController) List(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	orders, err := c.useCase.ListOrders(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		c.writeError(w, traceID, err, logger)
		return
	}

	resp := make([]dto.OrderResponse, len(orders))
	for i, order := range orders {
		resp[i] = toOrderResponse(order)
	}

	c.writeJSON(w, http.StatusOK, resp)
}

func (c *OrderController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))
	orderID := chi.URLParam(r, "orderId")

	var req dto.UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeError(w, traceID, apperrors.NewValidationError("invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		}), logger)
		return
	}

	if err := c.useCase.UpdateOrderStatus(r.Context(), orderID, req.Status); err != nil {
		c.writeError(w, traceID, err, logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (c *OrderController) Delete(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	if err := c.useCase.DeleteOrder(r.Context(), chi.URLParam(r, "orderId")); err != nil {
		c.writeError(w, traceID, err, logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toOrderResponse(order domain.Order) dto.OrderResponse {
	items := make([]dto.OrderItemDTO, len(order.Items))
	for i, item := range order.Items {
		items[i] = dto.OrderItemDTO{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Price:       item.UnitPrice,
			Qty:         item.Qty,
			Total:       item.LineTotal,
		}
	}

	return dto.OrderResponse{
		ID:           order.DisplayID,
		CustomerID:   order.CustomerID,
		CustomerName: order.CustomerName,
		Status:       order.Status,
		Items:        items,
		Total:        order.Total,
		CreatedAt:    order.CreatedAt,
	}
}

func (c *OrderController) writeError(w http.ResponseWriter, traceID string, err error, logger *zap.Logger) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{
			TraceID:   traceID,
			Code:      "VALIDATION_ERROR",
			Message:   ve.Message,
			Details:   ve.Details,
			Timestamp: time.Now(),
		})
		return
	}
	if nfe, ok := apperrors.IsNotFoundError(err); ok {
		c.writeJSON(w, http.StatusNotFound, dto.ErrorResponse{
			TraceID:   traceID,
			Code:      "NOT_FOUND",
			Message:   nfe.Message,
			Timestamp: time.Now(),
		})
		return
	}
	if ce, ok := apperrors.IsConflictError(err); ok {
		c.writeJSON(w, http.StatusConflict, dto.ErrorResponse{
			TraceID:   traceID,
			Code:      "CONFLICT",
			Message:   ce.Message,
			Timestamp: time.Now(),
		})
		return
	}
	if de, ok := apperrors.IsDeadlockError(err); ok {
		c.writeJSON(w, http.StatusServiceUnavailable, dto.ErrorResponse{
			TraceID:   traceID,
			Code:      "RETRY_EXHAUSTED",
			Message:   de.Message,
			Timestamp: time.Now(),
		})
		return
	}

	logger.Error("order request failed", zap.Error(err))
	c.writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{
		TraceID:   traceID,
		Code:      "INTERNAL_ERROR",
		Message:   "an unexpected error occurred",
		Timestamp: time.Now(),
	})
}

func (c *OrderController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
