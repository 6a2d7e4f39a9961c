package dto

import "time"

type OrderResponse struct {
	ID           string         `json:"id"`
	CustomerID   string         `json:"customerId"`
	CustomerName string         `json:"customerName"`
	Status       string         `json:"status"`
	Items        []OrderItemDTO `json:"items"`
	Total        float64        `json:"total"`
	CreatedAt    time.Time      `json:"createdAt"`
}

type OrderItemDTO struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Price       float64 `json:"price"`
	Qty         int     `json:"qty"`
	Total       float64 `json:"total"`
}

type ErrorResponse struct {
	TraceID   string      `json:"traceId"`
	Code      string      `json:"error"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}
