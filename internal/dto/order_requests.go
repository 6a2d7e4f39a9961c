package dto

type CreateOrderRequest struct {
	CustomerID string      `json:"customerId"`
	Status     string      `json:"status"`
	Items      []StockLine `json:"items"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}
