package domain

import "time"

type Order struct {
	ID           uint
	DisplayID    string
	CustomerID   string
	CustomerName string
	Status       string
	Items        []OrderItem
	Total        float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

const (
	OrderStatusPending  = "PENDING"
	OrderStatusPaid     = "PAID"
	OrderStatusCanceled = "CANCELED"
)

// ValidOrderStatus reports whether s is one of the three order statuses.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusCanceled:
		return true
	}
	return false
}

// ComputeTotal sums the line totals of the order's items.
func (o Order) ComputeTotal() float64 {
	total := 0.0
	for _, it := range o.Items {
		total += it.LineTotal
	}
	return total
}
