package domain

type OrderItem struct {
	ID          uint
	OrderID     uint
	ProductID   string
	ProductName string
	UnitPrice   float64
	Qty         int
	LineTotal   float64
}
