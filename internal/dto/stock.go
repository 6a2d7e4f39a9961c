package dto

// StockLine is a product/quantity pair as supplied by a cart.
type StockLine struct {
	ProductID string `json:"productId"`
	Qty       int    `json:"qty"`
}
