package models

// Sale represents a single sale transaction recorded by the shop.
// Date is an RFC3339 timestamp with full time precision.
type Sale struct {
	ID       int     `json:"id"`
	ItemName string  `json:"item_name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Date     string  `json:"date"`
}
