package models

// StockItem represents an item held in the shop's inventory.
// ExpiryDate is optional and uses YYYY-MM-DD format; empty means the item
// does not expire.
type StockItem struct {
	ID         int     `json:"id"`
	ItemName   string  `json:"item_name"`
	Category   string  `json:"category"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
	ExpiryDate string  `json:"expiry_date,omitempty"`
	CreatedAt  string  `json:"created_at,omitempty"`
	UpdatedAt  string  `json:"updated_at,omitempty"`
}
