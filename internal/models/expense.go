package models

// Expense represents a shop expense. Date uses YYYY-MM-DD format.
type Expense struct {
	ID       int     `json:"id"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Note     string  `json:"note,omitempty"`
	Date     string  `json:"date"`
}
