package models

// Payment statuses.
const (
	PaymentPending  = "Pending"
	PaymentReceived = "Received"
	PaymentPaid     = "Paid"
)

// Payment party types.
const (
	PartyCustomer = "customer"
	PartySupplier = "supplier"
)

// Payment represents money owed to or by the shop. Name is the customer or
// supplier the payment belongs to. Date uses YYYY-MM-DD format.
type Payment struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Status string  `json:"status"`
	Date   string  `json:"date"`
	Type   string  `json:"type"`
}
