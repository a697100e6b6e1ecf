package handlers

import (
	"strings"
	"time"
)

type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateSale(s SaleRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(s.ItemName) == "" {
		errs = append(errs, ValidationError{Field: "ItemName", Description: "Item name is required"})
	}
	if s.Quantity <= 0 {
		errs = append(errs, ValidationError{Field: "Quantity", Description: "Quantity must be greater than zero"})
	}
	if s.Price < 0 {
		errs = append(errs, ValidationError{Field: "Price", Description: "Price cannot be negative"})
	}
	return errs
}

func validateStockItem(item StockItemRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(item.ItemName) == "" {
		errs = append(errs, ValidationError{Field: "ItemName", Description: "Item name is required"})
	}
	if item.Quantity < 0 {
		errs = append(errs, ValidationError{Field: "Quantity", Description: "Quantity cannot be negative"})
	}
	if item.Price < 0 {
		errs = append(errs, ValidationError{Field: "Price", Description: "Price cannot be negative"})
	}
	if item.ExpiryDate != "" {
		if _, err := time.Parse("2006-01-02", item.ExpiryDate); err != nil {
			errs = append(errs, ValidationError{Field: "ExpiryDate", Description: "Expiry date must use YYYY-MM-DD format"})
		}
	}
	return errs
}

func validateExpense(e ExpenseRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(e.Category) == "" {
		errs = append(errs, ValidationError{Field: "Category", Description: "Category is required"})
	}
	if e.Amount <= 0 {
		errs = append(errs, ValidationError{Field: "Amount", Description: "Amount must be greater than zero"})
	}
	if _, err := time.Parse("2006-01-02", e.Date); err != nil {
		errs = append(errs, ValidationError{Field: "Date", Description: "Date must use YYYY-MM-DD format"})
	}
	return errs
}

func validatePayment(p PaymentRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, ValidationError{Field: "Name", Description: "Name is required"})
	}
	if p.Amount <= 0 {
		errs = append(errs, ValidationError{Field: "Amount", Description: "Amount must be greater than zero"})
	}
	if !validPaymentStatus(p.Status) {
		errs = append(errs, ValidationError{Field: "Status", Description: "Status must be Pending, Received or Paid"})
	}
	if p.Type != "customer" && p.Type != "supplier" {
		errs = append(errs, ValidationError{Field: "Type", Description: "Type must be customer or supplier"})
	}
	if _, err := time.Parse("2006-01-02", p.Date); err != nil {
		errs = append(errs, ValidationError{Field: "Date", Description: "Date must use YYYY-MM-DD format"})
	}
	return errs
}

func validPaymentStatus(status string) bool {
	switch status {
	case "Pending", "Received", "Paid":
		return true
	}
	return false
}
