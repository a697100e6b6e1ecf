package handlers

import "github.com/AnkitPandit120/DukaanMate1/internal/models"

type SaleRequest struct {
	ItemName string  `json:"item_name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type SaleResponse struct {
	Id       int     `json:"id"`
	ItemName string  `json:"item_name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Date     string  `json:"date"`
}

type StockItemRequest struct {
	ItemName   string  `json:"item_name"`
	Category   string  `json:"category"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
	ExpiryDate string  `json:"expiry_date,omitempty"`
}

type StockItemResponse struct {
	Id         int     `json:"id"`
	ItemName   string  `json:"item_name"`
	Category   string  `json:"category"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
	ExpiryDate string  `json:"expiry_date,omitempty"`
	LowStock   bool    `json:"low_stock,omitempty"`
}

type QuantityAdjustmentRequest struct {
	Delta int `json:"delta"` // can be positive or negative
}

type ExpenseRequest struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Note     string  `json:"note,omitempty"`
	Date     string  `json:"date"`
}

type PaymentRequest struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Status string  `json:"status"`
	Date   string  `json:"date"`
	Type   string  `json:"type"`
}

type PaymentStatusRequest struct {
	Status string `json:"status"`
}

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}

type RegisterResult struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type ImportStockResult struct {
	ImportedItemsCount int               `json:"imported"`
	Errors             []ValidationError `json:"errors"`
}

func stockItemResponse(item models.StockItem, lowStockThreshold int) StockItemResponse {
	return StockItemResponse{
		Id:         item.ID,
		ItemName:   item.ItemName,
		Category:   item.Category,
		Quantity:   item.Quantity,
		Price:      item.Price,
		ExpiryDate: item.ExpiryDate,
		LowStock:   item.Quantity < lowStockThreshold,
	}
}

func saleResponse(s models.Sale) SaleResponse {
	return SaleResponse{
		Id:       s.ID,
		ItemName: s.ItemName,
		Quantity: s.Quantity,
		Price:    s.Price,
		Date:     s.Date,
	}
}
