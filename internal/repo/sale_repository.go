package repo

import "github.com/AnkitPandit120/DukaanMate1/internal/models"

// SaleRepository defines the interface for sale data operations.
type SaleRepository interface {
	Create(sale models.Sale) (models.Sale, error)
	GetAll() ([]models.Sale, error)
	GetByID(id int) (models.Sale, error)
	Delete(id int) error
}
