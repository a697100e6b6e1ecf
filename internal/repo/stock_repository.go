package repo

import "github.com/AnkitPandit120/DukaanMate1/internal/models"

// StockRepository defines the interface for stock item data operations.
// GetByName matches on the normalized item name so sales entered with
// different casing or padding still hit the right stock row.
type StockRepository interface {
	Create(item models.StockItem) (models.StockItem, error)
	GetAll() ([]models.StockItem, error)
	GetByID(id int) (models.StockItem, error)
	GetByName(name string) (models.StockItem, error)
	Update(item models.StockItem) (models.StockItem, error)
	Delete(id int) error
	AdjustQuantity(id int, delta int) (models.StockItem, error)
}
