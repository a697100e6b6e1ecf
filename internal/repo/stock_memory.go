package repo

import "github.com/AnkitPandit120/DukaanMate1/internal/models"

// InMemoryStockRepository is an in-memory implementation of StockRepository.
type InMemoryStockRepository struct {
	items  []models.StockItem
	nextID int
}

// NewInMemoryStockRepository creates a new instance of InMemoryStockRepository.
func NewInMemoryStockRepository() *InMemoryStockRepository {
	return &InMemoryStockRepository{
		items:  []models.StockItem{},
		nextID: 1,
	}
}

// Create adds a new stock item to the repository.
func (r *InMemoryStockRepository) Create(item models.StockItem) (models.StockItem, error) {
	item.ID = r.nextID
	r.nextID++
	r.items = append(r.items, item)
	return item, nil
}

// GetAll retrieves all stock items from the repository.
func (r *InMemoryStockRepository) GetAll() ([]models.StockItem, error) {
	return r.items, nil
}

// GetByID retrieves a stock item by its ID.
func (r *InMemoryStockRepository) GetByID(id int) (models.StockItem, error) {
	for _, item := range r.items {
		if item.ID == id {
			return item, nil
		}
	}
	return models.StockItem{}, ErrStockItemNotFound
}

// GetByName retrieves a stock item by normalized item name.
func (r *InMemoryStockRepository) GetByName(name string) (models.StockItem, error) {
	key := models.NormalizeItemName(name)
	for _, item := range r.items {
		if models.NormalizeItemName(item.ItemName) == key {
			return item, nil
		}
	}
	return models.StockItem{}, ErrStockItemNotFound
}

// Update modifies an existing stock item in the repository.
func (r *InMemoryStockRepository) Update(item models.StockItem) (models.StockItem, error) {
	for i, existing := range r.items {
		if existing.ID == item.ID {
			r.items[i] = item
			return item, nil
		}
	}
	return models.StockItem{}, ErrStockItemNotFound
}

// Delete removes a stock item from the repository by its ID.
func (r *InMemoryStockRepository) Delete(id int) error {
	for i, item := range r.items {
		if item.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return ErrStockItemNotFound
}

// AdjustQuantity applies a delta to an item's on-hand quantity, clamping the
// result at zero.
func (r *InMemoryStockRepository) AdjustQuantity(id int, delta int) (models.StockItem, error) {
	for i, item := range r.items {
		if item.ID == id {
			item.Quantity += delta
			if item.Quantity < 0 {
				item.Quantity = 0
			}
			r.items[i] = item
			return item, nil
		}
	}
	return models.StockItem{}, ErrStockItemNotFound
}

func (r *InMemoryStockRepository) Clear() {
	r.items = []models.StockItem{}
	r.nextID = 1
}
