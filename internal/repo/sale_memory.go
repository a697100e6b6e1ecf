package repo

import "github.com/AnkitPandit120/DukaanMate1/internal/models"

// InMemorySaleRepository is an in-memory implementation of SaleRepository.
type InMemorySaleRepository struct {
	sales  []models.Sale
	nextID int
}

// NewInMemorySaleRepository creates a new instance of InMemorySaleRepository.
func NewInMemorySaleRepository() *InMemorySaleRepository {
	return &InMemorySaleRepository{
		sales:  []models.Sale{},
		nextID: 1,
	}
}

// Create adds a new sale to the repository.
func (r *InMemorySaleRepository) Create(sale models.Sale) (models.Sale, error) {
	sale.ID = r.nextID
	r.nextID++
	r.sales = append(r.sales, sale)
	return sale, nil
}

// GetAll retrieves all sales from the repository.
func (r *InMemorySaleRepository) GetAll() ([]models.Sale, error) {
	return r.sales, nil
}

// GetByID retrieves a sale by its ID.
func (r *InMemorySaleRepository) GetByID(id int) (models.Sale, error) {
	for _, s := range r.sales {
		if s.ID == id {
			return s, nil
		}
	}
	return models.Sale{}, ErrSaleNotFound
}

// Delete removes a sale from the repository by its ID.
func (r *InMemorySaleRepository) Delete(id int) error {
	for i, s := range r.sales {
		if s.ID == id {
			r.sales = append(r.sales[:i], r.sales[i+1:]...)
			return nil
		}
	}
	return ErrSaleNotFound
}

func (r *InMemorySaleRepository) Clear() {
	r.sales = []models.Sale{}
	r.nextID = 1
}
