package repo

import "github.com/AnkitPandit120/DukaanMate1/internal/models"

// InMemoryPaymentRepository is an in-memory implementation of PaymentRepository.
type InMemoryPaymentRepository struct {
	payments []models.Payment
	nextID   int
}

// NewInMemoryPaymentRepository creates a new instance of InMemoryPaymentRepository.
func NewInMemoryPaymentRepository() *InMemoryPaymentRepository {
	return &InMemoryPaymentRepository{
		payments: []models.Payment{},
		nextID:   1,
	}
}

// Create adds a new payment to the repository.
func (r *InMemoryPaymentRepository) Create(payment models.Payment) (models.Payment, error) {
	payment.ID = r.nextID
	r.nextID++
	r.payments = append(r.payments, payment)
	return payment, nil
}

// GetAll retrieves all payments from the repository.
func (r *InMemoryPaymentRepository) GetAll() ([]models.Payment, error) {
	return r.payments, nil
}

// UpdateStatus changes the status of an existing payment.
func (r *InMemoryPaymentRepository) UpdateStatus(id int, status string) (models.Payment, error) {
	for i, p := range r.payments {
		if p.ID == id {
			r.payments[i].Status = status
			return r.payments[i], nil
		}
	}
	return models.Payment{}, ErrPaymentNotFound
}

func (r *InMemoryPaymentRepository) Clear() {
	r.payments = []models.Payment{}
	r.nextID = 1
}
