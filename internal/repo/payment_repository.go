package repo

import "github.com/AnkitPandit120/DukaanMate1/internal/models"

// PaymentRepository defines the interface for payment data operations.
type PaymentRepository interface {
	Create(payment models.Payment) (models.Payment, error)
	GetAll() ([]models.Payment, error)
	UpdateStatus(id int, status string) (models.Payment, error)
}
