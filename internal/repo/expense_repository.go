package repo

import "github.com/AnkitPandit120/DukaanMate1/internal/models"

// ExpenseRepository defines the interface for expense data operations.
type ExpenseRepository interface {
	Create(expense models.Expense) (models.Expense, error)
	GetAll() ([]models.Expense, error)
}
