package repo

import "github.com/AnkitPandit120/DukaanMate1/internal/models"

// InMemoryExpenseRepository is an in-memory implementation of ExpenseRepository.
type InMemoryExpenseRepository struct {
	expenses []models.Expense
	nextID   int
}

// NewInMemoryExpenseRepository creates a new instance of InMemoryExpenseRepository.
func NewInMemoryExpenseRepository() *InMemoryExpenseRepository {
	return &InMemoryExpenseRepository{
		expenses: []models.Expense{},
		nextID:   1,
	}
}

// Create adds a new expense to the repository.
func (r *InMemoryExpenseRepository) Create(expense models.Expense) (models.Expense, error) {
	expense.ID = r.nextID
	r.nextID++
	r.expenses = append(r.expenses, expense)
	return expense, nil
}

// GetAll retrieves all expenses from the repository.
func (r *InMemoryExpenseRepository) GetAll() ([]models.Expense, error) {
	return r.expenses, nil
}

func (r *InMemoryExpenseRepository) Clear() {
	r.expenses = []models.Expense{}
	r.nextID = 1
}
