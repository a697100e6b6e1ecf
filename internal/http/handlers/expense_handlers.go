package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/AnkitPandit120/DukaanMate1/internal/models"
)

// GetExpensesHandler godoc
// @Summary List all expenses
// @Tags expenses
// @Produce json
// @Success 200 {array} models.Expense
// @Failure 500 {string} string "Internal error"
// @Router /expenses [get]
func GetExpensesHandler(w http.ResponseWriter, r *http.Request) {
	expenses, err := expenseRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch expenses", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(expenses)
}

// CreateExpenseHandler godoc
// @Summary Record an expense
// @Tags expenses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param expense body ExpenseRequest true "Expense to record"
// @Success 201 {object} models.Expense
// @Failure 400 {object} []ValidationError
// @Router /expenses [post]
func CreateExpenseHandler(w http.ResponseWriter, r *http.Request) {
	var req ExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateExpense(req)
	if len(validationErrors) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	expense, err := expenseRepo.Create(models.Expense{
		Category: req.Category,
		Amount:   req.Amount,
		Note:     req.Note,
		Date:     req.Date,
	})
	if err != nil {
		http.Error(w, "could not record expense", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(expense)
}
