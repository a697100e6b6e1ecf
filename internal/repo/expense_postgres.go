package repo

import (
	"context"
	"database/sql"
	"time"

	"github.com/AnkitPandit120/DukaanMate1/internal/models"
)

type PostgresExpenseRepository struct {
	db *sql.DB
}

func NewPostgresExpenseRepository(db *sql.DB) *PostgresExpenseRepository {
	return &PostgresExpenseRepository{db: db}
}

func (r *PostgresExpenseRepository) Create(e models.Expense) (models.Expense, error) {
	query := `INSERT INTO expenses (category, amount, note, date) VALUES ($1, $2, $3, $4) RETURNING id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query, e.Category, e.Amount, e.Note, e.Date).Scan(&e.ID)
	return e, err
}

func (r *PostgresExpenseRepository) GetAll() ([]models.Expense, error) {
	query := `SELECT id, category, amount, COALESCE(note, ''), date FROM expenses ORDER BY id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		var e models.Expense
		if err := rows.Scan(&e.ID, &e.Category, &e.Amount, &e.Note, &e.Date); err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}
	return expenses, nil
}
