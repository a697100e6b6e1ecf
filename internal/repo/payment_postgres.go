package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/AnkitPandit120/DukaanMate1/internal/models"
)

type PostgresPaymentRepository struct {
	db *sql.DB
}

func NewPostgresPaymentRepository(db *sql.DB) *PostgresPaymentRepository {
	return &PostgresPaymentRepository{db: db}
}

func (r *PostgresPaymentRepository) Create(p models.Payment) (models.Payment, error) {
	query := `INSERT INTO payments (name, amount, status, date, party_type) VALUES ($1, $2, $3, $4, $5) RETURNING id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query, p.Name, p.Amount, p.Status, p.Date, p.Type).Scan(&p.ID)
	return p, err
}

func (r *PostgresPaymentRepository) GetAll() ([]models.Payment, error) {
	query := `SELECT id, name, amount, status, date, party_type FROM payments ORDER BY id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []models.Payment
	for rows.Next() {
		var p models.Payment
		if err := rows.Scan(&p.ID, &p.Name, &p.Amount, &p.Status, &p.Date, &p.Type); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, nil
}

func (r *PostgresPaymentRepository) UpdateStatus(id int, status string) (models.Payment, error) {
	query := `UPDATE payments SET status = $1 WHERE id = $2 RETURNING id, name, amount, status, date, party_type`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var p models.Payment
	err := r.db.QueryRowContext(ctx, query, status, id).
		Scan(&p.ID, &p.Name, &p.Amount, &p.Status, &p.Date, &p.Type)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Payment{}, ErrPaymentNotFound
	}
	return p, err
}
