package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/AnkitPandit120/DukaanMate1/internal/models"
)

type PostgresSaleRepository struct {
	db *sql.DB
}

func NewPostgresSaleRepository(db *sql.DB) *PostgresSaleRepository {
	return &PostgresSaleRepository{db: db}
}

func (r *PostgresSaleRepository) Create(s models.Sale) (models.Sale, error) {
	query := `INSERT INTO sales (item_name, quantity, price, date) VALUES ($1, $2, $3, $4) RETURNING id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query, s.ItemName, s.Quantity, s.Price, s.Date).Scan(&s.ID)
	return s, err
}

func (r *PostgresSaleRepository) GetAll() ([]models.Sale, error) {
	query := `SELECT id, item_name, quantity, price, date FROM sales ORDER BY id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sales []models.Sale
	for rows.Next() {
		var s models.Sale
		if err := rows.Scan(&s.ID, &s.ItemName, &s.Quantity, &s.Price, &s.Date); err != nil {
			return nil, err
		}
		sales = append(sales, s)
	}
	return sales, nil
}

func (r *PostgresSaleRepository) GetByID(id int) (models.Sale, error) {
	query := `SELECT id, item_name, quantity, price, date FROM sales WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var s models.Sale
	err := r.db.QueryRowContext(ctx, query, id).Scan(&s.ID, &s.ItemName, &s.Quantity, &s.Price, &s.Date)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Sale{}, ErrSaleNotFound
	}
	return s, err
}

func (r *PostgresSaleRepository) Delete(id int) error {
	query := `DELETE FROM sales WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrSaleNotFound
	}
	return nil
}
