package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/AnkitPandit120/DukaanMate1/internal/models"
)

type PostgresStockRepository struct {
	db *sql.DB
}

func NewPostgresStockRepository(db *sql.DB) *PostgresStockRepository {
	return &PostgresStockRepository{db: db}
}

func (r *PostgresStockRepository) Create(item models.StockItem) (models.StockItem, error) {
	query := `INSERT INTO stock_items (item_name, category, quantity, price, expiry_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7) RETURNING id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := r.db.QueryRowContext(ctx, query,
		item.ItemName, item.Category, item.Quantity, item.Price, item.ExpiryDate, item.CreatedAt, item.UpdatedAt).
		Scan(&item.ID)
	return item, err
}

func (r *PostgresStockRepository) GetAll() ([]models.StockItem, error) {
	query := `SELECT id, item_name, category, quantity, price, COALESCE(expiry_date, ''), COALESCE(created_at, ''), COALESCE(updated_at, '')
		FROM stock_items ORDER BY id`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.StockItem
	for rows.Next() {
		var item models.StockItem
		if err := rows.Scan(&item.ID, &item.ItemName, &item.Category, &item.Quantity, &item.Price,
			&item.ExpiryDate, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *PostgresStockRepository) GetByID(id int) (models.StockItem, error) {
	query := `SELECT id, item_name, category, quantity, price, COALESCE(expiry_date, ''), COALESCE(created_at, ''), COALESCE(updated_at, '')
		FROM stock_items WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var item models.StockItem
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&item.ID, &item.ItemName, &item.Category, &item.Quantity, &item.Price,
			&item.ExpiryDate, &item.CreatedAt, &item.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.StockItem{}, ErrStockItemNotFound
	}
	return item, err
}

func (r *PostgresStockRepository) GetByName(name string) (models.StockItem, error) {
	query := `SELECT id, item_name, category, quantity, price, COALESCE(expiry_date, ''), COALESCE(created_at, ''), COALESCE(updated_at, '')
		FROM stock_items WHERE LOWER(TRIM(item_name)) = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var item models.StockItem
	err := r.db.QueryRowContext(ctx, query, models.NormalizeItemName(name)).
		Scan(&item.ID, &item.ItemName, &item.Category, &item.Quantity, &item.Price,
			&item.ExpiryDate, &item.CreatedAt, &item.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.StockItem{}, ErrStockItemNotFound
	}
	return item, err
}

func (r *PostgresStockRepository) Update(item models.StockItem) (models.StockItem, error) {
	query := `UPDATE stock_items
		SET item_name = $1, category = $2, quantity = $3, price = $4, expiry_date = NULLIF($5, ''), updated_at = $6
		WHERE id = $7`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query,
		item.ItemName, item.Category, item.Quantity, item.Price, item.ExpiryDate, item.UpdatedAt, item.ID)
	if err != nil {
		return models.StockItem{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.StockItem{}, ErrStockItemNotFound
	}
	return item, nil
}

func (r *PostgresStockRepository) Delete(id int) error {
	query := `DELETE FROM stock_items WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrStockItemNotFound
	}
	return nil
}

func (r *PostgresStockRepository) AdjustQuantity(id int, delta int) (models.StockItem, error) {
	query := `
		UPDATE stock_items
		SET quantity = GREATEST(0, quantity + $1), updated_at = $2
		WHERE id = $3
		RETURNING id, item_name, category, quantity, price, COALESCE(expiry_date, ''), COALESCE(created_at, ''), COALESCE(updated_at, '')
	`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var item models.StockItem
	err := r.db.QueryRowContext(ctx, query, delta, time.Now().UTC().Format(time.RFC3339), id).
		Scan(&item.ID, &item.ItemName, &item.Category, &item.Quantity, &item.Price,
			&item.ExpiryDate, &item.CreatedAt, &item.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.StockItem{}, ErrStockItemNotFound
	}
	return item, err
}
