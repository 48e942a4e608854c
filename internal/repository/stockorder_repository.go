package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/racional/racional-backend/internal/model"
)

// StockOrderRepository provides data access methods for the stock_order table.
type StockOrderRepository struct {
	db *sql.DB
}

// NewStockOrderRepository creates a new StockOrderRepository with the provided database connection.
func NewStockOrderRepository(db *sql.DB) *StockOrderRepository {
	return &StockOrderRepository{db: db}
}

// InsertStockOrder writes a new stock order row.
func (s *StockOrderRepository) InsertStockOrder(ctx context.Context, order *model.StockOrder) error {
	query := `
		INSERT INTO stock_order (id, user_id, stock, type, quantity, price, status, description, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		order.ID, order.UserID, order.Stock, order.Type, order.Quantity,
		order.Price.String(), order.Status, order.Description,
		FormatTime(order.CreatedAt))
	if err != nil {
		return fmt.Errorf("failed to insert stock order: %w", err)
	}

	return nil
}

// GetStockOrdersOnUserID retrieves all stock orders for a user, newest first.
// Returns an empty slice when the user has no orders.
func (s *StockOrderRepository) GetStockOrdersOnUserID(ctx context.Context, userID string) ([]model.StockOrder, error) {
	query := `
		SELECT id, user_id, stock, type, quantity, price, status, description, created_at
		FROM stock_order
		WHERE user_id = ?
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query stock_order table: %w", err)
	}
	defer rows.Close()

	orders := []model.StockOrder{}

	for rows.Next() {
		var o model.StockOrder
		var priceStr, createdAtStr string

		err := rows.Scan(
			&o.ID,
			&o.UserID,
			&o.Stock,
			&o.Type,
			&o.Quantity,
			&priceStr,
			&o.Status,
			&o.Description,
			&createdAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan stock_order table results: %w", err)
		}

		o.Price, err = ParseDecimal(priceStr)
		if err != nil {
			return nil, err
		}

		o.CreatedAt, err = ParseTime(createdAtStr)
		if err != nil {
			return nil, err
		}

		orders = append(orders, o)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stock_order table: %w", err)
	}

	return orders, nil
}
