package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/racional/racional-backend/internal/apperrors"
	"github.com/racional/racional-backend/internal/model"
)

// HoldingRepository provides data access methods for the holding table.
// Update and delete key on the holding ID alone; the portfolio the caller
// names in the URL is not used as a filter.
type HoldingRepository struct {
	db *sql.DB
}

// NewHoldingRepository creates a new HoldingRepository with the provided database connection.
func NewHoldingRepository(db *sql.DB) *HoldingRepository {
	return &HoldingRepository{db: db}
}

// InsertHolding writes a new holding row.
func (s *HoldingRepository) InsertHolding(ctx context.Context, holding *model.Holding) error {
	_, err := s.db.ExecContext(ctx, insertHoldingQuery,
		holding.ID, holding.PortfolioID, holding.Stock, holding.Quantity,
		holding.AveragePrice.String())
	if err != nil {
		return fmt.Errorf("failed to insert holding: %w", err)
	}

	return nil
}

// InsertHoldingTx writes a new holding row inside an existing transaction.
// Used for the nested create during portfolio creation.
func (s *HoldingRepository) InsertHoldingTx(ctx context.Context, tx *sql.Tx, holding *model.Holding) error {
	_, err := tx.ExecContext(ctx, insertHoldingQuery,
		holding.ID, holding.PortfolioID, holding.Stock, holding.Quantity,
		holding.AveragePrice.String())
	if err != nil {
		return fmt.Errorf("failed to insert holding: %w", err)
	}

	return nil
}

const insertHoldingQuery = `
	INSERT INTO holding (id, portfolio_id, stock, quantity, average_price)
	VALUES (?, ?, ?, ?, ?)
`

// UpdateHolding updates the provided fields of a holding and returns the
// updated row. Returns apperrors.ErrRecordNotFound if the holding does not exist.
func (s *HoldingRepository) UpdateHolding(ctx context.Context, holdingID string, stock *string, quantity *int64, averagePrice *decimal.Decimal) (model.Holding, error) {
	var sets []string
	var args []any

	if stock != nil {
		sets = append(sets, "stock = ?")
		args = append(args, *stock)
	}
	if quantity != nil {
		sets = append(sets, "quantity = ?")
		args = append(args, *quantity)
	}
	if averagePrice != nil {
		sets = append(sets, "average_price = ?")
		args = append(args, averagePrice.String())
	}

	if len(sets) == 0 {
		return s.GetHoldingOnID(ctx, holdingID)
	}

	//#nosec G202 -- Safe: placeholders are generated programmatically, not from user input
	query := "UPDATE holding SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	args = append(args, holdingID)

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return model.Holding{}, fmt.Errorf("failed to update holding: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return model.Holding{}, fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return model.Holding{}, apperrors.ErrRecordNotFound
	}

	return s.GetHoldingOnID(ctx, holdingID)
}

// DeleteHolding removes a holding by ID.
// Returns apperrors.ErrRecordNotFound if the holding does not exist.
func (s *HoldingRepository) DeleteHolding(ctx context.Context, holdingID string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM holding WHERE id = ?", holdingID)
	if err != nil {
		return fmt.Errorf("failed to delete holding: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrRecordNotFound
	}

	return nil
}

// GetHoldingOnID retrieves a single holding by ID.
// Returns apperrors.ErrRecordNotFound if the holding does not exist.
func (s *HoldingRepository) GetHoldingOnID(ctx context.Context, holdingID string) (model.Holding, error) {
	query := `
		SELECT id, portfolio_id, stock, quantity, average_price
		FROM holding
		WHERE id = ?
	`

	var h model.Holding
	var priceStr string

	err := s.db.QueryRowContext(ctx, query, holdingID).Scan(
		&h.ID,
		&h.PortfolioID,
		&h.Stock,
		&h.Quantity,
		&priceStr,
	)
	if err == sql.ErrNoRows {
		return model.Holding{}, apperrors.ErrRecordNotFound
	}
	if err != nil {
		return model.Holding{}, fmt.Errorf("failed to query holding: %w", err)
	}

	h.AveragePrice, err = ParseDecimal(priceStr)
	if err != nil {
		return model.Holding{}, err
	}

	return h, nil
}

// GetHoldingsOnPortfolioID retrieves all holdings for a portfolio.
// Returns an empty slice when the portfolio has no holdings.
func (s *HoldingRepository) GetHoldingsOnPortfolioID(ctx context.Context, portfolioID string) ([]model.Holding, error) {
	query := `
		SELECT id, portfolio_id, stock, quantity, average_price
		FROM holding
		WHERE portfolio_id = ?
	`

	rows, err := s.db.QueryContext(ctx, query, portfolioID)
	if err != nil {
		return nil, fmt.Errorf("failed to query holding table: %w", err)
	}
	defer rows.Close()

	holdings := []model.Holding{}

	for rows.Next() {
		var h model.Holding
		var priceStr string

		err := rows.Scan(
			&h.ID,
			&h.PortfolioID,
			&h.Stock,
			&h.Quantity,
			&priceStr,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan holding table results: %w", err)
		}

		h.AveragePrice, err = ParseDecimal(priceStr)
		if err != nil {
			return nil, err
		}

		holdings = append(holdings, h)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating holding table: %w", err)
	}

	return holdings, nil
}
