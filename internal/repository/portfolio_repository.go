package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/racional/racional-backend/internal/apperrors"
	"github.com/racional/racional-backend/internal/model"
)

// PortfolioRepository provides data access methods for the portfolio table.
// Holding rows are owned by HoldingRepository; portfolio creation inserts both
// inside one transaction driven by the service layer.
type PortfolioRepository struct {
	db *sql.DB
}

// NewPortfolioRepository creates a new PortfolioRepository with the provided database connection.
func NewPortfolioRepository(db *sql.DB) *PortfolioRepository {
	return &PortfolioRepository{db: db}
}

// InsertPortfolioTx writes a new portfolio row inside an existing transaction.
func (s *PortfolioRepository) InsertPortfolioTx(ctx context.Context, tx *sql.Tx, portfolio *model.Portfolio) error {
	query := `
		INSERT INTO portfolio (id, user_id, name, description, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := tx.ExecContext(ctx, query,
		portfolio.ID, portfolio.UserID, portfolio.Name, portfolio.Description,
		FormatTime(portfolio.CreatedAt))
	if err != nil {
		return fmt.Errorf("failed to insert portfolio: %w", err)
	}

	return nil
}

// UpdatePortfolio updates the provided fields of a portfolio and returns the
// updated row. Returns apperrors.ErrRecordNotFound if the portfolio does not exist.
func (s *PortfolioRepository) UpdatePortfolio(ctx context.Context, portfolioID string, name, description *string) (model.Portfolio, error) {
	var sets []string
	var args []any

	if name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *name)
	}
	if description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *description)
	}

	if len(sets) == 0 {
		return s.GetPortfolioOnID(ctx, portfolioID)
	}

	//#nosec G202 -- Safe: placeholders are generated programmatically, not from user input
	query := "UPDATE portfolio SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	args = append(args, portfolioID)

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return model.Portfolio{}, fmt.Errorf("failed to update portfolio: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return model.Portfolio{}, fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return model.Portfolio{}, apperrors.ErrRecordNotFound
	}

	return s.GetPortfolioOnID(ctx, portfolioID)
}

// GetPortfolioOnID retrieves a single portfolio by ID, scalar fields only.
// Returns apperrors.ErrRecordNotFound if the portfolio does not exist.
func (s *PortfolioRepository) GetPortfolioOnID(ctx context.Context, portfolioID string) (model.Portfolio, error) {
	query := `
		SELECT id, user_id, name, description, created_at
		FROM portfolio
		WHERE id = ?
	`

	var p model.Portfolio
	var createdAtStr string

	err := s.db.QueryRowContext(ctx, query, portfolioID).Scan(
		&p.ID,
		&p.UserID,
		&p.Name,
		&p.Description,
		&createdAtStr,
	)
	if err == sql.ErrNoRows {
		return model.Portfolio{}, apperrors.ErrRecordNotFound
	}
	if err != nil {
		return model.Portfolio{}, fmt.Errorf("failed to query portfolio: %w", err)
	}

	p.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil {
		return model.Portfolio{}, err
	}

	return p, nil
}
