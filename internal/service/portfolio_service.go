package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/racional/racional-backend/internal/api/request"
	"github.com/racional/racional-backend/internal/apperrors"
	"github.com/racional/racional-backend/internal/model"
	"github.com/racional/racional-backend/internal/repository"
)

// PortfolioService handles portfolio-related business logic operations.
// It holds the database handle in addition to its repositories because
// portfolio creation writes the portfolio and its holdings in one transaction.
type PortfolioService struct {
	db            *sql.DB
	portfolioRepo *repository.PortfolioRepository
	holdingRepo   *repository.HoldingRepository
	userRepo      *repository.UserRepository
}

// NewPortfolioService creates a new PortfolioService with the provided dependencies.
func NewPortfolioService(
	db *sql.DB,
	portfolioRepo *repository.PortfolioRepository,
	holdingRepo *repository.HoldingRepository,
	userRepo *repository.UserRepository,
) *PortfolioService {
	return &PortfolioService{
		db:            db,
		portfolioRepo: portfolioRepo,
		holdingRepo:   holdingRepo,
		userRepo:      userRepo,
	}
}

// PortfolioTotal is the valuation of a portfolio: the sum of
// quantity * averagePrice over its holdings, with the holdings themselves.
type PortfolioTotal struct {
	Total    float64         `json:"total"`
	Holdings []model.Holding `json:"holdings"`
}

// CreatePortfolio creates a portfolio together with its initial holdings.
// The writes share a transaction: if any holding fails, nothing is kept.
// Returns apperrors.ErrUserNotFound when the referenced user does not exist.
func (s *PortfolioService) CreatePortfolio(ctx context.Context, req request.CreatePortfolioRequest) (*model.Portfolio, error) {
	exists, err := s.userRepo.UserExists(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check user: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrUserNotFound
	}

	portfolio := &model.Portfolio{
		ID:          uuid.New().String(),
		UserID:      req.UserID,
		Name:        req.Name,
		Description: req.Description,
		Holdings:    []model.Holding{},
		CreatedAt:   time.Now().UTC(),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if err := s.portfolioRepo.InsertPortfolioTx(ctx, tx, portfolio); err != nil {
		return nil, err
	}

	for _, h := range req.Holdings {
		holding := &model.Holding{
			ID:           uuid.New().String(),
			PortfolioID:  portfolio.ID,
			Stock:        h.Stock,
			Quantity:     h.Quantity,
			AveragePrice: h.AveragePrice,
		}

		if err := s.holdingRepo.InsertHoldingTx(ctx, tx, holding); err != nil {
			return nil, err
		}

		portfolio.Holdings = append(portfolio.Holdings, *holding)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit portfolio creation: %w", err)
	}

	return portfolio, nil
}

// UpdatePortfolio updates the provided fields of a portfolio and returns the
// updated record. Returns apperrors.ErrRecordNotFound if the portfolio does not exist.
func (s *PortfolioService) UpdatePortfolio(ctx context.Context, portfolioID string, req request.UpdatePortfolioRequest) (model.Portfolio, error) {
	return s.portfolioRepo.UpdatePortfolio(ctx, portfolioID, req.Name, req.Description)
}

// GetPortfolioTotal computes the total value of a portfolio's holdings.
// A portfolio without holdings (or an unknown portfolio ID) yields a zero
// total and an empty holdings list.
func (s *PortfolioService) GetPortfolioTotal(ctx context.Context, portfolioID string) (PortfolioTotal, error) {
	holdings, err := s.holdingRepo.GetHoldingsOnPortfolioID(ctx, portfolioID)
	if err != nil {
		return PortfolioTotal{}, err
	}

	total := decimal.Zero
	for _, h := range holdings {
		total = total.Add(h.AveragePrice.Mul(decimal.NewFromInt(h.Quantity)))
	}

	return PortfolioTotal{
		Total:    total.InexactFloat64(),
		Holdings: holdings,
	}, nil
}
