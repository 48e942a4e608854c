package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/racional/racional-backend/internal/api/request"
	"github.com/racional/racional-backend/internal/model"
	"github.com/racional/racional-backend/internal/repository"
)

// HoldingService handles holding business logic operations.
type HoldingService struct {
	holdingRepo *repository.HoldingRepository
}

// NewHoldingService creates a new HoldingService with the provided repository dependency.
func NewHoldingService(holdingRepo *repository.HoldingRepository) *HoldingService {
	return &HoldingService{
		holdingRepo: holdingRepo,
	}
}

// CreateHolding adds a holding to a portfolio. An unknown portfolio fails the
// insert on the foreign key and surfaces as a plain error.
func (s *HoldingService) CreateHolding(ctx context.Context, portfolioID string, req request.CreateHoldingRequest) (*model.Holding, error) {
	holding := &model.Holding{
		ID:           uuid.New().String(),
		PortfolioID:  portfolioID,
		Stock:        req.Stock,
		Quantity:     req.Quantity,
		AveragePrice: req.AveragePrice,
	}

	if err := s.holdingRepo.InsertHolding(ctx, holding); err != nil {
		return nil, fmt.Errorf("failed to create holding: %w", err)
	}

	return holding, nil
}

// UpdateHolding updates the provided fields of a holding and returns the
// updated record. The holding is addressed by its own ID; the portfolio from
// the request path is not used as a filter.
func (s *HoldingService) UpdateHolding(ctx context.Context, holdingID string, req request.UpdateHoldingRequest) (model.Holding, error) {
	return s.holdingRepo.UpdateHolding(ctx, holdingID, req.Stock, req.Quantity, req.AveragePrice)
}

// DeleteHolding removes a holding by its own ID.
func (s *HoldingService) DeleteHolding(ctx context.Context, holdingID string) error {
	return s.holdingRepo.DeleteHolding(ctx, holdingID)
}
