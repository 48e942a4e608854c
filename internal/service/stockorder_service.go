package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/racional/racional-backend/internal/api/request"
	"github.com/racional/racional-backend/internal/model"
	"github.com/racional/racional-backend/internal/repository"
)

// StockOrderService handles stock-order business logic operations.
type StockOrderService struct {
	stockOrderRepo *repository.StockOrderRepository
}

// NewStockOrderService creates a new StockOrderService with the provided repository dependency.
func NewStockOrderService(stockOrderRepo *repository.StockOrderRepository) *StockOrderService {
	return &StockOrderService{
		stockOrderRepo: stockOrderRepo,
	}
}

// CreateStockOrder creates a stock order for a user. No referential pre-check
// is done; an unknown user fails the insert and surfaces as a plain error.
func (s *StockOrderService) CreateStockOrder(ctx context.Context, req request.CreateStockOrderRequest) (*model.StockOrder, error) {
	status := req.Status
	if status == "" {
		status = model.OrderStatusPending
	}

	order := &model.StockOrder{
		ID:          uuid.New().String(),
		UserID:      req.UserID,
		Stock:       req.Stock,
		Type:        req.Type,
		Quantity:    req.Quantity,
		Price:       req.Price,
		Status:      status,
		Description: req.Description,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.stockOrderRepo.InsertStockOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create stock order: %w", err)
	}

	return order, nil
}
