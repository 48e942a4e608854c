package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/racional/racional-backend/internal/api/request"
	"github.com/racional/racional-backend/internal/apperrors"
	"github.com/racional/racional-backend/internal/model"
	"github.com/racional/racional-backend/internal/repository"
)

// TransactionService handles cash-transaction business logic operations.
type TransactionService struct {
	transactionRepo *repository.TransactionRepository
	userRepo        *repository.UserRepository
}

// NewTransactionService creates a new TransactionService with the provided repository dependencies.
func NewTransactionService(
	transactionRepo *repository.TransactionRepository,
	userRepo *repository.UserRepository,
) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
	}
}

// CreateTransaction creates a cash transaction for a user.
// Returns apperrors.ErrUserNotFound when the referenced user does not exist.
func (s *TransactionService) CreateTransaction(ctx context.Context, req request.CreateTransactionRequest) (*model.Transaction, error) {
	exists, err := s.userRepo.UserExists(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check user: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrUserNotFound
	}

	status := req.Status
	if status == "" {
		status = model.TransactionStatusPending
	}

	transaction := &model.Transaction{
		ID:          uuid.New().String(),
		UserID:      req.UserID,
		Type:        req.Type,
		Amount:      req.Amount,
		Status:      status,
		Description: req.Description,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.transactionRepo.InsertTransaction(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return transaction, nil
}
