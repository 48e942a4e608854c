package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/racional/racional-backend/internal/api/request"
	"github.com/racional/racional-backend/internal/model"
	"github.com/racional/racional-backend/internal/repository"
)

// UserService handles user-related business logic operations.
type UserService struct {
	userRepo        *repository.UserRepository
	transactionRepo *repository.TransactionRepository
	stockOrderRepo  *repository.StockOrderRepository
}

// NewUserService creates a new UserService with the provided repository dependencies.
func NewUserService(
	userRepo *repository.UserRepository,
	transactionRepo *repository.TransactionRepository,
	stockOrderRepo *repository.StockOrderRepository,
) *UserService {
	return &UserService{
		userRepo:        userRepo,
		transactionRepo: transactionRepo,
		stockOrderRepo:  stockOrderRepo,
	}
}

// Movements groups a user's cash transactions and stock orders,
// each ordered newest first.
type Movements struct {
	Transactions []model.Transaction `json:"transactions"`
	StockOrders  []model.StockOrder  `json:"stockOrders"`
}

// CreateUser creates a new user. No field is required; the database accepts
// nulls for name, email and phone.
func (s *UserService) CreateUser(ctx context.Context, req request.CreateUserRequest) (*model.User, error) {
	user := &model.User{
		ID:        uuid.New().String(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.userRepo.InsertUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// UpdateUser updates the provided fields of a user and returns the updated
// record. A missing user is reported as a repository error; it is not
// translated to a 404 by the user handler.
func (s *UserService) UpdateUser(ctx context.Context, userID string, req request.UpdateUserRequest) (model.User, error) {
	return s.userRepo.UpdateUser(ctx, userID, req.Name, req.Email, req.Phone)
}

// GetMovements retrieves a user's transactions and stock orders. The two
// queries are independent, so they run concurrently.
func (s *UserService) GetMovements(ctx context.Context, userID string) (Movements, error) {
	var movements Movements

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		transactions, err := s.transactionRepo.GetTransactionsOnUserID(ctx, userID)
		if err != nil {
			return err
		}
		movements.Transactions = transactions
		return nil
	})

	g.Go(func() error {
		orders, err := s.stockOrderRepo.GetStockOrdersOnUserID(ctx, userID)
		if err != nil {
			return err
		}
		movements.StockOrders = orders
		return nil
	})

	if err := g.Wait(); err != nil {
		return Movements{}, fmt.Errorf("failed to load movements: %w", err)
	}

	return movements, nil
}
