package testutil

import (
	"database/sql"
	"math/rand"
	"testing"

	"github.com/google/uuid"

	"github.com/racional/racional-backend/internal/repository"
	"github.com/racional/racional-backend/internal/service"
)

// NewTestUserService wires a UserService and its repositories onto a test database.
func NewTestUserService(t *testing.T, db *sql.DB) *service.UserService {
	t.Helper()

	userRepo := repository.NewUserRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	stockOrderRepo := repository.NewStockOrderRepository(db)

	return service.NewUserService(userRepo, transactionRepo, stockOrderRepo)
}

// NewTestPortfolioService wires a PortfolioService and its repositories onto a test database.
func NewTestPortfolioService(t *testing.T, db *sql.DB) *service.PortfolioService {
	t.Helper()

	portfolioRepo := repository.NewPortfolioRepository(db)
	holdingRepo := repository.NewHoldingRepository(db)
	userRepo := repository.NewUserRepository(db)

	return service.NewPortfolioService(db, portfolioRepo, holdingRepo, userRepo)
}

// NewTestHoldingService wires a HoldingService and its repository onto a test database.
func NewTestHoldingService(t *testing.T, db *sql.DB) *service.HoldingService {
	t.Helper()

	return service.NewHoldingService(repository.NewHoldingRepository(db))
}

// NewTestTransactionService wires a TransactionService and its repositories onto a test database.
func NewTestTransactionService(t *testing.T, db *sql.DB) *service.TransactionService {
	t.Helper()

	transactionRepo := repository.NewTransactionRepository(db)
	userRepo := repository.NewUserRepository(db)

	return service.NewTransactionService(transactionRepo, userRepo)
}

// NewTestStockOrderService wires a StockOrderService and its repository onto a test database.
func NewTestStockOrderService(t *testing.T, db *sql.DB) *service.StockOrderService {
	t.Helper()

	return service.NewStockOrderService(repository.NewStockOrderRepository(db))
}

// MakeID generates a UUID string for use in tests.
//
// Example usage:
//
//	id := testutil.MakeID()
//	// Returns: "550e8400-e29b-41d4-a716-446655440000"
func MakeID() string {
	return uuid.New().String()
}

// MakeEmail generates a unique email address for testing.
//
// Example usage:
//
//	email := testutil.MakeEmail("ada")
//	// Returns: "ada_1A2B3C@example.com"
func MakeEmail(prefix string) string {
	if prefix == "" {
		prefix = "user"
	}
	return prefix + "_" + randomAlphanumeric(6) + "@example.com"
}

// randomAlphanumeric generates a random alphanumeric string of specified length.
func randomAlphanumeric(length int) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	for i := range result {
		//nolint:gosec // G404: Using math/rand for test data generation is acceptable
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}
