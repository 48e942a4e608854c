package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/racional/racional-backend/internal/model"
	"github.com/racional/racional-backend/internal/repository"
)

// UserBuilder provides a fluent interface for creating test users.
//
// Example usage:
//
//	// Simple creation with defaults
//	user := testutil.NewUser().Build(t, db)
//
//	// Customized user
//	user := testutil.NewUser().
//	    WithName("Ada").
//	    WithEmail("ada@example.com").
//	    Build(t, db)
type UserBuilder struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
}

// NewUser creates a UserBuilder with sensible defaults.
func NewUser() *UserBuilder {
	return &UserBuilder{
		ID:        MakeID(),
		Name:      "Test User",
		Email:     MakeEmail("user"),
		Phone:     "+100000000",
		CreatedAt: time.Now().UTC(),
	}
}

// WithName sets a custom name.
func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.Name = name
	return b
}

// WithEmail sets a custom email.
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.Email = email
	return b
}

// WithPhone sets a custom phone number.
func (b *UserBuilder) WithPhone(phone string) *UserBuilder {
	b.Phone = phone
	return b
}

// Build creates the user in the database and returns it.
func (b *UserBuilder) Build(t *testing.T, db *sql.DB) model.User {
	t.Helper()

	query := `
		INSERT INTO user (id, name, email, phone, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.Name, b.Email, b.Phone, repository.FormatTime(b.CreatedAt))
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return model.User{
		ID:        b.ID,
		Name:      &b.Name,
		Email:     &b.Email,
		Phone:     &b.Phone,
		CreatedAt: b.CreatedAt,
	}
}

// PortfolioBuilder provides a fluent interface for creating test portfolios.
type PortfolioBuilder struct {
	ID          string
	UserID      string
	Name        string
	Description string
	CreatedAt   time.Time
}

// NewPortfolio creates a PortfolioBuilder for the given user.
func NewPortfolio(userID string) *PortfolioBuilder {
	return &PortfolioBuilder{
		ID:          MakeID(),
		UserID:      userID,
		Name:        "Test Portfolio",
		Description: "A test portfolio",
		CreatedAt:   time.Now().UTC(),
	}
}

// WithName sets a custom name.
func (b *PortfolioBuilder) WithName(name string) *PortfolioBuilder {
	b.Name = name
	return b
}

// WithDescription sets a custom description.
func (b *PortfolioBuilder) WithDescription(description string) *PortfolioBuilder {
	b.Description = description
	return b
}

// Build creates the portfolio in the database and returns it.
func (b *PortfolioBuilder) Build(t *testing.T, db *sql.DB) model.Portfolio {
	t.Helper()

	query := `
		INSERT INTO portfolio (id, user_id, name, description, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.UserID, b.Name, b.Description, repository.FormatTime(b.CreatedAt))
	if err != nil {
		t.Fatalf("Failed to create test portfolio: %v", err)
	}

	return model.Portfolio{
		ID:          b.ID,
		UserID:      b.UserID,
		Name:        b.Name,
		Description: &b.Description,
		CreatedAt:   b.CreatedAt,
	}
}

// HoldingBuilder provides a fluent interface for creating test holdings.
type HoldingBuilder struct {
	ID           string
	PortfolioID  string
	Stock        string
	Quantity     int64
	AveragePrice decimal.Decimal
}

// NewHolding creates a HoldingBuilder for the given portfolio.
func NewHolding(portfolioID string) *HoldingBuilder {
	return &HoldingBuilder{
		ID:           MakeID(),
		PortfolioID:  portfolioID,
		Stock:        "AAPL",
		Quantity:     10,
		AveragePrice: decimal.NewFromFloat(150.0),
	}
}

// WithStock sets the ticker.
func (b *HoldingBuilder) WithStock(stock string) *HoldingBuilder {
	b.Stock = stock
	return b
}

// WithQuantity sets the quantity.
func (b *HoldingBuilder) WithQuantity(quantity int64) *HoldingBuilder {
	b.Quantity = quantity
	return b
}

// WithAveragePrice sets the average price.
func (b *HoldingBuilder) WithAveragePrice(price float64) *HoldingBuilder {
	b.AveragePrice = decimal.NewFromFloat(price)
	return b
}

// Build creates the holding in the database and returns it.
func (b *HoldingBuilder) Build(t *testing.T, db *sql.DB) model.Holding {
	t.Helper()

	query := `
		INSERT INTO holding (id, portfolio_id, stock, quantity, average_price)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.PortfolioID, b.Stock, b.Quantity, b.AveragePrice.String())
	if err != nil {
		t.Fatalf("Failed to create test holding: %v", err)
	}

	return model.Holding{
		ID:           b.ID,
		PortfolioID:  b.PortfolioID,
		Stock:        b.Stock,
		Quantity:     b.Quantity,
		AveragePrice: b.AveragePrice,
	}
}

// TransactionBuilder provides a fluent interface for creating test transactions.
type TransactionBuilder struct {
	ID          string
	UserID      string
	Type        string
	Amount      decimal.Decimal
	Status      string
	Description string
	CreatedAt   time.Time
}

// NewTransaction creates a TransactionBuilder for the given user.
func NewTransaction(userID string) *TransactionBuilder {
	return &TransactionBuilder{
		ID:        MakeID(),
		UserID:    userID,
		Type:      model.TransactionTypeDeposit,
		Amount:    decimal.NewFromFloat(500.0),
		Status:    model.TransactionStatusPending,
		CreatedAt: time.Now().UTC(),
	}
}

// WithType sets the transaction type.
func (b *TransactionBuilder) WithType(transactionType string) *TransactionBuilder {
	b.Type = transactionType
	return b
}

// WithAmount sets the amount.
func (b *TransactionBuilder) WithAmount(amount float64) *TransactionBuilder {
	b.Amount = decimal.NewFromFloat(amount)
	return b
}

// WithStatus sets the status.
func (b *TransactionBuilder) WithStatus(status string) *TransactionBuilder {
	b.Status = status
	return b
}

// WithCreatedAt sets the creation timestamp, for ordering tests.
func (b *TransactionBuilder) WithCreatedAt(createdAt time.Time) *TransactionBuilder {
	b.CreatedAt = createdAt
	return b
}

// Build creates the transaction in the database and returns it.
func (b *TransactionBuilder) Build(t *testing.T, db *sql.DB) model.Transaction {
	t.Helper()

	query := `
		INSERT INTO "transaction" (id, user_id, type, amount, status, description, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.UserID, b.Type, b.Amount.String(), b.Status,
		b.Description, repository.FormatTime(b.CreatedAt))
	if err != nil {
		t.Fatalf("Failed to create test transaction: %v", err)
	}

	return model.Transaction{
		ID:          b.ID,
		UserID:      b.UserID,
		Type:        b.Type,
		Amount:      b.Amount,
		Status:      b.Status,
		Description: &b.Description,
		CreatedAt:   b.CreatedAt,
	}
}

// StockOrderBuilder provides a fluent interface for creating test stock orders.
type StockOrderBuilder struct {
	ID          string
	UserID      string
	Stock       string
	Type        string
	Quantity    int64
	Price       decimal.Decimal
	Status      string
	Description string
	CreatedAt   time.Time
}

// NewStockOrder creates a StockOrderBuilder for the given user.
func NewStockOrder(userID string) *StockOrderBuilder {
	return &StockOrderBuilder{
		ID:        MakeID(),
		UserID:    userID,
		Stock:     "AAPL",
		Type:      model.OrderTypeBuy,
		Quantity:  10,
		Price:     decimal.NewFromFloat(150.0),
		Status:    model.OrderStatusPending,
		CreatedAt: time.Now().UTC(),
	}
}

// WithStock sets the ticker.
func (b *StockOrderBuilder) WithStock(stock string) *StockOrderBuilder {
	b.Stock = stock
	return b
}

// WithType sets the order type.
func (b *StockOrderBuilder) WithType(orderType string) *StockOrderBuilder {
	b.Type = orderType
	return b
}

// WithQuantity sets the quantity.
func (b *StockOrderBuilder) WithQuantity(quantity int64) *StockOrderBuilder {
	b.Quantity = quantity
	return b
}

// WithPrice sets the price.
func (b *StockOrderBuilder) WithPrice(price float64) *StockOrderBuilder {
	b.Price = decimal.NewFromFloat(price)
	return b
}

// WithCreatedAt sets the creation timestamp, for ordering tests.
func (b *StockOrderBuilder) WithCreatedAt(createdAt time.Time) *StockOrderBuilder {
	b.CreatedAt = createdAt
	return b
}

// Build creates the stock order in the database and returns it.
func (b *StockOrderBuilder) Build(t *testing.T, db *sql.DB) model.StockOrder {
	t.Helper()

	query := `
		INSERT INTO stock_order (id, user_id, stock, type, quantity, price, status, description, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(query, b.ID, b.UserID, b.Stock, b.Type, b.Quantity,
		b.Price.String(), b.Status, b.Description, repository.FormatTime(b.CreatedAt))
	if err != nil {
		t.Fatalf("Failed to create test stock order: %v", err)
	}

	return model.StockOrder{
		ID:          b.ID,
		UserID:      b.UserID,
		Stock:       b.Stock,
		Type:        b.Type,
		Quantity:    b.Quantity,
		Price:       b.Price,
		Status:      b.Status,
		Description: &b.Description,
		CreatedAt:   b.CreatedAt,
	}
}
