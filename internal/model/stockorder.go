package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock order types
const (
	OrderTypeBuy  = "BUY"
	OrderTypeSell = "SELL"
)

// Stock order statuses
const (
	OrderStatusPending   = "PENDING"
	OrderStatusCompleted = "COMPLETED"
	OrderStatusCancelled = "CANCELLED"
)

// StockOrder represents a buy or sell order placed by a user.
type StockOrder struct {
	ID          string          `json:"id"`
	UserID      string          `json:"userId"`
	Stock       string          `json:"stock"`
	Type        string          `json:"type"`
	Quantity    int64           `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Status      string          `json:"status"`
	Description *string         `json:"description"`
	CreatedAt   time.Time       `json:"createdAt"`
}
