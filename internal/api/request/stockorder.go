package request

import "github.com/shopspring/decimal"

// CreateStockOrderRequest represents the request body for placing a stock
// order. Status defaults to PENDING when omitted.
type CreateStockOrderRequest struct {
	UserID      string          `json:"userId"`
	Stock       string          `json:"stock"`
	Quantity    int64           `json:"quantity"`
	Type        string          `json:"type"`
	Price       decimal.Decimal `json:"price"`
	Description *string         `json:"description"`
	Status      string          `json:"status"`
}
