package request

import "github.com/shopspring/decimal"

// CreateTransactionRequest represents the request body for creating a
// cash transaction. Status defaults to PENDING when omitted.
type CreateTransactionRequest struct {
	UserID      string          `json:"userId"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Description *string         `json:"description"`
	Status      string          `json:"status"`
}
