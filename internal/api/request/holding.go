package request

import "github.com/shopspring/decimal"

// CreateHoldingRequest represents the request body for adding a holding to a
// portfolio. It is also the element type of the nested holdings list on
// portfolio creation.
type CreateHoldingRequest struct {
	Stock        string          `json:"stock"`
	Quantity     int64           `json:"quantity"`
	AveragePrice decimal.Decimal `json:"averagePrice"`
}

// UpdateHoldingRequest represents the request body for updating a holding.
// Only provided fields are written.
type UpdateHoldingRequest struct {
	Stock        *string          `json:"stock,omitempty"`
	Quantity     *int64           `json:"quantity,omitempty"`
	AveragePrice *decimal.Decimal `json:"averagePrice,omitempty"`
}
