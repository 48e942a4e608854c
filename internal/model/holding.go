package model

import "github.com/shopspring/decimal"

// Holding represents a stock position inside a portfolio.
// AveragePrice is a decimal and serializes as a quoted JSON string.
type Holding struct {
	ID           string          `json:"id"`
	PortfolioID  string          `json:"portfolioId"`
	Stock        string          `json:"stock"`
	Quantity     int64           `json:"quantity"`
	AveragePrice decimal.Decimal `json:"averagePrice"`
}
