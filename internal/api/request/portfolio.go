package request

// CreatePortfolioRequest represents the request body for creating a portfolio.
// Holdings are created atomically with the portfolio; a missing list means an
// empty portfolio.
type CreatePortfolioRequest struct {
	UserID      string                 `json:"userId"`
	Name        string                 `json:"name"`
	Description *string                `json:"description"`
	Holdings    []CreateHoldingRequest `json:"holdings"`
}

// UpdatePortfolioRequest represents the request body for updating a portfolio.
// Only provided fields are written.
type UpdatePortfolioRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}
