package validation

import "github.com/racional/racional-backend/internal/api/request"

// ValidateCreatePortfolio checks the required fields of a portfolio creation
// request in order: userId, name. Description and holdings are optional.
func ValidateCreatePortfolio(req request.CreatePortfolioRequest) error {
	if req.UserID == "" {
		return &FieldError{Field: "userId"}
	}
	if req.Name == "" {
		return &FieldError{Field: "name"}
	}
	return nil
}
