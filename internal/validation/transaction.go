package validation

import "github.com/racional/racional-backend/internal/api/request"

// ValidateCreateTransaction checks the required fields of a transaction
// creation request in order: userId, amount, type. A zero amount counts as
// missing, matching the API's historical falsy-value semantics.
func ValidateCreateTransaction(req request.CreateTransactionRequest) error {
	if req.UserID == "" {
		return &FieldError{Field: "userId"}
	}
	if req.Amount.IsZero() {
		return &FieldError{Field: "amount"}
	}
	if req.Type == "" {
		return &FieldError{Field: "type"}
	}
	return nil
}
