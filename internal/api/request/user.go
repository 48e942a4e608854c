package request

// CreateUserRequest represents the request body for creating a user.
// All fields are optional; the database accepts nulls for each of them.
type CreateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

// UpdateUserRequest represents the request body for updating a user.
// Only provided fields are written.
type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
}
