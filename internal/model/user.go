package model

import "time"

// User represents an account holder. Name, email and phone are nullable in the
// database, so they are pointers here and serialize as null when absent.
type User struct {
	ID        string    `json:"id"`
	Name      *string   `json:"name"`
	Email     *string   `json:"email"`
	Phone     *string   `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
}
