package model

import "time"

// Portfolio represents a portfolio from the database.
// Holdings is only populated on creation and explicit holding lookups;
// scalar-only reads leave it nil so it is omitted from the response.
type Portfolio struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Holdings    []Holding `json:"holdings,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
