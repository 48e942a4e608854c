package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrUserNotFound indicates that a referenced user does not exist.
	// Handlers that translate it respond 400 "Usuario no encontrado".
	ErrUserNotFound = errors.New("user not found")

	// ErrRecordNotFound indicates that an update or delete target does not exist.
	// Only the portfolio update handler translates it to 404 "Registro no
	// encontrado"; everywhere else it surfaces as a plain failure.
	ErrRecordNotFound = errors.New("record not found")
)
