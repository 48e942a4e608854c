// Package validation contains the per-endpoint required-field checks.
// Only transaction and portfolio creation validate their input; the other
// endpoints intentionally accept whatever the client sends and let the
// database reject it. Checks short-circuit on the first missing field.
package validation

// FieldError reports the first missing required field of a request.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string {
	return e.Field + " is required"
}
