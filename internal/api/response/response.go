// Package response provides utilities for sending consistent HTTP responses.
// It includes helpers for JSON responses and the API's fixed error bodies.
package response

import (
	"encoding/json"
	"log"
	"net/http"
)

// Client-facing error messages. These are part of the wire contract and must
// not be reworded.
const (
	MsgUserNotFound   = "Usuario no encontrado"
	MsgRecordNotFound = "Registro no encontrado"
	MsgRouteNotFound  = "Ruta no encontrada"
	MsgInternalError  = "Algo salió mal!"
)

// ErrorResponse represents a structured error response returned by the API.
// Message is only set on 500 responses and echoes the underlying error text;
// Path is only set on route-level 404 responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Path    string `json:"path,omitempty"`
}

// RespondJSON sends a JSON response with the given status code.
// Sets the Content-Type header to application/json and writes the status code.
// If data is nil, only the status code is sent (useful for 204 No Content).
// Logs encoding errors but does not fail the response.
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("failed to encode JSON response: %v", err)
		}
	}
}

// RespondError sends a `{"error": ...}` body with the given status code.
//
// Example:
//
//	response.RespondError(w, http.StatusBadRequest, "userId is required")
//	response.RespondError(w, http.StatusNotFound, response.MsgRecordNotFound)
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Error: message})
}

// RespondInternalError logs the failure and sends the API's uniform 500 body,
// echoing the underlying error text in the message field.
func RespondInternalError(w http.ResponseWriter, err error) {
	log.Printf("internal error: %v", err)
	RespondJSON(w, http.StatusInternalServerError, ErrorResponse{
		Error:   MsgInternalError,
		Message: err.Error(),
	})
}
