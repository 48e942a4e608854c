package handlers

import (
	"net/http"

	"github.com/racional/racional-backend/internal/api/response"
)

// Version is the reported API version.
const Version = "1.0.0"

// SystemHandler handles the liveness/info endpoint.
type SystemHandler struct{}

// NewSystemHandler creates a new SystemHandler.
func NewSystemHandler() *SystemHandler {
	return &SystemHandler{}
}

// InfoResponse represents the root endpoint response
type InfoResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
	Status  string `json:"status"`
}

// Info handles GET requests to the root path.
//
// Endpoint: GET /
// Response: 200 OK with InfoResponse
func (h *SystemHandler) Info(w http.ResponseWriter, _ *http.Request) {
	response.RespondJSON(w, http.StatusOK, InfoResponse{
		Message: "Bienvenido a la API Racional",
		Version: Version,
		Status:  "running",
	})
}
