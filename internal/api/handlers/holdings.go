package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/racional/racional-backend/internal/api/request"
	"github.com/racional/racional-backend/internal/api/response"
	"github.com/racional/racional-backend/internal/service"
)

// HoldingHandler handles HTTP requests for holding endpoints. Update and
// delete address holdings by their own ID; the portfolioId path segment is
// accepted but not enforced as a filter.
type HoldingHandler struct {
	holdingService *service.HoldingService
}

// NewHoldingHandler creates a new HoldingHandler with the provided service dependency.
func NewHoldingHandler(holdingService *service.HoldingService) *HoldingHandler {
	return &HoldingHandler{
		holdingService: holdingService,
	}
}

// CreateHolding handles POST requests to add a holding to a portfolio.
// No required-field validation is performed; an unknown portfolio fails the
// foreign key and surfaces as a 500.
//
// Endpoint: POST /api/portfolios/{portfolioId}/holdings
// Response: 201 Created with Holding
// Error: 500 Internal Server Error if creation fails
func (h *HoldingHandler) CreateHolding(w http.ResponseWriter, r *http.Request) {
	portfolioID := chi.URLParam(r, "portfolioId")

	req, err := parseBody[request.CreateHoldingRequest](r)
	if err != nil {
		response.RespondInternalError(w, err)
		return
	}

	holding, err := h.holdingService.CreateHolding(r.Context(), portfolioID, req)
	if err != nil {
		response.RespondInternalError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusCreated, holding)
}

// UpdateHolding handles PUT requests to update a holding.
//
// Endpoint: PUT /api/portfolios/{portfolioId}/holdings/{holdingId}
// Response: 200 OK with updated Holding
// Error: 500 Internal Server Error if the update fails or the holding is unknown
func (h *HoldingHandler) UpdateHolding(w http.ResponseWriter, r *http.Request) {
	holdingID := chi.URLParam(r, "holdingId")

	req, err := parseBody[request.UpdateHoldingRequest](r)
	if err != nil {
		response.RespondInternalError(w, err)
		return
	}

	holding, err := h.holdingService.UpdateHolding(r.Context(), holdingID, req)
	if err != nil {
		response.RespondInternalError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, holding)
}

// DeleteHolding handles DELETE requests to remove a holding.
//
// Endpoint: DELETE /api/portfolios/{portfolioId}/holdings/{holdingId}
// Response: 204 No Content with empty body
// Error: 500 Internal Server Error if the delete fails or the holding is unknown
func (h *HoldingHandler) DeleteHolding(w http.ResponseWriter, r *http.Request) {
	holdingID := chi.URLParam(r, "holdingId")

	if err := h.holdingService.DeleteHolding(r.Context(), holdingID); err != nil {
		response.RespondInternalError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusNoContent, nil)
}
