package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/racional/racional-backend/internal/api/request"
	"github.com/racional/racional-backend/internal/api/response"
	"github.com/racional/racional-backend/internal/apperrors"
	"github.com/racional/racional-backend/internal/service"
	"github.com/racional/racional-backend/internal/validation"
)

// PortfolioHandler handles HTTP requests for portfolio endpoints.
type PortfolioHandler struct {
	portfolioService *service.PortfolioService
}

// NewPortfolioHandler creates a new PortfolioHandler with the provided service dependency.
func NewPortfolioHandler(portfolioService *service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService: portfolioService,
	}
}

// CreatePortfolio handles POST requests to create a portfolio, optionally with
// an initial set of holdings created atomically alongside it.
//
// Endpoint: POST /api/portfolios
// Request Body: CreatePortfolioRequest (userId, name, description, holdings)
// Response: 201 Created with Portfolio (nested holdings included)
// Error: 400 Bad Request "<field> is required" on the first missing field
// Error: 400 Bad Request "Usuario no encontrado" if the user does not exist
// Error: 500 Internal Server Error if creation fails
func (h *PortfolioHandler) CreatePortfolio(w http.ResponseWriter, r *http.Request) {
	req, err := parseBody[request.CreatePortfolioRequest](r)
	if err != nil {
		response.RespondInternalError(w, err)
		return
	}

	if err := validation.ValidateCreatePortfolio(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	portfolio, err := h.portfolioService.CreatePortfolio(r.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			response.RespondError(w, http.StatusBadRequest, response.MsgUserNotFound)
			return
		}
		response.RespondInternalError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusCreated, portfolio)
}

// UpdatePortfolio handles PUT requests to update a portfolio's name and
// description.
//
// Endpoint: PUT /api/portfolios/{portfolioId}
// Response: 200 OK with updated Portfolio
// Error: 404 Not Found "Registro no encontrado" if the portfolio does not exist
// Error: 500 Internal Server Error if the update fails
func (h *PortfolioHandler) UpdatePortfolio(w http.ResponseWriter, r *http.Request) {
	portfolioID := chi.URLParam(r, "portfolioId")

	req, err := parseBody[request.UpdatePortfolioRequest](r)
	if err != nil {
		response.RespondInternalError(w, err)
		return
	}

	portfolio, err := h.portfolioService.UpdatePortfolio(r.Context(), portfolioID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrRecordNotFound) {
			response.RespondError(w, http.StatusNotFound, response.MsgRecordNotFound)
			return
		}
		response.RespondInternalError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, portfolio)
}

// PortfolioTotal handles GET requests for a portfolio's total value,
// the sum of quantity * averagePrice over its holdings.
//
// Endpoint: GET /api/portfolios/{portfolioId}/total
// Response: 200 OK with {total, holdings}; total is 0 without holdings
// Error: 500 Internal Server Error if retrieval fails
func (h *PortfolioHandler) PortfolioTotal(w http.ResponseWriter, r *http.Request) {
	portfolioID := chi.URLParam(r, "portfolioId")

	total, err := h.portfolioService.GetPortfolioTotal(r.Context(), portfolioID)
	if err != nil {
		response.RespondInternalError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, total)
}
