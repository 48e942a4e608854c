package handlers

import (
	"net/http"

	"github.com/racional/racional-backend/internal/api/request"
	"github.com/racional/racional-backend/internal/api/response"
	"github.com/racional/racional-backend/internal/service"
)

// StockOrderHandler handles HTTP requests for stock-order endpoints.
type StockOrderHandler struct {
	stockOrderService *service.StockOrderService
}

// NewStockOrderHandler creates a new StockOrderHandler with the provided service dependency.
func NewStockOrderHandler(stockOrderService *service.StockOrderService) *StockOrderHandler {
	return &StockOrderHandler{
		stockOrderService: stockOrderService,
	}
}

// CreateStockOrder handles POST requests to place a stock order.
// This endpoint performs no required-field validation; bad input, including an
// unknown userId, fails at the database and surfaces as a 500.
//
// Endpoint: POST /api/stock-orders
// Response: 201 Created with StockOrder
// Error: 500 Internal Server Error if creation fails
func (h *StockOrderHandler) CreateStockOrder(w http.ResponseWriter, r *http.Request) {
	req, err := parseBody[request.CreateStockOrderRequest](r)
	if err != nil {
		response.RespondInternalError(w, err)
		return
	}

	order, err := h.stockOrderService.CreateStockOrder(r.Context(), req)
	if err != nil {
		response.RespondInternalError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusCreated, order)
}
