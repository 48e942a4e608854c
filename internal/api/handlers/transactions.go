package handlers

import (
	"errors"
	"net/http"

	"github.com/racional/racional-backend/internal/api/request"
	"github.com/racional/racional-backend/internal/api/response"
	"github.com/racional/racional-backend/internal/apperrors"
	"github.com/racional/racional-backend/internal/service"
	"github.com/racional/racional-backend/internal/validation"
)

// TransactionHandler handles HTTP requests for cash-transaction endpoints.
type TransactionHandler struct {
	transactionService *service.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler with the provided service dependency.
func NewTransactionHandler(transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// CreateTransaction handles POST requests to create a cash transaction.
// userId, amount and type are required, checked in that order; the first
// missing field short-circuits with a field-specific 400.
//
// Endpoint: POST /api/transactions
// Request Body: CreateTransactionRequest (userId, amount, type, description, status)
// Response: 201 Created with Transaction
// Error: 400 Bad Request "<field> is required" on the first missing field
// Error: 400 Bad Request "Usuario no encontrado" if the user does not exist
// Error: 500 Internal Server Error if creation fails
func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	req, err := parseBody[request.CreateTransactionRequest](r)
	if err != nil {
		response.RespondInternalError(w, err)
		return
	}

	if err := validation.ValidateCreateTransaction(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	transaction, err := h.transactionService.CreateTransaction(r.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			response.RespondError(w, http.StatusBadRequest, response.MsgUserNotFound)
			return
		}
		response.RespondInternalError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusCreated, transaction)
}
