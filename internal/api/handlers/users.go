package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/racional/racional-backend/internal/api/request"
	"github.com/racional/racional-backend/internal/api/response"
	"github.com/racional/racional-backend/internal/service"
)

// UserHandler handles HTTP requests for user endpoints.
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new UserHandler with the provided service dependency.
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// CreateUser handles POST requests to create a new user.
// No field is required; whatever the client sends is forwarded to persistence.
//
// Endpoint: POST /api/users
// Response: 201 Created with User
// Error: 500 Internal Server Error if creation fails
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	req, err := parseBody[request.CreateUserRequest](r)
	if err != nil {
		response.RespondInternalError(w, err)
		return
	}

	user, err := h.userService.CreateUser(r.Context(), req)
	if err != nil {
		response.RespondInternalError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusCreated, user)
}

// UpdateUser handles PUT requests to update an existing user.
// Unknown user IDs are not translated to 404 here; they surface as a 500
// like any other persistence failure.
//
// Endpoint: PUT /api/users/{userId}
// Response: 200 OK with updated User
// Error: 500 Internal Server Error if the update fails
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	req, err := parseBody[request.UpdateUserRequest](r)
	if err != nil {
		response.RespondInternalError(w, err)
		return
	}

	user, err := h.userService.UpdateUser(r.Context(), userID, req)
	if err != nil {
		response.RespondInternalError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, user)
}

// Movements handles GET requests for a user's combined transaction and stock
// order history. Both lists are ordered newest first and scoped to the user.
//
// Endpoint: GET /api/users/{userId}/movements
// Response: 200 OK with {transactions, stockOrders}
// Error: 500 Internal Server Error if retrieval fails
func (h *UserHandler) Movements(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	movements, err := h.userService.GetMovements(r.Context(), userID)
	if err != nil {
		response.RespondInternalError(w, err)
		return
	}

	response.RespondJSON(w, http.StatusOK, movements)
}
