package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/racional/racional-backend/internal/api/handlers"
	custommiddleware "github.com/racional/racional-backend/internal/api/middleware"
	"github.com/racional/racional-backend/internal/api/response"
	"github.com/racional/racional-backend/internal/config"
	"github.com/racional/racional-backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	userService *service.UserService,
	portfolioService *service.PortfolioService,
	holdingService *service.HoldingService,
	transactionService *service.TransactionService,
	stockOrderService *service.StockOrderService,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(custommiddleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	systemHandler := handlers.NewSystemHandler()
	r.Get("/", systemHandler.Info)

	// API routes
	r.Route("/api", func(r chi.Router) {
		userHandler := handlers.NewUserHandler(userService)
		r.Post("/users", userHandler.CreateUser)
		r.Route("/users/{userId}", func(r chi.Router) {
			r.Put("/", userHandler.UpdateUser)
			r.Get("/movements", userHandler.Movements)
		})

		transactionHandler := handlers.NewTransactionHandler(transactionService)
		r.Post("/transactions", transactionHandler.CreateTransaction)

		stockOrderHandler := handlers.NewStockOrderHandler(stockOrderService)
		r.Post("/stock-orders", stockOrderHandler.CreateStockOrder)

		portfolioHandler := handlers.NewPortfolioHandler(portfolioService)
		holdingHandler := handlers.NewHoldingHandler(holdingService)
		r.Route("/portfolios", func(r chi.Router) {
			r.Post("/", portfolioHandler.CreatePortfolio)
			r.Route("/{portfolioId}", func(r chi.Router) {
				r.Put("/", portfolioHandler.UpdatePortfolio)
				r.Get("/total", portfolioHandler.PortfolioTotal)
				r.Route("/holdings", func(r chi.Router) {
					r.Post("/", holdingHandler.CreateHolding)
					r.Put("/{holdingId}", holdingHandler.UpdateHolding)
					r.Delete("/{holdingId}", holdingHandler.DeleteHolding)
				})
			})
		})
	})

	// Unmatched paths answer with the route-level 404 body. Unmatched methods
	// use the same body so the surface stays a uniform 404.
	r.NotFound(routeNotFound)
	r.MethodNotAllowed(routeNotFound)

	return r
}

func routeNotFound(w http.ResponseWriter, r *http.Request) {
	response.RespondJSON(w, http.StatusNotFound, response.ErrorResponse{
		Error: response.MsgRouteNotFound,
		Path:  r.URL.Path,
	})
}
