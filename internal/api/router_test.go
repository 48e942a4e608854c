package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/racional/racional-backend/internal/api/response"
	"github.com/racional/racional-backend/internal/config"
	"github.com/racional/racional-backend/internal/testutil"
)

func setupRouter(t *testing.T) http.Handler {
	t.Helper()

	db := testutil.SetupTestDB(t)
	cfg := &config.Config{
		CORS: config.CORSConfig{AllowedOrigins: []string{"*"}},
	}

	return NewRouter(
		testutil.NewTestUserService(t, db),
		testutil.NewTestPortfolioService(t, db),
		testutil.NewTestHoldingService(t, db),
		testutil.NewTestTransactionService(t, db),
		testutil.NewTestStockOrderService(t, db),
		cfg,
	)
}

func TestRouter_Info(t *testing.T) {
	router := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	body := testutil.DecodeJSON(t, w)
	if body["message"] != "Bienvenido a la API Racional" {
		t.Errorf("Expected welcome message, got %v", body["message"])
	}
	if body["version"] != "1.0.0" {
		t.Errorf("Expected version 1.0.0, got %v", body["version"])
	}
	if body["status"] != "running" {
		t.Errorf("Expected status running, got %v", body["status"])
	}
}

func TestRouter_NotFound(t *testing.T) {
	router := setupRouter(t)

	t.Run("unmatched path", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("Expected 404, got %d: %s", w.Code, w.Body.String())
		}

		body := testutil.DecodeJSON(t, w)
		if body["error"] != response.MsgRouteNotFound {
			t.Errorf("Expected error %q, got %v", response.MsgRouteNotFound, body["error"])
		}
		if body["path"] != "/api/unknown" {
			t.Errorf("Expected path /api/unknown, got %v", body["path"])
		}
	})

	t.Run("wrong method gets the same 404 body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("Expected 404, got %d: %s", w.Code, w.Body.String())
		}

		body := testutil.DecodeJSON(t, w)
		if body["error"] != response.MsgRouteNotFound {
			t.Errorf("Expected error %q, got %v", response.MsgRouteNotFound, body["error"])
		}
		if body["path"] != "/api/transactions" {
			t.Errorf("Expected path /api/transactions, got %v", body["path"])
		}
	})
}

func TestRouter_CORSPreflight(t *testing.T) {
	router := setupRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/users", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 on preflight, got %d: %s", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Expected Access-Control-Allow-Origin *, got %q", got)
	}
	allowed := w.Header().Get("Access-Control-Allow-Methods")
	if !strings.Contains(allowed, http.MethodPost) {
		t.Errorf("Expected POST in allowed methods, got %q", allowed)
	}
}

func TestRouter_EndToEnd(t *testing.T) {
	router := setupRouter(t)

	// Create a user through the full middleware chain, then use its id.
	createUser := testutil.NewJSONRequest(http.MethodPost, "/api/users", map[string]any{
		"name":  "Grace Hopper",
		"email": testutil.MakeEmail("grace"),
	}, nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, createUser)

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201 creating user, got %d: %s", w.Code, w.Body.String())
	}

	user := testutil.DecodeJSON(t, w)
	userID, ok := user["id"].(string)
	if !ok || userID == "" {
		t.Fatalf("Expected user id in response, got %v", user["id"])
	}

	createPortfolio := testutil.NewJSONRequest(http.MethodPost, "/api/portfolios", map[string]any{
		"userId": userID,
		"name":   "Main",
		"holdings": []map[string]any{
			{"stock": "AAPL", "quantity": 2, "averagePrice": 100.0},
		},
	}, nil)
	w = httptest.NewRecorder()

	router.ServeHTTP(w, createPortfolio)

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201 creating portfolio, got %d: %s", w.Code, w.Body.String())
	}

	portfolio := testutil.DecodeJSON(t, w)
	portfolioID, ok := portfolio["id"].(string)
	if !ok || portfolioID == "" {
		t.Fatalf("Expected portfolio id in response, got %v", portfolio["id"])
	}

	total := httptest.NewRequest(http.MethodGet, "/api/portfolios/"+portfolioID+"/total", nil)
	w = httptest.NewRecorder()

	router.ServeHTTP(w, total)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 on total, got %d: %s", w.Code, w.Body.String())
	}

	body := testutil.DecodeJSON(t, w)
	if body["total"] != float64(200) {
		t.Errorf("Expected total 200, got %v", body["total"])
	}
}
