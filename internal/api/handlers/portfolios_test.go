package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/racional/racional-backend/internal/api/response"
	"github.com/racional/racional-backend/internal/model"
	"github.com/racional/racional-backend/internal/testutil"
)

func TestPortfolioHandler_CreatePortfolio(t *testing.T) {
	setupHandler := func(t *testing.T) (*PortfolioHandler, *sql.DB) {
		t.Helper()
		db := testutil.SetupTestDB(t)
		ps := testutil.NewTestPortfolioService(t, db)
		return NewPortfolioHandler(ps), db
	}

	t.Run("creates portfolio with nested holdings", func(t *testing.T) {
		handler, db := setupHandler(t)

		user := testutil.NewUser().Build(t, db)

		req := testutil.NewJSONRequest(http.MethodPost, "/api/portfolios", map[string]any{
			"userId":      user.ID,
			"name":        "My Portfolio",
			"description": "Test portfolio",
			"holdings": []map[string]any{
				{"stock": "AAPL", "quantity": 10, "averagePrice": 150.0},
				{"stock": "GOOGL", "quantity": 5, "averagePrice": 2800.0},
			},
		}, nil)
		w := httptest.NewRecorder()

		handler.CreatePortfolio(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var portfolio model.Portfolio
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&portfolio)

		if portfolio.UserID != user.ID {
			t.Errorf("Expected userId %s, got %s", user.ID, portfolio.UserID)
		}
		if portfolio.Name != "My Portfolio" {
			t.Errorf("Expected name My Portfolio, got %s", portfolio.Name)
		}
		if len(portfolio.Holdings) != 2 {
			t.Fatalf("Expected 2 nested holdings, got %d", len(portfolio.Holdings))
		}
		for _, h := range portfolio.Holdings {
			if h.PortfolioID != portfolio.ID {
				t.Errorf("Expected holding scoped to portfolio %s, got %s", portfolio.ID, h.PortfolioID)
			}
		}

		testutil.AssertRowCount(t, db, "portfolio", 1)
		testutil.AssertRowCount(t, db, "holding", 2)
	})

	t.Run("creates portfolio without holdings", func(t *testing.T) {
		handler, db := setupHandler(t)

		user := testutil.NewUser().Build(t, db)

		req := testutil.NewJSONRequest(http.MethodPost, "/api/portfolios", map[string]any{
			"userId": user.ID,
			"name":   "Empty Portfolio",
		}, nil)
		w := httptest.NewRecorder()

		handler.CreatePortfolio(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
		}

		testutil.AssertRowCount(t, db, "portfolio", 1)
		testutil.AssertRowCount(t, db, "holding", 0)
	})

	t.Run("rejects missing required fields in order", func(t *testing.T) {
		handler, db := setupHandler(t)

		user := testutil.NewUser().Build(t, db)

		cases := []struct {
			name string
			body map[string]any
			want string
		}{
			{
				name: "missing userId",
				body: map[string]any{"name": "My Portfolio"},
				want: "userId is required",
			},
			{
				name: "missing name",
				body: map[string]any{"userId": user.ID},
				want: "name is required",
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				req := testutil.NewJSONRequest(http.MethodPost, "/api/portfolios", tc.body, nil)
				w := httptest.NewRecorder()

				handler.CreatePortfolio(w, req)

				if w.Code != http.StatusBadRequest {
					t.Fatalf("Expected 400, got %d: %s", w.Code, w.Body.String())
				}

				body := testutil.DecodeJSON(t, w)
				if body["error"] != tc.want {
					t.Errorf("Expected error %q, got %v", tc.want, body["error"])
				}
			})
		}

		testutil.AssertRowCount(t, db, "portfolio", 0)
	})

	t.Run("rejects unknown user", func(t *testing.T) {
		handler, db := setupHandler(t)

		req := testutil.NewJSONRequest(http.MethodPost, "/api/portfolios", map[string]any{
			"userId": testutil.MakeID(),
			"name":   "Ghost Portfolio",
		}, nil)
		w := httptest.NewRecorder()

		handler.CreatePortfolio(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("Expected 400, got %d: %s", w.Code, w.Body.String())
		}

		body := testutil.DecodeJSON(t, w)
		if body["error"] != response.MsgUserNotFound {
			t.Errorf("Expected error %q, got %v", response.MsgUserNotFound, body["error"])
		}

		testutil.AssertRowCount(t, db, "portfolio", 0)
	})
}

func TestPortfolioHandler_UpdatePortfolio(t *testing.T) {
	setupHandler := func(t *testing.T) (*PortfolioHandler, *sql.DB) {
		t.Helper()
		db := testutil.SetupTestDB(t)
		ps := testutil.NewTestPortfolioService(t, db)
		return NewPortfolioHandler(ps), db
	}

	t.Run("updates name and description", func(t *testing.T) {
		handler, db := setupHandler(t)

		user := testutil.NewUser().Build(t, db)
		portfolio := testutil.NewPortfolio(user.ID).WithName("Old Name").Build(t, db)

		req := testutil.NewJSONRequest(
			http.MethodPut,
			"/api/portfolios/"+portfolio.ID,
			map[string]any{
				"name":        "Updated Portfolio",
				"description": "Updated portfolio description",
			},
			map[string]string{"portfolioId": portfolio.ID},
		)
		w := httptest.NewRecorder()

		handler.UpdatePortfolio(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var updated model.Portfolio
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&updated)

		if updated.ID != portfolio.ID {
			t.Errorf("Expected id %s, got %s", portfolio.ID, updated.ID)
		}
		if updated.Name != "Updated Portfolio" {
			t.Errorf("Expected updated name, got %s", updated.Name)
		}
		if updated.UserID != user.ID {
			t.Errorf("Expected owner %s, got %s", user.ID, updated.UserID)
		}
	})

	t.Run("unknown portfolio returns 404", func(t *testing.T) {
		handler, _ := setupHandler(t)

		req := testutil.NewJSONRequest(
			http.MethodPut,
			"/api/portfolios/"+testutil.MakeID(),
			map[string]any{"name": "Ghost"},
			map[string]string{"portfolioId": testutil.MakeID()},
		)
		w := httptest.NewRecorder()

		handler.UpdatePortfolio(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("Expected 404, got %d: %s", w.Code, w.Body.String())
		}

		body := testutil.DecodeJSON(t, w)
		if body["error"] != response.MsgRecordNotFound {
			t.Errorf("Expected error %q, got %v", response.MsgRecordNotFound, body["error"])
		}
	})
}

func TestPortfolioHandler_PortfolioTotal(t *testing.T) {
	setupHandler := func(t *testing.T) (*PortfolioHandler, *sql.DB) {
		t.Helper()
		db := testutil.SetupTestDB(t)
		ps := testutil.NewTestPortfolioService(t, db)
		return NewPortfolioHandler(ps), db
	}

	t.Run("sums quantity times average price", func(t *testing.T) {
		handler, db := setupHandler(t)

		user := testutil.NewUser().Build(t, db)
		portfolio := testutil.NewPortfolio(user.ID).Build(t, db)
		testutil.NewHolding(portfolio.ID).WithStock("AAPL").WithQuantity(10).WithAveragePrice(150.0).Build(t, db)
		testutil.NewHolding(portfolio.ID).WithStock("GOOGL").WithQuantity(5).WithAveragePrice(2800.0).Build(t, db)

		req := testutil.NewRequestWithURLParams(
			http.MethodGet,
			"/api/portfolios/"+portfolio.ID+"/total",
			map[string]string{"portfolioId": portfolio.ID},
		)
		w := httptest.NewRecorder()

		handler.PortfolioTotal(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		body := testutil.DecodeJSON(t, w)

		total, ok := body["total"].(float64)
		if !ok {
			t.Fatalf("Expected numeric total, got %T", body["total"])
		}
		if total != 15500 {
			t.Errorf("Expected total 15500, got %v", total)
		}

		holdings, ok := body["holdings"].([]any)
		if !ok {
			t.Fatalf("Expected holdings array, got %T", body["holdings"])
		}
		if len(holdings) != 2 {
			t.Errorf("Expected 2 holdings, got %d", len(holdings))
		}
	})

	t.Run("portfolio without holdings yields zero total", func(t *testing.T) {
		handler, db := setupHandler(t)

		user := testutil.NewUser().Build(t, db)
		portfolio := testutil.NewPortfolio(user.ID).Build(t, db)

		req := testutil.NewRequestWithURLParams(
			http.MethodGet,
			"/api/portfolios/"+portfolio.ID+"/total",
			map[string]string{"portfolioId": portfolio.ID},
		)
		w := httptest.NewRecorder()

		handler.PortfolioTotal(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		body := testutil.DecodeJSON(t, w)
		if body["total"] != float64(0) {
			t.Errorf("Expected total 0, got %v", body["total"])
		}

		holdings, ok := body["holdings"].([]any)
		if !ok {
			t.Fatalf("Expected holdings array, got %T", body["holdings"])
		}
		if len(holdings) != 0 {
			t.Errorf("Expected empty holdings, got %d", len(holdings))
		}
	})
}
