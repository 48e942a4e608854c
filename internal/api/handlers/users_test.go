package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/racional/racional-backend/internal/api/response"
	"github.com/racional/racional-backend/internal/model"
	"github.com/racional/racional-backend/internal/testutil"
)

func TestUserHandler_CreateUser(t *testing.T) {
	setupHandler := func(t *testing.T) (*UserHandler, *sql.DB) {
		t.Helper()
		db := testutil.SetupTestDB(t)
		us := testutil.NewTestUserService(t, db)
		return NewUserHandler(us), db
	}

	t.Run("creates user successfully", func(t *testing.T) {
		handler, db := setupHandler(t)

		req := testutil.NewJSONRequest(http.MethodPost, "/api/users", map[string]any{
			"name":  "Ada Lovelace",
			"email": testutil.MakeEmail("ada"),
			"phone": "+555555555",
		}, nil)
		w := httptest.NewRecorder()

		handler.CreateUser(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var user model.User
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&user)

		if user.ID == "" {
			t.Error("Expected generated user ID, got empty string")
		}
		if user.Name == nil || *user.Name != "Ada Lovelace" {
			t.Errorf("Expected name Ada Lovelace, got %v", user.Name)
		}

		testutil.AssertRowCount(t, db, "user", 1)
	})

	t.Run("creates user without name and email", func(t *testing.T) {
		handler, db := setupHandler(t)

		req := testutil.NewJSONRequest(http.MethodPost, "/api/users", map[string]any{
			"phone": "+123456789",
		}, nil)
		w := httptest.NewRecorder()

		handler.CreateUser(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var user model.User
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&user)

		if user.Name != nil {
			t.Errorf("Expected null name, got %q", *user.Name)
		}
		if user.Email != nil {
			t.Errorf("Expected null email, got %q", *user.Email)
		}

		testutil.AssertRowCount(t, db, "user", 1)
	})

	t.Run("accepts a urlencoded form body", func(t *testing.T) {
		handler, db := setupHandler(t)

		req := testutil.NewFormRequest(http.MethodPost, "/api/users", url.Values{
			"name":  {"Ada Lovelace"},
			"email": {testutil.MakeEmail("ada")},
			"phone": {"+555555555"},
		})
		w := httptest.NewRecorder()

		handler.CreateUser(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var user model.User
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&user)

		if user.Name == nil || *user.Name != "Ada Lovelace" {
			t.Errorf("Expected name Ada Lovelace, got %v", user.Name)
		}

		testutil.AssertRowCount(t, db, "user", 1)
	})

	t.Run("keeps numeric-looking form values as strings in text fields", func(t *testing.T) {
		handler, db := setupHandler(t)

		// Form values are untyped; a name of "42" must stay a string rather
		// than being read as a number and failing to decode.
		req := testutil.NewFormRequest(http.MethodPost, "/api/users", url.Values{
			"name":  {"42"},
			"phone": {"123"},
		})
		w := httptest.NewRecorder()

		handler.CreateUser(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var user model.User
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&user)

		if user.Name == nil || *user.Name != "42" {
			t.Errorf("Expected name \"42\", got %v", user.Name)
		}
		if user.Phone == nil || *user.Phone != "123" {
			t.Errorf("Expected phone \"123\", got %v", user.Phone)
		}

		testutil.AssertRowCount(t, db, "user", 1)
	})

	t.Run("returns 500 on database error", func(t *testing.T) {
		handler, db := setupHandler(t)
		db.Close()

		req := testutil.NewJSONRequest(http.MethodPost, "/api/users", map[string]any{
			"name": "Broken",
		}, nil)
		w := httptest.NewRecorder()

		handler.CreateUser(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Errorf("Expected 500, got %d: %s", w.Code, w.Body.String())
		}

		body := testutil.DecodeJSON(t, w)
		if body["error"] != response.MsgInternalError {
			t.Errorf("Expected error %q, got %v", response.MsgInternalError, body["error"])
		}
	})
}

func TestUserHandler_UpdateUser(t *testing.T) {
	setupHandler := func(t *testing.T) (*UserHandler, *sql.DB) {
		t.Helper()
		db := testutil.SetupTestDB(t)
		us := testutil.NewTestUserService(t, db)
		return NewUserHandler(us), db
	}

	t.Run("updates provided fields only", func(t *testing.T) {
		handler, db := setupHandler(t)

		user := testutil.NewUser().WithName("Before").Build(t, db)

		req := testutil.NewJSONRequest(
			http.MethodPut,
			"/api/users/"+user.ID,
			map[string]any{"name": "After"},
			map[string]string{"userId": user.ID},
		)
		w := httptest.NewRecorder()

		handler.UpdateUser(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var updated model.User
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&updated)

		if updated.Name == nil || *updated.Name != "After" {
			t.Errorf("Expected name After, got %v", updated.Name)
		}
		if updated.Email == nil || *updated.Email != *user.Email {
			t.Errorf("Expected email to be untouched, got %v", updated.Email)
		}
	})

	t.Run("unknown user is a 500, not a 404", func(t *testing.T) {
		handler, _ := setupHandler(t)

		req := testutil.NewJSONRequest(
			http.MethodPut,
			"/api/users/"+testutil.MakeID(),
			map[string]any{"name": "Ghost"},
			map[string]string{"userId": testutil.MakeID()},
		)
		w := httptest.NewRecorder()

		handler.UpdateUser(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Errorf("Expected 500, got %d: %s", w.Code, w.Body.String())
		}

		body := testutil.DecodeJSON(t, w)
		if body["error"] != response.MsgInternalError {
			t.Errorf("Expected error %q, got %v", response.MsgInternalError, body["error"])
		}
		if body["message"] == nil {
			t.Error("Expected message field echoing the failure")
		}
	})
}

func TestUserHandler_Movements(t *testing.T) {
	setupHandler := func(t *testing.T) (*UserHandler, *sql.DB) {
		t.Helper()
		db := testutil.SetupTestDB(t)
		us := testutil.NewTestUserService(t, db)
		return NewUserHandler(us), db
	}

	t.Run("returns empty lists for user without activity", func(t *testing.T) {
		handler, db := setupHandler(t)

		user := testutil.NewUser().Build(t, db)

		req := testutil.NewRequestWithURLParams(
			http.MethodGet,
			"/api/users/"+user.ID+"/movements",
			map[string]string{"userId": user.ID},
		)
		w := httptest.NewRecorder()

		handler.Movements(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		body := testutil.DecodeJSON(t, w)
		transactions, ok := body["transactions"].([]any)
		if !ok {
			t.Fatalf("Expected transactions array, got %T", body["transactions"])
		}
		stockOrders, ok := body["stockOrders"].([]any)
		if !ok {
			t.Fatalf("Expected stockOrders array, got %T", body["stockOrders"])
		}
		if len(transactions) != 0 || len(stockOrders) != 0 {
			t.Errorf("Expected empty lists, got %d transactions, %d orders",
				len(transactions), len(stockOrders))
		}
	})

	t.Run("returns both lists newest first, scoped to the user", func(t *testing.T) {
		handler, db := setupHandler(t)

		user := testutil.NewUser().Build(t, db)
		other := testutil.NewUser().Build(t, db)

		base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		oldTx := testutil.NewTransaction(user.ID).WithCreatedAt(base).Build(t, db)
		newTx := testutil.NewTransaction(user.ID).WithCreatedAt(base.Add(time.Hour)).Build(t, db)
		testutil.NewTransaction(other.ID).Build(t, db)

		oldOrder := testutil.NewStockOrder(user.ID).WithCreatedAt(base).Build(t, db)
		midOrder := testutil.NewStockOrder(user.ID).WithCreatedAt(base.Add(time.Minute)).Build(t, db)
		newOrder := testutil.NewStockOrder(user.ID).WithCreatedAt(base.Add(time.Hour)).Build(t, db)

		req := testutil.NewRequestWithURLParams(
			http.MethodGet,
			"/api/users/"+user.ID+"/movements",
			map[string]string{"userId": user.ID},
		)
		w := httptest.NewRecorder()

		handler.Movements(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var movements struct {
			Transactions []model.Transaction `json:"transactions"`
			StockOrders  []model.StockOrder  `json:"stockOrders"`
		}
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&movements)

		if len(movements.Transactions) != 2 {
			t.Fatalf("Expected 2 transactions, got %d", len(movements.Transactions))
		}
		if movements.Transactions[0].ID != newTx.ID || movements.Transactions[1].ID != oldTx.ID {
			t.Error("Expected transactions ordered newest first")
		}

		if len(movements.StockOrders) != 3 {
			t.Fatalf("Expected 3 stock orders, got %d", len(movements.StockOrders))
		}
		wantOrder := []string{newOrder.ID, midOrder.ID, oldOrder.ID}
		for i, id := range wantOrder {
			if movements.StockOrders[i].ID != id {
				t.Errorf("Expected stock order %d to be %s, got %s", i, id, movements.StockOrders[i].ID)
			}
		}
	})
}
