package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Lixing-Zhang/chitragupt/internal/models"
	"github.com/go-chi/chi/v5"
)

func TestListStock(t *testing.T) {
	env := newTestEnv()
	handler := NewStockHandler(env.stock, env.log)

	req := httptest.NewRequest(http.MethodGet, "/api/stock", nil)
	w := httptest.NewRecorder()

	handler.ListStock(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var levels []models.StockLevel
	if err := json.NewDecoder(w.Body).Decode(&levels); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	want := []models.StockLevel{
		{Name: "Aata", Grams: 20000, Display: "20.00 kg"},
		{Name: "Cheeni", Grams: 12000, Display: "12.00 kg"},
		{Name: "Custard", Grams: 2000, Display: "2.00 kg"},
		{Name: "Ghee", Grams: 10000, Display: "10.00 kg"},
		{Name: "Maida", Grams: 15000, Display: "15.00 kg"},
		{Name: "Milk Powder", Grams: 1000, Display: "1.00 kg"},
	}
	if len(levels) != len(want) {
		t.Fatalf("expected %d levels, got %d", len(want), len(levels))
	}
	for i := range want {
		if levels[i] != want[i] {
			t.Errorf("level %d = %+v, want %+v", i, levels[i], want[i])
		}
	}
}

func TestGetStock(t *testing.T) {
	env := newTestEnv()
	for name, grams := range map[string]int64{"100% Cocoa": 500, "A%41": 7, "Jaggery/Gur": 300} {
		if _, err := env.store.Add(name, grams); err != nil {
			t.Fatalf("seeding %q: %v", name, err)
		}
	}
	handler := NewStockHandler(env.stock, env.log)

	r := chi.NewRouter()
	r.Get("/api/stock/{ingredient}", handler.GetStock)

	testCases := []struct {
		path    string
		name    string
		grams   int64
		display string
	}{
		{"/api/stock/Ghee", "Ghee", 10000, "10.00 kg"},
		{"/api/stock/Milk%20Powder", "Milk Powder", 1000, "1.00 kg"},
		{"/api/stock/Saffron", "Saffron", 0, "0 g"},
		{"/api/stock/100%25%20Cocoa", "100% Cocoa", 500, "500 g"},
		{"/api/stock/A%2541", "A%41", 7, "7 g"},
		{"/api/stock/Jaggery%2FGur", "Jaggery/Gur", 300, "300 g"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d", w.Code)
			}

			var level models.StockLevel
			if err := json.NewDecoder(w.Body).Decode(&level); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}

			if level.Name != tc.name || level.Grams != tc.grams || level.Display != tc.display {
				t.Errorf("got %+v, want %s %d %s", level, tc.name, tc.grams, tc.display)
			}
		})
	}
}

func TestAddStock(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedError  string
		ingredient     string
		wantGrams      int64
	}{
		{
			name:           "existing ingredient",
			body:           `{"ingredient":"Aata","amount":5000}`,
			expectedStatus: http.StatusOK,
			ingredient:     "Aata",
			wantGrams:      25000,
		},
		{
			name:           "new ingredient",
			body:           `{"ingredient":"Saffron","amount":25}`,
			expectedStatus: http.StatusOK,
			ingredient:     "Saffron",
			wantGrams:      25,
		},
		{
			name:           "zero amount",
			body:           `{"ingredient":"Aata","amount":0}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Amount must be a positive whole number of grams",
			ingredient:     "Aata",
			wantGrams:      20000,
		},
		{
			name:           "negative amount",
			body:           `{"ingredient":"Aata","amount":-100}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Amount must be a positive whole number of grams",
			ingredient:     "Aata",
			wantGrams:      20000,
		},
		{
			name:           "fractional amount",
			body:           `{"ingredient":"Aata","amount":12.5}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Amount must be a positive whole number of grams",
			ingredient:     "Aata",
			wantGrams:      20000,
		},
		{
			name:           "missing amount",
			body:           `{"ingredient":"Aata"}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Amount must be a positive whole number of grams",
			ingredient:     "Aata",
			wantGrams:      20000,
		},
		{
			name:           "missing ingredient",
			body:           `{"amount":100}`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Ingredient is required",
		},
		{
			name:           "invalid JSON",
			body:           "invalid json",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv()
			handler := NewStockHandler(env.stock, env.log)

			req := httptest.NewRequest(http.MethodPost, "/api/stock", bytes.NewReader([]byte(tt.body)))
			w := httptest.NewRecorder()

			handler.AddStock(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.expectedStatus)
			}

			if tt.expectedError != "" {
				var resp ErrorResponse
				if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
					t.Fatalf("failed to decode error response: %v", err)
				}
				if resp.Error != tt.expectedError {
					t.Errorf("error = %q, want %q", resp.Error, tt.expectedError)
				}
			}

			if tt.ingredient != "" {
				if got := env.store.Quantity(tt.ingredient); got != tt.wantGrams {
					t.Errorf("%s stock = %d, want %d", tt.ingredient, got, tt.wantGrams)
				}
			}
		})
	}
}
