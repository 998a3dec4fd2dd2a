package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Lixing-Zhang/chitragupt/internal/models"
	"github.com/go-chi/chi/v5"
)

// ErrorResponse is the JSON body of every failed request
type ErrorResponse struct {
	Error     string            `json:"error"`
	Shortages []models.Shortage `json:"shortages,omitempty"`
}

var errNotWholeNumber = errors.New("not a whole number")

// WriteJSON writes a JSON response
func WriteJSON(w http.ResponseWriter, status int, data interface{}, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", "error", err)
	}
}

// WriteError writes an error response in JSON format
func WriteError(w http.ResponseWriter, status int, message string, logger *slog.Logger) {
	WriteJSON(w, status, ErrorResponse{Error: message}, logger)
}

// parseWholeNumber parses a JSON number or query value that must be an integer.
// Fractional and exponent forms such as "1.5" or "3e0" are rejected.
func parseWholeNumber(raw string) (int64, error) {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errNotWholeNumber
	}
	return n, nil
}

// decodeJSON decodes a request body, keeping numbers as json.Number
func decodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	return dec.Decode(dst)
}

// pathParam returns a URL parameter in decoded form.
// chi matches on RawPath when the request carries one, leaving the
// parameter escaped; otherwise it matches on the already decoded Path.
func pathParam(r *http.Request, key string) (string, error) {
	value := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return value, nil
	}
	return url.PathUnescape(value)
}
