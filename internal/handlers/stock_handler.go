package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/chitragupt/internal/inventory"
	"github.com/Lixing-Zhang/chitragupt/internal/models"
	"github.com/Lixing-Zhang/chitragupt/internal/service"
)

// StockHandler handles ingredient stock HTTP requests
type StockHandler struct {
	service *service.StockService
	logger  *slog.Logger
}

// NewStockHandler creates a new stock handler
func NewStockHandler(service *service.StockService, logger *slog.Logger) *StockHandler {
	return &StockHandler{
		service: service,
		logger:  logger,
	}
}

// ListStock handles GET /api/stock
// Returns every ingredient sorted by name
func (h *StockHandler) ListStock(w http.ResponseWriter, r *http.Request) {
	levels, err := h.service.ListStock(r.Context())
	if err != nil {
		h.logger.Error("failed to list stock", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, levels, h.logger)
}

// GetStock handles GET /api/stock/{ingredient}
// Unknown ingredients are reported with zero grams, not as missing
func (h *StockHandler) GetStock(w http.ResponseWriter, r *http.Request) {
	name, err := pathParam(r, "ingredient")
	if err != nil || name == "" {
		WriteError(w, http.StatusBadRequest, "Invalid ingredient supplied", h.logger)
		return
	}

	level, err := h.service.GetStock(r.Context(), name)
	if err != nil {
		h.logger.Error("failed to get stock", "ingredient", name, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	WriteJSON(w, http.StatusOK, level, h.logger)
}

// AddStock handles POST /api/stock
func (h *StockHandler) AddStock(w http.ResponseWriter, r *http.Request) {
	var req models.AddStockRequest

	if err := decodeJSON(r, &req); err != nil {
		h.logger.Warn("failed to decode add stock request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	amount, err := parseWholeNumber(req.Amount.String())
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Amount must be a positive whole number of grams", h.logger)
		return
	}

	level, err := h.service.AddStock(r.Context(), req.Ingredient, amount)
	if err != nil {
		switch {
		case errors.Is(err, inventory.ErrInvalidAmount):
			WriteError(w, http.StatusBadRequest, "Amount must be a positive whole number of grams", h.logger)
		case errors.Is(err, inventory.ErrInvalidIngredient):
			WriteError(w, http.StatusBadRequest, "Ingredient is required", h.logger)
		default:
			h.logger.Error("failed to add stock", "ingredient", req.Ingredient, "error", err)
			WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		}
		return
	}

	WriteJSON(w, http.StatusOK, level, h.logger)
	h.logger.Info("stock added", "ingredient", level.Name, "amount_g", amount, "on_hand_g", level.Grams)
}
