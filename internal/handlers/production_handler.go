package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/chitragupt/internal/models"
	"github.com/Lixing-Zhang/chitragupt/internal/production"
	"github.com/Lixing-Zhang/chitragupt/internal/service"
)

// ProductionHandler handles recipe and production HTTP requests
type ProductionHandler struct {
	productionService *service.ProductionService
	log               *slog.Logger
}

// NewProductionHandler creates a new production handler
func NewProductionHandler(productionService *service.ProductionService, log *slog.Logger) *ProductionHandler {
	return &ProductionHandler{
		productionService: productionService,
		log:               log,
	}
}

// Produce handles POST /api/production
func (h *ProductionHandler) Produce(w http.ResponseWriter, r *http.Request) {
	var req models.ProductionRequest

	// Parse request body
	if err := decodeJSON(r, &req); err != nil {
		h.log.Warn("failed to decode production request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	batches, err := parseWholeNumber(req.Batches.String())
	if err != nil {
		h.writeProductionError(w, req.Recipe, production.ErrInvalidRequest)
		return
	}

	run, err := h.productionService.Produce(r.Context(), req.Recipe, batches)
	if err != nil {
		h.writeProductionError(w, req.Recipe, err)
		return
	}

	WriteJSON(w, http.StatusOK, run, h.log)
	h.log.Info("production committed", "run_id", run.ID, "recipe", run.Recipe, "batches", run.Batches)
}

// ListRecipes handles GET /api/recipes
func (h *ProductionHandler) ListRecipes(w http.ResponseWriter, r *http.Request) {
	recipes, err := h.productionService.ListRecipes(r.Context())
	if err != nil {
		h.log.Error("failed to list recipes", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, recipes, h.log)
}

// GetRecipe handles GET /api/recipes/{recipe}
func (h *ProductionHandler) GetRecipe(w http.ResponseWriter, r *http.Request) {
	name, ok := h.recipeParam(w, r)
	if !ok {
		return
	}

	recipe, err := h.productionService.GetRecipe(r.Context(), name)
	if err != nil {
		h.writeProductionError(w, name, err)
		return
	}

	WriteJSON(w, http.StatusOK, recipe, h.log)
}

// PlanRecipe handles GET /api/recipes/{recipe}/plan?batches=N
// Batches defaults to 1. Nothing is committed.
func (h *ProductionHandler) PlanRecipe(w http.ResponseWriter, r *http.Request) {
	name, ok := h.recipeParam(w, r)
	if !ok {
		return
	}

	batches := int64(1)
	if raw := r.URL.Query().Get("batches"); raw != "" {
		n, err := parseWholeNumber(raw)
		if err != nil {
			h.writeProductionError(w, name, production.ErrInvalidRequest)
			return
		}
		batches = n
	}

	plan, err := h.productionService.PlanProduction(r.Context(), name, batches)
	if err != nil {
		h.writeProductionError(w, name, err)
		return
	}

	WriteJSON(w, http.StatusOK, plan, h.log)
}

func (h *ProductionHandler) recipeParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	name, err := pathParam(r, "recipe")
	if err != nil || name == "" {
		WriteError(w, http.StatusBadRequest, "Invalid recipe supplied", h.log)
		return "", false
	}
	return name, true
}

// writeProductionError maps production failures to status codes
func (h *ProductionHandler) writeProductionError(w http.ResponseWriter, recipe string, err error) {
	var stockErr *production.InsufficientStockError

	switch {
	case errors.As(err, &stockErr):
		h.log.Info("production rejected", "recipe", recipe, "shortages", len(stockErr.Shortages))
		WriteJSON(w, http.StatusConflict, ErrorResponse{
			Error:     "Not enough stock",
			Shortages: stockErr.Shortages,
		}, h.log)
	case errors.Is(err, production.ErrInvalidRequest):
		WriteError(w, http.StatusBadRequest, "Batches must be a positive whole number", h.log)
	case errors.Is(err, service.ErrUnknownRecipe):
		WriteError(w, http.StatusNotFound, "Recipe not found", h.log)
	default:
		h.log.Error("production failed", "recipe", recipe, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
	}
}
