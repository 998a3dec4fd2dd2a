package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/chitragupt/internal/seed"
	"github.com/Lixing-Zhang/chitragupt/internal/service"
)

// CatalogHandler serves the current inventory and recipe book as a downloadable catalog
type CatalogHandler struct {
	service *service.CatalogService
	logger  *slog.Logger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(service *service.CatalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		logger:  logger,
	}
}

// Export handles GET /api/catalog?format=yaml|json
// The body can be fed back as a seed source on the next start
func (h *CatalogHandler) Export(w http.ResponseWriter, r *http.Request) {
	format := seed.FormatJSON
	contentType := "application/json"

	switch r.URL.Query().Get("format") {
	case "", "json":
	case "yaml", "yml":
		format = seed.FormatYAML
		contentType = "application/yaml"
	default:
		WriteError(w, http.StatusBadRequest, "Format must be json or yaml", h.logger)
		return
	}

	catalog, err := h.service.Export(r.Context())
	if err != nil {
		h.logger.Error("failed to export catalog", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	body, err := seed.Marshal(catalog, format)
	if err != nil {
		h.logger.Error("failed to encode catalog", "format", format, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="chitragupt-catalog.`+string(format)+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		h.logger.Error("failed to write catalog", "error", err)
	}
}
