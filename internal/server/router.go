package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Lixing-Zhang/chitragupt/internal/config"
	"github.com/Lixing-Zhang/chitragupt/internal/handlers"
	"github.com/Lixing-Zhang/chitragupt/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter registers every HTTP endpoint
func NewRouter(app *App, cfg *config.Config, log *slog.Logger) http.Handler {
	healthHandler := handlers.NewHealthHandler(log)
	stockHandler := handlers.NewStockHandler(app.Stock, log)
	productionHandler := handlers.NewProductionHandler(app.Production, log)
	catalogHandler := handlers.NewCatalogHandler(app.Catalog, log)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id", middleware.APIKeyHeader},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", healthHandler.ServeHTTP)

	r.Route("/api", func(r chi.Router) {
		r.Get("/stock", stockHandler.ListStock)
		r.Get("/stock/{ingredient}", stockHandler.GetStock)

		r.Get("/recipes", productionHandler.ListRecipes)
		r.Get("/recipes/{recipe}", productionHandler.GetRecipe)
		r.Get("/recipes/{recipe}/plan", productionHandler.PlanRecipe)

		r.Get("/catalog", catalogHandler.Export)

		// Writes change stock and need an API key
		r.Group(func(r chi.Router) {
			r.Use(middleware.APIKeyAuth(cfg.Auth))
			r.Post("/stock", stockHandler.AddStock)
			r.Post("/production", productionHandler.Produce)
		})
	})

	return r
}
