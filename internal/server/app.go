// Package server assembles the inventory core and its HTTP API.
package server

import (
	"github.com/Lixing-Zhang/chitragupt/internal/inventory"
	"github.com/Lixing-Zhang/chitragupt/internal/production"
	"github.com/Lixing-Zhang/chitragupt/internal/repository"
	"github.com/Lixing-Zhang/chitragupt/internal/seed"
	"github.com/Lixing-Zhang/chitragupt/internal/service"
)

// App owns the single inventory store of a process and the services built on it
type App struct {
	Store      *inventory.Store
	Recipes    repository.RecipeRepository
	Engine     *production.Engine
	Stock      *service.StockService
	Production *service.ProductionService
	Catalog    *service.CatalogService
}

// NewApp builds the store and services from a loaded catalog
func NewApp(catalog *seed.Catalog) *App {
	store := inventory.NewStore(catalog.Inventory)
	recipes := repository.NewInMemoryRecipeRepository(catalog.RecipeList())
	engine := production.NewEngine(store)

	return &App{
		Store:      store,
		Recipes:    recipes,
		Engine:     engine,
		Stock:      service.NewStockService(store),
		Production: service.NewProductionService(recipes, engine),
		Catalog:    service.NewCatalogService(store, recipes),
	}
}
