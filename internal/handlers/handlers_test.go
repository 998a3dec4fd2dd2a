package handlers

import (
	"log/slog"

	"github.com/Lixing-Zhang/chitragupt/internal/inventory"
	"github.com/Lixing-Zhang/chitragupt/internal/production"
	"github.com/Lixing-Zhang/chitragupt/internal/repository"
	"github.com/Lixing-Zhang/chitragupt/internal/seed"
	"github.com/Lixing-Zhang/chitragupt/internal/service"
	"github.com/Lixing-Zhang/chitragupt/pkg/logger"
)

const biscuit = "Aate Biscuit (62 pcs)"

type testEnv struct {
	store      *inventory.Store
	stock      *service.StockService
	production *service.ProductionService
	catalog    *service.CatalogService
	log        *slog.Logger
}

func newTestEnv() *testEnv {
	catalog := seed.Default()
	store := inventory.NewStore(catalog.Inventory)
	recipes := repository.NewInMemoryRecipeRepository(catalog.RecipeList())

	return &testEnv{
		store:      store,
		stock:      service.NewStockService(store),
		production: service.NewProductionService(recipes, production.NewEngine(store)),
		catalog:    service.NewCatalogService(store, recipes),
		log:        logger.New("error"),
	}
}
