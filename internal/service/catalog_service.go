package service

import (
	"context"

	"github.com/Lixing-Zhang/chitragupt/internal/inventory"
	"github.com/Lixing-Zhang/chitragupt/internal/repository"
	"github.com/Lixing-Zhang/chitragupt/internal/seed"
)

// CatalogService exports the live inventory together with the recipe book
type CatalogService struct {
	store   *inventory.Store
	recipes repository.RecipeRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(store *inventory.Store, recipes repository.RecipeRepository) *CatalogService {
	return &CatalogService{
		store:   store,
		recipes: recipes,
	}
}

// Export returns the current catalog in the same shape it is loaded from
func (s *CatalogService) Export(ctx context.Context) (*seed.Catalog, error) {
	recipes, err := s.recipes.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	catalog := &seed.Catalog{
		Inventory: s.store.Snapshot(),
		Recipes:   make(map[string]map[string]int64, len(recipes)),
	}
	for _, recipe := range recipes {
		catalog.Recipes[recipe.Name] = recipe.Requirements
	}
	return catalog, nil
}
