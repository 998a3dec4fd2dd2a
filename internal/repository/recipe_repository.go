package repository

import (
	"context"
	"errors"
	"sort"

	"github.com/Lixing-Zhang/chitragupt/internal/models"
)

var (
	ErrRecipeNotFound = errors.New("recipe not found")
)

// RecipeRepository defines the interface for recipe book access
type RecipeRepository interface {
	GetAll(ctx context.Context) ([]models.Recipe, error)
	GetByName(ctx context.Context, name string) (*models.Recipe, error)
}

// InMemoryRecipeRepository implements RecipeRepository with an immutable in-memory book
type InMemoryRecipeRepository struct {
	recipes map[string]models.Recipe
}

// NewInMemoryRecipeRepository creates a recipe book from the given recipes.
// Later duplicates of a name replace earlier ones.
func NewInMemoryRecipeRepository(recipes []models.Recipe) *InMemoryRecipeRepository {
	book := make(map[string]models.Recipe, len(recipes))
	for _, recipe := range recipes {
		book[recipe.Name] = recipe.Clone()
	}

	return &InMemoryRecipeRepository{
		recipes: book,
	}
}

// GetAll returns all recipes sorted by name
func (r *InMemoryRecipeRepository) GetAll(ctx context.Context) ([]models.Recipe, error) {
	recipes := make([]models.Recipe, 0, len(r.recipes))
	for _, recipe := range r.recipes {
		recipes = append(recipes, recipe.Clone())
	}
	sort.Slice(recipes, func(i, j int) bool {
		return recipes[i].Name < recipes[j].Name
	})
	return recipes, nil
}

// GetByName returns a recipe by its name
func (r *InMemoryRecipeRepository) GetByName(ctx context.Context, name string) (*models.Recipe, error) {
	recipe, exists := r.recipes[name]
	if !exists {
		return nil, ErrRecipeNotFound
	}
	clone := recipe.Clone()
	return &clone, nil
}
