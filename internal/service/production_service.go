package service

import (
	"context"
	"errors"
	"time"

	"github.com/Lixing-Zhang/chitragupt/internal/models"
	"github.com/Lixing-Zhang/chitragupt/internal/production"
	"github.com/Lixing-Zhang/chitragupt/internal/repository"
	"github.com/google/uuid"
)

var (
	ErrUnknownRecipe = errors.New("unknown recipe")
)

// ProductionService resolves recipes and runs them through the production engine
type ProductionService struct {
	recipes repository.RecipeRepository
	engine  *production.Engine
	now     func() time.Time
}

// NewProductionService creates a new production service
func NewProductionService(recipes repository.RecipeRepository, engine *production.Engine) *ProductionService {
	return &ProductionService{
		recipes: recipes,
		engine:  engine,
		now:     time.Now,
	}
}

// Produce runs batches of the named recipe.
// On success the returned run lists what was consumed; on failure nothing changed.
func (s *ProductionService) Produce(ctx context.Context, recipeName string, batches int64) (*models.ProductionRun, error) {
	recipe, err := s.resolve(ctx, recipeName)
	if err != nil {
		return nil, err
	}

	if err := s.engine.EvaluateAndCommit(*recipe, batches); err != nil {
		return nil, err
	}

	consumed := make(map[string]int64, len(recipe.Requirements))
	for name, perBatch := range recipe.Requirements {
		consumed[name] = perBatch * batches
	}

	return &models.ProductionRun{
		ID:         generateRunID(),
		Recipe:     recipe.Name,
		Batches:    batches,
		Consumed:   consumed,
		ProducedAt: s.now().UTC(),
	}, nil
}

// PlanProduction reports whether batches of the named recipe could be produced now
func (s *ProductionService) PlanProduction(ctx context.Context, recipeName string, batches int64) (*models.ProductionPlan, error) {
	recipe, err := s.resolve(ctx, recipeName)
	if err != nil {
		return nil, err
	}
	return s.engine.Plan(*recipe, batches)
}

// ListRecipes returns the recipe book
func (s *ProductionService) ListRecipes(ctx context.Context) ([]models.Recipe, error) {
	return s.recipes.GetAll(ctx)
}

// GetRecipe returns one recipe by name
func (s *ProductionService) GetRecipe(ctx context.Context, recipeName string) (*models.Recipe, error) {
	return s.resolve(ctx, recipeName)
}

func (s *ProductionService) resolve(ctx context.Context, recipeName string) (*models.Recipe, error) {
	recipe, err := s.recipes.GetByName(ctx, recipeName)
	if errors.Is(err, repository.ErrRecipeNotFound) {
		return nil, ErrUnknownRecipe
	}
	if err != nil {
		return nil, err
	}
	return recipe, nil
}

// generateRunID generates a unique production run ID using UUID
func generateRunID() string {
	return uuid.New().String()
}
