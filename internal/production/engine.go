// Package production decides whether a recipe can be made from current stock
// and consumes the ingredients when it can.
package production

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/Lixing-Zhang/chitragupt/internal/inventory"
	"github.com/Lixing-Zhang/chitragupt/internal/models"
)

var (
	ErrInvalidRequest    = errors.New("batch count must be a positive whole number")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// InsufficientStockError lists every ingredient that failed the feasibility check
type InsufficientStockError struct {
	Shortages []models.Shortage
}

func (e *InsufficientStockError) Error() string {
	parts := make([]string, 0, len(e.Shortages))
	for _, s := range e.Shortages {
		parts = append(parts, fmt.Sprintf("%s (missing %dg)", s.Ingredient, s.Deficit))
	}
	return "insufficient stock: " + strings.Join(parts, ", ")
}

// Is reports whether target is ErrInsufficientStock
func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

// Engine checks recipe requirements against the store and commits them
type Engine struct {
	store *inventory.Store
}

// NewEngine creates a production engine over store
func NewEngine(store *inventory.Store) *Engine {
	return &Engine{store: store}
}

// EvaluateAndCommit produces batches of recipe.
// Every requirement is checked before anything is decremented, and the check
// and the decrement happen under the same store lock. On failure the stock
// is left untouched.
func (e *Engine) EvaluateAndCommit(recipe models.Recipe, batches int64) error {
	required, err := totals(recipe, batches)
	if err != nil {
		return err
	}

	return e.store.Update(func(tx *inventory.Tx) error {
		if shortages := shortagesFor(tx.Quantity, required); len(shortages) > 0 {
			return &InsufficientStockError{Shortages: shortages}
		}
		tx.DecrementMany(required)
		return nil
	})
}

// Plan evaluates recipe against current stock without committing anything
func (e *Engine) Plan(recipe models.Recipe, batches int64) (*models.ProductionPlan, error) {
	required, err := totals(recipe, batches)
	if err != nil {
		return nil, err
	}

	stock := e.store.Snapshot()
	shortages := shortagesFor(func(name string) int64 { return stock[name] }, required)
	return &models.ProductionPlan{
		Recipe:    recipe.Name,
		Batches:   batches,
		Required:  required,
		Feasible:  len(shortages) == 0,
		Shortages: shortages,
	}, nil
}

// totals scales recipe requirements by batches
func totals(recipe models.Recipe, batches int64) (map[string]int64, error) {
	if batches <= 0 {
		return nil, ErrInvalidRequest
	}

	required := make(map[string]int64, len(recipe.Requirements))
	for name, perBatch := range recipe.Requirements {
		if perBatch < 0 {
			return nil, fmt.Errorf("%w: %s requirement %d is negative", ErrInvalidRequest, name, perBatch)
		}
		if perBatch > math.MaxInt64/batches {
			return nil, fmt.Errorf("%w: %d batches of %s overflows", ErrInvalidRequest, batches, name)
		}
		required[name] = perBatch * batches
	}
	return required, nil
}

// shortagesFor returns the deficit of every ingredient whose stock is below
// its requirement, sorted by ingredient name
func shortagesFor(available func(string) int64, required map[string]int64) []models.Shortage {
	var shortages []models.Shortage
	for name, need := range required {
		have := available(name)
		if have >= need {
			continue
		}
		shortages = append(shortages, models.Shortage{
			Ingredient: name,
			Required:   need,
			Available:  have,
			Deficit:    need - have,
		})
	}
	sort.Slice(shortages, func(i, j int) bool {
		return shortages[i].Ingredient < shortages[j].Ingredient
	})
	return shortages
}
