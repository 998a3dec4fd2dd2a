package service

import (
	"context"

	"github.com/Lixing-Zhang/chitragupt/internal/inventory"
	"github.com/Lixing-Zhang/chitragupt/internal/models"
	"github.com/Lixing-Zhang/chitragupt/pkg/units"
)

// StockService handles business logic for ingredient stock
type StockService struct {
	store *inventory.Store
}

// NewStockService creates a new stock service
func NewStockService(store *inventory.Store) *StockService {
	return &StockService{
		store: store,
	}
}

// ListStock returns every ingredient sorted by name
func (s *StockService) ListStock(ctx context.Context) ([]models.StockLevel, error) {
	levels := s.store.List()
	for i := range levels {
		levels[i].Display = units.FormatGrams(levels[i].Grams)
	}
	return levels, nil
}

// GetStock returns the level of one ingredient; unknown ingredients are empty
func (s *StockService) GetStock(ctx context.Context, name string) (*models.StockLevel, error) {
	return level(name, s.store.Quantity(name)), nil
}

// AddStock adds amount grams of an ingredient and returns its new level
func (s *StockService) AddStock(ctx context.Context, name string, amount int64) (*models.StockLevel, error) {
	grams, err := s.store.Add(name, amount)
	if err != nil {
		return nil, err
	}
	return level(name, grams), nil
}

func level(name string, grams int64) *models.StockLevel {
	return &models.StockLevel{
		Name:    name,
		Grams:   grams,
		Display: units.FormatGrams(grams),
	}
}
