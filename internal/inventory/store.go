// Package inventory holds the ingredient stock of a running process.
//
// A Store is created once at startup and handed to whatever needs it.
// Unknown ingredients are not an error: they read as zero grams on hand.
package inventory

import (
	"errors"
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/Lixing-Zhang/chitragupt/internal/models"
)

var (
	ErrInvalidAmount     = errors.New("amount must be a positive whole number of grams")
	ErrInvalidIngredient = errors.New("ingredient name is required")
)

// Store is an in-memory mapping from ingredient name to grams on hand
type Store struct {
	mu    sync.RWMutex
	stock map[string]int64
}

// NewStore creates a store seeded with a copy of initial
func NewStore(initial map[string]int64) *Store {
	stock := make(map[string]int64, len(initial))
	for name, grams := range initial {
		stock[name] = grams
	}
	return &Store{stock: stock}
}

// Quantity returns grams on hand for name, or 0 when name is unknown
func (s *Store) Quantity(name string) int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stock[name]
}

// Add increases the stock of name by amount and returns the new quantity.
// A new name starts from zero.
func (s *Store) Add(name string, amount int64) (int64, error) {
	if strings.TrimSpace(name) == "" {
		return 0, ErrInvalidIngredient
	}
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.stock[name]
	if current > math.MaxInt64-amount {
		return 0, ErrInvalidAmount
	}
	s.stock[name] = current + amount
	return s.stock[name], nil
}

// List returns every ingredient sorted by name
func (s *Store) List() []models.StockLevel {
	s.mu.RLock()
	defer s.mu.RUnlock()

	levels := make([]models.StockLevel, 0, len(s.stock))
	for name, grams := range s.stock {
		levels = append(levels, models.StockLevel{Name: name, Grams: grams})
	}
	sort.Slice(levels, func(i, j int) bool {
		return levels[i].Name < levels[j].Name
	})
	return levels
}

// Snapshot returns a copy of the current stock
func (s *Store) Snapshot() map[string]int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]int64, len(s.stock))
	for name, grams := range s.stock {
		out[name] = grams
	}
	return out
}

// DecrementMany subtracts every amount in one step.
// It does not check feasibility; callers that need the check use Update.
func (s *Store) DecrementMany(amounts map[string]int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.decrementLocked(amounts)
}

// Update runs fn with exclusive access to the stock.
// No other reader or writer observes the store until fn returns.
func (s *Store) Update(fn func(tx *Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&Tx{store: s})
}

func (s *Store) decrementLocked(amounts map[string]int64) {
	for name, grams := range amounts {
		if grams == 0 {
			continue
		}
		s.stock[name] -= grams
	}
}

// Tx is the view of the store handed to Update callbacks.
// It must not be retained after the callback returns.
type Tx struct {
	store *Store
}

// Quantity returns grams on hand for name, or 0 when name is unknown
func (tx *Tx) Quantity(name string) int64 {
	return tx.store.stock[name]
}

// DecrementMany subtracts every amount in one step
func (tx *Tx) DecrementMany(amounts map[string]int64) {
	tx.store.decrementLocked(amounts)
}
