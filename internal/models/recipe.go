package models

import "sort"

// Recipe is a named formula consuming fixed ingredient quantities per batch
type Recipe struct {
	Name         string           `json:"name"`
	Requirements map[string]int64 `json:"requirements"`
}

// Clone returns a deep copy so callers cannot mutate the recipe book
func (r Recipe) Clone() Recipe {
	reqs := make(map[string]int64, len(r.Requirements))
	for name, grams := range r.Requirements {
		reqs[name] = grams
	}
	return Recipe{Name: r.Name, Requirements: reqs}
}

// IngredientNames returns the required ingredient names sorted ascending
func (r Recipe) IngredientNames() []string {
	names := make([]string, 0, len(r.Requirements))
	for name := range r.Requirements {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
