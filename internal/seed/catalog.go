// Package seed loads the inventory and recipe book a process starts with.
//
// A catalog can come from the built-in sample, a local file or an HTTP URL,
// and is written as YAML, JSON or JSON with comments. It is read once at
// startup; nothing in this package writes state back.
package seed

import (
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/Lixing-Zhang/chitragupt/internal/models"
)

// Format identifies a catalog encoding
type Format string

const (
	FormatYAML  Format = "yaml"
	FormatJSON  Format = "json"
	FormatJSONC Format = "jsonc"
)

var (
	ErrUnknownFormat  = errors.New("unknown catalog format")
	ErrInvalidCatalog = errors.New("invalid catalog")
)

// Catalog is the serializable inventory and recipe book
type Catalog struct {
	Inventory map[string]int64            `json:"inventory" yaml:"inventory"`
	Recipes   map[string]map[string]int64 `json:"recipes" yaml:"recipes"`
}

// Default returns the sample bakery catalog
func Default() *Catalog {
	return &Catalog{
		Inventory: map[string]int64{
			"Aata":        20000,
			"Maida":       15000,
			"Ghee":        10000,
			"Cheeni":      12000,
			"Custard":     2000,
			"Milk Powder": 1000,
		},
		Recipes: map[string]map[string]int64{
			"Aate Biscuit (62 pcs)": {
				"Aata":        6000,
				"Maida":       6000,
				"Ghee":        5500,
				"Cheeni":      5500,
				"Custard":     500,
				"Milk Powder": 200,
			},
		},
	}
}

// RecipeList returns the recipe book as models sorted by name
func (c *Catalog) RecipeList() []models.Recipe {
	recipes := make([]models.Recipe, 0, len(c.Recipes))
	for name, reqs := range c.Recipes {
		recipes = append(recipes, models.Recipe{Name: name, Requirements: reqs}.Clone())
	}
	sort.Slice(recipes, func(i, j int) bool {
		return recipes[i].Name < recipes[j].Name
	})
	return recipes
}

// Validate checks names and quantities, reporting every problem found
func (c *Catalog) Validate() error {
	var errs []error

	for name, grams := range c.Inventory {
		if err := checkName("ingredient", name); err != nil {
			errs = append(errs, err)
		}
		if grams < 0 {
			errs = append(errs, fmt.Errorf("ingredient %q: stock %d is negative", name, grams))
		}
	}

	for recipe, reqs := range c.Recipes {
		if err := checkName("recipe", recipe); err != nil {
			errs = append(errs, err)
		}
		for ingredient, grams := range reqs {
			if err := checkName("ingredient", ingredient); err != nil {
				errs = append(errs, fmt.Errorf("recipe %q: %w", recipe, err))
			}
			if grams < 0 {
				errs = append(errs, fmt.Errorf("recipe %q: requirement %d for %q is negative", recipe, grams, ingredient))
			}
		}
	}

	if len(errs) == 0 {
		return nil
	}
	sort.Slice(errs, func(i, j int) bool { return errs[i].Error() < errs[j].Error() })
	return fmt.Errorf("%w: %w", ErrInvalidCatalog, errors.Join(errs...))
}

func checkName(kind, name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("%s name is blank", kind)
	}
	if trimmed != name {
		return fmt.Errorf("%s name %q has surrounding whitespace", kind, name)
	}
	return nil
}

// FormatFromPath picks a format from a file or URL path extension,
// ignoring a trailing .gz
func FormatFromPath(p string) (Format, error) {
	p = strings.TrimSuffix(strings.ToLower(p), ".gz")
	switch path.Ext(p) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".jsonc":
		return FormatJSONC, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path.Ext(p))
	}
}

// Parse decodes and validates a catalog
func Parse(data []byte, format Format) (*Catalog, error) {
	var catalog Catalog

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &catalog); err != nil {
			return nil, fmt.Errorf("parsing catalog yaml: %w", err)
		}
	case FormatJSON, FormatJSONC:
		if err := json.Unmarshal(jsonc.ToJSON(data), &catalog); err != nil {
			return nil, fmt.Errorf("parsing catalog json: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if catalog.Inventory == nil {
		catalog.Inventory = map[string]int64{}
	}
	if catalog.Recipes == nil {
		catalog.Recipes = map[string]map[string]int64{}
	}

	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	return &catalog, nil
}

// Marshal encodes a catalog. JSONC is written as plain JSON.
func Marshal(catalog *Catalog, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(catalog)
	case FormatJSON, FormatJSONC:
		return json.MarshalIndent(catalog, "", "  ")
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
