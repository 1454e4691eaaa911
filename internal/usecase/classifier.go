package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/RikuXan/mymuesli-analyzer/internal/domain"
)

// TypeClassifier maps ingredient names to their category. The mapping is
// scraped once, eagerly, from the vendor's ingredient index page and is
// read-only afterwards.
type TypeClassifier struct {
	types map[string]string
}

// NewTypeClassifier builds the classifier from the index page. Construction
// fails when the page cannot be fetched or parsed; the classifier is a
// startup dependency of every resolution.
func NewTypeClassifier(ctx context.Context, api domain.VendorAPI) (*TypeClassifier, error) {
	types, err := api.FetchIngredientIndex(ctx)
	if err != nil {
		return nil, fmt.Errorf("building type classifier: %w", err)
	}
	return &TypeClassifier{types: types}, nil
}

// Classify returns the category for an ingredient name. Names absent from
// the index classify as CategoryUnknown, never as an error.
func (c *TypeClassifier) Classify(name string) string {
	if t, ok := c.types[name]; ok {
		return t
	}
	return domain.CategoryUnknown
}

// Categories returns the sorted set of known categories, including
// CategoryUnknown.
func (c *TypeClassifier) Categories() []string {
	seen := map[string]bool{domain.CategoryUnknown: true}
	for _, t := range c.types {
		seen[t] = true
	}

	categories := make([]string, 0, len(seen))
	for t := range seen {
		categories = append(categories, t)
	}
	sort.Strings(categories)
	return categories
}
