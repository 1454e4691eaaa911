package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/RikuXan/mymuesli-analyzer/internal/domain"
	"golang.org/x/sync/singleflight"
)

// IngredientResolver materializes ingredient ids into Ingredient records.
// Resolution order: memory tier, disk tier, fetch from the vendor page.
// A singleflight group keyed by id guarantees at most one fetch-and-persist
// per ingredient is ever in flight; concurrent callers for the same id share
// its result.
type IngredientResolver struct {
	api        domain.VendorAPI
	cache      domain.IngredientCache
	classifier *TypeClassifier
	flight     singleflight.Group
}

// NewIngredientResolver creates a resolver over the given vendor boundary,
// cache and classifier.
func NewIngredientResolver(api domain.VendorAPI, cache domain.IngredientCache, classifier *TypeClassifier) *IngredientResolver {
	return &IngredientResolver{
		api:        api,
		cache:      cache,
		classifier: classifier,
	}
}

// Resolve returns the Ingredient for id. Flow: memory -> disk -> fetch,
// persisting a fresh fetch to disk before returning it. A fetch or parse
// failure propagates; nothing partial is ever cached.
func (r *IngredientResolver) Resolve(ctx context.Context, id string) (*domain.Ingredient, error) {
	if id == "" {
		return nil, domain.ErrInvalidRequest
	}

	if ing, ok := r.cache.Get(id); ok {
		return ing, nil
	}

	v, err, _ := r.flight.Do(id, func() (interface{}, error) {
		// A concurrent caller may have resolved id while we waited.
		if ing, ok := r.cache.Get(id); ok {
			return ing, nil
		}

		ing, err := r.cache.Load(id)
		if err == nil {
			return ing, nil
		}
		if !errors.Is(err, domain.ErrCacheMiss) {
			return nil, err
		}

		return r.fetch(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.Ingredient), nil
}

// fetch pulls the ingredient page, classifies it and persists the record.
func (r *IngredientResolver) fetch(ctx context.Context, id string) (*domain.Ingredient, error) {
	page, err := r.api.FetchIngredientPage(ctx, id)
	if err != nil {
		return nil, err
	}

	ing := &domain.Ingredient{
		ID:             id,
		Name:           page.Name,
		Subtitle:       page.Subtitle,
		Type:           r.classifier.Classify(page.Name),
		Hints:          page.Hints,
		Description:    page.Description,
		SubIngredients: page.SubIngredients,
	}

	if err := r.cache.Put(ing); err != nil {
		return nil, fmt.Errorf("persisting ingredient %s: %w", id, err)
	}
	return ing, nil
}
