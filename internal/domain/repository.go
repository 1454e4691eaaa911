package domain

import "context"

// IngredientCache defines the two-tier (memory + disk) ingredient store.
// The memory tier is authoritative for the process lifetime; the disk tier
// survives runs. A zero-length or missing disk record is a miss.
type IngredientCache interface {
	// Get consults the memory tier only.
	Get(id string) (*Ingredient, bool)
	// Load consults the disk tier, promoting a hit into the memory tier.
	// Returns ErrCacheMiss when no usable record exists.
	Load(id string) (*Ingredient, error)
	// Put persists the ingredient to disk and then publishes it to the
	// memory tier. The ingredient is not considered resolved until Put
	// has returned nil.
	Put(ing *Ingredient) error
}

// VendorAPI defines the boundary to the vendor's public endpoints: the
// three JSON feeds plus the two scraped HTML surfaces.
type VendorAPI interface {
	FetchCatalog(ctx context.Context) ([]CatalogRecord, error)
	FetchSearch(ctx context.Context) ([]SearchRecord, error)
	FetchOffers(ctx context.Context) ([]OfferRecord, error)
	FetchIngredientPage(ctx context.Context, id string) (*IngredientPage, error)
	// FetchIngredientIndex returns the ingredient-name to category mapping
	// scraped from the index page.
	FetchIngredientIndex(ctx context.Context) (map[string]string, error)
}
