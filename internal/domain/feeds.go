package domain

import "encoding/json"

// Wire shapes of the three vendor feeds. Decoding tolerates unknown extra
// fields; only the fields the join needs are declared.

// CatalogIngredientRef is one ingredient reference inside a catalog record.
type CatalogIngredientRef struct {
	ID              string  `json:"id"`
	Amount          float64 `json:"amount"`
	AmountMilligram int     `json:"amountMilligram"`
}

// CatalogRecord is one product from the catalog feed, keyed by product id.
type CatalogRecord struct {
	ID            int64                  `json:"id"`
	Name          string                 `json:"name"`
	URL           string                 `json:"url"`
	Category      int                    `json:"category"`
	Type          string                 `json:"type"`
	Ingredients   []CatalogIngredientRef `json:"ingredients"`
	Nutrition     json.RawMessage        `json:"nutrition"`
	Flavour       string                 `json:"flavour"`
	Weight        int                    `json:"weight"`
	Likes         int                    `json:"likes"`
	ArticleNumber string                 `json:"articleNumber"`
}

// SearchBrand is the brand object nested in a search record.
type SearchBrand struct {
	Key string `json:"key"`
}

// SearchRecord is one entry from the search/ranking feed, keyed by product
// id. Filter keys double as marker tags for product-line selection.
type SearchRecord struct {
	ID         int64             `json:"id"`
	Type       string            `json:"type"`
	Brand      SearchBrand       `json:"brand"`
	Filter     map[string]string `json:"filter"`
	Popularity float64           `json:"popularity"`
}

// OfferRecord is one raw entry from the pricing feed, keyed by article
// number. PriceMarketing is nullable in the feed.
type OfferRecord struct {
	ID                   int64    `json:"id"`
	Name                 string   `json:"name"`
	Availability         bool     `json:"availability"`
	AvailableForHotspot  bool     `json:"availableForHotspot"`
	Price                float64  `json:"price"`
	PriceMarketing       *float64 `json:"priceMarketing"`
	PriceQuotation       string   `json:"priceQuotation"`
	Description          string   `json:"description"`
	ProductArticleNumber string   `json:"productArticleNumber"`
}
