package domain

import (
	"encoding/json"
	"strconv"
)

// readyMixCategories maps the vendor's numeric category ids to their display
// labels. The table mirrors the vendor's storefront taxonomy; it is a lookup
// table refreshed by hand when the vendor adds a line, not an API contract.
var readyMixCategories = map[int]string{
	181:  "Bircher",
	191:  "Früchte",
	201:  "Schoko",
	211:  "Sport",
	221:  "Bio",
	231:  "Balance",
	251:  "Liebe",
	261:  "Glutenfrei",
	281:  "Kinder",
	351:  "Paleo & Nüsse",
	421:  "Summer",
	451:  "Ostern",
	2031: "Vegan",
	2111: "DIE EISKÖNIGIN 2",
}

// CategoryLabel maps a catalog category id to its display label. Unmapped
// ids pass through as their decimal form.
func CategoryLabel(id int) string {
	if label, ok := readyMixCategories[id]; ok {
		return label
	}
	return strconv.Itoa(id)
}

// MixIngredient is one entry of a ready mix's ingredient list. The
// Ingredient pointer is a shared reference into the ingredient store, not an
// owned copy.
type MixIngredient struct {
	Ingredient *Ingredient `json:"ingredient"`
	Amount     float64     `json:"amount"`
	Grams      int         `json:"grams"`
}

// ReadyMix is the aggregate entity joined from one catalog record, one
// search record and zero or more pricing records. Immutable once assembled.
type ReadyMix struct {
	Name        string          `json:"name"`
	URL         string          `json:"url"`
	Category    string          `json:"category"`
	ProductType string          `json:"productType"`
	Flavour     string          `json:"flavour"`
	Grams       int             `json:"grams"`
	Nutrition   json.RawMessage `json:"nutrition"`
	Likes       int             `json:"likes"`
	Popularity  float64         `json:"popularity"`
	Filters     []string        `json:"filters"`

	// Ingredients is sorted descending by grams, ties keeping feed order.
	Ingredients []MixIngredient `json:"ingredients"`

	// TypeDistribution maps each ingredient category to its share of the
	// total ingredient grams. Empty when the ingredient grams sum to 0.
	TypeDistribution map[string]float64 `json:"ingredientTypeDistribution"`

	// Offers is sorted ascending by price.
	Offers []Offer `json:"offers"`

	// SingleOffer is the cheapest offer whose name encodes this mix's
	// weight, nil when no offer matches.
	SingleOffer *Offer `json:"singleOffer,omitempty"`
}
