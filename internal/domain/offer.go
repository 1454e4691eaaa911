package domain

// Offer represents one normalized pricing-feed record. Immutable once built.
type Offer struct {
	ID                  int64   `json:"offerId"`
	Name                string  `json:"name"`
	Availability        bool    `json:"availability"`
	AvailableForHotspot bool    `json:"availableForHotspot"`
	Price               float64 `json:"price"`
	// OriginalPrice is the marketing price, falling back to the current
	// price when the feed carries none.
	OriginalPrice float64 `json:"originalPrice"`
	// Discount is (OriginalPrice - Price) / OriginalPrice, defined as 0
	// when OriginalPrice is 0.
	Discount     float64 `json:"discount"`
	PricePer100g float64 `json:"pricePer100g"`
	Description  string  `json:"description"`
}
