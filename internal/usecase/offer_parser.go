package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/RikuXan/mymuesli-analyzer/internal/domain"
)

// pricePer100gSuffix is the unit suffix of the localized price quotation
// string ("3,49 €/100g").
const pricePer100gSuffix = "€/100g"

// ParseOffer converts one raw pricing-feed record into a normalized Offer.
// Pure function, no I/O. The original price falls back to the current price
// when the feed carries no marketing price.
func ParseOffer(raw domain.OfferRecord) (domain.Offer, error) {
	pricePer100g, err := parsePricePer100g(raw.PriceQuotation)
	if err != nil {
		return domain.Offer{}, fmt.Errorf("offer %d: %w", raw.ID, err)
	}

	original := raw.Price
	if raw.PriceMarketing != nil && *raw.PriceMarketing != 0 {
		original = *raw.PriceMarketing
	}

	return domain.Offer{
		ID:                  raw.ID,
		Name:                raw.Name,
		Availability:        raw.Availability,
		AvailableForHotspot: raw.AvailableForHotspot,
		Price:               raw.Price,
		OriginalPrice:       original,
		Discount:            discount(original, raw.Price),
		PricePer100g:        pricePer100g,
		Description:         raw.Description,
	}, nil
}

// discount computes the fraction saved against the original price. Defined
// as 0 when the original price is 0, so a free or placeholder record never
// divides by zero.
func discount(original, current float64) float64 {
	if original == 0 {
		return 0
	}
	return (original - current) / original
}

// parsePricePer100g parses the localized "X,XX €/100g" quotation string.
// The unit suffix is required; the decimal separator is a comma.
func parsePricePer100g(s string) (float64, error) {
	trimmed := strings.TrimSpace(s)
	if !strings.HasSuffix(trimmed, pricePer100gSuffix) {
		return 0, fmt.Errorf("%w: price quotation %q lacks %q suffix", domain.ErrParse, s, pricePer100gSuffix)
	}

	number := strings.TrimSpace(strings.TrimSuffix(trimmed, pricePer100gSuffix))
	number = strings.ReplaceAll(number, ",", ".")

	value, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: price quotation %q is not numeric", domain.ErrParse, s)
	}
	return value, nil
}
