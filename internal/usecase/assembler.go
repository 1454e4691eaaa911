package usecase

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/RikuXan/mymuesli-analyzer/internal/domain"
)

// Assembler joins one catalog record, one search record and zero or more
// pricing records into a ReadyMix aggregate, resolving every referenced
// ingredient on the way.
type Assembler struct {
	baseURL  string
	resolver *IngredientResolver
}

// NewAssembler creates an assembler. baseURL prefixes the catalog's
// relative product slugs.
func NewAssembler(baseURL string, resolver *IngredientResolver) *Assembler {
	return &Assembler{
		baseURL:  baseURL,
		resolver: resolver,
	}
}

// Assemble builds one ReadyMix. Ingredient resolution and offer parsing
// failures propagate unchanged; a ReadyMix is either complete or not built.
func (a *Assembler) Assemble(ctx context.Context, catalog domain.CatalogRecord, search domain.SearchRecord, offerRecords []domain.OfferRecord) (*domain.ReadyMix, error) {
	ingredients, err := a.resolveIngredients(ctx, catalog)
	if err != nil {
		return nil, err
	}

	offers, err := parseOffers(offerRecords)
	if err != nil {
		return nil, fmt.Errorf("product %d: %w", catalog.ID, err)
	}

	return &domain.ReadyMix{
		Name:             catalog.Name,
		URL:              a.baseURL + catalog.URL,
		Category:         domain.CategoryLabel(catalog.Category),
		ProductType:      catalog.Type,
		Flavour:          catalog.Flavour,
		Grams:            catalog.Weight,
		Nutrition:        catalog.Nutrition,
		Likes:            catalog.Likes,
		Popularity:       search.Popularity,
		Filters:          filterTags(search),
		Ingredients:      ingredients,
		TypeDistribution: typeDistribution(ingredients),
		Offers:           offers,
		SingleOffer:      singleOffer(offers, catalog.Weight),
	}, nil
}

// resolveIngredients materializes the catalog's ingredient references and
// sorts them descending by grams. The sort is stable: equal-gram entries
// keep their catalog order.
func (a *Assembler) resolveIngredients(ctx context.Context, catalog domain.CatalogRecord) ([]domain.MixIngredient, error) {
	ingredients := make([]domain.MixIngredient, 0, len(catalog.Ingredients))
	for _, ref := range catalog.Ingredients {
		ing, err := a.resolver.Resolve(ctx, ref.ID)
		if err != nil {
			return nil, fmt.Errorf("product %d: %w", catalog.ID, err)
		}
		ingredients = append(ingredients, domain.MixIngredient{
			Ingredient: ing,
			Amount:     ref.Amount,
			Grams:      ref.AmountMilligram / 1000,
		})
	}

	sort.SliceStable(ingredients, func(i, j int) bool {
		return ingredients[i].Grams > ingredients[j].Grams
	})
	return ingredients, nil
}

// typeDistribution computes each ingredient category's share of the total
// grams. Returns an empty map when the grams sum to 0, never NaN entries.
func typeDistribution(ingredients []domain.MixIngredient) map[string]float64 {
	total := 0
	byType := make(map[string]int)
	for _, mi := range ingredients {
		total += mi.Grams
		byType[mi.Ingredient.Type] += mi.Grams
	}

	distribution := make(map[string]float64)
	if total == 0 {
		return distribution
	}
	for t, grams := range byType {
		distribution[t] = float64(grams) / float64(total)
	}
	return distribution
}

// parseOffers normalizes the raw pricing records and sorts them ascending
// by price.
func parseOffers(records []domain.OfferRecord) ([]domain.Offer, error) {
	offers := make([]domain.Offer, 0, len(records))
	for _, raw := range records {
		offer, err := ParseOffer(raw)
		if err != nil {
			return nil, err
		}
		offers = append(offers, offer)
	}

	sort.SliceStable(offers, func(i, j int) bool {
		return offers[i].Price < offers[j].Price
	})
	return offers, nil
}

// singleOffer picks the first offer, in ascending price order, whose name
// encodes the product's weight. Nil when no offer matches.
func singleOffer(offers []domain.Offer, weight int) *domain.Offer {
	for i := range offers {
		if offerMatchesWeight(offers[i].Name, weight) {
			return &offers[i]
		}
	}
	return nil
}

// offerMatchesWeight reports whether an offer name textually encodes the
// given product weight, e.g. "Bircher Müsli 500g". The pricing feed carries
// no structured weight field, so the substring match is the only available
// association; it lives behind this predicate so a structured match can
// replace it if the feed ever grows one.
func offerMatchesWeight(name string, weightGrams int) bool {
	return strings.Contains(name, strconv.Itoa(weightGrams)+"g")
}

// filterTags flattens a search record's filter values into a sorted tag
// list. The feed delivers them as a map, so sorting keeps output stable.
func filterTags(search domain.SearchRecord) []string {
	tags := make([]string, 0, len(search.Filter))
	for _, v := range search.Filter {
		tags = append(tags, v)
	}
	sort.Strings(tags)
	return tags
}
