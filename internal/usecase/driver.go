package usecase

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/RikuXan/mymuesli-analyzer/internal/domain"
)

// searchTypeProduct is the search-feed entry type carrying products.
const searchTypeProduct = "product"

// CatalogJoinDriver fetches the three vendor feeds and joins them into the
// ready-mix collection. BuildAll is memoized: the feeds are fetched once
// per process, later calls return the cached collection.
type CatalogJoinDriver struct {
	api       domain.VendorAPI
	assembler *Assembler
	brandKey  string
	markerTag string

	mu    sync.Mutex
	mixes []*domain.ReadyMix
	built bool
}

// NewCatalogJoinDriver creates a driver. brandKey selects the vendor's own
// products in the search feed; markerTag is the filter key identifying the
// ready-mix product line.
func NewCatalogJoinDriver(api domain.VendorAPI, assembler *Assembler, brandKey, markerTag string) *CatalogJoinDriver {
	return &CatalogJoinDriver{
		api:       api,
		assembler: assembler,
		brandKey:  brandKey,
		markerTag: markerTag,
	}
}

// BuildAll returns the full ready-mix collection, fetching and joining the
// feeds on first call. There is no partial-result mode: any failure aborts
// the build and leaves the driver unbuilt, so a later call starts over.
func (d *CatalogJoinDriver) BuildAll(ctx context.Context) ([]*domain.ReadyMix, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.built {
		return d.mixes, nil
	}

	mixes, err := d.build(ctx)
	if err != nil {
		return nil, err
	}

	d.mixes = mixes
	d.built = true
	return d.mixes, nil
}

func (d *CatalogJoinDriver) build(ctx context.Context) ([]*domain.ReadyMix, error) {
	catalog, err := d.api.FetchCatalog(ctx)
	if err != nil {
		return nil, err
	}
	search, err := d.api.FetchSearch(ctx)
	if err != nil {
		return nil, err
	}
	offers, err := d.api.FetchOffers(ctx)
	if err != nil {
		return nil, err
	}

	var mixes []*domain.ReadyMix
	for _, sr := range search {
		if !d.isReadyMixEntry(sr) {
			continue
		}

		cr, err := catalogByID(catalog, sr.ID)
		if err != nil {
			return nil, err
		}

		mix, err := d.assembler.Assemble(ctx, cr, sr, offersByArticle(offers, cr.ArticleNumber))
		if err != nil {
			return nil, err
		}
		mixes = append(mixes, mix)
	}

	log.Printf("[driver] assembled %d ready mixes from %d search entries", len(mixes), len(search))
	return mixes, nil
}

// isReadyMixEntry reports whether a search entry belongs to the target
// product line: a product of the configured brand tagged with the marker.
func (d *CatalogJoinDriver) isReadyMixEntry(sr domain.SearchRecord) bool {
	if sr.Type != searchTypeProduct || sr.Brand.Key != d.brandKey {
		return false
	}
	_, tagged := sr.Filter[d.markerTag]
	return tagged
}

// catalogByID finds the catalog counterpart of a search entry. A missing
// counterpart is a data inconsistency between the feeds, not a recoverable
// condition.
func catalogByID(catalog []domain.CatalogRecord, id int64) (domain.CatalogRecord, error) {
	for _, cr := range catalog {
		if cr.ID == id {
			return cr, nil
		}
	}
	return domain.CatalogRecord{}, fmt.Errorf("%w: product %d", domain.ErrCatalogMismatch, id)
}

// offersByArticle collects every pricing record for an article number.
// Zero matches is valid: the product is currently unpriced.
func offersByArticle(offers []domain.OfferRecord, articleNumber string) []domain.OfferRecord {
	var matched []domain.OfferRecord
	for _, offer := range offers {
		if offer.ProductArticleNumber == articleNumber {
			matched = append(matched, offer)
		}
	}
	return matched
}
