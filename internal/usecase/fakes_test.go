package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/RikuXan/mymuesli-analyzer/internal/domain"
	"github.com/RikuXan/mymuesli-analyzer/internal/infrastructure/cache"
)

// FakeVendorAPI is a canned-data implementation of domain.VendorAPI that
// counts fetches per endpoint.
type FakeVendorAPI struct {
	mu sync.Mutex

	catalog []domain.CatalogRecord
	search  []domain.SearchRecord
	offers  []domain.OfferRecord
	index   map[string]string
	pages   map[string]*domain.IngredientPage

	catalogCalls int
	searchCalls  int
	offersCalls  int
	pageCalls    map[string]int

	pageErr error
	feedErr error
}

func NewFakeVendorAPI() *FakeVendorAPI {
	return &FakeVendorAPI{
		index:     make(map[string]string),
		pages:     make(map[string]*domain.IngredientPage),
		pageCalls: make(map[string]int),
	}
}

func (f *FakeVendorAPI) FetchCatalog(ctx context.Context) ([]domain.CatalogRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.catalogCalls++
	if f.feedErr != nil {
		return nil, f.feedErr
	}
	return f.catalog, nil
}

func (f *FakeVendorAPI) FetchSearch(ctx context.Context) ([]domain.SearchRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searchCalls++
	if f.feedErr != nil {
		return nil, f.feedErr
	}
	return f.search, nil
}

func (f *FakeVendorAPI) FetchOffers(ctx context.Context) ([]domain.OfferRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.offersCalls++
	if f.feedErr != nil {
		return nil, f.feedErr
	}
	return f.offers, nil
}

func (f *FakeVendorAPI) FetchIngredientPage(ctx context.Context, id string) (*domain.IngredientPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pageCalls[id]++
	if f.pageErr != nil {
		return nil, f.pageErr
	}
	page, ok := f.pages[id]
	if !ok {
		return nil, domain.ErrNetwork
	}
	return page, nil
}

func (f *FakeVendorAPI) FetchIngredientIndex(ctx context.Context) (map[string]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.index, nil
}

func (f *FakeVendorAPI) PageCalls(id string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pageCalls[id]
}

func (f *FakeVendorAPI) FeedCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.catalogCalls + f.searchCalls + f.offersCalls
}

// newTestResolver builds a resolver over the fake API with a real disk
// store in a test directory.
func newTestResolver(t *testing.T, api *FakeVendorAPI) *IngredientResolver {
	t.Helper()

	store, err := cache.NewIngredientStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewIngredientStore() error = %v", err)
	}

	classifier, err := NewTypeClassifier(context.Background(), api)
	if err != nil {
		t.Fatalf("NewTypeClassifier() error = %v", err)
	}

	return NewIngredientResolver(api, store, classifier)
}
