package mymuesli

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/RikuXan/mymuesli-analyzer/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newVendorServer mocks the vendor's endpoints and asserts the credential
// header on every request.
func newVendorServer(t *testing.T, routes map[string]http.HandlerFunc) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-api-key", r.Header.Get(apiKeyHeader))

		handler, ok := routes[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		handler(w, r)
	}))
}

func serveJSON(v interface{}) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(v)
	}
}

func serveHTML(html string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(html))
	}
}

func TestNewClient(t *testing.T) {
	client := NewClient("https://www.example.com", "key", 1000)

	assert.NotNil(t, client)
	assert.Equal(t, "https://www.example.com", client.baseURL)
	assert.Equal(t, "key", client.apiKey)
	assert.NotNil(t, client.httpClient)
	assert.NotNil(t, client.rateLimiter)
}

func TestFetchCatalog(t *testing.T) {
	server := newVendorServer(t, map[string]http.HandlerFunc{
		"/api/products": serveJSON([]map[string]interface{}{{
			"id":            1,
			"name":          "Testmüsli",
			"url":           "/p/testmuesli",
			"weight":        500,
			"articleNumber": "A1",
			"ingredients": []map[string]interface{}{
				{"id": "x", "amount": 1, "amountMilligram": 250000},
			},
			// Unknown extra fields must decode without error.
			"somethingNew": true,
		}}),
	})
	defer server.Close()

	client := NewClient(server.URL, "test-api-key", 100000)

	records, err := client.FetchCatalog(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, int64(1), records[0].ID)
	assert.Equal(t, "A1", records[0].ArticleNumber)
	require.Len(t, records[0].Ingredients, 1)
	assert.Equal(t, 250000, records[0].Ingredients[0].AmountMilligram)
}

func TestFetchSearch(t *testing.T) {
	server := newVendorServer(t, map[string]http.HandlerFunc{
		"/api/search": serveJSON([]map[string]interface{}{{
			"id":         1,
			"type":       "product",
			"brand":      map[string]string{"key": "mymuesli"},
			"filter":     map[string]string{"is-ready-mix": "Ready Mix"},
			"popularity": 3.0,
		}}),
	})
	defer server.Close()

	client := NewClient(server.URL, "test-api-key", 100000)

	records, err := client.FetchSearch(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "mymuesli", records[0].Brand.Key)
	assert.Contains(t, records[0].Filter, "is-ready-mix")
}

func TestFetchOffers_NullMarketingPrice(t *testing.T) {
	server := newVendorServer(t, map[string]http.HandlerFunc{
		"/api/offers": serveJSON([]map[string]interface{}{{
			"id":                   11,
			"name":                 "Produkt 500g",
			"price":                7.99,
			"priceMarketing":       nil,
			"priceQuotation":       "1,60 €/100g",
			"productArticleNumber": "A1",
		}}),
	})
	defer server.Close()

	client := NewClient(server.URL, "test-api-key", 100000)

	records, err := client.FetchOffers(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Nil(t, records[0].PriceMarketing)
	assert.Equal(t, 7.99, records[0].Price)
}

func TestFetchIngredientPage(t *testing.T) {
	server := newVendorServer(t, map[string]http.HandlerFunc{
		"/ingredient/straw-1": serveHTML(ingredientPageHTML),
	})
	defer server.Close()

	client := NewClient(server.URL, "test-api-key", 100000)

	page, err := client.FetchIngredientPage(context.Background(), "straw-1")
	require.NoError(t, err)
	assert.Equal(t, "Erdbeeren", page.Name)
	assert.Equal(t, []string{"Bio", "Vegan"}, page.Hints)
}

func TestFetchIngredientIndex(t *testing.T) {
	server := newVendorServer(t, map[string]http.HandlerFunc{
		"/ingredients": serveHTML(ingredientIndexHTML),
	})
	defer server.Close()

	client := NewClient(server.URL, "test-api-key", 100000)

	index, err := client.FetchIngredientIndex(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Früchte", index["Erdbeeren"])
	assert.Len(t, index, 3)
}

func TestFetch_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-api-key", 100000)

	_, err := client.FetchCatalog(context.Background())
	assert.ErrorIs(t, err, domain.ErrNetwork)

	_, err = client.FetchIngredientPage(context.Background(), "x")
	assert.ErrorIs(t, err, domain.ErrNetwork)
}

func TestFetch_TransportFailure(t *testing.T) {
	// Point at a server that is already gone.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, "test-api-key", 100000)

	_, err := client.FetchSearch(context.Background())
	assert.ErrorIs(t, err, domain.ErrNetwork)
}

func TestFetch_MalformedFeed(t *testing.T) {
	server := newVendorServer(t, map[string]http.HandlerFunc{
		"/api/products": serveHTML("<html>definitely not json</html>"),
	})
	defer server.Close()

	client := NewClient(server.URL, "test-api-key", 100000)

	_, err := client.FetchCatalog(context.Background())
	assert.ErrorIs(t, err, domain.ErrParse)
}
