package mymuesli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/RikuXan/mymuesli-analyzer/internal/domain"
	"golang.org/x/time/rate"
)

// apiKeyHeader is the static credential header every vendor request carries.
const apiKeyHeader = "mm-api-key"

// Client handles communication with the vendor's public endpoints: the three
// JSON feeds and the scraped HTML pages.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	apiKey      string
	rateLimiter *rate.Limiter
}

// NewClient creates a new vendor client. requestsPerHour bounds the request
// rate against the public site.
func NewClient(baseURL, apiKey string, requestsPerHour int) *Client {
	limiter := rate.NewLimiter(rate.Limit(float64(requestsPerHour)/3600.0), 10)

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL:     baseURL,
		apiKey:      apiKey,
		rateLimiter: limiter,
	}
}

// do executes a GET against a vendor path and returns the response body.
// Non-2xx statuses and transport failures surface as ErrNetwork.
func (c *Client) do(ctx context.Context, path string) (io.ReadCloser, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set("User-Agent", "mymuesli-analyzer/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrNetwork, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: GET %s returned status %d", domain.ErrNetwork, path, resp.StatusCode)
	}

	return resp.Body, nil
}

// getJSON fetches a feed and decodes it into v.
func (c *Client) getJSON(ctx context.Context, path string, v interface{}) error {
	body, err := c.do(ctx, path)
	if err != nil {
		return err
	}
	defer body.Close()

	if err := json.NewDecoder(body).Decode(v); err != nil {
		return fmt.Errorf("%w: decoding %s: %v", domain.ErrParse, path, err)
	}
	return nil
}

// getDocument fetches a page and parses it into a goquery document.
func (c *Client) getDocument(ctx context.Context, path string) (*goquery.Document, error) {
	body, err := c.do(ctx, path)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", domain.ErrParse, path, err)
	}
	return doc, nil
}

// FetchCatalog retrieves the catalog feed.
func (c *Client) FetchCatalog(ctx context.Context) ([]domain.CatalogRecord, error) {
	var records []domain.CatalogRecord
	if err := c.getJSON(ctx, "/api/products", &records); err != nil {
		return nil, err
	}
	log.Printf("[mymuesli] fetched %d catalog records", len(records))
	return records, nil
}

// FetchSearch retrieves the search/ranking feed.
func (c *Client) FetchSearch(ctx context.Context) ([]domain.SearchRecord, error) {
	var records []domain.SearchRecord
	if err := c.getJSON(ctx, "/api/search", &records); err != nil {
		return nil, err
	}
	log.Printf("[mymuesli] fetched %d search records", len(records))
	return records, nil
}

// FetchOffers retrieves the pricing feed.
func (c *Client) FetchOffers(ctx context.Context) ([]domain.OfferRecord, error) {
	var records []domain.OfferRecord
	if err := c.getJSON(ctx, "/api/offers", &records); err != nil {
		return nil, err
	}
	log.Printf("[mymuesli] fetched %d offer records", len(records))
	return records, nil
}

// FetchIngredientPage retrieves and parses one ingredient detail page.
func (c *Client) FetchIngredientPage(ctx context.Context, id string) (*domain.IngredientPage, error) {
	doc, err := c.getDocument(ctx, "/ingredient/"+id)
	if err != nil {
		return nil, err
	}
	page, err := parseIngredientPage(doc)
	if err != nil {
		return nil, fmt.Errorf("ingredient %s: %w", id, err)
	}
	return page, nil
}

// FetchIngredientIndex retrieves the ingredient index page and returns the
// name-to-category mapping scraped from its heading structure.
func (c *Client) FetchIngredientIndex(ctx context.Context) (map[string]string, error) {
	doc, err := c.getDocument(ctx, "/ingredients")
	if err != nil {
		return nil, err
	}
	index, err := parseIngredientIndex(doc)
	if err != nil {
		return nil, err
	}
	log.Printf("[mymuesli] ingredient index lists %d ingredients", len(index))
	return index, nil
}
