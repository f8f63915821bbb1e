// Package chronicling implements the Chronicling America (Library of
// Congress) connector for historic American newspapers (1789-1963).
// API: https://chroniclingamerica.loc.gov/about/api/ - no key required.
package chronicling

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rootline/research-sources/internal/connectors"
	"github.com/rootline/research-sources/internal/core/domain"
	"github.com/rootline/research-sources/internal/core/ports/driven"
)

const (
	// DefaultBaseURL is the production API endpoint.
	DefaultBaseURL = "https://chroniclingamerica.loc.gov"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent identifies this client to the API, as the
	// service asks of automated callers.
	DefaultUserAgent = "FamilyTreeResearch/1.0"

	// snippetMaxLen caps OCR snippets in search results.
	snippetMaxLen = 300

	sourceName = "Chronicling America"
)

// Ensure Client implements the provider port.
var _ driven.NewspaperProvider = (*Client)(nil)

// Config holds optional client overrides. Zero values use defaults.
type Config struct {
	BaseURL    string
	UserAgent  string
	HTTPClient *http.Client
	RateLimit  *connectors.RateLimitConfig
}

// Client is the Chronicling America API client.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	limiter    *connectors.RateLimiter
}

// NewClient creates a Chronicling America client.
func NewClient(cfg Config) *Client {
	c := &Client{
		baseURL:    cfg.BaseURL,
		userAgent:  cfg.UserAgent,
		httpClient: cfg.HTTPClient,
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.userAgent == "" {
		c.userAgent = DefaultUserAgent
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	if cfg.RateLimit != nil {
		c.limiter = connectors.NewRateLimiterWithConfig(*cfg.RateLimit)
	} else {
		c.limiter = connectors.NewRateLimiter(connectors.ProviderChronicling)
	}
	return c
}

// searchResponse is the wire shape of a page search. Every field is
// treated as possibly absent; missing fields decode to zero values and
// are defaulted during mapping.
type searchResponse struct {
	TotalItems int          `json:"totalItems"`
	Items      []searchItem `json:"items"`
}

type searchItem struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Date     string `json:"date"`
	Sequence int    `json:"sequence"`
	Edition  *int   `json:"edition"`
	LCCN     string `json:"lccn"`
	OCREng   string `json:"ocr_eng"`
}

// SearchPages performs one search call for one result page.
func (c *Client) SearchPages(ctx context.Context, params domain.NewspaperSearch) (domain.NewspaperResults, error) {
	page := params.Page
	if page < 1 {
		page = 1
	}

	q := url.Values{}
	q.Set("proxtext", params.Query)
	q.Set("format", "json")
	q.Set("page", strconv.Itoa(page))
	if params.State != "" {
		q.Set("state", params.State)
	}
	if params.StartDate != "" {
		q.Set("dateFilterType", "range")
		q.Set("date1", digitsOnly(params.StartDate))
	}
	if params.EndDate != "" {
		q.Set("date2", digitsOnly(params.EndDate))
	}

	var wire searchResponse
	if err := c.getJSON(ctx, c.baseURL+"/search/pages/results/?"+q.Encode(), &wire); err != nil {
		return domain.NewspaperResults{}, err
	}

	results := domain.NewspaperResults{
		TotalItems: wire.TotalItems,
		Items:      make([]domain.NewspaperItem, 0, len(wire.Items)),
	}

	for _, item := range wire.Items {
		sequence := item.Sequence
		if sequence == 0 {
			sequence = 1
		}
		edition := 1
		if item.Edition != nil {
			edition = *item.Edition
		}
		title := item.Title
		if title == "" {
			title = "Unknown"
		}

		results.Items = append(results.Items, domain.NewspaperItem{
			ID:      item.ID,
			Title:   title,
			Date:    item.Date,
			Page:    sequence,
			Edition: edition,
			LCCN:    item.LCCN,
			URL:     fmt.Sprintf("%s/lccn/%s/%s/ed-1/seq-%d/", c.baseURL, item.LCCN, item.Date, sequence),
			Snippet: truncate(item.OCREng, snippetMaxLen),
		})
	}

	return results, nil
}

// pageResponse is the wire shape of a single page fetch.
type pageResponse struct {
	JP2    string `json:"jp2"`
	OCREng string `json:"ocr_eng"`
}

// GetPage fetches the full OCR text and image URL for one page.
// The OCR text is returned untruncated; callers cap it at their own
// boundary.
func (c *Client) GetPage(ctx context.Context, req domain.NewspaperPageRequest) (domain.NewspaperPage, error) {
	edition := req.Edition
	if edition < 1 {
		edition = 1
	}
	date := digitsOnly(req.Date)

	endpoint := fmt.Sprintf("%s/lccn/%s/%s/ed-%d/seq-%d.json", c.baseURL, req.LCCN, date, edition, req.Page)

	var wire pageResponse
	if err := c.getJSON(ctx, endpoint, &wire); err != nil {
		return domain.NewspaperPage{}, err
	}

	return domain.NewspaperPage{
		URL:      fmt.Sprintf("%s/lccn/%s/%s/ed-%d/seq-%d/", c.baseURL, req.LCCN, date, edition, req.Page),
		ImageURL: wire.JP2,
		OCRText:  wire.OCREng,
	}, nil
}

// getJSON performs a rate-limited GET and decodes the JSON body.
func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &domain.ProviderError{Source: sourceName, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		retryAfter, _ := strconv.Atoi(resp.Header.Get("Retry-After"))
		c.limiter.RecordRateLimitError(retryAfter)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &domain.ProviderError{Source: sourceName, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &domain.ProviderError{Source: sourceName, Err: fmt.Errorf("decoding response: %w", err)}
	}
	return nil
}

// digitsOnly strips dashes from a YYYY-MM-DD date; the API wants YYYYMMDD.
func digitsOnly(date string) string {
	return strings.ReplaceAll(date, "-", "")
}

// truncate caps s at max characters without splitting a rune.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
