// Package openarchives implements the Open Archives (openarchieven.nl)
// connector for Dutch, Belgian and French historical records.
// API: https://www.openarchieven.nl/api/ - free access, no key required.
package openarchives

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rootline/research-sources/internal/connectors"
	"github.com/rootline/research-sources/internal/core/domain"
	"github.com/rootline/research-sources/internal/core/ports/driven"
)

const (
	// DefaultBaseURL is the production API endpoint.
	DefaultBaseURL = "https://api.openarch.nl/2.0"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent identifies this client to the API.
	DefaultUserAgent = "FamilyTreeResearch/1.0"

	// DefaultLimit is the page size when none is given.
	DefaultLimit = 20

	sourceName = "Open Archives"
)

// Ensure Client implements the provider port.
var _ driven.ArchiveProvider = (*Client)(nil)

// Config holds optional client overrides. Zero values use defaults.
type Config struct {
	BaseURL    string
	UserAgent  string
	HTTPClient *http.Client
	RateLimit  *connectors.RateLimitConfig
}

// Client is the Open Archives API client.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	limiter    *connectors.RateLimiter
}

// NewClient creates an Open Archives client.
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
		c.limiter = connectors.NewRateLimiter(connectors.ProviderOpenArchives)
	}
	return c
}

// searchResponse is the wire shape of a record search. Title and place
// arrive as arrays; only the first element is used.
type searchResponse struct {
	Response struct {
		Docs []wireDoc `json:"docs"`
	} `json:"response"`
}

type wireDoc struct {
	ID          string   `json:"id"`
	Title       []string `json:"title"`
	Date        string   `json:"date"`
	Place       []string `json:"place"`
	Type        string   `json:"type"`
	PersonNames []string `json:"personNames"`
	URL         string   `json:"url"`
	ImageURL    string   `json:"imageUrl"`
}

// SearchRecords searches civil/church/notary records. The record-type
// filter is omitted entirely when set to "all".
func (c *Client) SearchRecords(ctx context.Context, params domain.ArchiveSearch) ([]domain.ArchiveRecord, error) {
	q := url.Values{}
	if params.Name != "" {
		q.Set("search", params.Name)
	}
	if params.Place != "" {
		q.Set("place", params.Place)
	}
	if params.YearFrom != "" {
		q.Set("yearFrom", params.YearFrom)
	}
	if params.YearTo != "" {
		q.Set("yearTo", params.YearTo)
	}
	if params.RecordType != "" && params.RecordType != domain.RecordTypeAll {
		q.Set("type", params.RecordType)
	}
	if params.CountryCode != "" {
		q.Set("country", params.CountryCode)
	}
	limit := params.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	q.Set("rows", strconv.Itoa(limit))
	q.Set("format", "json")

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.ProviderError{Source: sourceName, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		retryAfter, _ := strconv.Atoi(resp.Header.Get("Retry-After"))
		c.limiter.RecordRateLimitError(retryAfter)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &domain.ProviderError{Source: sourceName, StatusCode: resp.StatusCode}
	}

	var wire searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, &domain.ProviderError{Source: sourceName, Err: fmt.Errorf("decoding response: %w", err)}
	}

	records := make([]domain.ArchiveRecord, 0, len(wire.Response.Docs))
	for _, doc := range wire.Response.Docs {
		recordType := doc.Type
		if recordType == "" {
			recordType = "unknown"
		}
		personNames := doc.PersonNames
		if personNames == nil {
			personNames = []string{}
		}

		records = append(records, domain.ArchiveRecord{
			ID:          doc.ID,
			Title:       first(doc.Title, "Unknown"),
			Date:        doc.Date,
			Place:       first(doc.Place, ""),
			RecordType:  recordType,
			PersonNames: personNames,
			ArchiveURL:  doc.URL,
			ImageURL:    doc.ImageURL,
		})
	}
	return records, nil
}

// first returns the first element of values, or fallback when empty.
func first(values []string, fallback string) string {
	if len(values) > 0 {
		return values[0]
	}
	return fallback
}
