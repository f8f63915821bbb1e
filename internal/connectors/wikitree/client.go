// Package wikitree implements the WikiTree connector for the
// collaborative genealogy tree.
// API: https://github.com/wikitree/wikitree-api - no key required,
// but rate-limited.
package wikitree

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rootline/research-sources/internal/connectors"
	"github.com/rootline/research-sources/internal/core/domain"
	"github.com/rootline/research-sources/internal/core/ports/driven"
)

const (
	// DefaultBaseURL is the production API endpoint.
	DefaultBaseURL = "https://api.wikitree.com/api.php"

	// ProfileBaseURL is where person profiles are browsed. Kept apart
	// from the API endpoint so tests can stub the API alone.
	ProfileBaseURL = "https://www.wikitree.com/wiki/"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent identifies this client to the API.
	DefaultUserAgent = "FamilyTreeResearch/1.0"

	// DefaultLimit is the search result cap when none is given.
	DefaultLimit = 20

	sourceName = "WikiTree"
)

// Ensure Client implements the provider port.
var _ driven.TreeProvider = (*Client)(nil)

// Config holds optional client overrides. Zero values use defaults.
type Config struct {
	BaseURL    string
	UserAgent  string
	HTTPClient *http.Client
	RateLimit  *connectors.RateLimitConfig
}

// Client is the WikiTree API client. All operations are POSTs against
// a single endpoint with an action discriminator in the body.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	limiter    *connectors.RateLimiter
}

// NewClient creates a WikiTree client.
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
		c.limiter = connectors.NewRateLimiter(connectors.ProviderWikiTree)
	}
	return c
}

// wirePerson is a profile as the API returns it. A non-zero body status
// means "no result", not an error, so every field here may be absent.
type wirePerson struct {
	UserID          *int64 `json:"user_id"`
	ID              *int64 `json:"Id"`
	Name            string `json:"Name"`
	FirstName       string `json:"FirstName"`
	LastNameAtBirth string `json:"LastNameAtBirth"`
	BirthDate       string `json:"BirthDate"`
	DeathDate       string `json:"DeathDate"`
	BirthLocation   string `json:"BirthLocation"`
	DeathLocation   string `json:"DeathLocation"`
	Privacy         int    `json:"Privacy"`
}

type searchResponse struct {
	Status  *int         `json:"status"`
	Matches []wirePerson `json:"matches"`
}

type getPersonResponse struct {
	Status *int        `json:"status"`
	Person *wirePerson `json:"person"`
}

// SearchPersons searches profiles by the given fields. Empty fields are
// left out of the comma-joined field list entirely.
func (c *Client) SearchPersons(ctx context.Context, params domain.TreeSearch) ([]domain.TreePerson, error) {
	body := map[string]any{"action": "searchPerson"}

	var fields []string
	addField := func(name, value string) {
		if value != "" {
			fields = append(fields, name)
			body[name] = value
		}
	}
	addField("FirstName", params.FirstName)
	addField("LastName", params.LastName)
	addField("BirthDate", params.BirthDate)
	addField("DeathDate", params.DeathDate)
	addField("BirthLocation", params.BirthLocation)
	addField("DeathLocation", params.DeathLocation)

	body["fields"] = strings.Join(fields, ",")
	limit := params.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	body["Limit"] = limit

	var wire searchResponse
	if err := c.postJSON(ctx, body, &wire); err != nil {
		return nil, err
	}

	// Non-zero body status means "no result", not an error.
	if wire.Status == nil || *wire.Status != 0 || wire.Matches == nil {
		return []domain.TreePerson{}, nil
	}

	persons := make([]domain.TreePerson, 0, len(wire.Matches))
	for _, match := range wire.Matches {
		persons = append(persons, mapPerson(match, match.UserID))
	}
	return persons, nil
}

// GetPerson fetches one profile by its WikiTree id (e.g. "Smith-12345").
// Returns (nil, nil) when the profile does not exist.
func (c *Client) GetPerson(ctx context.Context, treeID string) (*domain.TreePerson, error) {
	body := map[string]any{
		"action": "getPerson",
		"key":    treeID,
		"fields": "Id,Name,FirstName,LastNameAtBirth,BirthDate,DeathDate,BirthLocation,DeathLocation,Privacy",
	}

	var wire getPersonResponse
	if err := c.postJSON(ctx, body, &wire); err != nil {
		return nil, err
	}

	if wire.Status == nil || *wire.Status != 0 || wire.Person == nil {
		return nil, nil
	}

	person := mapPerson(*wire.Person, wire.Person.ID)
	return &person, nil
}

// mapPerson applies the defensive defaults and builds the profile URL.
func mapPerson(p wirePerson, numericID *int64) domain.TreePerson {
	id := ""
	if numericID != nil {
		id = strconv.FormatInt(*numericID, 10)
	}
	name := p.Name
	if name == "" {
		name = "Unknown"
	}
	return domain.TreePerson{
		ID:            id,
		Name:          name,
		FirstName:     p.FirstName,
		LastName:      p.LastNameAtBirth,
		BirthDate:     p.BirthDate,
		DeathDate:     p.DeathDate,
		BirthLocation: p.BirthLocation,
		DeathLocation: p.DeathLocation,
		Privacy:       p.Privacy,
		URL:           ProfileBaseURL + p.Name,
	}
}

// postJSON performs a rate-limited POST and decodes the JSON body.
func (c *Client) postJSON(ctx context.Context, body map[string]any, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
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
