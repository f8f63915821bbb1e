package openarchives

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rootline/research-sources/internal/connectors"
	"github.com/rootline/research-sources/internal/core/domain"
)

// testRateLimit keeps tests from sleeping on the token bucket.
var testRateLimit = &connectors.RateLimitConfig{RequestsPerSecond: 1000, BurstSize: 1000}

func newTestClient(serverURL string) *Client {
	return NewClient(Config{BaseURL: serverURL, RateLimit: testRateLimit})
}

func TestSearchRecords_QueryParams(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "John Smith", q.Get("search"))
		assert.Equal(t, "Amsterdam", q.Get("place"))
		assert.Equal(t, "1850", q.Get("yearFrom"))
		assert.Equal(t, "1920", q.Get("yearTo"))
		assert.Equal(t, "BS Geboorte", q.Get("type"))
		assert.Equal(t, "nl", q.Get("country"))
		assert.Equal(t, "10", q.Get("rows"))
		assert.Equal(t, "json", q.Get("format"))
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		w.Write([]byte(`{"response": {"docs": []}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.SearchRecords(context.Background(), domain.ArchiveSearch{
		Name:        "John Smith",
		Place:       "Amsterdam",
		YearFrom:    "1850",
		YearTo:      "1920",
		RecordType:  "BS Geboorte",
		CountryCode: "nl",
		Limit:       10,
	})
	require.NoError(t, err)
}

// "all" is a client-side convention, not an API value; the type filter
// is left off entirely.
func TestSearchRecords_AllTypeOmitted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.False(t, q.Has("type"))
		assert.Equal(t, "20", q.Get("rows"), "row count defaults when unset")
		w.Write([]byte(`{"response": {"docs": []}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.SearchRecords(context.Background(), domain.ArchiveSearch{
		Name:       "John Smith",
		RecordType: domain.RecordTypeAll,
	})
	require.NoError(t, err)
}

func TestSearchRecords_MapsDocsWithDefaults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"response": {
				"docs": [
					{
						"id": "rec-1",
						"title": ["Geboorteakte", "alternate"],
						"date": "1850-03-12",
						"place": ["Amsterdam"],
						"type": "BS Geboorte",
						"personNames": ["John Smith", "Mary Smith"],
						"url": "https://www.openarchieven.nl/rec-1",
						"imageUrl": "https://www.openarchieven.nl/rec-1.jpg"
					},
					{"id": "rec-2"}
				]
			}
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	records, err := client.SearchRecords(context.Background(), domain.ArchiveSearch{Name: "John Smith"})
	require.NoError(t, err)
	require.Len(t, records, 2)

	full := records[0]
	assert.Equal(t, "Geboorteakte", full.Title, "only the first title element is kept")
	assert.Equal(t, "Amsterdam", full.Place)
	assert.Equal(t, "BS Geboorte", full.RecordType)
	assert.Equal(t, []string{"John Smith", "Mary Smith"}, full.PersonNames)

	sparse := records[1]
	assert.Equal(t, "Unknown", sparse.Title)
	assert.Empty(t, sparse.Place)
	assert.Equal(t, "unknown", sparse.RecordType)
	assert.NotNil(t, sparse.PersonNames)
	assert.Empty(t, sparse.PersonNames)
}

func TestSearchRecords_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.SearchRecords(context.Background(), domain.ArchiveSearch{Name: "x"})
	require.Error(t, err)

	var provErr *domain.ProviderError
	require.True(t, errors.As(err, &provErr))
	assert.Equal(t, http.StatusBadGateway, provErr.StatusCode)
	assert.Contains(t, provErr.Error(), "Open Archives")
}
