package wikitree

import (
	"context"
	"encoding/json"
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

func TestSearchPersons_RequestBody(t *testing.T) {
	var body map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Write([]byte(`{"status": 0, "matches": []}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.SearchPersons(context.Background(), domain.TreeSearch{
		FirstName: "John",
		LastName:  "Smith",
		BirthDate: "1850-01-01",
	})
	require.NoError(t, err)

	assert.Equal(t, "searchPerson", body["action"])
	assert.Equal(t, "John", body["FirstName"])
	assert.Equal(t, "Smith", body["LastName"])
	assert.Equal(t, "1850-01-01", body["BirthDate"])
	// Only the populated fields appear in the field list, in order.
	assert.Equal(t, "FirstName,LastName,BirthDate", body["fields"])
	assert.Equal(t, float64(DefaultLimit), body["Limit"])
	assert.NotContains(t, body, "DeathDate")
}

func TestSearchPersons_MapsMatches(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"status": 0,
			"matches": [
				{
					"user_id": 12345,
					"Name": "Smith-678",
					"FirstName": "John",
					"LastNameAtBirth": "Smith",
					"BirthDate": "1850-06-01",
					"DeathDate": "1920-03-12",
					"BirthLocation": "Boston, Massachusetts",
					"Privacy": 60
				},
				{}
			]
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	persons, err := client.SearchPersons(context.Background(), domain.TreeSearch{FirstName: "John", LastName: "Smith"})
	require.NoError(t, err)
	require.Len(t, persons, 2)

	full := persons[0]
	assert.Equal(t, "12345", full.ID)
	assert.Equal(t, "Smith-678", full.Name)
	assert.Equal(t, "John", full.FirstName)
	assert.Equal(t, "Smith", full.LastName)
	assert.Equal(t, ProfileBaseURL+"Smith-678", full.URL)
	assert.Equal(t, 60, full.Privacy)

	// A profile with everything withheld still maps without blowing up.
	sparse := persons[1]
	assert.Empty(t, sparse.ID)
	assert.Equal(t, "Unknown", sparse.Name)
}

// The API reports "nothing found" as a non-zero body status with a 200
// HTTP status. That is an empty result, not an error.
func TestSearchPersons_NonZeroStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": 1}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	persons, err := client.SearchPersons(context.Background(), domain.TreeSearch{FirstName: "John", LastName: "Smith"})
	require.NoError(t, err)
	assert.Empty(t, persons)
}

func TestGetPerson(t *testing.T) {
	var body map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Write([]byte(`{
			"status": 0,
			"person": {
				"Id": 98765,
				"Name": "Smith-678",
				"FirstName": "John",
				"LastNameAtBirth": "Smith"
			}
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	person, err := client.GetPerson(context.Background(), "Smith-678")
	require.NoError(t, err)
	require.NotNil(t, person)

	assert.Equal(t, "getPerson", body["action"])
	assert.Equal(t, "Smith-678", body["key"])
	assert.Equal(t, "98765", person.ID)
	assert.Equal(t, ProfileBaseURL+"Smith-678", person.URL)
}

func TestGetPerson_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": 0, "person": null}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	person, err := client.GetPerson(context.Background(), "Nobody-1")
	require.NoError(t, err)
	assert.Nil(t, person)
}

func TestGetPerson_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.GetPerson(context.Background(), "Smith-678")
	require.Error(t, err)

	var provErr *domain.ProviderError
	require.True(t, errors.As(err, &provErr))
	assert.Equal(t, http.StatusServiceUnavailable, provErr.StatusCode)
}
