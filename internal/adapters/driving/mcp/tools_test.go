package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rootline/research-sources/internal/core/domain"
)

func newTestServer(t *testing.T, ports *Ports) *Server {
	t.Helper()
	if ports.Research == nil {
		ports.Research = &mockResearchService{}
	}
	server, err := NewServer(ports)
	require.NoError(t, err)
	return server
}

func TestHandleSearchNewspapers(t *testing.T) {
	t.Run("returns mapped items", func(t *testing.T) {
		server := newTestServer(t, &Ports{
			Newspapers: &mockNewspaperService{results: domain.NewspaperResults{
				TotalItems: 40,
				Items: []domain.NewspaperItem{
					{ID: "n-1", Title: "The Daily Union", Date: "18500601", Page: 3, Snippet: "John Smith..."},
				},
			}},
		})

		_, output, err := server.handleSearchNewspapers(context.Background(), nil, SearchNewspapersInput{
			Query: "John Smith",
		})
		require.NoError(t, err)

		assert.Equal(t, 40, output.Total)
		assert.Equal(t, 1, output.Count)
		assert.Equal(t, 1, output.Page)
		require.Len(t, output.Items, 1)
		assert.Equal(t, "The Daily Union", output.Items[0].Title)
		assert.Empty(t, output.Items[0].Error)
	})

	t.Run("propagates service error", func(t *testing.T) {
		server := newTestServer(t, &Ports{
			Newspapers: &mockNewspaperService{err: assert.AnError},
		})

		_, _, err := server.handleSearchNewspapers(context.Background(), nil, SearchNewspapersInput{Query: "x"})
		assert.Error(t, err)
	})

	t.Run("defaults page to 1", func(t *testing.T) {
		server := newTestServer(t, &Ports{Newspapers: &mockNewspaperService{}})

		_, output, err := server.handleSearchNewspapers(context.Background(), nil, SearchNewspapersInput{
			Query: "x",
			Page:  -3,
		})
		require.NoError(t, err)
		assert.Equal(t, 1, output.Page)
	})
}

func TestHandleGetNewspaperPage(t *testing.T) {
	server := newTestServer(t, &Ports{
		Newspapers: &mockNewspaperService{page: domain.NewspaperPageView{
			URL:       "https://example.org/page",
			ImageURL:  "https://example.org/image.jp2",
			OCRText:   "truncated text",
			OCRLength: 9000,
		}},
	})

	_, output, err := server.handleGetNewspaperPage(context.Background(), nil, GetNewspaperPageInput{
		LCCN: "sn1", Date: "1850-06-01", Page: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, "truncated text", output.OCRText)
	assert.Equal(t, 9000, output.OCRLength)
}

func TestHandleSearchWikiTree(t *testing.T) {
	server := newTestServer(t, &Ports{
		Tree: &mockTreeService{persons: []domain.TreePerson{
			{ID: "1", Name: "Smith-1", FirstName: "John", LastName: "Smith", URL: "https://www.wikitree.com/wiki/Smith-1"},
		}},
	})

	_, output, err := server.handleSearchWikiTree(context.Background(), nil, SearchWikiTreeInput{
		FirstName: "John", LastName: "Smith",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, output.Count)
	require.Len(t, output.Results, 1)
	assert.Equal(t, "Smith-1", output.Results[0].Name)
}

func TestHandleGetWikiTreePerson(t *testing.T) {
	t.Run("returns profile", func(t *testing.T) {
		server := newTestServer(t, &Ports{
			Tree: &mockTreeService{person: &domain.TreePerson{ID: "1", Name: "Smith-1"}},
		})

		_, output, err := server.handleGetWikiTreePerson(context.Background(), nil, GetWikiTreePersonInput{
			WikiTreeID: "Smith-1",
		})
		require.NoError(t, err)
		assert.Equal(t, "Smith-1", output.Name)
		assert.Empty(t, output.Error)
	})

	// A missing profile is a structured entry, not a tool failure.
	t.Run("not found becomes error entry", func(t *testing.T) {
		server := newTestServer(t, &Ports{
			Tree: &mockTreeService{personErr: domain.ErrNotFound},
		})

		_, output, err := server.handleGetWikiTreePerson(context.Background(), nil, GetWikiTreePersonInput{
			WikiTreeID: "Nobody-1",
		})
		require.NoError(t, err)
		assert.Equal(t, "Person not found", output.Error)
	})
}

func TestHandleSearchOpenArchives(t *testing.T) {
	server := newTestServer(t, &Ports{
		Archive: &mockArchiveService{records: []domain.ArchiveRecord{
			{ID: "r-1", Title: "Geboorteakte", Place: "Amsterdam", RecordType: "BS Geboorte", PersonNames: []string{"Jan de Vries"}},
		}},
	})

	_, output, err := server.handleSearchOpenArchives(context.Background(), nil, SearchOpenArchivesInput{
		Name: "Jan de Vries",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, output.Count)
	require.Len(t, output.Results, 1)
	assert.Equal(t, "Geboorteakte", output.Results[0].Title)
	assert.Equal(t, "BS Geboorte", output.Results[0].SourceType)
}

func TestHandleCrossReferencePerson(t *testing.T) {
	t.Run("maps searched sources", func(t *testing.T) {
		server := newTestServer(t, &Ports{
			Research: &mockResearchService{report: &domain.AggregateReport{
				GivenName:       "Jan",
				Surname:         "de Vries",
				SourcesSearched: []string{domain.SourceNewspapers, domain.SourceWikiTree, domain.SourceOpenArch},
				Newspapers: domain.NewspaperOutcome{
					Searched: true,
					Items:    []domain.NewspaperItem{{ID: "n-1", Title: "The Daily Union"}},
				},
				Tree: domain.TreeOutcome{
					Searched: true,
					Persons:  []domain.TreePerson{{ID: "1", Name: "Vries-1"}},
				},
				Archive: domain.ArchiveOutcome{
					Searched: true,
					Records:  []domain.ArchiveRecord{{ID: "r-1", Title: "Geboorteakte"}},
				},
				TotalResults: 3,
			}},
		})

		_, output, err := server.handleCrossReferencePerson(context.Background(), nil, CrossReferenceInput{
			GivenName: "Jan", Surname: "de Vries",
		})
		require.NoError(t, err)

		assert.Equal(t, "Jan", output.Person.GivenName)
		assert.Equal(t, 3, output.TotalResults)
		require.NotNil(t, output.Results.Newspapers)
		require.NotNil(t, output.Results.WikiTree)
		require.NotNil(t, output.Results.OpenArch)
		assert.Len(t, *output.Results.Newspapers, 1)
	})

	// A source that was gated out has no key at all; a source that was
	// invoked and failed carries a single error entry.
	t.Run("failed source becomes error entry", func(t *testing.T) {
		server := newTestServer(t, &Ports{
			Research: &mockResearchService{report: &domain.AggregateReport{
				GivenName:       "John",
				Surname:         "Smith",
				SourcesSearched: []string{domain.SourceNewspapers, domain.SourceWikiTree},
				Newspapers: domain.NewspaperOutcome{
					Searched: true,
					Err:      &domain.ProviderError{Source: "Chronicling America", StatusCode: 500},
				},
				Tree: domain.TreeOutcome{Searched: true},
			}},
		})

		_, output, err := server.handleCrossReferencePerson(context.Background(), nil, CrossReferenceInput{
			GivenName: "John", Surname: "Smith",
		})
		require.NoError(t, err)

		require.NotNil(t, output.Results.Newspapers)
		require.Len(t, *output.Results.Newspapers, 1)
		assert.Contains(t, (*output.Results.Newspapers)[0].Error, "Chronicling America")

		require.NotNil(t, output.Results.WikiTree)
		assert.Empty(t, *output.Results.WikiTree, "searched with zero hits is an empty list, not an omission")

		assert.Nil(t, output.Results.OpenArch, "gated-out source is omitted entirely")
	})

	t.Run("propagates validation error", func(t *testing.T) {
		server := newTestServer(t, &Ports{
			Research: &mockResearchService{err: domain.ErrInvalidInput},
		})

		_, _, err := server.handleCrossReferencePerson(context.Background(), nil, CrossReferenceInput{})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestHandleFindAGraveURL(t *testing.T) {
	server := newTestServer(t, &Ports{})

	t.Run("from memorial id", func(t *testing.T) {
		_, output, err := server.handleFindAGraveURL(context.Background(), nil, FindAGraveURLInput{
			MemorialID: "12345",
		})
		require.NoError(t, err)
		assert.Equal(t, "https://www.findagrave.com/memorial/12345", output.URL)
	})

	t.Run("from record id", func(t *testing.T) {
		_, output, err := server.handleFindAGraveURL(context.Background(), nil, FindAGraveURLInput{
			RecordID: "ark:/61903/1:1:QVXJ-8M2",
		})
		require.NoError(t, err)
		assert.Equal(t, "QVXJ-8M2", output.MemorialID)
		assert.Equal(t, "https://www.findagrave.com/memorial/QVXJ-8M2", output.URL)
	})

	t.Run("empty input", func(t *testing.T) {
		_, _, err := server.handleFindAGraveURL(context.Background(), nil, FindAGraveURLInput{})
		assert.Error(t, err)
	})
}
