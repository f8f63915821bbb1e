package driving

import (
	"context"

	"github.com/rootline/research-sources/internal/core/domain"
)

// NewspaperService exposes historic newspaper search to external actors.
// Successful search results are cached as unassociated matches.
type NewspaperService interface {
	// SearchNewspapers searches one page of newspaper results.
	SearchNewspapers(ctx context.Context, params domain.NewspaperSearch) (domain.NewspaperResults, error)

	// GetNewspaperPage fetches one page's OCR text, truncated for the
	// caller while reporting the true length.
	GetNewspaperPage(ctx context.Context, req domain.NewspaperPageRequest) (domain.NewspaperPageView, error)
}

// TreeService exposes collaborative-tree search and profile retrieval.
type TreeService interface {
	// SearchPersons searches tree profiles and caches the hits.
	SearchPersons(ctx context.Context, params domain.TreeSearch) ([]domain.TreePerson, error)

	// GetPerson fetches one profile. Returns domain.ErrNotFound when
	// the profile does not exist.
	GetPerson(ctx context.Context, treeID string) (*domain.TreePerson, error)
}

// ArchiveService exposes European civil-record search.
type ArchiveService interface {
	// SearchRecords searches records and caches the hits.
	SearchRecords(ctx context.Context, params domain.ArchiveSearch) ([]domain.ArchiveRecord, error)
}

// ResearchService orchestrates a person query across all sources.
type ResearchService interface {
	// CrossReference fans the query out to every applicable source,
	// caches successful results, and assembles the aggregate report.
	// Provider failures are captured in the report; only invalid input
	// or a cache write failure fails the operation itself.
	CrossReference(ctx context.Context, query domain.PersonQuery, sources domain.SourceSelector) (*domain.AggregateReport, error)

	// Matches returns previously cached matches for a person,
	// optionally filtered to one source.
	Matches(ctx context.Context, personID, source string) ([]domain.Match, error)
}
