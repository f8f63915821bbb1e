package driven

import (
	"context"

	"github.com/rootline/research-sources/internal/core/domain"
)

// NewspaperProvider is the historic newspaper search boundary.
// A failed call returns a *domain.ProviderError carrying the upstream
// status; a partially-populated upstream payload yields a degraded
// record, never an error.
type NewspaperProvider interface {
	// SearchPages performs exactly one search call for one result page.
	SearchPages(ctx context.Context, params domain.NewspaperSearch) (domain.NewspaperResults, error)

	// GetPage fetches the full OCR text and image URL for one page.
	GetPage(ctx context.Context, req domain.NewspaperPageRequest) (domain.NewspaperPage, error)
}

// TreeProvider is the collaborative-tree registry boundary.
type TreeProvider interface {
	// SearchPersons searches profiles. An upstream "no result" body
	// status yields an empty slice, not an error.
	SearchPersons(ctx context.Context, params domain.TreeSearch) ([]domain.TreePerson, error)

	// GetPerson fetches one profile by its tree identifier.
	// Returns (nil, nil) when the profile does not exist.
	GetPerson(ctx context.Context, treeID string) (*domain.TreePerson, error)
}

// ArchiveProvider is the European civil-records index boundary.
type ArchiveProvider interface {
	// SearchRecords searches civil/church/notary records.
	SearchRecords(ctx context.Context, params domain.ArchiveSearch) ([]domain.ArchiveRecord, error)
}
