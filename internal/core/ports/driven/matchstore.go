package driven

import (
	"context"

	"github.com/rootline/research-sources/internal/core/domain"
)

// MatchStore persists external match candidates keyed by
// (person id, source name, external id).
type MatchStore interface {
	// Upsert writes a match, replacing any existing row with the same
	// natural key and stamping searched-at with the current time.
	// A benign duplicate write is a replace, never an error.
	Upsert(ctx context.Context, m domain.Match) error

	// ByPerson returns all matches for a person, optionally filtered
	// to one cache source name (empty means all sources). Ordered by
	// descending match score, then source name when unfiltered.
	ByPerson(ctx context.Context, personID, source string) ([]domain.Match, error)
}
