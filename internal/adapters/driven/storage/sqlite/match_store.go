package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/rootline/research-sources/internal/core/domain"
	"github.com/rootline/research-sources/internal/core/ports/driven"
)

// matchStore implements driven.MatchStore.
type matchStore struct {
	store *Store
}

var _ driven.MatchStore = (*matchStore)(nil)

// Upsert writes a match, replacing any existing row with the same
// (person_id, source_name, external_id) natural key. The searched_at
// stamp is always the write time, so a repeat search refreshes the row.
func (m *matchStore) Upsert(ctx context.Context, match domain.Match) error {
	now := time.Now().UTC().Format(time.RFC3339)

	_, err := m.store.db.ExecContext(ctx, `
		INSERT INTO external_matches (
			person_id, source_name, external_id, url, title, snippet, match_score, raw_json, searched_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (person_id, source_name, external_id) DO UPDATE SET
			url = excluded.url,
			title = excluded.title,
			snippet = excluded.snippet,
			match_score = excluded.match_score,
			raw_json = excluded.raw_json,
			searched_at = excluded.searched_at
	`, match.PersonID, match.Source, match.ExternalID, match.URL, match.Title,
		match.Snippet, match.Score, match.RawJSON, now)
	if err != nil {
		return fmt.Errorf("upserting match %s/%s: %w", match.Source, match.ExternalID, err)
	}
	return nil
}

// ByPerson returns all matches for a person, optionally filtered to one
// source. Ordered by descending score; when the source is unfiltered,
// secondarily by source name for stable grouping.
func (m *matchStore) ByPerson(ctx context.Context, personID, source string) ([]domain.Match, error) {
	query := `
		SELECT person_id, source_name, external_id, url, title, snippet, match_score, raw_json, searched_at
		FROM external_matches
		WHERE person_id = ?`
	args := []any{personID}

	if source != "" {
		query += " AND source_name = ? ORDER BY match_score DESC"
		args = append(args, source)
	} else {
		query += " ORDER BY match_score DESC, source_name"
	}

	rows, err := m.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying matches: %w", err)
	}
	defer rows.Close()

	var matches []domain.Match
	for rows.Next() {
		var match domain.Match
		var searchedAt string
		if err := rows.Scan(
			&match.PersonID, &match.Source, &match.ExternalID, &match.URL,
			&match.Title, &match.Snippet, &match.Score, &match.RawJSON, &searchedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning match: %w", err)
		}
		if ts, err := time.Parse(time.RFC3339, searchedAt); err == nil {
			match.SearchedAt = ts
		}
		matches = append(matches, match)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating matches: %w", err)
	}
	return matches, nil
}
