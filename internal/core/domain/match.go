package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Match is a cached mention of a person in one external source.
// At most one match exists per (PersonID, Source, ExternalID); a repeat
// search replaces the prior row rather than appending a duplicate.
type Match struct {
	// PersonID associates the match with a local person record.
	// Empty means unassociated: the match came from an open search.
	PersonID string

	// Source is one of the Cache* source name constants.
	Source string

	// ExternalID is the provider's stable identifier for the record.
	ExternalID string

	URL     string
	Title   string
	Snippet string

	// Score is the fixed per-source confidence constant.
	Score float64

	// RawJSON is the serialised original result, kept for forensic replay.
	RawJSON string

	// SearchedAt is when the match was last retrieved. Set by the store
	// on every upsert.
	SearchedAt time.Time
}

// NewspaperMatch builds the cache entry for one newspaper search hit.
func NewspaperMatch(personID string, item NewspaperItem) Match {
	return Match{
		PersonID:   personID,
		Source:     CacheSourceNewspapers,
		ExternalID: item.ID,
		URL:        item.URL,
		Title:      item.Title,
		Snippet:    item.Snippet,
		Score:      ScoreNewspapers,
		RawJSON:    rawJSON(item),
	}
}

// TreeMatch builds the cache entry for one collaborative-tree person.
func TreeMatch(personID string, person TreePerson) Match {
	snippet := fmt.Sprintf("%s %s, b. %s, d. %s",
		person.FirstName, person.LastName, person.BirthDate, person.DeathDate)
	return Match{
		PersonID:   personID,
		Source:     CacheSourceWikiTree,
		ExternalID: person.ID,
		URL:        person.URL,
		Title:      person.Name,
		Snippet:    snippet,
		Score:      ScoreWikiTree,
		RawJSON:    rawJSON(person),
	}
}

// ArchiveMatch builds the cache entry for one civil-records hit.
func ArchiveMatch(personID string, record ArchiveRecord) Match {
	snippet := fmt.Sprintf("%s - %s - %s",
		record.Date, record.Place, strings.Join(record.PersonNames, ", "))
	return Match{
		PersonID:   personID,
		Source:     CacheSourceOpenArch,
		ExternalID: record.ID,
		URL:        record.ArchiveURL,
		Title:      record.Title,
		Snippet:    snippet,
		Score:      ScoreOpenArch,
		RawJSON:    rawJSON(record),
	}
}

// rawJSON serialises a result for the forensic raw_json column.
// The result types contain only plain fields, so marshalling cannot
// realistically fail; an empty object stands in if it somehow does.
func rawJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}
