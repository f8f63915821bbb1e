package domain

import "strings"

// PersonQuery describes the person a research request is about.
// It is the shared input projected onto each provider's own request
// shape; it is never mutated after construction.
type PersonQuery struct {
	// GivenName is the person's given/first name.
	GivenName string

	// Surname is the person's surname/last name.
	Surname string

	// BirthYear is the birth year (YYYY), if known.
	BirthYear string

	// BirthPlace is the birth place, if known.
	BirthPlace string

	// DeathYear is the death year (YYYY), if known.
	DeathYear string

	// DeathPlace is the death place, if known.
	DeathPlace string

	// PersonID is an optional stable identifier to associate cached
	// matches with. Empty for open-ended searches.
	PersonID string
}

// FullName returns the concatenated name used by free-text providers.
func (q PersonQuery) FullName() string {
	return strings.TrimSpace(q.GivenName + " " + q.Surname)
}

// Validate checks the minimum fields required to research a person.
func (q PersonQuery) Validate() error {
	if strings.TrimSpace(q.GivenName) == "" || strings.TrimSpace(q.Surname) == "" {
		return ErrInvalidInput
	}
	return nil
}

// StartOfYear expands a YYYY year to the first day of that year
// (YYYY-01-01) for date-bounded providers. Empty input stays empty.
func StartOfYear(year string) string {
	if year == "" {
		return ""
	}
	return year + "-01-01"
}

// EndOfYear expands a YYYY year to the last day of that year
// (YYYY-12-31) for date-bounded providers. Empty input stays empty.
func EndOfYear(year string) string {
	if year == "" {
		return ""
	}
	return year + "-12-31"
}
