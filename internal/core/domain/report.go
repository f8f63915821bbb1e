package domain

// NewspaperOutcome captures one source's result within an aggregate
// report: either a failure (Err set, nothing cached) or a success.
// Searched distinguishes "invoked with zero hits" from "not applicable".
type NewspaperOutcome struct {
	Searched bool
	Err      error
	Items    []NewspaperItem
}

// TreeOutcome is the collaborative-tree slot of an aggregate report.
type TreeOutcome struct {
	Searched bool
	Err      error
	Persons  []TreePerson
}

// ArchiveOutcome is the civil-records slot of an aggregate report.
type ArchiveOutcome struct {
	Searched bool
	Err      error
	Records  []ArchiveRecord
}

// AggregateReport is the assembled outcome of one cross-source search.
// It echoes the input person fields and carries each invoked source's
// results or error. Ephemeral: constructed per request, never persisted.
type AggregateReport struct {
	GivenName string
	Surname   string
	BirthYear string
	DeathYear string

	// SourcesSearched lists the sources actually invoked, failed ones
	// included. Sources that were requested but gated out are absent.
	SourcesSearched []string

	Newspapers NewspaperOutcome
	Tree       TreeOutcome
	Archive    ArchiveOutcome

	// TotalResults sums result counts across successful sources;
	// errored sources contribute zero.
	TotalResults int
}
