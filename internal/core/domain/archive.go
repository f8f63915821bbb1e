package domain

// Archive record type filters. RecordTypeAll means "no filter" and is
// omitted from the upstream query entirely.
const (
	RecordTypeCivil  = "civil"
	RecordTypeChurch = "church"
	RecordTypeNotary = "notary"
	RecordTypeAll    = "all"
)

// ArchiveSearch is the request shape for the European civil-records index.
type ArchiveSearch struct {
	// Name is the free-text person name.
	Name string

	// Place optionally restricts by place name.
	Place string

	// YearFrom / YearTo optionally bound the record years (YYYY).
	YearFrom string
	YearTo   string

	// RecordType filters by record kind; RecordTypeAll disables the filter.
	RecordType string

	// CountryCode is an optional ISO code (NL, BE, FR).
	CountryCode string

	// Limit is the page size; defaults to 20.
	Limit int
}

// ArchiveRecord is one civil/church/notary record hit.
type ArchiveRecord struct {
	ID    string
	Title string
	Date  string
	Place string

	// RecordType is the record category, "unknown" when absent upstream.
	RecordType string

	// PersonNames lists the persons named in the record.
	PersonNames []string

	ArchiveURL string
	ImageURL   string
}
