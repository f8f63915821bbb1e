package domain

// NewspaperSearch is the request shape for the historic newspaper
// provider. Dates are YYYY-MM-DD; the provider itself wants digits-only
// values, which the connector handles.
type NewspaperSearch struct {
	// Query is the free/proximity text to search for.
	Query string

	// State optionally restricts results to one US state.
	State string

	// StartDate optionally bounds the date range (YYYY-MM-DD).
	StartDate string

	// EndDate optionally bounds the date range (YYYY-MM-DD).
	EndDate string

	// Page is the 1-based result page. The provider exposes native
	// paging only; callers re-invoke for subsequent pages.
	Page int
}

// NewspaperItem is one digitised newspaper page mentioning the query.
type NewspaperItem struct {
	ID      string
	Title   string
	Date    string
	Page    int
	Edition int
	LCCN    string
	URL     string

	// Snippet is the OCR excerpt, truncated at the adapter boundary.
	Snippet string
}

// NewspaperResults is a single page of newspaper search results.
type NewspaperResults struct {
	// TotalItems is the provider's total hit count across all pages.
	TotalItems int

	Items []NewspaperItem
}

// NewspaperPageRequest identifies one newspaper page for full OCR retrieval.
type NewspaperPageRequest struct {
	// LCCN is the Library of Congress Control Number of the title.
	LCCN string

	// Date is the publication date (YYYY-MM-DD).
	Date string

	// Edition defaults to 1 when zero.
	Edition int

	// Page is the 1-based page (sequence) number.
	Page int
}

// NewspaperPage is the full OCR text and image location for one page.
type NewspaperPage struct {
	URL      string
	ImageURL string
	OCRText  string
}

// NewspaperPageView is the caller-facing page shape: OCR text truncated
// at the orchestration boundary, with the true untruncated length kept.
type NewspaperPageView struct {
	URL      string
	ImageURL string
	OCRText  string

	// OCRLength is the length of the OCR text before truncation.
	OCRLength int
}
