package domain

// Selectable source names as they appear in requests.
const (
	// SelectorAll is the wildcard selector expanding to every source
	// whose applicability gate passes for the query.
	SelectorAll = "all"

	// SourceNewspapers selects the Chronicling America newspaper search.
	SourceNewspapers = "newspapers"

	// SourceWikiTree selects the WikiTree collaborative tree.
	SourceWikiTree = "wikitree"

	// SourceOpenArch selects the Open Archives European records index.
	SourceOpenArch = "openarch"
)

// Cache source names form the fixed vocabulary stored with each match.
const (
	CacheSourceNewspapers = "chronicling_america"
	CacheSourceWikiTree   = "wikitree"
	CacheSourceOpenArch   = "openarch"
)

// Fixed per-source confidence scores. A collaborative-tree hit is a
// structured person match, a newspaper hit is merely a text mention
// that may not refer to the queried individual at all.
const (
	ScoreNewspapers = 0.5
	ScoreOpenArch   = 0.6
	ScoreWikiTree   = 0.7
)

// SourceSelector is the set of sources a request targets.
// An empty selector is treated as the wildcard.
type SourceSelector []string

// Valid reports whether every entry is a known selector name.
func (s SourceSelector) Valid() bool {
	for _, name := range s {
		switch name {
		case SelectorAll, SourceNewspapers, SourceWikiTree, SourceOpenArch:
		default:
			return false
		}
	}
	return true
}

// Includes reports whether the named source is selected, either
// explicitly or via the wildcard.
func (s SourceSelector) Includes(name string) bool {
	if len(s) == 0 {
		return true
	}
	for _, sel := range s {
		if sel == SelectorAll || sel == name {
			return true
		}
	}
	return false
}
