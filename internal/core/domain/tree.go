package domain

// TreeSearch is the request shape for the collaborative-tree registry.
// All fields are optional; empty fields are omitted from the upstream
// field list entirely.
type TreeSearch struct {
	FirstName     string
	LastName      string
	BirthDate     string // YYYY
	DeathDate     string // YYYY
	BirthLocation string
	DeathLocation string

	// Limit is the maximum number of matches; defaults to 20.
	Limit int
}

// TreePerson is a person profile from the collaborative tree.
type TreePerson struct {
	ID            string
	Name          string
	FirstName     string
	LastName      string
	BirthDate     string
	DeathDate     string
	BirthLocation string
	DeathLocation string

	// Privacy is the profile's numeric privacy level.
	Privacy int

	URL string
}
