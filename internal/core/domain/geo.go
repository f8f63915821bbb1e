package domain

import "strings"

// usStates is the fixed 50-state name list scanned for newspaper
// search state extraction.
var usStates = []string{
	"Alabama", "Alaska", "Arizona", "Arkansas", "California", "Colorado", "Connecticut",
	"Delaware", "Florida", "Georgia", "Hawaii", "Idaho", "Illinois", "Indiana", "Iowa",
	"Kansas", "Kentucky", "Louisiana", "Maine", "Maryland", "Massachusetts", "Michigan",
	"Minnesota", "Mississippi", "Missouri", "Montana", "Nebraska", "Nevada", "New Hampshire",
	"New Jersey", "New Mexico", "New York", "North Carolina", "North Dakota", "Ohio",
	"Oklahoma", "Oregon", "Pennsylvania", "Rhode Island", "South Carolina", "South Dakota",
	"Tennessee", "Texas", "Utah", "Vermont", "Virginia", "Washington", "West Virginia",
	"Wisconsin", "Wyoming",
}

// europeanKeywords gates the Open Archives provider, which only covers
// Dutch, Belgian and French records. Deliberately low precision: a
// substring scan, not a geocoder.
var europeanKeywords = []string{
	"Netherlands", "Belgium", "France", "Amsterdam", "Rotterdam", "Brussels", "Paris",
	"NL", "BE", "FR",
}

// ExtractUSState returns the first US state name found as a substring
// of place, or "" when none matches.
func ExtractUSState(place string) string {
	for _, state := range usStates {
		if strings.Contains(place, state) {
			return state
		}
	}
	return ""
}

// IsEuropeanLocation reports whether either place mentions one of the
// fixed European country/city keywords or ISO codes, case-insensitively.
func IsEuropeanLocation(birthPlace, deathPlace string) bool {
	places := strings.ToLower(birthPlace + " " + deathPlace)
	for _, keyword := range europeanKeywords {
		if strings.Contains(places, strings.ToLower(keyword)) {
			return true
		}
	}
	return false
}
