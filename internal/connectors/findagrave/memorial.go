// Package findagrave provides helpers for the Find A Grave index as
// exposed through the FamilySearch collection 2221801 (Find A Grave
// Index 1600s-Current). There is no direct search API: record searches
// go through FamilySearch, and this package turns the memorial ids
// found in those records into browsable memorial URLs.
package findagrave

import (
	"fmt"
	"strings"
)

// MemorialBaseURL is where Find A Grave memorials are browsed.
const MemorialBaseURL = "https://www.findagrave.com/memorial/"

// CollectionID is the FamilySearch collection holding the index.
const CollectionID = "2221801"

// MemorialURL constructs the public memorial page URL for a memorial id.
func MemorialURL(memorialID string) string {
	return MemorialBaseURL + memorialID
}

// MemorialIDFromRecord extracts a memorial id from a FamilySearch
// record id. Record ids typically look like "ark:/61903/1:1:XXXX-YYY";
// the trailing segment carries the memorial reference. Returns an
// error when the record id is empty.
func MemorialIDFromRecord(recordID string) (string, error) {
	if recordID == "" {
		return "", fmt.Errorf("empty record id")
	}
	if idx := strings.LastIndex(recordID, ":"); idx >= 0 {
		return recordID[idx+1:], nil
	}
	return recordID, nil
}
