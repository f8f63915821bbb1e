package findagrave

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorialURL(t *testing.T) {
	assert.Equal(t, "https://www.findagrave.com/memorial/12345", MemorialURL("12345"))
}

func TestMemorialIDFromRecord(t *testing.T) {
	id, err := MemorialIDFromRecord("ark:/61903/1:1:QVXJ-8M2")
	require.NoError(t, err)
	assert.Equal(t, "QVXJ-8M2", id)

	// Plain ids pass through unchanged.
	id, err = MemorialIDFromRecord("12345")
	require.NoError(t, err)
	assert.Equal(t, "12345", id)

	_, err = MemorialIDFromRecord("")
	assert.Error(t, err)
}
