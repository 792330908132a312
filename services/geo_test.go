package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineMiles(t *testing.T) {
	// Downtown Minneapolis to the Riverside seed coordinates, roughly 8.6 mi.
	dist := haversineMiles(44.9778, -93.265, 44.9537, -93.09)
	assert.InDelta(t, 8.6, dist, 0.5)

	assert.InDelta(t, 0, haversineMiles(44.9778, -93.265, 44.9778, -93.265), 1e-9)
}

func TestGeoMemberNames(t *testing.T) {
	id, ok := parseMemberName(memberName(42))
	assert.True(t, ok)
	assert.Equal(t, 42, id)

	_, ok = parseMemberName("not-a-shelter")
	assert.False(t, ok)
}
