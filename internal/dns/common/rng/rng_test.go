package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeeded_Reproducible(t *testing.T) {
	a := NewSeeded(42)
	b := NewSeeded(42)

	assert.True(t, a.Seeded())
	assert.Equal(t, a.QueryID(), b.QueryID())
	assert.Equal(t, a.IntN(13), b.IntN(13))
}

func TestSeeded_RepeatedDrawsAreStable(t *testing.T) {
	src := NewSeeded(7)

	first := src.QueryID()
	for range 5 {
		assert.Equal(t, first, src.QueryID())
	}

	pick := src.IntN(13)
	for range 5 {
		assert.Equal(t, pick, src.IntN(13))
	}
}

func TestSeeded_DifferentSeedsDiverge(t *testing.T) {
	// Two seeds drawing the same id would be a 1-in-65536 coincidence; three
	// distinct seeds all colliding means the seed is being ignored.
	ids := map[uint16]bool{
		NewSeeded(1).QueryID():   true,
		NewSeeded(2).QueryID():   true,
		NewSeeded(100).QueryID(): true,
	}
	assert.Greater(t, len(ids), 1)
}

func TestUnseeded(t *testing.T) {
	src := New()
	assert.False(t, src.Seeded())

	for range 100 {
		n := src.IntN(13)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 13)
	}
}
