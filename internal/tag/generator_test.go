package tag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateShape(t *testing.T) {
	s := Generate(GenerateOptions{Samples: 100, Interval: 0.1, Seed: 42})

	require.Len(t, s.A, 100)
	require.Len(t, s.B, 100)
	require.Len(t, s.Positions, 200)

	for i := range s.A {
		assert.Equal(t, s.A[i].Time, s.B[i].Time)
		assert.Equal(t, s.A[i].Distance, s.B[i].Distance)
		assert.Equal(t, "B", s.A[i].ContactID)
		assert.Equal(t, "A", s.B[i].ContactID)
	}
	assert.Equal(t, "A", s.Positions[0].TagID)
	assert.Equal(t, "B", s.Positions[1].TagID)
	assert.Equal(t, 9.9, s.A[99].Time)
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(GenerateOptions{Samples: 30, Seed: 3})
	b := Generate(GenerateOptions{Samples: 30, Seed: 3})
	assert.Equal(t, a, b)
}

func TestGenerateMismatchesAndDuplicates(t *testing.T) {
	s := Generate(GenerateOptions{Samples: 40, Seed: 9, Mismatches: 4, DuplicateIDs: true})

	diff := 0
	for i := range s.A {
		if s.A[i].Distance != s.B[i].Distance {
			diff++
		}
	}
	assert.Equal(t, 4, diff)

	for _, p := range s.Positions {
		assert.Equal(t, "A", p.TagID)
	}
}
