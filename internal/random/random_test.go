package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsDeterministic(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 50; i++ {
		require.Equal(t, a.IntN(1000), b.IntN(1000))
	}
}

func TestRollRange(t *testing.T) {
	src := New(7)
	seen := map[int]bool{}
	for i := 0; i < 2000; i++ {
		d1, d2 := Roll(src)
		require.True(t, d1 >= 1 && d1 <= 6)
		require.True(t, d2 >= 1 && d2 <= 6)
		seen[d1+d2] = true
	}
	for total := 2; total <= 12; total++ {
		assert.True(t, seen[total], "total %d never rolled", total)
	}
}

type fixedThrow struct {
	Source
	d1, d2 int
}

func (f fixedThrow) Throw() (int, int) { return f.d1, f.d2 }

func TestRollDefersToThrower(t *testing.T) {
	src := fixedThrow{Source: New(1), d1: 3, d2: 4}
	d1, d2 := Roll(src)
	assert.Equal(t, 3, d1)
	assert.Equal(t, 4, d2)
}

func TestNewSeed(t *testing.T) {
	s1, err := NewSeed()
	require.NoError(t, err)
	s2, err := NewSeed()
	require.NoError(t, err)
	assert.NotEqual(t, s1, s2)
}
