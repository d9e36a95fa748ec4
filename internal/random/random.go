// Package random provides the seedable randomness used for board layout,
// deck shuffles, dice and steals.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

// Source is the subset of *rand.Rand the game needs.
type Source interface {
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

// New returns a deterministic source for the given seed.
func New(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// Thrower is implemented by sources that decide dice throws themselves.
type Thrower interface {
	Throw() (int, int)
}

// Roll throws two six-sided dice, deferring to src when it is a Thrower.
func Roll(src Source) (int, int) {
	if t, ok := src.(Thrower); ok {
		return t.Throw()
	}
	return src.IntN(6) + 1, src.IntN(6) + 1
}
