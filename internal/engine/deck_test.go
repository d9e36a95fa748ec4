package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"settlers/internal/catalog"
	"settlers/internal/random"
)

func TestDeckDrawsWholePool(t *testing.T) {
	d := NewDeck(catalog.DevelopmentPool(), random.New(7))
	assert.Equal(t, 25, d.Len())

	counts := map[catalog.DevCard]int{}
	for {
		c, ok := d.Draw()
		if !ok {
			break
		}
		counts[c]++
	}
	assert.Equal(t, 0, d.Len())
	for _, c := range catalog.DevCards() {
		assert.Equal(t, catalog.PoolCount(c), counts[c], c.String())
	}
}

func TestDeckShuffleIsSeeded(t *testing.T) {
	a := NewDeck(catalog.DevelopmentPool(), random.New(42))
	b := NewDeck(catalog.DevelopmentPool(), random.New(42))
	assert.Equal(t, a.cards, b.cards)
	assert.NotEqual(t, catalog.DevelopmentPool(), a.cards)
}
