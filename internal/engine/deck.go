package engine

import (
	"settlers/internal/catalog"
	"settlers/internal/random"
)

// Deck is the face-down development card stack.
type Deck struct {
	cards []catalog.DevCard
}

// NewDeck creates a shuffled deck from the given cards.
func NewDeck(cards []catalog.DevCard, src random.Source) *Deck {
	d := &Deck{cards: make([]catalog.DevCard, len(cards))}
	copy(d.cards, cards)
	src.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
	return d
}

// Draw removes and returns the top card.
func (d *Deck) Draw() (catalog.DevCard, bool) {
	if len(d.cards) == 0 {
		return 0, false
	}
	c := d.cards[0]
	d.cards = d.cards[1:]
	return c, true
}

// Len returns the number of cards remaining.
func (d *Deck) Len() int {
	return len(d.cards)
}
