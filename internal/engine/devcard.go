package engine

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"settlers/internal/catalog"
)

// BuildDevelopmentCard buys the top card of the deck. It cannot be played
// until a later turn.
func (g *Game) BuildDevelopmentCard(id string) (catalog.DevCard, error) {
	p, err := g.prepareBuild(id, catalog.DevelopmentCard)
	if err != nil {
		return 0, err
	}
	if !p.RemoveResources(catalog.DevelopmentCard.Cost()) {
		return 0, ErrCannotAfford
	}
	c, ok := g.deck.Draw()
	if !ok {
		return 0, ErrNoSupply
	}
	p.AddDevelopmentCard(c)
	g.turn.bought[c]++

	g.notify(Event{Type: EventCardBought, Player: p.ID, Data: map[string]any{"remaining": g.deck.Len()}})
	g.notify(Event{Type: EventCardBought, Player: p.ID, Private: true, Data: map[string]any{"card": c.String()}})
	g.checkWin(p)
	return c, nil
}

// PlayDevelopmentCard plays c for the current player. At most one card is
// played per turn, before or after rolling.
func (g *Game) PlayDevelopmentCard(ctx context.Context, id string, c catalog.DevCard) error {
	p, err := g.requireTurn(id)
	if err != nil {
		return err
	}
	switch {
	case !c.Valid():
		return fmt.Errorf("%w: card %d", ErrInvalidTarget, c)
	case !c.Playable():
		return ErrNotPlayable
	case p.DevCard(c) == 0:
		return fmt.Errorf("%w: %s", ErrNoSuchCard, c)
	case p.DevCard(c) <= g.turn.bought[c]:
		return fmt.Errorf("%w: %s", ErrBoughtThisTurn, c)
	case g.turn.played:
		return ErrAlreadyPlayed
	case g.turn.thiefPending:
		return ErrThiefPending
	}
	effect, err := g.effects.Get(c)
	if err != nil {
		return err
	}

	if err := effect.Resolve(ctx, &cardTable{g: g, p: p}); err != nil {
		return fmt.Errorf("play %s: %w", c, err)
	}
	p.RemoveDevelopmentCard(c)
	g.turn.played = true
	g.log.Debug("card played", zap.String("player", p.ID), zap.Stringer("card", c))
	g.notify(Event{Type: EventCardPlayed, Player: p.ID, Data: map[string]any{"card": c.String()}})
	g.checkWin(p)
	return nil
}
