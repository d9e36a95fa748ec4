package engine

import (
	"context"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"settlers/internal/board"
	"settlers/internal/catalog"
)

// MoveThief resolves the thief move owed after a seven. An empty victim
// means: steal from the only candidate, ask when there are several, and
// skip the steal when there are none.
func (g *Game) MoveThief(ctx context.Context, id string, hex board.HexID, victim string) error {
	p, err := g.requireTurn(id)
	if err != nil {
		return err
	}
	if !g.turn.thiefPending {
		return ErrNoThiefMove
	}
	if err := g.relocateThief(ctx, p, hex, victim); err != nil {
		return err
	}
	g.turn.thiefPending = false
	return nil
}

// ResolveThief asks the current player for the thief's hex and victim.
func (g *Game) ResolveThief(ctx context.Context, id string) error {
	if _, err := g.requireTurn(id); err != nil {
		return err
	}
	if !g.turn.thiefPending {
		return ErrNoThiefMove
	}
	hex, err := g.chooseHex(ctx, id, PurposeThief, g.AvailableThiefSpots())
	if err != nil {
		return err
	}
	return g.MoveThief(ctx, id, hex, "")
}

// StealCandidates lists the opponents of id with a building on hex and at
// least one card.
func (g *Game) StealCandidates(id string, hex board.HexID) []string {
	h, ok := g.board.Hex(hex)
	if !ok {
		return nil
	}
	var out []string
	for _, vid := range h.Vertices {
		v, _ := g.board.Vertex(vid)
		if v.Owner == "" || v.Owner == id || slices.Contains(out, v.Owner) {
			continue
		}
		if q := g.byID[v.Owner]; q != nil && q.ResourceCount() > 0 {
			out = append(out, v.Owner)
		}
	}
	slices.Sort(out)
	return out
}

// relocateThief makes every decision first and commits only when all of
// them succeeded.
func (g *Game) relocateThief(ctx context.Context, p *Player, hex board.HexID, victim string) error {
	if _, ok := g.board.Hex(hex); !ok || hex == g.board.Thief() {
		return fmt.Errorf("%w: hex %d", ErrInvalidTarget, hex)
	}
	candidates := g.StealCandidates(p.ID, hex)
	switch {
	case victim != "":
		if !slices.Contains(candidates, victim) {
			return fmt.Errorf("%w: cannot steal from %q", ErrInvalidTarget, victim)
		}
	case len(candidates) == 1:
		victim = candidates[0]
	case len(candidates) > 1:
		v, err := g.choosePlayer(ctx, p.ID, PurposeSteal, candidates)
		if err != nil {
			return err
		}
		victim = v
	}

	if err := g.board.MoveThief(hex); err != nil {
		return err
	}
	g.notify(Event{Type: EventThiefMoved, Player: p.ID, Data: map[string]any{"hex": hex}})
	if victim == "" {
		return nil
	}

	q := g.byID[victim]
	r := g.randomCard(q)
	q.RemoveResources(catalog.Hand{r: 1})
	if err := p.AddResource(r); err != nil {
		return err
	}
	g.log.Debug("card stolen", zap.String("player", p.ID), zap.String("victim", victim))
	g.notify(Event{Type: EventStolen, Player: p.ID, Private: true, Data: map[string]any{
		"victim": victim, "resource": r.String(),
	}})
	return nil
}

// randomCard picks one card of q's hand uniformly.
func (g *Game) randomCard(q *Player) catalog.Resource {
	n := g.rng.IntN(q.ResourceCount())
	for _, r := range catalog.Producing() {
		if n < q.resources[r] {
			return r
		}
		n -= q.resources[r]
	}
	return catalog.Misc
}
