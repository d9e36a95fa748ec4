package engine

import (
	"context"

	"go.uber.org/zap"

	"settlers/internal/catalog"
	"settlers/internal/random"
)

// RollDice rolls for the current player. The roll always counts. A seven
// first collects every discard decision and only then debits the hands; a
// player whose decision fails discards at random instead.
func (g *Game) RollDice(ctx context.Context, id string) (int, error) {
	p, err := g.requireTurn(id)
	if err != nil {
		return 0, err
	}
	if g.turn.rolled {
		return 0, ErrAlreadyRolled
	}
	d1, d2 := random.Roll(g.rng)
	total := d1 + d2
	g.commitRoll(p, d1, d2)

	if total == 7 {
		discards := g.collectDiscards(ctx)
		for _, q := range g.players {
			h, ok := discards[q.ID]
			if !ok {
				continue
			}
			q.RemoveResources(h)
			g.notify(Event{Type: EventDiscarded, Player: q.ID, Data: map[string]any{
				"count": h.Total(), "resources": h,
			}})
		}
		g.turn.thiefPending = true
		return total, nil
	}

	for _, q := range g.players {
		gain := g.production(q.ID, total)
		if len(gain) == 0 {
			continue
		}
		if err := q.AddResources(gain); err != nil {
			return total, err
		}
		g.notify(Event{Type: EventProduced, Player: q.ID, Data: map[string]any{"resources": gain}})
	}
	return total, nil
}

func (g *Game) commitRoll(p *Player, d1, d2 int) {
	g.turn.rolled = true
	g.lastRoll = d1 + d2
	g.log.Debug("dice rolled", zap.String("player", p.ID), zap.Int("total", g.lastRoll))
	g.notify(Event{Type: EventDiceRolled, Player: p.ID, Data: map[string]any{
		"dice": []int{d1, d2}, "total": g.lastRoll,
	}})
}

// collectDiscards asks every player over the limit to give up half their
// hand, rounded down.
func (g *Game) collectDiscards(ctx context.Context) map[string]catalog.Hand {
	out := make(map[string]catalog.Hand)
	for _, q := range g.players {
		if !q.HasMoreThan(g.cfg.DiscardLimit) {
			continue
		}
		count := q.ResourceCount() / 2
		h, err := g.chooseDiscard(ctx, q, count)
		if err != nil {
			g.log.Info("discard chosen at random", zap.String("player", q.ID), zap.Error(err))
			h = g.randomCards(q.resources, count)
		}
		out[q.ID] = h
	}
	return out
}

// randomCards draws count cards from hand uniformly without replacement.
func (g *Game) randomCards(hand catalog.Hand, count int) catalog.Hand {
	left := hand.Clone()
	total := left.Total()
	out := catalog.Hand{}
	for range min(count, total) {
		n := g.rng.IntN(total)
		for _, r := range catalog.Producing() {
			if n < left[r] {
				left[r]--
				out[r]++
				break
			}
			n -= left[r]
		}
		total--
	}
	return out
}

// production is what id earns from a roll: one card per settlement and two
// per city on every matching hex the thief is not on.
func (g *Game) production(id string, roll int) catalog.Hand {
	gain := catalog.Hand{}
	for _, hid := range g.board.HexesWithNumber(roll) {
		h, _ := g.board.Hex(hid)
		if h.Thief || h.Desert() {
			continue
		}
		for _, vid := range h.Vertices {
			v, _ := g.board.Vertex(vid)
			if v.Owner != id {
				continue
			}
			if v.City {
				gain[h.Resource] += 2
			} else {
				gain[h.Resource]++
			}
		}
	}
	return gain.Clone()
}

// EndTurn passes play to the next seat.
func (g *Game) EndTurn(id string) error {
	p, err := g.requireTurn(id)
	if err != nil {
		return err
	}
	if !g.turn.rolled {
		return ErrNotRolled
	}
	if g.turn.thiefPending {
		return ErrThiefPending
	}
	g.current = (g.current + 1) % len(g.players)
	g.turnNum++
	g.turn = newTurnState()
	g.notify(Event{Type: EventTurnEnd, Player: p.ID, Data: map[string]any{
		"next": g.players[g.current].ID, "turn": g.turnNum,
	}})
	return nil
}
