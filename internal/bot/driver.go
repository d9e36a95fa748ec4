package bot

import (
	"context"
	"errors"
	"fmt"

	"settlers/internal/catalog"
	"settlers/internal/engine"
	"settlers/internal/errs"
)

// maxActions bounds the build loop of a single turn.
const maxActions = 50

// PlayTurn plays id's whole turn. During setup it makes the seat's initial
// placements; afterwards it rolls, settles the thief, plays one action card,
// builds greedily and passes the turn.
func (b *Bot) PlayTurn(ctx context.Context, g *engine.Game, id string) error {
	switch {
	case g.Phase() == engine.PhaseEnded:
		return engine.ErrGameOver
	case g.CurrentPlayer() != id:
		return engine.ErrNotYourTurn
	case g.Phase() == engine.PhaseSetup:
		return b.placeInitial(ctx, g, id)
	}

	// 1. Chase the thief off our own hexes before rolling.
	if b.blocked(id) {
		if err := b.tryCard(ctx, g, id, catalog.Knight); err != nil {
			return err
		}
	}

	// 2. Roll and move the thief on a seven.
	if !g.Rolled() {
		if _, err := g.RollDice(ctx, id); err != nil {
			return fmt.Errorf("roll: %w", err)
		}
	}
	if g.ThiefPending() {
		if err := g.ResolveThief(ctx, id); err != nil {
			return fmt.Errorf("thief: %w", err)
		}
	}

	// 3. One action card per turn.
	for _, c := range []catalog.DevCard{catalog.YearOfPlenty, catalog.Monopoly, catalog.RoadBuilding, catalog.Knight} {
		if err := b.tryCard(ctx, g, id, c); err != nil {
			return err
		}
	}

	// 4. Spend the hand.
	if err := b.build(ctx, g, id); err != nil {
		return err
	}
	if g.Phase() == engine.PhaseEnded {
		return nil
	}
	return g.EndTurn(id)
}

// PlayGame runs a game to the end with this bot in every seat. It gives up
// after maxTurns main-phase turns.
func (b *Bot) PlayGame(ctx context.Context, g *engine.Game, maxTurns int) error {
	for g.Phase() != engine.PhaseEnded {
		if err := ctx.Err(); err != nil {
			return err
		}
		if g.Turn() > maxTurns {
			return fmt.Errorf("no winner after %d turns", maxTurns)
		}
		if err := b.PlayTurn(ctx, g, g.CurrentPlayer()); err != nil {
			return err
		}
	}
	return nil
}

func (b *Bot) placeInitial(ctx context.Context, g *engine.Game, id string) error {
	for g.Phase() == engine.PhaseSetup && g.CurrentPlayer() == id {
		if edges := g.AvailableRoadSpots(id); len(edges) > 0 {
			e, err := b.ChooseEdge(ctx, id, engine.PurposeInitialRoad, edges)
			if err != nil {
				return err
			}
			if err := g.PlaceInitialRoad(id, e); err != nil {
				return fmt.Errorf("initial road: %w", err)
			}
			continue
		}
		v, err := b.ChooseVertex(ctx, id, engine.PurposeInitialSettlement, g.AvailableSettlementSpots(id))
		if err != nil {
			return err
		}
		if err := g.PlaceInitialSettlement(id, v); err != nil {
			return fmt.Errorf("initial settlement: %w", err)
		}
	}
	return nil
}

// blocked reports whether the thief sits next to one of id's buildings.
func (b *Bot) blocked(id string) bool {
	h, ok := b.board.Hex(b.board.Thief())
	if !ok {
		return false
	}
	for _, v := range h.Vertices {
		if vx, _ := b.board.Vertex(v); vx.Owner == id {
			return true
		}
	}
	return false
}

// tryCard plays c if the rules allow it right now. State and supply
// refusals are expected and swallowed.
func (b *Bot) tryCard(ctx context.Context, g *engine.Game, id string, c catalog.DevCard) error {
	if view, ok := g.Player(id); !ok || view.DevCards[c] == 0 {
		return nil
	}
	err := g.PlayDevelopmentCard(ctx, id, c)
	if err == nil || errors.Is(err, errs.ErrState) || errors.Is(err, errs.ErrInsufficient) {
		return nil
	}
	return fmt.Errorf("play %s: %w", c, err)
}

// build buys the most valuable thing it can reach, trading with the bank
// when the trade completes the cost, until nothing more fits.
func (b *Bot) build(ctx context.Context, g *engine.Game, id string) error {
	for range maxActions {
		if g.Phase() == engine.PhaseEnded {
			return nil
		}
		built := false
		for _, goal := range b.goals(g, id) {
			trades, ok := b.plan(g, id, goal.Cost())
			if !ok {
				continue
			}
			for _, t := range trades {
				if err := g.TradeWithBank(id, t.give, t.get); err != nil {
					return fmt.Errorf("bank trade: %w", err)
				}
			}
			if err := b.buy(ctx, g, id, goal); err != nil {
				return fmt.Errorf("build %s: %w", goal, err)
			}
			built = true
			break
		}
		if !built {
			return nil
		}
	}
	return nil
}

// goals lists the buildings worth buying now, best first.
func (b *Bot) goals(g *engine.Game, id string) []catalog.Building {
	var out []catalog.Building
	if g.RemainingSupply(id, catalog.City) > 0 && len(g.AvailableCitySpots(id)) > 0 {
		out = append(out, catalog.City)
	}
	canSettle := g.RemainingSupply(id, catalog.Settlement) > 0
	if canSettle && len(g.AvailableSettlementSpots(id)) > 0 {
		out = append(out, catalog.Settlement)
	} else if canSettle && g.RemainingSupply(id, catalog.Road) > 0 && len(g.AvailableRoadSpots(id)) > 0 {
		out = append(out, catalog.Road)
	}
	if g.DeckSize() > 0 {
		out = append(out, catalog.DevelopmentCard)
	}
	return out
}

type trade struct {
	give, get catalog.Resource
}

// plan returns the bank trades that turn id's hand into one covering cost.
func (b *Bot) plan(g *engine.Game, id string, cost catalog.Hand) ([]trade, bool) {
	view, ok := g.Player(id)
	if !ok {
		return nil, false
	}
	hand := view.Resources.Clone()
	var trades []trade
	for _, need := range catalog.Producing() {
		for hand[need] < cost[need] {
			give, ok := surplus(hand, cost, func(r catalog.Resource) int { return g.TradeRatio(id, r) })
			if !ok {
				return nil, false
			}
			hand[give] -= g.TradeRatio(id, give)
			hand[need]++
			trades = append(trades, trade{give: give, get: need})
		}
	}
	return trades, true
}

// surplus picks the resource with the most cards to spare beyond cost at
// its trade ratio.
func surplus(hand, cost catalog.Hand, ratio func(catalog.Resource) int) (catalog.Resource, bool) {
	pick, spare := catalog.Misc, 0
	for _, r := range catalog.Producing() {
		left := hand[r] - cost[r]
		if left >= ratio(r) && left > spare {
			pick, spare = r, left
		}
	}
	return pick, spare > 0
}

func (b *Bot) buy(ctx context.Context, g *engine.Game, id string, goal catalog.Building) error {
	switch goal {
	case catalog.City:
		v, err := b.ChooseVertex(ctx, id, engine.PurposeCity, g.AvailableCitySpots(id))
		if err != nil {
			return err
		}
		return g.BuildCity(id, v)
	case catalog.Settlement:
		v, err := b.ChooseVertex(ctx, id, engine.PurposeSettlement, g.AvailableSettlementSpots(id))
		if err != nil {
			return err
		}
		return g.BuildSettlement(id, v)
	case catalog.Road:
		e, err := b.ChooseEdge(ctx, id, engine.PurposeRoad, g.AvailableRoadSpots(id))
		if err != nil {
			return err
		}
		return g.BuildRoad(id, e)
	default:
		_, err := g.BuildDevelopmentCard(id)
		return err
	}
}

// Seats returns a presenter that sends bot seats' decisions to b and
// everything else to p.
func (b *Bot) Seats(p engine.Presenter, bots ...string) engine.Presenter {
	set := make(map[string]bool, len(bots))
	for _, id := range bots {
		set[id] = true
	}
	return &router{human: p, bot: b, seats: set}
}
