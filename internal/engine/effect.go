package engine

import (
	"context"
	"fmt"

	"settlers/internal/board"
	"settlers/internal/catalog"
)

// CardEffect is what playing a development card does.
type CardEffect interface {
	Card() catalog.DevCard
	// Resolve makes its decisions before mutating anything, so a failed
	// decision leaves the game untouched.
	Resolve(ctx context.Context, t Table) error
}

// Table is the slice of the game a card effect may touch. It always acts
// for the player who played the card.
type Table interface {
	Player() string
	Opponents() []string
	ChooseResource(ctx context.Context, purpose Purpose) (catalog.Resource, error)
	// Grant gives the player cards from the bank.
	Grant(h catalog.Hand) error
	// Monopolize moves every opponent's cards of r to the player and
	// returns how many were taken.
	Monopolize(r catalog.Resource) (int, error)
	// MoveThief asks for a hex and victim and moves the thief.
	MoveThief(ctx context.Context) error
	RecordKnight()
	// PlaceFreeRoads asks for up to n roads and places them at no cost. It
	// returns how many were placed.
	PlaceFreeRoads(ctx context.Context, n int) (int, error)
}

// EffectRegistry maps development cards to their effects.
type EffectRegistry struct {
	effects map[catalog.DevCard]CardEffect
}

func NewEffectRegistry() *EffectRegistry {
	return &EffectRegistry{effects: make(map[catalog.DevCard]CardEffect)}
}

func (r *EffectRegistry) Register(e CardEffect) {
	r.effects[e.Card()] = e
}

func (r *EffectRegistry) Get(c catalog.DevCard) (CardEffect, error) {
	e, ok := r.effects[c]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoEffect, c)
	}
	return e, nil
}

type cardTable struct {
	g *Game
	p *Player
}

var _ Table = (*cardTable)(nil)

func (t *cardTable) Player() string { return t.p.ID }

func (t *cardTable) Opponents() []string {
	var out []string
	for _, q := range t.g.players {
		if q != t.p {
			out = append(out, q.ID)
		}
	}
	return out
}

func (t *cardTable) ChooseResource(ctx context.Context, purpose Purpose) (catalog.Resource, error) {
	return t.g.chooseResource(ctx, t.p.ID, purpose)
}

func (t *cardTable) Grant(h catalog.Hand) error {
	if err := t.p.AddResources(h); err != nil {
		return err
	}
	t.g.notify(Event{Type: EventGranted, Player: t.p.ID, Data: map[string]any{"resources": h.Clone()}})
	return nil
}

func (t *cardTable) Monopolize(r catalog.Resource) (int, error) {
	if !r.Holdable() {
		return 0, fmt.Errorf("%w: %s", ErrMiscInHand, r)
	}
	taken := 0
	for _, q := range t.g.players {
		n := q.Resource(r)
		if q == t.p || n == 0 {
			continue
		}
		q.RemoveResources(catalog.Hand{r: n})
		taken += n
	}
	if err := t.p.AddResources(catalog.Hand{r: taken}); err != nil {
		return 0, err
	}
	t.g.notify(Event{Type: EventMonopoly, Player: t.p.ID, Data: map[string]any{
		"resource": r.String(), "taken": taken,
	}})
	return taken, nil
}

func (t *cardTable) MoveThief(ctx context.Context) error {
	hex, err := t.g.chooseHex(ctx, t.p.ID, PurposeThief, t.g.AvailableThiefSpots())
	if err != nil {
		return err
	}
	return t.g.relocateThief(ctx, t.p, hex, "")
}

func (t *cardTable) RecordKnight() { t.g.recordKnight(t.p) }

func (t *cardTable) PlaceFreeRoads(ctx context.Context, n int) (int, error) {
	n = min(n, t.p.RemainingPieces(catalog.Road))
	var chosen []board.EdgeID
	for len(chosen) < n {
		spots := t.g.roadSpots(t.p.ID, chosen)
		if len(spots) == 0 {
			break
		}
		e, err := t.g.chooseEdge(ctx, t.p.ID, PurposeFreeRoad, spots)
		if err != nil {
			return 0, err
		}
		chosen = append(chosen, e)
	}
	for _, e := range chosen {
		if err := t.g.board.SetEdgeOwner(e, t.p.ID); err != nil {
			return 0, err
		}
		if err := t.p.AddRoad(e); err != nil {
			return 0, err
		}
		t.g.notify(Event{Type: EventRoadBuilt, Player: t.p.ID, Data: map[string]any{"edge": e, "free": true}})
	}
	if len(chosen) > 0 {
		t.g.updateLongestRoad()
	}
	return len(chosen), nil
}
