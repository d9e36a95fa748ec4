package engine

import (
	"context"
	"fmt"
	"slices"

	"settlers/internal/board"
	"settlers/internal/catalog"
)

// PlayerCanBuild reports whether the player's hand covers the cost of b and
// supply remains. It does not look at phase or turn.
func (g *Game) PlayerCanBuild(id string, b catalog.Building) bool {
	p, ok := g.byID[id]
	if !ok || !b.Valid() {
		return false
	}
	return g.RemainingSupply(id, b) > 0 && p.resources.Covers(b.Cost())
}

// BuildRoad places a road on e for the current player.
func (g *Game) BuildRoad(id string, e board.EdgeID) error {
	p, err := g.prepareBuild(id, catalog.Road)
	if err != nil {
		return err
	}
	if !g.roadSpotLegal(p.ID, e, nil) {
		return fmt.Errorf("%w: edge %d", ErrInvalidTarget, e)
	}
	if !p.RemoveResources(catalog.Road.Cost()) {
		return ErrCannotAfford
	}
	if err := g.board.SetEdgeOwner(e, p.ID); err != nil {
		return err
	}
	if err := p.AddRoad(e); err != nil {
		return err
	}
	g.notify(Event{Type: EventRoadBuilt, Player: p.ID, Data: map[string]any{"edge": e}})
	g.updateLongestRoad()
	g.checkWin(p)
	return nil
}

// BuildSettlement places a settlement on v for the current player.
func (g *Game) BuildSettlement(id string, v board.VertexID) error {
	p, err := g.prepareBuild(id, catalog.Settlement)
	if err != nil {
		return err
	}
	if !g.settlementSpotLegal(p.ID, v) {
		return fmt.Errorf("%w: vertex %d", ErrInvalidTarget, v)
	}
	if !p.RemoveResources(catalog.Settlement.Cost()) {
		return ErrCannotAfford
	}
	if err := g.board.SetVertexOwner(v, p.ID); err != nil {
		return err
	}
	if _, err := p.AddSettlement(v); err != nil {
		return err
	}
	data := map[string]any{"vertex": v}
	g.claimPort(p, v, data)
	g.notify(Event{Type: EventSettlementBuilt, Player: p.ID, Data: data})
	// A settlement can cut an opponent's road.
	g.updateLongestRoad()
	g.checkWin(p)
	return nil
}

// BuildCity upgrades the current player's settlement on v.
func (g *Game) BuildCity(id string, v board.VertexID) error {
	p, err := g.prepareBuild(id, catalog.City)
	if err != nil {
		return err
	}
	if !slices.Contains(p.settlements, v) {
		return fmt.Errorf("%w: vertex %d", ErrInvalidTarget, v)
	}
	if !p.RemoveResources(catalog.City.Cost()) {
		return ErrCannotAfford
	}
	if err := g.board.UpgradeToCity(v, p.ID); err != nil {
		return err
	}
	if _, err := p.UpgradeSettlement(v); err != nil {
		return err
	}
	g.notify(Event{Type: EventCityBuilt, Player: p.ID, Data: map[string]any{"vertex": v}})
	g.checkWin(p)
	return nil
}

// Build asks the player where to place b, then builds it there.
func (g *Game) Build(ctx context.Context, id string, b catalog.Building) error {
	if _, err := g.prepareBuild(id, b); err != nil {
		return err
	}
	switch b {
	case catalog.Road:
		e, err := g.chooseEdge(ctx, id, PurposeRoad, g.AvailableRoadSpots(id))
		if err != nil {
			return err
		}
		return g.BuildRoad(id, e)
	case catalog.Settlement:
		v, err := g.chooseVertex(ctx, id, PurposeSettlement, g.AvailableSettlementSpots(id))
		if err != nil {
			return err
		}
		return g.BuildSettlement(id, v)
	case catalog.City:
		v, err := g.chooseVertex(ctx, id, PurposeCity, g.AvailableCitySpots(id))
		if err != nil {
			return err
		}
		return g.BuildCity(id, v)
	case catalog.DevelopmentCard:
		_, err := g.BuildDevelopmentCard(id)
		return err
	}
	return fmt.Errorf("%w: building %d", ErrInvalidTarget, b)
}

// prepareBuild checks turn, supply and affordability, in that order.
func (g *Game) prepareBuild(id string, b catalog.Building) (*Player, error) {
	p, err := g.requireAction(id)
	if err != nil {
		return nil, err
	}
	if !b.Valid() {
		return nil, fmt.Errorf("%w: building %d", ErrInvalidTarget, b)
	}
	if g.RemainingSupply(id, b) <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoSupply, b)
	}
	if !p.resources.Covers(b.Cost()) {
		return nil, fmt.Errorf("%w: %s costs %s", ErrCannotAfford, b, b.Cost())
	}
	return p, nil
}

// AvailableSettlementSpots lists where id may place a settlement now.
// During setup no road connection is needed.
func (g *Game) AvailableSettlementSpots(id string) []board.VertexID {
	var out []board.VertexID
	for _, v := range g.board.Vertices() {
		switch g.phase {
		case PhaseSetup:
			if g.CurrentPlayer() == id && g.setup.pending == board.NoVertex && g.settlementSpotFree(v.ID) {
				out = append(out, v.ID)
			}
		case PhaseMain:
			if g.settlementSpotLegal(id, v.ID) {
				out = append(out, v.ID)
			}
		}
	}
	return out
}

// AvailableRoadSpots lists where id may place a road now.
func (g *Game) AvailableRoadSpots(id string) []board.EdgeID {
	switch g.phase {
	case PhaseSetup:
		if g.CurrentPlayer() != id || g.setup.pending == board.NoVertex {
			return nil
		}
		var out []board.EdgeID
		for _, e := range g.board.VertexEdges(g.setup.pending) {
			if edge, _ := g.board.Edge(e); edge.Owner == "" {
				out = append(out, e)
			}
		}
		return out
	case PhaseMain:
		return g.roadSpots(id, nil)
	}
	return nil
}

// AvailableCitySpots lists id's settlements.
func (g *Game) AvailableCitySpots(id string) []board.VertexID {
	p, ok := g.byID[id]
	if !ok || g.phase != PhaseMain {
		return nil
	}
	out := p.Settlements()
	slices.Sort(out)
	return out
}

// AvailableThiefSpots lists every hex but the thief's current one.
func (g *Game) AvailableThiefSpots() []board.HexID {
	var out []board.HexID
	for _, h := range g.board.Hexes() {
		if h.ID != g.board.Thief() {
			out = append(out, h.ID)
		}
	}
	return out
}

func (g *Game) roadSpots(id string, extra []board.EdgeID) []board.EdgeID {
	var out []board.EdgeID
	for _, e := range g.board.Edges() {
		if !slices.Contains(extra, e.ID) && g.roadSpotLegal(id, e.ID, extra) {
			out = append(out, e.ID)
		}
	}
	return out
}

// settlementSpotFree applies the distance rule: v and its neighbours are
// all unowned.
func (g *Game) settlementSpotFree(v board.VertexID) bool {
	vx, ok := g.board.Vertex(v)
	if !ok || vx.Owner != "" {
		return false
	}
	for _, n := range g.board.VertexNeighbors(v) {
		if nv, _ := g.board.Vertex(n); nv.Owner != "" {
			return false
		}
	}
	return true
}

// settlementSpotLegal also needs one of id's roads at v.
func (g *Game) settlementSpotLegal(id string, v board.VertexID) bool {
	if !g.settlementSpotFree(v) {
		return false
	}
	for _, e := range g.board.VertexEdges(v) {
		if edge, _ := g.board.Edge(e); edge.Owner == id {
			return true
		}
	}
	return false
}

// roadSpotLegal reports whether id may build on e. Edges in extra count as
// id's roads already; they are free roads chosen but not yet committed.
func (g *Game) roadSpotLegal(id string, e board.EdgeID, extra []board.EdgeID) bool {
	edge, ok := g.board.Edge(e)
	if !ok || edge.Owner != "" {
		return false
	}
	for _, end := range edge.Ends {
		vx, _ := g.board.Vertex(end)
		if vx.Owner == id {
			return true
		}
		if vx.Owner != "" {
			// An opponent's building blocks the way through.
			continue
		}
		for _, other := range g.board.VertexEdges(end) {
			if other == e {
				continue
			}
			if oe, _ := g.board.Edge(other); oe.Owner == id || slices.Contains(extra, other) {
				return true
			}
		}
	}
	return false
}

// claimPort records the harbour at v, if any, into data.
func (g *Game) claimPort(p *Player, v board.VertexID, data map[string]any) {
	vx, _ := g.board.Vertex(v)
	if vx.HasPort {
		p.AddPort(vx.Port)
		data["port"] = vx.Port.String()
	}
}
