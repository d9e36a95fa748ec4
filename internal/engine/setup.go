package engine

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"settlers/internal/board"
	"settlers/internal/catalog"
)

// PlaceInitialSettlement puts a free settlement for the seat whose setup
// turn it is. The second one pays one card per adjacent producing hex.
func (g *Game) PlaceInitialSettlement(id string, v board.VertexID) error {
	p, err := g.requireSetup(id)
	if err != nil {
		return err
	}
	if g.setup.pending != board.NoVertex {
		return fmt.Errorf("%w: road expected", ErrWrongPhase)
	}
	if !g.settlementSpotFree(v) {
		return fmt.Errorf("%w: vertex %d", ErrInvalidTarget, v)
	}

	var grant catalog.Hand
	if g.setup.step >= len(g.players) {
		grant = catalog.Hand{}
		for _, hid := range g.board.VertexHexes(v) {
			if h, _ := g.board.Hex(hid); !h.Desert() {
				grant[h.Resource]++
			}
		}
	}

	if err := g.board.SetVertexOwner(v, p.ID); err != nil {
		return err
	}
	if _, err := p.AddSettlement(v); err != nil {
		return err
	}
	data := map[string]any{"vertex": v, "initial": true}
	g.claimPort(p, v, data)
	if len(grant) > 0 {
		if err := p.AddResources(grant); err != nil {
			return err
		}
	}
	g.setup.pending = v

	g.notify(Event{Type: EventSettlementBuilt, Player: p.ID, Data: data})
	if len(grant) > 0 {
		g.notify(Event{Type: EventProduced, Player: p.ID, Data: map[string]any{"resources": grant}})
	}
	g.checkWin(p)
	return nil
}

// PlaceInitialRoad puts a free road touching the settlement just placed.
func (g *Game) PlaceInitialRoad(id string, e board.EdgeID) error {
	p, err := g.requireSetup(id)
	if err != nil {
		return err
	}
	if g.setup.pending == board.NoVertex {
		return fmt.Errorf("%w: settlement expected", ErrWrongPhase)
	}
	edge, ok := g.board.Edge(e)
	if !ok || edge.Owner != "" || (edge.Ends[0] != g.setup.pending && edge.Ends[1] != g.setup.pending) {
		return fmt.Errorf("%w: edge %d", ErrInvalidTarget, e)
	}

	if err := g.board.SetEdgeOwner(e, p.ID); err != nil {
		return err
	}
	if err := p.AddRoad(e); err != nil {
		return err
	}
	g.setup.pending = board.NoVertex
	g.setup.step++
	g.notify(Event{Type: EventRoadBuilt, Player: p.ID, Data: map[string]any{"edge": e, "initial": true}})

	if g.setup.step == len(g.setup.order) {
		g.phase = PhaseMain
		g.current = 0
		g.turn = newTurnState()
		g.log.Info("setup complete", zap.String("first", g.players[0].ID))
		g.notify(Event{Type: EventPhaseChange, Data: map[string]any{
			"phase": PhaseMain.String(), "current": g.players[0].ID,
		}})
	}
	return nil
}

// RunSetup drives the remaining setup placements through the Decider.
func (g *Game) RunSetup(ctx context.Context) error {
	for g.phase == PhaseSetup {
		id := g.CurrentPlayer()
		if g.setup.pending == board.NoVertex {
			v, err := g.chooseVertex(ctx, id, PurposeInitialSettlement, g.AvailableSettlementSpots(id))
			if err != nil {
				return err
			}
			if err := g.PlaceInitialSettlement(id, v); err != nil {
				return err
			}
			continue
		}
		e, err := g.chooseEdge(ctx, id, PurposeInitialRoad, g.AvailableRoadSpots(id))
		if err != nil {
			return err
		}
		if err := g.PlaceInitialRoad(id, e); err != nil {
			return err
		}
	}
	return nil
}

func (g *Game) requireSetup(id string) (*Player, error) {
	if g.phase == PhaseEnded {
		return nil, ErrGameOver
	}
	p, err := g.player(id)
	if err != nil {
		return nil, err
	}
	if g.phase != PhaseSetup {
		return nil, ErrWrongPhase
	}
	if g.CurrentPlayer() != id {
		return nil, ErrNotYourTurn
	}
	return p, nil
}
