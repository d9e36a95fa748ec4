package engine

import (
	"go.uber.org/zap"

	"settlers/internal/board"
)

// recordKnight counts a played knight and re-evaluates Largest Army. The
// holder changes only when a count strictly exceeds the threshold.
func (g *Game) recordKnight(p *Player) {
	p.addKnight()
	if p.KnightsPlayed() <= g.army.Threshold {
		return
	}
	g.army.Threshold = p.KnightsPlayed()
	if g.army.Holder == p.ID {
		return
	}
	prev := g.army.Holder
	g.transfer(&g.army, p.ID)
	g.notify(Event{Type: EventLargestArmy, Player: p.ID, Data: map[string]any{
		"previous": prev, "knights": p.KnightsPlayed(),
	}})
}

// updateLongestRoad recomputes every road length. The holder keeps the card
// while tied for the lead; a challenger needs the unique strict lead; when
// neither applies nobody holds it.
func (g *Game) updateLongestRoad() {
	lengths := make(map[string]int, len(g.players))
	best := 0
	for _, p := range g.players {
		n := g.RoadLength(p.ID)
		lengths[p.ID] = n
		best = max(best, n)
	}

	next := ""
	switch {
	case best < g.cfg.LongestRoadMin:
	case g.road.Holder != "" && lengths[g.road.Holder] == best:
		next = g.road.Holder
	default:
		for _, p := range g.players {
			if lengths[p.ID] != best {
				continue
			}
			if next != "" {
				next = ""
				break
			}
			next = p.ID
		}
	}

	if next == "" {
		g.road.Threshold = g.cfg.LongestRoadMin - 1
	} else {
		g.road.Threshold = lengths[next]
	}
	if next == g.road.Holder {
		return
	}
	prev := g.road.Holder
	g.transfer(&g.road, next)
	g.notify(Event{Type: EventLongestRoad, Player: next, Data: map[string]any{
		"previous": prev, "length": lengths[next],
	}})
}

// transfer moves an achievement and its bonus. An empty holder means the
// card goes back to the box.
func (g *Game) transfer(a *Achievement, to string) {
	bonus := g.cfg.AchievementBonus
	if prev, ok := g.byID[a.Holder]; ok {
		prev.adjustVictoryPoints(-bonus)
	}
	if next, ok := g.byID[to]; ok {
		next.adjustVictoryPoints(bonus)
	}
	g.log.Info("achievement moved",
		zap.String("from", a.Holder),
		zap.String("to", to),
		zap.Int("threshold", a.Threshold),
	)
	a.Holder = to
}

// RoadLength is the longest trail over id's roads. A trail may end on an
// opponent's building but never passes through one.
func (g *Game) RoadLength(id string) int {
	p, ok := g.byID[id]
	if !ok {
		return 0
	}
	used := make(map[board.EdgeID]bool, len(p.roads))
	best := 0

	var walk func(v board.VertexID, n int)
	walk = func(v board.VertexID, n int) {
		best = max(best, n)
		if vx, _ := g.board.Vertex(v); n > 0 && vx.Owner != "" && vx.Owner != id {
			return
		}
		for _, e := range g.board.VertexEdges(v) {
			if used[e] {
				continue
			}
			if edge, _ := g.board.Edge(e); edge.Owner != id {
				continue
			}
			used[e] = true
			walk(g.board.OtherEnd(e, v), n+1)
			used[e] = false
		}
	}
	for _, e := range p.roads {
		edge, _ := g.board.Edge(e)
		walk(edge.Ends[0], 0)
		walk(edge.Ends[1], 0)
	}
	return best
}
