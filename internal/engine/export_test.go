package engine

import (
	"settlers/internal/board"
	"settlers/internal/catalog"
)

// Test hooks that reach past the rules.

// SetHand replaces a player's resource hand.
func SetHand(g *Game, id string, h catalog.Hand) {
	p := g.byID[id]
	p.resources = catalog.Hand{}
	p.resourceCount = 0
	if err := p.AddResources(h); err != nil {
		panic(err)
	}
}

// GiveCard puts a development card in hand as if bought on an earlier turn.
func GiveCard(g *Game, id string, c catalog.DevCard) {
	g.byID[id].AddDevelopmentCard(c)
}

func GivePort(g *Game, id string, r catalog.Resource) {
	g.byID[id].AddPort(r)
}

// ClaimRoad assigns a road without any placement rule.
func ClaimRoad(g *Game, id string, e board.EdgeID) {
	if err := g.board.SetEdgeOwner(e, id); err != nil {
		panic(err)
	}
	if err := g.byID[id].AddRoad(e); err != nil {
		panic(err)
	}
}

// ClaimVertex puts a settlement without any placement rule.
func ClaimVertex(g *Game, id string, v board.VertexID) {
	if err := g.board.SetVertexOwner(v, id); err != nil {
		panic(err)
	}
	if _, err := g.byID[id].AddSettlement(v); err != nil {
		panic(err)
	}
}

func RecordKnight(g *Game, id string) { g.recordKnight(g.byID[id]) }
func UpdateLongestRoad(g *Game)       { g.updateLongestRoad() }

// PassTurn hands the turn to id with the dice already rolled.
func PassTurn(g *Game, id string) {
	for i, p := range g.players {
		if p.ID == id {
			g.current = i
		}
	}
	g.turn = newTurnState()
	g.turn.rolled = true
}

var SnakeOrder = snakeOrder
