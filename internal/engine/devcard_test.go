package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"settlers/internal/board"
	"settlers/internal/catalog"
	"settlers/internal/engine"
	"settlers/internal/engine/enginetest"
)

func TestMonopolyTakesEveryOpponentsCards(t *testing.T) {
	tb := newStartedTable(t, 3)
	g := tb.g
	engine.SetHand(g, "a", catalog.Hand{})
	engine.SetHand(g, "b", catalog.Hand{catalog.Ore: 3})
	engine.SetHand(g, "c", catalog.Hand{catalog.Ore: 1, catalog.Wood: 2})
	engine.GiveCard(g, "a", catalog.Monopoly)
	tb.ui.Resources = []catalog.Resource{catalog.Ore}

	require.NoError(t, g.PlayDevelopmentCard(context.Background(), "a", catalog.Monopoly))
	assert.Equal(t, catalog.Hand{catalog.Ore: 4}, tb.player(t, "a").Resources)
	assert.Equal(t, 0, tb.player(t, "b").ResourceCount)
	assert.Equal(t, catalog.Hand{catalog.Wood: 2}, tb.player(t, "c").Resources)
	assert.Equal(t, 0, tb.player(t, "a").DevCards[catalog.Monopoly])

	ev, ok := tb.ui.Last(engine.EventMonopoly)
	require.True(t, ok)
	assert.Equal(t, 4, ev.Data["taken"])
	_, ok = tb.ui.Last(engine.EventCardPlayed)
	assert.True(t, ok)
}

func TestYearOfPlentyGrantsTwoChosenCards(t *testing.T) {
	tb := newStartedTable(t, 2)
	g := tb.g
	engine.SetHand(g, "a", catalog.Hand{})
	engine.GiveCard(g, "a", catalog.YearOfPlenty)
	tb.ui.Resources = []catalog.Resource{catalog.Brick, catalog.Wheat}

	require.NoError(t, g.PlayDevelopmentCard(context.Background(), "a", catalog.YearOfPlenty))
	assert.Equal(t, catalog.Hand{catalog.Brick: 1, catalog.Wheat: 1}, tb.player(t, "a").Resources)
}

func TestRoadBuildingPlacesTwoFreeRoads(t *testing.T) {
	tb := newStartedTable(t, 2)
	g := tb.g
	engine.SetHand(g, "a", catalog.Hand{})
	engine.GiveCard(g, "a", catalog.RoadBuilding)

	require.NoError(t, g.PlayDevelopmentCard(context.Background(), "a", catalog.RoadBuilding))
	p := tb.player(t, "a")
	assert.Len(t, p.Roads, 4)
	assert.Equal(t, 11, g.RemainingSupply("a", catalog.Road))
	assert.Equal(t, 0, p.ResourceCount)
	for _, e := range p.Roads {
		edge, _ := g.Board().Edge(e)
		assert.Equal(t, "a", edge.Owner)
	}
}

func TestKnightBeforeRollingMovesThief(t *testing.T) {
	tb := newStartedTable(t, 2)
	g := tb.g
	b := g.Board()
	engine.SetHand(g, "a", catalog.Hand{})
	engine.SetHand(g, "b", catalog.Hand{catalog.Sheep: 2})
	engine.GiveCard(g, "a", catalog.Knight)
	engine.GiveCard(g, "a", catalog.Knight)

	target := board.NoHex
	v, _ := b.Vertex(tb.player(t, "b").Settlements[0])
	for _, hid := range v.Hexes {
		if hid != board.NoHex && hid != b.Thief() {
			target = hid
			break
		}
	}
	require.NotEqual(t, board.NoHex, target)
	tb.ui.Hexes = []board.HexID{target}

	require.False(t, g.Rolled())
	require.NoError(t, g.PlayDevelopmentCard(context.Background(), "a", catalog.Knight))
	assert.Equal(t, target, g.Board().Thief())
	assert.Equal(t, catalog.Hand{catalog.Sheep: 1}, tb.player(t, "a").Resources)
	assert.Equal(t, 1, tb.player(t, "a").KnightsPlayed)
	assert.False(t, g.ThiefPending())

	err := g.PlayDevelopmentCard(context.Background(), "a", catalog.Knight)
	assert.ErrorIs(t, err, engine.ErrAlreadyPlayed)
	assert.Equal(t, 1, tb.player(t, "a").DevCards[catalog.Knight])
}

func TestFailedEffectLeavesCardInHand(t *testing.T) {
	tb := newStartedTable(t, 2)
	g := tb.g
	ctx := context.Background()
	engine.GiveCard(g, "a", catalog.Monopoly)
	tb.ui.Fallback = false
	before := tb.player(t, "a")

	err := g.PlayDevelopmentCard(ctx, "a", catalog.Monopoly)
	assert.ErrorIs(t, err, enginetest.ErrNoAnswer)
	assert.Equal(t, before, tb.player(t, "a"))

	tb.ui.Resources = []catalog.Resource{catalog.Wood}
	require.NoError(t, g.PlayDevelopmentCard(ctx, "a", catalog.Monopoly))
}

func TestCardsWaitForThiefMove(t *testing.T) {
	tb := newStartedTable(t, 2)
	g := tb.g
	engine.GiveCard(g, "a", catalog.Knight)
	tb.dice.Roll(7)
	_, err := g.RollDice(context.Background(), "a")
	require.NoError(t, err)
	assert.ErrorIs(t, g.PlayDevelopmentCard(context.Background(), "a", catalog.Knight), engine.ErrThiefPending)
}

func TestMissingEffect(t *testing.T) {
	ui := &enginetest.Scripted{Fallback: true}
	g, err := engine.NewGame([]engine.Seat{{ID: "a"}, {ID: "b"}}, engine.DefaultConfig(), engine.Options{
		Presenter: ui,
		Effects:   engine.NewEffectRegistry(),
	})
	require.NoError(t, err)
	require.NoError(t, g.RunSetup(context.Background()))
	engine.GiveCard(g, "a", catalog.Knight)
	assert.ErrorIs(t, g.PlayDevelopmentCard(context.Background(), "a", catalog.Knight), engine.ErrNoEffect)
}
