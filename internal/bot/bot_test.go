package bot

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"settlers/internal/board"
	"settlers/internal/catalog"
	"settlers/internal/engine"
	"settlers/internal/engine/devcards"
	"settlers/internal/engine/enginetest"
	"settlers/internal/random"
)

func newBoard(t *testing.T) *board.Board {
	t.Helper()
	b, err := board.Generate(random.New(7))
	require.NoError(t, err)
	return b
}

func newGame(t *testing.T, seed uint64, n int) (*engine.Game, *Bot) {
	t.Helper()
	b, err := board.Generate(random.New(seed))
	require.NoError(t, err)
	var seats []engine.Seat
	for i := range n {
		id := fmt.Sprintf("bot-%d", i)
		seats = append(seats, engine.Seat{ID: id, Name: id})
	}
	cfg := engine.DefaultConfig()
	cfg.DecisionTimeout = time.Second
	g, err := engine.NewGame(seats, cfg, engine.Options{
		ID:      fmt.Sprintf("sim-%d", seed),
		Rand:    random.New(seed + 100),
		Board:   b,
		Effects: devcards.Registry(),
	})
	require.NoError(t, err)
	bot := New(g.Board(), random.New(seed+200))
	g.SetPresenter(bot)
	return g, bot
}

func TestPips(t *testing.T) {
	assert.Equal(t, 0, pips(7))
	assert.Equal(t, 5, pips(6))
	assert.Equal(t, 5, pips(8))
	assert.Equal(t, 1, pips(2))
	assert.Equal(t, 1, pips(12))
	assert.Equal(t, 0, pips(0))
}

func TestChooseVertexPrefersRichCorners(t *testing.T) {
	b := newBoard(t)
	bot := New(b, random.New(1))
	var options []board.VertexID
	for _, v := range b.Vertices() {
		options = append(options, v.ID)
	}
	got, err := bot.ChooseVertex(context.Background(), "me", engine.PurposeSettlement, options)
	require.NoError(t, err)
	for _, v := range options {
		assert.LessOrEqual(t, bot.vertexValue(v), bot.vertexValue(got))
	}

	_, err = bot.ChooseVertex(context.Background(), "me", engine.PurposeSettlement, nil)
	assert.ErrorIs(t, err, engine.ErrInvalidTarget)
}

func TestChooseHexAvoidsOwnBuildings(t *testing.T) {
	b := newBoard(t)
	bot := New(b, random.New(1))
	mine, theirs := board.HexID(0), board.HexID(9)
	h, _ := b.Hex(mine)
	require.NoError(t, b.SetVertexOwner(h.Vertices[0], "me"))
	h, _ = b.Hex(theirs)
	require.NoError(t, b.SetVertexOwner(h.Vertices[0], "them"))

	got, err := bot.ChooseHex(context.Background(), "me", engine.PurposeThief, []board.HexID{mine, theirs})
	require.NoError(t, err)
	assert.Equal(t, theirs, got)
}

func TestChooseDiscardTakesFromLargestPile(t *testing.T) {
	bot := New(newBoard(t), random.New(1))
	hand := catalog.Hand{catalog.Wood: 5, catalog.Ore: 2, catalog.Sheep: 1}

	got, err := bot.ChooseDiscard(context.Background(), "me", 4, hand)
	require.NoError(t, err)
	assert.Equal(t, catalog.Hand{catalog.Wood: 4}, got)
	assert.Equal(t, 5, hand[catalog.Wood], "input hand is untouched")
}

func TestConfirmTrade(t *testing.T) {
	bot := New(newBoard(t), random.New(1))
	ctx := context.Background()

	ok, err := bot.ConfirmTrade(ctx, "me", engine.TradeOffer{
		Give: catalog.Hand{catalog.Wood: 2},
		Want: catalog.Hand{catalog.Ore: 1},
	})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = bot.ConfirmTrade(ctx, "me", engine.TradeOffer{
		Give: catalog.Hand{catalog.Wood: 1},
		Want: catalog.Hand{catalog.Ore: 2},
	})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSurplus(t *testing.T) {
	four := func(catalog.Resource) int { return 4 }
	r, ok := surplus(catalog.Hand{catalog.Wood: 5, catalog.Ore: 6}, catalog.Hand{catalog.Ore: 3}, four)
	require.True(t, ok)
	assert.Equal(t, catalog.Wood, r)

	_, ok = surplus(catalog.Hand{catalog.Wood: 3}, catalog.Hand{}, four)
	assert.False(t, ok)
}

func TestPlayTurnRefusesOtherSeats(t *testing.T) {
	g, bot := newGame(t, 1, 3)
	other := "bot-1"
	require.NotEqual(t, other, g.CurrentPlayer())
	assert.ErrorIs(t, bot.PlayTurn(context.Background(), g, other), engine.ErrNotYourTurn)
}

func TestPlayTurnSetup(t *testing.T) {
	g, bot := newGame(t, 1, 3)
	ctx := context.Background()
	for g.Phase() == engine.PhaseSetup {
		require.NoError(t, bot.PlayTurn(ctx, g, g.CurrentPlayer()))
	}
	assert.Equal(t, engine.PhaseMain, g.Phase())
	for _, p := range g.Players() {
		assert.Len(t, p.Settlements, 2, p.ID)
		assert.Len(t, p.Roads, 2, p.ID)
	}
}

func TestPlayGameFindsWinner(t *testing.T) {
	for seed := uint64(1); seed <= 5; seed++ {
		for _, n := range []int{2, 3} {
			t.Run(fmt.Sprintf("seed%d_%dp", seed, n), func(t *testing.T) {
				g, bot := newGame(t, seed, n)
				require.NoError(t, bot.PlayGame(context.Background(), g, 3000))

				assert.Equal(t, engine.PhaseEnded, g.Phase())
				require.NotEmpty(t, g.Winner())
				winner, ok := g.Player(g.Winner())
				require.True(t, ok)
				assert.GreaterOrEqual(t, winner.VictoryPoints, g.Config().VictoryPoints)
				assert.Equal(t, g.Winner(), g.Scores()[0].PlayerID)
			})
		}
	}
}

func TestSeatsRoutesBotDecisions(t *testing.T) {
	b := newBoard(t)
	bot := New(b, random.New(1))
	human := &enginetest.Scripted{Vertices: []board.VertexID{3}}
	p := bot.Seats(human, "robot")
	ctx := context.Background()
	options := []board.VertexID{1, 2, 3}

	got, err := p.ChooseVertex(ctx, "person", engine.PurposeSettlement, options)
	require.NoError(t, err)
	assert.Equal(t, board.VertexID(3), got)

	want, _ := bot.ChooseVertex(ctx, "robot", engine.PurposeSettlement, options)
	got, err = p.ChooseVertex(ctx, "robot", engine.PurposeSettlement, options)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	p.Notify(engine.Event{Type: engine.EventTurnEnd})
	assert.Equal(t, []engine.EventType{engine.EventTurnEnd}, human.Types())
}
