package engine_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"settlers/internal/board"
	"settlers/internal/catalog"
	"settlers/internal/engine"
	"settlers/internal/engine/devcards"
	"settlers/internal/engine/enginetest"
	"settlers/internal/random"
)

var seatIDs = []string{"a", "b", "c", "d"}

type table struct {
	g    *engine.Game
	ui   *enginetest.Scripted
	dice *enginetest.LoadedDice
}

func newTable(t *testing.T, n int, tweak ...func(*engine.Config)) *table {
	t.Helper()
	cfg := engine.DefaultConfig()
	cfg.DecisionTimeout = time.Second
	for _, f := range tweak {
		f(&cfg)
	}
	b, err := board.Generate(random.New(1))
	require.NoError(t, err)

	var seats []engine.Seat
	for _, id := range seatIDs[:n] {
		seats = append(seats, engine.Seat{ID: id, Name: "Player " + id})
	}
	tb := &table{
		ui:   &enginetest.Scripted{Fallback: true},
		dice: &enginetest.LoadedDice{Source: random.New(2)},
	}
	tb.g, err = engine.NewGame(seats, cfg, engine.Options{
		ID:        "test",
		Rand:      tb.dice,
		Board:     b,
		Presenter: tb.ui,
		Effects:   devcards.Registry(),
	})
	require.NoError(t, err)
	return tb
}

// newStartedTable runs the setup round with first-option answers.
func newStartedTable(t *testing.T, n int, tweak ...func(*engine.Config)) *table {
	t.Helper()
	tb := newTable(t, n, tweak...)
	require.NoError(t, tb.g.RunSetup(context.Background()))
	require.Equal(t, engine.PhaseMain, tb.g.Phase())
	return tb
}

func (tb *table) player(t *testing.T, id string) engine.PlayerView {
	t.Helper()
	p, ok := tb.g.Player(id)
	require.True(t, ok)
	return p
}

func (tb *table) emptyHands() {
	for _, id := range tb.ids() {
		engine.SetHand(tb.g, id, catalog.Hand{})
	}
}

func (tb *table) ids() []string {
	var out []string
	for _, p := range tb.g.Players() {
		out = append(out, p.ID)
	}
	return out
}

// findPath returns the edges of a simple path of n edges starting at start
// and avoiding the given vertices, and the vertices it visits.
func findPath(b board.Reader, start board.VertexID, n int, avoid map[board.VertexID]bool) ([]board.EdgeID, []board.VertexID) {
	seen := map[board.VertexID]bool{start: true}
	var edges []board.EdgeID
	verts := []board.VertexID{start}

	var dfs func(v board.VertexID) bool
	dfs = func(v board.VertexID) bool {
		if len(edges) == n {
			return true
		}
		vx, _ := b.Vertex(v)
		for i, next := range vx.Neighbors {
			if next == board.NoVertex || seen[next] || avoid[next] {
				continue
			}
			seen[next] = true
			edges = append(edges, vx.Edges[i])
			verts = append(verts, next)
			if dfs(next) {
				return true
			}
			seen[next] = false
			edges = edges[:len(edges)-1]
			verts = verts[:len(verts)-1]
		}
		return false
	}
	if !dfs(start) {
		return nil, nil
	}
	return edges, verts
}
