package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"settlers/internal/catalog"
	"settlers/internal/errs"
)

func newTestBoard(t *testing.T) *Board {
	t.Helper()
	b, err := New(Tiles())
	require.NoError(t, err)
	return b
}

func TestTopologyCounts(t *testing.T) {
	b := newTestBoard(t)
	assert.Len(t, b.Hexes(), HexCount)
	assert.Len(t, b.Vertices(), VertexCount)
	assert.Len(t, b.Edges(), EdgeCount)
	assert.Len(t, b.CoastalEdges(), 30)
}

func TestEveryHexHasSixDistinctCorners(t *testing.T) {
	b := newTestBoard(t)
	for _, h := range b.Hexes() {
		seen := map[VertexID]bool{}
		for _, v := range h.Vertices {
			require.NotEqual(t, NoVertex, v)
			seen[v] = true
		}
		assert.Len(t, seen, 6, "hex %d", h.ID)
	}
}

func TestVertexAdjacencyIsSymmetric(t *testing.T) {
	b := newTestBoard(t)
	for _, v := range b.Vertices() {
		n := len(b.VertexNeighbors(v.ID))
		assert.True(t, n == 2 || n == 3, "vertex %d has %d neighbours", v.ID, n)
		for slot, other := range v.Neighbors {
			if other == NoVertex {
				assert.Equal(t, NoEdge, v.Edges[slot])
				continue
			}
			e, ok := b.EdgeBetween(other, v.ID)
			require.True(t, ok)
			assert.Equal(t, v.Edges[slot], e)
			edge, _ := b.Edge(e)
			assert.ElementsMatch(t, []VertexID{v.ID, other}, edge.Ends[:])
		}
	}
}

func TestHexNeighbors(t *testing.T) {
	b := newTestBoard(t)
	centre := b.byCoord[Coord{}]
	assert.Len(t, b.HexNeighbors(centre), 6)
	corner := b.byCoord[Coord{Q: 2, R: -2}]
	assert.Len(t, b.HexNeighbors(corner), 3)
}

func TestSetPositionTwiceFails(t *testing.T) {
	b := newTestBoard(t)
	v := &b.vertices[0]
	for slot := range v.Neighbors {
		if v.Neighbors[slot] == NoVertex {
			continue
		}
		err := v.setNeighbor(slot, 5)
		assert.ErrorIs(t, err, ErrOccupied)
		assert.ErrorIs(t, err, errs.ErrState)
		err = v.setEdge(slot, 5)
		assert.ErrorIs(t, err, errs.ErrState)
	}
	assert.ErrorIs(t, v.setNeighbor(3, 1), errs.ErrArgument)
	assert.ErrorIs(t, b.hexes[0].setVertex(0, 9), ErrOccupied)
	assert.ErrorIs(t, b.hexes[0].setVertex(6, 9), ErrBadPosition)
}

func TestSetOnceIndependentOfOrder(t *testing.T) {
	orders := [][]int{{0, 1, 2}, {2, 0, 1}, {1, 2, 0}}
	for _, order := range orders {
		v := Vertex{Neighbors: [3]VertexID{NoVertex, NoVertex, NoVertex}}
		for _, slot := range order {
			require.NoError(t, v.setNeighbor(slot, VertexID(slot+10)))
		}
		for _, slot := range order {
			assert.ErrorIs(t, v.setNeighbor(slot, 99), errs.ErrState)
		}
	}
}

func TestNewRejectsBadLayouts(t *testing.T) {
	_, err := New(Tiles()[:10])
	assert.ErrorIs(t, err, errs.ErrArgument)

	noDesert := Tiles()
	noDesert[18] = catalog.Wood
	_, err = New(noDesert)
	assert.ErrorIs(t, err, ErrBadLayout)
}

func TestSetNumber(t *testing.T) {
	b := newTestBoard(t)
	desert := b.Thief()
	var producer HexID
	for _, h := range b.Hexes() {
		if !h.Desert() {
			producer = h.ID
			break
		}
	}

	for _, n := range []int{0, 1, 7, 13, -4} {
		assert.ErrorIs(t, b.SetNumber(producer, n), errs.ErrArgument, "number %d", n)
	}
	assert.ErrorIs(t, b.SetNumber(desert, 6), ErrBadNumber)

	require.NoError(t, b.SetNumber(producer, 8))
	assert.ErrorIs(t, b.SetNumber(producer, 9), ErrNumberSet)
	assert.ErrorIs(t, b.SetNumber(producer, 9), errs.ErrState)

	require.NoError(t, b.SetNumber(desert, DesertNumber))
	assert.ErrorIs(t, b.SetNumber(desert, DesertNumber), errs.ErrState)
	assert.ErrorIs(t, b.SetNumber(HexID(40), 5), ErrUnknownHex)
}

func TestOwnership(t *testing.T) {
	b := newTestBoard(t)
	require.NoError(t, b.SetVertexOwner(3, "red"))
	assert.ErrorIs(t, b.SetVertexOwner(3, "blue"), ErrVertexOwned)
	assert.ErrorIs(t, b.UpgradeToCity(3, "blue"), ErrNotSettlement)
	require.NoError(t, b.UpgradeToCity(3, "red"))
	assert.ErrorIs(t, b.UpgradeToCity(3, "red"), ErrNotSettlement)
	v, _ := b.Vertex(3)
	assert.True(t, v.City)
	assert.Equal(t, "red", v.Owner)

	require.NoError(t, b.SetEdgeOwner(7, "red"))
	require.NoError(t, b.SetEdgeOwner(7, "red"))
	assert.ErrorIs(t, b.SetEdgeOwner(7, "blue"), errs.ErrState)
	assert.ErrorIs(t, b.SetEdgeOwner(7, ""), errs.ErrArgument)
}

func TestReaderReturnsCopies(t *testing.T) {
	b := newTestBoard(t)
	hexes := b.Hexes()
	hexes[0].Number = 11
	h, _ := b.Hex(0)
	assert.Equal(t, 0, h.Number)

	v, _ := b.Vertex(0)
	v.Owner = "intruder"
	v2, _ := b.Vertex(0)
	assert.Empty(t, v2.Owner)
}

func TestMoveThief(t *testing.T) {
	b := newTestBoard(t)
	start := b.Thief()
	assert.ErrorIs(t, b.MoveThief(start), ErrThiefStays)
	target := HexID(0)
	if target == start {
		target = 1
	}
	require.NoError(t, b.MoveThief(target))
	assert.Equal(t, target, b.Thief())
	thieves := 0
	for _, h := range b.Hexes() {
		if h.Thief {
			thieves++
		}
	}
	assert.Equal(t, 1, thieves)
}
