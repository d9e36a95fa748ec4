package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"settlers/internal/board"
	"settlers/internal/catalog"
	"settlers/internal/errs"
)

func countInvariant(t *testing.T, p *Player) {
	t.Helper()
	assert.Equal(t, p.Resources().Total(), p.ResourceCount())
}

func TestAddResourceRejectsMisc(t *testing.T) {
	p := NewPlayer("a", "Alice")
	err := p.AddResource(catalog.Misc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrArgument))
	assert.Equal(t, 0, p.ResourceCount())

	require.NoError(t, p.AddResource(catalog.Wood))
	assert.Equal(t, 1, p.Resource(catalog.Wood))
	countInvariant(t, p)
}

func TestAddResourcesIsAtomic(t *testing.T) {
	p := NewPlayer("a", "Alice")
	err := p.AddResources(catalog.Hand{catalog.Wood: 2, catalog.Misc: 1})
	require.ErrorIs(t, err, ErrMiscInHand)
	assert.Equal(t, 0, p.ResourceCount())
	countInvariant(t, p)
}

func TestRemoveResourcesNeverPartial(t *testing.T) {
	p := NewPlayer("a", "Alice")
	require.NoError(t, p.AddResources(catalog.Hand{catalog.Wood: 2, catalog.Brick: 1}))

	tests := []catalog.Hand{
		{catalog.Wood: 1, catalog.Brick: 2},
		{catalog.Wood: 3},
		{catalog.Ore: 1},
		{catalog.Wood: 1, catalog.Sheep: 1},
		{catalog.Wood: -1},
	}
	for _, need := range tests {
		before := p.Resources()
		assert.False(t, p.RemoveResources(need), "removing %s", need)
		assert.Equal(t, before, p.Resources())
		countInvariant(t, p)
	}

	assert.True(t, p.RemoveResources(catalog.Hand{catalog.Wood: 1, catalog.Brick: 1}))
	assert.Equal(t, catalog.Hand{catalog.Wood: 1}, p.Resources())
	countInvariant(t, p)
}

func TestHasMoreThanSevenCards(t *testing.T) {
	p := NewPlayer("a", "Alice")
	require.NoError(t, p.AddResources(catalog.Hand{catalog.Wheat: 7}))
	assert.False(t, p.HasMoreThanSevenCards())
	require.NoError(t, p.AddResource(catalog.Ore))
	assert.True(t, p.HasMoreThanSevenCards())
}

func TestDevelopmentCards(t *testing.T) {
	p := NewPlayer("a", "Alice")
	assert.False(t, p.RemoveDevelopmentCard(catalog.Knight))

	assert.False(t, p.AddDevelopmentCard(catalog.Knight))
	assert.Equal(t, 0, p.VictoryPoints())
	assert.True(t, p.RemoveDevelopmentCard(catalog.Knight))

	assert.False(t, p.AddDevelopmentCard(catalog.VictoryPoint))
	assert.Equal(t, 1, p.VictoryPoints())
	assert.False(t, p.RemoveDevelopmentCard(catalog.VictoryPoint))
	assert.Equal(t, 1, p.DevCard(catalog.VictoryPoint))
}

func TestVictoryCardReportsWin(t *testing.T) {
	p := NewPlayer("a", "Alice")
	for i := 0; i < DefaultVictoryTarget-1; i++ {
		assert.False(t, p.AddDevelopmentCard(catalog.VictoryPoint))
	}
	assert.True(t, p.AddDevelopmentCard(catalog.VictoryPoint))
}

func TestSettlementsAndCities(t *testing.T) {
	p := NewPlayer("a", "Alice")
	won, err := p.AddSettlement(3)
	require.NoError(t, err)
	assert.False(t, won)
	_, err = p.AddSettlement(3)
	require.ErrorIs(t, err, ErrDuplicate)

	_, err = p.UpgradeSettlement(4)
	require.ErrorIs(t, err, ErrInvalidTarget)

	_, err = p.UpgradeSettlement(3)
	require.NoError(t, err)
	assert.Empty(t, p.Settlements())
	assert.Equal(t, []board.VertexID{3}, p.Cities())
	assert.Equal(t, 2, p.VictoryPoints())
	assert.Equal(t, 5, p.RemainingPieces(catalog.Settlement))
	assert.Equal(t, 3, p.RemainingPieces(catalog.City))

	require.NoError(t, p.AddRoad(7))
	require.ErrorIs(t, p.AddRoad(7), ErrDuplicate)
	assert.Equal(t, 14, p.RemainingPieces(catalog.Road))
}

func TestAddPortIsIdempotent(t *testing.T) {
	p := NewPlayer("a", "Alice")
	assert.True(t, p.AddPort(catalog.Misc))
	assert.False(t, p.AddPort(catalog.Misc))
	assert.True(t, p.AddPort(catalog.Ore))
	assert.Equal(t, []catalog.Resource{catalog.Ore, catalog.Misc}, p.Ports())
}

func TestAdjustVictoryPointsFloorsAtZero(t *testing.T) {
	p := NewPlayer("a", "Alice")
	p.adjustVictoryPoints(2)
	assert.Equal(t, 2, p.VictoryPoints())
	p.adjustVictoryPoints(-5)
	assert.Equal(t, 0, p.VictoryPoints())
}

func TestSnakeOrder(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2, 2, 1, 0}, snakeOrder(3))
}
