package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCosts(t *testing.T) {
	assert.Equal(t, Hand{Wood: 1, Brick: 1}, Road.Cost())
	assert.Equal(t, Hand{Wood: 1, Brick: 1, Wheat: 1, Sheep: 1}, Settlement.Cost())
	assert.Equal(t, Hand{Wheat: 2, Ore: 3}, City.Cost())
	assert.Equal(t, Hand{Wheat: 1, Ore: 1, Sheep: 1}, DevelopmentCard.Cost())
}

func TestCostIsCopy(t *testing.T) {
	c := City.Cost()
	c[Ore] = 0
	assert.Equal(t, 3, City.Cost()[Ore])
}

func TestMaxSupply(t *testing.T) {
	assert.Equal(t, 15, Road.MaxSupply())
	assert.Equal(t, 5, Settlement.MaxSupply())
	assert.Equal(t, 4, City.MaxSupply())
	assert.Equal(t, 25, DevelopmentCard.MaxSupply())
}

func TestDevelopmentPool(t *testing.T) {
	pool := DevelopmentPool()
	require.Len(t, pool, 25)
	counts := map[DevCard]int{}
	for _, c := range pool {
		counts[c]++
	}
	assert.Equal(t, map[DevCard]int{
		Knight: 14, VictoryPoint: 5, Monopoly: 2, YearOfPlenty: 2, RoadBuilding: 2,
	}, counts)
	assert.False(t, VictoryPoint.Playable())
	assert.True(t, Knight.Playable())
}

func TestHand(t *testing.T) {
	h := Hand{Wood: 2, Ore: 1}
	assert.Equal(t, 3, h.Total())
	assert.True(t, h.Covers(Hand{Wood: 2}))
	assert.False(t, h.Covers(Hand{Wood: 1, Brick: 1}))
	assert.True(t, h.Valid())
	assert.False(t, Hand{Misc: 1}.Valid())
	assert.False(t, Hand{Wood: -1}.Valid())
	assert.Equal(t, "{wood:2 ore:1}", h.String())
}

func TestResourceNames(t *testing.T) {
	for _, r := range append(Producing(), Misc) {
		parsed, err := ParseResource(r.String())
		require.NoError(t, err)
		assert.Equal(t, r, parsed)
	}
	_, err := ParseResource("gold")
	assert.Error(t, err)
	assert.False(t, Misc.Holdable())
	assert.True(t, Sheep.Holdable())
}

func TestCardAndBuildingNames(t *testing.T) {
	for _, c := range DevCards() {
		parsed, err := ParseDevCard(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}
	for _, b := range Pieces() {
		parsed, err := ParseBuilding(b.String())
		require.NoError(t, err)
		assert.Equal(t, b, parsed)
	}
	_, err := ParseDevCard("soldier")
	assert.Error(t, err)

	var b Building
	require.NoError(t, b.UnmarshalText([]byte("City")))
	assert.Equal(t, City, b)
}
