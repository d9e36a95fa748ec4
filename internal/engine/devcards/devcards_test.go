package devcards

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"settlers/internal/catalog"
	"settlers/internal/engine"
)

// fakeTable records what an effect asked for.
type fakeTable struct {
	picks    []catalog.Resource
	pickErr  error
	thiefErr error

	granted    catalog.Hand
	monopoly   catalog.Resource
	thief      bool
	knights    int
	roadsAsked int
}

func (f *fakeTable) Player() string      { return "a" }
func (f *fakeTable) Opponents() []string { return []string{"b"} }

func (f *fakeTable) ChooseResource(context.Context, engine.Purpose) (catalog.Resource, error) {
	if f.pickErr != nil {
		return 0, f.pickErr
	}
	r := f.picks[0]
	f.picks = f.picks[1:]
	return r, nil
}

func (f *fakeTable) Grant(h catalog.Hand) error {
	f.granted = h
	return nil
}

func (f *fakeTable) Monopolize(r catalog.Resource) (int, error) {
	f.monopoly = r
	return 3, nil
}

func (f *fakeTable) MoveThief(context.Context) error {
	if f.thiefErr != nil {
		return f.thiefErr
	}
	f.thief = true
	return nil
}

func (f *fakeTable) RecordKnight() { f.knights++ }

func (f *fakeTable) PlaceFreeRoads(_ context.Context, n int) (int, error) {
	f.roadsAsked = n
	return n, nil
}

func TestRegistryCoversPlayableCards(t *testing.T) {
	r := Registry()
	for _, c := range catalog.DevCards() {
		e, err := r.Get(c)
		if !c.Playable() {
			assert.ErrorIs(t, err, engine.ErrNoEffect)
			continue
		}
		require.NoError(t, err, c.String())
		assert.Equal(t, c, e.Card())
	}
}

func TestKnight(t *testing.T) {
	f := &fakeTable{}
	require.NoError(t, Knight{}.Resolve(context.Background(), f))
	assert.True(t, f.thief)
	assert.Equal(t, 1, f.knights)

	boom := errors.New("boom")
	f = &fakeTable{thiefErr: boom}
	assert.ErrorIs(t, Knight{}.Resolve(context.Background(), f), boom)
	assert.Equal(t, 0, f.knights, "no knight counted when the thief did not move")
}

func TestMonopoly(t *testing.T) {
	f := &fakeTable{picks: []catalog.Resource{catalog.Sheep}}
	require.NoError(t, Monopoly{}.Resolve(context.Background(), f))
	assert.Equal(t, catalog.Sheep, f.monopoly)
}

func TestYearOfPlenty(t *testing.T) {
	f := &fakeTable{picks: []catalog.Resource{catalog.Ore, catalog.Ore}}
	require.NoError(t, YearOfPlenty{}.Resolve(context.Background(), f))
	assert.Equal(t, catalog.Hand{catalog.Ore: 2}, f.granted)

	boom := errors.New("boom")
	f = &fakeTable{pickErr: boom}
	assert.ErrorIs(t, YearOfPlenty{}.Resolve(context.Background(), f), boom)
	assert.Nil(t, f.granted)
}

func TestRoadBuilding(t *testing.T) {
	f := &fakeTable{}
	require.NoError(t, RoadBuilding{}.Resolve(context.Background(), f))
	assert.Equal(t, 2, f.roadsAsked)
}
