package devcards

import (
	"context"

	"settlers/internal/catalog"
	"settlers/internal/engine"
)

// YearOfPlenty grants two resources of the player's choice.
type YearOfPlenty struct{}

// plentyPicks is how many cards the bank hands out.
const plentyPicks = 2

func (YearOfPlenty) Card() catalog.DevCard { return catalog.YearOfPlenty }

func (YearOfPlenty) Resolve(ctx context.Context, t engine.Table) error {
	grant := catalog.Hand{}
	for range plentyPicks {
		r, err := t.ChooseResource(ctx, engine.PurposeYearOfPlenty)
		if err != nil {
			return err
		}
		grant[r]++
	}
	return t.Grant(grant)
}
