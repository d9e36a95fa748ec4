package devcards

import (
	"context"

	"settlers/internal/catalog"
	"settlers/internal/engine"
)

// Monopoly takes every opponent's cards of one chosen resource.
type Monopoly struct{}

func (Monopoly) Card() catalog.DevCard { return catalog.Monopoly }

func (Monopoly) Resolve(ctx context.Context, t engine.Table) error {
	r, err := t.ChooseResource(ctx, engine.PurposeMonopoly)
	if err != nil {
		return err
	}
	_, err = t.Monopolize(r)
	return err
}
