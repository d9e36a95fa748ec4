// Package devcards implements the development card effects.
package devcards

import (
	"context"

	"settlers/internal/catalog"
	"settlers/internal/engine"
)

// Knight moves the thief, steals, and counts toward Largest Army.
type Knight struct{}

func (Knight) Card() catalog.DevCard { return catalog.Knight }

func (Knight) Resolve(ctx context.Context, t engine.Table) error {
	if err := t.MoveThief(ctx); err != nil {
		return err
	}
	t.RecordKnight()
	return nil
}
