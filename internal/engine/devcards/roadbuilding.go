package devcards

import (
	"context"

	"settlers/internal/catalog"
	"settlers/internal/engine"
)

// RoadBuilding places two roads for free.
type RoadBuilding struct{}

const freeRoads = 2

func (RoadBuilding) Card() catalog.DevCard { return catalog.RoadBuilding }

func (RoadBuilding) Resolve(ctx context.Context, t engine.Table) error {
	_, err := t.PlaceFreeRoads(ctx, freeRoads)
	return err
}
