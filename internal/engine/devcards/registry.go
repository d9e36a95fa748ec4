package devcards

import "settlers/internal/engine"

// Registry returns a registry with every playable card.
func Registry() *engine.EffectRegistry {
	r := engine.NewEffectRegistry()
	r.Register(Knight{})
	r.Register(Monopoly{})
	r.Register(YearOfPlenty{})
	r.Register(RoadBuilding{})
	return r
}
