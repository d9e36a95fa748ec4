package board

import (
	"errors"
	"fmt"

	"settlers/internal/catalog"
	"settlers/internal/random"
)

// Number-token pools. Priority numbers are the most frequent rolls and may
// not sit on hexes that share an edge.
var (
	PriorityNumbers = []int{6, 6, 8, 8}
	OtherNumbers    = []int{2, 3, 3, 4, 4, 5, 5, 9, 9, 10, 10, 11, 11, 12}
)

// PortCount is the number of harbours on the coast.
const PortCount = 9

// Tiles returns the standard tile set: three of each producing resource and
// one desert.
func Tiles() []catalog.Resource {
	tiles := make([]catalog.Resource, 0, HexCount)
	for _, r := range catalog.Producing() {
		tiles = append(tiles, r, r, r)
	}
	return append(tiles, catalog.Misc)
}

// PortKinds returns the nine harbour kinds: four 3:1 and one 2:1 per resource.
func PortKinds() []catalog.Resource {
	kinds := []catalog.Resource{catalog.Misc, catalog.Misc, catalog.Misc, catalog.Misc}
	return append(kinds, catalog.Producing()...)
}

var errNoPlacement = errors.New("no placement keeps priority numbers apart")

// Generate builds a randomized standard board.
func Generate(src random.Source) (*Board, error) {
	tiles := Tiles()
	src.Shuffle(len(tiles), func(i, j int) { tiles[i], tiles[j] = tiles[j], tiles[i] })

	b, err := New(tiles)
	if err != nil {
		return nil, err
	}
	if err := b.placeNumbers(src); err != nil {
		return nil, fmt.Errorf("place numbers: %w", err)
	}
	if err := b.placePorts(src); err != nil {
		return nil, fmt.Errorf("place ports: %w", err)
	}
	return b, nil
}

// placeNumbers puts the priority pool on mutually non-adjacent hexes by a
// backtracking search over a shuffled candidate order, then deals the other
// pool onto the remaining producing hexes.
func (b *Board) placeNumbers(src random.Source) error {
	var producing []HexID
	for _, h := range b.hexes {
		if h.Desert() {
			if err := b.SetNumber(h.ID, DesertNumber); err != nil {
				return err
			}
			continue
		}
		producing = append(producing, h.ID)
	}
	if len(producing) != len(PriorityNumbers)+len(OtherNumbers) {
		return fmt.Errorf("%w: %d producing hexes for %d numbers", ErrBadLayout,
			len(producing), len(PriorityNumbers)+len(OtherNumbers))
	}
	src.Shuffle(len(producing), func(i, j int) { producing[i], producing[j] = producing[j], producing[i] })

	chosen, ok := b.spreadOut(producing, 0, nil, len(PriorityNumbers))
	if !ok {
		return errNoPlacement
	}

	priority := append([]int(nil), PriorityNumbers...)
	src.Shuffle(len(priority), func(i, j int) { priority[i], priority[j] = priority[j], priority[i] })
	taken := make(map[HexID]bool, len(chosen))
	for i, id := range chosen {
		if err := b.SetNumber(id, priority[i]); err != nil {
			return err
		}
		taken[id] = true
	}

	other := append([]int(nil), OtherNumbers...)
	src.Shuffle(len(other), func(i, j int) { other[i], other[j] = other[j], other[i] })
	k := 0
	for _, id := range producing {
		if taken[id] {
			continue
		}
		if err := b.SetNumber(id, other[k]); err != nil {
			return err
		}
		k++
	}
	return nil
}

func (b *Board) spreadOut(cands []HexID, from int, chosen []HexID, need int) ([]HexID, bool) {
	if len(chosen) == need {
		return chosen, true
	}
	for i := from; i < len(cands); i++ {
		if b.touchesAny(cands[i], chosen) {
			continue
		}
		if out, ok := b.spreadOut(cands, i+1, append(chosen, cands[i]), need); ok {
			return out, true
		}
	}
	return nil, false
}

func (b *Board) touchesAny(id HexID, others []HexID) bool {
	for _, n := range b.HexNeighbors(id) {
		for _, o := range others {
			if n == o {
				return true
			}
		}
	}
	return false
}

// placePorts spaces the harbours evenly along the perimeter walk and deals
// the shuffled port kinds onto them. Both ends of a harbour edge get the port.
func (b *Board) placePorts(src random.Source) error {
	n := len(b.coastal)
	if n < PortCount*2 {
		return fmt.Errorf("%w: coast too short for %d ports", ErrBadLayout, PortCount)
	}
	kinds := PortKinds()
	src.Shuffle(len(kinds), func(i, j int) { kinds[i], kinds[j] = kinds[j], kinds[i] })
	for i, kind := range kinds {
		e := b.edges[b.coastal[i*n/PortCount]]
		for _, v := range e.Ends {
			if err := b.vertices[v].setPort(kind); err != nil {
				return fmt.Errorf("vertex %d: %w", v, err)
			}
		}
	}
	return nil
}

// PriorityAdjacent reports whether any two hexes carrying a priority number
// share an edge.
func (b *Board) PriorityAdjacent() bool {
	isPriority := func(n int) bool {
		for _, p := range PriorityNumbers {
			if p == n {
				return true
			}
		}
		return false
	}
	for _, h := range b.hexes {
		if !isPriority(h.Number) {
			continue
		}
		for _, n := range b.HexNeighbors(h.ID) {
			if isPriority(b.hexes[n].Number) {
				return true
			}
		}
	}
	return false
}
