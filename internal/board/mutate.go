package board

import "fmt"

// SetNumber assigns the die number of a hex. It can be called once per hex.
func (b *Board) SetNumber(id HexID, n int) error {
	if !b.validHex(id) {
		return ErrUnknownHex
	}
	h := &b.hexes[id]
	if h.Desert() {
		if n != DesertNumber {
			return fmt.Errorf("%w: desert takes %d, got %d", ErrBadNumber, DesertNumber, n)
		}
	} else if n < 2 || n > 12 || n == 7 {
		return fmt.Errorf("%w: %d", ErrBadNumber, n)
	}
	if h.Number != 0 {
		return ErrNumberSet
	}
	h.Number = n
	return nil
}

// SetVertexOwner places a settlement for owner on an empty vertex.
func (b *Board) SetVertexOwner(id VertexID, owner string) error {
	if !b.validVertex(id) {
		return ErrUnknownVertex
	}
	if owner == "" {
		return ErrNoOwner
	}
	v := &b.vertices[id]
	if v.Owner != "" {
		return ErrVertexOwned
	}
	v.Owner = owner
	return nil
}

// UpgradeToCity turns owner's settlement on id into a city.
func (b *Board) UpgradeToCity(id VertexID, owner string) error {
	if !b.validVertex(id) {
		return ErrUnknownVertex
	}
	v := &b.vertices[id]
	if v.Owner != owner || owner == "" || v.City {
		return ErrNotSettlement
	}
	v.City = true
	return nil
}

// SetEdgeOwner places a road. Setting the current owner again is a no-op.
func (b *Board) SetEdgeOwner(id EdgeID, owner string) error {
	if !b.validEdge(id) {
		return ErrUnknownEdge
	}
	if owner == "" {
		return ErrNoOwner
	}
	e := &b.edges[id]
	if e.Owner != "" && e.Owner != owner {
		return ErrEdgeOwned
	}
	e.Owner = owner
	return nil
}

// MoveThief relocates the thief to a different hex.
func (b *Board) MoveThief(id HexID) error {
	if !b.validHex(id) {
		return ErrUnknownHex
	}
	if id == b.thief {
		return ErrThiefStays
	}
	if b.validHex(b.thief) {
		b.hexes[b.thief].Thief = false
	}
	b.hexes[id].Thief = true
	b.thief = id
	return nil
}
