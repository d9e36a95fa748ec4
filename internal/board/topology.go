package board

import (
	"fmt"

	"settlers/internal/catalog"
)

// boardRadius is the number of hex rings around the centre tile.
const boardRadius = 2

var hexDirections = [6]Coord{
	{Q: 1, R: 0},
	{Q: 1, R: -1},
	{Q: 0, R: -1},
	{Q: -1, R: 0},
	{Q: -1, R: 1},
	{Q: 0, R: 1},
}

// Corner offsets on the integer lattice X = 2q+r, Y = 3r, clockwise from the
// top corner of a pointy-top hex.
var cornerOffsets = [6][2]int{
	{0, -2},
	{1, -1},
	{1, 1},
	{0, 2},
	{-1, 1},
	{-1, -1},
}

// Coords returns the board's axial coordinates in reading order.
func Coords() []Coord {
	var out []Coord
	for r := -boardRadius; r <= boardRadius; r++ {
		qMin := max(-boardRadius, -r-boardRadius)
		qMax := min(boardRadius, -r+boardRadius)
		for q := qMin; q <= qMax; q++ {
			out = append(out, Coord{Q: q, R: r})
		}
	}
	return out
}

// New wires the fixed topology and assigns one resource per hex, in Coords
// order. Exactly one entry must be the Misc desert; the thief starts there.
func New(resources []catalog.Resource) (*Board, error) {
	if len(resources) != HexCount {
		return nil, fmt.Errorf("%w: want %d tiles, got %d", ErrBadLayout, HexCount, len(resources))
	}
	deserts := 0
	for _, r := range resources {
		if !r.Valid() {
			return nil, fmt.Errorf("%w: unknown resource %d", ErrBadLayout, r)
		}
		if r == catalog.Misc {
			deserts++
		}
	}
	if deserts != 1 {
		return nil, fmt.Errorf("%w: want one desert, got %d", ErrBadLayout, deserts)
	}

	b := &Board{byCoord: make(map[Coord]HexID, HexCount), thief: NoHex}
	cornerAt := make(map[[2]int]VertexID)
	edgeAt := make(map[[2]VertexID]EdgeID)
	sides := make(map[EdgeID]int)

	for i, c := range Coords() {
		h := Hex{ID: HexID(i), Coord: c, Resource: resources[i]}
		for k := range h.Vertices {
			h.Vertices[k] = NoVertex
		}
		if h.Desert() {
			h.Thief = true
			b.thief = h.ID
		}
		b.hexes = append(b.hexes, h)
		b.byCoord[c] = h.ID

		cx, cy := 2*c.Q+c.R, 3*c.R
		for k, off := range cornerOffsets {
			key := [2]int{cx + off[0], cy + off[1]}
			vid, ok := cornerAt[key]
			if !ok {
				vid = b.newVertex(key[0], key[1])
				cornerAt[key] = vid
			}
			if err := b.hexes[i].setVertex(k, vid); err != nil {
				return nil, fmt.Errorf("wire hex %d corner %d: %w", i, k, err)
			}
			if err := b.vertices[vid].addHex(h.ID); err != nil {
				return nil, fmt.Errorf("wire vertex %d: %w", vid, err)
			}
		}

		for k := range cornerOffsets {
			a, z := b.hexes[i].Vertices[k], b.hexes[i].Vertices[(k+1)%6]
			key := [2]VertexID{min(a, z), max(a, z)}
			eid, ok := edgeAt[key]
			if !ok {
				eid = EdgeID(len(b.edges))
				b.edges = append(b.edges, Edge{ID: eid, Ends: key})
				edgeAt[key] = eid
				if err := b.link(a, z, eid); err != nil {
					return nil, fmt.Errorf("wire edge %d: %w", eid, err)
				}
			}
			sides[eid]++
		}
	}

	b.coastal = b.walkCoast(sides)
	return b, nil
}

func (b *Board) newVertex(x, y int) VertexID {
	v := Vertex{ID: VertexID(len(b.vertices)), x: x, y: y}
	for i := range v.Neighbors {
		v.Neighbors[i] = NoVertex
		v.Edges[i] = NoEdge
		v.Hexes[i] = NoHex
	}
	b.vertices = append(b.vertices, v)
	return v.ID
}

// link joins a and z through e, each in the slot its direction dictates.
func (b *Board) link(a, z VertexID, e EdgeID) error {
	va, vz := &b.vertices[a], &b.vertices[z]
	if err := va.setNeighbor(slotToward(va, vz), z); err != nil {
		return err
	}
	if err := va.setEdge(slotToward(va, vz), e); err != nil {
		return err
	}
	if err := vz.setNeighbor(slotToward(vz, va), a); err != nil {
		return err
	}
	return vz.setEdge(slotToward(vz, va), e)
}

func slotToward(from, to *Vertex) int {
	switch dx := to.x - from.x; {
	case dx == 0:
		return 0
	case dx > 0:
		return 1
	default:
		return 2
	}
}

// walkCoast orders the single-sided edges around the perimeter.
func (b *Board) walkCoast(sides map[EdgeID]int) []EdgeID {
	isCoast := func(e EdgeID) bool { return sides[e] == 1 }
	var start EdgeID = NoEdge
	for _, e := range b.edges {
		if isCoast(e.ID) {
			start = e.ID
			break
		}
	}
	if start == NoEdge {
		return nil
	}

	order := []EdgeID{start}
	prev, at := start, b.edges[start].Ends[1]
	for {
		next := NoEdge
		for _, e := range b.vertices[at].Edges {
			if e != NoEdge && e != prev && isCoast(e) {
				next = e
				break
			}
		}
		if next == NoEdge || next == start {
			return order
		}
		order = append(order, next)
		at = b.OtherEnd(next, at)
		prev = next
	}
}

func (h *Hex) setVertex(pos int, v VertexID) error {
	if pos < 0 || pos >= len(h.Vertices) {
		return ErrBadPosition
	}
	if h.Vertices[pos] != NoVertex {
		return ErrOccupied
	}
	h.Vertices[pos] = v
	return nil
}

func (v *Vertex) setNeighbor(slot int, n VertexID) error {
	if slot < 0 || slot >= len(v.Neighbors) {
		return ErrBadPosition
	}
	if v.Neighbors[slot] != NoVertex {
		return ErrOccupied
	}
	v.Neighbors[slot] = n
	return nil
}

func (v *Vertex) setEdge(slot int, e EdgeID) error {
	if slot < 0 || slot >= len(v.Edges) {
		return ErrBadPosition
	}
	if v.Edges[slot] != NoEdge {
		return ErrOccupied
	}
	v.Edges[slot] = e
	return nil
}

func (v *Vertex) addHex(h HexID) error {
	for i, cur := range v.Hexes {
		if cur == h {
			return nil
		}
		if cur == NoHex {
			v.Hexes[i] = h
			return nil
		}
	}
	return ErrOccupied
}

func (v *Vertex) setPort(r catalog.Resource) error {
	if v.HasPort {
		return ErrPortSet
	}
	v.HasPort = true
	v.Port = r
	return nil
}
