// Package board is the fixed hex/vertex/edge graph the game is played on.
//
// The board is an arena: hexes, vertices and edges live in slices and refer
// to each other by index. Topology is wired once by New and never changes;
// afterwards only ownership, hex numbers and the thief move.
package board

import "settlers/internal/catalog"

// HexID, VertexID and EdgeID index the board's arena.
type (
	HexID    int
	VertexID int
	EdgeID   int
)

// Sentinels for unset adjacency slots.
const (
	NoHex    HexID    = -1
	NoVertex VertexID = -1
	NoEdge   EdgeID   = -1
)

// Fixed board dimensions.
const (
	HexCount    = 19
	VertexCount = 54
	EdgeCount   = 72
)

// DesertNumber is the only number the desert may carry. Seven never
// produces, so the desert never pays out.
const DesertNumber = 7

// Coord is an axial hex coordinate.
type Coord struct {
	Q int `json:"q"`
	R int `json:"r"`
}

// Hex is a resource tile.
type Hex struct {
	ID       HexID            `json:"id"`
	Coord    Coord            `json:"coord"`
	Resource catalog.Resource `json:"resource"`
	Number   int              `json:"number"` // 0 until set
	// Corners clockwise from the top corner.
	Vertices [6]VertexID `json:"vertices"`
	Thief    bool        `json:"thief"`
}

// Desert reports whether the hex is the desert.
func (h Hex) Desert() bool { return h.Resource == catalog.Misc }

// Vertex is an intersection where settlements and cities are built.
type Vertex struct {
	ID VertexID `json:"id"`
	// Slot 0 is the vertical neighbour, slot 1 the one to the right,
	// slot 2 the one to the left. Edges[i] joins Neighbors[i].
	Neighbors [3]VertexID      `json:"neighbors"`
	Edges     [3]EdgeID        `json:"edges"`
	Hexes     [3]HexID         `json:"hexes"`
	HasPort   bool             `json:"has_port"`
	Port      catalog.Resource `json:"port"`
	Owner     string           `json:"owner,omitempty"`
	City      bool             `json:"city"`

	x, y int
}

// Edge connects two vertices; roads are built on edges.
type Edge struct {
	ID    EdgeID      `json:"id"`
	Ends  [2]VertexID `json:"ends"`
	Owner string      `json:"owner,omitempty"`
}

// Reader is the read-only view of a board. Every method returns copies.
type Reader interface {
	Hexes() []Hex
	Vertices() []Vertex
	Edges() []Edge
	Hex(id HexID) (Hex, bool)
	Vertex(id VertexID) (Vertex, bool)
	Edge(id EdgeID) (Edge, bool)
	Thief() HexID
	HexNeighbors(id HexID) []HexID
	EdgeBetween(a, b VertexID) (EdgeID, bool)
}

// Board owns the arena.
type Board struct {
	hexes    []Hex
	vertices []Vertex
	edges    []Edge
	thief    HexID
	byCoord  map[Coord]HexID
	coastal  []EdgeID // perimeter order
}

var _ Reader = (*Board)(nil)

// Hexes returns the 19 hexes in stable order.
func (b *Board) Hexes() []Hex {
	out := make([]Hex, len(b.hexes))
	copy(out, b.hexes)
	return out
}

// Vertices returns the 54 vertices in stable order.
func (b *Board) Vertices() []Vertex {
	out := make([]Vertex, len(b.vertices))
	copy(out, b.vertices)
	return out
}

// Edges returns the 72 edges in stable order.
func (b *Board) Edges() []Edge {
	out := make([]Edge, len(b.edges))
	copy(out, b.edges)
	return out
}

func (b *Board) Hex(id HexID) (Hex, bool) {
	if !b.validHex(id) {
		return Hex{}, false
	}
	return b.hexes[id], true
}

func (b *Board) Vertex(id VertexID) (Vertex, bool) {
	if !b.validVertex(id) {
		return Vertex{}, false
	}
	return b.vertices[id], true
}

func (b *Board) Edge(id EdgeID) (Edge, bool) {
	if !b.validEdge(id) {
		return Edge{}, false
	}
	return b.edges[id], true
}

// Thief returns the hex currently holding the thief.
func (b *Board) Thief() HexID { return b.thief }

// HexNeighbors returns the hexes sharing an edge with id.
func (b *Board) HexNeighbors(id HexID) []HexID {
	if !b.validHex(id) {
		return nil
	}
	c := b.hexes[id].Coord
	var out []HexID
	for _, d := range hexDirections {
		if n, ok := b.byCoord[Coord{Q: c.Q + d.Q, R: c.R + d.R}]; ok {
			out = append(out, n)
		}
	}
	return out
}

// EdgeBetween returns the edge joining a and b, if they are adjacent.
func (b *Board) EdgeBetween(a, c VertexID) (EdgeID, bool) {
	if !b.validVertex(a) {
		return NoEdge, false
	}
	v := b.vertices[a]
	for i, n := range v.Neighbors {
		if n == c && n != NoVertex {
			return v.Edges[i], true
		}
	}
	return NoEdge, false
}

// VertexNeighbors returns the wired neighbours of v.
func (b *Board) VertexNeighbors(v VertexID) []VertexID {
	if !b.validVertex(v) {
		return nil
	}
	var out []VertexID
	for _, n := range b.vertices[v].Neighbors {
		if n != NoVertex {
			out = append(out, n)
		}
	}
	return out
}

// VertexEdges returns the wired edges touching v.
func (b *Board) VertexEdges(v VertexID) []EdgeID {
	if !b.validVertex(v) {
		return nil
	}
	var out []EdgeID
	for _, e := range b.vertices[v].Edges {
		if e != NoEdge {
			out = append(out, e)
		}
	}
	return out
}

// VertexHexes returns the hexes that have v as a corner.
func (b *Board) VertexHexes(v VertexID) []HexID {
	if !b.validVertex(v) {
		return nil
	}
	var out []HexID
	for _, h := range b.vertices[v].Hexes {
		if h != NoHex {
			out = append(out, h)
		}
	}
	return out
}

// OtherEnd returns the end of e that is not v.
func (b *Board) OtherEnd(e EdgeID, v VertexID) VertexID {
	if !b.validEdge(e) {
		return NoVertex
	}
	ends := b.edges[e].Ends
	if ends[0] == v {
		return ends[1]
	}
	return ends[0]
}

// HexesWithNumber returns the hexes carrying number n.
func (b *Board) HexesWithNumber(n int) []HexID {
	var out []HexID
	for _, h := range b.hexes {
		if h.Number == n {
			out = append(out, h.ID)
		}
	}
	return out
}

// CoastalEdges returns the edges bordering only one hex, in perimeter order.
func (b *Board) CoastalEdges() []EdgeID {
	out := make([]EdgeID, len(b.coastal))
	copy(out, b.coastal)
	return out
}

func (b *Board) validHex(id HexID) bool       { return id >= 0 && int(id) < len(b.hexes) }
func (b *Board) validVertex(id VertexID) bool { return id >= 0 && int(id) < len(b.vertices) }
func (b *Board) validEdge(id EdgeID) bool     { return id >= 0 && int(id) < len(b.edges) }
