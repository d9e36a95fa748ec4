package engine

import (
	"fmt"
	"slices"

	"settlers/internal/board"
	"settlers/internal/catalog"
)

// DefaultVictoryTarget is the win threshold a standalone ledger reports against.
const DefaultVictoryTarget = 10

// Player is one seat's ledger. Only the Game that owns it mutates it.
type Player struct {
	ID   string
	Name string

	resources     catalog.Hand
	resourceCount int
	devCards      map[catalog.DevCard]int
	settlements   []board.VertexID
	cities        []board.VertexID
	roads         []board.EdgeID
	ports         map[catalog.Resource]bool
	victoryPoints int
	knights       int
	target        int
}

func NewPlayer(id, name string) *Player {
	return &Player{
		ID:        id,
		Name:      name,
		resources: catalog.Hand{},
		devCards:  make(map[catalog.DevCard]int),
		ports:     make(map[catalog.Resource]bool),
		target:    DefaultVictoryTarget,
	}
}

// AddResource puts one card of r in the hand.
func (p *Player) AddResource(r catalog.Resource) error {
	if !r.Holdable() {
		return fmt.Errorf("%w: %s", ErrMiscInHand, r)
	}
	p.resources[r]++
	p.resourceCount++
	return nil
}

// AddResources credits a whole hand, or nothing if any entry is invalid.
func (p *Player) AddResources(h catalog.Hand) error {
	if !h.Valid() {
		return fmt.Errorf("%w: %s", ErrMiscInHand, h)
	}
	for r, n := range h {
		p.resources[r] += n
		p.resourceCount += n
	}
	return nil
}

// RemoveResources debits every listed resource, or nothing at all when the
// hand is short of any of them.
func (p *Player) RemoveResources(h catalog.Hand) bool {
	for r, n := range h {
		if n < 0 || p.resources[r] < n {
			return false
		}
	}
	for r, n := range h {
		p.resources[r] -= n
		p.resourceCount -= n
	}
	return true
}

// Resource returns how many cards of r the player holds.
func (p *Player) Resource(r catalog.Resource) int { return p.resources[r] }

// Resources returns a copy of the hand.
func (p *Player) Resources() catalog.Hand { return p.resources.Clone() }

// ResourceCount is the running total of resource cards.
func (p *Player) ResourceCount() int { return p.resourceCount }

// HasMoreThanSevenCards is the discard-on-seven trigger at the default limit.
func (p *Player) HasMoreThanSevenCards() bool { return p.HasMoreThan(7) }

func (p *Player) HasMoreThan(limit int) bool { return p.resourceCount > limit }

// AddDevelopmentCard puts c in the hand. Victory point cards score at once.
// It reports whether the player has reached the win threshold.
func (p *Player) AddDevelopmentCard(c catalog.DevCard) bool {
	p.devCards[c]++
	if c == catalog.VictoryPoint {
		p.victoryPoints++
	}
	return p.HasWon()
}

// RemoveDevelopmentCard takes one c out of the hand. Victory point cards
// never leave it.
func (p *Player) RemoveDevelopmentCard(c catalog.DevCard) bool {
	if c == catalog.VictoryPoint || p.devCards[c] == 0 {
		return false
	}
	p.devCards[c]--
	return true
}

// DevCard returns how many cards of kind c the player holds.
func (p *Player) DevCard(c catalog.DevCard) int { return p.devCards[c] }

// DevCardCount is the number of development cards in hand.
func (p *Player) DevCardCount() int {
	n := 0
	for _, c := range p.devCards {
		n += c
	}
	return n
}

// AddSettlement records a settlement and its point.
func (p *Player) AddSettlement(v board.VertexID) (bool, error) {
	if slices.Contains(p.settlements, v) || slices.Contains(p.cities, v) {
		return false, fmt.Errorf("%w: vertex %d", ErrDuplicate, v)
	}
	p.settlements = append(p.settlements, v)
	p.victoryPoints++
	return p.HasWon(), nil
}

// UpgradeSettlement moves v from settlements to cities for one more point.
func (p *Player) UpgradeSettlement(v board.VertexID) (bool, error) {
	i := slices.Index(p.settlements, v)
	if i < 0 {
		return false, fmt.Errorf("%w: vertex %d", ErrInvalidTarget, v)
	}
	p.settlements = slices.Delete(p.settlements, i, i+1)
	p.cities = append(p.cities, v)
	p.victoryPoints++
	return p.HasWon(), nil
}

// AddRoad records a road.
func (p *Player) AddRoad(e board.EdgeID) error {
	if slices.Contains(p.roads, e) {
		return fmt.Errorf("%w: edge %d", ErrDuplicate, e)
	}
	p.roads = append(p.roads, e)
	return nil
}

// AddPort records a harbour. It reports whether the port was new.
func (p *Player) AddPort(r catalog.Resource) bool {
	if p.ports[r] {
		return false
	}
	p.ports[r] = true
	return true
}

// HasPort reports whether the player trades through a port of kind r.
func (p *Player) HasPort(r catalog.Resource) bool { return p.ports[r] }

// Ports lists owned harbours in canonical order.
func (p *Player) Ports() []catalog.Resource {
	var out []catalog.Resource
	for _, r := range append(catalog.Producing(), catalog.Misc) {
		if p.ports[r] {
			out = append(out, r)
		}
	}
	return out
}

func (p *Player) Settlements() []board.VertexID { return slices.Clone(p.settlements) }
func (p *Player) Cities() []board.VertexID      { return slices.Clone(p.cities) }
func (p *Player) Roads() []board.EdgeID         { return slices.Clone(p.roads) }

// RemainingPieces is how many of b the player can still place.
func (p *Player) RemainingPieces(b catalog.Building) int {
	switch b {
	case catalog.Road:
		return b.MaxSupply() - len(p.roads)
	case catalog.Settlement:
		return b.MaxSupply() - len(p.settlements)
	case catalog.City:
		return b.MaxSupply() - len(p.cities)
	}
	return 0
}

func (p *Player) VictoryPoints() int { return p.victoryPoints }
func (p *Player) KnightsPlayed() int { return p.knights }

// HasWon reports whether the player has reached the win threshold.
func (p *Player) HasWon() bool { return p.victoryPoints >= p.target }

func (p *Player) addKnight() { p.knights++ }

// adjustVictoryPoints applies an achievement transfer.
func (p *Player) adjustVictoryPoints(delta int) {
	p.victoryPoints = max(0, p.victoryPoints+delta)
}
