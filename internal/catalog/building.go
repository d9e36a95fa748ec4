package catalog

import (
	"fmt"
	"strings"
)

// Building is anything a player can buy.
type Building int

const (
	Road Building = iota
	Settlement
	City
	DevelopmentCard
)

var buildingNames = map[Building]string{
	Road:            "road",
	Settlement:      "settlement",
	City:            "city",
	DevelopmentCard: "development_card",
}

func (b Building) String() string {
	if s, ok := buildingNames[b]; ok {
		return s
	}
	return "unknown"
}

// Valid reports whether b is a known building kind.
func (b Building) Valid() bool {
	_, ok := buildingNames[b]
	return ok
}

var costs = map[Building]Hand{
	Road:            {Wood: 1, Brick: 1},
	Settlement:      {Wood: 1, Brick: 1, Wheat: 1, Sheep: 1},
	City:            {Wheat: 2, Ore: 3},
	DevelopmentCard: {Wheat: 1, Ore: 1, Sheep: 1},
}

var maxSupply = map[Building]int{
	Road:            15,
	Settlement:      5,
	City:            4,
	DevelopmentCard: 25,
}

// Cost returns a fresh copy of the resources b costs.
func (b Building) Cost() Hand {
	return costs[b].Clone()
}

// MaxSupply returns how many pieces of b each player owns. For development
// cards it is the size of the one shared deck.
func (b Building) MaxSupply() int {
	return maxSupply[b]
}

// Pieces returns the building kinds that are placed on the board.
func Pieces() []Building {
	return []Building{Road, Settlement, City}
}

// ParseBuilding is the inverse of Building.String.
func ParseBuilding(s string) (Building, error) {
	for b, name := range buildingNames {
		if name == strings.ToLower(s) {
			return b, nil
		}
	}
	return 0, fmt.Errorf("unknown building %q", s)
}

func (b Building) MarshalText() ([]byte, error) { return []byte(b.String()), nil }

func (b *Building) UnmarshalText(text []byte) error {
	v, err := ParseBuilding(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}
