package catalog

import (
	"fmt"
	"strings"
)

// DevCard is a development card kind.
type DevCard int

const (
	Knight DevCard = iota
	VictoryPoint
	Monopoly
	YearOfPlenty
	RoadBuilding
)

var devCardNames = map[DevCard]string{
	Knight:       "knight",
	VictoryPoint: "victory_point",
	Monopoly:     "monopoly",
	YearOfPlenty: "year_of_plenty",
	RoadBuilding: "road_building",
}

func (c DevCard) String() string {
	if s, ok := devCardNames[c]; ok {
		return s
	}
	return "unknown"
}

// Valid reports whether c is a known card kind.
func (c DevCard) Valid() bool {
	_, ok := devCardNames[c]
	return ok
}

// Playable reports whether the card can ever be played from a hand.
// Victory point cards only ever score.
func (c DevCard) Playable() bool { return c.Valid() && c != VictoryPoint }

// DevCards lists every kind in canonical order.
func DevCards() []DevCard {
	return []DevCard{Knight, VictoryPoint, Monopoly, YearOfPlenty, RoadBuilding}
}

var poolCounts = map[DevCard]int{
	Knight:       14,
	VictoryPoint: 5,
	Monopoly:     2,
	YearOfPlenty: 2,
	RoadBuilding: 2,
}

// PoolCount returns how many cards of kind c the pool holds.
func PoolCount(c DevCard) int { return poolCounts[c] }

// DevelopmentPool returns the 25-card multiset, unshuffled, in canonical order.
func DevelopmentPool() []DevCard {
	cards := make([]DevCard, 0, DevelopmentCard.MaxSupply())
	for _, c := range DevCards() {
		for i := 0; i < poolCounts[c]; i++ {
			cards = append(cards, c)
		}
	}
	return cards
}

// ParseDevCard is the inverse of DevCard.String.
func ParseDevCard(s string) (DevCard, error) {
	for d, name := range devCardNames {
		if name == strings.ToLower(s) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown development card %q", s)
}

func (d DevCard) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

func (d *DevCard) UnmarshalText(text []byte) error {
	v, err := ParseDevCard(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
