// Package catalog holds the fixed tables of the game: resources, building
// costs and supply, and the development-card pool.
package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// Resource is a tile product or a card in a player's hand.
type Resource uint8

const (
	Wood Resource = iota
	Brick
	Wheat
	Ore
	Sheep
	// Misc means "any resource". It marks the desert and 3:1 ports and is
	// never held in a hand.
	Misc
)

var resourceNames = map[Resource]string{
	Wood:  "wood",
	Brick: "brick",
	Wheat: "wheat",
	Ore:   "ore",
	Sheep: "sheep",
	Misc:  "misc",
}

func (r Resource) String() string {
	if s, ok := resourceNames[r]; ok {
		return s
	}
	return "unknown"
}

// Valid reports whether r is a known resource, Misc included.
func (r Resource) Valid() bool { return r <= Misc }

// Holdable reports whether r can sit in a player's hand.
func (r Resource) Holdable() bool { return r < Misc }

// ParseResource is the inverse of Resource.String.
func ParseResource(s string) (Resource, error) {
	for r, name := range resourceNames {
		if name == strings.ToLower(s) {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown resource %q", s)
}

// MarshalText encodes the resource by name.
func (r Resource) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

// UnmarshalText decodes a resource name.
func (r *Resource) UnmarshalText(b []byte) error {
	v, err := ParseResource(string(b))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// Producing returns the five holdable resources in canonical order.
func Producing() []Resource {
	return []Resource{Wood, Brick, Wheat, Ore, Sheep}
}

// Hand maps resources to card counts.
type Hand map[Resource]int

// Total sums every count in the hand.
func (h Hand) Total() int {
	n := 0
	for _, c := range h {
		n += c
	}
	return n
}

// Covers reports whether h holds at least as many of every resource as need.
func (h Hand) Covers(need Hand) bool {
	for r, c := range need {
		if h[r] < c {
			return false
		}
	}
	return true
}

// Clone returns an independent copy without zero entries.
func (h Hand) Clone() Hand {
	out := make(Hand, len(h))
	for r, c := range h {
		if c != 0 {
			out[r] = c
		}
	}
	return out
}

// Valid reports whether every entry is a holdable resource with a
// non-negative count.
func (h Hand) Valid() bool {
	for r, c := range h {
		if !r.Holdable() || c < 0 {
			return false
		}
	}
	return true
}

func (h Hand) String() string {
	keys := make([]Resource, 0, len(h))
	for r, c := range h {
		if c != 0 {
			keys = append(keys, r)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	parts := make([]string, len(keys))
	for i, r := range keys {
		parts[i] = fmt.Sprintf("%s:%d", r, h[r])
	}
	return "{" + strings.Join(parts, " ") + "}"
}
