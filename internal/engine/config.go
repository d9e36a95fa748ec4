package engine

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the tunable rules of a game.
type Config struct {
	VictoryPoints    int `yaml:"victory_points"`
	DiscardLimit     int `yaml:"discard_limit"` // more cards than this on a 7 means discarding
	LargestArmyMin   int `yaml:"largest_army_min"`
	LongestRoadMin   int `yaml:"longest_road_min"`
	AchievementBonus int `yaml:"achievement_bonus"`
	MinPlayers       int `yaml:"min_players"`
	MaxPlayers       int `yaml:"max_players"`

	BankRatio         int `yaml:"bank_ratio"`
	GenericPortRatio  int `yaml:"generic_port_ratio"`
	SpecificPortRatio int `yaml:"specific_port_ratio"`

	// DecisionTimeout bounds every blocking Decider call. Zero means the
	// caller's context alone decides.
	DecisionTimeout time.Duration `yaml:"decision_timeout"`
}

func DefaultConfig() Config {
	return Config{
		VictoryPoints:     10,
		DiscardLimit:      7,
		LargestArmyMin:    3,
		LongestRoadMin:    5,
		AchievementBonus:  2,
		MinPlayers:        2,
		MaxPlayers:        4,
		BankRatio:         4,
		GenericPortRatio:  3,
		SpecificPortRatio: 2,
		DecisionTimeout:   2 * time.Minute,
	}
}

// Validate reports the first nonsensical setting.
func (c Config) Validate() error {
	switch {
	case c.VictoryPoints < 3:
		return fmt.Errorf("victory_points must be at least 3, got %d", c.VictoryPoints)
	case c.DiscardLimit < 1:
		return fmt.Errorf("discard_limit must be positive, got %d", c.DiscardLimit)
	case c.LargestArmyMin < 1 || c.LongestRoadMin < 1:
		return fmt.Errorf("achievement minimums must be positive")
	case c.AchievementBonus < 0:
		return fmt.Errorf("achievement_bonus must not be negative")
	case c.MinPlayers < 1 || c.MaxPlayers < c.MinPlayers:
		return fmt.Errorf("player bounds %d..%d are invalid", c.MinPlayers, c.MaxPlayers)
	case c.SpecificPortRatio < 1 || c.GenericPortRatio < c.SpecificPortRatio || c.BankRatio < c.GenericPortRatio:
		return fmt.Errorf("trade ratios must satisfy 1 <= specific <= generic <= bank")
	case c.DecisionTimeout < 0:
		return fmt.Errorf("decision_timeout must not be negative")
	}
	return nil
}

// LoadConfig reads a YAML rules file. Keys missing from the file keep their
// DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("rules yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("rules yaml: %w", err)
	}
	return cfg, nil
}
