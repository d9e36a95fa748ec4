// Package config loads the server's process settings from the environment.
// Game rules live in a separate YAML file, see engine.LoadConfig.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Server holds the settings the process reads at startup.
type Server struct {
	Port      int    `env:"SETTLERS_PORT" envDefault:"8080"`
	RulesPath string `env:"SETTLERS_RULES_PATH"`
	// DecisionTimeout overrides the rules file when set.
	DecisionTimeout time.Duration `env:"SETTLERS_DECISION_TIMEOUT"`
	// Dev switches to human-readable logs.
	Dev bool `env:"SETTLERS_DEV" envDefault:"false"`
	// BotFill seats bots in empty places when a room starts short-handed.
	BotFill      bool          `env:"SETTLERS_BOT_FILL" envDefault:"true"`
	MessageRate  float64       `env:"SETTLERS_MESSAGE_RATE" envDefault:"20"`
	MessageBurst int           `env:"SETTLERS_MESSAGE_BURST" envDefault:"40"`
	ShutdownWait time.Duration `env:"SETTLERS_SHUTDOWN_WAIT" envDefault:"5s"`
}

// Load parses the environment into a Server.
func Load() (Server, error) {
	var cfg Server
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return cfg, fmt.Errorf("port %d out of range", cfg.Port)
	}
	if cfg.MessageRate <= 0 || cfg.MessageBurst <= 0 {
		return cfg, fmt.Errorf("message rate and burst must be positive")
	}
	return cfg, nil
}
