package engine_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"settlers/internal/engine"
)

func writeRules(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultConfigValid(t *testing.T) {
	assert.NoError(t, engine.DefaultConfig().Validate())
}

func TestLoadConfigKeepsDefaults(t *testing.T) {
	cfg, err := engine.LoadConfig(writeRules(t, "victory_points: 12\ndecision_timeout: 30s\n"))
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.VictoryPoints)
	assert.Equal(t, 30*time.Second, cfg.DecisionTimeout)
	assert.Equal(t, engine.DefaultConfig().BankRatio, cfg.BankRatio)
}

func TestLoadConfigRejects(t *testing.T) {
	_, err := engine.LoadConfig(writeRules(t, "bank_ratio: 1\n"))
	assert.ErrorContains(t, err, "trade ratios")

	_, err = engine.LoadConfig(writeRules(t, "victory_points: [\n"))
	assert.ErrorContains(t, err, "rules yaml")

	_, err = engine.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
