package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lox/blackjack-cli/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blackjack.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, game.DefaultBank, cfg.Game.Bank)
}

func TestLoadFile(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, `
game {
  bank    = 500
  min_bet = 5
  max_bet = 100
  seed    = 42
}

ui {
  input     = "tui"
  no_color  = true
  log_level = "debug"
  log_file  = "blackjack.log"
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 500, cfg.Game.Bank)
	assert.Equal(t, 5, cfg.Game.MinBet)
	assert.Equal(t, 100, cfg.Game.MaxBet)
	assert.Equal(t, int64(42), cfg.Game.Seed)
	assert.Equal(t, "tui", cfg.UI.Input)
	assert.True(t, cfg.UI.NoColor)
	assert.Equal(t, "debug", cfg.UI.LogLevel)
	assert.Equal(t, "blackjack.log", cfg.UI.LogFile)
}

func TestLoadPartialFileFillsDefaults(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, `
game {
  bank = 1000
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 1000, cfg.Game.Bank)
	assert.Equal(t, 1, cfg.Game.MinBet)
	assert.Equal(t, "line", cfg.UI.Input)
	assert.Equal(t, "warn", cfg.UI.LogLevel)
}

func TestLoadInvalidFile(t *testing.T) {
	t.Parallel()
	_, err := Load(writeConfig(t, `game {`))
	assert.ErrorContains(t, err, "failed to parse HCL file")

	_, err = Load(writeConfig(t, `game { bank = "lots" }`))
	assert.ErrorContains(t, err, "failed to decode HCL")

	_, err = Load(writeConfig(t, `table { }`))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"defaults", func(*Config) {}, ""},
		{"zero bank", func(c *Config) { c.Game.Bank = 0 }, "bank must be positive"},
		{"zero min bet", func(c *Config) { c.Game.MinBet = 0 }, "minimum bet"},
		{"min above bank", func(c *Config) { c.Game.MinBet = 300 }, "exceeds bank"},
		{"negative max", func(c *Config) { c.Game.MaxBet = -1 }, "cannot be negative"},
		{"max below min", func(c *Config) { c.Game.MinBet = 10; c.Game.MaxBet = 5 }, "below minimum"},
		{"bad input", func(c *Config) { c.UI.Input = "gui" }, "invalid input mode"},
		{"bad log level", func(c *Config) { c.UI.LogLevel = "loud" }, "invalid log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.errMsg)
		})
	}
}

func TestBetLimitsCheck(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		limits  BetLimits
		amount  int
		balance int
		errMsg  string
	}{
		{"ok", BetLimits{Min: 1}, 20, 200, ""},
		{"whole bank", BetLimits{Min: 1}, 200, 200, ""},
		{"zero", BetLimits{Min: 1}, 0, 200, "positive integer"},
		{"negative", BetLimits{Min: 1}, -5, 200, "positive integer"},
		{"over bank", BetLimits{Min: 1}, 201, 200, "bigger than your bank"},
		{"under table minimum", BetLimits{Min: 10}, 5, 200, "at least 10"},
		{"over table maximum", BetLimits{Min: 1, Max: 50}, 60, 200, "table limit of 50"},
		{"short stack below minimum", BetLimits{Min: 10}, 4, 4, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.limits.Check(tt.amount, tt.balance)
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.errMsg)
		})
	}
}

func TestBetLimitsCeiling(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 200, BetLimits{}.Ceiling(200))
	assert.Equal(t, 50, BetLimits{Max: 50}.Ceiling(200))
	assert.Equal(t, 30, BetLimits{Max: 50}.Ceiling(30))
}
