// Package config loads the game's HCL configuration file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/lox/blackjack-cli/internal/game"
)

// DefaultFile is the configuration file looked up when none is given
const DefaultFile = "blackjack.hcl"

// Config represents the complete game configuration
type Config struct {
	Game *GameSettings `hcl:"game,block"`
	UI   *UISettings   `hcl:"ui,block"`
}

// GameSettings contains the bank and betting limits
type GameSettings struct {
	Bank   int   `hcl:"bank,optional"`
	MinBet int   `hcl:"min_bet,optional"`
	MaxBet int   `hcl:"max_bet,optional"` // 0 means the whole bank
	Seed   int64 `hcl:"seed,optional"`    // 0 means seed from the clock
}

// UISettings contains user interface settings
type UISettings struct {
	Input    string `hcl:"input,optional"`
	NoColor  bool   `hcl:"no_color,optional"`
	LogLevel string `hcl:"log_level,optional"`
	LogFile  string `hcl:"log_file,optional"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Game: &GameSettings{
			Bank:   game.DefaultBank,
			MinBet: 1,
		},
		UI: &UISettings{
			Input:    "line",
			LogLevel: "warn",
		},
	}
}

// Load loads configuration from an HCL file. A missing file yields the
// defaults; values left out of the file are filled from the defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	defaults := Default()

	if c.Game == nil {
		c.Game = defaults.Game
	}
	if c.UI == nil {
		c.UI = defaults.UI
	}

	if c.Game.Bank == 0 {
		c.Game.Bank = defaults.Game.Bank
	}
	if c.Game.MinBet == 0 {
		c.Game.MinBet = defaults.Game.MinBet
	}
	if c.UI.Input == "" {
		c.UI.Input = defaults.UI.Input
	}
	if c.UI.LogLevel == "" {
		c.UI.LogLevel = defaults.UI.LogLevel
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Game.Bank <= 0 {
		return fmt.Errorf("bank must be positive")
	}
	if c.Game.MinBet < 1 {
		return fmt.Errorf("minimum bet must be at least 1")
	}
	if c.Game.MinBet > c.Game.Bank {
		return fmt.Errorf("minimum bet %d exceeds bank %d", c.Game.MinBet, c.Game.Bank)
	}
	if c.Game.MaxBet < 0 {
		return fmt.Errorf("maximum bet cannot be negative")
	}
	if c.Game.MaxBet != 0 && c.Game.MaxBet < c.Game.MinBet {
		return fmt.Errorf("maximum bet %d is below minimum bet %d", c.Game.MaxBet, c.Game.MinBet)
	}

	validInputs := map[string]bool{
		"line": true,
		"tui":  true,
	}
	if !validInputs[c.UI.Input] {
		return fmt.Errorf("invalid input mode: %s", c.UI.Input)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.UI.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.UI.LogLevel)
	}

	return nil
}

// Limits returns the betting limits for the configured game
func (c *Config) Limits() BetLimits {
	return BetLimits{Min: c.Game.MinBet, Max: c.Game.MaxBet}
}

// BetLimits bounds the bets an input will accept
type BetLimits struct {
	Min int
	Max int // 0 means no limit beyond the balance
}

// Ceiling returns the largest bet allowed with the given balance
func (l BetLimits) Ceiling(balance int) int {
	if l.Max > 0 && l.Max < balance {
		return l.Max
	}
	return balance
}

// Check returns nil if amount is an acceptable bet against balance. The
// messages are shown to the player as-is. When the balance has dropped
// below the table minimum, any positive bet up to the balance is allowed.
func (l BetLimits) Check(amount, balance int) error {
	minimum := max(l.Min, 1)
	if balance < minimum {
		minimum = 1
	}
	if amount < minimum {
		if minimum > 1 {
			return fmt.Errorf("Bet should be at least %d.", minimum)
		}
		return errors.New("Bet should be a positive integer.")
	}
	if amount > balance {
		return errors.New("Bet shouldn't be bigger than your bank.")
	}
	if l.Max > 0 && amount > l.Max {
		return fmt.Errorf("Bet shouldn't be bigger than the table limit of %d.", l.Max)
	}
	return nil
}
