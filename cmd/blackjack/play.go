package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/blackjack-cli/internal/config"
	"github.com/lox/blackjack-cli/internal/console"
	"github.com/lox/blackjack-cli/internal/deck"
	"github.com/lox/blackjack-cli/internal/game"
	"github.com/lox/blackjack-cli/internal/randutil"
	"github.com/lox/blackjack-cli/internal/statistics"
	"github.com/lox/blackjack-cli/internal/tui"
)

type PlayCmd struct {
	Config  string `short:"c" default:"${config_file}" help:"Configuration file (defaults apply when missing)"`
	Bank    int    `help:"Starting bank, overrides the config file"`
	Seed    int64  `help:"Shuffle seed for a reproducible shoe (0 = random)"`
	TUI     bool   `name:"tui" help:"Use the Bubble Tea prompt instead of readline"`
	NoColor bool   `help:"Disable colours"`
	Debug   bool   `help:"Log debug output to stderr"`
	LogFile string `help:"Write logs to this file"`
	Stats   bool   `default:"true" negatable:"" help:"Print session statistics when the game ends"`
}

// apply overlays the command line flags on the loaded configuration
func (c *PlayCmd) apply(cfg *config.Config) {
	if c.Bank != 0 {
		cfg.Game.Bank = c.Bank
	}
	if c.Seed != 0 {
		cfg.Game.Seed = c.Seed
	}
	if c.TUI {
		cfg.UI.Input = "tui"
	}
	if c.NoColor {
		cfg.UI.NoColor = true
	}
	if c.LogFile != "" {
		cfg.UI.LogFile = c.LogFile
	}
}

func (c *PlayCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	c.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, closeLog, err := setupLogger(cfg.UI.LogLevel, c.Debug, cfg.UI.LogFile)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeLog(); err != nil {
			log.Error("Failed to close log file", "error", err)
		}
	}()

	renderer := console.NewRenderer(os.Stdout, cfg.UI.NoColor)
	styles := console.NewStyles(renderer)

	fmt.Println(styles.Header.Render(" ♠ ♥ Blackjack ♦ ♣ "))
	fmt.Println()

	reader, closeReader, err := newLineReader(cfg.UI.Input, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeReader(); err != nil {
			logger.Error("Failed to close input", "error", err)
		}
	}()

	seed := randutil.Seed(cfg.Game.Seed)
	logger.Info("Starting session", "bank", cfg.Game.Bank, "seed", seed, "input", cfg.UI.Input)

	shoe := deck.NewShoe(randutil.New(seed))
	shoe.Shuffle()

	collector := statistics.NewCollector(quartz.NewReal())
	input := console.NewInput(reader, os.Stdout, styles, cfg.Limits(), logger)
	table := game.NewTable(shoe, game.NewBank(cfg.Game.Bank), input,
		game.WithDisplay(game.MultiDisplay(console.NewDisplay(os.Stdout, styles), collector)),
		game.WithLogger(logger),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	end, err := table.Run(ctx)
	if err != nil {
		return err
	}

	if c.Stats && end.Rounds > 0 {
		printSummary(os.Stdout, renderer, collector)
	}
	return nil
}

// newLineReader returns the configured line source and a function to
// release it
func newLineReader(kind string, logger *log.Logger) (console.LineReader, func() error, error) {
	if kind == "tui" {
		return tui.NewLineReader(os.Stdin, os.Stdout, logger), func() error { return nil }, nil
	}
	rl, err := console.NewReadline(os.Stdin, os.Stdout)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to start readline: %w", err)
	}
	return rl, rl.Close, nil
}

func printSummary(w io.Writer, renderer *lipgloss.Renderer, collector *statistics.Collector) {
	box := renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	_, _ = fmt.Fprintln(w, box.Render(fmt.Sprintf("%s\nPlayed for %s",
		collector.Stats().Summary(), collector.Elapsed().Round(time.Second))))
}
