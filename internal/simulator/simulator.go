// Package simulator plays many automated blackjack sessions and reports
// how a strategy fares.
package simulator

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/blackjack-cli/internal/bot"
	"github.com/lox/blackjack-cli/internal/deck"
	"github.com/lox/blackjack-cli/internal/game"
	"github.com/lox/blackjack-cli/internal/randutil"
	"github.com/lox/blackjack-cli/internal/statistics"
	"golang.org/x/sync/errgroup"
)

// Config holds configuration for running simulations
type Config struct {
	Sessions int    // independent sessions, each with a fresh bank and shoe
	Rounds   int    // round limit per session; <= 0 plays until broke
	Bank     int    // starting balance per session
	Bet      int    // flat bet per round
	Strategy string // see bot.ByName
	Seed     int64
	Workers  int // sessions played concurrently; defaults to GOMAXPROCS
	Clock    quartz.Clock
	Logger   *log.Logger
}

// Report is the result of a simulation run
type Report struct {
	Strategy string
	Stats    *statistics.Statistics
	Sessions []game.SessionEndEvent
	Broke    int
	Elapsed  time.Duration
}

// Simulator runs blackjack simulations
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	if config.Logger == nil {
		config.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if config.Sessions <= 0 {
		config.Sessions = 1
	}
	if config.Workers <= 0 {
		config.Workers = runtime.GOMAXPROCS(0)
	}
	return &Simulator{config: config}
}

// Run plays every session and merges their statistics in session order.
// Session i uses seed Seed+i, so a run is reproducible whatever the
// number of workers.
func (s *Simulator) Run(ctx context.Context) (*Report, error) {
	if s.config.Bank <= 0 {
		return nil, fmt.Errorf("bank must be positive, got %d", s.config.Bank)
	}
	if s.config.Bet <= 0 {
		return nil, fmt.Errorf("bet must be positive, got %d", s.config.Bet)
	}
	if s.config.Rounds <= 0 && s.config.Bet > s.config.Bank {
		return nil, fmt.Errorf("bet %d exceeds bank %d", s.config.Bet, s.config.Bank)
	}

	started := s.config.Clock.Now()
	collectors := make([]*statistics.Collector, s.config.Sessions)
	ends := make([]game.SessionEndEvent, s.config.Sessions)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Workers)
	for i := range s.config.Sessions {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			collector := statistics.NewCollector(s.config.Clock)
			end, err := s.playSession(gctx, s.config.Seed+int64(i), collector)
			if err != nil {
				return fmt.Errorf("session %d: %w", i+1, err)
			}
			collectors[i] = collector
			ends[i] = end
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// A cancelled session ends early without an error
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	report := &Report{
		Strategy: s.config.Strategy,
		Stats:    statistics.New(),
		Sessions: ends,
		Elapsed:  s.config.Clock.Since(started),
	}
	for i, end := range ends {
		report.Stats.Merge(collectors[i].Stats())
		if end.Reason == game.EndBroke {
			report.Broke++
		}
	}

	if err := report.Stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	s.config.Logger.Info("simulation complete", "strategy", s.config.Strategy,
		"sessions", s.config.Sessions, "workers", s.config.Workers,
		"rounds", report.Stats.Rounds, "net", report.Stats.Net(), "elapsed", report.Elapsed)
	return report, nil
}

func (s *Simulator) playSession(ctx context.Context, seed int64, display game.Display) (game.SessionEndEvent, error) {
	rng := randutil.New(seed)
	strategy, err := bot.ByName(s.config.Strategy, rng)
	if err != nil {
		return game.SessionEndEvent{}, err
	}

	shoe := deck.NewShoe(rng)
	shoe.Shuffle()

	player := bot.New(strategy, s.config.Bet, s.config.Rounds, s.config.Logger)
	table := game.NewTable(shoe, game.NewBank(s.config.Bank), player,
		game.WithDisplay(display),
		game.WithLogger(s.config.Logger),
	)
	return table.Run(ctx)
}

// AverageBalance returns the mean closing balance across sessions
func (r *Report) AverageBalance() float64 {
	if len(r.Sessions) == 0 {
		return 0
	}
	total := 0
	for _, s := range r.Sessions {
		total += s.Balance
	}
	return float64(total) / float64(len(r.Sessions))
}
