package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lox/blackjack-cli/internal/randutil"
	"github.com/lox/blackjack-cli/internal/simulator"
)

type SimulateCmd struct {
	Sessions int    `short:"n" default:"100" help:"Number of independent sessions"`
	Rounds   int    `short:"r" default:"50" help:"Rounds per session (0 = play until broke)"`
	Bank     int    `default:"200" help:"Starting bank per session"`
	Bet      int    `short:"b" default:"10" help:"Flat bet per round"`
	Strategy string `short:"s" default:"basic" enum:"basic,mimic,cautious,random" help:"Player strategy (basic|mimic|cautious|random)"`
	Seed     int64  `help:"Base seed (0 = random)"`
	Workers  int    `short:"w" help:"Sessions to play concurrently (0 = one per CPU)"`
	Debug    bool   `help:"Log each round to stderr"`
	LogFile  string `help:"Write logs to this file"`
	Output   string `short:"o" help:"Write the report as JSON to this file"`
}

func (c *SimulateCmd) Run() error {
	logger, closeLog, err := setupLogger("info", c.Debug, c.LogFile)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sim := simulator.New(simulator.Config{
		Sessions: c.Sessions,
		Rounds:   c.Rounds,
		Bank:     c.Bank,
		Bet:      c.Bet,
		Strategy: c.Strategy,
		Seed:     randutil.Seed(c.Seed),
		Workers:  c.Workers,
		Logger:   logger,
	})

	report, err := sim.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Strategy: %s  Sessions: %d  Broke: %d  Average bank: %.1f\n",
		report.Strategy, len(report.Sessions), report.Broke, report.AverageBalance())
	fmt.Println(report.Stats.Summary())
	fmt.Printf("Completed in %s\n", report.Elapsed.Round(time.Millisecond))

	if c.Output != "" {
		if err := report.WriteFile(c.Output); err != nil {
			return err
		}
		logger.Info("Report written", "file", c.Output)
	}
	return nil
}
