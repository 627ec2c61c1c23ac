package simulator

import (
	"encoding/json"
	"fmt"

	"github.com/lox/blackjack-cli/internal/fileutil"
)

type reportJSON struct {
	Strategy       string         `json:"strategy"`
	Sessions       int            `json:"sessions"`
	Broke          int            `json:"broke"`
	AverageBalance float64        `json:"average_balance"`
	Rounds         int            `json:"rounds"`
	Wins           int            `json:"wins"`
	Losses         int            `json:"losses"`
	Outcomes       map[string]int `json:"outcomes"`
	Naturals       int            `json:"naturals"`
	Ties           int            `json:"ties"`
	Net            int            `json:"net"`
	Wagered        int            `json:"wagered"`
	Mean           float64        `json:"mean"`
	StdDev         float64        `json:"std_dev"`
	ElapsedMillis  int64          `json:"elapsed_ms"`
}

// MarshalJSON encodes the report summary
func (r *Report) MarshalJSON() ([]byte, error) {
	outcomes := make(map[string]int, len(r.Stats.Outcomes))
	for outcome, n := range r.Stats.Outcomes {
		outcomes[outcome.String()] = n
	}
	return json.Marshal(reportJSON{
		Strategy:       r.Strategy,
		Sessions:       len(r.Sessions),
		Broke:          r.Broke,
		AverageBalance: r.AverageBalance(),
		Rounds:         r.Stats.Rounds,
		Wins:           r.Stats.Wins(),
		Losses:         r.Stats.Losses(),
		Outcomes:       outcomes,
		Naturals:       r.Stats.Naturals,
		Ties:           r.Stats.Ties,
		Net:            r.Stats.Net(),
		Wagered:        r.Stats.TotalBet,
		Mean:           r.Stats.Mean(),
		StdDev:         r.Stats.StdDev(),
		ElapsedMillis:  r.Elapsed.Milliseconds(),
	})
}

// WriteFile writes the report as indented JSON, replacing filename atomically
func (r *Report) WriteFile(filename string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return fileutil.WriteFileAtomic(filename, append(data, '\n'), 0o644)
}
