// Package statistics tallies the results of blackjack rounds for the
// end-of-session summary and for simulations.
package statistics

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/coder/quartz"
	"github.com/lox/blackjack-cli/internal/game"
)

// RoundResult is the outcome of a single round from the player's side
type RoundResult struct {
	Outcome     game.Outcome
	Net         int  // chips won (positive) or lost (negative)
	Bet         int  // amount wagered
	Natural     bool // player was dealt 21
	Tie         bool // showdown with equal totals
	PlayerTotal int
	DealerTotal int
}

// Statistics tracks results across rounds
type Statistics struct {
	Rounds  int
	SumNet  float64
	SumNet2 float64   // Sum of squares for variance calculation
	Values  []float64 // Store all values for median/percentile calculation

	Outcomes   map[game.Outcome]int
	Naturals   int
	Ties       int
	TotalBet   int
	BiggestWin int
	BiggestBet int
}

// New creates empty statistics
func New() *Statistics {
	return &Statistics{Outcomes: make(map[game.Outcome]int)}
}

// Add incorporates a new round result into the statistics
func (s *Statistics) Add(result RoundResult) {
	if s.Outcomes == nil {
		s.Outcomes = make(map[game.Outcome]int)
	}

	net := float64(result.Net)
	s.Rounds++
	s.SumNet += net
	s.SumNet2 += net * net
	s.Values = append(s.Values, net)

	s.Outcomes[result.Outcome]++
	s.TotalBet += result.Bet
	if result.Natural {
		s.Naturals++
	}
	if result.Tie {
		s.Ties++
	}
	if result.Net > s.BiggestWin {
		s.BiggestWin = result.Net
	}
	if result.Bet > s.BiggestBet {
		s.BiggestBet = result.Bet
	}
}

// Merge folds other's rounds into s
func (s *Statistics) Merge(other *Statistics) {
	if s.Outcomes == nil {
		s.Outcomes = make(map[game.Outcome]int)
	}
	s.Rounds += other.Rounds
	s.SumNet += other.SumNet
	s.SumNet2 += other.SumNet2
	s.Values = append(s.Values, other.Values...)
	for outcome, n := range other.Outcomes {
		s.Outcomes[outcome] += n
	}
	s.Naturals += other.Naturals
	s.Ties += other.Ties
	s.TotalBet += other.TotalBet
	s.BiggestWin = max(s.BiggestWin, other.BiggestWin)
	s.BiggestBet = max(s.BiggestBet, other.BiggestBet)
}

// Wins returns the number of rounds the player won
func (s *Statistics) Wins() int {
	return s.Outcomes[game.PlayerWins] + s.Outcomes[game.DealerBust]
}

// Losses returns the number of rounds the player lost
func (s *Statistics) Losses() int {
	return s.Outcomes[game.DealerWins] + s.Outcomes[game.PlayerBust]
}

// WinRate returns the fraction of rounds won
func (s *Statistics) WinRate() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.Wins()) / float64(s.Rounds)
}

// Net returns the total chips won or lost
func (s *Statistics) Net() int {
	return int(s.SumNet)
}

// Mean returns the arithmetic mean result per round
func (s *Statistics) Mean() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.SumNet / float64(s.Rounds)
}

// Variance returns the sample variance of all results
func (s *Statistics) Variance() float64 {
	if s.Rounds < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumNet2 - float64(s.Rounds)*mean*mean) / float64(s.Rounds-1)
}

// StdDev returns the sample standard deviation of all results
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Rounds))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median value of all results
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the value at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Validate checks that the tallies agree with each other
func (s *Statistics) Validate() error {
	if s.Wins()+s.Losses() != s.Rounds {
		return fmt.Errorf("outcome mismatch: wins=%d losses=%d rounds=%d", s.Wins(), s.Losses(), s.Rounds)
	}
	if len(s.Values) != s.Rounds {
		return fmt.Errorf("value count mismatch: values=%d rounds=%d", len(s.Values), s.Rounds)
	}
	if s.Ties > s.Outcomes[game.DealerWins] {
		return fmt.Errorf("ties (%d) exceed dealer showdown wins (%d)", s.Ties, s.Outcomes[game.DealerWins])
	}
	return nil
}

// Summary renders a multi-line report of the statistics
func (s *Statistics) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Rounds: %d  Won: %d  Lost: %d  (%.1f%%)\n", s.Rounds, s.Wins(), s.Losses(), s.WinRate()*100)
	fmt.Fprintf(&b, "Busts: player %d, dealer %d  Naturals: %d  Ties lost: %d\n",
		s.Outcomes[game.PlayerBust], s.Outcomes[game.DealerBust], s.Naturals, s.Ties)
	fmt.Fprintf(&b, "Net: %+d chips  Wagered: %d  Mean: %+.2f/round", s.Net(), s.TotalBet, s.Mean())
	if s.Rounds > 1 {
		lo, hi := s.ConfidenceInterval95()
		fmt.Fprintf(&b, "  95%% CI: [%+.2f, %+.2f]", lo, hi)
	}
	return b.String()
}

// Collector is a game.Display that records every finished round
type Collector struct {
	stats   *Statistics
	clock   quartz.Clock
	started time.Time
	ended   time.Time
	natural bool
}

// NewCollector creates a collector timing the session with clock
func NewCollector(clock quartz.Clock) *Collector {
	return &Collector{
		stats:   New(),
		clock:   clock,
		started: clock.Now(),
	}
}

// Show records round results as they are published
func (c *Collector) Show(event game.GameEvent) {
	switch e := event.(type) {
	case game.RoundStartEvent:
		c.natural = false
	case game.TurnEvent:
		if e.Participant == game.Human && e.Action == game.ActionBlackjack {
			c.natural = true
		}
	case game.RoundEndEvent:
		net := -e.Bet
		if e.Outcome.PlayerWon() {
			net = e.Bet
		}
		c.stats.Add(RoundResult{
			Outcome:     e.Outcome,
			Net:         net,
			Bet:         e.Bet,
			Natural:     c.natural,
			Tie:         e.Outcome == game.DealerWins && e.PlayerTotal == e.DealerTotal,
			PlayerTotal: e.PlayerTotal,
			DealerTotal: e.DealerTotal,
		})
	case game.SessionEndEvent:
		c.ended = c.clock.Now()
	}
}

// Stats returns the collected statistics
func (c *Collector) Stats() *Statistics {
	return c.stats
}

// Elapsed returns how long the session has run, or ran if it is over
func (c *Collector) Elapsed() time.Duration {
	if !c.ended.IsZero() {
		return c.ended.Sub(c.started)
	}
	return c.clock.Since(c.started)
}
