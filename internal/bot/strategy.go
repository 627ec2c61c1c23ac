package bot

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/lox/blackjack-cli/internal/deck"
	"github.com/lox/blackjack-cli/internal/game"
)

// Strategy decides whether to hit or hold
type Strategy interface {
	Decide(hand *game.Hand, upCard deck.Card) game.Decision
	Name() string
}

// Threshold hits below StandOn and holds otherwise. Threshold{17} plays
// the same way as the dealer.
type Threshold struct {
	StandOn int
}

// Decide hits while the total is below the threshold
func (t Threshold) Decide(hand *game.Hand, upCard deck.Card) game.Decision {
	if hand.Total() < t.StandOn {
		return game.Hit
	}
	return game.Hold
}

// Name returns the strategy name
func (t Threshold) Name() string {
	return fmt.Sprintf("threshold-%d", t.StandOn)
}

// Basic plays hit/stand basic strategy against a dealer who stands on all
// 17s. Doubling and splitting are not available, so those hands hit.
type Basic struct{}

// Decide looks up the hit/stand chart for the hand and dealer up card
func (Basic) Decide(hand *game.Hand, upCard deck.Card) game.Decision {
	total := hand.Total()
	up := upCard.SoftValue()

	if hand.IsSoft() {
		switch {
		case total >= 19:
			return game.Hold
		case total == 18 && up <= 8:
			return game.Hold
		default:
			return game.Hit
		}
	}

	switch {
	case total >= 17:
		return game.Hold
	case total >= 13 && up <= 6:
		return game.Hold
	case total == 12 && up >= 4 && up <= 6:
		return game.Hold
	default:
		return game.Hit
	}
}

// Name returns the strategy name
func (Basic) Name() string {
	return "basic"
}

// Random hits or holds with equal probability below 21
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a random strategy using rng
func NewRandom(rng *rand.Rand) *Random {
	return &Random{rng: rng}
}

// Decide flips a coin
func (r *Random) Decide(hand *game.Hand, upCard deck.Card) game.Decision {
	if r.rng.IntN(2) == 0 {
		return game.Hit
	}
	return game.Hold
}

// Name returns the strategy name
func (r *Random) Name() string {
	return "random"
}

// ByName returns the strategy registered under name
func ByName(name string, rng *rand.Rand) (Strategy, error) {
	switch name {
	case "basic":
		return Basic{}, nil
	case "mimic":
		return Threshold{StandOn: game.DealerStandsOn}, nil
	case "cautious":
		return Threshold{StandOn: 12}, nil
	case "random":
		return NewRandom(rng), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", name)
	}
}
