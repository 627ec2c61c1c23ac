package bot

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjack-cli/internal/deck"
	"github.com/lox/blackjack-cli/internal/game"
	"github.com/lox/blackjack-cli/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func hand(s string) *game.Hand {
	return game.NewHand(deck.MustParseCards(s)...)
}

func card(s string) deck.Card {
	return deck.MustParseCards(s)[0]
}

func TestThreshold(t *testing.T) {
	t.Parallel()
	s := Threshold{StandOn: 17}
	assert.Equal(t, game.Hit, s.Decide(hand("Th6c"), card("7s")))
	assert.Equal(t, game.Hold, s.Decide(hand("Th7c"), card("7s")))
	assert.Equal(t, game.Hold, s.Decide(hand("As6c"), card("7s")))
	assert.Equal(t, "threshold-17", s.Name())
}

func TestBasic(t *testing.T) {
	t.Parallel()
	tests := []struct {
		hand string
		up   string
		want game.Decision
	}{
		{"5h6c", "Ts", game.Hit},
		{"Th2c", "3s", game.Hit},
		{"Th2c", "4s", game.Hold},
		{"Th3c", "6s", game.Hold},
		{"Th6c", "7s", game.Hit},
		{"Th6c", "As", game.Hit},
		{"Th7c", "As", game.Hold},
		{"As6c", "2s", game.Hit},
		{"As7c", "8s", game.Hold},
		{"As7c", "9s", game.Hit},
		{"As8c", "Ts", game.Hold},
		{"AsAc", "6s", game.Hit},
	}

	for _, tt := range tests {
		t.Run(tt.hand+"v"+tt.up, func(t *testing.T) {
			assert.Equal(t, tt.want, Basic{}.Decide(hand(tt.hand), card(tt.up)))
		})
	}
}

func TestByName(t *testing.T) {
	t.Parallel()
	rng := randutil.New(1)
	for _, name := range []string{"basic", "mimic", "cautious", "random"} {
		s, err := ByName(name, rng)
		require.NoError(t, err, name)
		assert.NotNil(t, s)
	}
	_, err := ByName("card-counter", rng)
	assert.Error(t, err)
}

func TestRandomUsesBothDecisions(t *testing.T) {
	t.Parallel()
	s := NewRandom(randutil.New(9))
	seen := map[game.Decision]bool{}
	for i := 0; i < 100; i++ {
		seen[s.Decide(hand("Th2c"), card("7s"))] = true
	}
	assert.Len(t, seen, 2)
}

func TestBotInput(t *testing.T) {
	t.Parallel()
	b := New(Threshold{StandOn: 17}, 25, 2, quietLogger())

	for i := 0; i < 2; i++ {
		deal, err := b.DealHand()
		require.NoError(t, err)
		assert.True(t, deal)
	}
	deal, err := b.DealHand()
	require.NoError(t, err)
	assert.False(t, deal)
	assert.Equal(t, 2, b.Played())

	bet, err := b.Bet(200)
	require.NoError(t, err)
	assert.Equal(t, 25, bet)
	bet, err = b.Bet(10)
	require.NoError(t, err)
	assert.Equal(t, 10, bet)
}

func TestBotPlaysFullSession(t *testing.T) {
	t.Parallel()
	shoe := deck.NewShoe(randutil.New(77))
	shoe.Shuffle()
	b := New(Basic{}, 10, 50, quietLogger())
	table := game.NewTable(shoe, game.NewBank(200), b)

	end, err := table.Run(context.Background())
	require.NoError(t, err)

	if end.Reason == game.EndDeclined {
		assert.Equal(t, 50, end.Rounds)
	} else {
		assert.Equal(t, game.EndBroke, end.Reason)
	}
	assert.GreaterOrEqual(t, end.Balance, 0)
	assert.Equal(t, deck.DeckSize, shoe.Len())
}
