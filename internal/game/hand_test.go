package game

import (
	"testing"

	"github.com/lox/blackjack-cli/internal/deck"
	"github.com/stretchr/testify/assert"
)

func TestHandTotal(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		cards string
		total int
		soft  bool
	}{
		{"empty", "", 0, false},
		{"no aces", "QhKs", 20, false},
		{"no aces low", "5h6s", 11, false},
		{"no aces bust", "KhQs5d", 25, false},
		{"ace five", "Ah5s", 16, true},
		{"ace six king", "Ah6sKh", 17, false},
		{"ace ace nine", "AhAs9s", 21, true},
		{"ace ace king nine", "AhAsKs9s", 21, false},
		{"three aces five", "AhAsAd5s", 18, true},
		{"three aces king seven", "AhAsAdKs7d", 20, false},
		{"four aces six", "AhAsAdAc6d", 20, true},
		{"four aces six king", "AhAsAdAc6dKd", 20, false},
		{"natural", "AsKd", 21, true},
		{"single ace", "Ac", 11, true},
		{"aces forced low and bust", "KhQsAdAc", 22, false},
		{"ten aces", "TsAhAsAdAc", 14, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHand(deck.MustParseCards(tt.cards)...)
			assert.Equal(t, tt.total, h.Total())
			assert.Equal(t, tt.soft, h.IsSoft())
		})
	}
}

func TestHandTotalWithoutAcesIsSum(t *testing.T) {
	t.Parallel()
	ranks := []deck.Rank{deck.Two, deck.Three, deck.Four, deck.Five, deck.Six,
		deck.Seven, deck.Eight, deck.Nine, deck.Ten, deck.Jack, deck.Queen, deck.King}

	for _, a := range ranks {
		for _, b := range ranks {
			for _, c := range ranks {
				cards := []deck.Card{
					deck.NewCard(deck.Spades, a),
					deck.NewCard(deck.Hearts, b),
					deck.NewCard(deck.Clubs, c),
				}
				want := cards[0].Value() + cards[1].Value() + cards[2].Value()
				assert.Equal(t, want, NewHand(cards...).Total())
				assert.Equal(t, cards[0].Value()+cards[1].Value(), NewHand(cards[:2]...).Total())
			}
		}
	}
}

func TestHandTotalNeverExceedsBestOption(t *testing.T) {
	t.Parallel()
	// Compare against trying every count of Aces promoted to 11.
	base := []string{"", "2h", "5h", "9h", "Th", "KhQh", "8h7h", "Kh9h2h"}
	for _, b := range base {
		for aces := 0; aces <= 4; aces++ {
			cards := deck.MustParseCards(b)
			for i := 0; i < aces; i++ {
				cards = append(cards, deck.NewCard(deck.Suit(i), deck.Ace))
			}
			h := NewHand(cards...)

			hard := 0
			for _, c := range cards {
				hard += c.Value()
			}
			best := hard
			for raised := 1; raised <= aces; raised++ {
				if v := hard + 10*raised; v <= Blackjack {
					best = v
				}
			}
			assert.Equal(t, best, h.Total(), "hand %s", h)
		}
	}
}

func TestHandBustAndBlackjack(t *testing.T) {
	t.Parallel()
	assert.True(t, NewHand(deck.MustParseCards("AsKd")...).IsBlackjack())
	assert.False(t, NewHand(deck.MustParseCards("7s7d7c")...).IsBlackjack())
	assert.True(t, NewHand(deck.MustParseCards("KsQd2c")...).IsBust())
	assert.False(t, NewHand(deck.MustParseCards("KsQdAc")...).IsBust())
}

func TestHandClearReturnsCards(t *testing.T) {
	t.Parallel()
	h := NewHand(deck.MustParseCards("AhAs")...)
	cards := h.Clear()

	assert.Len(t, cards, 2)
	assert.Equal(t, 0, h.Len())
	assert.Equal(t, 0, h.Total())

	h.Add(deck.MustParseCards("9c")...)
	assert.Equal(t, 9, h.Total())
	assert.Equal(t, "[9♣]", h.String())
}

func TestHandCardsIsACopy(t *testing.T) {
	t.Parallel()
	h := NewHand(deck.MustParseCards("2c3c")...)
	cards := h.Cards()
	cards[0] = deck.NewCard(deck.Spades, deck.Ace)
	assert.Equal(t, 5, h.Total())
}
