package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCards(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		expected []Card
		wantErr  bool
	}{
		{
			name:  "soft hand",
			input: "As6dKc",
			expected: []Card{
				{Suit: Spades, Rank: Ace},
				{Suit: Diamonds, Rank: Six},
				{Suit: Clubs, Rank: King},
			},
		},
		{
			name:  "case insensitive",
			input: "asKHqDjc",
			expected: []Card{
				{Suit: Spades, Rank: Ace},
				{Suit: Hearts, Rank: King},
				{Suit: Diamonds, Rank: Queen},
				{Suit: Clubs, Rank: Jack},
			},
		},
		{
			name:  "spaces ignored",
			input: "Th 9s",
			expected: []Card{
				{Suit: Hearts, Rank: Ten},
				{Suit: Spades, Rank: Nine},
			},
		},
		{name: "invalid rank", input: "XsKs", wantErr: true},
		{name: "invalid suit", input: "AsKx", wantErr: true},
		{name: "odd length", input: "AsK", wantErr: true},
		{name: "empty string", input: "", expected: []Card{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCards(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestMustParseCardsPanics(t *testing.T) {
	t.Parallel()
	assert.Len(t, MustParseCards("AsKs"), 2)
	assert.Panics(t, func() { MustParseCards("invalid") })
}

func TestCardValue(t *testing.T) {
	t.Parallel()
	tests := []struct {
		card Card
		hard int
		soft int
	}{
		{NewCard(Hearts, Two), 2, 2},
		{NewCard(Clubs, Nine), 9, 9},
		{NewCard(Spades, Ten), 10, 10},
		{NewCard(Diamonds, Jack), 10, 10},
		{NewCard(Hearts, Queen), 10, 10},
		{NewCard(Clubs, King), 10, 10},
		{NewCard(Spades, Ace), 1, 11},
	}

	for _, tt := range tests {
		t.Run(tt.card.String(), func(t *testing.T) {
			assert.Equal(t, tt.hard, tt.card.Value())
			assert.Equal(t, tt.soft, tt.card.SoftValue())
		})
	}
}

func TestCardNames(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Ace of Spades", NewCard(Spades, Ace).Name())
	assert.Equal(t, "Ten of Hearts", NewCard(Hearts, Ten).Name())
	assert.Equal(t, "T♥", NewCard(Hearts, Ten).String())
	assert.Equal(t, "7♣", NewCard(Clubs, Seven).String())
	assert.True(t, NewCard(Diamonds, Two).IsRed())
	assert.False(t, NewCard(Spades, Two).IsRed())
	assert.True(t, NewCard(Clubs, Queen).IsFaceCard())
	assert.False(t, NewCard(Clubs, Ace).IsFaceCard())
}
