package game

import (
	"strings"

	"github.com/lox/blackjack-cli/internal/deck"
)

// Blackjack is the best possible hand total
const Blackjack = 21

// Hand holds the cards dealt to one participant. The total is derived from
// the cards each time it is asked for.
type Hand struct {
	cards []deck.Card
}

// NewHand creates a hand holding the given cards
func NewHand(cards ...deck.Card) *Hand {
	h := &Hand{}
	h.Add(cards...)
	return h
}

// Add appends cards to the hand
func (h *Hand) Add(cards ...deck.Card) {
	h.cards = append(h.cards, cards...)
}

// Cards returns a copy of the cards in the hand in the order dealt
func (h *Hand) Cards() []deck.Card {
	out := make([]deck.Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// Len returns the number of cards held
func (h *Hand) Len() int {
	return len(h.cards)
}

// Clear empties the hand and returns the cards it held
func (h *Hand) Clear() []deck.Card {
	cards := h.cards
	h.cards = nil
	return cards
}

// counts splits the hand into the number of Aces and the sum of the rest
func (h *Hand) counts() (aces, base int) {
	for _, c := range h.cards {
		if c.IsAce() {
			aces++
		} else {
			base += c.Value()
		}
	}
	return aces, base
}

// Total returns the best blackjack total for the hand: all Aces count as
// 1, and one of them is raised to 11 when the result stays at 21 or below.
// Raising a second Ace would add at least 22, so it is never considered.
func (h *Hand) Total() int {
	aces, base := h.counts()
	hard := base + aces

	// Every Ace at 1 already busts (or leaves no room for 10 more).
	if aces >= 22-base {
		return hard
	}
	if aces > 0 && hard+10 <= Blackjack {
		return hard + 10
	}
	return hard
}

// IsSoft reports whether Total counts one Ace as 11
func (h *Hand) IsSoft() bool {
	aces, base := h.counts()
	return aces > 0 && aces < 22-base && base+aces+10 <= Blackjack
}

// IsBust returns true if the total is over 21
func (h *Hand) IsBust() bool {
	return h.Total() > Blackjack
}

// IsBlackjack returns true for a two card 21
func (h *Hand) IsBlackjack() bool {
	return len(h.cards) == 2 && h.Total() == Blackjack
}

// String renders the hand in short notation, e.g. "[A♠ 6♦]"
func (h *Hand) String() string {
	parts := make([]string, len(h.cards))
	for i, c := range h.cards {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
