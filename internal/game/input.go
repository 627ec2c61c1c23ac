package game

import (
	"errors"

	"github.com/lox/blackjack-cli/internal/deck"
)

// ErrQuit is returned by an Input when the player has gone away (closed
// input, interrupt). The session ends without touching the bank.
var ErrQuit = errors.New("player quit")

// Input supplies the player's answers. Implementations validate and
// re-prompt until they have a well formed answer; an error means no answer
// can be obtained at all.
type Input interface {
	// DealHand asks whether to play another round
	DealHand() (bool, error)

	// Bet asks for a bet between 1 and balance
	Bet(balance int) (int, error)

	// HitOrHold asks whether to take another card. upCard is the dealer's
	// visible card.
	HitOrHold(hand *Hand, upCard deck.Card) (Decision, error)
}
