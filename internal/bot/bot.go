// Package bot provides automatic players that answer the game's questions
// without a terminal, for simulations and tests.
package bot

import (
	"github.com/charmbracelet/log"
	"github.com/lox/blackjack-cli/internal/deck"
	"github.com/lox/blackjack-cli/internal/game"
)

// Bot is a game.Input that plays a fixed number of rounds with a flat bet
type Bot struct {
	strategy Strategy
	bet      int
	rounds   int
	played   int
	logger   *log.Logger
}

// New creates a bot that bets bet each round for at most rounds rounds.
// rounds <= 0 plays until the bank is empty.
func New(strategy Strategy, bet, rounds int, logger *log.Logger) *Bot {
	return &Bot{
		strategy: strategy,
		bet:      bet,
		rounds:   rounds,
		logger:   logger.WithPrefix("bot"),
	}
}

// DealHand keeps playing until the round limit is reached
func (b *Bot) DealHand() (bool, error) {
	if b.rounds > 0 && b.played >= b.rounds {
		return false, nil
	}
	b.played++
	return true, nil
}

// Bet returns the flat bet, or the whole balance when it is smaller
func (b *Bot) Bet(balance int) (int, error) {
	return min(b.bet, balance), nil
}

// HitOrHold defers to the strategy
func (b *Bot) HitOrHold(hand *game.Hand, upCard deck.Card) (game.Decision, error) {
	d := b.strategy.Decide(hand, upCard)
	b.logger.Debug("decision", "strategy", b.strategy.Name(), "hand", hand.String(),
		"total", hand.Total(), "up", upCard.String(), "decision", d)
	return d, nil
}

// Played returns the number of rounds the bot asked to be dealt
func (b *Bot) Played() int {
	return b.played
}
