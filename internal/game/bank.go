package game

import (
	"errors"
	"fmt"
)

// ErrInvalidBet is returned when a bet is negative or larger than the balance
var ErrInvalidBet = errors.New("invalid bet")

// DefaultBank is the balance a new player starts with
const DefaultBank = 200

// Bank tracks the player's balance and the bet for the current round
type Bank struct {
	balance int
	bet     int
}

// NewBank creates a bank with the given starting balance
func NewBank(balance int) *Bank {
	if balance < 0 {
		panic("bank balance cannot be negative")
	}
	return &Bank{balance: balance}
}

// Balance returns the current balance
func (b *Bank) Balance() int {
	return b.balance
}

// Bet returns the bet for the current round
func (b *Bank) Bet() int {
	return b.bet
}

// PlaceBet sets the bet for the round; 0 <= amount <= balance
func (b *Bank) PlaceBet(amount int) error {
	if amount < 0 {
		return fmt.Errorf("%w: %d is negative", ErrInvalidBet, amount)
	}
	if amount > b.balance {
		return fmt.Errorf("%w: %d exceeds balance %d", ErrInvalidBet, amount, b.balance)
	}
	b.bet = amount
	return nil
}

// Win credits the bet to the balance
func (b *Bank) Win() {
	b.balance += b.bet
}

// Lose debits the bet from the balance
func (b *Bank) Lose() {
	b.balance -= b.bet
}

// IsBroke returns true once nothing is left to bet
func (b *Bank) IsBroke() bool {
	return b.balance <= 0
}
