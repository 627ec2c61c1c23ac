// Package game implements the blackjack rules and round flow.
//
// A Table owns the shoe, the two hands and the player's bank. Each round it
// collects a bet, deals two cards to each side, runs the player's turn and
// then the dealer's turn, and settles the bet. The player's decisions come
// from an Input provider and every state change is reported to a Display,
// which keeps the rules free of terminal I/O.
//
// Hand totals count every Ace as 1 and promote at most one Ace to 11 when
// that keeps the total at 21 or below. The dealer draws below 17 and stands
// on 17 through 21. Equal totals are a dealer win.
package game
