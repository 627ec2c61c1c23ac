package game

import (
	"github.com/lox/blackjack-cli/internal/deck"
)

// EventType represents a game event type with type safety
type EventType string

// EventType constants for game domain events
const (
	EventTypeRoundStart EventType = "round_start"
	EventTypeDeal       EventType = "deal"
	EventTypeTurn       EventType = "turn"
	EventTypeRoundEnd   EventType = "round_end"
	EventTypeSessionEnd EventType = "session_end"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// GameEvent represents any event that occurs during a game
type GameEvent interface {
	EventType() EventType
}

// RoundStartEvent is published once the bet for a round is placed
type RoundStartEvent struct {
	Round   int
	Bet     int
	Balance int
}

func (e RoundStartEvent) EventType() EventType { return EventTypeRoundStart }

// DealEvent is published after the opening two cards each. Dealer holds
// the full dealer hand; displays hide Dealer[0] from the player.
type DealEvent struct {
	Player []deck.Card
	Dealer []deck.Card
}

func (e DealEvent) EventType() EventType { return EventTypeDeal }

// UpCard returns the dealer's face up card
func (e DealEvent) UpCard() deck.Card {
	return e.Dealer[len(e.Dealer)-1]
}

// TurnAction is what happened on a step of a turn
type TurnAction int

const (
	ActionHit       TurnAction = iota // player took a card
	ActionHold                        // player stopped
	ActionBlackjack                   // player has 21 on the opening cards
	ActionTwentyOne                   // player reached 21 after hitting
	ActionReveal                      // dealer's hand is shown
	ActionDraw                        // dealer took a card
	ActionStand                       // dealer stopped on 17 or more
	ActionBust
)

// String returns the string representation of a turn action
func (a TurnAction) String() string {
	switch a {
	case ActionHit:
		return "hit"
	case ActionHold:
		return "hold"
	case ActionBlackjack:
		return "blackjack"
	case ActionTwentyOne:
		return "twenty-one"
	case ActionReveal:
		return "reveal"
	case ActionDraw:
		return "draw"
	case ActionStand:
		return "stand"
	case ActionBust:
		return "bust"
	default:
		return "unknown"
	}
}

// TurnEvent is published on every step of the player's or dealer's turn
type TurnEvent struct {
	Participant Participant
	Action      TurnAction
	Cards       []deck.Card
	Total       int
}

func (e TurnEvent) EventType() EventType { return EventTypeTurn }

// RoundEndEvent is published when the bet has been settled
type RoundEndEvent struct {
	Round       int
	Outcome     Outcome
	PlayerTotal int
	DealerTotal int
	Bet         int
	Balance     int
}

func (e RoundEndEvent) EventType() EventType { return EventTypeRoundEnd }

// EndReason is why a session stopped
type EndReason int

const (
	EndDeclined EndReason = iota // player chose not to deal another hand
	EndBroke                     // bank reached zero
	EndQuit                      // input closed or interrupted
)

// String returns the string representation of an end reason
func (r EndReason) String() string {
	switch r {
	case EndDeclined:
		return "declined"
	case EndBroke:
		return "broke"
	case EndQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// SessionEndEvent is published when the session loop exits
type SessionEndEvent struct {
	Rounds  int
	Balance int
	Reason  EndReason
}

func (e SessionEndEvent) EventType() EventType { return EventTypeSessionEnd }

// Display observes game events. Displays never feed back into the game.
type Display interface {
	Show(event GameEvent)
}

// DisplayFunc adapts a function to the Display interface
type DisplayFunc func(event GameEvent)

// Show calls f(event)
func (f DisplayFunc) Show(event GameEvent) {
	f(event)
}

type multiDisplay []Display

func (m multiDisplay) Show(event GameEvent) {
	for _, d := range m {
		d.Show(event)
	}
}

// MultiDisplay fans events out to every display in order
func MultiDisplay(displays ...Display) Display {
	var out multiDisplay
	for _, d := range displays {
		if d != nil {
			out = append(out, d)
		}
	}
	return out
}
