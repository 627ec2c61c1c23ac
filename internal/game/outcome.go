package game

// Participant identifies whose hand an event is about
type Participant int

const (
	Human Participant = iota
	Dealer
)

// String returns the string representation of a participant
func (p Participant) String() string {
	switch p {
	case Human:
		return "Player"
	case Dealer:
		return "Dealer"
	default:
		return "Unknown"
	}
}

// Decision is the player's answer to "another card?"
type Decision int

const (
	Hit Decision = iota
	Hold
)

// String returns the string representation of a decision
func (d Decision) String() string {
	switch d {
	case Hit:
		return "HIT"
	case Hold:
		return "HOLD"
	default:
		return "UNKNOWN"
	}
}

// TurnState is the state of a participant's turn
type TurnState int

const (
	AwaitingDecision TurnState = iota // player is being asked to hit or hold
	Drawing                           // dealer is below the stand threshold
	Standing
	Bust
)

// String returns the string representation of a turn state
func (s TurnState) String() string {
	switch s {
	case AwaitingDecision:
		return "awaiting decision"
	case Drawing:
		return "drawing"
	case Standing:
		return "standing"
	case Bust:
		return "bust"
	default:
		return "unknown"
	}
}

// TurnResult is where a turn ended up
type TurnResult struct {
	State   TurnState
	Total   int
	Natural bool // 21 on the first two cards
}

// IsBust reports whether the turn ended in a bust
func (r TurnResult) IsBust() bool {
	return r.State == Bust
}

// Outcome is how a round was decided
type Outcome int

const (
	PlayerBust Outcome = iota
	DealerBust
	PlayerWins
	DealerWins
)

// String returns the string representation of an outcome
func (o Outcome) String() string {
	switch o {
	case PlayerBust:
		return "player bust"
	case DealerBust:
		return "dealer bust"
	case PlayerWins:
		return "player wins"
	case DealerWins:
		return "dealer wins"
	default:
		return "unknown"
	}
}

// PlayerWon reports whether the bet was paid to the player
func (o Outcome) PlayerWon() bool {
	return o == DealerBust || o == PlayerWins
}

// CheckWinner settles a round that reached a showdown. The player wins
// only with a strictly higher total; ties go to the dealer.
func CheckWinner(bank *Bank, playerTotal, dealerTotal int) Outcome {
	if playerTotal > dealerTotal {
		bank.Win()
		return PlayerWins
	}
	bank.Lose()
	return DealerWins
}
