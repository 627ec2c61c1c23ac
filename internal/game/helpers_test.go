package game

import (
	"github.com/lox/blackjack-cli/internal/deck"
	"github.com/lox/blackjack-cli/internal/randutil"
)

// scriptedInput replays canned answers and reports ErrQuit once a script
// runs out.
type scriptedInput struct {
	deals     []bool
	bets      []int
	decisions []Decision

	hitOrHoldCalls int
	lastUpCard     deck.Card
}

func (s *scriptedInput) DealHand() (bool, error) {
	if len(s.deals) == 0 {
		return false, ErrQuit
	}
	d := s.deals[0]
	s.deals = s.deals[1:]
	return d, nil
}

func (s *scriptedInput) Bet(balance int) (int, error) {
	if len(s.bets) == 0 {
		return 0, ErrQuit
	}
	b := s.bets[0]
	s.bets = s.bets[1:]
	return b, nil
}

func (s *scriptedInput) HitOrHold(hand *Hand, upCard deck.Card) (Decision, error) {
	s.hitOrHoldCalls++
	s.lastUpCard = upCard
	if len(s.decisions) == 0 {
		return Hold, ErrQuit
	}
	d := s.decisions[0]
	s.decisions = s.decisions[1:]
	return d, nil
}

// recorder collects every event shown
type recorder struct {
	events []GameEvent
}

func (r *recorder) Show(event GameEvent) {
	r.events = append(r.events, event)
}

func (r *recorder) turnActions(p Participant) []TurnAction {
	var out []TurnAction
	for _, e := range r.events {
		if te, ok := e.(TurnEvent); ok && te.Participant == p {
			out = append(out, te.Action)
		}
	}
	return out
}

func (r *recorder) last() GameEvent {
	if len(r.events) == 0 {
		return nil
	}
	return r.events[len(r.events)-1]
}

// newTestTable builds a table on a seeded shoe with cards stacked so the
// first ones in stacked are dealt first.
func newTestTable(input Input, balance int, stacked string) (*Table, *recorder) {
	shoe := deck.NewShoe(randutil.New(42))
	shoe.Shuffle()
	if stacked != "" {
		shoe.Stack(deck.MustParseCards(stacked)...)
	}
	rec := &recorder{}
	return NewTable(shoe, NewBank(balance), input, WithDisplay(rec)), rec
}
