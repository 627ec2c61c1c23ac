package game

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjack-cli/internal/deck"
)

// DealerStandsOn is the lowest total the dealer stands on
const DealerStandsOn = 17

// TableOption configures a Table during creation.
type TableOption func(*Table)

// WithDisplay sets the display that receives game events
func WithDisplay(display Display) TableOption {
	return func(t *Table) {
		t.display = display
	}
}

// WithLogger sets the logger for the table
func WithLogger(logger *log.Logger) TableOption {
	return func(t *Table) {
		t.logger = logger.WithPrefix("table")
	}
}

// Table runs blackjack rounds between the player and the dealer. It owns
// the shoe, both hands and the player's bank for the whole session.
type Table struct {
	Shoe   *deck.Shoe
	Player *Hand
	Dealer *Hand
	Bank   *Bank

	input   Input
	display Display
	logger  *log.Logger
	round   int
}

// NewTable creates a table. The shoe should already be shuffled.
func NewTable(shoe *deck.Shoe, bank *Bank, input Input, opts ...TableOption) *Table {
	if shoe == nil {
		panic("shoe is required")
	}
	if bank == nil {
		panic("bank is required")
	}
	if input == nil {
		panic("input is required")
	}

	t := &Table{
		Shoe:    shoe,
		Player:  NewHand(),
		Dealer:  NewHand(),
		Bank:    bank,
		input:   input,
		display: MultiDisplay(),
		logger:  log.NewWithOptions(io.Discard, log.Options{}),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Round returns the number of rounds started so far
func (t *Table) Round() int {
	return t.round
}

func (t *Table) emit(event GameEvent) {
	t.logger.Debug("event", "type", event.EventType(), "round", t.round)
	t.display.Show(event)
}

// collectCards returns both hands to the shoe's discard pile
func (t *Table) collectCards() {
	t.Shoe.Discard(t.Player.Clear()...)
	t.Shoe.Discard(t.Dealer.Clear()...)
}

// deal gives the player two cards and then the dealer two cards
func (t *Table) deal() {
	t.Player.Add(t.Shoe.DealOne(), t.Shoe.DealOne())
	t.Dealer.Add(t.Shoe.DealOne(), t.Shoe.DealOne())
	t.emit(DealEvent{Player: t.Player.Cards(), Dealer: t.Dealer.Cards()})
}

// upCard is the dealer's last card; the first is dealt face down. It
// reports false when the dealer holds no cards.
func (t *Table) upCard() (deck.Card, bool) {
	if t.Dealer.Len() == 0 {
		return deck.Card{}, false
	}
	cards := t.Dealer.Cards()
	return cards[len(cards)-1], true
}

// PlayHumanTurn runs the player's turn until they bust, reach 21 or hold.
// A bust settles the bet against the player immediately. If the dealer has
// not been dealt, the input is given the zero Card as the up card.
func (t *Table) PlayHumanTurn() (TurnResult, error) {
	first := true
	for {
		total := t.Player.Total()

		switch {
		case total > Blackjack:
			t.Bank.Lose()
			t.emit(TurnEvent{Participant: Human, Action: ActionBust, Cards: t.Player.Cards(), Total: total})
			return TurnResult{State: Bust, Total: total}, nil
		case total == Blackjack:
			action := ActionTwentyOne
			if first {
				action = ActionBlackjack
			}
			t.emit(TurnEvent{Participant: Human, Action: action, Cards: t.Player.Cards(), Total: total})
			return TurnResult{State: Standing, Total: total, Natural: first}, nil
		}
		first = false

		up, _ := t.upCard()
		decision, err := t.input.HitOrHold(t.Player, up)
		if err != nil {
			return TurnResult{State: AwaitingDecision, Total: total}, fmt.Errorf("hit or hold: %w", err)
		}
		t.logger.Debug("player decision", "decision", decision, "total", total)

		if decision == Hold {
			t.emit(TurnEvent{Participant: Human, Action: ActionHold, Cards: t.Player.Cards(), Total: total})
			return TurnResult{State: Standing, Total: total}, nil
		}

		t.Player.Add(t.Shoe.DealOne())
		t.emit(TurnEvent{Participant: Human, Action: ActionHit, Cards: t.Player.Cards(), Total: t.Player.Total()})
	}
}

// PlayDealerTurn draws for the dealer below 17 and stands on 17 to 21. A
// dealer bust pays the player's bet immediately.
func (t *Table) PlayDealerTurn() TurnResult {
	for {
		total := t.Dealer.Total()
		t.emit(TurnEvent{Participant: Dealer, Action: ActionReveal, Cards: t.Dealer.Cards(), Total: total})

		switch {
		case total > Blackjack:
			t.Bank.Win()
			t.emit(TurnEvent{Participant: Dealer, Action: ActionBust, Cards: t.Dealer.Cards(), Total: total})
			return TurnResult{State: Bust, Total: total}
		case total < DealerStandsOn:
			t.emit(TurnEvent{Participant: Dealer, Action: ActionDraw, Cards: t.Dealer.Cards(), Total: total})
			t.Dealer.Add(t.Shoe.DealOne())
		default:
			t.emit(TurnEvent{Participant: Dealer, Action: ActionStand, Cards: t.Dealer.Cards(), Total: total})
			return TurnResult{State: Standing, Total: total}
		}
	}
}

// RoundResult summarises a finished round
type RoundResult struct {
	Round       int
	Outcome     Outcome
	Player      TurnResult
	Dealer      TurnResult
	Bet         int
	Balance     int
	DealerTaken bool // the dealer played a turn
}

// PlayRound plays a single round: clear the table, take the bet, deal, run
// both turns and settle. The bet is validated against the bank even though
// inputs are expected to have validated it already.
func (t *Table) PlayRound() (RoundResult, error) {
	t.collectCards()

	bet, err := t.input.Bet(t.Bank.Balance())
	if err != nil {
		return RoundResult{}, fmt.Errorf("bet: %w", err)
	}
	if err := t.Bank.PlaceBet(bet); err != nil {
		return RoundResult{}, err
	}

	t.round++
	t.emit(RoundStartEvent{Round: t.round, Bet: bet, Balance: t.Bank.Balance()})
	t.deal()

	result := RoundResult{Round: t.round, Bet: bet}

	result.Player, err = t.PlayHumanTurn()
	if err != nil {
		return result, err
	}

	if result.Player.IsBust() {
		result.Outcome = PlayerBust
	} else {
		result.DealerTaken = true
		result.Dealer = t.PlayDealerTurn()
		if result.Dealer.IsBust() {
			result.Outcome = DealerBust
		} else {
			result.Outcome = CheckWinner(t.Bank, result.Player.Total, result.Dealer.Total)
		}
	}

	result.Balance = t.Bank.Balance()
	t.logger.Info("round complete", "round", t.round, "outcome", result.Outcome,
		"player", result.Player.Total, "dealer", result.Dealer.Total, "balance", result.Balance)
	t.emit(RoundEndEvent{
		Round:       t.round,
		Outcome:     result.Outcome,
		PlayerTotal: result.Player.Total,
		DealerTotal: result.Dealer.Total,
		Bet:         bet,
		Balance:     result.Balance,
	})

	return result, nil
}

// Run plays rounds while the player has money and wants another hand.
// ErrQuit from the input ends the session normally; other input errors are
// returned. ctx is checked between rounds.
func (t *Table) Run(ctx context.Context) (SessionEndEvent, error) {
	end := func(reason EndReason) SessionEndEvent {
		t.collectCards()
		event := SessionEndEvent{Rounds: t.round, Balance: t.Bank.Balance(), Reason: reason}
		t.logger.Info("session over", "reason", reason, "rounds", t.round, "balance", event.Balance)
		t.emit(event)
		return event
	}

	for {
		t.collectCards()

		if err := ctx.Err(); err != nil {
			return end(EndQuit), nil
		}
		if t.Bank.IsBroke() {
			return end(EndBroke), nil
		}

		deal, err := t.input.DealHand()
		if errors.Is(err, ErrQuit) {
			return end(EndQuit), nil
		}
		if err != nil {
			return end(EndQuit), fmt.Errorf("deal hand: %w", err)
		}
		if !deal {
			return end(EndDeclined), nil
		}

		if _, err := t.PlayRound(); err != nil {
			if errors.Is(err, ErrQuit) {
				return end(EndQuit), nil
			}
			return end(EndQuit), err
		}
	}
}
