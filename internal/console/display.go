package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/lox/blackjack-cli/internal/deck"
	"github.com/lox/blackjack-cli/internal/game"
)

// Display prints game events as they happen
type Display struct {
	out       io.Writer
	styles    *Styles
	longNames bool
}

// DisplayOption configures a Display
type DisplayOption func(*Display)

// WithShortCards renders cards as "A♠" instead of "Ace of Spades"
func WithShortCards() DisplayOption {
	return func(d *Display) {
		d.longNames = false
	}
}

// NewDisplay creates a display writing to out
func NewDisplay(out io.Writer, styles *Styles, opts ...DisplayOption) *Display {
	d := &Display{out: out, styles: styles, longNames: true}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Show renders a single event
func (d *Display) Show(event game.GameEvent) {
	switch e := event.(type) {
	case game.RoundStartEvent:
		d.println()
		d.println(d.styles.Header.Render(fmt.Sprintf("Hand #%d", e.Round)) + " " +
			d.styles.Info.Render(fmt.Sprintf("bet $%d of $%d", e.Bet, e.Balance)))
	case game.DealEvent:
		d.printf("Player's cards are: %s\n", d.formatCards(e.Player))
		d.printf("Dealer's cards are: %s, %s\n",
			d.styles.Hidden.Render("HIDDEN CARD"), d.formatCards(e.Dealer[1:]))
	case game.TurnEvent:
		d.showTurn(e)
	case game.RoundEndEvent:
		d.showRoundEnd(e)
	case game.SessionEndEvent:
		d.println()
		if e.Reason == game.EndBroke {
			d.println(d.styles.Warning.Render("You are out of money."))
		}
		d.println("Thank you for playing. See you again soon!")
	}
}

func (d *Display) showTurn(e game.TurnEvent) {
	if e.Participant == game.Human {
		switch e.Action {
		case game.ActionHit:
			d.printf("Player's cards are: %s\n", d.formatCards(e.Cards))
		case game.ActionHold:
			d.println(d.styles.Info.Render(fmt.Sprintf("You hold. Sum: %d", e.Total)))
		case game.ActionBlackjack:
			d.println(d.styles.Success.Render(fmt.Sprintf("You got a Blackjack!!! Sum: %d", e.Total)))
		case game.ActionTwentyOne:
			d.println(d.styles.Success.Render(fmt.Sprintf("Nice! Sum: %d", e.Total)))
		case game.ActionBust:
			d.println(d.styles.Error.Render(fmt.Sprintf("You got busted! Sum: %d", e.Total)))
			d.println(d.styles.Winner.Render("Dealer Wins!"))
		}
		return
	}

	switch e.Action {
	case game.ActionReveal:
		d.printf("Dealer's cards are: %s\n", d.formatCards(e.Cards))
	case game.ActionDraw:
		d.println(d.styles.Info.Render("Dealer draws"))
	case game.ActionStand:
		d.println(d.styles.Info.Render("Dealer holds"))
	case game.ActionBust:
		d.println(d.styles.Success.Render(fmt.Sprintf("Dealer got busted! Sum: %d", e.Total)))
		d.println(d.styles.Winner.Render("Player Wins!"))
	}
}

func (d *Display) showRoundEnd(e game.RoundEndEvent) {
	switch e.Outcome {
	case game.PlayerWins:
		d.printf("Player's sum: %d\nDealer's sum: %d\n", e.PlayerTotal, e.DealerTotal)
		d.println(d.styles.Winner.Render("Player wins!"))
	case game.DealerWins:
		d.printf("Player's sum: %d\nDealer's sum: %d\n", e.PlayerTotal, e.DealerTotal)
		d.println(d.styles.Winner.Render("Dealer wins!"))
	}
	d.println("Bank: " + d.styles.Bank.Render(fmt.Sprintf("$%d", e.Balance)))
}

// formatCards renders cards with red and black suits
func (d *Display) formatCards(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, card := range cards {
		text := card.String()
		if d.longNames {
			text = card.Name()
		}
		if card.IsRed() {
			parts[i] = d.styles.CardRed.Render(text)
		} else {
			parts[i] = d.styles.CardBlack.Render(text)
		}
	}
	return strings.Join(parts, ", ")
}

func (d *Display) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(d.out, format, args...)
}

func (d *Display) println(args ...any) {
	_, _ = fmt.Fprintln(d.out, args...)
}
