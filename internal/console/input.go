package console

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/chzyer/readline"
	"github.com/lox/blackjack-cli/internal/config"
	"github.com/lox/blackjack-cli/internal/deck"
	"github.com/lox/blackjack-cli/internal/game"
)

const yesNoHint = "Please answer with a Y for yes or an N for no."

// LineReader reads one line of input at a time. *readline.Instance
// satisfies it.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

// NewReadline creates a readline instance on the given streams
func NewReadline(in io.ReadCloser, out io.Writer) (*readline.Instance, error) {
	return readline.NewEx(&readline.Config{
		Stdin:           in,
		Stdout:          out,
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
}

// Input asks the player for decisions on a line based terminal. Answers
// are validated here and the question repeated until one is usable.
type Input struct {
	rl     LineReader
	out    io.Writer
	styles *Styles
	limits config.BetLimits
	logger *log.Logger
}

// NewInput creates a line based input. Messages for rejected answers are
// written to out.
func NewInput(rl LineReader, out io.Writer, styles *Styles, limits config.BetLimits, logger *log.Logger) *Input {
	return &Input{
		rl:     rl,
		out:    out,
		styles: styles,
		limits: limits,
		logger: logger.WithPrefix("input"),
	}
}

// readLine prompts and returns the trimmed answer. EOF, ^C and "quit"
// all end the session.
func (in *Input) readLine(prompt string) (string, error) {
	in.rl.SetPrompt(in.styles.Prompt.Render(prompt))
	line, err := in.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
		return "", game.ErrQuit
	}
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}

	line = strings.TrimSpace(line)
	switch strings.ToLower(line) {
	case "quit", "exit", "q":
		return "", game.ErrQuit
	}
	return line, nil
}

func (in *Input) reject(msg string) {
	in.logger.Debug("rejected answer", "reason", msg)
	_, _ = fmt.Fprintln(in.out, in.styles.Error.Render(msg))
}

// askYesNo asks a Y/N question until it gets an answer
func (in *Input) askYesNo(question string) (bool, error) {
	for {
		line, err := in.readLine(question + " (Y/N) ")
		if err != nil {
			return false, err
		}
		if answer, ok := ParseYesNo(line); ok {
			return answer, nil
		}
		in.reject(yesNoHint)
	}
}

// DealHand asks whether to deal another hand
func (in *Input) DealHand() (bool, error) {
	return in.askYesNo("Should I deal you a hand?")
}

// Bet asks for a bet until a valid amount is entered
func (in *Input) Bet(balance int) (int, error) {
	prompt := fmt.Sprintf("Budget: %d. Please make a bet: ", balance)
	if ceiling := in.limits.Ceiling(balance); ceiling < balance {
		prompt = fmt.Sprintf("Budget: %d (table limit %d). Please make a bet: ", balance, ceiling)
	}
	for {
		line, err := in.readLine(prompt)
		if err != nil {
			return 0, err
		}
		prompt = "Please make a valid bet: "

		amount, err := strconv.Atoi(line)
		if err != nil {
			in.reject("Bet should be an integer.")
			continue
		}
		if err := in.limits.Check(amount, balance); err != nil {
			in.reject(err.Error())
			continue
		}
		return amount, nil
	}
}

// HitOrHold asks whether the player wants another card
func (in *Input) HitOrHold(hand *game.Hand, upCard deck.Card) (game.Decision, error) {
	hit, err := in.askYesNo("Would you like another card?")
	if err != nil {
		return game.Hold, err
	}
	if hit {
		return game.Hit, nil
	}
	return game.Hold, nil
}

// ParseYesNo accepts y, yes, n and no in any case
func ParseYesNo(s string) (answer bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes":
		return true, true
	case "n", "no":
		return false, true
	default:
		return false, false
	}
}
