// Package tui provides a Bubble Tea line editor that can stand in for
// readline when reading the player's answers.
package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

// promptModel reads a single line of input
type promptModel struct {
	input     textinput.Model
	value     string
	done      bool
	cancelled bool
}

func newPromptModel(prompt, placeholder string) promptModel {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.Placeholder = placeholder
	ti.CharLimit = 32
	ti.Width = 32
	ti.PromptStyle = PromptStyle
	ti.TextStyle = TextStyle
	ti.PlaceholderStyle = PlaceholderStyle
	ti.Focus()

	return promptModel{input: ti}
}

// Init starts the cursor blinking
func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key presses; enter submits and ctrl+c or esc cancels
func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.value = m.input.Value()
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc, tea.KeyCtrlD:
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the prompt, leaving the submitted answer on screen
func (m promptModel) View() string {
	if m.done || m.cancelled {
		return m.input.Prompt + m.value + "\n"
	}
	return m.input.View()
}

// LineReader runs a short Bubble Tea program for every line read
type LineReader struct {
	in          io.Reader
	out         io.Writer
	prompt      string
	placeholder string
	logger      *log.Logger
	opts        []tea.ProgramOption
}

// NewLineReader creates a reader on the given streams
func NewLineReader(in io.Reader, out io.Writer, logger *log.Logger, opts ...tea.ProgramOption) *LineReader {
	return &LineReader{
		in:          in,
		out:         out,
		placeholder: "y / n / amount, esc to quit",
		logger:      logger.WithPrefix("tui"),
		opts:        opts,
	}
}

// SetPrompt sets the prompt for the next line
func (r *LineReader) SetPrompt(prompt string) {
	r.prompt = prompt
}

// Readline shows the prompt and returns the entered line. Cancelling the
// prompt reports io.EOF, the same as closing the input.
func (r *LineReader) Readline() (string, error) {
	opts := append([]tea.ProgramOption{tea.WithInput(r.in), tea.WithOutput(r.out)}, r.opts...)
	p := tea.NewProgram(newPromptModel(r.prompt, r.placeholder), opts...)

	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("prompt: %w", err)
	}

	m, ok := final.(promptModel)
	if !ok {
		return "", fmt.Errorf("prompt: unexpected model %T", final)
	}
	if m.cancelled {
		r.logger.Debug("prompt cancelled")
		return "", io.EOF
	}
	return m.value, nil
}
