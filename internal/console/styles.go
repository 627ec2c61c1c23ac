package console

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles contains styling for console output
type Styles struct {
	Header    lipgloss.Style
	Prompt    lipgloss.Style
	Info      lipgloss.Style
	Success   lipgloss.Style
	Error     lipgloss.Style
	Warning   lipgloss.Style
	CardRed   lipgloss.Style
	CardBlack lipgloss.Style
	Hidden    lipgloss.Style
	Bank      lipgloss.Style
	Winner    lipgloss.Style
}

// NewRenderer returns a lipgloss renderer for w. With noColor set all
// styling is reduced to plain text.
func NewRenderer(w io.Writer, noColor bool) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

// NewStyles creates the console styles on renderer r
func NewStyles(r *lipgloss.Renderer) *Styles {
	return &Styles{
		Header: r.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true),
		Prompt:    r.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true),
		Info:      r.NewStyle().Foreground(lipgloss.Color("#626262")),
		Success:   r.NewStyle().Foreground(lipgloss.Color("#96CEB4")).Bold(true),
		Error:     r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		Warning:   r.NewStyle().Foreground(lipgloss.Color("#FFEAA7")).Bold(true),
		CardRed:   r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		CardBlack: r.NewStyle().Foreground(lipgloss.Color("#FAFAFA")).Bold(true),
		Hidden:    r.NewStyle().Foreground(lipgloss.Color("#626262")).Italic(true),
		Bank:      r.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true),
		Winner:    r.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true),
	}
}
