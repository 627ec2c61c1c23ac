package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeText(t *testing.T, m promptModel, text string) promptModel {
	t.Helper()
	for _, r := range text {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		var ok bool
		m, ok = next.(promptModel)
		require.True(t, ok)
	}
	return m
}

func TestPromptSubmitsOnEnter(t *testing.T) {
	t.Parallel()
	m := newPromptModel("bet> ", "")
	m = typeText(t, m, "25")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(promptModel)

	assert.True(t, m.done)
	assert.False(t, m.cancelled)
	assert.Equal(t, "25", m.value)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, "bet> 25\n", m.View())
}

func TestPromptCancels(t *testing.T) {
	t.Parallel()
	for _, key := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC, tea.KeyCtrlD} {
		m := typeText(t, newPromptModel("> ", ""), "y")
		next, cmd := m.Update(tea.KeyMsg{Type: key})
		m = next.(promptModel)

		assert.True(t, m.cancelled)
		assert.False(t, m.done)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestPromptViewWhileEditing(t *testing.T) {
	t.Parallel()
	m := typeText(t, newPromptModel("deal? ", ""), "yes")
	assert.Contains(t, m.View(), "yes")
	assert.False(t, m.done)
}
