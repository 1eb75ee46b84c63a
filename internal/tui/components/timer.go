package components

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/centradial/centradial/internal/tui/themes"
)

// TimerModel is the cooldown overlay shown before a hand-off opens. It gives
// the user a short pause and a clear way out.
type TimerModel struct {
	theme       themes.Theme
	contactName string
	remaining   int
	total       int
}

// NewTimerModel creates a countdown overlay for the given contact.
func NewTimerModel(theme themes.Theme, contactName string, total int) TimerModel {
	return TimerModel{
		theme:       theme,
		contactName: contactName,
		remaining:   total,
		total:       total,
	}
}

// Update handles messages.
func (m TimerModel) Update(msg tea.Msg) (TimerModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc", "c":
		return m, func() tea.Msg { return TimerCancelledMsg{} }
	}
	return m, nil
}

// SetRemaining updates the displayed seconds.
func (m *TimerModel) SetRemaining(remaining int) {
	m.remaining = remaining
}

// View renders the countdown.
func (m TimerModel) View() string {
	filled := 0
	if m.total > 0 {
		filled = (m.total - m.remaining) * 20 / m.total
	}
	bar := m.theme.StatusInfo.Render(strings.Repeat("█", filled)) +
		m.theme.Subtitle.Render(strings.Repeat("░", 20-filled))

	lines := []string{
		m.theme.Title.Render("Take a breath"),
		m.theme.Normal.Render(fmt.Sprintf("Opening WhatsApp to %s in %d...", m.contactName, m.remaining)),
		"",
		bar,
		"",
		m.theme.Subtitle.Render("Esc to cancel"),
	}
	return m.theme.RoundedBox.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}
