package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.view {
	case ViewLogin:
		content = m.login.View()
	case ViewHome:
		content = m.renderHome()
	case ViewAnalyzer:
		content = m.analyzer.View()
	case ViewDashboard:
		content = m.dashboard.View()
	}

	if m.modal != ModalNone {
		content = m.renderModal()
	}

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

func (m Model) renderHome() string {
	name := ""
	if m.user != nil {
		name = m.user.Username
	}

	lines := []string{
		m.theme.Title.Render("CentraDial"),
		m.theme.Subtitle.Render("Signed in as " + name),
		"",
		m.theme.Normal.Render("1  Check a message"),
		m.theme.Normal.Render("2  Safety dashboard"),
		"",
		m.theme.Subtitle.Render("Ctrl+O log out · q quit · ? help"),
	}

	if m.showHelp {
		lines = append(lines, "", m.renderHelp())
	}

	return m.theme.RoundedBox.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) renderHelp() string {
	var rows []string
	for _, group := range m.keymap.FullHelp() {
		var cells []string
		for _, binding := range group {
			help := binding.Help()
			cells = append(cells, m.theme.Bold.Render(help.Key)+" "+m.theme.Subtitle.Render(help.Desc))
		}
		rows = append(rows, strings.Join(cells, "   "))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderModal() string {
	switch m.modal {
	case ModalWhatsApp:
		return m.whatsapp.View()
	case ModalTimer:
		return m.timer.View()
	}
	return ""
}
