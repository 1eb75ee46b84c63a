package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/centradial/centradial/internal/growth"
	"github.com/centradial/centradial/internal/model"
	"github.com/centradial/centradial/internal/tui/themes"
)

// DashboardModel shows the user's safety scores, the weekly awareness chart
// and the trusted contacts hub.
type DashboardModel struct {
	theme      themes.Theme
	nameInput  textinput.Model
	phoneInput textinput.Model
	notice     string
	errLine    string
	scores     model.SafetyScores
	contacts   []model.Contact
	cursor     int
	focus      int
	width      int
	height     int
	adding     bool
}

// NewDashboardModel creates an empty dashboard.
func NewDashboardModel(theme themes.Theme) DashboardModel {
	name := textinput.New()
	name.Placeholder = "name"
	name.CharLimit = 64

	phone := textinput.New()
	phone.Placeholder = "phone number"
	phone.CharLimit = 32

	return DashboardModel{
		theme:      theme,
		nameInput:  name,
		phoneInput: phone,
	}
}

// Update handles messages.
func (m DashboardModel) Update(msg tea.Msg) (DashboardModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.adding {
		return m.handleFormKey(keyMsg)
	}

	switch keyMsg.String() {
	case "a":
		m.adding = true
		m.focus = 0
		m.nameInput.Focus()
		m.phoneInput.Blur()
		m.errLine = ""
		return m, nil

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.contacts)-1 {
			m.cursor++
		}

	case "x":
		if len(m.contacts) == 0 {
			return m, nil
		}
		id := m.contacts[m.cursor].ID
		return m, func() tea.Msg { return RemoveContactMsg{ID: id} }
	}
	return m, nil
}

func (m DashboardModel) handleFormKey(msg tea.KeyMsg) (DashboardModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.adding = false
		m.nameInput.SetValue("")
		m.phoneInput.SetValue("")
		return m, nil

	case "tab", "shift+tab":
		m.focus = 1 - m.focus
		if m.focus == 0 {
			m.nameInput.Focus()
			m.phoneInput.Blur()
		} else {
			m.nameInput.Blur()
			m.phoneInput.Focus()
		}
		return m, nil

	case "enter":
		name := strings.TrimSpace(m.nameInput.Value())
		phone := strings.TrimSpace(m.phoneInput.Value())
		if name == "" || phone == "" {
			m.errLine = "Both a name and a phone number are needed."
			return m, nil
		}
		m.adding = false
		m.errLine = ""
		m.nameInput.SetValue("")
		m.phoneInput.SetValue("")
		return m, func() tea.Msg { return AddContactMsg{Name: name, Phone: phone} }
	}

	var cmd tea.Cmd
	if m.focus == 0 {
		m.nameInput, cmd = m.nameInput.Update(msg)
	} else {
		m.phoneInput, cmd = m.phoneInput.Update(msg)
	}
	return m, cmd
}

// Adding reports whether the add-contact form is open.
func (m DashboardModel) Adding() bool { return m.adding }

// SetScores updates the displayed safety scores.
func (m *DashboardModel) SetScores(scores model.SafetyScores) {
	m.scores = scores
}

// SetContacts replaces the contact list, clamping the cursor.
func (m *DashboardModel) SetContacts(contacts []model.Contact) {
	m.contacts = contacts
	if m.cursor >= len(contacts) {
		m.cursor = max(len(contacts)-1, 0)
	}
}

// SetNotice shows a one-line hint above the contacts hub.
func (m *DashboardModel) SetNotice(notice string) {
	m.notice = notice
}

// SetError shows an error line in the contacts hub.
func (m *DashboardModel) SetError(message string) {
	m.errLine = message
}

// Resize updates the component size.
func (m *DashboardModel) Resize(width, height int) {
	m.width = width
	m.height = height
	m.nameInput.Width = min(width-8, 40)
	m.phoneInput.Width = min(width-8, 40)
}

// View renders the dashboard.
func (m DashboardModel) View() string {
	chartWidth := min(max(m.width-16, 20), 40)

	sections := []string{
		m.theme.Title.Render("Safety Dashboard"),
		growth.RenderScoreBar("Emotional Awareness", m.scores.EmotionalAwareness, chartWidth),
		"",
		growth.RenderScoreBar("Scam Resistance", m.scores.ScamResistance, chartWidth),
		"",
		growth.RenderScoreBar("Decision Stability", m.scores.DecisionStability, chartWidth),
		"",
		m.theme.Subtitle.Render("Awareness growth this week"),
		growth.RenderChart(growth.WeeklySeries(), chartWidth),
		"",
		m.renderContacts(),
	}

	return m.theme.Box.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m DashboardModel) renderContacts() string {
	lines := []string{m.theme.Subtitle.Render("Trusted contacts")}

	if m.notice != "" {
		lines = append(lines, m.theme.StatusWarning.Render(m.notice))
	}

	if len(m.contacts) == 0 && !m.adding {
		lines = append(lines, m.theme.Normal.Render("No trusted contacts yet. Press a to add one."))
	}

	for i, c := range m.contacts {
		line := c.Name + "  " + m.theme.Subtitle.Render(c.Phone)
		if i == m.cursor && !m.adding {
			lines = append(lines, m.theme.Selected.Render("> "+line))
		} else {
			lines = append(lines, m.theme.Normal.Render("  "+line))
		}
	}

	if m.adding {
		lines = append(lines,
			"",
			m.theme.Normal.Render("Name"),
			m.nameInput.View(),
			m.theme.Normal.Render("Phone"),
			m.phoneInput.View(),
			m.theme.Subtitle.Render("Enter to save · Esc to cancel"),
		)
	} else {
		lines = append(lines, "", m.theme.Subtitle.Render("a add · x remove"))
	}

	if m.errLine != "" {
		lines = append(lines, m.theme.StatusError.Render(m.errLine))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
