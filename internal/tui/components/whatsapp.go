package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/centradial/centradial/internal/handoff"
	"github.com/centradial/centradial/internal/model"
	"github.com/centradial/centradial/internal/tui/themes"
)

// WhatsAppModel is the hand-off picker: first choose who to ask, then which
// prewritten message to send.
type WhatsAppModel struct {
	theme          themes.Theme
	contacts       []model.Contact
	templates      []handoff.Template
	contactCursor  int
	templateCursor int
	pickingMessage bool
}

// NewWhatsAppModel creates the picker over the given contacts.
func NewWhatsAppModel(theme themes.Theme, contacts []model.Contact) WhatsAppModel {
	return WhatsAppModel{
		theme:     theme,
		contacts:  contacts,
		templates: handoff.Templates(),
	}
}

// Update handles messages.
func (m WhatsAppModel) Update(msg tea.Msg) (WhatsAppModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		if m.pickingMessage {
			m.pickingMessage = false
			return m, nil
		}
		return m, func() tea.Msg { return HandoffDismissedMsg{} }

	case "up", "k":
		if m.pickingMessage {
			if m.templateCursor > 0 {
				m.templateCursor--
			}
		} else if m.contactCursor > 0 {
			m.contactCursor--
		}

	case "down", "j":
		if m.pickingMessage {
			if m.templateCursor < len(m.templates)-1 {
				m.templateCursor++
			}
		} else if m.contactCursor < len(m.contacts)-1 {
			m.contactCursor++
		}

	case "enter":
		if !m.pickingMessage {
			if len(m.contacts) == 0 {
				return m, func() tea.Msg { return HandoffDismissedMsg{} }
			}
			m.pickingMessage = true
			return m, nil
		}
		contact := m.contacts[m.contactCursor]
		template := m.templates[m.templateCursor]
		return m, func() tea.Msg {
			return HandoffComposedMsg{Contact: contact, Template: template}
		}
	}
	return m, nil
}

// View renders the picker.
func (m WhatsAppModel) View() string {
	var lines []string

	if !m.pickingMessage {
		lines = append(lines, m.theme.Title.Render("Who would you like to ask?"))
		for i, c := range m.contacts {
			line := c.Name + "  " + m.theme.Subtitle.Render(c.Phone)
			if i == m.contactCursor {
				lines = append(lines, m.theme.Selected.Render("> "+line))
			} else {
				lines = append(lines, m.theme.Normal.Render("  "+line))
			}
		}
	} else {
		lines = append(lines, m.theme.Title.Render("What would you like to say?"))
		for i, t := range m.templates {
			if i == m.templateCursor {
				lines = append(lines, m.theme.Selected.Render("> "+t.Label))
			} else {
				lines = append(lines, m.theme.Normal.Render("  "+t.Label))
			}
		}
		lines = append(lines, "", m.theme.Italic.Render(m.templates[m.templateCursor].Message))
	}

	lines = append(lines, "", m.theme.Subtitle.Render("Enter to choose · Esc to go back"))
	return m.theme.RoundedBox.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
