package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/centradial/centradial/internal/tui/themes"
)

// LoginModel is the credential entry form.
type LoginModel struct {
	theme    themes.Theme
	username textinput.Model
	password textinput.Model
	errLine  string
	width    int
	height   int
	focus    int
	busy     bool
}

// NewLoginModel creates a login form with the username field focused.
func NewLoginModel(theme themes.Theme) LoginModel {
	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 64
	username.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 64
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return LoginModel{
		theme:    theme,
		username: username,
		password: password,
	}
}

// Update handles messages.
func (m LoginModel) Update(msg tea.Msg) (LoginModel, tea.Cmd) {
	if m.busy {
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "tab", "shift+tab", "up", "down":
		m.focus = 1 - m.focus
		if m.focus == 0 {
			m.username.Focus()
			m.password.Blur()
		} else {
			m.username.Blur()
			m.password.Focus()
		}
		return m, nil

	case "enter":
		username := strings.TrimSpace(m.username.Value())
		password := m.password.Value()
		if username == "" || password == "" {
			m.errLine = "Please fill in both fields."
			return m, nil
		}
		m.busy = true
		m.errLine = ""
		return m, func() tea.Msg {
			return LoginSubmittedMsg{Username: username, Password: password}
		}
	}

	var cmd tea.Cmd
	if m.focus == 0 {
		m.username, cmd = m.username.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

// SetError displays an error line and unlocks the form for another attempt.
func (m *LoginModel) SetError(message string) {
	m.errLine = message
	m.busy = false
	m.password.SetValue("")
}

// Reset clears the form.
func (m *LoginModel) Reset() {
	m.username.SetValue("")
	m.password.SetValue("")
	m.errLine = ""
	m.busy = false
	m.focus = 0
	m.username.Focus()
	m.password.Blur()
}

// Resize updates the component size.
func (m *LoginModel) Resize(width, height int) {
	m.width = width
	m.height = height
	m.username.Width = min(width-8, 40)
	m.password.Width = min(width-8, 40)
}

// View renders the login form.
func (m LoginModel) View() string {
	title := m.theme.Title.Render("CentraDial")
	subtitle := m.theme.Subtitle.Render("A calm second opinion on worrying messages")

	form := lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Normal.Render("Username"),
		m.username.View(),
		"",
		m.theme.Normal.Render("Password"),
		m.password.View(),
	)

	lines := []string{title, subtitle, form}
	if m.busy {
		lines = append(lines, "", m.theme.StatusPending.Render("Signing in..."))
	}
	if m.errLine != "" {
		lines = append(lines, "", m.theme.StatusError.Render(m.errLine))
	}
	lines = append(lines, "", m.theme.Subtitle.Render("Enter to sign in · Tab to switch fields"))

	return m.theme.RoundedBox.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
