package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/centradial/centradial/internal/model"
	"github.com/centradial/centradial/internal/tui/themes"
)

// AnalyzerModel is the message check screen: pick a file, review the
// extracted sentences, inspect one assessment at a time.
type AnalyzerModel struct {
	theme     themes.Theme
	pathInput textinput.Model
	spin      spinner.Model
	fileName  string
	busyLabel string
	errLine   string
	sentences []string
	result    *model.RiskRecord
	cursor    int
	width     int
	height    int
}

// NewAnalyzerModel creates the analyzer with the file path input focused.
func NewAnalyzerModel(theme themes.Theme) AnalyzerModel {
	input := textinput.New()
	input.Placeholder = "path to a screenshot, PDF or text file"
	input.CharLimit = 512
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(theme.Primary)

	return AnalyzerModel{
		theme:     theme,
		pathInput: input,
		spin:      spin,
	}
}

// Update handles messages.
func (m AnalyzerModel) Update(msg tea.Msg) (AnalyzerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.busyLabel == "" {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m AnalyzerModel) handleKey(msg tea.KeyMsg) (AnalyzerModel, tea.Cmd) {
	if m.busyLabel != "" {
		return m, nil
	}

	// No file yet: the path input owns the keyboard.
	if m.fileName == "" {
		switch msg.String() {
		case "enter":
			path := strings.TrimSpace(m.pathInput.Value())
			if path == "" {
				return m, nil
			}
			return m, func() tea.Msg { return FileChosenMsg{Path: path} }
		default:
			var cmd tea.Cmd
			m.pathInput, cmd = m.pathInput.Update(msg)
			return m, cmd
		}
	}

	switch msg.String() {
	case "x":
		return m, func() tea.Msg { return FileRemovedMsg{} }

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.sentences)-1 {
			m.cursor++
		}

	case "enter":
		if len(m.sentences) == 0 {
			return m, nil
		}
		sentence := m.sentences[m.cursor]
		return m, func() tea.Msg { return SentenceChosenMsg{Sentence: sentence} }

	case "w":
		if m.result != nil {
			return m, func() tea.Msg { return HandoffRequestedMsg{} }
		}
	}
	return m, nil
}

// SetBusy shows a spinner with the given label and returns the command that
// keeps it animating.
func (m *AnalyzerModel) SetBusy(label string) tea.Cmd {
	m.busyLabel = label
	m.errLine = ""
	return m.spin.Tick
}

// ClearBusy removes the spinner.
func (m *AnalyzerModel) ClearBusy() {
	m.busyLabel = ""
}

// SetFile records the selected file name.
func (m *AnalyzerModel) SetFile(name string) {
	m.fileName = name
	m.errLine = ""
}

// SetSentences replaces the sentence list and resets the cursor.
func (m *AnalyzerModel) SetSentences(sentences []string) {
	m.sentences = sentences
	m.cursor = 0
}

// SetResult shows one assessed sentence. A nil record clears the panel.
func (m *AnalyzerModel) SetResult(record *model.RiskRecord) {
	m.result = record
}

// SetError shows an error line under the current content.
func (m *AnalyzerModel) SetError(message string) {
	m.errLine = message
}

// Reset returns the analyzer to the empty file prompt.
func (m *AnalyzerModel) Reset() {
	m.fileName = ""
	m.busyLabel = ""
	m.errLine = ""
	m.sentences = nil
	m.result = nil
	m.cursor = 0
	m.pathInput.SetValue("")
	m.pathInput.Focus()
}

// Resize updates the component size.
func (m *AnalyzerModel) Resize(width, height int) {
	m.width = width
	m.height = height
	m.pathInput.Width = min(width-8, 60)
}

// View renders the analyzer.
func (m AnalyzerModel) View() string {
	sections := []string{m.theme.Title.Render("Message Check")}

	if m.fileName == "" {
		sections = append(sections,
			m.theme.Normal.Render("Choose a file with the conversation you want checked:"),
			m.pathInput.View(),
		)
	} else {
		sections = append(sections,
			m.theme.Normal.Render("File: ")+m.theme.Bold.Render(m.fileName)+m.theme.Subtitle.Render("  (x to remove)"),
		)
	}

	if m.busyLabel != "" {
		sections = append(sections, "", m.spin.View()+" "+m.theme.StatusPending.Render(m.busyLabel))
	}

	if m.busyLabel == "" && m.fileName != "" && m.sentences != nil {
		sections = append(sections, "", m.renderSentences())
	}

	if m.result != nil {
		sections = append(sections, "", m.renderResult())
	}

	if m.errLine != "" {
		sections = append(sections, "", m.theme.StatusError.Render(m.errLine))
	}

	return m.theme.Box.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m AnalyzerModel) renderSentences() string {
	if len(m.sentences) == 0 {
		return m.theme.Subtitle.Render("No messages were found in this file.")
	}

	lines := []string{m.theme.Subtitle.Render("Pick a sentence to check (Enter):")}
	for i, s := range m.sentences {
		line := truncate(s, max(m.width-8, 20))
		if i == m.cursor {
			lines = append(lines, m.theme.Selected.Render("> "+line))
		} else {
			lines = append(lines, m.theme.Normal.Render("  "+line))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m AnalyzerModel) renderResult() string {
	r := m.result
	badge := m.theme.PressureStyle(string(r.PressureLevel)).Render(fmt.Sprintf(" %s pressure · urgency %.0f/10 ", r.PressureLevel, r.UrgencyScore))

	rows := []string{
		badge,
		"",
		m.theme.Italic.Render("“" + r.Sentence + "”"),
		"",
		m.theme.Bold.Render("Pattern: ") + m.theme.Normal.Render(r.ManipulationPattern),
		m.theme.Bold.Render("Likely scam type: ") + m.theme.Normal.Render(r.ScamType),
		"",
		m.theme.Normal.Render(r.RiskExplanation),
		"",
		m.theme.StatusInfo.Render("What you can do: ") + m.theme.Normal.Render(r.ProtectiveAction),
		"",
		m.theme.Subtitle.Render("w · ask a trusted contact about this"),
	}
	return m.theme.RoundedBox.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func truncate(s string, width int) string {
	if width <= 3 || len(s) <= width {
		return s
	}
	return s[:width-3] + "..."
}
