// Package themes holds the visual styles for the TUI.
package themes

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style for the TUI.
type Theme struct {
	Selected      lipgloss.Style
	StatusPending lipgloss.Style
	StatusInfo    lipgloss.Style
	StatusError   lipgloss.Style
	StatusWarning lipgloss.Style
	StatusSuccess lipgloss.Style
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Bold          lipgloss.Style
	Italic        lipgloss.Style
	Box           lipgloss.Style
	BorderedBox   lipgloss.Style
	RoundedBox    lipgloss.Style
	Highlighted   lipgloss.Style
	Secondary     lipgloss.Color
	Primary       lipgloss.Color
	Muted         lipgloss.Color
	Border        lipgloss.Color
	Foreground    lipgloss.Color
	Background    lipgloss.Color
	Error         lipgloss.Color
	Warning       lipgloss.Color
	Success       lipgloss.Color
}

// Calm is the default theme. The palette leans on soft sage greens so the
// screen stays reassuring while the content may be alarming.
var Calm = Theme{
	// Colors
	Primary:    lipgloss.Color("#87a987"),
	Secondary:  lipgloss.Color("#b5cbb7"),
	Success:    lipgloss.Color("#8fbc8f"),
	Warning:    lipgloss.Color("#d9b26f"),
	Error:      lipgloss.Color("#c98286"),
	Background: lipgloss.Color("#1c211c"),
	Foreground: lipgloss.Color("#e8ede8"),
	Border:     lipgloss.Color("#3e4a3e"),
	Muted:      lipgloss.Color("#778877"),

	// Text styles
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#e8ede8")).
		MarginBottom(1),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a8b8a8")).
		MarginBottom(1),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#e8ede8")),
	Bold: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#e8ede8")),
	Italic: lipgloss.NewStyle().
		Italic(true).
		Foreground(lipgloss.Color("#e8ede8")),
	Selected: lipgloss.NewStyle().
		Background(lipgloss.Color("#87a987")).
		Foreground(lipgloss.Color("#1c211c")).
		Bold(true),
	Highlighted: lipgloss.NewStyle().
		Background(lipgloss.Color("#3e4a3e")).
		Foreground(lipgloss.Color("#e8ede8")),

	// Component styles
	Box: lipgloss.NewStyle().
		Padding(1, 2),
	BorderedBox: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#3e4a3e")).
		Padding(1, 2),
	RoundedBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#3e4a3e")).
		Padding(1, 2),

	// Status styles
	StatusSuccess: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#8fbc8f")).
		Bold(true),
	StatusWarning: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#d9b26f")).
		Bold(true),
	StatusError: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#c98286")).
		Bold(true),
	StatusInfo: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#87a987")).
		Bold(true),
	StatusPending: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#778877")).
		Italic(true),
}

// HighContrast trades the calm palette for maximum legibility.
var HighContrast = Theme{
	Primary:    lipgloss.Color("#ffffff"),
	Secondary:  lipgloss.Color("#d0d0d0"),
	Success:    lipgloss.Color("#00d700"),
	Warning:    lipgloss.Color("#ffd700"),
	Error:      lipgloss.Color("#ff5f5f"),
	Background: lipgloss.Color("#000000"),
	Foreground: lipgloss.Color("#ffffff"),
	Border:     lipgloss.Color("#ffffff"),
	Muted:      lipgloss.Color("#b0b0b0"),

	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#ffffff")).
		MarginBottom(1),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#d0d0d0")).
		MarginBottom(1),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ffffff")),
	Bold: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#ffffff")),
	Italic: lipgloss.NewStyle().
		Italic(true).
		Foreground(lipgloss.Color("#ffffff")),
	Selected: lipgloss.NewStyle().
		Background(lipgloss.Color("#ffffff")).
		Foreground(lipgloss.Color("#000000")).
		Bold(true),
	Highlighted: lipgloss.NewStyle().
		Background(lipgloss.Color("#444444")).
		Foreground(lipgloss.Color("#ffffff")),

	Box: lipgloss.NewStyle().
		Padding(1, 2),
	BorderedBox: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#ffffff")).
		Padding(1, 2),
	RoundedBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#ffffff")).
		Padding(1, 2),

	StatusSuccess: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#00d700")).
		Bold(true),
	StatusWarning: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ffd700")).
		Bold(true),
	StatusError: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ff5f5f")).
		Bold(true),
	StatusInfo: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ffffff")).
		Bold(true),
	StatusPending: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#b0b0b0")).
		Italic(true),
}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	switch name {
	case "high-contrast":
		return HighContrast
	default:
		return Calm
	}
}

// PressureStyle maps a pressure level to its status style.
func (t Theme) PressureStyle(level string) lipgloss.Style {
	switch level {
	case "High":
		return t.StatusError
	case "Medium":
		return t.StatusWarning
	default:
		return t.StatusSuccess
	}
}
