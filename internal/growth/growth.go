// Package growth renders the awareness-growth display: a fixed weekly series
// of safety scores and the per-category score meters. The numbers are
// illustrative placeholders until real scoring history exists, so this
// package does formatting only.
package growth

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/centradial/centradial/internal/model"
)

// WeeklySeries returns the week of sample scores shown on the dashboard.
func WeeklySeries() []model.WeeklyPoint {
	return []model.WeeklyPoint{
		{Day: "Mon", Score: 65},
		{Day: "Tue", Score: 68},
		{Day: "Wed", Score: 72},
		{Day: "Thu", Score: 70},
		{Day: "Fri", Score: 85},
		{Day: "Sat", Score: 82},
		{Day: "Sun", Score: 88},
	}
}

var (
	barStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("108"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("151")).Bold(true)
)

// RenderChart draws the weekly series as horizontal bars, one row per day,
// scaled so the highest score fills the given width.
func RenderChart(series []model.WeeklyPoint, width int) string {
	if len(series) == 0 {
		return ""
	}
	if width < 10 {
		width = 10
	}

	max := series[0].Score
	for _, p := range series {
		if p.Score > max {
			max = p.Score
		}
	}
	if max == 0 {
		max = 1
	}

	var b strings.Builder
	for i, p := range series {
		if i > 0 {
			b.WriteString("\n")
		}
		filled := p.Score * width / max
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-3s ", p.Day)))
		b.WriteString(barStyle.Render(strings.Repeat("█", filled)))
		b.WriteString(valueStyle.Render(fmt.Sprintf(" %d", p.Score)))
	}
	return b.String()
}

// RenderScoreBar draws a single labelled meter, pct clamped to 0..100.
func RenderScoreBar(label string, pct, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	if width < 10 {
		width = 10
	}

	filled := pct * width / 100
	bar := barStyle.Render(strings.Repeat("█", filled)) +
		labelStyle.Render(strings.Repeat("░", width-filled))
	return fmt.Sprintf("%s\n%s %s", labelStyle.Render(label), bar, valueStyle.Render(fmt.Sprintf("%d%%", pct)))
}
