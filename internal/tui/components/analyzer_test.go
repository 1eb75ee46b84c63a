package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/centradial/centradial/internal/model"
	"github.com/centradial/centradial/internal/tui/themes"
)

func typeIntoAnalyzer(m AnalyzerModel, s string) AnalyzerModel {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestAnalyzerFileChosen(t *testing.T) {
	m := NewAnalyzerModel(themes.Calm)
	m = typeIntoAnalyzer(m, "/tmp/chat.png")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg, ok := cmd().(FileChosenMsg)
	require.True(t, ok)
	assert.Equal(t, "/tmp/chat.png", msg.Path)
}

func TestAnalyzerEmptyPathIgnored(t *testing.T) {
	m := NewAnalyzerModel(themes.Calm)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
}

func TestAnalyzerSentenceSelection(t *testing.T) {
	m := NewAnalyzerModel(themes.Calm)
	m.SetFile("chat.png")
	m.SetSentences([]string{"first", "second", "third"})

	m, _ = m.Update(keyRunes("j"))
	m, _ = m.Update(keyRunes("j"))
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg, ok := cmd().(SentenceChosenMsg)
	require.True(t, ok)
	assert.Equal(t, "third", msg.Sentence)
}

func TestAnalyzerRemoveFile(t *testing.T) {
	m := NewAnalyzerModel(themes.Calm)
	m.SetFile("chat.png")

	_, cmd := m.Update(keyRunes("x"))
	require.NotNil(t, cmd)
	_, ok := cmd().(FileRemovedMsg)
	assert.True(t, ok)
}

func TestAnalyzerKeysIgnoredWhileBusy(t *testing.T) {
	m := NewAnalyzerModel(themes.Calm)
	m.SetFile("chat.png")
	m.SetSentences([]string{"first"})
	_ = m.SetBusy("Checking this sentence...")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
}

func TestAnalyzerHandoffNeedsResult(t *testing.T) {
	m := NewAnalyzerModel(themes.Calm)
	m.SetFile("chat.png")
	m.SetSentences([]string{"first"})

	_, cmd := m.Update(keyRunes("w"))
	assert.Nil(t, cmd)

	m.SetResult(&model.RiskRecord{
		Sentence:            "first",
		PressureLevel:       model.PressureLow,
		ManipulationPattern: "None",
		RiskExplanation:     "Nothing alarming here.",
		ProtectiveAction:    "No action needed.",
		ScamType:            "None",
	})
	_, cmd = m.Update(keyRunes("w"))
	require.NotNil(t, cmd)
	_, ok := cmd().(HandoffRequestedMsg)
	assert.True(t, ok)
}

func TestAnalyzerViewShowsEmptyExtraction(t *testing.T) {
	m := NewAnalyzerModel(themes.Calm)
	m.Resize(80, 40)
	m.SetFile("chat.png")
	m.SetSentences([]string{})

	assert.Contains(t, m.View(), "No messages were found")
}
