package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/centradial/centradial/internal/tui/themes"
)

func typeString(m LoginModel, s string) LoginModel {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestLoginSubmit(t *testing.T) {
	m := NewLoginModel(themes.Calm)
	m = typeString(m, "dolly123")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = typeString(m, "1234")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg, ok := cmd().(LoginSubmittedMsg)
	require.True(t, ok)
	assert.Equal(t, "dolly123", msg.Username)
	assert.Equal(t, "1234", msg.Password)
	assert.True(t, m.busy)
}

func TestLoginRequiresBothFields(t *testing.T) {
	m := NewLoginModel(themes.Calm)
	m = typeString(m, "dolly123")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.NotEmpty(t, m.errLine)
	assert.False(t, m.busy)
}

func TestLoginIgnoresInputWhileBusy(t *testing.T) {
	m := NewLoginModel(themes.Calm)
	m = typeString(m, "dolly123")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = typeString(m, "1234")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.busy)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
}

func TestLoginSetErrorUnlocksForm(t *testing.T) {
	m := NewLoginModel(themes.Calm)
	m = typeString(m, "dolly123")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = typeString(m, "wrong")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	m.SetError("Incorrect username or password.")
	assert.False(t, m.busy)
	assert.Empty(t, m.password.Value())
	assert.Contains(t, m.View(), "Incorrect username or password.")
}
