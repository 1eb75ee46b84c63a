package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/centradial/centradial/internal/model"
	"github.com/centradial/centradial/internal/tui/themes"
)

func whatsappContacts() []model.Contact {
	return []model.Contact{
		{ID: "c1", Name: "Maria", Phone: "111"},
		{ID: "c2", Name: "Sam", Phone: "222"},
	}
}

func TestWhatsAppPickContactThenTemplate(t *testing.T) {
	m := NewWhatsAppModel(themes.Calm, whatsappContacts())

	// Pick the second contact.
	m, _ = m.Update(keyRunes("j"))
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	require.True(t, m.pickingMessage)

	// Pick the second template.
	m, _ = m.Update(keyRunes("j"))
	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg, ok := cmd().(HandoffComposedMsg)
	require.True(t, ok)
	assert.Equal(t, "Sam", msg.Contact.Name)
	assert.Equal(t, "scam", msg.Template.ID)
}

func TestWhatsAppEscapeStepsBack(t *testing.T) {
	m := NewWhatsAppModel(themes.Calm, whatsappContacts())
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.pickingMessage)

	// Esc from the template list returns to the contact list.
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, cmd)
	assert.False(t, m.pickingMessage)

	// Esc from the contact list dismisses the picker.
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	_, ok := cmd().(HandoffDismissedMsg)
	assert.True(t, ok)
}

func TestTimerCancel(t *testing.T) {
	m := NewTimerModel(themes.Calm, "Maria", 5)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	_, ok := cmd().(TimerCancelledMsg)
	assert.True(t, ok)
}

func TestTimerView(t *testing.T) {
	m := NewTimerModel(themes.Calm, "Maria", 5)
	m.SetRemaining(3)

	out := m.View()
	assert.Contains(t, out, "Maria")
	assert.Contains(t, out, "3")
}
