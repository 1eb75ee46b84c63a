package tui

import (
	"context"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// submitLogin authenticates and loads the user record.
func (m Model) submitLogin(username, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		user, err := m.auth.Login(ctx, username, password)
		return loginResultMsg{user: user, err: err}
	}
}

// logout clears the stored session.
func (m Model) logout() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		return logoutDoneMsg{err: m.auth.Logout(ctx)}
	}
}

// loadFile reads the chosen file from disk and sniffs its MIME type.
func loadFile(path string) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return fileLoadedMsg{err: err}
		}
		return fileLoadedMsg{
			name:     filepath.Base(path),
			mimeType: detectMimeType(path),
			data:     data,
		}
	}
}

func detectMimeType(path string) string {
	mimeType := mime.TypeByExtension(filepath.Ext(path))
	if mimeType == "" {
		return "text/plain"
	}
	// Strip any charset parameter; the providers expect a bare type.
	if base, _, found := strings.Cut(mimeType, ";"); found {
		return strings.TrimSpace(base)
	}
	return mimeType
}

// extract asks the model for the sentences in the selected file.
func (m Model) extract(token uint64, data []byte, mimeType string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		sentences, err := m.client.ExtractMessages(ctx, data, mimeType)
		return extractionResultMsg{token: token, sentences: sentences, err: err}
	}
}

// assess asks the model for a risk assessment of one sentence.
func (m Model) assess(token uint64, sentence string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		record, err := m.client.AssessSentence(ctx, sentence)
		return assessmentResultMsg{token: token, record: record, err: err}
	}
}

// addContact persists a new trusted contact.
func (m Model) addContact(name, phone string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		list, err := m.contacts.Add(ctx, m.user, name, phone)
		return contactsUpdatedMsg{contacts: list, err: err}
	}
}

// removeContact deletes a trusted contact.
func (m Model) removeContact(id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		list, err := m.contacts.Remove(ctx, m.user, id)
		return contactsUpdatedMsg{contacts: list, err: err}
	}
}

// tick drives the cooldown countdown.
func tick() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return cooldownTickMsg{}
	})
}
