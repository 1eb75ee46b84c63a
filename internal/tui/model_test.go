package tui

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/centradial/centradial/internal/auth"
	"github.com/centradial/centradial/internal/contacts"
	"github.com/centradial/centradial/internal/handoff"
	"github.com/centradial/centradial/internal/model"
	"github.com/centradial/centradial/internal/review"
	"github.com/centradial/centradial/internal/storage"
	"github.com/centradial/centradial/internal/tui/components"
	"github.com/centradial/centradial/internal/tui/themes"
)

type fakeClient struct {
	extractErr error
	assessErr  error
	sentences  []string
	record     model.RiskRecord
}

func (f *fakeClient) ExtractMessages(_ context.Context, _ []byte, _ string) ([]string, error) {
	return f.sentences, f.extractErr
}

func (f *fakeClient) AssessSentence(_ context.Context, sentence string) (model.RiskRecord, error) {
	record := f.record
	record.Sentence = sentence
	return record, f.assessErr
}

func newTestModel(t *testing.T, client *fakeClient) Model {
	t.Helper()

	store, err := storage.NewSQLiteStorage(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, store.Migrate(context.Background()))

	gate := auth.NewGate(store, nil)
	user, err := gate.Login(context.Background(), "dolly123", "1234")
	require.NoError(t, err)

	return newModel(Config{
		Auth:          gate,
		Client:        client,
		Contacts:      contacts.NewManager(store),
		User:          user,
		CooldownTicks: 5,
		Theme:         themes.Calm,
	})
}

// drain runs a command tree and returns the produced messages, ignoring
// spinner ticks.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	if _, ok := msg.(spinner.TickMsg); ok {
		return nil
	}
	return []tea.Msg{msg}
}

func apply(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func TestAnalyzerFlow(t *testing.T) {
	client := &fakeClient{
		sentences: []string{"Send the gift cards today", "Do not tell your family"},
		record: model.RiskRecord{
			PressureLevel:       model.PressureHigh,
			UrgencyScore:        9,
			ManipulationPattern: "Secrecy",
			RiskExplanation:     "Scammers isolate their targets.",
			ProtectiveAction:    "Talk to someone you trust.",
			ScamType:            "Gift card scam",
		},
	}
	m := newTestModel(t, client)
	m.view = ViewAnalyzer

	updated, cmd := m.Update(fileLoadedMsg{name: "chat.png", mimeType: "image/png", data: []byte("png")})
	m = updated.(Model)
	assert.Equal(t, review.StateExtracting, m.workflow.State())

	for _, msg := range drain(cmd) {
		m = apply(t, m, msg)
	}
	assert.Equal(t, review.StateSentencesReady, m.workflow.State())
	assert.Len(t, m.workflow.Sentences(), 2)

	updated, cmd = m.Update(components.SentenceChosenMsg{Sentence: "Do not tell your family"})
	m = updated.(Model)
	assert.Equal(t, review.StateAssessing, m.workflow.State())

	for _, msg := range drain(cmd) {
		m = apply(t, m, msg)
	}
	assert.Equal(t, review.StateResultReady, m.workflow.State())
	require.NotNil(t, m.workflow.Selected())
	assert.Equal(t, "Do not tell your family", m.workflow.Selected().Sentence)
	assert.Contains(t, m.View(), "Secrecy")
}

func TestStaleAssessmentDiscarded(t *testing.T) {
	client := &fakeClient{sentences: []string{"a", "b"}}
	m := newTestModel(t, client)
	m.view = ViewAnalyzer

	updated, cmd := m.Update(fileLoadedMsg{name: "chat.txt", mimeType: "text/plain", data: []byte("t")})
	m = updated.(Model)
	for _, msg := range drain(cmd) {
		m = apply(t, m, msg)
	}

	tokenA, err := m.workflow.BeginAssessment("a")
	require.NoError(t, err)
	_, err = m.workflow.BeginAssessment("b")
	require.NoError(t, err)

	// The stale completion for A must leave the workflow untouched.
	m = apply(t, m, assessmentResultMsg{token: tokenA, record: model.RiskRecord{Sentence: "a"}})
	assert.Equal(t, review.StateAssessing, m.workflow.State())
	assert.Nil(t, m.workflow.Selected())
}

func TestHandoffGuardWithoutContacts(t *testing.T) {
	m := newTestModel(t, &fakeClient{})
	m.view = ViewAnalyzer

	m = apply(t, m, components.HandoffRequestedMsg{})
	assert.Equal(t, ViewDashboard, m.view)
	assert.Equal(t, ModalNone, m.modal)
}

func TestHandoffCountdownAndCancel(t *testing.T) {
	m := newTestModel(t, &fakeClient{})
	list, err := m.contacts.Add(context.Background(), m.user, "Maria", "+1 555 0100")
	require.NoError(t, err)
	require.Len(t, list, 1)

	m = apply(t, m, components.HandoffRequestedMsg{})
	assert.Equal(t, ModalWhatsApp, m.modal)

	tmpl, ok := handoff.TemplateByID("concern")
	require.True(t, ok)
	m = apply(t, m, components.HandoffComposedMsg{Contact: list[0], Template: tmpl})
	assert.Equal(t, ModalTimer, m.modal)
	require.True(t, m.countdown.Active())

	m = apply(t, m, cooldownTickMsg{})
	m = apply(t, m, cooldownTickMsg{})
	assert.Equal(t, 3, m.countdown.Remaining())

	// Cancelling mid-countdown closes the overlay without opening anything.
	m = apply(t, m, components.TimerCancelledMsg{})
	assert.Equal(t, ModalNone, m.modal)
	assert.False(t, m.countdown.Active())
}

func TestLoginFlow(t *testing.T) {
	store, err := storage.NewSQLiteStorage(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, store.Migrate(context.Background()))

	m := newModel(Config{
		Auth:     auth.NewGate(store, nil),
		Client:   &fakeClient{},
		Contacts: contacts.NewManager(store),
		Theme:    themes.Calm,
	})
	assert.Equal(t, ViewLogin, m.view)

	updated, cmd := m.Update(components.LoginSubmittedMsg{Username: "dolly123", Password: "1234"})
	m = updated.(Model)
	require.NotNil(t, cmd)
	for _, msg := range drain(cmd) {
		m = apply(t, m, msg)
	}

	assert.Equal(t, ViewHome, m.view)
	require.NotNil(t, m.user)
	assert.Equal(t, "dolly123", m.user.Username)

	// Bad credentials stay on the login screen.
	m2 := newModel(Config{
		Auth:     auth.NewGate(store, nil),
		Client:   &fakeClient{},
		Contacts: contacts.NewManager(store),
		Theme:    themes.Calm,
	})
	updated, cmd = m2.Update(components.LoginSubmittedMsg{Username: "dolly123", Password: "nope"})
	m2 = updated.(Model)
	for _, msg := range drain(cmd) {
		m2 = apply(t, m2, msg)
	}
	assert.Equal(t, ViewLogin, m2.view)
	assert.Nil(t, m2.user)
}
