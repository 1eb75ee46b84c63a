package tui

import (
	"github.com/centradial/centradial/internal/model"
)

// Async operation results.
type loginResultMsg struct {
	user *model.UserRecord
	err  error
}

type logoutDoneMsg struct {
	err error
}

type fileLoadedMsg struct {
	err      error
	name     string
	mimeType string
	data     []byte
}

type extractionResultMsg struct {
	err       error
	sentences []string
	token     uint64
}

type assessmentResultMsg struct {
	err    error
	record model.RiskRecord
	token  uint64
}

type contactsUpdatedMsg struct {
	err      error
	contacts []model.Contact
}

// cooldownTickMsg arrives once per second while the countdown overlay is up.
type cooldownTickMsg struct{}
