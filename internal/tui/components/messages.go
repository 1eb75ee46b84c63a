package components

import (
	"github.com/centradial/centradial/internal/handoff"
	"github.com/centradial/centradial/internal/model"
)

// LoginSubmittedMsg is emitted when the user submits credentials.
type LoginSubmittedMsg struct {
	Username string
	Password string
}

// FileChosenMsg is emitted when the user confirms a file path to analyze.
type FileChosenMsg struct {
	Path string
}

// FileRemovedMsg is emitted when the user removes the selected file.
type FileRemovedMsg struct{}

// SentenceChosenMsg is emitted when the user picks a sentence to assess.
type SentenceChosenMsg struct {
	Sentence string
}

// HandoffRequestedMsg is emitted when the user asks to involve a trusted
// contact.
type HandoffRequestedMsg struct{}

// AddContactMsg is emitted when the add-contact form is submitted.
type AddContactMsg struct {
	Name  string
	Phone string
}

// RemoveContactMsg is emitted when the user removes a trusted contact.
type RemoveContactMsg struct {
	ID string
}

// HandoffComposedMsg is emitted once a contact and message template are both
// chosen.
type HandoffComposedMsg struct {
	Contact  model.Contact
	Template handoff.Template
}

// HandoffDismissedMsg is emitted when the user backs out of the hand-off
// picker.
type HandoffDismissedMsg struct{}

// TimerCancelledMsg is emitted when the user cancels the countdown.
type TimerCancelledMsg struct{}
