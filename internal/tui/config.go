package tui

import (
	"github.com/centradial/centradial/internal/auth"
	"github.com/centradial/centradial/internal/contacts"
	"github.com/centradial/centradial/internal/llm"
	"github.com/centradial/centradial/internal/model"
	"github.com/centradial/centradial/internal/tui/themes"
)

// Config holds everything the TUI needs to run.
type Config struct {
	Auth     *auth.Gate
	Client   llm.Client
	Contacts *contacts.Manager

	// User, when non-nil, skips the login screen (a resumed session).
	User *model.UserRecord

	// CooldownTicks is the hand-off countdown in seconds. Zero means the
	// default.
	CooldownTicks int

	Theme themes.Theme
}
