// Package auth gates access behind a static allow-list and manages the
// login/logout session flow.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/centradial/centradial/internal/common"
	"github.com/centradial/centradial/internal/model"
)

// Store is the slice of the session store the auth flow needs.
type Store interface {
	GetUser(ctx context.Context, username string) (*model.UserRecord, error)
	SaveUser(ctx context.Context, user *model.UserRecord) error
	SetCurrentUser(ctx context.Context, username string) error
	ClearCurrentUser(ctx context.Context) error
}

// Credential is a single allow-list entry.
type Credential struct {
	Username string
	Password string
}

// DefaultCredentials is the built-in allow-list, used when none is configured.
var DefaultCredentials = []Credential{
	{Username: "dolly123", Password: "1234"},
	{Username: "dolly456", Password: "2345"},
}

// Gate checks submitted credentials against a fixed allow-list. This is a
// companion-app access gate, not a security boundary.
type Gate struct {
	store       Store
	credentials []Credential
}

// NewGate creates a gate over the given store and allow-list. An empty
// allow-list falls back to the defaults.
func NewGate(store Store, credentials []Credential) *Gate {
	if len(credentials) == 0 {
		credentials = DefaultCredentials
	}
	return &Gate{store: store, credentials: credentials}
}

// Authenticate checks a (username, password) pair. Failures are reported as
// the single generic common.ErrInvalidCredentials so callers cannot
// distinguish an unknown user from a wrong password.
func (g *Gate) Authenticate(username, password string) error {
	for _, c := range g.credentials {
		if c.Username == username && c.Password == password {
			return nil
		}
	}
	return common.NewUserError("Incorrect username or password.", common.ErrInvalidCredentials)
}

// Login authenticates and then loads the user's record, creating one with
// defaults on first login. The record is persisted and marked current before
// returning.
func (g *Gate) Login(ctx context.Context, username, password string) (*model.UserRecord, error) {
	if err := g.Authenticate(username, password); err != nil {
		return nil, err
	}

	user, err := g.store.GetUser(ctx, username)
	switch {
	case err == nil:
		// Existing record, keep as-is.
	case errors.Is(err, common.ErrNotFound):
		user = model.NewUserRecord(username)
		if saveErr := g.store.SaveUser(ctx, user); saveErr != nil {
			return nil, fmt.Errorf("failed to create user record: %w", saveErr)
		}
		slog.Info("created user record", "username", username)
	default:
		return nil, fmt.Errorf("failed to load user record: %w", err)
	}

	if err := g.store.SetCurrentUser(ctx, username); err != nil {
		return nil, fmt.Errorf("failed to mark session: %w", err)
	}

	return user, nil
}

// Logout clears the current-session pointer. The user's record persists.
func (g *Gate) Logout(ctx context.Context) error {
	return g.store.ClearCurrentUser(ctx)
}

// Resume returns the record for the persisted current user, if any.
func (g *Gate) Resume(ctx context.Context, current string) (*model.UserRecord, error) {
	if current == "" {
		return nil, common.ErrNoSession
	}
	user, err := g.store.GetUser(ctx, current)
	if err != nil {
		return nil, fmt.Errorf("failed to resume session: %w", err)
	}
	return user, nil
}
