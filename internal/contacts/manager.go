// Package contacts manages a user's trusted contact list with write-through
// persistence: every mutation is stored before the in-memory record is
// updated, so a crash never leaves the two out of sync.
package contacts

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/centradial/centradial/internal/model"
)

// Store is the subset of the storage layer the manager needs.
type Store interface {
	GetUser(ctx context.Context, username string) (*model.UserRecord, error)
	SaveUser(ctx context.Context, record *model.UserRecord) error
}

// Manager adds and removes trusted contacts for a user record.
type Manager struct {
	store Store
}

// NewManager returns a manager backed by the given store.
func NewManager(store Store) *Manager {
	return &Manager{store: store}
}

// Add appends a contact to the user's list and persists the record. A name or
// phone that is blank after trimming makes Add a no-op returning the current
// list unchanged. Whitespace inside the phone number is stripped; other
// formatting is kept as entered.
func (m *Manager) Add(ctx context.Context, user *model.UserRecord, name, phone string) ([]model.Contact, error) {
	name = strings.TrimSpace(name)
	phone = strings.Join(strings.Fields(phone), "")
	if name == "" || phone == "" {
		return user.TrustedContacts, nil
	}

	// Re-read so a record mutated elsewhere is not silently overwritten.
	stored, err := m.store.GetUser(ctx, user.Username)
	if err != nil {
		return nil, err
	}

	stored.TrustedContacts = append(stored.TrustedContacts, model.Contact{
		ID:    uuid.New().String(),
		Name:  name,
		Phone: phone,
	})
	if err := m.store.SaveUser(ctx, stored); err != nil {
		return nil, err
	}

	user.TrustedContacts = stored.TrustedContacts
	return user.TrustedContacts, nil
}

// Remove deletes the contact with the given id and persists the record.
// Removing an id that is not present is a no-op.
func (m *Manager) Remove(ctx context.Context, user *model.UserRecord, id string) ([]model.Contact, error) {
	stored, err := m.store.GetUser(ctx, user.Username)
	if err != nil {
		return nil, err
	}

	kept := stored.TrustedContacts[:0]
	for _, c := range stored.TrustedContacts {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(stored.TrustedContacts) {
		user.TrustedContacts = stored.TrustedContacts
		return user.TrustedContacts, nil
	}

	stored.TrustedContacts = kept
	if err := m.store.SaveUser(ctx, stored); err != nil {
		return nil, err
	}

	user.TrustedContacts = stored.TrustedContacts
	return user.TrustedContacts, nil
}
