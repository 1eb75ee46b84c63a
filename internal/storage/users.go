package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/centradial/centradial/internal/common"
	"github.com/centradial/centradial/internal/model"
)

// GetUser returns the stored record for username, or common.ErrNotFound.
func (s *SQLiteStorage) GetUser(ctx context.Context, username string) (*model.UserRecord, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if username == "" {
		return nil, fmt.Errorf("username cannot be empty")
	}

	user := &model.UserRecord{Username: username, TrustedContacts: []model.Contact{}}

	err := s.db.QueryRowContext(ctx, `
		SELECT emotional_awareness, scam_resistance, decision_stability
		FROM users
		WHERE username = ?`, username).Scan(
		&user.Scores.EmotionalAwareness,
		&user.Scores.ScamResistance,
		&user.Scores.DecisionStability,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user %q: %w", username, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, phone
		FROM contacts
		WHERE username = ?
		ORDER BY position`, username)
	if err != nil {
		return nil, fmt.Errorf("failed to query contacts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c model.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone); err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		user.TrustedContacts = append(user.TrustedContacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contacts: %w", err)
	}

	slog.Debug("retrieved user record", "username", username, "contacts", len(user.TrustedContacts))
	return user, nil
}

// SaveUser overwrites the stored record for user wholesale. There is no
// field-level merge: the persisted contacts are replaced with exactly the
// contacts on the given record.
func (s *SQLiteStorage) SaveUser(ctx context.Context, user *model.UserRecord) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("user cannot be nil")
	}
	if user.Username == "" {
		return fmt.Errorf("username cannot be empty")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO users (username, emotional_awareness, scam_resistance, decision_stability)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(username) DO UPDATE SET
			emotional_awareness = excluded.emotional_awareness,
			scam_resistance = excluded.scam_resistance,
			decision_stability = excluded.decision_stability,
			updated_at = CURRENT_TIMESTAMP`,
		user.Username,
		user.Scores.EmotionalAwareness,
		user.Scores.ScamResistance,
		user.Scores.DecisionStability,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM contacts WHERE username = ?`, user.Username); err != nil {
		return fmt.Errorf("failed to clear contacts: %w", err)
	}

	for i, c := range user.TrustedContacts {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO contacts (id, username, name, phone, position)
			VALUES (?, ?, ?, ?, ?)`,
			c.ID, user.Username, c.Name, c.Phone, i)
		if err != nil {
			return fmt.Errorf("failed to insert contact: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit user record: %w", err)
	}

	slog.Debug("saved user record", "username", user.Username, "contacts", len(user.TrustedContacts))
	return nil
}
