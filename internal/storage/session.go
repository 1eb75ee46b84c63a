package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

const currentUserKey = "current_user"

// GetCurrentUser returns the username of the active session, or an empty
// string when none is set.
func (s *SQLiteStorage) GetCurrentUser(ctx context.Context) (string, error) {
	if err := validateContext(ctx); err != nil {
		return "", err
	}

	var username string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM session WHERE key = ?`, currentUserKey).Scan(&username)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to query session: %w", err)
	}
	return username, nil
}

// SetCurrentUser marks username as the active session.
func (s *SQLiteStorage) SetCurrentUser(ctx context.Context, username string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		currentUserKey, username)
	if err != nil {
		return fmt.Errorf("failed to set current user: %w", err)
	}
	return nil
}

// ClearCurrentUser removes the active-session pointer.
func (s *SQLiteStorage) ClearCurrentUser(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `DELETE FROM session WHERE key = ?`, currentUserKey)
	if err != nil {
		return fmt.Errorf("failed to clear current user: %w", err)
	}
	return nil
}
