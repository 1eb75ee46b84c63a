package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/centradial/centradial/internal/auth"
	"github.com/centradial/centradial/internal/config"
	"github.com/centradial/centradial/internal/llm"
	"github.com/centradial/centradial/internal/storage"
)

// initStorage opens the database and applies pending migrations.
func initStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/centradial/centradial.db"
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// newLLMClient builds the configured provider client.
func newLLMClient() (llm.Client, error) {
	cfg := llm.Config{
		Provider:    viper.GetString("llm.provider"),
		APIKey:      viper.GetString("llm.api_key"),
		Model:       viper.GetString("llm.model"),
		BaseURL:     viper.GetString("llm.base_url"),
		Temperature: viper.GetFloat64("llm.temperature"),
		MaxTokens:   viper.GetInt("llm.max_tokens"),
	}
	if seconds := viper.GetInt("llm.timeout_seconds"); seconds > 0 {
		cfg.Timeout = time.Duration(seconds) * time.Second
	}

	client, err := llm.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	return client, nil
}

// configuredCredentials reads the allow-list from config. Entries are
// "username:password" strings; an empty list falls back to the built-in
// accounts.
func configuredCredentials() ([]auth.Credential, error) {
	entries := viper.GetStringSlice("auth.users")
	credentials := make([]auth.Credential, 0, len(entries))
	for _, entry := range entries {
		username, password, found := strings.Cut(entry, ":")
		if !found || username == "" || password == "" {
			return nil, fmt.Errorf("invalid auth.users entry %q, want username:password", entry)
		}
		credentials = append(credentials, auth.Credential{
			Username: username,
			Password: password,
		})
	}
	return credentials, nil
}

// newAuthGate builds the auth gate from storage and config.
func newAuthGate(store *storage.SQLiteStorage) (*auth.Gate, error) {
	credentials, err := configuredCredentials()
	if err != nil {
		return nil, err
	}
	return auth.NewGate(store, credentials), nil
}
