package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/centradial/centradial/internal/auth"
	"github.com/centradial/centradial/internal/common"
	"github.com/centradial/centradial/internal/contacts"
	"github.com/centradial/centradial/internal/model"
	"github.com/centradial/centradial/internal/storage"
	"github.com/centradial/centradial/internal/tui"
	"github.com/centradial/centradial/internal/tui/themes"
)

func scanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Start the interactive message check session",
		Long: `Opens the interactive terminal session: sign in, pick a conversation
file, review each extracted sentence's risk assessment and, if needed, hand
the conversation off to a trusted contact.`,
		RunE: runScan,
	}

	cmd.Flags().String("theme", "", "UI theme (calm, high-contrast)")
	_ = viper.BindPFlag("ui.theme", cmd.Flags().Lookup("theme"))

	return cmd
}

func runScan(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer func() { _ = store.Close() }()

	client, err := newLLMClient()
	if err != nil {
		return err
	}

	gate, err := newAuthGate(store)
	if err != nil {
		return err
	}

	user, err := resumeSession(cmd, store, gate)
	if err != nil {
		return err
	}

	return tui.Run(ctx, tui.Config{
		Auth:          gate,
		Client:        client,
		Contacts:      contacts.NewManager(store),
		User:          user,
		CooldownTicks: viper.GetInt("cooldown.seconds"),
		Theme:         themes.GetTheme(viper.GetString("ui.theme")),
	})
}

// resumeSession restores the stored session, if any. A missing or stale
// session just means the login screen is shown.
func resumeSession(cmd *cobra.Command, store *storage.SQLiteStorage, gate *auth.Gate) (*model.UserRecord, error) {
	ctx := cmd.Context()

	current, err := store.GetCurrentUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	if current == "" {
		return nil, nil
	}

	user, err := gate.Resume(ctx, current)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resume session: %w", err)
	}
	return user, nil
}
