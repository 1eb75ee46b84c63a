package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/centradial/centradial/internal/contacts"
	"github.com/centradial/centradial/internal/model"
	"github.com/centradial/centradial/internal/storage"
)

func contactsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contacts",
		Short: "Manage your trusted contacts",
	}

	cmd.PersistentFlags().String("user", "", "act as this user (default: the signed-in session)")

	cmd.AddCommand(contactsListCmd())
	cmd.AddCommand(contactsAddCmd())
	cmd.AddCommand(contactsRemoveCmd())
	return cmd
}

func contactsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List trusted contacts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, user, err := openUserRecord(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if len(user.TrustedContacts) == 0 {
				fmt.Println("No trusted contacts yet. Add one with: centradial contacts add <name> <phone>")
				return nil
			}

			for _, c := range user.TrustedContacts {
				fmt.Printf("%s  %-20s %s\n", c.ID, c.Name, c.Phone)
			}
			return nil
		},
	}
}

func contactsAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name> <phone>",
		Short: "Add a trusted contact",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, user, err := openUserRecord(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			manager := contacts.NewManager(store)
			list, err := manager.Add(cmd.Context(), user, args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to add contact: %w", err)
			}

			fmt.Printf("Added %s. You now have %d trusted contact(s).\n", args[0], len(list))
			return nil
		},
	}
}

func contactsRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a trusted contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, user, err := openUserRecord(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			before := len(user.TrustedContacts)
			manager := contacts.NewManager(store)
			list, err := manager.Remove(cmd.Context(), user, args[0])
			if err != nil {
				return fmt.Errorf("failed to remove contact: %w", err)
			}

			if len(list) == before {
				fmt.Printf("No contact with id %s.\n", args[0])
				return nil
			}
			fmt.Printf("Removed. You now have %d trusted contact(s).\n", len(list))
			return nil
		},
	}
}

// openUserRecord opens storage and loads the record named by --user or the
// stored session. The caller owns closing the returned store.
func openUserRecord(cmd *cobra.Command) (*storage.SQLiteStorage, *model.UserRecord, error) {
	ctx := cmd.Context()

	store, err := initStorage(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	username, _ := cmd.Flags().GetString("user")
	if username == "" {
		username, err = store.GetCurrentUser(ctx)
		if err != nil {
			_ = store.Close()
			return nil, nil, fmt.Errorf("failed to read session: %w", err)
		}
	}
	if username == "" {
		_ = store.Close()
		return nil, nil, fmt.Errorf("no signed-in session; run 'centradial scan' to sign in or pass --user")
	}

	user, err := store.GetUser(ctx, username)
	if err != nil {
		_ = store.Close()
		return nil, nil, fmt.Errorf("failed to load user %s: %w", username, err)
	}
	return store, user, nil
}
