package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive session and blocks until the user quits.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Auth == nil {
		return fmt.Errorf("auth gate is required")
	}
	if cfg.Client == nil {
		return fmt.Errorf("llm client is required")
	}
	if cfg.Contacts == nil {
		return fmt.Errorf("contacts manager is required")
	}

	program := tea.NewProgram(
		newModel(cfg),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
