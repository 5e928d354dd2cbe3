package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dmitrijs2005/textfix/internal/client/config"
	"github.com/dmitrijs2005/textfix/internal/client/services"
	"github.com/dmitrijs2005/textfix/internal/client/ui"
	"github.com/dmitrijs2005/textfix/internal/logging"
)

// Run starts the full-screen front end and blocks until the user quits.
func Run(ctx context.Context, cfg *config.Config, dataDir string, logger logging.Logger) error {
	logger = logger.With("module", "tui")
	b := &bridge{logger: logger}

	set, err := services.Wire(ctx, cfg, dataDir, b, logger)
	if err != nil {
		return fmt.Errorf("init services: %w", err)
	}
	defer func() {
		if err := set.Close(); err != nil {
			logger.Warn(ctx, "close local database", "error", err)
		}
	}()

	m := newModel(ctx, ui.New(set.UIDeps(b, logger)), set.Auth, b)

	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
