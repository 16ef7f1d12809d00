package app

import (
	"context"
	"fmt"

	"github.com/deckhand-cli/deckhand/internal/config"
	"github.com/deckhand-cli/deckhand/internal/coordinator"
	"github.com/deckhand-cli/deckhand/internal/flashcards"
	"github.com/deckhand-cli/deckhand/internal/logging"
	"github.com/deckhand-cli/deckhand/internal/prefs"
	"github.com/deckhand-cli/deckhand/internal/state"
	"github.com/deckhand-cli/deckhand/internal/ui"
)

// Options configure the deckhand application.
type Options struct {
	ConfigPath string
	ServerURL  string // overrides the configured backend URL when set
	PrefsPath  string // empty uses default ~/.config/deckhand/prefs.toml
}

// Run boots the deckhand TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	serverURL := cfg.Server.URL
	if opts.ServerURL != "" {
		serverURL = opts.ServerURL
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	log, err := logging.New(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = log.Sync() }()

	client, err := flashcards.NewClientTimeout(serverURL, cfg.Server.Timeout)
	if err != nil {
		return fmt.Errorf("init backend client: %w", err)
	}

	co := coordinator.New(client, log)

	// Probe the session cookie before the UI starts so a still-valid session
	// lands directly on the pack list. A 401 here is an ordinary cold start.
	st := state.New()
	op := state.NewOpID()
	st = state.Reduce(st, state.OpStarted{ID: op})
	st = state.Apply(st, co.RestoreSession(ctx, op)...)

	uiOpts := ui.Options{
		Context:     ctx,
		Coordinator: co,
		Initial:     st,
		ThemeName:   userPrefs.Theme,
		PrefsPath:   opts.PrefsPath,
		PageSize:    userPrefs.PageSize,
	}
	return ui.Run(uiOpts)
}
