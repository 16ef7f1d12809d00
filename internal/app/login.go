package app

import (
	"context"
	"fmt"

	"github.com/deckhand-cli/deckhand/internal/config"
	"github.com/deckhand-cli/deckhand/internal/flashcards"
)

// Login performs a one-shot credential check against the backend without
// starting the UI. It is used by the command line's -login mode.
func Login(ctx context.Context, opts Options, email, password string) (flashcards.Profile, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return flashcards.Profile{}, fmt.Errorf("load config: %w", err)
	}
	serverURL := cfg.Server.URL
	if opts.ServerURL != "" {
		serverURL = opts.ServerURL
	}

	client, err := flashcards.NewClientTimeout(serverURL, cfg.Server.Timeout)
	if err != nil {
		return flashcards.Profile{}, fmt.Errorf("init backend client: %w", err)
	}

	profile, err := client.Login(ctx, flashcards.Credentials{Email: email, Password: password})
	if err != nil {
		return flashcards.Profile{}, err
	}
	return profile, nil
}
