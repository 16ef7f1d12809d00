package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/deckhand-cli/deckhand/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	serverURL := flag.String("server", "", "override backend base URL (optional)")
	login := flag.Bool("login", false, "check credentials against the backend and exit")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		ServerURL:  *serverURL,
	}

	if *login {
		return headlessLogin(ctx, opts)
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "deckhand: %v\n", err)
		return 1
	}
	return 0
}

// headlessLogin prompts for credentials on the terminal and verifies them
// against the backend without starting the UI.
func headlessLogin(ctx context.Context, opts app.Options) int {
	fmt.Fprint(os.Stdout, "email: ")
	reader := bufio.NewReader(os.Stdin)
	email, err := reader.ReadString('\n')
	if err != nil {
		fmt.Fprintf(os.Stderr, "deckhand: read email: %v\n", err)
		return 1
	}
	email = strings.TrimSpace(email)

	fmt.Fprint(os.Stdout, "password: ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "deckhand: read password: %v\n", err)
		return 1
	}

	profile, err := app.Login(ctx, opts, email, string(password))
	if err != nil {
		fmt.Fprintf(os.Stderr, "deckhand: %v\n", err)
		return 1
	}
	fmt.Fprintf(os.Stdout, "signed in as %s (%s)\n", profile.Email, profile.ID)
	return 0
}
