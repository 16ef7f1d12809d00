package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadReadsYAML(t *testing.T) {
	path := writeConfig(t, `
server:
  url: http://backend.local:7542/2.0
  timeout: 30s
log:
  file: /tmp/deckhand.log
  level: debug
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.URL != "http://backend.local:7542/2.0" {
		t.Fatalf("server url = %q", cfg.Server.URL)
	}
	if cfg.Server.Timeout != 30*time.Second {
		t.Fatalf("timeout = %s, want 30s", cfg.Server.Timeout)
	}
	if cfg.Log.File != "/tmp/deckhand.log" || cfg.Log.Level != "debug" {
		t.Fatalf("log config = %#v", cfg.Log)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "{}\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.URL != "http://127.0.0.1:7542/2.0" {
		t.Fatalf("default server url = %q", cfg.Server.URL)
	}
	if cfg.Server.Timeout != 10*time.Second {
		t.Fatalf("default timeout = %s", cfg.Server.Timeout)
	}
	if cfg.Log.Level != "info" {
		t.Fatalf("default log level = %q", cfg.Log.Level)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
server:
  url: http://from-file:7542/2.0
`)
	t.Setenv("DECKHAND_SERVER_URL", "http://from-env:7542/2.0")
	t.Setenv("DECKHAND_SERVER_TIMEOUT", "3s")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Server.URL != "http://from-env:7542/2.0" {
		t.Fatalf("server url = %q, want env value", cfg.Server.URL)
	}
	if cfg.Server.Timeout != 3*time.Second {
		t.Fatalf("timeout = %s, want 3s", cfg.Server.Timeout)
	}
}

func TestExplicitMissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("explicitly named missing file must fail")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"bad level", "log:\n  level: loud\n"},
		{"bad timeout", "server:\n  timeout: -5s\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeConfig(t, tc.content)
			if _, err := Load(path); err == nil {
				t.Fatalf("Load accepted %s", tc.name)
			}
		})
	}
}

func TestExpandPathHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home dir: %v", err)
	}
	got, err := expandPath("~/.config/deckhand/config.yaml")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, ".config", "deckhand", "config.yaml")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}
