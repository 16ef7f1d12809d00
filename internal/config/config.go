package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config captures everything deckhand needs to reach the flashcards backend.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
}

// ServerConfig holds backend connection settings.
type ServerConfig struct {
	URL     string        `yaml:"url"     env:"DECKHAND_SERVER_URL"     env-default:"http://127.0.0.1:7542/2.0"`
	Timeout time.Duration `yaml:"timeout" env:"DECKHAND_SERVER_TIMEOUT" env-default:"10s"`
}

// LogConfig holds file-logging settings. The TUI owns the terminal, so logs
// only ever go to a file.
type LogConfig struct {
	File  string `yaml:"file"  env:"DECKHAND_LOG_FILE"  env-default:""`
	Level string `yaml:"level" env:"DECKHAND_LOG_LEVEL" env-default:"info"`
}

const defaultConfigPath = "~/.config/deckhand/config.yaml"

// Load reads configuration with priority ENV > YAML > defaults. An empty
// path selects the default location; a missing default file falls back to
// ENV + defaults, while an explicitly named file must exist.
func Load(path string) (Config, error) {
	var cfg Config

	explicit := strings.TrimSpace(path) != ""
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	if _, err := os.Stat(resolved); err == nil {
		if err := cleanenv.ReadConfig(resolved, &cfg); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", resolved, err)
		}
	} else if explicit {
		return Config{}, fmt.Errorf("config file %s: %w", resolved, err)
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return Config{}, fmt.Errorf("read config env: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if strings.TrimSpace(c.Server.URL) == "" {
		return fmt.Errorf("server url is empty")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server timeout must be positive, got %s", c.Server.Timeout)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
