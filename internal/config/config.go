package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix namespaces environment overrides, e.g. MEETFOCUS_THEME.
const EnvPrefix = "MEETFOCUS"

type Config struct {
	Theme       string        `toml:"theme" split_words:"true"`        // classic | neon | mono
	DefaultMode string        `toml:"default_mode" split_words:"true"` // mode selected at start
	ImportMode  string        `toml:"import_mode" split_words:"true"`  // mode for imported events without one
	AutoReply   string        `toml:"auto_reply" split_words:"true"`
	Tick        time.Duration `toml:"tick" split_words:"true"`
	TieBreak    string        `toml:"tie_break" split_words:"true"` // first | latest-start
	Calendar    string        `toml:"calendar" split_words:"true"`  // .ics file imported at start
	Seed        string        `toml:"seed" split_words:"true"`      // JSON snapshot loaded at start
	ImportDays  int           `toml:"import_days" split_words:"true"`
	LogFile     string        `toml:"log_file" split_words:"true"`
	LogLevel    string        `toml:"log_level" split_words:"true"`
	NoColor     bool          `toml:"no_color" split_words:"true"`
}

func Default() *Config {
	return &Config{
		Theme:       "classic",
		DefaultMode: "normal",
		ImportMode:  "meeting",
		Tick:        time.Second,
		TieBreak:    "first",
		ImportDays:  7,
		LogLevel:    "info",
	}
}

// Load layers defaults, the TOML file and MEETFOCUS_* environment variables.
// An empty path means the default location; a missing default file is fine,
// a missing explicit file is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, cfg); err != nil {
				return nil, fmt.Errorf("config %s: %w", path, err)
			}
		} else if explicit {
			return nil, fmt.Errorf("config: %w", err)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("config env: %w", err)
	}

	cfg.Calendar = expandTilde(cfg.Calendar)
	cfg.Seed = expandTilde(cfg.Seed)
	cfg.LogFile = expandTilde(cfg.LogFile)
	if cfg.Tick <= 0 {
		cfg.Tick = time.Second
	}
	if cfg.ImportDays <= 0 {
		cfg.ImportDays = 7
	}
	return cfg, nil
}

// DefaultPath is $XDG_CONFIG_HOME/meetfocus/config.toml or ~/.config/meetfocus/config.toml.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "meetfocus", "config.toml")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "meetfocus", "config.toml")
	}
	return ""
}

func expandTilde(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
