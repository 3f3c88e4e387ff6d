// Package config loads settings from a TOML file and the environment.
// Precedence, lowest first: defaults, config file, environment, flags
// (flags are applied by the CLI).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	appDirName     = "teamtodo"
	configFileName = "config.toml"
)

type Config struct {
	DataDir         string    `toml:"data_dir"`
	Backend         string    `toml:"backend"` // json | sqlite | memory
	Mode            string    `toml:"mode"`    // personal | team
	Theme           string    `toml:"theme"`   // classic | neon | mono
	TimeZone        string    `toml:"timezone"`
	AutoDefaultUser bool      `toml:"auto_default_user"`
	Log             LogConfig `toml:"log"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // text | json | logfmt
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		DataDir: defaultDataDir(),
		Backend: "json",
		Mode:    "personal",
		Theme:   "classic",
		Log:     LogConfig{Level: "warn", Format: "text"},
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".teamtodo"
	}
	return filepath.Join(home, ".teamtodo")
}

// DefaultPath is $XDG_CONFIG_HOME/teamtodo/config.toml (or the OS equivalent).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config dir: %w", err)
	}
	return filepath.Join(dir, appDirName, configFileName), nil
}

// Load reads defaults, then path, then the environment. An empty path
// means DefaultPath, which may be missing; an explicit path must exist.
// The result is not validated: callers apply their overrides first and
// then call Validate.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err == nil {
			path = p
		}
	}
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			if !errors.Is(err, os.ErrNotExist) || explicit {
				return Config{}, fmt.Errorf("load config %s: %w", path, err)
			}
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.DataDir = getEnv("TODO_DATA_DIR", cfg.DataDir)
	cfg.Backend = getEnv("TODO_BACKEND", cfg.Backend)
	cfg.Mode = getEnv("TODO_MODE", cfg.Mode)
	cfg.Theme = getEnv("TODO_THEME", cfg.Theme)
	cfg.TimeZone = getEnv("TODO_TZ", cfg.TimeZone)
	cfg.AutoDefaultUser = getEnvBool("TODO_AUTO_DEFAULT_USER", cfg.AutoDefaultUser)
	cfg.Log.Level = getEnv("TODO_LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = getEnv("TODO_LOG_FORMAT", cfg.Log.Format)
}

// Validate rejects values the rest of the app cannot act on.
func (c Config) Validate() error {
	switch normalize(c.Backend) {
	case "json", "sqlite", "memory":
	default:
		return fmt.Errorf("backend %q: want json, sqlite or memory", c.Backend)
	}
	switch normalize(c.Mode) {
	case "personal", "team":
	default:
		return fmt.Errorf("mode %q: want personal or team", c.Mode)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves TimeZone; empty means the machine's local zone.
func (c Config) Location() (*time.Location, error) {
	if strings.TrimSpace(c.TimeZone) == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
