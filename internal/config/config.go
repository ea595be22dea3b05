package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Config holds all endurance configuration.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Logging LoggingConfig `yaml:"logging"`
	UI      UIConfig      `yaml:"ui"`
}

// StorageConfig selects where and how the collection is kept.
type StorageConfig struct {
	Dir     string `yaml:"dir"`
	Backend string `yaml:"backend"` // json, sqlite
	// Watch reloads an open TUI when another process saves (json backend only).
	Watch bool `yaml:"watch"`
}

// LoggingConfig configures the log file. The terminal belongs to the TUI.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`
}

type UIConfig struct {
	Theme string `yaml:"theme"` // classic, neon, mono
}

// Dir is the per-user config directory. ENDURANCE_CONFIG_DIR overrides it
// (keeps tests away from the real home directory).
func Dir() (string, error) {
	if v := strings.TrimSpace(os.Getenv("ENDURANCE_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".endurance"), nil
}

// DefaultPath is the config file read when --config is not given.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

func DefaultConfig() *Config {
	dir, err := Dir()
	if err != nil {
		dir = ".endurance"
	}
	return &Config{
		Storage: StorageConfig{
			Dir:     filepath.Join(dir, "data"),
			Backend: BackendJSON,
			Watch:   true,
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  filepath.Join(dir, "endurance.log"),
		},
		UI: UIConfig{Theme: "classic"},
	}
}

// Load reads path on top of the defaults, then applies environment overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg as YAML, creating the directory if needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func (c *Config) applyEnvOverrides() {
	if v := strings.TrimSpace(os.Getenv("ENDURANCE_DIR")); v != "" {
		c.Storage.Dir = v
	}
	if v := strings.TrimSpace(os.Getenv("ENDURANCE_BACKEND")); v != "" {
		c.Storage.Backend = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv("ENDURANCE_LOG_LEVEL")); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv("ENDURANCE_LOG_FILE")); v != "" {
		c.Logging.File = v
	}
	if v := strings.TrimSpace(os.Getenv("ENDURANCE_THEME")); v != "" {
		c.UI.Theme = strings.ToLower(v)
	}
}

// Validate checks the values that select code paths.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendJSON, BackendSQLite:
	default:
		return fmt.Errorf("storage.backend: unknown backend %q (expected json|sqlite)", c.Storage.Backend)
	}
	if strings.TrimSpace(c.Storage.Dir) == "" {
		return errors.New("storage.dir is empty")
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unknown level %q", c.Logging.Level)
	}
	return nil
}
