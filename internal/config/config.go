// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/lunacal/internal/workday"
)

// Config holds the application configuration.
type Config struct {
	Schedule ScheduleConfig `toml:"schedule"`
	Calendar CalendarConfig `toml:"calendar"`
	Storage  StorageConfig  `toml:"storage"`
	UI       UIConfig       `toml:"ui"`
}

// ScheduleConfig holds workday settings.
type ScheduleConfig struct {
	Workdays []string `toml:"workdays"` // e.g., ["monday", "tuesday", ...]
}

// CalendarConfig holds lunar label settings.
type CalendarConfig struct {
	Lunar          bool `toml:"lunar"`           // Show lunar labels
	LunarFestivals bool `toml:"lunar_festivals"` // Prefer festival and solar term names
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme        string `toml:"theme"`         // "mocha", "macchiato", "frappe", "latte", "light"
	MaxSchedules int    `toml:"max_schedules"` // Schedule labels per cell before collapsing
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Schedule: ScheduleConfig{
			Workdays: []string{"monday", "tuesday", "wednesday", "thursday", "friday"},
		},
		Calendar: CalendarConfig{
			Lunar:          true,
			LunarFestivals: true,
		},
		Storage: StorageConfig{
			DBPath: defaultDBPath(),
		},
		UI: UIConfig{
			Theme:        "mocha",
			MaxSchedules: 2,
		},
	}
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "lunacal.db"
	}
	return filepath.Join(home, ".local", "share", "lunacal", "lunacal.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	if v := os.Getenv("LUNACAL_CONFIG"); v != "" {
		return expandPath(v)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "lunacal", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	// Try to load from file (not an error if it doesn't exist)
	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("LUNACAL_WORKDAYS"); v != "" {
		cfg.Schedule.Workdays = strings.Split(v, ",")
	}

	if v := os.Getenv("LUNACAL_LUNAR"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parsing LUNACAL_LUNAR: %w", err)
		}
		cfg.Calendar.Lunar = b
	}
	if v := os.Getenv("LUNACAL_LUNAR_FESTIVALS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parsing LUNACAL_LUNAR_FESTIVALS: %w", err)
		}
		cfg.Calendar.LunarFestivals = b
	}

	if v := os.Getenv("LUNACAL_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}

	if v := os.Getenv("LUNACAL_UI_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if v := os.Getenv("LUNACAL_UI_MAX_SCHEDULES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parsing LUNACAL_UI_MAX_SCHEDULES: %w", err)
		}
		cfg.UI.MaxSchedules = n
	}

	return nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if len(c.Schedule.Workdays) == 0 {
		return errors.New("at least one workday must be configured")
	}
	if _, err := workday.New(c.Schedule.Workdays); err != nil {
		return fmt.Errorf("workdays: %w", err)
	}
	if c.UI.MaxSchedules < 0 {
		return fmt.Errorf("max_schedules must not be negative, got %d", c.UI.MaxSchedules)
	}
	if c.Storage.DBPath == "" {
		return errors.New("db_path must be set")
	}
	return nil
}

// Workdays returns the workday classifier described by the schedule section.
func (c *Config) Workdays() (*workday.Classifier, error) {
	return workday.New(c.Schedule.Workdays)
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
