// Package config handles loading and saving application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// appName is used for the config directory name.
const appName = "calendar-tui"

// Defaults for the UI settings.
const (
	DefaultStartView       = "month"
	DefaultStartTab        = "home"
	DefaultLocale          = "en_US"
	DefaultMonthFormat     = "January 2006"
	DefaultCopyFormat      = "2006-01-02"
	DefaultDragThreshold   = 50.0
	DefaultDragUnitsPerRow = 25.0
	DefaultAnimationMS     = 300
)

// Config represents the application configuration.
type Config struct {
	UI UIConfig `yaml:"ui"`

	// path is where the config was loaded from; empty means the default path.
	path string
}

// UIConfig holds UI-related settings.
type UIConfig struct {
	StartView   string `yaml:"start_view"`             // "month" or "week"
	StartTab    string `yaml:"start_tab,omitempty"`    // "home", "calendar" or "mypage"
	Locale      string `yaml:"locale"`                 // e.g. "en_US", "ko_KR"
	MonthFormat string `yaml:"month_format,omitempty"` // Go layout for the month header
	CopyFormat  string `yaml:"copy_format,omitempty"`  // Go layout used when yanking a date

	// Gesture tuning
	DragThreshold   float64 `yaml:"drag_threshold"`
	DragUnitsPerRow float64 `yaml:"drag_units_per_row"`
	AnimationMS     int     `yaml:"animation_ms"`
}

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			StartView:       DefaultStartView,
			StartTab:        DefaultStartTab,
			Locale:          DefaultLocale,
			MonthFormat:     DefaultMonthFormat,
			CopyFormat:      DefaultCopyFormat,
			DragThreshold:   DefaultDragThreshold,
			DragUnitsPerRow: DefaultDragUnitsPerRow,
			AnimationMS:     DefaultAnimationMS,
		},
	}
}

// Validate replaces unusable values with defaults.
func (c *Config) Validate() {
	d := DefaultConfig().UI
	ui := &c.UI

	if ui.StartView != "month" && ui.StartView != "week" {
		ui.StartView = d.StartView
	}
	switch ui.StartTab {
	case "home", "calendar", "mypage":
	default:
		ui.StartTab = d.StartTab
	}
	if ui.Locale == "" {
		ui.Locale = d.Locale
	}
	if ui.MonthFormat == "" {
		ui.MonthFormat = d.MonthFormat
	}
	if ui.CopyFormat == "" {
		ui.CopyFormat = d.CopyFormat
	}
	if ui.DragThreshold <= 0 {
		ui.DragThreshold = d.DragThreshold
	}
	if ui.DragUnitsPerRow <= 0 {
		ui.DragUnitsPerRow = d.DragUnitsPerRow
	}
	if ui.AnimationMS < 0 {
		ui.AnimationMS = d.AnimationMS
	}
}

// Path returns the file the config was loaded from or will be saved to.
func (c *Config) Path() string {
	if c.path != "" {
		return c.path
	}
	p, err := ConfigPath()
	if err != nil {
		return ""
	}
	return p
}

// ConfigDir returns the path to the configuration directory.
// Creates the directory if it doesn't exist.
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".config", appName)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// ConfigPath returns the full path to the configuration file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the configuration from the default config file.
// If the file doesn't exist, returns a default configuration.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the configuration from path.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return default config if file doesn't exist
			cfg := DefaultConfig()
			cfg.path = path
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.Validate()
	cfg.path = path

	return cfg, nil
}

// Save writes the configuration to its file.
func Save(cfg *Config) error {
	path := cfg.path
	if path == "" {
		p, err := ConfigPath()
		if err != nil {
			return err
		}
		path = p
	}
	return SaveTo(cfg, path)
}

// SaveTo writes the configuration to path.
func SaveTo(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Write with restricted permissions (owner read/write only)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
