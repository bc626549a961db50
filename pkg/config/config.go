package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Storage
	DataDir      string `yaml:"data_dir"`
	AssetsFile   string `yaml:"assets_file"`
	AccountsFile string `yaml:"accounts_file"`
	ActivityLog  string `yaml:"activity_log"`

	// Authentication
	RequireLogin bool   `yaml:"require_login"`
	DefaultUser  string `yaml:"default_user"`

	// UI Settings
	ColorTheme    string `yaml:"color_theme"`
	ConfirmDelete bool   `yaml:"confirm_delete"`
	DefaultAction string `yaml:"default_action"`

	// Report
	ReportTitle string `yaml:"report_title"`

	// Watch
	WatchDebounceMS int `yaml:"watch_debounce_ms"`
}

// DefaultConfig returns a Config struct with default values
func DefaultConfig() *Config {
	return &Config{
		DataDir:         "",
		AssetsFile:      "assets.csv",
		AccountsFile:    "accounts.csv",
		ActivityLog:     "activity.log",
		RequireLogin:    true,
		DefaultUser:     "",
		ColorTheme:      "auto",
		ConfirmDelete:   true,
		DefaultAction:   "menu",
		ReportTitle:     "Asset Inventory",
		WatchDebounceMS: 300,
	}
}

// Load reads configuration from the specified file path
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		// If file doesn't exist, return default config (not an error)
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply defaults for essential values if missing
	if cfg.AssetsFile == "" {
		cfg.AssetsFile = "assets.csv"
	}
	if cfg.AccountsFile == "" {
		cfg.AccountsFile = "accounts.csv"
	}
	if cfg.ActivityLog == "" {
		cfg.ActivityLog = "activity.log"
	}
	if cfg.ReportTitle == "" {
		cfg.ReportTitle = "Asset Inventory"
	}
	if cfg.WatchDebounceMS <= 0 {
		cfg.WatchDebounceMS = 300
	}

	if !isValidDefaultAction(cfg.DefaultAction) {
		cfg.DefaultAction = "menu"
	}

	return cfg, nil
}

// Save persists the current configuration to the specified file path
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// isValidDefaultAction checks what the bare `ams` command may run
func isValidDefaultAction(action string) bool {
	validActions := []string{"menu", "list", "browse"}
	for _, valid := range validActions {
		if action == valid {
			return true
		}
	}
	return false
}
