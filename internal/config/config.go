package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// FilterMode selects how the local list filter matches rows
type FilterMode string

const (
	FilterModeFuzzy     FilterMode = "fuzzy"
	FilterModeLoose     FilterMode = "loose"
	FilterModeSubstring FilterMode = "substring"
)

// Config holds all application configuration
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// APIConfig holds the remote API settings
type APIConfig struct {
	BaseURL   string        `mapstructure:"base_url"`   // API root, e.g. https://swapi.dev/api
	Timeout   time.Duration `mapstructure:"timeout"`    // Transport timeout per request
	UserAgent string        `mapstructure:"user_agent"` // Sent with every request
}

// UIConfig holds UI configuration
type UIConfig struct {
	FilterMode  FilterMode `mapstructure:"filter_mode"`
	ShowDetails bool       `mapstructure:"show_details"` // Open the detail pane beside the list
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:   "https://swapi.dev/api",
			Timeout:   30 * time.Second,
			UserAgent: "Holonet/1.0",
		},
		UI: UIConfig{
			FilterMode:  FilterModeFuzzy,
			ShowDetails: true,
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "holonet", "holonet.log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "holonet", "holonet.log")
	}
}

// DefaultConfigDir returns the default config directory for the current OS
func DefaultConfigDir() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "holonet")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "holonet")
	}
}

// newViper returns a viper instance with defaults and env overrides registered.
// Every key needs a default for AutomaticEnv to pick it up on Unmarshal.
func newViper() *viper.Viper {
	v := viper.New()
	def := DefaultConfig()

	v.SetDefault("api.base_url", def.API.BaseURL)
	v.SetDefault("api.timeout", def.API.Timeout)
	v.SetDefault("api.user_agent", def.API.UserAgent)
	v.SetDefault("ui.filter_mode", string(def.UI.FilterMode))
	v.SetDefault("ui.show_details", def.UI.ShowDetails)
	v.SetDefault("logging.file", def.Logging.File)
	v.SetDefault("logging.level", def.Logging.Level)

	// Environment variable overrides (HOLONET_API_BASE_URL, ...)
	v.SetEnvPrefix("HOLONET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// LoadConfig loads configuration from file and environment.
// An empty path searches the default config directory and the working directory.
func LoadConfig(path string) (*Config, error) {
	v := newViper()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(DefaultConfigDir())
		v.AddConfigPath(".")
	}

	// Read config file if it exists
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !(path != "" && errors.Is(err, os.ErrNotExist)) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that cannot be defaulted silently
func (c *Config) Validate() error {
	if strings.TrimSpace(c.API.BaseURL) == "" {
		return fmt.Errorf("api.base_url is required")
	}
	if c.API.Timeout < 0 {
		return fmt.Errorf("api.timeout must not be negative")
	}
	switch c.UI.FilterMode {
	case FilterModeFuzzy, FilterModeLoose, FilterModeSubstring:
	case "":
		c.UI.FilterMode = FilterModeFuzzy
	default:
		return fmt.Errorf("unknown ui.filter_mode %q (want fuzzy, loose or substring)", c.UI.FilterMode)
	}
	return nil
}

// SaveConfig writes the configuration as YAML. An empty path writes
// config.yaml in the default config directory. Returns the written path.
func SaveConfig(cfg *Config, path string) (string, error) {
	if path == "" {
		path = filepath.Join(DefaultConfigDir(), "config.yaml")
	}

	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()

	// Set fields individually to ensure correct key names (snake_case)
	v.Set("api.base_url", cfg.API.BaseURL)
	v.Set("api.timeout", cfg.API.Timeout.String())
	v.Set("api.user_agent", cfg.API.UserAgent)

	v.Set("ui.filter_mode", string(cfg.UI.FilterMode))
	v.Set("ui.show_details", cfg.UI.ShowDetails)

	v.Set("logging.file", cfg.Logging.File)
	v.Set("logging.level", cfg.Logging.Level)

	v.SetConfigType("yaml")
	if err := v.WriteConfigAs(path); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return path, nil
}
