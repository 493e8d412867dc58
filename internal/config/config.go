package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config represents application configuration
type Config struct {
	Storage   StorageConfig   `mapstructure:"storage"`
	Greetings GreetingsConfig `mapstructure:"greetings"`
	Daemon    DaemonConfig    `mapstructure:"daemon"`
}

// StorageConfig represents address book persistence configuration
type StorageConfig struct {
	BookFile string `mapstructure:"book_file"`
}

// GreetingsConfig represents upcoming-birthday report configuration
type GreetingsConfig struct {
	WindowDays int `mapstructure:"window_days"`
}

// DaemonConfig represents reminder daemon configuration
type DaemonConfig struct {
	DailyTime  string `mapstructure:"daily_time"` // Time to run the daily check (HH:MM, local time)
	LogFile    string `mapstructure:"log_file"`
	LogLevel   string `mapstructure:"log_level"`
	SystemTray bool   `mapstructure:"system_tray"` // Show system tray icon (Windows only)
}

// Load loads configuration from file. When configPath is empty the default
// search paths are tried and a missing file falls back to defaults; an
// explicitly given path that cannot be read is an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("storage.book_file", "addressbook.json")
	v.SetDefault("greetings.window_days", 7)
	v.SetDefault("daemon.daily_time", "09:00")
	v.SetDefault("daemon.log_level", "info")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.contact-bot")
		v.AddConfigPath("/etc/contact-bot")
	}

	// Read environment variables
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// No config file in the search paths - run on defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Storage.BookFile == "" {
		return fmt.Errorf("storage.book_file is required")
	}
	if c.Greetings.WindowDays < 0 {
		return fmt.Errorf("greetings.window_days must not be negative")
	}
	if _, _, err := parseDailyTime(c.Daemon.DailyTime); err != nil {
		return fmt.Errorf("daemon.daily_time: %w", err)
	}
	return nil
}

// GetDailyTime returns the configured daily check time.
// Returns hour and minute (0-23, 0-59). Default: 09:00
func (c *DaemonConfig) GetDailyTime() (hour, minute int) {
	h, m, err := parseDailyTime(c.DailyTime)
	if err != nil {
		return 9, 0 // Fallback to default
	}
	return h, m
}

func parseDailyTime(s string) (hour, minute int, err error) {
	if s == "" {
		return 9, 0, nil
	}

	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, 0, fmt.Errorf("must be HH:MM, got %q", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, 0, fmt.Errorf("must be HH:MM, got %q", s)
	}
	return h, m, nil
}
