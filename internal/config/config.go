// Package config loads tracker configuration from an optional YAML file
// and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents application configuration.
type Config struct {
	Data   DataConfig   `mapstructure:"data"`
	Log    LogConfig    `mapstructure:"log"`
	Output OutputConfig `mapstructure:"output"`
}

// DataConfig locates the per-year log files.
type DataConfig struct {
	Dir string `mapstructure:"dir"`
}

// LogConfig configures the operational (zap) logger. When File is empty
// logs go to the console at the given level.
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// OutputConfig controls terminal rendering.
type OutputConfig struct {
	Color string `mapstructure:"color"` // "auto", "always" or "never"
}

// Load reads configuration from the given file, or from the default
// search path when configPath is empty. A missing config file is fine;
// defaults and environment variables still apply. SEAT_TRACKER_DATA_DIR
// overrides data.dir.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("data.dir", defaultDataDir())
	v.SetDefault("log.level", "info")
	v.SetDefault("output.color", "auto")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.seat-tracker")
	}

	v.SetEnvPrefix("SEAT_TRACKER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("data.dir", "SEAT_TRACKER_DATA_DIR"); err != nil {
		return nil, fmt.Errorf("failed to bind env var: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		// An explicitly named config file must exist; the default
		// search path is allowed to come up empty.
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	config.Data.Dir = os.ExpandEnv(config.Data.Dir)
	return &config, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Data.Dir == "" {
		return fmt.Errorf("data.dir is required")
	}
	switch c.Output.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("output.color must be 'auto', 'always' or 'never', got '%s'", c.Output.Color)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be 'debug', 'info', 'warn' or 'error', got '%s'", c.Log.Level)
	}
	return nil
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "data"
	}
	return filepath.Join(home, ".seat-tracker", "data")
}
