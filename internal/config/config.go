// Package config loads analyzer settings using viper.
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config is the analyzer configuration.
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Output OutputConfig `mapstructure:"output"`
	Tables TablesConfig `mapstructure:"tables"`
}

// LogConfig controls logrus output.
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
}

// OutputConfig selects how decoded records are printed.
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// TablesConfig points at an assigned-numbers overlay file.
type TablesConfig struct {
	Path string `mapstructure:"path"`
}

// Load reads the configuration. An empty path yields defaults plus any
// BLEADV_* environment overrides (e.g. BLEADV_LOG_LEVEL).
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("BLEADV")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", FormatText)
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("output.format", FormatText)
	v.SetDefault("tables.path", "")
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if err := checkFormat("log.format", c.Log.Format); err != nil {
		return err
	}
	if err := checkFormat("output.format", c.Output.Format); err != nil {
		return err
	}
	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 {
		return fmt.Errorf("log rotation limits must not be negative")
	}
	return nil
}

func checkFormat(key, value string) error {
	switch value {
	case FormatText, FormatJSON:
		return nil
	default:
		return fmt.Errorf("%s: unsupported format %q", key, value)
	}
}
