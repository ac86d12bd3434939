// Package config loads the dashboard configuration from flags, environment
// variables (BOOKCLUB_*), an optional .env file and an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvPrefix = "BOOKCLUB"

// Config represents the complete application configuration
type Config struct {
	Workbook WorkbookConfig `mapstructure:"workbook"`
	Server   ServerConfig   `mapstructure:"server"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Charts   ChartsConfig   `mapstructure:"charts"`
}

// WorkbookConfig points at the book list spreadsheet
type WorkbookConfig struct {
	Path  string `mapstructure:"path" validate:"required"`
	Sheet string `mapstructure:"sheet" validate:"required"`
}

type ServerConfig struct {
	Addr    string `mapstructure:"addr" validate:"required,hostname_port"`
	Metrics bool   `mapstructure:"metrics"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error disabled"`
	Format string `mapstructure:"format" validate:"oneof=text json"`
}

// ChartsConfig tunes the decade chart.
type ChartsConfig struct {
	DecadeRunMin  int    `mapstructure:"decade_run_min" validate:"min=1"`
	DecadeFiller  string `mapstructure:"decade_filler" validate:"required"`
	HistogramBins int    `mapstructure:"histogram_bins" validate:"min=1,max=200"`
}

var defaults = map[string]any{
	"workbook.path":         "chitaem_vmeste_files/chitaem_vmeste_book_list.xlsx",
	"workbook.sheet":        "Sheet1",
	"server.addr":           "localhost:8080",
	"server.metrics":        true,
	"logging.level":         "info",
	"logging.format":        "text",
	"charts.decade_run_min": 3,
	"charts.decade_filler":  "...",
	"charts.histogram_bins": 20,
}

// flagKeys maps command line flags to config keys.
var flagKeys = map[string]string{
	"workbook":   "workbook.path",
	"sheet":      "workbook.sheet",
	"addr":       "server.addr",
	"metrics":    "server.metrics",
	"log-level":  "logging.level",
	"log-format": "logging.format",
}

// Load builds the configuration. Precedence: flags, environment, config
// file, defaults. configFile may be empty.
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	// a missing .env is fine
	_ = godotenv.Load()

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %q: %w", name, err)
				}
			}
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("bookclub")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate checks the struct tags.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}
