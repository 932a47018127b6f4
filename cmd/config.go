package cmd

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/viper"

	"github.com/KasperOmsK/lazysort/internal/records"
)

type LogConfig struct {
	// Format is the log format to use: "text" or "json".
	Format string

	// Level is the log level to use: "none", "debug", "info", "warn" or "error".
	Level string
}

// Config holds the settings of the sort command.
type Config struct {
	Limit    int
	Reverse  bool
	Numeric  bool
	NaNFirst bool
	Field    int
	JSONKey  string

	Log LogConfig
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Format: "text",
			Level:  "none",
		},
	}
}

// ReadConfig loads the sort settings bound in v.
func ReadConfig(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Limit:    v.GetInt("limit"),
		Reverse:  v.GetBool("reverse"),
		Numeric:  v.GetBool("numeric"),
		NaNFirst: v.GetBool("nanFirst"),
		Field:    v.GetInt("field"),
		JSONKey:  v.GetString("jsonKey"),
		Log: LogConfig{
			Format: v.GetString("log.format"),
			Level:  v.GetString("log.level"),
		},
	}

	if err := cfg.Verify(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Verify checks the settings for values the command cannot work with.
func (c *Config) Verify() error {
	var errs []error
	if c.Limit < 0 {
		errs = append(errs, fmt.Errorf("limit must not be negative, got %d", c.Limit))
	}
	if c.Field < 0 {
		errs = append(errs, fmt.Errorf("field must not be negative, got %d", c.Field))
	}
	if c.NaNFirst && !c.Numeric {
		errs = append(errs, errors.New("nan-first requires numeric"))
	}
	if !slices.Contains([]string{"text", "json"}, c.Log.Format) {
		errs = append(errs, fmt.Errorf("unknown log format: %s", c.Log.Format))
	}
	if !slices.Contains([]string{"none", "debug", "info", "warn", "error"}, c.Log.Level) {
		errs = append(errs, fmt.Errorf("unknown log level: %s", c.Log.Level))
	}
	return errors.Join(errs...)
}

// KeyFunc returns the key extraction the settings ask for.
func (c *Config) KeyFunc() records.KeyFunc {
	if c.JSONKey != "" {
		return records.JSONPath(c.JSONKey)
	}
	return records.Field(c.Field)
}

// SortOptions returns the ordering the settings ask for.
func (c *Config) SortOptions() records.Options {
	return records.Options{
		Numeric:  c.Numeric,
		NaNFirst: c.NaNFirst,
		Reverse:  c.Reverse,
	}
}
