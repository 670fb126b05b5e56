package config

import (
	"fmt"
	"os"

	cerrors "cloudeng.io/errors"
	"gopkg.in/yaml.v3"

	"github.com/gyeh/occload/internal/model"
	"github.com/gyeh/occload/internal/normalize"
)

// Config holds all runtime configuration for an occload run.
type Config struct {
	DSN         string
	FilePath    string
	LogFormat   string // "text" or "json"
	LogLevel    string
	Force       bool
	KeepStaging bool
	SampleSize  int64                  // rows examined by plan; 0 means all
	Dates       []normalize.DateFields `yaml:"dates"` // date fields to split into year/month/day
}

// yamlConfig is the on-disk YAML structure.
type yamlConfig struct {
	Dates []normalize.DateFields `yaml:"dates"`
}

// LoadFromFile reads a YAML config file and merges its values into Config.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	c.Dates = yc.Dates
	return c.validateDates()
}

// validateDates checks that every date field set names a known input term
// and a complete, non-overlapping set of output fields.
// If Dates is empty, it defaults to the eventDate field set.
func (c *Config) validateDates() error {
	if len(c.Dates) == 0 {
		c.Dates = []normalize.DateFields{normalize.DefaultDateFields()}
		return nil
	}
	var errs cerrors.M
	seen := make(map[string]bool)
	for i, fs := range c.Dates {
		if _, ok := model.TermByName(fs.Date); !ok {
			errs.Append(fmt.Errorf("dates[%d]: unknown input term %q", i, fs.Date))
		}
		for _, out := range []string{fs.Year, fs.Month, fs.Day} {
			if out == "" {
				errs.Append(fmt.Errorf("dates[%d]: year, month and day are all required", i))
				break
			}
			if seen[out] {
				errs.Append(fmt.Errorf("dates[%d]: output field %q written twice", i, out))
			}
			seen[out] = true
		}
	}
	return errs.Err()
}

// DateFieldColumns returns the parquet columns holding the configured date
// inputs.
func (c *Config) DateFieldColumns() []string {
	var cols []string
	for _, fs := range c.Dates {
		if t, ok := model.TermByName(fs.Date); ok {
			cols = append(cols, t.Column)
		}
	}
	return cols
}

// Validate checks required fields and returns an error if the config is invalid.
func (c *Config) Validate() error {
	var errs cerrors.M
	if c.FilePath == "" {
		errs.Append(fmt.Errorf("--file is required"))
	} else if _, err := os.Stat(c.FilePath); err != nil {
		errs.Append(fmt.Errorf("file not accessible: %w", err))
	}
	if c.SampleSize < 0 {
		errs.Append(fmt.Errorf("--sample must not be negative"))
	}
	errs.Append(c.validateDates())
	return errs.Err()
}

// ValidateWithDSN checks both file and DSN fields.
func (c *Config) ValidateWithDSN() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.DSN == "" {
		return fmt.Errorf("--dsn or OCCLOAD_DB_URL is required")
	}
	return nil
}
