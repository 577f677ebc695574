package config

import (
	"fmt"
	"strings"

	"github.com/IvanShishkin/finder/pkg/models"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables read by LoadConfig
const EnvPrefix = "FINDER"

// Config represents the finder configuration
type Config struct {
	// Search settings
	Pattern       string   `mapstructure:"pattern"`        // glob/regex name pattern
	Dir           string   `mapstructure:"dir"`            // root directory
	ContentSearch bool     `mapstructure:"content_search"` // also match file contents
	Exclude       []string `mapstructure:"exclude"`        // doublestar patterns to skip

	// Output settings
	Date          bool                `mapstructure:"date"`           // show modification date
	Size          bool                `mapstructure:"size"`           // show size
	HumanReadable bool                `mapstructure:"human_readable"` // binary unit suffixes
	Sort          models.SortKey      `mapstructure:"sort"`           // name, size, date or empty
	Format        models.OutputFormat `mapstructure:"format"`         // text, json, yaml

	Verbose bool `mapstructure:"verbose"` // development logging
}

// LoadConfig loads configuration from environment variables and defaults
func LoadConfig() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("dir", ".")
	v.SetDefault("content_search", false)
	v.SetDefault("exclude", []string{})
	v.SetDefault("date", false)
	v.SetDefault("size", false)
	v.SetDefault("human_readable", false)
	v.SetDefault("sort", "")
	v.SetDefault("format", string(models.FormatText))
	v.SetDefault("verbose", false)

	// Read environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks values that must be rejected before any traversal
func (c *Config) Validate() error {
	if !c.Sort.IsValid() {
		return &InvalidSortKeyError{Value: string(c.Sort)}
	}

	if !c.Format.IsValid() {
		return &ValidationError{
			Field:  "format",
			Reason: fmt.Sprintf("must be one of: %s (got: %s)", joinFormats(), c.Format),
		}
	}

	for _, glob := range c.Exclude {
		if !doublestar.ValidatePattern(glob) {
			return &ValidationError{
				Field:  "exclude",
				Reason: fmt.Sprintf("invalid pattern %q", glob),
			}
		}
	}

	return nil
}

// DisplayOptions returns the per-record rendering switches
func (c *Config) DisplayOptions() models.DisplayOptions {
	return models.DisplayOptions{
		Date:          c.Date,
		Size:          c.Size,
		HumanReadable: c.HumanReadable,
		ContentSearch: c.ContentSearch,
	}
}

func joinSortKeys() string {
	keys := make([]string, len(models.SortKeys))
	for i, k := range models.SortKeys {
		keys[i] = string(k)
	}
	return strings.Join(keys, ", ")
}

func joinFormats() string {
	formats := make([]string, len(models.OutputFormats))
	for i, f := range models.OutputFormats {
		formats[i] = string(f)
	}
	return strings.Join(formats, ", ")
}
