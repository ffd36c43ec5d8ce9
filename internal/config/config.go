//-------------------------------------------------------------------------
//
// ShopMetrics ReviewPipe
//
// Portions copyright (c) 2025 - 2026, ShopMetrics, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package config handles configuration management for reviewpipe.
// Configuration is loaded from config files and CLI flags (no environment
// variables). CLI flags take precedence over config file values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all configuration for reviewpipe.
type Config struct {
	// Connection is the PostgreSQL connection string.
	Connection string `mapstructure:"connection"`

	// LogLevel controls logging verbosity (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level"`

	// Source holds configuration for the raw input file.
	Source SourceConfig `mapstructure:"source"`

	// Target holds the warehouse schema names.
	Target TargetConfig `mapstructure:"target"`

	// Report holds configuration for the report subcommand.
	Report ReportConfig `mapstructure:"report"`

	// Sample holds configuration for the sample subcommand.
	Sample SampleConfig `mapstructure:"sample"`
}

// SourceConfig describes the raw CSV input file.
type SourceConfig struct {
	// Path is the location of the raw product/review CSV file.
	Path string `mapstructure:"path"`
}

// TargetConfig holds the warehouse schema names. The pipeline owns both
// schemas exclusively and rebuilds their tables wholesale on every run.
type TargetConfig struct {
	// StagingSchema receives the raw, untyped staging table.
	StagingSchema string `mapstructure:"staging_schema"`

	// AnalyticsSchema receives dim_product and fact_review.
	AnalyticsSchema string `mapstructure:"analytics_schema"`
}

// ReportConfig holds configuration for the reporting queries.
type ReportConfig struct {
	// Limit is the N in top-N.
	Limit int `mapstructure:"limit"`

	// ReviewerOrder is the sort direction for the top-reviewers query
	// ("asc" or "desc"). The source workload sorted ascending while
	// calling itself "top reviewers"; the default preserves that and a
	// warning is logged when it is used.
	ReviewerOrder string `mapstructure:"reviewer_order"`
}

// SampleConfig holds configuration for synthetic fixture generation.
type SampleConfig struct {
	// Rows is the number of raw rows to generate.
	Rows int `mapstructure:"rows"`

	// Seed makes generation reproducible when non-zero.
	Seed uint64 `mapstructure:"seed"`

	// DirtyFraction is the approximate fraction of rows generated with
	// data-quality defects (missing counts, mismatched review arrays,
	// duplicate product ids).
	DirtyFraction float64 `mapstructure:"dirty_fraction"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Target: TargetConfig{
			StagingSchema:   "staging",
			AnalyticsSchema: "analytics",
		},
		Report: ReportConfig{
			Limit:         5,
			ReviewerOrder: "asc",
		},
		Sample: SampleConfig{
			Rows:          1000,
			DirtyFraction: 0.05,
		},
	}
}

// Load reads configuration from config files.
// Config file locations (in order of precedence):
// 1. Path specified by configFile parameter
// 2. ./reviewpipe.yaml
// 3. ~/.config/reviewpipe/config.yaml
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("reviewpipe")
	v.SetConfigType("yaml")

	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "reviewpipe"))
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	}

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := DefaultConfig()

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.Connection == "" {
		return fmt.Errorf("connection string is required")
	}
	if c.Target.StagingSchema == "" {
		return fmt.Errorf("staging schema name is required")
	}
	if c.Target.AnalyticsSchema == "" {
		return fmt.Errorf("analytics schema name is required")
	}
	return nil
}

// ValidateRun checks configuration required for the run command.
func (c *Config) ValidateRun() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Source.Path == "" {
		return fmt.Errorf("source path is required for run")
	}
	return nil
}

// ValidateReport checks configuration required for the report command.
func (c *Config) ValidateReport() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Report.Limit < 1 {
		return fmt.Errorf("report limit must be at least 1")
	}
	if c.Report.ReviewerOrder != "asc" && c.Report.ReviewerOrder != "desc" {
		return fmt.Errorf("reviewer_order must be 'asc' or 'desc'")
	}
	return nil
}

// ValidateSample checks configuration required for the sample command.
// Sample generation writes a local file and needs no connection.
func (c *Config) ValidateSample() error {
	if c.Sample.Rows < 1 {
		return fmt.Errorf("sample rows must be at least 1")
	}
	if c.Sample.DirtyFraction < 0 || c.Sample.DirtyFraction > 1 {
		return fmt.Errorf("dirty_fraction must be between 0 and 1")
	}
	return nil
}
