// SPDX-License-Identifier: Apache-2.0

// Package config loads the command-line and server configuration.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/goccy/go-yaml"
)

//go:embed config.cue
var configSchema string

// Config holds all settings. Field tags are shared by the YAML decoder and
// the CUE encoder used for validation.
type Config struct {
	Log        LogConfig        `yaml:"log" json:"log"`
	Extraction ExtractionConfig `yaml:"extraction" json:"extraction"`
	Output     OutputConfig     `yaml:"output" json:"output"`
	Cache      CacheConfig      `yaml:"cache" json:"cache"`
}

type LogConfig struct {
	Level      string `yaml:"level" json:"level"`
	File       string `yaml:"file" json:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb" json:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups" json:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days" json:"max_age_days"`
	Compress   bool   `yaml:"compress" json:"compress"`
}

type ExtractionConfig struct {
	// MaxInputBytes rejects larger inputs; zero disables the limit.
	MaxInputBytes int `yaml:"max_input_bytes" json:"max_input_bytes"`
	// Timeout is a Go duration string; empty or "0" disables it.
	Timeout          string   `yaml:"timeout" json:"timeout"`
	BatchConcurrency int      `yaml:"batch_concurrency" json:"batch_concurrency"`
	Categories       []string `yaml:"categories" json:"categories"`
}

// TimeoutDuration parses Timeout.
func (c ExtractionConfig) TimeoutDuration() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid extraction.timeout %q: %w", c.Timeout, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("extraction.timeout must be non-negative, got %s", d)
	}
	return d, nil
}

type OutputConfig struct {
	Format string `yaml:"format" json:"format"`
}

type CacheConfig struct {
	MaxItems int `yaml:"max_items" json:"max_items"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  100,
			MaxBackups: 3,
			MaxAgeDays: 28,
			Compress:   true,
		},
		Extraction: ExtractionConfig{
			MaxInputBytes:    10 << 20,
			Timeout:          "30s",
			BatchConcurrency: 4,
		},
		Output: OutputConfig{Format: "text"},
		Cache:  CacheConfig{MaxItems: 256},
	}
}

// Load builds the configuration from defaults, the config file and the
// environment, in that order, and validates the result. An empty path selects
// the default location, which may be absent; an explicit path must exist.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
	}
	if path != "" {
		err := loadFromFile(cfg, path)
		switch {
		case err == nil:
		case errors.Is(err, os.ErrNotExist) && !explicit:
		default:
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if err := loadFromEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// defaultConfigPath returns the config file path
func defaultConfigPath() string {
	if path := os.Getenv("EXTRACT_CONFIG"); path != "" {
		return path
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "extract-mcp", "config.yaml")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "extract-mcp", "config.yaml")
	}
	return ""
}

func loadFromFile(cfg *Config, path string) error {
	// #nosec G304 - path comes from a flag, env var or the standard location
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.UnmarshalWithOptions(data, cfg, yaml.DisallowUnknownField()); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func loadFromEnv(cfg *Config) error {
	if level := os.Getenv("EXTRACT_LOG_LEVEL"); level != "" {
		cfg.Log.Level = strings.ToLower(level)
	}
	if file := os.Getenv("EXTRACT_LOG_FILE"); file != "" {
		cfg.Log.File = file
	}
	if v := os.Getenv("EXTRACT_MAX_INPUT_BYTES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid EXTRACT_MAX_INPUT_BYTES: %w", err)
		}
		cfg.Extraction.MaxInputBytes = n
	}
	if v := os.Getenv("EXTRACT_TIMEOUT"); v != "" {
		cfg.Extraction.Timeout = v
	}
	if v := os.Getenv("EXTRACT_BATCH_CONCURRENCY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid EXTRACT_BATCH_CONCURRENCY: %w", err)
		}
		cfg.Extraction.BatchConcurrency = n
	}
	if format := os.Getenv("EXTRACT_FORMAT"); format != "" {
		cfg.Output.Format = strings.ToLower(format)
	}
	return nil
}

// Validate checks cfg against the embedded CUE schema.
func Validate(cfg *Config) error {
	cctx := cuecontext.New()
	schema := cctx.CompileString(configSchema, cue.Filename("config.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("failed to compile config schema: %w", err)
	}

	// A nil slice would encode as null, which the list constraint rejects.
	normalized := *cfg
	if normalized.Extraction.Categories == nil {
		normalized.Extraction.Categories = []string{}
	}
	value := cctx.Encode(normalized)
	if err := value.Err(); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	def := schema.LookupPath(cue.ParsePath("#Config"))
	if err := def.Unify(value).Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if _, err := cfg.Extraction.TimeoutDuration(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
