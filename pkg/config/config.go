package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the project directory
const FileName = "inlinegen.yaml"

type Config struct {
	DataDir      string `yaml:"data_dir"`
	OutputDir    string `yaml:"output_dir"`
	HeaderName   string `yaml:"header_name"`
	IncludeGuard string `yaml:"include_guard"`
	GeneratorTag string `yaml:"generator_name"`

	// 0 selects min(32, 2*CPU)
	MaxWorkers int `yaml:"max_workers"`

	// Doublestar globs matched against asset paths relative to data_dir
	Exclude []string `yaml:"exclude"`

	// Host targets for which generation is skipped
	SkipTargets []string `yaml:"skip_targets"`

	WatchDebounceMS int `yaml:"watch_debounce_ms"`

	Minifier MinifierConfig `yaml:"minifier"`
}

// MinifierConfig selects and tunes the minification backend
type MinifierConfig struct {
	Backend        string   `yaml:"backend"`
	Runtime        string   `yaml:"runtime"`
	Script         string   `yaml:"script"`
	TimeoutSeconds int      `yaml:"timeout_seconds"`
	Extensions     []string `yaml:"extensions"`
}

// Timeout returns the per-file minifier timeout
func (m MinifierConfig) Timeout() time.Duration {
	return time.Duration(m.TimeoutSeconds) * time.Second
}

// DefaultConfig returns a Config struct with default values
func DefaultConfig() *Config {
	return &Config{
		DataDir:         "data",
		OutputDir:       "inline_data",
		HeaderName:      "data.h",
		IncludeGuard:    "OWIE_GENERATED_DATA_H",
		GeneratorTag:    "inlinegen",
		MaxWorkers:      0,
		Exclude:         []string{},
		SkipTargets:     []string{"idedata"},
		WatchDebounceMS: 500,
		Minifier: MinifierConfig{
			Backend:        "node",
			Runtime:        "node",
			Script:         "./node_modules/minify/bin/minify.js",
			TimeoutSeconds: 30,
			Extensions:     []string{".html", ".js", ".css"},
		},
	}
}

// Load reads configuration from the specified file path
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		// If file doesn't exist, return default config (not an error)
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()

	if cfg.MaxWorkers < 0 {
		return nil, fmt.Errorf("max_workers must not be negative, got %d", cfg.MaxWorkers)
	}

	return cfg, nil
}

// applyDefaults fills essential values left empty by the file
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()

	if c.DataDir == "" {
		c.DataDir = defaults.DataDir
	}
	if c.OutputDir == "" {
		c.OutputDir = defaults.OutputDir
	}
	if c.HeaderName == "" {
		c.HeaderName = defaults.HeaderName
	}
	if c.IncludeGuard == "" {
		c.IncludeGuard = defaults.IncludeGuard
	}
	if c.GeneratorTag == "" {
		c.GeneratorTag = defaults.GeneratorTag
	}
	if c.WatchDebounceMS <= 0 {
		c.WatchDebounceMS = defaults.WatchDebounceMS
	}
	if c.Minifier.Backend == "" {
		c.Minifier.Backend = defaults.Minifier.Backend
	}
	if c.Minifier.Runtime == "" {
		c.Minifier.Runtime = defaults.Minifier.Runtime
	}
	if c.Minifier.Script == "" {
		c.Minifier.Script = defaults.Minifier.Script
	}
	if c.Minifier.TimeoutSeconds <= 0 {
		c.Minifier.TimeoutSeconds = defaults.Minifier.TimeoutSeconds
	}
	if c.Minifier.Extensions == nil {
		c.Minifier.Extensions = defaults.Minifier.Extensions
	}
	if c.Exclude == nil {
		c.Exclude = []string{}
	}
	if c.SkipTargets == nil {
		c.SkipTargets = defaults.SkipTargets
	}
}

// Save persists the current configuration to the specified file path
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// WatchDebounce returns the watch debounce interval
func (c *Config) WatchDebounce() time.Duration {
	return time.Duration(c.WatchDebounceMS) * time.Millisecond
}

// ShouldSkip reports whether any of the host targets is in SkipTargets
func (c *Config) ShouldSkip(targets []string) bool {
	for _, target := range targets {
		for _, skip := range c.SkipTargets {
			if target == skip {
				return true
			}
		}
	}
	return false
}
