package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
	"gramkit/ngram"
)

// Config holds all configuration for the gramkit tool.
type Config struct {
	Clean   ngram.CleanOptions `yaml:"clean"`
	NGram   NGramConfig        `yaml:"ngram"`
	Index   IndexConfig        `yaml:"index"`
	Report  ReportConfig       `yaml:"report"`
	Logging LoggingConfig      `yaml:"logging"`
}

// NGramConfig holds tokenization and n-gram configuration.
type NGramConfig struct {
	Sizes      []int `yaml:"sizes"`
	WindowSize int   `yaml:"window_size"` // tokens per indexed chunk
	WindowStep int   `yaml:"window_step"` // tokens between chunk starts
	Stopwords  bool  `yaml:"stopwords"`   // drop common English words before counting
}

// IndexConfig holds file selection configuration.
type IndexConfig struct {
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`
}

// ReportConfig holds frequency report configuration.
type ReportConfig struct {
	TopK     int    `yaml:"top_k"`
	MinCount int    `yaml:"min_count"`
	Output   string `yaml:"output"` // "text" or "json"
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "console" or "json"
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Clean: ngram.DefaultCleanOptions(),
		NGram: NGramConfig{
			Sizes:      []int{1, 2, 3},
			WindowSize: 512,
			WindowStep: 512,
			Stopwords:  false,
		},
		Index: IndexConfig{
			Includes: []string{"**/*.txt", "**/*.md"},
			Excludes: []string{"**/.git/**", "**/.gramkit/**", "**/node_modules/**", "**/vendor/**"},
		},
		Report: ReportConfig{
			TopK:     20,
			MinCount: 1,
			Output:   "text",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate checks that the configuration values are usable.
func (c *Config) Validate() error {
	if len(c.NGram.Sizes) == 0 {
		return fmt.Errorf("ngram.sizes must list at least one size")
	}
	for _, n := range c.NGram.Sizes {
		if n < 1 {
			return fmt.Errorf("ngram.sizes: size must be at least 1, got %d", n)
		}
	}
	if c.NGram.WindowSize < 1 {
		return fmt.Errorf("ngram.window_size must be at least 1, got %d", c.NGram.WindowSize)
	}
	if c.NGram.WindowStep < 1 {
		return fmt.Errorf("ngram.window_step must be at least 1, got %d", c.NGram.WindowStep)
	}
	if c.Report.TopK < 1 {
		return fmt.Errorf("report.top_k must be at least 1, got %d", c.Report.TopK)
	}
	switch c.Report.Output {
	case "text", "json":
	default:
		return fmt.Errorf("report.output must be \"text\" or \"json\", got %q", c.Report.Output)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be \"console\" or \"json\", got %q", c.Logging.Format)
	}
	return nil
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for gramkit.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "gramkit.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".gramkit", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// IndexDBPath returns the path to the n-gram index database.
func IndexDBPath(dir string) string {
	return filepath.Join(dir, ".gramkit", "index.db")
}

// EnsureDataDir ensures the .gramkit directory exists.
func EnsureDataDir(dir string) error {
	return os.MkdirAll(filepath.Join(dir, ".gramkit"), 0755)
}
