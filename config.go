package aoc

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config holds the settings shared by every command. Flags override values
// loaded from the config file.
type Config struct {
	Year             int    `yaml:"year"`
	InputDir         string `yaml:"input_dir"`
	SessionFile      string `yaml:"session_file"`
	JournalPath      string `yaml:"journal_path"`
	LogLevel         string `yaml:"log_level"`
	Offline          bool   `yaml:"offline"`
	FetchConcurrency int    `yaml:"fetch_concurrency"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig(year int) *Config {
	return &Config{
		Year:             year,
		InputDir:         ".",
		SessionFile:      filepath.Join(os.Getenv("HOME"), "keys", "aoc.session"),
		LogLevel:         "info",
		FetchConcurrency: 2,
	}
}

// DefaultConfigPath is where LoadConfig looks when no path is given.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(dir, "aoc2022", "config.yaml")
}

// LoadConfig reads the YAML file at path on top of DefaultConfig(year). A
// missing file is not an error.
func LoadConfig(path string, year int) (*Config, error) {
	cfg := DefaultConfig(year)
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("reading config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}
	cfg.applyEnvOverrides()
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("AOC_SESSION_FILE"); v != "" {
		c.SessionFile = v
	}
	if v := os.Getenv("AOC_OFFLINE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Offline = b
		}
	}
}

// Save writes c to path as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

func (c *Config) Validate() error {
	if c.Year < 2015 {
		return fmt.Errorf("year %d predates the puzzles", c.Year)
	}
	if c.FetchConcurrency < 1 {
		return fmt.Errorf("fetch_concurrency must be at least 1, got %d", c.FetchConcurrency)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

// YearDir is the directory holding cached inputs for the configured year.
func (c *Config) YearDir() string {
	return filepath.Join(c.InputDir, strconv.Itoa(c.Year))
}

// Journal returns the journal path, defaulting to a file next to the inputs.
func (c *Config) Journal() string {
	if c.JournalPath != "" {
		return c.JournalPath
	}
	return filepath.Join(c.YearDir(), "journal.yaml")
}
