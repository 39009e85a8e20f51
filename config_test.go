package aoc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"), 2022)
	require.NoError(t, err)
	require.Equal(t, 2022, cfg.Year)
	require.Equal(t, ".", cfg.InputDir)
	require.Equal(t, 2, cfg.FetchConcurrency)
	require.NoError(t, cfg.Validate())
	require.Equal(t, filepath.Join("2022", "journal.yaml"), cfg.Journal())
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
input_dir: /tmp/aoc
log_level: debug
offline: true
fetch_concurrency: 4
journal_path: /tmp/answers.yaml
`), 0600))
	t.Setenv("AOC_SESSION_FILE", "/run/secrets/aoc")

	cfg, err := LoadConfig(path, 2022)
	require.NoError(t, err)
	require.Equal(t, "/tmp/aoc", cfg.InputDir)
	require.Equal(t, "debug", cfg.LogLevel)
	require.True(t, cfg.Offline)
	require.Equal(t, 4, cfg.FetchConcurrency)
	require.Equal(t, "/run/secrets/aoc", cfg.SessionFile)
	require.Equal(t, "/tmp/answers.yaml", cfg.Journal())
	require.Equal(t, filepath.Join("/tmp/aoc", "2022"), cfg.YearDir())
}

func TestConfigSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	cfg := DefaultConfig(2022)
	cfg.InputDir = "inputs"
	require.NoError(t, cfg.Save(path))

	got, err := LoadConfig(path, 2022)
	require.NoError(t, err)
	require.Equal(t, "inputs", got.InputDir)
}

func TestLoadConfigBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("year: [nope"), 0600))
	_, err := LoadConfig(path, 2022)
	require.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"old year", func(c *Config) { c.Year = 2014 }},
		{"no concurrency", func(c *Config) { c.FetchConcurrency = 0 }},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig(2022)
			tt.mutate(cfg)
			require.Error(t, cfg.Validate())
		})
	}
}
