package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/XJIeI5/infixcalc/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	cfg, err := Decode(strings.NewReader(`
server:
  port: 9090
  workers: 2
storage:
  dsn: calc.db
tokenizer_mode: chars
log_level: debug
`))
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 2, cfg.Server.Workers)
	assert.Equal(t, 64, cfg.Server.QueueSize)
	assert.Equal(t, "http://localhost", cfg.Server.Host)
	assert.Equal(t, "calc.db", cfg.Storage.DSN)
	assert.Equal(t, token.ModeChars, cfg.Tokenizer)
	assert.NoError(t, cfg.Validate())
}

func TestDecodeEmpty(t *testing.T) {
	cfg, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	_, err := Decode(strings.NewReader("colour: blue\n"))
	assert.Error(t, err)
}

func TestDecodeRejectsBadMode(t *testing.T) {
	_, err := Decode(strings.NewReader("tokenizer_mode: words\n"))
	assert.Error(t, err)
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 7000\n"), 0o600))

	t.Setenv("CALC_WORKERS", "8")
	t.Setenv("CALC_DB", "env.db")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, 8, cfg.Server.Workers)
	assert.Equal(t, "env.db", cfg.Storage.DSN)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 7000\n"), 0o600))
	t.Setenv("CALC_PORT", "7001")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7001, cfg.Server.Port)
}

func TestLoadInvalidEnv(t *testing.T) {
	t.Setenv("CALC_PORT", "eighty")
	_, err := Load("")
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"port too low", func(c *Config) { c.Server.Port = 0 }},
		{"port too high", func(c *Config) { c.Server.Port = 65536 }},
		{"no workers", func(c *Config) { c.Server.Workers = 0 }},
		{"no queue", func(c *Config) { c.Server.QueueSize = 0 }},
		{"empty dsn", func(c *Config) { c.Storage.DSN = "" }},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	level, err = ParseLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)
}
