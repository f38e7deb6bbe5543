package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/XJIeI5/infixcalc/internal/token"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig  `yaml:"server"`
	Storage   StorageConfig `yaml:"storage"`
	Tokenizer token.Mode    `yaml:"tokenizer_mode"`
	LogLevel  string        `yaml:"log_level"`
}

type ServerConfig struct {
	Host      string `yaml:"host"`
	Port      int    `yaml:"port"`
	Workers   int    `yaml:"workers"`
	QueueSize int    `yaml:"queue_size"`
}

type StorageConfig struct {
	DSN string `yaml:"dsn"`
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:      "http://localhost",
			Port:      8080,
			Workers:   4,
			QueueSize: 64,
		},
		Storage:   StorageConfig{DSN: "store.db"},
		Tokenizer: token.ModeRuns,
		LogLevel:  "info",
	}
}

// Load builds the configuration from defaults, the YAML file at path (if
// any), a .env file (if present) and CALC_* environment variables, in that
// order of precedence.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open config: %w", err)
		}
		defer f.Close()
		if err := cfg.decode(f); err != nil {
			return nil, fmt.Errorf("decode config %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil {
		slog.Debug("Skipping .env ...", "error", err)
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Decode reads YAML from r on top of the defaults.
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()
	if err := cfg.decode(r); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decode(r io.Reader) error {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("CALC_HOST"); v != "" {
		c.Server.Host = v
	}
	if v := os.Getenv("CALC_DB"); v != "" {
		c.Storage.DSN = v
	}
	if v := os.Getenv("CALC_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("CALC_TOKENIZER_MODE"); v != "" {
		mode, err := token.ParseMode(v)
		if err != nil {
			return err
		}
		c.Tokenizer = mode
	}

	ints := []struct {
		env string
		dst *int
	}{
		{"CALC_PORT", &c.Server.Port},
		{"CALC_WORKERS", &c.Server.Workers},
		{"CALC_QUEUE_SIZE", &c.Server.QueueSize},
	}
	for _, i := range ints {
		v := os.Getenv(i.env)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s must be a number: %w", i.env, err)
		}
		*i.dst = n
	}
	return nil
}

func (c *Config) Validate() error {
	if err := validatePort(c.Server.Port); err != nil {
		return fmt.Errorf("invalid port: %w", err)
	}
	if c.Server.Workers < 1 {
		return errors.New("workers must be at least 1")
	}
	if c.Server.QueueSize < 1 {
		return errors.New("queue_size must be at least 1")
	}
	if c.Storage.DSN == "" {
		return errors.New("storage dsn must not be empty")
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

func validatePort(port int) error {
	if port < 1 || port > 65535 {
		return errors.New("port must be between 1 and 65535")
	}
	return nil
}

func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return level, fmt.Errorf("invalid log level: %q", s)
	}
	return level, nil
}

// Logger returns a text logger writing to w at the configured level.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	level, err := ParseLevel(c.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
