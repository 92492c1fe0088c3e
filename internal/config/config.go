// Package config loads the patrol CLI configuration from YAML.
//
// Every key is optional; missing keys keep their defaults:
//
//	workers: 0          # concurrent simulations in the search, 0 = GOMAXPROCS
//	max_steps: 0        # per-run step ceiling, 0 = derived from grid size
//	color: true         # colour rendered maps
//	log:
//	  level: warn       # trace, debug, info, warn, error
//	  format: console   # console or json
//
// ${VAR} and ${VAR:-default} references are expanded from the environment
// before parsing.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/patrol/internal/logging"
)

var (
	// ErrConfigNotFound indicates the config file does not exist.
	ErrConfigNotFound = errors.New("config: file not found")
	// ErrInvalidConfig indicates a malformed or out-of-range config.
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config is the CLI configuration.
type Config struct {
	Workers  int       `yaml:"workers"`
	MaxSteps int       `yaml:"max_steps"`
	Color    bool      `yaml:"color"`
	Log      LogConfig `yaml:"log"`
}

// LogConfig selects the logger level and format.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the built-in configuration.
func Default() Config {
	d := logging.DefaultConfig()
	return Config{
		Workers:  0,
		MaxSteps: 0,
		Color:    true,
		Log:      LogConfig{Level: d.Level, Format: d.Format},
	}
}

// LoadFile loads configuration from a file path.
func LoadFile(path string) (Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return Config{}, fmt.Errorf("config: access %s: %w", path, err)
	}
	if info.IsDir() {
		return Config{}, fmt.Errorf("%w: %s is a directory", ErrInvalidConfig, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	return Load(f)
}

// Load reads YAML from r on top of Default and validates the result.
func Load(r io.Reader) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, fmt.Errorf("config: read: %w", err)
	}
	data = []byte(os.Expand(string(data), expandVar))

	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// expandVar resolves NAME and NAME:-default.
func expandVar(ref string) string {
	name, def, hasDef := strings.Cut(ref, ":-")
	if v, ok := os.LookupEnv(name); ok && v != "" {
		return v
	}
	if hasDef {
		return def
	}
	return ""
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0, got %d", ErrInvalidConfig, c.Workers)
	}
	if c.MaxSteps < 0 {
		return fmt.Errorf("%w: max_steps must be >= 0, got %d", ErrInvalidConfig, c.MaxSteps)
	}
	if !logging.ValidLevel(c.Log.Level) {
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.Log.Level)
	}
	if c.Log.Format != "console" && c.Log.Format != "json" {
		return fmt.Errorf("%w: unknown log format %q", ErrInvalidConfig, c.Log.Format)
	}
	return nil
}

// Logging converts the log section for the logging package.
func (c Config) Logging(out io.Writer) logging.Config {
	return logging.Config{Level: c.Log.Level, Format: c.Log.Format, Output: out}
}
