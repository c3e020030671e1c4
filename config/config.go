// Package config loads the YAML configuration of the schematic CLI.
// A missing file yields the defaults; environment variables override
// file values; command-line flags override both.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvschematic/schematic"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Environment variables consulted by Load.
const (
	EnvInput    = "SCHEMATIC_INPUT"
	EnvLogLevel = "SCHEMATIC_LOG_LEVEL"
)

// Config holds all schematic CLI configuration.
type Config struct {
	// Input is the schematic file read when no path argument is given.
	Input string `yaml:"input"`

	// Symbol is the gear marker; exactly one ASCII punctuation character.
	Symbol string `yaml:"symbol"`

	// Dedup is "case-table" or "identity".
	Dedup string `yaml:"dedup"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Symbol: string(schematic.DefaultSymbol),
		Dedup:  schematic.DedupCaseTable.String(),
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save writes the configuration to a YAML file, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(EnvInput); v != "" {
		c.Input = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
}

// Validate checks every field that the CLI converts.
func (c *Config) Validate() error {
	if len(c.Symbol) != 1 || !schematic.IsMarker(c.Symbol[0]) {
		return fmt.Errorf("%w: symbol %q must be one punctuation character other than '.'", ErrInvalidConfig, c.Symbol)
	}
	if _, err := schematic.ParseDedup(c.Dedup); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("%w: log format %q (valid: json, console)", ErrInvalidConfig, c.Logging.Format)
	}

	return nil
}

// Level returns the configured zap level.
func (c *Config) Level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.Logging.Level)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return lvl, nil
}

// Options converts the configuration into schematic options routed to logger.
// Call Validate first; invalid fields are reported here too.
func (c *Config) Options(logger *zap.Logger) ([]schematic.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	dedup, _ := schematic.ParseDedup(c.Dedup)

	return []schematic.Option{
		schematic.WithSymbol(c.Symbol[0]),
		schematic.WithDedup(dedup),
		schematic.WithLogger(logger),
	}, nil
}
