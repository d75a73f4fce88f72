package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ssargent/avrotool/pkg/codec"
	"github.com/ssargent/avrotool/pkg/container"
)

// Output formats for decoded records.
const (
	FormatLines = "lines"
	FormatJSON  = "json"
)

// Config represents the avrotool configuration for one run
type Config struct {
	Output  Output  `yaml:"output"`
	Writer  Writer  `yaml:"writer"`
	Logging Logging `yaml:"logging"`
	Metrics Metrics `yaml:"metrics"`
}

// Output controls how records are printed by read
type Output struct {
	Separator string `yaml:"separator"`
	Format    string `yaml:"format"`
	Count     uint64 `yaml:"count"` // 0 prints every record
}

// Writer controls how object container files are written
type Writer struct {
	Codec       string `yaml:"codec"`
	RunMetadata bool   `yaml:"run_metadata"`
}

// Logging contains logging configuration
type Logging struct {
	Level string `yaml:"level"`
	Debug bool   `yaml:"debug"`
}

// Metrics contains metrics export configuration
type Metrics struct {
	Textfile string `yaml:"textfile"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Output: Output{
			Separator: codec.DefaultSeparator,
			Format:    FormatLines,
		},
		Writer: Writer{
			Codec:       container.CompressionNull,
			RunMetadata: true,
		},
		Logging: Logging{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from the specified path. Keys missing from
// the file keep their default values.
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	if !filepath.IsAbs(configPath) {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		configPath = absPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// LoadOrDefault loads configPath when it is set. With an empty path the
// default location is tried, and a missing default file yields DefaultConfig.
func LoadOrDefault(configPath string) (*Config, error) {
	if configPath != "" {
		return LoadConfig(configPath)
	}

	defaultPath := GetDefaultConfigPath()
	if _, err := os.Stat(defaultPath); errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return LoadConfig(defaultPath)
}

// SaveConfig saves the configuration to the specified path with secure permissions
func SaveConfig(config *Config, configPath string) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks enumerated values
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatLines, FormatJSON:
	default:
		return fmt.Errorf("invalid output format %q (want %s or %s)", c.Output.Format, FormatLines, FormatJSON)
	}

	if !container.ValidCompression(c.Writer.Codec) {
		return fmt.Errorf("invalid writer codec %q", c.Writer.Codec)
	}

	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// LogLevel returns the slog level for the configuration. Debug overrides Level.
func (c *Config) LogLevel() (slog.Level, error) {
	if c.Logging.Debug {
		return slog.LevelDebug, nil
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.Logging.Level))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", c.Logging.Level, err)
	}
	return level, nil
}

// GetDefaultConfigPath returns the default configuration path for the current platform
func GetDefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./avrotool.yaml"
	}

	// For Linux/macOS, use ~/.config/avrotool/config.yaml
	configDir := filepath.Join(homeDir, ".config", "avrotool")
	return filepath.Join(configDir, "config.yaml")
}

// ConfigExists checks if a configuration file exists
func ConfigExists(configPath string) bool {
	_, err := os.Stat(configPath)
	return !os.IsNotExist(err)
}
