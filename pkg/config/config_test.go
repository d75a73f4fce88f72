package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, " |\t", config.Output.Separator)
	assert.Equal(t, FormatLines, config.Output.Format)
	assert.Zero(t, config.Output.Count)
	assert.Equal(t, "null", config.Writer.Codec)
	assert.True(t, config.Writer.RunMetadata)
	assert.Equal(t, "info", config.Logging.Level)
	assert.False(t, config.Logging.Debug)
	assert.Empty(t, config.Metrics.Textfile)
	assert.NoError(t, config.Validate())
}

func TestLoadConfig(t *testing.T) {
	t.Run("load existing config", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.yaml")
		expectedConfig := &Config{
			Output: Output{
				Separator: ";",
				Format:    FormatJSON,
				Count:     10,
			},
			Writer: Writer{
				Codec:       "deflate",
				RunMetadata: false,
			},
			Logging: Logging{
				Level: "debug",
			},
			Metrics: Metrics{
				Textfile: "/var/lib/node_exporter/avrotool.prom",
			},
		}

		err := SaveConfig(expectedConfig, configPath)
		require.NoError(t, err)

		loadedConfig, err := LoadConfig(configPath)
		require.NoError(t, err)
		assert.Equal(t, expectedConfig, loadedConfig)
	})

	t.Run("missing keys keep defaults", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "partial.yaml")
		err := os.WriteFile(configPath, []byte("writer:\n  codec: snappy\n"), 0600)
		require.NoError(t, err)

		loadedConfig, err := LoadConfig(configPath)
		require.NoError(t, err)
		assert.Equal(t, "snappy", loadedConfig.Writer.Codec)
		assert.Equal(t, " |\t", loadedConfig.Output.Separator)
		assert.Equal(t, "info", loadedConfig.Logging.Level)
	})

	t.Run("load non-existent config", func(t *testing.T) {
		_, err := LoadConfig("/non/existent/config.yaml")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "config file does not exist")
	})

	t.Run("load invalid yaml", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "invalid.yaml")
		err := os.WriteFile(configPath, []byte("invalid: yaml: content: ["), 0644)
		require.NoError(t, err)

		_, err = LoadConfig(configPath)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})
}

func TestLoadOrDefault(t *testing.T) {
	t.Run("explicit path", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "config.yaml")
		config := DefaultConfig()
		config.Output.Count = 3
		require.NoError(t, SaveConfig(config, configPath))

		loaded, err := LoadOrDefault(configPath)
		require.NoError(t, err)
		assert.Equal(t, uint64(3), loaded.Output.Count)
	})

	t.Run("explicit path must exist", func(t *testing.T) {
		_, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})

	t.Run("no default file", func(t *testing.T) {
		t.Setenv("HOME", t.TempDir())

		loaded, err := LoadOrDefault("")
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), loaded)
	})
}

func TestSaveConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "config.yaml")
	config := DefaultConfig()

	err := SaveConfig(config, configPath)
	require.NoError(t, err)

	info, err := os.Stat(configPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loadedConfig, err := LoadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, config, loadedConfig)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "json format", mutate: func(c *Config) { c.Output.Format = FormatJSON }},
		{name: "deflate", mutate: func(c *Config) { c.Writer.Codec = "deflate" }},
		{name: "bad format", mutate: func(c *Config) { c.Output.Format = "csv" }, wantErr: "invalid output format"},
		{name: "bad codec", mutate: func(c *Config) { c.Writer.Codec = "lz4" }, wantErr: "invalid writer codec"},
		{name: "bad level", mutate: func(c *Config) { c.Logging.Level = "loud" }, wantErr: "invalid log level"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			config := DefaultConfig()
			tc.mutate(config)

			err := config.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLogLevel(t *testing.T) {
	config := DefaultConfig()

	level, err := config.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)

	config.Logging.Level = "WARN"
	level, err = config.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)

	config.Logging.Debug = true
	level, err = config.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestGetDefaultConfigPath(t *testing.T) {
	path := GetDefaultConfigPath()
	assert.NotEmpty(t, path)
	assert.Contains(t, path, "avrotool")
	assert.Contains(t, path, "config.yaml")
}

func TestConfigExists(t *testing.T) {
	tmpDir := t.TempDir()

	existingPath := filepath.Join(tmpDir, "exists.yaml")
	nonExistentPath := filepath.Join(tmpDir, "does-not-exist.yaml")

	err := os.WriteFile(existingPath, []byte("test"), 0644)
	require.NoError(t, err)

	assert.True(t, ConfigExists(existingPath))
	assert.False(t, ConfigExists(nonExistentPath))
}

func TestConfigYAMLMarshalling(t *testing.T) {
	config := DefaultConfig()
	config.Metrics.Textfile = "metrics.prom"

	data, err := yaml.Marshal(config)
	require.NoError(t, err)

	var unmarshalled Config
	err = yaml.Unmarshal(data, &unmarshalled)
	require.NoError(t, err)

	assert.Equal(t, config, &unmarshalled)
}

func TestSaveConfigErrorHandling(t *testing.T) {
	config := DefaultConfig()

	// A regular file where a directory is expected
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0600))
	invalidPath := filepath.Join(blocker, "sub", "config.yaml")

	err := SaveConfig(config, invalidPath)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create config directory")
}
