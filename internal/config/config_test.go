package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustLoad(t *testing.T) {
	t.Run("Missing file falls back to the defaults", func(t *testing.T) {
		// Given: a path that does not exist
		path := filepath.Join(t.TempDir(), "config.yml")

		// When: loading the configuration
		conf := MustLoad(path)

		// Then: the defaults apply
		require.NotNil(t, conf)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, "", conf.LogFile)
	})

	t.Run("Values come from the config file when it exists", func(t *testing.T) {
		// Given: a config file with both values set
		path := filepath.Join(t.TempDir(), "config.yml")
		content := "log-level: debug\nlog-file: game.log\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		// When: loading the configuration
		conf := MustLoad(path)

		// Then: the file values apply
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "game.log", conf.LogFile)
	})

	t.Run("Environment overrides the config file", func(t *testing.T) {
		// Given: a config file and an environment variable for the level
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("log-level: info\n"), 0o644))
		t.Setenv("LOG_LEVEL", "debug")

		// When: loading the configuration
		conf := MustLoad(path)

		// Then: the environment wins
		assert.Equal(t, "debug", conf.LogLevel)
	})

	t.Run("Environment applies without a config file", func(t *testing.T) {
		// Given: no config file and an environment variable for the log file
		path := filepath.Join(t.TempDir(), "config.yml")
		t.Setenv("LOG_FILE", "game.log")

		// When: loading the configuration
		conf := MustLoad(path)

		// Then: the environment value applies on top of the defaults
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, "game.log", conf.LogFile)
	})
}
