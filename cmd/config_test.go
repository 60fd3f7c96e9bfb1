package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"commentheader.dev/pkg/commentheader/internal/adapter"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "comment-header", configBaseName)
	assert.Equal(t, "comment-header.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "path", pathFlagName)
	assert.Equal(t, "license", licenseFlagName)
	assert.Equal(t, "vcs.binary", vcsBinaryKey)
	assert.Equal(t, "COMMENT_HEADER", envPrefix)
	assert.Equal(t, ".comment-header.log", defaultLogFilename)
}

func TestConfigDefaults(t *testing.T) {
	assert.Equal(t, adapter.DefaultVCSBinary, viper.GetString(vcsBinaryKey))
	assert.Equal(t, defaultLogMaxSize, viper.GetInt(logMaxSizeKey))
	assert.Equal(t, defaultLogMaxBackups, viper.GetInt(logMaxBackupsKey))
	assert.Equal(t, defaultLogMaxAge, viper.GetInt(logMaxAgeKey))
	assert.Equal(t, defaultLogCompress, viper.GetBool(logCompressKey))
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelWarn},
		{"debug", slog.LevelDebug},
		{" INFO ", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"nonsense", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelWarn))
		})
	}
}

func TestReadConfig(t *testing.T) {
	t.Cleanup(func() {
		viper.Set(vcsBinaryKey, adapter.DefaultVCSBinary)
		viper.Set(logLevelKey, defaultLogLevel)
	})

	t.Run("missing file is ignored", func(t *testing.T) {
		require.NoError(t, readConfig(filepath.Join(t.TempDir(), configFileName)))
	})

	t.Run("loads yaml values", func(t *testing.T) {
		content, err := yaml.Marshal(map[string]any{
			"vcs": map[string]any{"binary": "/opt/bin/git"},
			"log": map[string]any{"level": "debug"},
		})
		require.NoError(t, err)

		path := filepath.Join(t.TempDir(), configFileName)
		require.NoError(t, os.WriteFile(path, content, 0o644))

		require.NoError(t, readConfig(path))
		assert.Equal(t, "/opt/bin/git", viper.GetString(vcsBinaryKey))
		assert.Equal(t, "debug", viper.GetString(logLevelKey))
	})

	t.Run("malformed yaml is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), configFileName)
		require.NoError(t, os.WriteFile(path, []byte("vcs: [unterminated\n"), 0o644))

		require.Error(t, readConfig(path))
	})
}

func TestConfigureLogger(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	logPath := useTempLog(t)
	viper.Set(logLevelKey, "debug")
	t.Cleanup(func() { viper.Set(logLevelKey, defaultLogLevel) })

	configureLogger()
	slog.Debug("logger configured", "test", t.Name())

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "logger configured")
}

// useTempLog redirects the log file into a temp dir for the duration of the test.
func useTempLog(t *testing.T) string {
	t.Helper()

	logPath := filepath.Join(t.TempDir(), "test.log")
	viper.Set(logFilenameKey, logPath)
	t.Cleanup(func() { viper.Set(logFilenameKey, defaultLogFilename) })

	return logPath
}
