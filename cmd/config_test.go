package cmd

import (
	"log/slog"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{" info ", slog.LevelInfo},
		{"-4", slog.LevelDebug},
		{"8", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelInfo), tt.value)
	}
}

func TestConfigDefaults(t *testing.T) {
	assert.Equal(t, 1, viper.GetInt(configVersionKey))
	assert.Equal(t, defaultParallel, viper.GetInt(parallelConfigKey))
	assert.Equal(t, int64(defaultMaxFileSize), viper.GetInt64(maxFileSizeConfigKey))
	assert.Equal(t, defaultFormat, viper.GetString(formatConfigKey))
	assert.Equal(t, defaultExternalCmd, viper.GetString(externalCommandKey))
	assert.False(t, viper.GetBool(externalConfigKey))
	assert.Equal(t, defaultLogFilename, viper.GetString(logFilenameKey))
}

func TestConfigureLogger_SetsDefaultLogger(t *testing.T) {
	configureLogger("", false)

	assert.NotNil(t, globalLogger)
	assert.Equal(t, globalLogger, slog.Default())
}
