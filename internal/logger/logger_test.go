package logger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"petvault/internal/config"
	"petvault/internal/logger"
)

func TestNew_LevelAndFormat(t *testing.T) {
	l, err := logger.New(config.LogConfig{Level: "warn", Format: "json"})
	require.NoError(t, err)

	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := logger.New(config.LogConfig{Level: "loud", Format: "console"})
	assert.Error(t, err)
}

func TestInstall_ReplacesGlobal(t *testing.T) {
	before := zap.L()
	restore, err := logger.Install(config.LogConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)

	assert.NotSame(t, before, zap.L())
	assert.True(t, zap.L().Core().Enabled(zapcore.DebugLevel))

	restore()
	assert.Same(t, before, zap.L())
}
