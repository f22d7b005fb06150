package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_WritesToFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(dir, "debug"))
	t.Cleanup(Close)

	assert.Equal(t, filepath.Join(dir, "debug.log"), GetLogPath())

	LogInfo("round %d started", 7)
	LogDebug("frame tick")
	LogError("draw failed: %s", "empty deck")
	WithFields(logrus.Fields{"round": "abc"}).Info("dealt")
	LogPanic("boom")

	data, err := os.ReadFile(GetLogPath())
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "Logger initialized")
	assert.Contains(t, content, "round 7 started")
	assert.Contains(t, content, "frame tick")
	assert.Contains(t, content, "draw failed: empty deck")
	assert.Contains(t, content, "round=abc")
	assert.Contains(t, content, "[PANIC] boom")
}

func TestInit_InvalidLevel(t *testing.T) {
	err := Init(t.TempDir(), "loud")
	assert.Error(t, err)
}

func TestInit_LevelFiltersDebug(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(dir, "info"))
	t.Cleanup(Close)

	LogDebug("hidden message")

	data, err := os.ReadFile(GetLogPath())
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden message")
}
