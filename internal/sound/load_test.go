//go:build !ci

package sound

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gopxl/beep/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/poker-machine/internal/logger"
)

func TestLoadSoundFiles_SkipsBrokenFiles(t *testing.T) {
	require.NoError(t, logger.Init(t.TempDir(), "info"))
	t.Cleanup(logger.Close)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "deal.wav"), []byte("not a wave file"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	sm := NewSoundManager(dir, false)
	assert.NoError(t, sm.loadSoundFiles(beep.SampleRate(44100)))
	assert.False(t, sm.Loaded(Deal))

	data, err := os.ReadFile(logger.GetLogPath())
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "failed to load sound deal.wav")
	assert.NotContains(t, content, "notes.txt")
}

func TestLoadSoundFiles_MissingDirectory(t *testing.T) {
	t.Parallel()

	sm := NewSoundManager(filepath.Join(t.TempDir(), "missing"), false)
	assert.NoError(t, sm.loadSoundFiles(beep.SampleRate(44100)))
}
