//go:build !ci

package sound

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"

	"github.com/palemoky/poker-machine/internal/logger"
)

type SoundManager struct {
	dir     string
	muted   bool
	buffers map[string]*beep.Buffer
	enabled bool
}

func NewSoundManager(dir string, muted bool) *SoundManager {
	return &SoundManager{
		dir:     dir,
		muted:   muted,
		buffers: make(map[string]*beep.Buffer),
	}
}

// Init opens the speaker and loads every sound in the directory.
// A muted manager never touches the audio device.
func (sm *SoundManager) Init() error {
	if sm.muted {
		return nil
	}

	sampleRate := beep.SampleRate(44100)
	// Init speaker with smaller buffer for lower latency
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("failed to initialize speaker: %w", err)
	}

	if err := sm.loadSoundFiles(sampleRate); err != nil {
		return err
	}
	sm.enabled = true
	return nil
}

// loadSoundFiles loads all mp3/wav files from the sound directory
func (sm *SoundManager) loadSoundFiles(sampleRate beep.SampleRate) error {
	files, err := os.ReadDir(sm.dir)
	if err != nil {
		// It's okay if directory doesn't exist, just no sounds
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read sound directory: %w", err)
	}

	for _, file := range files {
		if file.IsDir() {
			continue
		}
		name := file.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".mp3" && ext != ".wav" {
			continue
		}

		// Continue loading other files even if one fails
		if err := sm.loadSoundFile(name, strings.TrimSuffix(name, filepath.Ext(name)), ext, sampleRate); err != nil {
			logger.LogError("failed to load sound %s: %v", name, err)
			continue
		}
		logger.LogDebug("loaded sound %s", name)
	}

	return nil
}

// loadSoundFile decodes a single sound file into a buffer
func (sm *SoundManager) loadSoundFile(name, baseName, ext string, sampleRate beep.SampleRate) error {
	f, err := os.Open(filepath.Clean(filepath.Join(sm.dir, name)))
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	var streamer beep.StreamSeekCloser
	var format beep.Format

	switch ext {
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".wav":
		streamer, format, err = wav.Decode(f)
	}
	if err != nil {
		return err
	}
	defer func() { _ = streamer.Close() }()

	var resampled beep.Streamer = streamer
	if format.SampleRate != sampleRate {
		resampled = beep.Resample(4, format.SampleRate, sampleRate, streamer)
	}

	buffer := beep.NewBuffer(beep.Format{
		SampleRate:  sampleRate,
		NumChannels: 2,
		Precision:   4,
	})
	buffer.Append(resampled)

	sm.buffers[baseName] = buffer
	return nil
}

// Loaded reports whether a sound with the given name was loaded.
func (sm *SoundManager) Loaded(name string) bool {
	_, ok := sm.buffers[name]
	return ok
}

func (sm *SoundManager) Play(name string) {
	if !sm.enabled {
		return
	}

	buffer, ok := sm.buffers[name]
	if !ok {
		return
	}

	speaker.Play(buffer.Streamer(0, buffer.Len()))
}

func (sm *SoundManager) Close() {
	sm.enabled = false
}
