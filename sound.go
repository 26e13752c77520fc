package gofoot

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const sampleRate = 44100

var (
	audioOnce sync.Once
	audioCtx  *audio.Context
)

// audioContext returns the process-wide audio context. Ebitengine allows
// exactly one, so it is created on first use.
func audioContext() *audio.Context {
	audioOnce.Do(func() {
		audioCtx = audio.NewContext(sampleRate)
	})
	return audioCtx
}

// Sound is a loaded audio clip. Play restarts it from the beginning each
// time, so one Sound can be triggered repeatedly.
type Sound struct {
	player *audio.Player
}

// LoadSound reads an audio clip from disk. Supported types are wav and ogg.
func LoadSound(path string) (*Sound, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading sound: %w", err)
	}

	var stream audioStream
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("loading sound %s: file type %q is not supported", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding sound %s: %w", path, err)
	}

	player, err := audioContext().NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("creating audio player for %s: %w", path, err)
	}
	return &Sound{player: player}, nil
}

// audioStream is the common surface of the wav and vorbis decoders.
type audioStream interface {
	Read(p []byte) (int, error)
	Seek(offset int64, whence int) (int64, error)
	Length() int64
}

// Play starts the clip from the beginning.
func (s *Sound) Play() {
	s.player.Rewind()
	s.player.Play()
}

// Pause stops playback, keeping the position for Resume.
func (s *Sound) Pause() {
	s.player.Pause()
}

// Resume continues a paused clip.
func (s *Sound) Resume() {
	s.player.Play()
}

// IsPlaying reports whether the clip is currently playing.
func (s *Sound) IsPlaying() bool {
	return s.player.IsPlaying()
}

// SetVolume sets the playback volume in [0, 1].
func (s *Sound) SetVolume(volume float64) {
	s.player.SetVolume(volume)
}
