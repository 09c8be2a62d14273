package assets

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// AudioLoader handles loading and caching of sound effects
type AudioLoader struct {
	sfxCache map[string][]byte // Cache decoded audio bytes for SFX
	missing  map[string]bool   // Paths that failed once; never retried
	context  *audio.Context
	files    fs.FS
}

// NewAudioLoader creates a new audio loader reading sound files from files.
func NewAudioLoader(ctx *audio.Context, files fs.FS) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[string][]byte),
		missing:  make(map[string]bool),
		context:  ctx,
		files:    files,
	}
}

// PreloadSFX decodes a sound effect and caches it without creating a player.
func (l *AudioLoader) PreloadSFX(path string) error {
	_, err := l.decoded(path)
	return err
}

// LoadSFX returns a new player for a cached sound effect, decoding it on
// first use.
func (l *AudioLoader) LoadSFX(path string) (*audio.Player, error) {
	data, err := l.decoded(path)
	if err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(data))
}

func (l *AudioLoader) decoded(path string) ([]byte, error) {
	if cached, ok := l.sfxCache[path]; ok {
		return cached, nil
	}
	if l.missing[path] {
		return nil, fmt.Errorf("audio file %s unavailable", path)
	}

	decoded, err := l.decode(path)
	if err != nil {
		l.missing[path] = true
		return nil, err
	}
	l.sfxCache[path] = decoded
	return decoded, nil
}

func (l *AudioLoader) decode(path string) ([]byte, error) {
	if l.files == nil {
		return nil, fmt.Errorf("no audio source for %s", path)
	}
	data, err := fs.ReadFile(l.files, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", path, err)
	}

	var stream io.Reader
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode ogg %s: %w", path, err)
		}
		stream = s
	case ".wav":
		s, err := wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode wav %s: %w", path, err)
		}
		stream = s
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}

	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio %s: %w", path, err)
	}
	return decoded, nil
}
