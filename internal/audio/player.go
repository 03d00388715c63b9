// Package audio plays the track bound to a wish.
package audio

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/wav"

	"github.com/iburimskiy/wish-waves/internal/config"
	"github.com/iburimskiy/wish-waves/internal/registry"
)

var ErrUnsupported = errors.New("unsupported file type")

// Output is the sound device. device.Speaker is the real one.
type Output interface {
	Init(rate beep.SampleRate, bufferSize int) error
	Play(s beep.Streamer)
	Clear()
	Lock()
	Unlock()
}

type session struct {
	index    int
	file     *os.File
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	tap      *levelTap
	ended    atomic.Bool
}

func (s *session) close() {
	_ = s.streamer.Close()
	_ = s.file.Close()
}

// Player plays one track at a time. It is driven from the game loop only;
// the device goroutine touches nothing but the session's ended flag.
type Player struct {
	// Resolve maps a track index to a file path.
	Resolve func(index int) string

	out      Output
	rate     beep.SampleRate
	initDone bool
	current  *session
}

// NewPlayer resolves registry tracks under dir.
func NewPlayer(dir string, out Output) *Player {
	return &Player{
		Resolve: func(index int) string {
			return filepath.Join(dir, registry.TrackAt(index))
		},
		out: out,
	}
}

// Play stops the current track and starts the one at index.
func (p *Player) Play(index int) error {
	p.stop()

	path := p.Resolve(index)
	f, streamer, format, err := decode(path)
	if err != nil {
		return fmt.Errorf("track %d: %w", index, err)
	}

	bufferSize := format.SampleRate.N(time.Second / 20)
	if !p.initDone || p.rate != format.SampleRate {
		if err := p.out.Init(format.SampleRate, bufferSize); err != nil {
			_ = streamer.Close()
			_ = f.Close()
			return fmt.Errorf("initializing speaker: %w", err)
		}
		p.initDone = true
		p.rate = format.SampleRate
	}

	s := &session{index: index, file: f, streamer: streamer, format: format}
	s.tap = newLevelTap(streamer, config.LevelRingSize)
	s.ctrl = &beep.Ctrl{Streamer: s.tap}
	p.current = s
	p.out.Play(beep.Seq(s.ctrl, beep.Callback(func() {
		s.ended.Store(true)
	})))
	return nil
}

func (p *Player) stop() {
	if p.current == nil {
		return
	}
	p.out.Clear()
	p.current.close()
	p.current = nil
}

// TogglePause pauses or resumes the current track.
func (p *Player) TogglePause() {
	s := p.current
	if s == nil {
		return
	}
	p.out.Lock()
	s.ctrl.Paused = !s.ctrl.Paused
	p.out.Unlock()
}

// NowPlaying reports the index of the track that is still playing.
func (p *Player) NowPlaying() (index int, ok bool) {
	s := p.current
	if s == nil || s.ended.Load() {
		return 0, false
	}
	return s.index, true
}

// Elapsed is how much of the current track has been streamed.
func (p *Player) Elapsed() time.Duration {
	s := p.current
	if s == nil {
		return 0
	}
	return s.format.SampleRate.D(s.tap.Played())
}

// Level is the loudness of the last few milliseconds, in [0, 1].
func (p *Player) Level() float64 {
	if _, ok := p.NowPlaying(); !ok {
		return 0
	}
	rms := p.current.tap.rms(2048)
	return math.Min(1, math.Pow(rms, 0.3))
}

func (p *Player) Close() {
	p.stop()
}

func decode(path string) (*os.File, beep.StreamSeekCloser, beep.Format, error) {
	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".wav", ".mp3", ".flac":
	default:
		return nil, nil, format, fmt.Errorf("%w: %q", ErrUnsupported, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, format, err
	}
	switch ext {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	}
	if err != nil {
		_ = f.Close()
		return nil, nil, format, fmt.Errorf("decoding %q: %w", path, err)
	}
	return f, streamer, format, nil
}
