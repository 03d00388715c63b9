package audio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
)

type fakeOutput struct {
	inits   []beep.SampleRate
	playing []beep.Streamer
	clears  int
	locked  bool
}

func (o *fakeOutput) Init(rate beep.SampleRate, _ int) error {
	o.inits = append(o.inits, rate)
	return nil
}

func (o *fakeOutput) Play(s beep.Streamer) { o.playing = append(o.playing, s) }

func (o *fakeOutput) Clear() {
	o.clears++
	o.playing = nil
}

func (o *fakeOutput) Lock()   { o.locked = true }
func (o *fakeOutput) Unlock() { o.locked = false }

// drain streams s to the end, the way the speaker would.
func drain(s beep.Streamer) {
	buf := make([][2]float64, 512)
	for {
		if _, ok := s.Stream(buf); !ok {
			return
		}
	}
}

func writeWAV(t *testing.T, path string, rate beep.SampleRate, n int) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	format := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
	if err := wav.Encode(f, beep.Silence(n), format); err != nil {
		t.Fatal(err)
	}
}

func newTestPlayer(t *testing.T, out Output) (*Player, string) {
	dir := t.TempDir()
	p := NewPlayer(dir, out)
	p.Resolve = func(index int) string {
		return filepath.Join(dir, []string{"a.wav", "b.wav", "c.wav"}[index])
	}
	writeWAV(t, filepath.Join(dir, "a.wav"), 44100, 4410)
	writeWAV(t, filepath.Join(dir, "b.wav"), 44100, 4410)
	writeWAV(t, filepath.Join(dir, "c.wav"), 22050, 2205)
	return p, dir
}

func TestPlayReplacesCurrentTrack(t *testing.T) {
	out := &fakeOutput{}
	p, _ := newTestPlayer(t, out)
	defer p.Close()

	if err := p.Play(0); err != nil {
		t.Fatal(err)
	}
	if idx, ok := p.NowPlaying(); !ok || idx != 0 {
		t.Errorf("NowPlaying() = %d, %v; want 0, true", idx, ok)
	}
	if err := p.Play(1); err != nil {
		t.Fatal(err)
	}
	if out.clears != 1 || len(out.playing) != 1 {
		t.Errorf("clears = %d, playing = %d; want 1, 1", out.clears, len(out.playing))
	}
	if len(out.inits) != 1 {
		t.Errorf("speaker initialized %d times for one sample rate", len(out.inits))
	}
	if idx, _ := p.NowPlaying(); idx != 1 {
		t.Errorf("NowPlaying() = %d, want 1", idx)
	}

	if err := p.Play(2); err != nil {
		t.Fatal(err)
	}
	if len(out.inits) != 2 || out.inits[1] != 22050 {
		t.Errorf("inits = %v; want re-init at 22050", out.inits)
	}
}

func TestTrackEnds(t *testing.T) {
	out := &fakeOutput{}
	p, _ := newTestPlayer(t, out)
	defer p.Close()

	if err := p.Play(0); err != nil {
		t.Fatal(err)
	}
	drain(out.playing[0])
	if _, ok := p.NowPlaying(); ok {
		t.Error("track still reported as playing after it ended")
	}
	if got := p.Elapsed(); got != 100*time.Millisecond {
		t.Errorf("Elapsed() = %v, want 100ms", got)
	}
	if p.Level() != 0 {
		t.Errorf("Level() = %v after end, want 0", p.Level())
	}
}

func TestTogglePauseLocksDevice(t *testing.T) {
	out := &fakeOutput{}
	p, _ := newTestPlayer(t, out)
	defer p.Close()

	p.TogglePause() // nothing playing
	if err := p.Play(0); err != nil {
		t.Fatal(err)
	}
	p.TogglePause()
	if !p.current.ctrl.Paused || out.locked {
		t.Error("TogglePause should pause under the device lock")
	}
}

func TestPlayMissingOrUnsupported(t *testing.T) {
	out := &fakeOutput{}
	p, dir := newTestPlayer(t, out)

	p.Resolve = func(int) string { return filepath.Join(dir, "missing.wav") }
	if err := p.Play(0); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Play(missing) = %v, want ErrNotExist", err)
	}
	p.Resolve = func(int) string { return filepath.Join(dir, "track.ogg") }
	if err := p.Play(0); !errors.Is(err, ErrUnsupported) {
		t.Errorf("Play(ogg) = %v, want ErrUnsupported", err)
	}
	if len(out.playing) != 0 || len(out.inits) != 0 {
		t.Error("failed plays reached the device")
	}
}

func TestDefaultResolveUsesRegistry(t *testing.T) {
	p := NewPlayer("/music", &fakeOutput{})
	if got := p.Resolve(6); got != filepath.Join("/music", "2.mp3") {
		t.Errorf("Resolve(6) = %q", got)
	}
}
