package app

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/iburimskiy/wish-waves/internal/config"
	"github.com/iburimskiy/wish-waves/internal/storage"
	"github.com/iburimskiy/wish-waves/internal/wave"
	"github.com/iburimskiy/wish-waves/internal/wish"
)

type fakePlayer struct {
	played []int
	err    error
}

func (p *fakePlayer) Play(index int) error {
	p.played = append(p.played, index)
	return p.err
}

func newTestApp(slot storage.Slot, p Player) *App {
	rng := rand.New(rand.NewSource(1))
	return New(wish.NewStore(slot, nil), p, func(b wave.Binding) *wave.Renderer {
		return wave.New(b, wave.Options{Rand: rng})
	})
}

func TestSubmitShowsAndPlays(t *testing.T) {
	p := &fakePlayer{}
	a := newTestApp(&storage.MemorySlot{}, p)
	if err := a.Start(600); err != nil {
		t.Fatal(err)
	}
	if a.PromptHidden() {
		t.Error("prompt hidden with no wishes")
	}

	for _, text := range []string{"a", "b", "c"} {
		if _, ok := a.Submit(text); !ok {
			t.Fatalf("Submit(%q) rejected", text)
		}
	}
	cards := a.Cards()
	if len(cards) != 3 || cards[0].Wish.Text != "c" || cards[2].Wish.Text != "a" {
		t.Fatalf("cards not newest first: %v", cards)
	}
	if !a.PromptHidden() {
		t.Error("prompt still shown after a wish")
	}
	if len(p.played) != 3 || p.played[2] != 2 {
		t.Errorf("played = %v, want [0 1 2]", p.played)
	}
	for _, c := range cards {
		if c.Renderer.ID() != c.Wish.ID {
			t.Error("renderer not bound to its wish")
		}
		if n := len(c.Renderer.Curves()); n != config.NumWaves {
			t.Errorf("renderer has %d curves", n)
		}
	}
}

func TestSubmitBlankIsSilent(t *testing.T) {
	p := &fakePlayer{}
	slot := &storage.MemorySlot{}
	a := newTestApp(slot, p)
	a.Start(600)

	if c, ok := a.Submit("   "); ok || c != nil {
		t.Error("blank wish accepted")
	}
	if len(a.Cards()) != 0 || len(p.played) != 0 || slot.Writes != 0 || a.PromptHidden() {
		t.Error("blank wish had side effects")
	}
}

func TestPlaybackFailureIsNotFatal(t *testing.T) {
	p := &fakePlayer{err: errors.New("autoplay blocked")}
	a := newTestApp(&storage.MemorySlot{}, p)
	a.Start(600)
	if _, ok := a.Submit("still here"); !ok {
		t.Fatal("wish rejected because playback failed")
	}
	if len(a.Cards()) != 1 {
		t.Error("card missing after playback failure")
	}
}

func TestStartRestoresSavedWishes(t *testing.T) {
	slot := &storage.MemorySlot{}
	first := newTestApp(slot, &fakePlayer{})
	first.Start(600)
	first.Submit("one")
	first.Submit("two")

	p := &fakePlayer{}
	a := newTestApp(slot, p)
	if err := a.Start(900); err != nil {
		t.Fatal(err)
	}
	cards := a.Cards()
	if len(cards) != 2 || cards[0].Wish.Text != "two" {
		t.Fatalf("restored cards = %v", cards)
	}
	if !a.PromptHidden() {
		t.Error("prompt shown despite saved wishes")
	}
	if len(p.played) != 0 {
		t.Error("restoring wishes played audio")
	}
	if w, h := cards[0].Renderer.Size(); w != 900 || h != 300 {
		t.Errorf("renderer size = %dx%d, want 900x300", w, h)
	}
}

func TestResizeAndClose(t *testing.T) {
	a := newTestApp(&storage.MemorySlot{}, &fakePlayer{})
	a.Start(1000)
	c, _ := a.Submit("wave")
	before := c.Renderer.Curves()

	a.Resize(1000)
	if after := c.Renderer.Curves(); after[0] != before[0] {
		t.Error("same width reseeded the renderer")
	}
	a.Resize(500)
	if _, h := c.Renderer.Size(); h != 250 {
		t.Errorf("height after resize = %d, want 250", h)
	}

	a.Step()
	if c.Renderer.Time() != config.TimeStep {
		t.Errorf("Time() = %v after one step", c.Renderer.Time())
	}

	a.Close()
	if len(a.Cards()) != 0 || len(c.Renderer.Curves()) != 0 {
		t.Error("Close did not stop the renderers")
	}
}
