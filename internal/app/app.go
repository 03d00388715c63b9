// Package app is the application state behind the window: the wish history,
// one wave renderer per wish and the track that is playing.
package app

import (
	"log"

	"github.com/iburimskiy/wish-waves/internal/wave"
	"github.com/iburimskiy/wish-waves/internal/wish"
)

// Player starts the track at an index, replacing whatever is playing.
type Player interface {
	Play(index int) error
}

// Card is one wish on screen.
type Card struct {
	Wish     wish.Record
	Renderer *wave.Renderer
}

// App owns all mutable state. The game loop is its only caller.
type App struct {
	store       *wish.Store
	player      Player
	newRenderer func(wave.Binding) *wave.Renderer

	cards        []*Card // newest first
	width        int
	promptHidden bool
}

func New(store *wish.Store, player Player, newRenderer func(wave.Binding) *wave.Renderer) *App {
	return &App{store: store, player: player, newRenderer: newRenderer}
}

// Start restores saved wishes and builds their cards for the given card
// width. Nothing is played.
func (a *App) Start(width int) error {
	a.width = width
	records, err := a.store.Load()
	for _, rec := range records {
		a.addCard(rec)
	}
	if len(records) > 0 {
		a.promptHidden = true
	}
	return err
}

// Submit stores a wish, shows it and plays its track. Blank text is ignored.
func (a *App) Submit(text string) (*Card, bool) {
	rec, ok, err := a.store.Submit(text)
	if !ok {
		return nil, false
	}
	if err != nil {
		log.Printf("wish %s not saved: %v", rec.ID, err)
	}
	a.promptHidden = true
	c := a.addCard(rec)
	a.Play(c)
	return c, true
}

func (a *App) addCard(rec wish.Record) *Card {
	r := a.newRenderer(wave.Binding{ID: rec.ID, Palette: rec.Palette()})
	r.Initialize(a.width)
	c := &Card{Wish: rec, Renderer: r}
	a.cards = append([]*Card{c}, a.cards...)
	return c
}

// Play starts the card's track. Playback failures are logged and otherwise
// ignored.
func (a *App) Play(c *Card) {
	if err := a.player.Play(c.Wish.TrackIndex); err != nil {
		log.Printf("playing track %d: %v", c.Wish.TrackIndex, err)
	}
}

// Resize reseeds every renderer when the card width changes.
func (a *App) Resize(width int) {
	if width == a.width {
		return
	}
	a.width = width
	for _, c := range a.cards {
		c.Renderer.Resize(width)
	}
}

// Step advances every renderer by one frame.
func (a *App) Step() {
	for _, c := range a.cards {
		c.Renderer.Step()
	}
}

func (a *App) Cards() []*Card {
	return append([]*Card(nil), a.cards...)
}

func (a *App) Width() int { return a.width }

// PromptHidden reports whether the opening question has been dismissed.
func (a *App) PromptHidden() bool { return a.promptHidden }

// Close stops every renderer.
func (a *App) Close() {
	for _, c := range a.cards {
		c.Renderer.Stop()
	}
	a.cards = nil
}
