// Package wish keeps the ordered, append-only history of submitted wishes
// and binds each wish to its registry content.
package wish

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iburimskiy/wish-waves/internal/registry"
	"github.com/iburimskiy/wish-waves/internal/storage"
)

// Record is one submitted wish. It is never modified after creation.
type Record struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	Poem       string `json:"poem"`
	PoemIndex  int    `json:"-"`
	TrackIndex int    `json:"trackIndex"`
	ColorIndex int    `json:"colorIndex"`
	Timestamp  int64  `json:"timestamp"`
}

// Time returns the creation time at millisecond resolution.
func (r Record) Time() time.Time {
	return time.UnixMilli(r.Timestamp)
}

func (r Record) Palette() registry.Palette {
	return registry.PaletteAt(r.ColorIndex)
}

// Store is the append-only wish history. It is not safe for concurrent
// writers; the game loop is its only user.
type Store struct {
	slot    storage.Slot
	now     func() time.Time
	records []Record
}

// NewStore returns an empty store backed by slot. A nil clock means
// time.Now.
func NewStore(slot storage.Slot, clock func() time.Time) *Store {
	if clock == nil {
		clock = time.Now
	}
	return &Store{slot: slot, now: clock}
}

// Load replaces the in-memory history with what the slot holds. Missing or
// unparseable data leaves the store empty and is not an error.
func (s *Store) Load() ([]Record, error) {
	s.records = nil
	data, err := s.slot.Load()
	if errors.Is(err, storage.ErrEmpty) {
		return s.All(), nil
	}
	if err != nil {
		return s.All(), fmt.Errorf("loading wishes: %w", err)
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		log.Printf("discarding saved wishes: %v", err)
		return s.All(), nil
	}
	for i := range records {
		if records[i].ID == "" {
			records[i].ID = uuid.NewString()
		}
		records[i].PoemIndex = i % registry.PoemCount()
	}
	s.records = records
	return s.All(), nil
}

// Submit appends a wish for text. Blank text is rejected with ok=false and
// nothing is written. A save error is returned alongside the appended
// record.
func (s *Store) Submit(text string) (rec Record, ok bool, err error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Record{}, false, nil
	}
	n := len(s.records)
	poemIndex := n % registry.PoemCount()
	rec = Record{
		ID:         uuid.NewString(),
		Text:       text,
		Poem:       registry.PoemAt(poemIndex),
		PoemIndex:  poemIndex,
		TrackIndex: n % registry.TrackCount(),
		ColorIndex: n % registry.PaletteCount(),
		Timestamp:  s.now().UnixMilli(),
	}
	s.records = append(s.records, rec)
	if err := s.save(); err != nil {
		return rec, true, err
	}
	return rec, true, nil
}

func (s *Store) save() error {
	data, err := json.Marshal(s.records)
	if err != nil {
		return fmt.Errorf("encoding wishes: %w", err)
	}
	if err := s.slot.Save(data); err != nil {
		return fmt.Errorf("saving wishes: %w", err)
	}
	return nil
}

// All returns the history in submission order.
func (s *Store) All() []Record {
	return append([]Record(nil), s.records...)
}

func (s *Store) Len() int {
	return len(s.records)
}
