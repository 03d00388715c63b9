// Package storage provides the single key-value slot the wish history is
// saved to.
package storage

import (
	"errors"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
)

// ErrEmpty is returned by Load when nothing has been saved yet.
var ErrEmpty = errors.New("slot is empty")

// Slot holds one opaque value that is read whole and overwritten whole.
type Slot interface {
	Load() ([]byte, error)
	Save(data []byte) error
}

const bucketWishes = "wishes"

// BoltSlot stores the value under a fixed key of a bbolt database.
type BoltSlot struct {
	db  *bolt.DB
	key []byte
}

// OpenBolt opens or creates the database at path.
func OpenBolt(path, key string) (*BoltSlot, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketWishes))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing %q: %w", path, err)
	}
	return &BoltSlot{db: db, key: []byte(key)}, nil
}

func (s *BoltSlot) Load() ([]byte, error) {
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketWishes)).Get(s.key)
		if v == nil {
			return ErrEmpty
		}
		// v is only valid inside the transaction.
		data = append([]byte(nil), v...)
		return nil
	})
	return data, err
}

func (s *BoltSlot) Save(data []byte) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketWishes)).Put(s.key, data)
	})
}

func (s *BoltSlot) Close() error {
	return s.db.Close()
}

// MemorySlot keeps the value in memory. Writes counts successful saves.
type MemorySlot struct {
	data   []byte
	Writes int
}

func (s *MemorySlot) Load() ([]byte, error) {
	if s.data == nil {
		return nil, ErrEmpty
	}
	return append([]byte(nil), s.data...), nil
}

func (s *MemorySlot) Save(data []byte) error {
	s.data = append([]byte(nil), data...)
	s.Writes++
	return nil
}
