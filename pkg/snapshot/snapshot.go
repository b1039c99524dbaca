// Package snapshot gives an in-memory pkg/ebindex.Index a durable
// copy on disk. The tree itself never persists (spec.md's Non-goals
// exclude persistence entirely); Store is the external collaborator
// that owns writing it out and reading it back, using
// github.com/cockroachdb/pebble as the on-disk key/value engine and
// pkg/codec's wire format to frame each entry.
package snapshot

import (
	"fmt"
	"time"

	"github.com/cockroachdb/pebble"
	"github.com/segmentio/ksuid"

	"github.com/ssargent/ebtree/pkg/codec"
	"github.com/ssargent/ebtree/pkg/ebindex"
)

// Store is a pebble-backed durability layer for an ebindex.Index.
type Store struct {
	db    *pebble.DB
	codec *codec.RecordCodec

	ticker *time.Ticker
	done   chan bool
}

// Open opens (creating if necessary) a pebble instance at path.
func Open(path string) (*Store, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("snapshot: open pebble store: %w", err)
	}
	return &Store{db: db, codec: codec.NewRecordCodec()}, nil
}

// Close closes the underlying pebble instance, stopping any running
// periodic snapshot first.
func (s *Store) Close() error {
	s.StopPeriodic()
	return s.db.Close()
}

// Save writes every entry currently in idx to the store, keyed by its
// index key, each framed as a pkg/codec.Record.
func (s *Store) Save(idx *ebindex.Index) error {
	batch := s.db.NewBatch()
	defer batch.Close()

	// Drop the keys of earlier saves first, so entries since removed
	// from idx do not come back on the next Load.
	iter, err := s.db.NewIter(&pebble.IterOptions{})
	if err != nil {
		return fmt.Errorf("snapshot: open iterator: %w", err)
	}
	for iter.First(); iter.Valid(); iter.Next() {
		if err := batch.Delete(iter.Key(), nil); err != nil {
			iter.Close()
			return fmt.Errorf("snapshot: stage delete %x: %w", iter.Key(), err)
		}
	}
	if err := iter.Close(); err != nil {
		return fmt.Errorf("snapshot: close iterator: %w", err)
	}

	var saveErr error
	err = idx.Range(nil, nil, func(e *ebindex.Entry) bool {
		encoded, err := s.codec.Encode(e.Key, e.Value.Bytes())
		if err != nil {
			saveErr = fmt.Errorf("snapshot: encode key %x: %w", e.Key, err)
			return false
		}
		if err := batch.Set(e.Key, encoded, nil); err != nil {
			saveErr = fmt.Errorf("snapshot: stage key %x: %w", e.Key, err)
			return false
		}
		return true
	})
	if err != nil {
		return err
	}
	if saveErr != nil {
		return saveErr
	}

	if err := batch.Commit(pebble.Sync); err != nil {
		return fmt.Errorf("snapshot: commit batch: %w", err)
	}
	return nil
}

// Load replays every record currently in the store into idx.
func (s *Store) Load(idx *ebindex.Index) error {
	iter, err := s.db.NewIter(&pebble.IterOptions{})
	if err != nil {
		return fmt.Errorf("snapshot: open iterator: %w", err)
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		record, err := s.codec.Decode(iter.Value())
		if err != nil {
			return fmt.Errorf("snapshot: decode record at key %x: %w", iter.Key(), err)
		}
		if err := record.Validate(); err != nil {
			return fmt.Errorf("snapshot: corrupt record at key %x: %w", iter.Key(), err)
		}

		value, err := ksuid.FromBytes(record.Value)
		if err != nil {
			return fmt.Errorf("snapshot: invalid value bytes at key %x: %w", iter.Key(), err)
		}

		if _, err := idx.Insert(record.Key, value); err != nil {
			return fmt.Errorf("snapshot: replay key %x: %w", iter.Key(), err)
		}
	}
	return iter.Error()
}

// StartPeriodic saves idx to the store every interval, in the
// background, until StopPeriodic is called. Errors from periodic
// saves are silently dropped, mirroring pkg/bptree's own checkpoint
// ticker (it too discards Save's return value).
func (s *Store) StartPeriodic(idx *ebindex.Index, interval time.Duration) {
	s.StopPeriodic()

	s.ticker = time.NewTicker(interval)
	s.done = make(chan bool)

	go func() {
		for {
			select {
			case <-s.ticker.C:
				_ = s.Save(idx)
			case <-s.done:
				return
			}
		}
	}()
}

// StopPeriodic stops a running periodic snapshot, if any.
func (s *Store) StopPeriodic() {
	if s.ticker != nil {
		s.ticker.Stop()
		s.ticker = nil
	}
	if s.done != nil {
		s.done <- true
		s.done = nil
	}
}
