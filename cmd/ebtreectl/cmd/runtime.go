package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/segmentio/ksuid"

	"github.com/ssargent/ebtree/pkg/config"
	"github.com/ssargent/ebtree/pkg/ebindex"
	"github.com/ssargent/ebtree/pkg/snapshot"
)

// demo bundles together the configured index (fixed-width or
// variable-length, depending on cfg.KeyVariant) and its snapshot
// store. Exactly one of fixed/str is non-nil.
type demo struct {
	cfg   *config.Config
	fixed *ebindex.Index
	str   *ebindex.StrIndex
	store *snapshot.Store
}

func openDemo(cfg *config.Config) (*demo, error) {
	d := &demo{cfg: cfg}

	if cfg.KeyVariant == "str" {
		d.str = ebindex.NewStr(cfg.Unique)
		// The string front-end has no fixed-width snapshot counterpart
		// yet (pkg/snapshot frames every record by its ebindex.Index
		// key), so "str" mode runs in-memory only: nothing is saved at
		// exit, and the snapshot command returns an error.
		return d, nil
	}

	width, ok := keyLenFor(cfg.KeyVariant)
	if !ok {
		return nil, fmt.Errorf("unknown key variant %q", cfg.KeyVariant)
	}
	d.fixed = ebindex.New(width, cfg.Unique)

	storePath := filepath.Join(cfg.DataDir, "snapshot")
	store, err := snapshot.Open(storePath)
	if err != nil {
		return nil, fmt.Errorf("open snapshot store: %w", err)
	}
	if err := store.Load(d.fixed); err != nil {
		store.Close()
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	d.store = store
	return d, nil
}

func (d *demo) close() error {
	if d.store == nil {
		return nil
	}
	return d.store.Close()
}

func (d *demo) put(keyArg string) (ksuid.KSUID, error) {
	id := ksuid.New()
	if d.str != nil {
		e, err := d.str.Insert([]byte(keyArg), id)
		if err != nil {
			return ksuid.Nil, err
		}
		return e.Value, nil
	}

	key, err := encodeFixedKey(d.cfg.KeyVariant, keyArg)
	if err != nil {
		return ksuid.Nil, err
	}
	e, err := d.fixed.Insert(key, id)
	if err != nil {
		return ksuid.Nil, err
	}
	return e.Value, nil
}

func (d *demo) get(keyArg string) (ksuid.KSUID, bool, error) {
	if d.str != nil {
		e, ok := d.str.Search([]byte(keyArg))
		if !ok {
			return ksuid.Nil, false, nil
		}
		return e.Value, true, nil
	}

	key, err := encodeFixedKey(d.cfg.KeyVariant, keyArg)
	if err != nil {
		return ksuid.Nil, false, err
	}
	e, ok := d.fixed.Search(key)
	if !ok {
		return ksuid.Nil, false, nil
	}
	return e.Value, true, nil
}

func (d *demo) delete(keyArg string) (bool, error) {
	if d.str != nil {
		return d.str.DeleteKey([]byte(keyArg)), nil
	}

	key, err := encodeFixedKey(d.cfg.KeyVariant, keyArg)
	if err != nil {
		return false, err
	}
	return d.fixed.DeleteKey(key), nil
}

// rangeEntry is what Range reports per entry, independent of which
// underlying index produced it.
type rangeEntry struct {
	Key   []byte
	Value ksuid.KSUID
}

func (d *demo) walkRange(loArg, hiArg string, fn func(rangeEntry) bool) error {
	if d.str != nil {
		var lo, hi []byte
		if loArg != "" {
			lo = []byte(loArg)
		}
		if hiArg != "" {
			hi = []byte(hiArg)
		}
		return d.str.Range(lo, hi, func(e *ebindex.StrEntry) bool {
			return fn(rangeEntry{Key: e.StrKey(), Value: e.Value})
		})
	}

	var lo, hi []byte
	var err error
	if loArg != "" {
		lo, err = encodeFixedKey(d.cfg.KeyVariant, loArg)
		if err != nil {
			return err
		}
	}
	if hiArg != "" {
		hi, err = encodeFixedKey(d.cfg.KeyVariant, hiArg)
		if err != nil {
			return err
		}
	}
	return d.fixed.Range(lo, hi, func(e *ebindex.Entry) bool {
		return fn(rangeEntry{Key: e.Key, Value: e.Value})
	})
}

func (d *demo) snapshot() error {
	if d.store == nil {
		return fmt.Errorf("the %q variant keeps no on-disk snapshot", d.cfg.KeyVariant)
	}
	return d.store.Save(d.fixed)
}
