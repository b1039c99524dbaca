// Package ebindex is an ordered, fixed-width byte-string-keyed record
// index built on pkg/ebtree's multi-byte front-end. It replaces the
// teacher's balanced B+Tree (pkg/bptree) with the elastic binary tree:
// insertion order among duplicate keys is preserved, deletion is O(1),
// and the tree is intentionally left unbalanced.
//
// Entry is the intrusive cell callers would normally embed directly in
// their own record type (spec.md's "insertion of embedded user
// records" is an external collaborator's concern); ebindex keeps one
// around itself so Index can offer a self-contained Insert/Search/
// Delete/Range surface without asking every caller to hand-roll the
// embedding.
package ebindex

import (
	"bytes"
	"fmt"
	"sync"
	"unsafe"

	"github.com/segmentio/ksuid"

	"github.com/ssargent/ebtree/pkg/ebtree"
)

// Entry is the record stored in an Index: the embedded tree node plus
// the caller's payload. The NodeMB header must come first so entryOf
// can recover an *Entry from the *ebtree.NodeMB the tree hands back,
// the same offset-zero trick ebtree.c's container_of relies on in the
// original C (spec.md Design Notes, option (a), applied here only at
// this one boundary rather than throughout the core tree).
type Entry struct {
	ebtree.NodeMB
	Value ksuid.KSUID
}

func entryOf(n *ebtree.NodeMB) *Entry {
	return (*Entry)(unsafe.Pointer(n))
}

// Index is a thread-safe ordered index over fixed-width byte-string
// keys. Every key given to Insert/Search/Delete/Range must be exactly
// KeyLen bytes; this is the multi-byte front-end's own contract
// (spec.md §9), not an ebindex restriction layered on top.
type Index struct {
	mu     sync.RWMutex
	root   ebtree.TreeMB
	keyLen int
	size   int
}

// New creates an empty index over KeyLen-byte keys. If unique is true,
// inserting an existing key overwrites its value instead of adding a
// duplicate.
func New(keyLen int, unique bool) *Index {
	return &Index{
		root:   ebtree.TreeMB{Unique: unique},
		keyLen: keyLen,
	}
}

// KeyLen returns the fixed key width this index was constructed with.
func (idx *Index) KeyLen() int {
	return idx.keyLen
}

// Len returns the number of entries currently in the index.
func (idx *Index) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.size
}

func (idx *Index) checkKey(key []byte) error {
	if len(key) != idx.keyLen {
		return fmt.Errorf("ebindex: key length %d does not match index key length %d", len(key), idx.keyLen)
	}
	return nil
}

// Insert adds key/value to the index, returning the stored Entry. In
// unique mode, inserting an existing key updates that key's Entry in
// place and returns it rather than creating a duplicate.
func (idx *Index) Insert(key []byte, value ksuid.KSUID) (*Entry, error) {
	if err := idx.checkKey(key); err != nil {
		return nil, err
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()

	e := &Entry{Value: value}
	e.Key = append([]byte(nil), key...)

	got := ebtree.InsertMB(&idx.root, &e.NodeMB, idx.keyLen)
	if got == &e.NodeMB {
		idx.size++
		return e, nil
	}

	existing := entryOf(got)
	existing.Value = value
	return existing, nil
}

// Search returns the first entry (in tree order) matching key, and
// whether one was found.
func (idx *Index) Search(key []byte) (*Entry, bool) {
	if err := idx.checkKey(key); err != nil {
		return nil, false
	}

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	n := ebtree.LookupMB(&idx.root, key, idx.keyLen)
	if n == nil {
		return nil, false
	}
	return entryOf(n), true
}

// Delete removes e from the index in O(1). It is a no-op if e is not
// currently linked (e.g. it was already deleted).
func (idx *Index) Delete(e *Entry) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	if !e.Linked() {
		return
	}
	ebtree.Delete(&e.NodeMB)
	idx.size--
}

// DeleteKey removes the first entry matching key, reporting whether
// one was found and removed.
func (idx *Index) DeleteKey(key []byte) bool {
	e, ok := idx.Search(key)
	if !ok {
		return false
	}
	idx.Delete(e)
	return true
}

// Range walks entries in ascending key order, starting at the first
// entry with key >= lo (or the very first entry, if lo is nil) and
// stopping before the first entry with key > hi (or at the end, if hi
// is nil). fn is called once per entry; returning false stops the
// walk early.
func (idx *Index) Range(lo, hi []byte, fn func(e *Entry) bool) error {
	if lo != nil {
		if err := idx.checkKey(lo); err != nil {
			return err
		}
	}
	if hi != nil {
		if err := idx.checkKey(hi); err != nil {
			return err
		}
	}

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	// The multi-byte front-end only exposes exact lookup (spec.md §9
	// scopes lookup_le/lookup_ge to the scalar variants), so a bounded
	// range scan walks from the very first entry and skips anything
	// below lo itself rather than seeking directly to it.
	n := ebtree.First(&idx.root)
	for n != nil && lo != nil && bytes.Compare(n.Key, lo) < 0 {
		n = ebtree.Next(n)
	}

	for n != nil {
		if hi != nil && bytes.Compare(n.Key, hi) > 0 {
			return nil
		}
		if !fn(entryOf(n)) {
			return nil
		}
		n = ebtree.Next(n)
	}
	return nil
}

// First returns the lowest-keyed entry, or nil if the index is empty.
func (idx *Index) First() *Entry {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	n := ebtree.First(&idx.root)
	if n == nil {
		return nil
	}
	return entryOf(n)
}

// Last returns the highest-keyed entry, or nil if the index is empty.
func (idx *Index) Last() *Entry {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	n := ebtree.Last(&idx.root)
	if n == nil {
		return nil
	}
	return entryOf(n)
}
