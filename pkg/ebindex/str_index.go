package ebindex

import (
	"bytes"
	"fmt"
	"sync"
	"unsafe"

	"github.com/segmentio/ksuid"

	"github.com/ssargent/ebtree/pkg/ebtree"
)

// StrEntry is StrIndex's counterpart to Entry, built on the
// NUL-terminated string front-end instead of the fixed-width
// multi-byte one, so keys no longer need a uniform length.
type StrEntry struct {
	ebtree.NodeStr
	Value ksuid.KSUID
}

func strEntryOf(n *ebtree.NodeStr) *StrEntry {
	return (*StrEntry)(unsafe.Pointer(n))
}

// StrKey returns e's user-supplied key with the internal terminating
// NUL stripped.
func (e *StrEntry) StrKey() []byte {
	return e.Key[:len(e.Key)-1]
}

// StrIndex is a thread-safe ordered index over variable-length
// byte-string keys (none of which may contain an embedded NUL byte,
// the string front-end's own terminator). It is the variable-width
// counterpart to Index, for callers whose keys aren't all the same
// length.
type StrIndex struct {
	mu   sync.RWMutex
	root ebtree.TreeStr
	size int
}

// NewStr creates an empty variable-length string index.
func NewStr(unique bool) *StrIndex {
	return &StrIndex{root: ebtree.TreeStr{Unique: unique}}
}

// Len returns the number of entries currently in the index.
func (idx *StrIndex) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.size
}

func encodeStrKey(key []byte) ([]byte, error) {
	if bytes.IndexByte(key, 0) >= 0 {
		return nil, fmt.Errorf("ebindex: string keys must not contain a NUL byte")
	}
	encoded := make([]byte, len(key)+1)
	copy(encoded, key)
	return encoded, nil
}

// Insert adds key/value to the index, returning the stored StrEntry.
// In unique mode, inserting an existing key updates that key's entry
// in place instead of creating a duplicate.
func (idx *StrIndex) Insert(key []byte, value ksuid.KSUID) (*StrEntry, error) {
	encoded, err := encodeStrKey(key)
	if err != nil {
		return nil, err
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()

	e := &StrEntry{Value: value}
	e.Key = encoded

	got := ebtree.InsertStr(&idx.root, &e.NodeStr)
	if got == &e.NodeStr {
		idx.size++
		return e, nil
	}

	existing := strEntryOf(got)
	existing.Value = value
	return existing, nil
}

// Search returns the first entry (in tree order) matching key, and
// whether one was found.
func (idx *StrIndex) Search(key []byte) (*StrEntry, bool) {
	encoded, err := encodeStrKey(key)
	if err != nil {
		return nil, false
	}

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	n := ebtree.LookupStr(&idx.root, encoded)
	if n == nil {
		return nil, false
	}
	return strEntryOf(n), true
}

// Delete removes e from the index in O(1). It is a no-op if e is not
// currently linked.
func (idx *StrIndex) Delete(e *StrEntry) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	if !e.Linked() {
		return
	}
	ebtree.Delete(&e.NodeStr)
	idx.size--
}

// DeleteKey removes the first entry matching key, reporting whether
// one was found and removed.
func (idx *StrIndex) DeleteKey(key []byte) bool {
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
// is nil).
func (idx *StrIndex) Range(lo, hi []byte, fn func(e *StrEntry) bool) error {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	n := ebtree.First(&idx.root)
	for n != nil && lo != nil && bytes.Compare(n.Key[:len(n.Key)-1], lo) < 0 {
		n = ebtree.Next(n)
	}

	for n != nil {
		if hi != nil && bytes.Compare(n.Key[:len(n.Key)-1], hi) > 0 {
			return nil
		}
		if !fn(strEntryOf(n)) {
			return nil
		}
		n = ebtree.Next(n)
	}
	return nil
}

// First returns the lowest-keyed entry, or nil if the index is empty.
func (idx *StrIndex) First() *StrEntry {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	n := ebtree.First(&idx.root)
	if n == nil {
		return nil
	}
	return strEntryOf(n)
}

// Last returns the highest-keyed entry, or nil if the index is empty.
func (idx *StrIndex) Last() *StrEntry {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	n := ebtree.Last(&idx.root)
	if n == nil {
		return nil
	}
	return strEntryOf(n)
}
