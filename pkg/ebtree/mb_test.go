package ebtree

import (
	"bytes"
	"testing"
)

func mbKey(b byte, c byte) []byte { return []byte{b, c} }

func TestMB_OrderingAndLookup(t *testing.T) {
	var root TreeMB
	keys := [][]byte{mbKey(0, 1), mbKey(0, 0), mbKey(1, 0), mbKey(1, 1), mbKey(2, 0)}
	nodes := make([]NodeMB, len(keys))
	for i, k := range keys {
		nodes[i].Key = k
		InsertMB(&root, &nodes[i], 2)
	}

	var got [][]byte
	for n := First(&root); n != nil; n = Next(n) {
		got = append(got, n.Key)
	}
	want := [][]byte{mbKey(0, 0), mbKey(0, 1), mbKey(1, 0), mbKey(1, 1), mbKey(2, 0)}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if !bytes.Equal(got[i], want[i]) {
			t.Fatalf("got %v, want %v", got, want)
		}
	}

	for _, k := range keys {
		if got := LookupMB(&root, k, 2); got == nil || !bytes.Equal(got.Key, k) {
			t.Fatalf("LookupMB(%v) missing", k)
		}
	}
	if got := LookupMB(&root, mbKey(9, 9), 2); got != nil {
		t.Fatalf("LookupMB of absent key = %v, want nil", got)
	}
}

func TestMB_DuplicatesAndDelete(t *testing.T) {
	var root TreeMB
	var a, b NodeMB
	a.Key = mbKey(5, 5)
	b.Key = mbKey(5, 5)
	InsertMB(&root, &a, 2)
	InsertMB(&root, &b, 2)

	first := First(&root)
	if first != &a {
		t.Fatalf("expected a to be the first (leftmost) duplicate")
	}
	if Next(first) != &b {
		t.Fatalf("expected b to follow a in insertion order")
	}

	Delete(&a)
	Delete(&b)
	if First(&root) != nil {
		t.Fatalf("expected empty tree")
	}
}
