package ebtree

import (
	"testing"
	"unsafe"
)

func TestPtr_InsertLookupDelete(t *testing.T) {
	var root TreePtr
	xs := [5]int{}
	nodes := make([]NodePtr, len(xs))
	for i := range xs {
		nodes[i].Key = uintptr(unsafe.Pointer(&xs[i]))
		InsertPtr(&root, &nodes[i])
	}

	for i := range xs {
		k := uintptr(unsafe.Pointer(&xs[i]))
		if got := LookupPtr(&root, k); got != &nodes[i] {
			t.Fatalf("LookupPtr did not return the expected node for index %d", i)
		}
	}

	var seen int
	for n := First(&root); n != nil; n = Next(n) {
		seen++
	}
	if seen != len(xs) {
		t.Fatalf("expected %d entries, got %d", len(xs), seen)
	}

	for i := range nodes {
		Delete(&nodes[i])
	}
	if First(&root) != nil {
		t.Fatalf("expected empty tree after deleting all entries")
	}
}
