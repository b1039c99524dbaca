package ebtree

import "testing"

func TestWalk_EmptyTree(t *testing.T) {
	var root TreeU32
	if First(&root) != nil || Last(&root) != nil {
		t.Fatalf("First/Last on an empty tree must return nil")
	}
	if LookupU32(&root, 1) != nil {
		t.Fatalf("Lookup on an empty tree must return nil")
	}
	if LookupLEU32(&root, 1) != nil || LookupGEU32(&root, 1) != nil {
		t.Fatalf("range lookups on an empty tree must return nil")
	}
}

func TestWalk_NextUniquePrevUniqueSkipDuplicates(t *testing.T) {
	var root TreeU32
	var a1, a2, b, c1, c2 NodeU32
	a1.Key, a2.Key = 5, 5
	b.Key = 10
	c1.Key, c2.Key = 15, 15

	InsertU32(&root, &a1)
	InsertU32(&root, &a2)
	InsertU32(&root, &b)
	InsertU32(&root, &c1)
	InsertU32(&root, &c2)

	first := First(&root)
	if first.Key != 5 {
		t.Fatalf("First() key = %d, want 5", first.Key)
	}
	n := NextUnique(first)
	if n == nil || n.Key != 10 {
		t.Fatalf("NextUnique should skip to key 10, got %v", n)
	}
	n = NextUnique(n)
	if n == nil || n.Key != 15 {
		t.Fatalf("NextUnique should land on key 15, got %v", n)
	}
	if NextUnique(n) != nil {
		t.Fatalf("NextUnique past the last distinct key should return nil")
	}

	last := Last(&root)
	p := PrevUnique(last)
	if p == nil || p.Key != 10 {
		t.Fatalf("PrevUnique should skip back to key 10, got %v", p)
	}
	p = PrevUnique(p)
	if p == nil || p.Key != 5 {
		t.Fatalf("PrevUnique should land on key 5, got %v", p)
	}
	if PrevUnique(p) != nil {
		t.Fatalf("PrevUnique before the first distinct key should return nil")
	}
}

func collectNodesU32(root *TreeU32) []*NodeU32 {
	var out []*NodeU32
	for n := First(root); n != nil; n = Next(n) {
		out = append(out, n)
	}
	return out
}

func TestWalk_DeletionLocality(t *testing.T) {
	var root TreeU32
	keys := []uint32{3, 1, 4, 1, 5, 9, 2, 6}
	nodes := make([]NodeU32, len(keys))
	for i, k := range keys {
		nodes[i].Key = k
		InsertU32(&root, &nodes[i])
	}

	before := collectNodesU32(&root)

	target := &nodes[3] // one of the two entries keyed 1
	Delete(target)

	after := collectNodesU32(&root)

	var want []*NodeU32
	for _, n := range before {
		if n != target {
			want = append(want, n)
		}
	}

	if len(after) != len(want) {
		t.Fatalf("expected %d entries after delete, got %d", len(want), len(after))
	}
	for i := range want {
		if after[i] != want[i] {
			t.Fatalf("sequence diverges from pre-deletion order minus the deleted element at position %d", i)
		}
	}
}
