package ebtree

import "testing"

func TestI128_SignedOrderingAcrossHalves(t *testing.T) {
	var root TreeI128
	keys := []I128{
		{Hi: -1, Lo: 0xFFFFFFFFFFFFFFFF},
		{Hi: -1, Lo: 0},
		{Hi: 0, Lo: 0},
		{Hi: 0, Lo: 1},
		{Hi: 1, Lo: 0},
	}
	nodes := make([]NodeI128, len(keys))
	for i, k := range keys {
		nodes[i].Key = k
		InsertI128(&root, &nodes[i])
	}

	var got []I128
	for n := First(&root); n != nil; n = Next(n) {
		got = append(got, n.Key)
	}
	if len(got) != len(keys) {
		t.Fatalf("got %d entries, want %d", len(got), len(keys))
	}
	want := []I128{
		{Hi: -1, Lo: 0},
		{Hi: -1, Lo: 0xFFFFFFFFFFFFFFFF},
		{Hi: 0, Lo: 0},
		{Hi: 0, Lo: 1},
		{Hi: 1, Lo: 0},
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ordering mismatch at %d: got %v, want %v", i, got, want)
		}
	}
}

func TestI128_LookupAndRange(t *testing.T) {
	var root TreeI128
	keys := []I128{{Hi: -2, Lo: 0}, {Hi: -1, Lo: 5}, {Hi: 0, Lo: 0}, {Hi: 1, Lo: 5}}
	nodes := make([]NodeI128, len(keys))
	for i, k := range keys {
		nodes[i].Key = k
		InsertI128(&root, &nodes[i])
	}
	for _, k := range keys {
		if got := LookupI128(&root, k); got == nil || got.Key != k {
			t.Fatalf("LookupI128(%v) missing", k)
		}
	}
	le := LookupLEI128(&root, I128{Hi: -1, Lo: 100})
	if le == nil || le.Key != (I128{Hi: -1, Lo: 5}) {
		t.Fatalf("LookupLEI128 = %v, want hi=-1,lo=5", le)
	}
	ge := LookupGEI128(&root, I128{Hi: -1, Lo: 100})
	if ge == nil || ge.Key != (I128{Hi: 0, Lo: 0}) {
		t.Fatalf("LookupGEI128 = %v, want hi=0,lo=0", ge)
	}
}
