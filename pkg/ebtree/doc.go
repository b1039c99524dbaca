// Package ebtree implements an Elastic Binary Tree (EBT): an ordered,
// intrusive radix trie that maps integer or byte-string keys to
// embedded user records.
//
// # Shape
//
// The tree is deliberately unbalanced. Every inserted record
// contributes exactly one cell (a [Node]) that plays two roles at
// once: an intermediate node discriminating on one key bit (or one
// run of equal bits, for the byte-string variants) and a leaf holding
// the record's key. No node is ever allocated purely to hold
// structure; the library never allocates at all, it only links and
// unlinks cells the caller owns.
//
// Duplicate keys are handled by growing a secondary sub-tree rooted at
// a node with a negative bit index, which guarantees next/prev visit
// duplicates in insertion order without any special-casing elsewhere.
//
// # Variants
//
// One generic substrate ([Root], [Node], [First], [Last], [Next],
// [Prev], [Delete], ...) is shared by every key type. Each key width
// gets a small named front-end on top, mirroring the upstream C
// library's eb32/eb64/eb128/ebpt/ebmb/ebst split:
//
//   - U32/I32, U64/I64, U128/I128 — scalar front-ends
//   - Ptr — uintptr keys
//   - MB — fixed comparison-length byte-string keys
//   - Str — NUL-terminated byte-string keys
//
// Signed variants bias the key's sign bit before descending so that
// negative values sort before positive ones, then compare the stored
// key natively for equality and ordering.
//
// # Concurrency
//
// Operations are not safe for concurrent use. Mutating operations
// (insert, delete) require exclusive access to the tree; read-only
// operations require at least a read lock, since they dereference
// parent back-links a concurrent insert/delete could be rewriting.
package ebtree
