package ebtree

// NodeMB is the node header for a fixed-length multi-byte-keyed tree
// (spec.md §9, grounded on ebmbtree.h). Key holds the raw key bytes;
// all entries in a given tree must carry keys of the same length,
// supplied by the caller as keyLen to every operation.
type NodeMB = Node[[]byte]

// TreeMB is the root of a multi-byte-keyed tree.
type TreeMB = Root[[]byte]

// InsertMB inserts newNode (with Key already set to a keyLen-byte
// slice) into root, ordering lexicographically by the raw bytes.
// Ports ebmbtree.h's inline eb_insert_mb, replacing its bit-packed
// side/kind tagging with childLink/parentLink and its equal_bits/
// check_bits comparisons on raw byte slices.
func InsertMB(root *TreeMB, newNode *NodeMB, keyLen int) *NodeMB {
	bitLen := keyLen * 8

	if root.Left.target == nil {
		root.Left = childLink[[]byte]{target: newNode, kind: leafKind}
		newNode.leafP = parentLink[[]byte]{root: root, side: left}
		newNode.nodeP = parentLink[[]byte]{}
		return newNode
	}

	troot := root.Left
	parentSlot := parentLink[[]byte]{root: root, side: left}
	var old *NodeMB
	atLeaf := false

	for {
		if troot.kind == leafKind {
			old = troot.target
			atLeaf = true
			break
		}
		old = troot.target
		if old.bit < 0 || equalBits(newNode.Key, old.Key, 0, int(old.bit)) < int(old.bit) {
			atLeaf = false
			break
		}
		sd := left
		if getBit(newNode.Key, uint(old.bit)) != 0 {
			sd = right
		}
		parentSlot = parentLink[[]byte]{node: old, side: sd}
		troot = old.children[sd]
	}

	if atLeaf {
		newNode.nodeP = old.leafP
	} else {
		newNode.nodeP = old.nodeP
	}

	diverge := equalBits(newNode.Key, old.Key, 0, bitLen)
	if diverge >= bitLen {
		newNode.bit = -1
		if root.Unique {
			return old
		}
		if troot.kind != leafKind {
			return insertDuplicate(old, newNode)
		}
	} else {
		newNode.bit = int32(diverge)
	}

	if diverge >= bitLen {
		diverge = 0
	}
	if cmpBits(newNode.Key, old.Key, uint(diverge)) >= 0 {
		newNode.children[left] = troot
		newNode.children[right] = childLink[[]byte]{target: newNode, kind: leafKind}
		newNode.leafP = parentLink[[]byte]{node: newNode, side: right}
		setBackLink(old, atLeaf, parentLink[[]byte]{node: newNode, side: left})
	} else {
		newNode.children[left] = childLink[[]byte]{target: newNode, kind: leafKind}
		newNode.children[right] = troot
		newNode.leafP = parentLink[[]byte]{node: newNode, side: left}
		setBackLink(old, atLeaf, parentLink[[]byte]{node: newNode, side: right})
	}

	newLink := childLink[[]byte]{target: newNode, kind: nodeKind}
	if parentSlot.root != nil {
		parentSlot.root.Left = newLink
	} else {
		parentSlot.node.children[parentSlot.side] = newLink
	}
	return newNode
}

// LookupMB finds the entry with key exactly x (keyLen bytes), or nil.
func LookupMB(root *TreeMB, x []byte, keyLen int) *NodeMB {
	bitLen := keyLen * 8
	t := root.Left
	if t.target == nil {
		return nil
	}
	for {
		if t.kind == leafKind {
			if equalBits(x, t.target.Key, 0, bitLen) >= bitLen {
				return t.target
			}
			return nil
		}
		n := t.target
		if n.bit < 0 {
			if equalBits(x, n.Key, 0, bitLen) >= bitLen {
				return walkDown(n.children[left], left)
			}
			return nil
		}
		if equalBits(x, n.Key, 0, int(n.bit)) < int(n.bit) {
			return nil
		}
		sd := left
		if getBit(x, uint(n.bit)) != 0 {
			sd = right
		}
		t = n.children[sd]
	}
}
