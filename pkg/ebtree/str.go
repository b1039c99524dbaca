package ebtree

// NodeStr is the node header for a NUL-terminated string-keyed tree
// (spec.md §9, grounded on ebsttree.h). Key must be a NUL-terminated
// byte slice; the trailing NUL is the variant's sole length signal, so
// every key passed to Insert/Lookup needs one.
type NodeStr = Node[[]byte]

// TreeStr is the root of a string-keyed tree.
type TreeStr = Root[[]byte]

// InsertStr inserts newNode (with Key already set to a NUL-terminated
// byte slice) into root, ordering lexicographically. Ports
// ebsttree.h's eb_insert_st, using stringEqualBits in place of
// equal_bits so a short key's terminating NUL stops the scan instead
// of running past the end of its backing array.
func InsertStr(root *TreeStr, newNode *NodeStr) *NodeStr {
	if root.Left.target == nil {
		root.Left = childLink[[]byte]{target: newNode, kind: leafKind}
		newNode.leafP = parentLink[[]byte]{root: root, side: left}
		newNode.nodeP = parentLink[[]byte]{}
		return newNode
	}

	troot := root.Left
	parentSlot := parentLink[[]byte]{root: root, side: left}
	var old *NodeStr
	atLeaf := false

	for {
		if troot.kind == leafKind {
			old = troot.target
			atLeaf = true
			break
		}
		old = troot.target
		if old.bit < 0 {
			atLeaf = false
			break
		}
		common := stringEqualBits(newNode.Key, old.Key, 0)
		if common >= 0 && common < int(old.bit) {
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

	diverge := stringEqualBits(newNode.Key, old.Key, 0)
	if diverge < 0 {
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

	if diverge < 0 {
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

// LookupStr finds the entry with key exactly x (NUL-terminated), or nil.
func LookupStr(root *TreeStr, x []byte) *NodeStr {
	t := root.Left
	if t.target == nil {
		return nil
	}
	for {
		if t.kind == leafKind {
			if stringEqualBits(x, t.target.Key, 0) < 0 {
				return t.target
			}
			return nil
		}
		n := t.target
		if n.bit < 0 {
			if stringEqualBits(x, n.Key, 0) < 0 {
				return walkDown(n.children[left], left)
			}
			return nil
		}
		common := stringEqualBits(x, n.Key, 0)
		if common >= 0 && common < int(n.bit) {
			return nil
		}
		sd := left
		if getBit(x, uint(n.bit)) != 0 {
			sd = right
		}
		t = n.children[sd]
	}
}
