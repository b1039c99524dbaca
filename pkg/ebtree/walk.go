package ebtree

// First returns the leftmost (lowest-keyed) entry in the tree, or nil
// if the tree is empty.
func First[K any](r *Root[K]) *Node[K] {
	return walkDown(r.Left, left)
}

// Last returns the rightmost (highest-keyed) entry in the tree, or
// nil if the tree is empty.
func Last[K any](r *Root[K]) *Node[K] {
	return walkDown(r.Left, right)
}

// climbPrev climbs from a parent link, looking for the nearest earlier
// leaf. It implements the shared tail of eb_prev and of the "climb"
// phase in eb32_lookup_le and friends.
func climbPrev[K any](p parentLink[K]) *Node[K] {
	for p.side == left {
		if p.root != nil {
			return nil
		}
		p = p.node.nodeP
	}
	return walkDown(p.node.children[left], right)
}

// climbNext is the mirror of climbPrev, shared by eb_next and the
// climb phase in eb32_lookup_ge and friends.
func climbNext[K any](p parentLink[K]) *Node[K] {
	for p.side == right {
		p = p.node.nodeP
	}
	if p.root != nil {
		return nil
	}
	rightChild := p.node.children[right]
	if rightChild.target == nil {
		return nil
	}
	return walkDown(rightChild, left)
}

// Next returns the entry immediately after n in key order, or nil if n
// is the last entry.
func Next[K any](n *Node[K]) *Node[K] {
	return climbNext(n.leafP)
}

// Prev returns the entry immediately before n in key order, or nil if
// n is the first entry.
func Prev[K any](n *Node[K]) *Node[K] {
	return climbPrev(n.leafP)
}

// NextUnique is like Next but skips over any duplicate sub-tree,
// returning the next entry with a distinct key.
func NextUnique[K any](n *Node[K]) *Node[K] {
	p := n.leafP
	for {
		if p.side == left {
			if p.root != nil {
				return nil
			}
			if p.node.bit >= 0 {
				break
			}
			p = p.node.nodeP
			continue
		}
		p = p.node.nodeP
	}
	rightChild := p.node.children[right]
	if rightChild.target == nil {
		return nil
	}
	return walkDown(rightChild, left)
}

// PrevUnique is like Prev but skips over any duplicate sub-tree,
// returning the previous entry with a distinct key.
func PrevUnique[K any](n *Node[K]) *Node[K] {
	p := n.leafP
	for {
		if p.side == right {
			if p.node.bit >= 0 {
				break
			}
			p = p.node.nodeP
			continue
		}
		if p.root != nil {
			return nil
		}
		p = p.node.nodeP
	}
	return walkDown(p.node.children[left], right)
}
