package ebtree

// Delete removes n from its tree if it is currently linked, in O(1).
// It is a no-op if n is not linked (spec.md §7: deletion of an
// unlinked cell is defined as a no-op, not an error).
//
// The tricky part, ported directly from ebtree.c's eb_delete, is that
// removing a leaf also frees up the cell's former parent (which only
// ever existed to host that leaf and its sibling). If n's own node
// role is in use elsewhere in the tree, that freed parent cell is
// promoted into n's node-role slot rather than discarded, so the
// single allocation backing n can keep serving as an intermediate
// node after n itself is gone.
func Delete[K any](n *Node[K]) {
	if !n.leafP.isSet() {
		return
	}

	pside := n.leafP.side

	if n.leafP.root != nil {
		// n is the sole child directly under the tree root; nothing
		// else references it, so unlinking is trivial.
		n.leafP.root.Left = childLink[K]{}
		n.leafP = parentLink[K]{}
		return
	}

	parent := n.leafP.node
	sibling := parent.children[opposite(pside)]

	gp := parent.nodeP
	if gp.root != nil {
		gp.root.Left = sibling
	} else {
		gp.node.children[gp.side] = sibling
	}

	sibLink := parentLink[K]{root: gp.root, node: gp.node, side: gp.side}
	if sibling.kind == leafKind {
		sibling.target.leafP = sibLink
	} else {
		sibling.target.nodeP = sibLink
	}

	// The parent's node role is now unused. It may still be serving
	// as n's own node role below, in which case we reuse it next;
	// otherwise it is simply abandoned (the caller owns its memory).
	parent.nodeP = parentLink[K]{}

	if !n.nodeP.isSet() {
		n.leafP = parentLink[K]{}
		return
	}

	// n's node role is in use elsewhere: move the freed parent cell
	// into that role, preserving n's structural position.
	parent.nodeP = n.nodeP
	parent.children = n.children
	parent.bit = n.bit
	parent.pfx = n.pfx

	ggp := parent.nodeP
	newLink := childLink[K]{target: parent, kind: nodeKind}
	if ggp.root != nil {
		ggp.root.Left = newLink
	} else {
		ggp.node.children[ggp.side] = newLink
	}

	for _, sd := range [2]side{left, right} {
		c := parent.children[sd]
		if c.target == nil {
			continue
		}
		childBack := parentLink[K]{node: parent, side: sd}
		if c.kind == nodeKind {
			c.target.nodeP = childBack
		} else {
			c.target.leafP = childBack
		}
	}

	n.leafP = parentLink[K]{}
}
