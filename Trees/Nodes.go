package Trees

// A node shared by the pointer-based tree variants.
// l and r own their subtrees; p is a non-owning back reference, nil at the
// root. meta is interpreted per variant: cached height for AVL (leaves are
// 1), colour for red-black (red is 0 so fresh nodes are red by zero value),
// priority for treap, unused by splay.
type node[T any] struct {
	v    T
	l, r *node[T]
	p    *node[T]
	meta uint32
}

// min returns the leftmost node of the subtree rooted at n.
// Time: O(log n) on balanced trees.
func (n *node[T]) min() *node[T] {
	for n.l != nil {
		n = n.l
	}
	return n
}

// max returns the rightmost node of the subtree rooted at n.
func (n *node[T]) max() *node[T] {
	for n.r != nil {
		n = n.r
	}
	return n
}

// next returns the in-order successor, nil when n is the maximum: the
// minimum of the right subtree when there is one, otherwise the first
// ancestor reached from a left child.
func (n *node[T]) next() *node[T] {
	if n.r != nil {
		return n.r.min()
	}
	for n.p != nil && n == n.p.r {
		n = n.p
	}
	return n.p
}

// prev is the mirror of next, nil when n is the minimum.
func (n *node[T]) prev() *node[T] {
	if n.l != nil {
		return n.l.max()
	}
	for n.p != nil && n == n.p.l {
		n = n.p
	}
	return n.p
}
