package Trees

import "golang.org/x/exp/constraints"

// SplayTree is a self-adjusting binary search tree with no per-node
// metadata: every access, including lookups, finishes by splaying the
// touched node to the root, which makes recently used elements cheap and
// gives amortised O(log n) per operation. Because Find and LowerBound
// restructure the tree, cursors into a splay tree should be re-acquired
// after any call other than Size/Empty/Begin/End.
type SplayTree[T constraints.Ordered] struct {
	base[T]
}

// MakeSplay returns an empty SplayTree. SplayTree shouldn't be created
// directly using struct literal.
func MakeSplay[T constraints.Ordered]() *SplayTree[T] {
	return &SplayTree[T]{}
}

// splay moves x to the root by zig, zig-zig and zig-zag steps. In the
// zig-zig case the grandparent is rotated before the parent.
func (u *SplayTree[T]) splay(x *node[T]) {
	for x.p != nil {
		p := x.p
		g := p.p
		switch {
		case g == nil: // zig
			if x == p.l {
				u.rotateRight(p)
			} else {
				u.rotateLeft(p)
			}
		case (x == p.l) == (p == g.l): // zig-zig
			if x == p.l {
				u.rotateRight(g)
				u.rotateRight(p)
			} else {
				u.rotateLeft(g)
				u.rotateLeft(p)
			}
		default: // zig-zag
			if x == p.l {
				u.rotateRight(p)
				u.rotateLeft(g)
			} else {
				u.rotateLeft(p)
				u.rotateRight(g)
			}
		}
	}
}

// Insert v. Returns true if v was absent. Either way the affected node (the
// new leaf, or the existing duplicate) ends up at the root.
// Time: amortised O(log n); Space: O(1)
func (u *SplayTree[T]) Insert(v T) bool {
	hit, last := u.locate(v)
	if hit != nil {
		u.splay(hit)
		return false
	}
	z := &node[T]{v: v, p: last}
	if last == nil {
		u.root = z
	} else if v < last.v {
		last.l = z
	} else {
		last.r = z
	}
	u.n++
	u.splay(z)
	return true
}

// Remove v. Returns true if v was present: the target is splayed to the
// root, cut out, and its subtrees are joined by splaying the left subtree's
// maximum, which then has a free right slot. An absent key still splays the
// last node visited.
// Time: amortised O(log n); Space: O(1)
func (u *SplayTree[T]) Remove(v T) bool {
	hit, last := u.locate(v)
	if hit == nil {
		if last != nil {
			u.splay(last)
		}
		return false
	}
	u.splay(hit)
	l, r := hit.l, hit.r
	if l != nil {
		l.p = nil
	}
	if r != nil {
		r.p = nil
	}
	if l == nil {
		u.root = r
	} else {
		u.root = l
		m := l.max()
		u.splay(m)
		m.r = r
		if r != nil {
			r.p = m
		}
	}
	u.n--
	return true
}

// Find returns a cursor at v or the end cursor, splaying the found node, or
// the last visited one when v is absent.
// Time: amortised O(log n)
func (u *SplayTree[T]) Find(v T) Cursor[T] {
	hit, last := u.locate(v)
	if hit != nil {
		u.splay(hit)
	} else if last != nil {
		u.splay(last)
	}
	return &treeCursor[T]{t: &u.base, n: hit}
}

// LowerBound returns a cursor at the smallest element not less than v, or
// the end cursor. The returned node is splayed; when the result is end, the
// last visited node is.
// Time: amortised O(log n)
func (u *SplayTree[T]) LowerBound(v T) Cursor[T] {
	var cand, last *node[T]
	for cur := u.root; cur != nil; {
		last = cur
		if cur.v < v {
			cur = cur.r
		} else {
			cand = cur
			cur = cur.l
		}
	}
	if cand != nil {
		u.splay(cand)
	} else if last != nil {
		u.splay(last)
	}
	return &treeCursor[T]{t: &u.base, n: cand}
}

// Clone returns a deep copy with the same shape.
// Time: O(n)
func (u *SplayTree[T]) Clone() Set[T] {
	return &SplayTree[T]{base[T]{root: u.cloneRoot(), n: u.n}}
}

// Check verifies BST order; a splay tree maintains no other invariant.
func (u *SplayTree[T]) Check() error {
	return u.checkOrder()
}
