package Trees

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// base carries the state and plumbing shared by the four pointer-based tree
// variants: the root, the size counter, link rotations, subtree replacement,
// descent primitives, deep copy and the order self-check. Variant types embed
// it and add their balancing logic on top.
type base[T constraints.Ordered] struct {
	root *node[T]
	n    uint
}

// Size returns the number of elements.
// Time: O(1); Space: O(1)
func (u *base[T]) Size() uint {
	return u.n
}

// Empty reports whether the set has no elements.
func (u *base[T]) Empty() bool {
	return u.n == 0
}

// Clear drops every element. Nodes are released as a whole tree; child links
// own downward only, so no reference cycle survives the root.
// Time: O(1); Space: O(1)
func (u *base[T]) Clear() {
	u.root, u.n = nil, 0
}

// Minimum element of the set.
// Time: O(log n); Space: O(1)
func (u *base[T]) Minimum() (T, bool) {
	if u.root == nil {
		var zero T
		return zero, false
	}
	return u.root.min().v, true
}

// Maximum element of the set.
// Time: O(log n); Space: O(1)
func (u *base[T]) Maximum() (T, bool) {
	if u.root == nil {
		var zero T
		return zero, false
	}
	return u.root.max().v, true
}

// search descends to the node holding v, nil when absent.
// Time: O(log n); Space: O(1)
func (u *base[T]) search(v T) *node[T] {
	cur := u.root
	for cur != nil {
		if v < cur.v {
			cur = cur.l
		} else if cur.v < v {
			cur = cur.r
		} else {
			return cur
		}
	}
	return nil
}

// locate descends to the node holding v and also reports the last node
// visited, which is v's would-be parent when v is absent.
func (u *base[T]) locate(v T) (hit, last *node[T]) {
	cur := u.root
	for cur != nil {
		last = cur
		if v < cur.v {
			cur = cur.l
		} else if cur.v < v {
			cur = cur.r
		} else {
			return cur, last
		}
	}
	return nil, last
}

// lowerNode descends to the smallest node not less than v, nil when every
// element is less than v.
func (u *base[T]) lowerNode(v T) *node[T] {
	var cand *node[T]
	for cur := u.root; cur != nil; {
		if cur.v < v {
			cur = cur.r
		} else {
			cand = cur
			cur = cur.l
		}
	}
	return cand
}

// rotateLeft lifts x's right child into x's place. Links, parents and the
// root are rewired; variant metadata is left for the caller.
// Time: O(1); Space: O(1)
func (u *base[T]) rotateLeft(x *node[T]) {
	y := x.r
	x.r = y.l
	if y.l != nil {
		y.l.p = x
	}
	y.p = x.p
	if x.p == nil {
		u.root = y
	} else if x == x.p.l {
		x.p.l = y
	} else {
		x.p.r = y
	}
	y.l = x
	x.p = y
}

// rotateRight lifts x's left child into x's place.
// Time: O(1); Space: O(1)
func (u *base[T]) rotateRight(x *node[T]) {
	y := x.l
	x.l = y.r
	if y.r != nil {
		y.r.p = x
	}
	y.p = x.p
	if x.p == nil {
		u.root = y
	} else if x == x.p.r {
		x.p.r = y
	} else {
		x.p.l = y
	}
	y.r = x
	x.p = y
}

// transplant replaces the subtree rooted at a with the one rooted at b in
// a's parent; b may be nil.
func (u *base[T]) transplant(a, b *node[T]) {
	if a.p == nil {
		u.root = b
	} else if a == a.p.l {
		a.p.l = b
	} else {
		a.p.r = b
	}
	if b != nil {
		b.p = a.p
	}
}

// cloneRoot deep-copies the whole tree including metadata, preserving the
// exact shape. Iterative with an explicit worklist so degenerate shapes
// cannot exhaust the call stack.
// Time: O(n); Space: O(log n) expected
func (u *base[T]) cloneRoot() *node[T] {
	if u.root == nil {
		return nil
	}
	nr := &node[T]{v: u.root.v, meta: u.root.meta}
	st := []struct{ src, dst *node[T] }{{u.root, nr}}
	for len(st) > 0 {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		if c := top.src.l; c != nil {
			d := &node[T]{v: c.v, meta: c.meta, p: top.dst}
			top.dst.l = d
			st = append(st, struct{ src, dst *node[T] }{c, d})
		}
		if c := top.src.r; c != nil {
			d := &node[T]{v: c.v, meta: c.meta, p: top.dst}
			top.dst.r = d
			st = append(st, struct{ src, dst *node[T] }{c, d})
		}
	}
	return nr
}

// Find returns a cursor at v or the end cursor. Variants that restructure on
// lookup (splay) shadow this.
// Time: O(log n); Space: O(1)
func (u *base[T]) Find(v T) Cursor[T] {
	return &treeCursor[T]{t: u, n: u.search(v)}
}

// LowerBound returns a cursor at the smallest element not less than v, or
// the end cursor.
// Time: O(log n); Space: O(1)
func (u *base[T]) LowerBound(v T) Cursor[T] {
	return &treeCursor[T]{t: u, n: u.lowerNode(v)}
}

// Begin returns a cursor at the minimum element, equal to End when empty.
func (u *base[T]) Begin() Cursor[T] {
	if u.root == nil {
		return &treeCursor[T]{t: u}
	}
	return &treeCursor[T]{t: u, n: u.root.min()}
}

// End returns the one-past-maximum cursor.
func (u *base[T]) End() Cursor[T] {
	return &treeCursor[T]{t: u}
}

// checkOrder verifies what every BST variant shares: strict ascending
// in-order sequence, mutual parent/child links, a parentless root and a size
// counter matching the walk. The walk runs over parent links, so it needs no
// stack and holds on degenerate shapes too.
func (u *base[T]) checkOrder() error {
	if u.root == nil {
		if u.n != 0 {
			return fmt.Errorf("%w: size %d on empty tree", ErrCorrupt, u.n)
		}
		return nil
	}
	if u.root.p != nil {
		return fmt.Errorf("%w: root has a parent", ErrCorrupt)
	}
	var cnt uint
	var prev *node[T]
	for cur := u.root.min(); cur != nil; cur = cur.next() {
		if cur.l != nil && cur.l.p != cur {
			return fmt.Errorf("%w: broken parent link under %v", ErrCorrupt, cur.v)
		}
		if cur.r != nil && cur.r.p != cur {
			return fmt.Errorf("%w: broken parent link under %v", ErrCorrupt, cur.v)
		}
		if prev != nil && !(prev.v < cur.v) {
			return fmt.Errorf("%w: order violation at %v", ErrCorrupt, cur.v)
		}
		prev = cur
		cnt++
	}
	if cnt != u.n {
		return fmt.Errorf("%w: size %d but %d nodes reachable", ErrCorrupt, u.n, cnt)
	}
	return nil
}
