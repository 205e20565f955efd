package Trees

import (
	"fmt"
	"math/rand"

	"golang.org/x/exp/constraints"
)

// TreapTree is a randomised binary search tree: keys obey BST order while
// node priorities obey max-heap order (a parent's priority is never below a
// child's), which keeps the expected height logarithmic. Priorities are
// 32-bit, uniform in [1, 2³²−1], drawn from a generator owned by the set, so
// two sets with the same seed and the same operation history have identical
// shapes.
type TreapTree[T constraints.Ordered] struct {
	base[T]
	rng  *rand.Rand
	seed uint32
}

// MakeTreap returns an empty TreapTree whose priority stream is determined
// by seed. TreapTree shouldn't be created directly using struct literal.
func MakeTreap[T constraints.Ordered](seed uint32) *TreapTree[T] {
	return &TreapTree[T]{rng: newRng(seed), seed: seed}
}

// priority draws the next priority, uniform over [1, 2³²−1]. Zero is
// rejected rather than masked so the distribution stays uniform.
func (u *TreapTree[T]) priority() uint32 {
	for {
		if p := u.rng.Uint32(); p != 0 {
			return p
		}
	}
}

// split partitions the subtree rooted at t into keys < v and keys >= v.
// Heap order inside both halves is preserved; the returned roots are
// reparented by the caller.
func split[T constraints.Ordered](t *node[T], v T) (a, b *node[T]) {
	if t == nil {
		return nil, nil
	}
	if t.v < v {
		l, r := split(t.r, v)
		t.r = l
		if l != nil {
			l.p = t
		}
		return t, r
	}
	l, r := split(t.l, v)
	t.l = r
	if r != nil {
		r.p = t
	}
	return l, t
}

// merge joins two treaps where every key of a precedes every key of b. The
// root is whichever side holds the larger priority.
func merge[T constraints.Ordered](a, b *node[T]) *node[T] {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if a.meta >= b.meta {
		r := merge(a.r, b)
		a.r = r
		r.p = a
		return a
	}
	l := merge(a, b.l)
	b.l = l
	l.p = b
	return b
}

// Insert v. Returns true if v was absent. The new node descends by key while
// the priorities above it are larger; the subtree it displaces is split by v
// and adopted as its children.
// Time: expected O(log n); Space: expected O(log n) for the split recursion
func (u *TreapTree[T]) Insert(v T) bool {
	if u.search(v) != nil {
		return false
	}
	pri := u.priority()
	var par *node[T]
	cur := u.root
	for cur != nil && cur.meta > pri {
		par = cur
		if v < cur.v {
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	z := &node[T]{v: v, meta: pri, p: par}
	l, r := split(cur, v)
	z.l = l
	if l != nil {
		l.p = z
	}
	z.r = r
	if r != nil {
		r.p = z
	}
	if par == nil {
		u.root = z
	} else if v < par.v {
		par.l = z
	} else {
		par.r = z
	}
	u.n++
	return true
}

// Remove v. Returns true if v was present: the node is replaced by the merge
// of its children.
// Time: expected O(log n)
func (u *TreapTree[T]) Remove(v T) bool {
	z := u.search(v)
	if z == nil {
		return false
	}
	u.transplant(z, merge(z.l, z.r))
	u.n--
	return true
}

// Clone returns a deep copy with the same shape and priorities. The copy's
// generator restarts from the recorded seed; the source's state is untouched.
// Time: O(n)
func (u *TreapTree[T]) Clone() Set[T] {
	return &TreapTree[T]{base[T]{root: u.cloneRoot(), n: u.n}, newRng(u.seed), u.seed}
}

// Check verifies BST order plus heap order on priorities and that no
// priority is zero. Heap order is read off the same parent-link walk the
// order check uses.
func (u *TreapTree[T]) Check() error {
	if err := u.checkOrder(); err != nil {
		return err
	}
	if u.root == nil {
		return nil
	}
	for cur := u.root.min(); cur != nil; cur = cur.next() {
		if cur.meta == 0 {
			return fmt.Errorf("%w: zero priority at %v", ErrCorrupt, cur.v)
		}
		if cur.p != nil && cur.p.meta < cur.meta {
			return fmt.Errorf("%w: heap order violation at %v (%d above %d)", ErrCorrupt, cur.v, cur.p.meta, cur.meta)
		}
	}
	return nil
}
