package Trees

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// AVLTree is a height-balanced binary search tree: for every node the
// heights of the two subtrees differ by at most one. Heights are cached in
// node metadata (a leaf has height 1); both mutations walk the parents back
// to the root, recomputing heights and rotating wherever the balance factor
// reaches ±2. Lookups are plain descents.
type AVLTree[T constraints.Ordered] struct {
	base[T]
}

// MakeAVL returns an empty AVLTree. AVLTree shouldn't be created directly
// using struct literal.
func MakeAVL[T constraints.Ordered]() *AVLTree[T] {
	return &AVLTree[T]{}
}

// height of the subtree rooted at n, 0 for an absent child.
func height[T any](n *node[T]) int {
	if n == nil {
		return 0
	}
	return int(n.meta)
}

// reheight recomputes n's cached height from its children.
func reheight[T any](n *node[T]) {
	lh, rh := height(n.l), height(n.r)
	if lh < rh {
		lh = rh
	}
	n.meta = uint32(lh + 1)
}

// Insert v. Returns true if v was absent.
// Time: O(log n); Space: O(1)
func (u *AVLTree[T]) Insert(v T) bool {
	if u.root == nil {
		u.root = &node[T]{v: v, meta: 1}
		u.n = 1
		return true
	}
	cur := u.root
	for {
		if v < cur.v {
			if cur.l == nil {
				cur.l = &node[T]{v: v, meta: 1, p: cur}
				break
			}
			cur = cur.l
		} else if cur.v < v {
			if cur.r == nil {
				cur.r = &node[T]{v: v, meta: 1, p: cur}
				break
			}
			cur = cur.r
		} else {
			return false
		}
	}
	u.n++
	u.retrace(cur)
	return true
}

// Remove v. Returns true if v was present. A node with two children is
// replaced by relinking its in-order successor into its position (values are
// not moved between nodes, so cursors at other elements stay valid), after
// which the successor's old parent is the deepest node whose height may have
// changed.
// Time: O(log n); Space: O(1)
func (u *AVLTree[T]) Remove(v T) bool {
	z := u.search(v)
	if z == nil {
		return false
	}
	u.n--
	start := z.p
	switch {
	case z.l == nil:
		u.transplant(z, z.r)
	case z.r == nil:
		u.transplant(z, z.l)
	default:
		y := z.r.min()
		if y.p == z {
			start = y
		} else {
			start = y.p
			u.transplant(y, y.r)
			y.r = z.r
			y.r.p = y
		}
		u.transplant(z, y)
		y.l = z.l
		y.l.p = y
		y.meta = z.meta
	}
	u.retrace(start)
	return true
}

// retrace walks from x to the root, refreshing cached heights and restoring
// the balance invariant.
func (u *AVLTree[T]) retrace(x *node[T]) {
	for ; x != nil; x = x.p {
		reheight(x)
		x = u.rebalance(x)
	}
}

// rebalance restores |bf| <= 1 at x, applying the inside-case double
// rotation first when the taller child leans the other way. Returns the root
// of the rebalanced subtree.
func (u *AVLTree[T]) rebalance(x *node[T]) *node[T] {
	switch bf := height(x.r) - height(x.l); {
	case bf > 1:
		if height(x.r.l) > height(x.r.r) {
			c := x.r
			u.rotateRight(c)
			reheight(c)
			reheight(c.p)
		}
		u.rotateLeft(x)
		reheight(x)
		reheight(x.p)
		return x.p
	case bf < -1:
		if height(x.l.r) > height(x.l.l) {
			c := x.l
			u.rotateLeft(c)
			reheight(c)
			reheight(c.p)
		}
		u.rotateRight(x)
		reheight(x)
		reheight(x.p)
		return x.p
	}
	return x
}

// Clone returns a deep copy with the same shape and cached heights.
// Time: O(n)
func (u *AVLTree[T]) Clone() Set[T] {
	return &AVLTree[T]{base[T]{root: u.cloneRoot(), n: u.n}}
}

// Check verifies BST order plus the AVL invariant: cached heights match the
// recomputed ones and every balance factor is within ±1.
func (u *AVLTree[T]) Check() error {
	if err := u.checkOrder(); err != nil {
		return err
	}
	_, err := checkHeights(u.root)
	return err
}

func checkHeights[T constraints.Ordered](n *node[T]) (int, error) {
	if n == nil {
		return 0, nil
	}
	lh, err := checkHeights(n.l)
	if err != nil {
		return 0, err
	}
	rh, err := checkHeights(n.r)
	if err != nil {
		return 0, err
	}
	if d := rh - lh; d < -1 || d > 1 {
		return 0, fmt.Errorf("%w: balance factor %d at %v", ErrCorrupt, d, n.v)
	}
	h := lh
	if rh > lh {
		h = rh
	}
	h++
	if int(n.meta) != h {
		return 0, fmt.Errorf("%w: cached height %d at %v, recomputed %d", ErrCorrupt, n.meta, n.v, h)
	}
	return h, nil
}
