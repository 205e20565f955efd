package Trees

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Node colours, kept in node metadata. Red is the zero value so a freshly
// attached node is red without an extra store; absent children count as
// black.
const (
	red   uint32 = 0
	black uint32 = 1
)

func isRed[T any](n *node[T]) bool {
	return n != nil && n.meta == red
}

// RBTree is a red-black binary search tree: the root is black, no red node
// has a red child, and every path from a node to an absent child carries the
// same number of black nodes. Insertion repairs by uncle case analysis,
// removal by sibling case analysis; both finish in O(log n) with at most
// three rotations.
type RBTree[T constraints.Ordered] struct {
	base[T]
}

// MakeRB returns an empty RBTree. RBTree shouldn't be created directly using
// struct literal.
func MakeRB[T constraints.Ordered]() *RBTree[T] {
	return &RBTree[T]{}
}

// Insert v. Returns true if v was absent. The new node is attached red, then
// the colour invariants are restored walking grandparents upward.
// Time: O(log n); Space: O(1)
func (u *RBTree[T]) Insert(v T) bool {
	var p *node[T]
	cur := u.root
	for cur != nil {
		p = cur
		if v < cur.v {
			cur = cur.l
		} else if cur.v < v {
			cur = cur.r
		} else {
			return false
		}
	}
	z := &node[T]{v: v, p: p}
	if p == nil {
		u.root = z
	} else if v < p.v {
		p.l = z
	} else {
		p.r = z
	}
	u.n++
	u.insertFix(z)
	return true
}

func (u *RBTree[T]) insertFix(z *node[T]) {
	for isRed(z.p) {
		p := z.p
		g := p.p // a red parent is never the root
		if p == g.l {
			if y := g.r; isRed(y) {
				p.meta, y.meta = black, black
				g.meta = red
				z = g
			} else {
				if z == p.r {
					z = p
					u.rotateLeft(z)
					p = z.p
				}
				p.meta = black
				g.meta = red
				u.rotateRight(g)
			}
		} else {
			if y := g.l; isRed(y) {
				p.meta, y.meta = black, black
				g.meta = red
				z = g
			} else {
				if z == p.l {
					z = p
					u.rotateRight(z)
					p = z.p
				}
				p.meta = black
				g.meta = red
				u.rotateLeft(g)
			}
		}
	}
	u.root.meta = black
}

// Remove v. Returns true if v was present. A node with two children is
// replaced by relinking its in-order successor, which inherits the removed
// node's colour; when the spliced-out position was black the double-black is
// repaired by sibling case analysis.
// Time: O(log n); Space: O(1)
func (u *RBTree[T]) Remove(v T) bool {
	z := u.search(v)
	if z == nil {
		return false
	}
	u.n--
	y := z
	yWasBlack := y.meta == black
	var x, xp *node[T]
	switch {
	case z.l == nil:
		x, xp = z.r, z.p
		u.transplant(z, z.r)
	case z.r == nil:
		x, xp = z.l, z.p
		u.transplant(z, z.l)
	default:
		y = z.r.min()
		yWasBlack = y.meta == black
		x = y.r
		if y.p == z {
			xp = y
		} else {
			xp = y.p
			u.transplant(y, y.r)
			y.r = z.r
			y.r.p = y
		}
		u.transplant(z, y)
		y.l = z.l
		y.l.p = y
		y.meta = z.meta
	}
	if yWasBlack {
		u.removeFix(x, xp)
	}
	return true
}

// removeFix absorbs the missing black on x, which may be an absent child;
// p is x's parent. The sibling is never absent while a double-black exists.
func (u *RBTree[T]) removeFix(x, p *node[T]) {
	for x != u.root && !isRed(x) && p != nil {
		if x == p.l {
			w := p.r
			if isRed(w) {
				w.meta = black
				p.meta = red
				u.rotateLeft(p)
				w = p.r
			}
			if !isRed(w.l) && !isRed(w.r) {
				w.meta = red
				x, p = p, p.p
			} else {
				if !isRed(w.r) {
					w.l.meta = black
					w.meta = red
					u.rotateRight(w)
					w = p.r
				}
				w.meta = p.meta
				p.meta = black
				w.r.meta = black
				u.rotateLeft(p)
				x, p = u.root, nil
			}
		} else {
			w := p.l
			if isRed(w) {
				w.meta = black
				p.meta = red
				u.rotateRight(p)
				w = p.l
			}
			if !isRed(w.l) && !isRed(w.r) {
				w.meta = red
				x, p = p, p.p
			} else {
				if !isRed(w.l) {
					w.r.meta = black
					w.meta = red
					u.rotateLeft(w)
					w = p.l
				}
				w.meta = p.meta
				p.meta = black
				w.l.meta = black
				u.rotateRight(p)
				x, p = u.root, nil
			}
		}
	}
	if x != nil {
		x.meta = black
	}
}

// Clone returns a deep copy with identical shape and colours.
// Time: O(n)
func (u *RBTree[T]) Clone() Set[T] {
	return &RBTree[T]{base[T]{root: u.cloneRoot(), n: u.n}}
}

// Check verifies BST order plus the red-black invariants: black root, no two
// reds in a row, and equal black counts on every root-to-absent-child path.
func (u *RBTree[T]) Check() error {
	if err := u.checkOrder(); err != nil {
		return err
	}
	if isRed(u.root) {
		return fmt.Errorf("%w: red root", ErrCorrupt)
	}
	_, err := blackHeight(u.root)
	return err
}

func blackHeight[T constraints.Ordered](n *node[T]) (int, error) {
	if n == nil {
		return 1, nil
	}
	if n.meta != red && n.meta != black {
		return 0, fmt.Errorf("%w: node %v has colour %d", ErrCorrupt, n.v, n.meta)
	}
	if isRed(n) && (isRed(n.l) || isRed(n.r)) {
		return 0, fmt.Errorf("%w: red node %v has a red child", ErrCorrupt, n.v)
	}
	lb, err := blackHeight(n.l)
	if err != nil {
		return 0, err
	}
	rb, err := blackHeight(n.r)
	if err != nil {
		return 0, err
	}
	if lb != rb {
		return 0, fmt.Errorf("%w: black height differs under %v (%d vs %d)", ErrCorrupt, n.v, lb, rb)
	}
	if n.meta == black {
		lb++
	}
	return lb, nil
}
