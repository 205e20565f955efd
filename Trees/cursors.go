package Trees

import "golang.org/x/exp/constraints"

// treeCursor is the navigation record shared by the pointer-based variants:
// the owning tree plus the current node, nil meaning the end position. Steps
// follow the in-order successor/predecessor walks over parent links; a failed
// step leaves the cursor in place.
type treeCursor[T constraints.Ordered] struct {
	t *base[T]
	n *node[T]
}

func (c *treeCursor[T]) Clone() Cursor[T] {
	d := *c
	return &d
}

func (c *treeCursor[T]) Next() error {
	if c.n == nil {
		return ErrOutOfRange
	}
	c.n = c.n.next()
	return nil
}

func (c *treeCursor[T]) Prev() error {
	if c.n == nil {
		if c.t.root == nil {
			return ErrOutOfRange
		}
		c.n = c.t.root.max()
		return nil
	}
	p := c.n.prev()
	if p == nil {
		return ErrOutOfRange
	}
	c.n = p
	return nil
}

func (c *treeCursor[T]) Value() (T, error) {
	if c.n == nil {
		var zero T
		return zero, ErrOutOfRange
	}
	return c.n.v, nil
}

func (c *treeCursor[T]) Equal(o Cursor[T]) bool {
	oc, ok := o.(*treeCursor[T])
	return ok && oc.t == c.t && oc.n == c.n
}

// valCursor navigates a wrapped container that exposes ordered scans but no
// stateful iterator (the google/btree and GoLLRB baselines). It remembers the
// current element by value and re-descends for every step, so a step costs
// one O(log n) scan. owner identifies the set for Equal.
type valCursor[T constraints.Ordered] struct {
	owner any
	succ  func(T) (T, bool)
	pred  func(T) (T, bool)
	last  func() (T, bool)
	cur   T
	end   bool
}

func (c *valCursor[T]) Clone() Cursor[T] {
	d := *c
	return &d
}

func (c *valCursor[T]) Next() error {
	if c.end {
		return ErrOutOfRange
	}
	nx, ok := c.succ(c.cur)
	if !ok {
		var zero T
		c.cur, c.end = zero, true
		return nil
	}
	c.cur = nx
	return nil
}

func (c *valCursor[T]) Prev() error {
	if c.end {
		m, ok := c.last()
		if !ok {
			return ErrOutOfRange
		}
		c.cur, c.end = m, false
		return nil
	}
	pv, ok := c.pred(c.cur)
	if !ok {
		return ErrOutOfRange
	}
	c.cur = pv
	return nil
}

func (c *valCursor[T]) Value() (T, error) {
	if c.end {
		var zero T
		return zero, ErrOutOfRange
	}
	return c.cur, nil
}

func (c *valCursor[T]) Equal(o Cursor[T]) bool {
	oc, ok := o.(*valCursor[T])
	if !ok || oc.owner != c.owner {
		return false
	}
	if c.end || oc.end {
		return c.end == oc.end
	}
	return c.cur == oc.cur
}
