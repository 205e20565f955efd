package Trees

import (
	"fmt"
	"math/rand"

	"golang.org/x/exp/constraints"
)

// skipNode is one element of the arena. tower[k] is the id of the right
// neighbour at level k; prev is the level-0 left neighbour. A freed node
// keeps its slot with a nil tower until the id is reused.
type skipNode[T any] struct {
	v     T
	tower []uint32
	prev  uint32
}

// SkipListSet is a probabilistic ordered set. Nodes live in an index arena:
// links are uint32 ids into the slice, id 0 is the head sentinel and doubles
// as "none", and freed ids are recycled through a free stack, which keeps
// clearing and copying trivially iterative. Each node's tower height is one
// plus a run of fair coin flips from the set's own generator, uncapped; the
// sentinel column grows when a tower outgrows it and shrinks when top levels
// empty out. Level 0 is doubly linked (the sentinel's prev is the maximum),
// which backs the bidirectional cursor.
type SkipListSet[T constraints.Ordered] struct {
	nodes []skipNode[T]
	free  []uint32
	n     uint
	rng   *rand.Rand
	seed  uint32
}

// MakeSkipList returns an empty SkipListSet whose coin flips are determined
// by seed. SkipListSet shouldn't be created directly using struct literal.
func MakeSkipList[T constraints.Ordered](seed uint32) *SkipListSet[T] {
	return &SkipListSet[T]{
		nodes: []skipNode[T]{{tower: make([]uint32, 1)}},
		rng:   newRng(seed),
		seed:  seed,
	}
}

// Size returns the number of elements.
// Time: O(1); Space: O(1)
func (u *SkipListSet[T]) Size() uint {
	return u.n
}

// Empty reports whether the set has no elements.
func (u *SkipListSet[T]) Empty() bool {
	return u.n == 0
}

func (u *SkipListSet[T]) levels() int {
	return len(u.nodes[0].tower)
}

// path descends from the top of the sentinel column and records the
// rightmost node with value < v on every level.
func (u *SkipListSet[T]) path(v T) []uint32 {
	preds := make([]uint32, u.levels())
	x := uint32(0)
	for lvl := u.levels() - 1; lvl >= 0; lvl-- {
		for next := u.nodes[x].tower[lvl]; next != 0 && u.nodes[next].v < v; next = u.nodes[x].tower[lvl] {
			x = next
		}
		preds[lvl] = x
	}
	return preds
}

// seek returns the id of the first node with value >= v, 0 when every
// element is less than v. Same descent as path without recording it.
// Time: expected O(log n); Space: O(1)
func (u *SkipListSet[T]) seek(v T) uint32 {
	x := uint32(0)
	for lvl := u.levels() - 1; lvl >= 0; lvl-- {
		for next := u.nodes[x].tower[lvl]; next != 0 && u.nodes[next].v < v; next = u.nodes[x].tower[lvl] {
			x = next
		}
	}
	return u.nodes[x].tower[0]
}

// alloc takes a recycled id when one is free, otherwise extends the arena.
func (u *SkipListSet[T]) alloc(v T, h int) uint32 {
	if k := len(u.free); k > 0 {
		id := u.free[k-1]
		u.free = u.free[:k-1]
		u.nodes[id] = skipNode[T]{v: v, tower: make([]uint32, h)}
		return id
	}
	u.nodes = append(u.nodes, skipNode[T]{v: v, tower: make([]uint32, h)})
	return uint32(len(u.nodes) - 1)
}

// Insert v. Returns true if v was absent: the node is spliced into level 0
// and into every level its coin flips promote it to, growing the sentinel
// column when the new tower tops it.
// Time: expected O(log n); Space: expected O(1) amortised
func (u *SkipListSet[T]) Insert(v T) bool {
	preds := u.path(v)
	if c := u.nodes[preds[0]].tower[0]; c != 0 && u.nodes[c].v == v {
		return false
	}
	h := 1
	for u.rng.Uint32()&1 == 1 {
		h++
	}
	id := u.alloc(v, h)
	for u.levels() < h {
		u.nodes[0].tower = append(u.nodes[0].tower, 0)
		preds = append(preds, 0)
	}
	nd := &u.nodes[id]
	for lvl := 0; lvl < h; lvl++ {
		pred := &u.nodes[preds[lvl]]
		nd.tower[lvl] = pred.tower[lvl]
		pred.tower[lvl] = id
	}
	nd.prev = preds[0]
	u.nodes[nd.tower[0]].prev = id
	u.n++
	return true
}

// Remove v. Returns true if v was present: the node is unlinked from every
// level it occupies, its id is recycled, and empty top levels of the
// sentinel column are dropped.
// Time: expected O(log n); Space: O(log n) for the recorded path
func (u *SkipListSet[T]) Remove(v T) bool {
	preds := u.path(v)
	id := u.nodes[preds[0]].tower[0]
	if id == 0 || u.nodes[id].v != v {
		return false
	}
	for lvl := range u.nodes[id].tower {
		u.nodes[preds[lvl]].tower[lvl] = u.nodes[id].tower[lvl]
	}
	succ := u.nodes[id].tower[0]
	u.nodes[succ].prev = u.nodes[id].prev
	head := &u.nodes[0]
	for len(head.tower) > 1 && head.tower[len(head.tower)-1] == 0 {
		head.tower = head.tower[:len(head.tower)-1]
	}
	u.nodes[id] = skipNode[T]{}
	u.free = append(u.free, id)
	u.n--
	return true
}

// Find returns a cursor at v or the end cursor.
// Time: expected O(log n)
func (u *SkipListSet[T]) Find(v T) Cursor[T] {
	if id := u.seek(v); id != 0 && u.nodes[id].v == v {
		return &skipCursor[T]{l: u, id: id}
	}
	return &skipCursor[T]{l: u}
}

// LowerBound returns a cursor at the smallest element not less than v, or
// the end cursor.
// Time: expected O(log n)
func (u *SkipListSet[T]) LowerBound(v T) Cursor[T] {
	return &skipCursor[T]{l: u, id: u.seek(v)}
}

// Begin returns a cursor at the minimum element, equal to End when empty.
// Time: O(1)
func (u *SkipListSet[T]) Begin() Cursor[T] {
	return &skipCursor[T]{l: u, id: u.nodes[0].tower[0]}
}

// End returns the one-past-maximum cursor.
func (u *SkipListSet[T]) End() Cursor[T] {
	return &skipCursor[T]{l: u}
}

// Minimum element of the set.
// Time: O(1)
func (u *SkipListSet[T]) Minimum() (T, bool) {
	if id := u.nodes[0].tower[0]; id != 0 {
		return u.nodes[id].v, true
	}
	var zero T
	return zero, false
}

// Maximum element of the set.
// Time: O(1)
func (u *SkipListSet[T]) Maximum() (T, bool) {
	if id := u.nodes[0].prev; id != 0 {
		return u.nodes[id].v, true
	}
	var zero T
	return zero, false
}

// Clear resets the arena to the bare sentinel, keeping the backing storage.
// Time: O(1); Space: O(1)
func (u *SkipListSet[T]) Clear() {
	u.nodes = u.nodes[:1]
	u.nodes[0].tower = u.nodes[0].tower[:1]
	u.nodes[0].tower[0] = 0
	u.nodes[0].prev = 0
	u.free = u.free[:0]
	u.n = 0
}

// Clone deep-copies the arena, towers included, so the copy has identical
// levels and ids. The copy's generator restarts from the recorded seed.
// Time: O(n)
func (u *SkipListSet[T]) Clone() Set[T] {
	c := &SkipListSet[T]{
		nodes: make([]skipNode[T], len(u.nodes)),
		free:  append([]uint32(nil), u.free...),
		n:     u.n,
		rng:   newRng(u.seed),
		seed:  u.seed,
	}
	for i, nd := range u.nodes {
		c.nodes[i] = skipNode[T]{v: nd.v, tower: append([]uint32(nil), nd.tower...), prev: nd.prev}
	}
	return c
}

// Check verifies the level-0 list (strict order, prev links mirroring next
// links, sentinel prev at the maximum, count matching Size) and that every
// higher level is strictly ascending over live nodes tall enough to be
// there.
func (u *SkipListSet[T]) Check() error {
	var cnt uint
	prev := uint32(0)
	for id := u.nodes[0].tower[0]; id != 0; id = u.nodes[id].tower[0] {
		nd := &u.nodes[id]
		if len(nd.tower) == 0 {
			return fmt.Errorf("%w: freed node %d still linked", ErrCorrupt, id)
		}
		if prev != 0 && !(u.nodes[prev].v < nd.v) {
			return fmt.Errorf("%w: order violation at %v", ErrCorrupt, nd.v)
		}
		if nd.prev != prev {
			return fmt.Errorf("%w: back link of %v points at %d, want %d", ErrCorrupt, nd.v, nd.prev, prev)
		}
		prev = id
		cnt++
	}
	if u.nodes[0].prev != prev {
		return fmt.Errorf("%w: sentinel back link points at %d, want %d", ErrCorrupt, u.nodes[0].prev, prev)
	}
	if cnt != u.n {
		return fmt.Errorf("%w: size %d but %d nodes linked", ErrCorrupt, u.n, cnt)
	}
	for lvl := u.levels() - 1; lvl >= 1; lvl-- {
		prev = 0
		for id := u.nodes[0].tower[lvl]; id != 0; id = u.nodes[id].tower[lvl] {
			if len(u.nodes[id].tower) <= lvl {
				return fmt.Errorf("%w: node %d linked above its tower", ErrCorrupt, id)
			}
			if prev != 0 && !(u.nodes[prev].v < u.nodes[id].v) {
				return fmt.Errorf("%w: order violation on level %d at %v", ErrCorrupt, lvl, u.nodes[id].v)
			}
			prev = id
		}
	}
	return nil
}

// skipCursor navigates the level-0 list; id 0 is the end position.
type skipCursor[T constraints.Ordered] struct {
	l  *SkipListSet[T]
	id uint32
}

func (c *skipCursor[T]) Clone() Cursor[T] {
	d := *c
	return &d
}

func (c *skipCursor[T]) Next() error {
	if c.id == 0 {
		return ErrOutOfRange
	}
	c.id = c.l.nodes[c.id].tower[0]
	return nil
}

func (c *skipCursor[T]) Prev() error {
	if c.id == 0 {
		if c.l.n == 0 {
			return ErrOutOfRange
		}
		c.id = c.l.nodes[0].prev
		return nil
	}
	p := c.l.nodes[c.id].prev
	if p == 0 {
		return ErrOutOfRange
	}
	c.id = p
	return nil
}

func (c *skipCursor[T]) Value() (T, error) {
	if c.id == 0 {
		var zero T
		return zero, ErrOutOfRange
	}
	return c.l.nodes[c.id].v, nil
}

func (c *skipCursor[T]) Equal(o Cursor[T]) bool {
	oc, ok := o.(*skipCursor[T])
	return ok && oc.l == c.l && oc.id == c.id
}
