package Trees

import (
	rbt "github.com/emirpasic/gods/trees/redblacktree"
	gbt "github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
	"golang.org/x/exp/constraints"
)

// The adapters below wrap established ordered containers behind the Set
// contract so benchmarks and contract tests can run them next to the five
// in-house implementations. They cannot introspect the wrapped structures,
// so Check reports ErrUnsupported.

// cmpOrdered adapts < on T to the three-way comparator the gods containers
// take.
func cmpOrdered[T constraints.Ordered](a, b interface{}) int {
	x, y := a.(T), b.(T)
	if x < y {
		return -1
	} else if y < x {
		return 1
	}
	return 0
}

// RefSet is the canonical reference baseline: the emirpasic/gods red-black
// tree behind the Set contract. Its stateful bidirectional iterator backs the
// cursor directly, so cursor steps are O(1) like the in-house trees.
type RefSet[T constraints.Ordered] struct {
	t *rbt.Tree
}

// MakeRef returns an empty RefSet. RefSet shouldn't be created directly
// using struct literal.
func MakeRef[T constraints.Ordered]() *RefSet[T] {
	return &RefSet[T]{t: rbt.NewWith(cmpOrdered[T])}
}

// Size returns the number of elements.
// Time: O(1)
func (u *RefSet[T]) Size() uint {
	return uint(u.t.Size())
}

// Empty reports whether the set has no elements.
func (u *RefSet[T]) Empty() bool {
	return u.t.Empty()
}

// Insert v. Returns true if v was absent. Put replaces on duplicate keys, so
// presence is read off the size.
// Time: O(log n)
func (u *RefSet[T]) Insert(v T) bool {
	n := u.t.Size()
	u.t.Put(v, nil)
	return u.t.Size() != n
}

// Remove v. Returns true if v was present.
// Time: O(log n)
func (u *RefSet[T]) Remove(v T) bool {
	n := u.t.Size()
	u.t.Remove(v)
	return u.t.Size() != n
}

// Find returns a cursor at v or the end cursor.
// Time: O(log n)
func (u *RefSet[T]) Find(v T) Cursor[T] {
	nd := u.t.GetNode(v)
	if nd == nil {
		return u.endCursor()
	}
	return &refCursor[T]{s: u, it: u.t.IteratorAt(nd)}
}

// LowerBound returns a cursor at the smallest element not less than v, or
// the end cursor.
// Time: O(log n)
func (u *RefSet[T]) LowerBound(v T) Cursor[T] {
	nd, ok := u.t.Ceiling(v)
	if !ok {
		return u.endCursor()
	}
	return &refCursor[T]{s: u, it: u.t.IteratorAt(nd)}
}

// Begin returns a cursor at the minimum element, equal to End when empty.
func (u *RefSet[T]) Begin() Cursor[T] {
	it := u.t.Iterator()
	if !it.First() {
		return u.endCursor()
	}
	return &refCursor[T]{s: u, it: it}
}

// End returns the one-past-maximum cursor.
func (u *RefSet[T]) End() Cursor[T] {
	return u.endCursor()
}

func (u *RefSet[T]) endCursor() *refCursor[T] {
	it := u.t.Iterator()
	it.End()
	return &refCursor[T]{s: u, it: it, end: true}
}

// Minimum element of the set.
// Time: O(log n)
func (u *RefSet[T]) Minimum() (T, bool) {
	if nd := u.t.Left(); nd != nil {
		return nd.Key.(T), true
	}
	var zero T
	return zero, false
}

// Maximum element of the set.
// Time: O(log n)
func (u *RefSet[T]) Maximum() (T, bool) {
	if nd := u.t.Right(); nd != nil {
		return nd.Key.(T), true
	}
	var zero T
	return zero, false
}

// Clear removes every element.
func (u *RefSet[T]) Clear() {
	u.t.Clear()
}

// Clone returns a deep copy built by an in-order walk of the source.
// Time: O(n log n)
func (u *RefSet[T]) Clone() Set[T] {
	c := MakeRef[T]()
	for it := u.t.Iterator(); it.Next(); {
		c.t.Put(it.Key(), nil)
	}
	return c
}

// Check reports ErrUnsupported; the wrapped tree keeps its invariants
// private.
func (u *RefSet[T]) Check() error {
	return ErrUnsupported
}

// refCursor wraps the gods iterator. end mirrors the iterator's past-last
// position; a failed step restores it so the cursor stays where it was.
type refCursor[T constraints.Ordered] struct {
	s   *RefSet[T]
	it  rbt.Iterator
	end bool
}

func (c *refCursor[T]) Clone() Cursor[T] {
	d := *c
	return &d
}

func (c *refCursor[T]) Next() error {
	if c.end {
		return ErrOutOfRange
	}
	if !c.it.Next() {
		c.end = true
	}
	return nil
}

func (c *refCursor[T]) Prev() error {
	if !c.it.Prev() {
		if c.end {
			c.it.End()
		} else {
			c.it.Next()
		}
		return ErrOutOfRange
	}
	c.end = false
	return nil
}

func (c *refCursor[T]) Value() (T, error) {
	if c.end {
		var zero T
		return zero, ErrOutOfRange
	}
	return c.it.Key().(T), nil
}

func (c *refCursor[T]) Equal(o Cursor[T]) bool {
	oc, ok := o.(*refCursor[T])
	if !ok || oc.s != c.s {
		return false
	}
	if c.end || oc.end {
		return c.end == oc.end
	}
	return c.it.Key() == oc.it.Key()
}

// bitem carries one element through the google/btree Item interface.
type bitem[T constraints.Ordered] struct {
	v T
}

var _ gbt.Item = bitem[int]{}

func (a bitem[T]) Less(b gbt.Item) bool {
	return a.v < b.(bitem[T]).v
}

// Degree used for the google/btree baseline; nodes hold up to 2*32-1
// elements.
const btreeDegree = 32

// BTreeSet wraps a google/btree B-tree behind the Set contract. The wrapped
// tree only exposes re-descending scans, so cursor steps cost O(log n); the
// navigation record remembers the current element by value.
type BTreeSet[T constraints.Ordered] struct {
	t *gbt.BTree
}

// MakeBTreeSet returns an empty BTreeSet. BTreeSet shouldn't be created
// directly using struct literal.
func MakeBTreeSet[T constraints.Ordered]() *BTreeSet[T] {
	return &BTreeSet[T]{t: gbt.New(btreeDegree)}
}

// Size returns the number of elements.
// Time: O(1)
func (u *BTreeSet[T]) Size() uint {
	return uint(u.t.Len())
}

// Empty reports whether the set has no elements.
func (u *BTreeSet[T]) Empty() bool {
	return u.t.Len() == 0
}

// Insert v. Returns true if v was absent; ReplaceOrInsert hands back the
// displaced item when there was one.
// Time: O(log n)
func (u *BTreeSet[T]) Insert(v T) bool {
	return u.t.ReplaceOrInsert(bitem[T]{v}) == nil
}

// Remove v. Returns true if v was present.
// Time: O(log n)
func (u *BTreeSet[T]) Remove(v T) bool {
	return u.t.Delete(bitem[T]{v}) != nil
}

// Find returns a cursor at v or the end cursor.
// Time: O(log n)
func (u *BTreeSet[T]) Find(v T) Cursor[T] {
	if !u.t.Has(bitem[T]{v}) {
		return u.at(true, v)
	}
	return u.at(false, v)
}

// LowerBound returns a cursor at the smallest element not less than v, or
// the end cursor.
// Time: O(log n)
func (u *BTreeSet[T]) LowerBound(v T) Cursor[T] {
	var lb T
	found := false
	u.t.AscendGreaterOrEqual(bitem[T]{v}, func(i gbt.Item) bool {
		lb, found = i.(bitem[T]).v, true
		return false
	})
	if !found {
		return u.at(true, lb)
	}
	return u.at(false, lb)
}

// Begin returns a cursor at the minimum element, equal to End when empty.
func (u *BTreeSet[T]) Begin() Cursor[T] {
	if m := u.t.Min(); m != nil {
		return u.at(false, m.(bitem[T]).v)
	}
	return u.at(true, *new(T))
}

// End returns the one-past-maximum cursor.
func (u *BTreeSet[T]) End() Cursor[T] {
	return u.at(true, *new(T))
}

// Minimum element of the set.
// Time: O(log n)
func (u *BTreeSet[T]) Minimum() (T, bool) {
	if m := u.t.Min(); m != nil {
		return m.(bitem[T]).v, true
	}
	var zero T
	return zero, false
}

// Maximum element of the set.
// Time: O(log n)
func (u *BTreeSet[T]) Maximum() (T, bool) {
	if m := u.t.Max(); m != nil {
		return m.(bitem[T]).v, true
	}
	var zero T
	return zero, false
}

// Clear removes every element by dropping the wrapped tree.
func (u *BTreeSet[T]) Clear() {
	u.t = gbt.New(btreeDegree)
}

// Clone returns a deep copy built by an in-order walk of the source.
// Time: O(n log n)
func (u *BTreeSet[T]) Clone() Set[T] {
	c := MakeBTreeSet[T]()
	u.t.Ascend(func(i gbt.Item) bool {
		c.t.ReplaceOrInsert(i)
		return true
	})
	return c
}

// Check reports ErrUnsupported; the wrapped tree keeps its invariants
// private.
func (u *BTreeSet[T]) Check() error {
	return ErrUnsupported
}

func (u *BTreeSet[T]) at(end bool, v T) Cursor[T] {
	return &valCursor[T]{owner: u, succ: u.succ, pred: u.pred, last: u.Maximum, cur: v, end: end}
}

// succ scans from v upward and reports the first strictly greater element.
func (u *BTreeSet[T]) succ(v T) (T, bool) {
	var out T
	found := false
	u.t.AscendGreaterOrEqual(bitem[T]{v}, func(i gbt.Item) bool {
		if w := i.(bitem[T]).v; v < w {
			out, found = w, true
			return false
		}
		return true
	})
	return out, found
}

// pred scans from v downward and reports the first strictly smaller element.
func (u *BTreeSet[T]) pred(v T) (T, bool) {
	var out T
	found := false
	u.t.DescendLessOrEqual(bitem[T]{v}, func(i gbt.Item) bool {
		if w := i.(bitem[T]).v; w < v {
			out, found = w, true
			return false
		}
		return true
	})
	return out, found
}

// litem carries one element through the GoLLRB Item interface.
type litem[T constraints.Ordered] struct {
	v T
}

var _ llrb.Item = litem[int]{}

func (a litem[T]) Less(b llrb.Item) bool {
	return a.v < b.(litem[T]).v
}

// LLRBSet wraps a petar/GoLLRB left-leaning red-black tree behind the Set
// contract. Cursor navigation re-descends the same way BTreeSet's does.
type LLRBSet[T constraints.Ordered] struct {
	t *llrb.LLRB
}

// MakeLLRBSet returns an empty LLRBSet. LLRBSet shouldn't be created
// directly using struct literal.
func MakeLLRBSet[T constraints.Ordered]() *LLRBSet[T] {
	return &LLRBSet[T]{t: llrb.New()}
}

// Size returns the number of elements.
// Time: O(1)
func (u *LLRBSet[T]) Size() uint {
	return uint(u.t.Len())
}

// Empty reports whether the set has no elements.
func (u *LLRBSet[T]) Empty() bool {
	return u.t.Len() == 0
}

// Insert v. Returns true if v was absent.
// Time: O(log n)
func (u *LLRBSet[T]) Insert(v T) bool {
	return u.t.ReplaceOrInsert(litem[T]{v}) == nil
}

// Remove v. Returns true if v was present.
// Time: O(log n)
func (u *LLRBSet[T]) Remove(v T) bool {
	return u.t.Delete(litem[T]{v}) != nil
}

// Find returns a cursor at v or the end cursor.
// Time: O(log n)
func (u *LLRBSet[T]) Find(v T) Cursor[T] {
	if !u.t.Has(litem[T]{v}) {
		return u.at(true, v)
	}
	return u.at(false, v)
}

// LowerBound returns a cursor at the smallest element not less than v, or
// the end cursor.
// Time: O(log n)
func (u *LLRBSet[T]) LowerBound(v T) Cursor[T] {
	var lb T
	found := false
	u.t.AscendGreaterOrEqual(litem[T]{v}, func(i llrb.Item) bool {
		lb, found = i.(litem[T]).v, true
		return false
	})
	if !found {
		return u.at(true, lb)
	}
	return u.at(false, lb)
}

// Begin returns a cursor at the minimum element, equal to End when empty.
func (u *LLRBSet[T]) Begin() Cursor[T] {
	if m := u.t.Min(); m != nil {
		return u.at(false, m.(litem[T]).v)
	}
	return u.at(true, *new(T))
}

// End returns the one-past-maximum cursor.
func (u *LLRBSet[T]) End() Cursor[T] {
	return u.at(true, *new(T))
}

// Minimum element of the set.
// Time: O(log n)
func (u *LLRBSet[T]) Minimum() (T, bool) {
	if m := u.t.Min(); m != nil {
		return m.(litem[T]).v, true
	}
	var zero T
	return zero, false
}

// Maximum element of the set.
// Time: O(log n)
func (u *LLRBSet[T]) Maximum() (T, bool) {
	if m := u.t.Max(); m != nil {
		return m.(litem[T]).v, true
	}
	var zero T
	return zero, false
}

// Clear removes every element by dropping the wrapped tree.
func (u *LLRBSet[T]) Clear() {
	u.t = llrb.New()
}

// Clone returns a deep copy built by an in-order walk of the source.
// Time: O(n log n)
func (u *LLRBSet[T]) Clone() Set[T] {
	c := MakeLLRBSet[T]()
	if m := u.t.Min(); m != nil {
		u.t.AscendGreaterOrEqual(m, func(i llrb.Item) bool {
			c.t.ReplaceOrInsert(i)
			return true
		})
	}
	return c
}

// Check reports ErrUnsupported; the wrapped tree keeps its invariants
// private.
func (u *LLRBSet[T]) Check() error {
	return ErrUnsupported
}

func (u *LLRBSet[T]) at(end bool, v T) Cursor[T] {
	return &valCursor[T]{owner: u, succ: u.succ, pred: u.pred, last: u.Maximum, cur: v, end: end}
}

func (u *LLRBSet[T]) succ(v T) (T, bool) {
	var out T
	found := false
	u.t.AscendGreaterOrEqual(litem[T]{v}, func(i llrb.Item) bool {
		if w := i.(litem[T]).v; v < w {
			out, found = w, true
			return false
		}
		return true
	})
	return out, found
}

func (u *LLRBSet[T]) pred(v T) (T, bool) {
	var out T
	found := false
	u.t.DescendLessOrEqual(litem[T]{v}, func(i llrb.Item) bool {
		if w := i.(litem[T]).v; w < v {
			out, found = w, true
			return false
		}
		return true
	})
	return out, found
}
