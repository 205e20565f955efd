// Package Trees provides a family of ordered sets with identical observable
// behavior and interchangeable implementations: four balanced binary search
// trees (AVL, red-black, treap, splay), a probabilistic skip list, and
// adapters over established third-party ordered containers used as reference
// baselines. Elements are stored by value, ordered by <, and appear at most
// once; positional results are reported through a uniform bidirectional
// cursor.
package Trees

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"golang.org/x/exp/constraints"
)

// Kind selects one of the Set implementations.
type Kind byte

const (
	AVL Kind = iota
	RedBlack
	Treap
	Splay
	SkipList
	//Reference is the canonical baseline: the emirpasic/gods red-black tree.
	Reference
	//BTreeRef wraps google/btree.
	BTreeRef
	//LLRBRef wraps petar/GoLLRB.
	LLRBRef
)

var kindNames = [...]string{"AVL", "RedBlack", "Treap", "Splay", "SkipList", "Reference", "BTree", "LLRB"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", byte(k))
}

// Kinds lists every selectable Kind in declaration order.
func Kinds() []Kind {
	return []Kind{AVL, RedBlack, Treap, Splay, SkipList, Reference, BTreeRef, LLRBRef}
}

// ParseKind resolves a case-insensitive Kind name as printed by String.
// "rb" and "ref" are accepted as shorthands.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "avl":
		return AVL, nil
	case "redblack", "rb":
		return RedBlack, nil
	case "treap":
		return Treap, nil
	case "splay":
		return Splay, nil
	case "skiplist":
		return SkipList, nil
	case "reference", "ref":
		return Reference, nil
	case "btree":
		return BTreeRef, nil
	case "llrb":
		return LLRBRef, nil
	}
	return 0, fmt.Errorf("unknown set kind %q", s)
}

var (
	//ErrOutOfRange reports cursor misuse: dereferencing end, stepping
	//forward from end, or stepping backward from begin. The cursor is
	//left where it was.
	ErrOutOfRange = errors.New("cursor out of range")
	//ErrCorrupt reports a broken structural invariant found by Check.
	//Ordinary operations never return it.
	ErrCorrupt = errors.New("corrupt structure")
	//ErrUnsupported reports that an implementation lacks an optional
	//capability, such as the baseline adapters' Check.
	ErrUnsupported = errors.New("unsupported operation")
)

// Cursor is a bidirectional position inside a Set. The end position is one
// past the maximum; it carries no value. For the in-house kinds a cursor
// obtained before a mutation stays valid unless the mutation removed the
// element it points at or Clear was called; splay trees are the exception
// (they restructure on every access, including Find and LowerBound;
// re-acquire cursors after any call other than Size/Empty/Begin/End on
// them). The baseline adapters give no validity guarantee across mutations.
type Cursor[T any] interface {
	//Clone returns an independent cursor at the same position.
	Clone() Cursor[T]
	//Next moves one element forward. Moving past the last element lands
	//on end; Next on end returns ErrOutOfRange.
	Next() error
	//Prev moves one element backward. Prev on end of a non-empty set
	//lands on the maximum; Prev on begin returns ErrOutOfRange.
	Prev() error
	//Value reads the element under the cursor. On end it returns the
	//zero value and ErrOutOfRange.
	Value() (T, error)
	//Equal reports whether both cursors address the same position of the
	//same set. End positions of the same set compare equal.
	Equal(Cursor[T]) bool
}

// Set is an ordered set of distinct elements. Implementations are not safe
// for concurrent use; distinct instances are fully independent.
type Set[T constraints.Ordered] interface {
	//Size of the set.
	//Time: O(1).
	Size() uint
	//Empty reports Size()==0.
	Empty() bool
	//Insert v. Returns true if v was absent and was stored, false if it
	//was already present; a duplicate insert changes nothing.
	Insert(v T) bool
	//Remove v. Returns true if v was present and was removed. Removing
	//an absent element changes nothing and is not an error.
	Remove(v T) bool
	//Find returns a cursor at v, or the end cursor when v is absent.
	Find(v T) Cursor[T]
	//LowerBound returns a cursor at the smallest element not less than
	//v, or the end cursor when every element is less than v.
	LowerBound(v T) Cursor[T]
	//Begin returns a cursor at the minimum element; on an empty set it
	//equals End.
	Begin() Cursor[T]
	//End returns the one-past-maximum cursor.
	End() Cursor[T]
	//Minimum element of the set.
	Minimum() (T, bool)
	//Maximum element of the set.
	Maximum() (T, bool)
	//Clear removes every element and invalidates all cursors.
	Clear()
	//Clone returns a deep copy. Mutating either set afterwards never
	//affects the other.
	Clone() Set[T]
	//Check walks the structure and verifies the implementation's
	//invariants, returning an ErrCorrupt-wrapped error on violation.
	//Implementations that cannot introspect return ErrUnsupported.
	Check() error
}

// New constructs an empty set of the given Kind. Implementations that use
// randomness (Treap, SkipList) are seeded nondeterministically; use NewSeeded
// when reproducibility matters.
func New[T constraints.Ordered](k Kind) Set[T] {
	return NewSeeded[T](k, uint32(time.Now().UnixNano()))
}

// NewSeeded constructs an empty set of the given Kind. seed drives the
// per-set random generator of the randomised implementations and is ignored
// by the deterministic ones; equal seeds and equal operation histories yield
// identical internal shapes.
func NewSeeded[T constraints.Ordered](k Kind, seed uint32) Set[T] {
	switch k {
	case AVL:
		return MakeAVL[T]()
	case RedBlack:
		return MakeRB[T]()
	case Treap:
		return MakeTreap[T](seed)
	case Splay:
		return MakeSplay[T]()
	case SkipList:
		return MakeSkipList[T](seed)
	case Reference:
		return MakeRef[T]()
	case BTreeRef:
		return MakeBTreeSet[T]()
	case LLRBRef:
		return MakeLLRBSet[T]()
	}
	panic(fmt.Sprintf("unknown set kind %d", byte(k)))
}

// From constructs a set of the given Kind holding the distinct values of vs;
// duplicates are silently ignored.
func From[T constraints.Ordered](k Kind, vs []T) Set[T] {
	s := New[T](k)
	for _, v := range vs {
		s.Insert(v)
	}
	return s
}

// newRng builds the per-set generator used for treap priorities and
// skip-list coin flips. Each set owns its generator; nothing is shared.
func newRng(seed uint32) *rand.Rand {
	return rand.New(rand.NewSource(int64(seed)))
}
