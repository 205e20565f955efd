package Trees

import (
	"errors"
	"testing"
)

// sameShape reports whether two subtrees match node for node, values and
// priorities included.
func sameShape[T comparable](a, b *node[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.v == b.v && a.meta == b.meta && sameShape(a.l, b.l) && sameShape(a.r, b.r)
}

func TestTreap_SeedDeterminism(t *testing.T) {
	a := MakeTreap[int](42)
	b := MakeTreap[int](42)
	for range tAddN {
		v := rg.Intn(tAddValRange)
		if a.Insert(v) != b.Insert(v) {
			t.Fatalf("same-seed treaps disagree on inserting %v", v)
		}
	}
	if !sameShape(a.root, b.root) {
		t.Fatal("same-seed treaps grew different shapes")
	}
	c := MakeTreap[int](43)
	for _, v := range traverse(t, a) {
		c.Insert(v)
	}
	if c.Size() != a.Size() {
		t.Fatalf("set size is %d, want %d", c.Size(), a.Size())
	}
}

func TestTreap_RandomOps(t *testing.T) {
	s := MakeTreap[int](7)
	content := make(map[int]struct{})
	for i := range tAddN {
		v := rg.Intn(tAddValRange / 4)
		if rg.Intn(3) == 0 {
			_, in := content[v]
			if s.Remove(v) != in {
				t.Fatalf("failed to delete key %v", v)
			}
			delete(content, v)
		} else {
			_, in := content[v]
			if s.Insert(v) == in {
				t.Fatalf("insert of key %v reported %v", v, !in)
			}
			content[v] = struct{}{}
		}
		if i%32 == 0 {
			if err := s.Check(); err != nil {
				t.Fatalf("after %d operations: %v", i+1, err)
			}
		}
	}
	if int(s.Size()) != len(content) {
		t.Errorf("set size is %d, want %d", s.Size(), len(content))
	}
	if err := s.Check(); err != nil {
		t.Fatal(err)
	}
	t.Logf("depth: %d, size: %d.\n", maxDepth(s.root), s.Size())
}

func TestTreap_CloneKeepsShape(t *testing.T) {
	s := MakeTreap[int](99)
	for range 1000 {
		s.Insert(rg.Intn(tAddValRange))
	}
	origSize := s.Size()
	c := s.Clone().(*TreapTree[int])
	if !sameShape(s.root, c.root) {
		t.Fatal("clone shape differs from the source")
	}
	// a clone replays the priority stream from the seed, so two clones
	// given the same later operations stay identical
	d := s.Clone().(*TreapTree[int])
	for i := range 200 {
		v := tAddValRange + i
		c.Insert(v)
		d.Insert(v)
	}
	if !sameShape(c.root, d.root) {
		t.Fatal("clones diverged under identical operations")
	}
	if err := c.Check(); err != nil {
		t.Fatal(err)
	}
	if s.Size() != origSize {
		t.Errorf("mutating a clone leaked into the source")
	}
	if err := s.Check(); err != nil {
		t.Fatalf("source is corrupt after mutating a clone: %v", err)
	}
}

func TestTreap_CheckDetectsCorruption(t *testing.T) {
	s := MakeTreap[int](3)
	for i := range 64 {
		s.Insert(i)
	}
	if err := s.Check(); err != nil {
		t.Fatal(err)
	}

	child := s.root.l
	if child == nil {
		child = s.root.r
	}
	savedRoot, savedChild := s.root.meta, child.meta
	s.root.meta = 1
	child.meta = ^uint32(0)
	if err := s.Check(); !errors.Is(err, ErrCorrupt) {
		t.Errorf("a heap order violation went undetected: %v", err)
	}
	s.root.meta, child.meta = savedRoot, savedChild

	saved := s.root.meta
	s.root.meta = 0
	if err := s.Check(); !errors.Is(err, ErrCorrupt) {
		t.Errorf("a zero priority went undetected: %v", err)
	}
	s.root.meta = saved

	if err := s.Check(); err != nil {
		t.Fatalf("restored treap fails the check: %v", err)
	}
}
