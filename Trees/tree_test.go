package Trees

import (
	"math/rand"
	"slices"
	"testing"

	"golang.org/x/exp/constraints"
)

var rg = *rand.New(rand.NewSource(0))

const (
	tAddN        = 4000
	tAddValRange = 8000
)

// traverse walks the whole set front to back and returns the values.
func traverse[T constraints.Ordered](t *testing.T, s Set[T]) []T {
	t.Helper()
	out := make([]T, 0, s.Size())
	for c := s.Begin(); !c.Equal(s.End()); {
		v, err := c.Value()
		if err != nil {
			t.Fatalf("value on a non-end cursor: %v", err)
		}
		out = append(out, v)
		if err := c.Next(); err != nil {
			t.Fatalf("next on a non-end cursor: %v", err)
		}
	}
	return out
}

// shape reports the average leaf depth of the pointer trees and the level
// count of the skip list, for logging only.
func shape[T constraints.Ordered](s Set[T]) float32 {
	var b *base[T]
	switch u := s.(type) {
	case *AVLTree[T]:
		b = &u.base
	case *RBTree[T]:
		b = &u.base
	case *TreapTree[T]:
		b = &u.base
	case *SplayTree[T]:
		b = &u.base
	case *SkipListSet[T]:
		return float32(u.levels())
	default:
		return 0
	}
	if b.root == nil {
		return 0
	}
	type frame struct {
		n *node[T]
		d uint
	}
	var leaves, total uint
	st := []frame{{b.root, 1}}
	for len(st) > 0 {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		if top.n.l == nil && top.n.r == nil {
			leaves++
			total += top.d
			continue
		}
		if top.n.l != nil {
			st = append(st, frame{top.n.l, top.d + 1})
		}
		if top.n.r != nil {
			st = append(st, frame{top.n.r, top.d + 1})
		}
	}
	return float32(total) / float32(leaves)
}

func TestSet_Insert(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			s := NewSeeded[int](k, 0)
			content := make(map[int]struct{})
			for range tAddN {
				v := rg.Intn(tAddValRange)
				_, in := content[v]
				if s.Insert(v) == in {
					t.Errorf("insert of key %v reported %v", v, !in)
				}
				content[v] = struct{}{}
			}
			if int(s.Size()) != len(content) {
				t.Errorf("set size is %d, want %d", s.Size(), len(content))
			}
			t.Logf("depth: %f, size: %d.\n", shape(s), s.Size())
			for v := range content {
				if s.Find(v).Equal(s.End()) {
					t.Errorf("set does not have key %v", v)
				}
			}
			sorted := traverse(t, s)
			if len(sorted) != len(content) {
				t.Errorf("traversal has %d keys, want %d", len(sorted), len(content))
			}
			if !slices.IsSorted(sorted) {
				t.Log(sorted)
				t.Errorf("traversal is not sorted")
			}
			for _, v := range sorted {
				if _, in := content[v]; !in {
					t.Errorf("set has non existent key %v", v)
				}
			}
		})
	}
}

func TestSet_Remove(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			s := NewSeeded[int](k, 0)
			if s.Remove(0) {
				t.Errorf("empty set has non existent key %v", 0)
			}
			content := make(map[int]struct{})
			a := make([]int, tAddN)
			for i := range a {
				a[i] = rg.Intn(tAddValRange)
				s.Insert(a[i])
				content[a[i]] = struct{}{}
			}
			for i := range rg.Intn(len(a)) {
				_, in := content[a[i]]
				if s.Remove(a[i]) != in {
					t.Errorf("failed to delete key %v", a[i])
				}
				if s.Remove(a[i]) {
					t.Errorf("can delete a second time key %v", a[i])
				}
				delete(content, a[i])
			}
			if int(s.Size()) != len(content) {
				t.Errorf("set size is %d, want %d", s.Size(), len(content))
			}
			t.Logf("depth: %f, size: %d.\n", shape(s), s.Size())
			for v := range content {
				if s.Find(v).Equal(s.End()) {
					t.Errorf("set does not have key %v", v)
				}
			}
			sorted := traverse(t, s)
			if !slices.IsSorted(sorted) {
				t.Errorf("traversal is not sorted")
			}
			for _, v := range sorted {
				if _, in := content[v]; !in {
					t.Errorf("set has non existent key %v", v)
				}
			}
		})
	}
}

func TestSet_InsertRemove(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			s := NewSeeded[int](k, 0)
			content := make(map[int]struct{})
			a := make([]int, tAddN)
			for i := range a {
				a[i] = rg.Intn(tAddValRange)
				s.Insert(a[i])
				content[a[i]] = struct{}{}
			}
			for i := range rg.Intn(len(a)) {
				s.Remove(a[i])
				delete(content, a[i])
			}
			b := make([]int, rg.Intn(tAddN))
			for i := range b {
				b[i] = rg.Intn(tAddValRange)
				_, in := content[b[i]]
				if s.Insert(b[i]) == in {
					t.Errorf("insert of key %v reported %v", b[i], !in)
				}
				content[b[i]] = struct{}{}
			}
			for i := range rg.Intn(len(b) + 1) {
				_, in := content[b[i]]
				if s.Remove(b[i]) != in {
					t.Errorf("failed to delete key %v", b[i])
				}
				delete(content, b[i])
			}
			if int(s.Size()) != len(content) {
				t.Errorf("set size is %d, want %d", s.Size(), len(content))
			}
			t.Logf("depth: %f, size: %d.\n", shape(s), s.Size())
			sorted := traverse(t, s)
			if len(sorted) != len(content) {
				t.Errorf("traversal has %d keys, want %d", len(sorted), len(content))
			}
			if !slices.IsSorted(sorted) {
				t.Errorf("traversal is not sorted")
			}
			for _, v := range sorted {
				if _, in := content[v]; !in {
					t.Errorf("set has non existent key %v", v)
				}
			}
		})
	}
}

func TestSet_LowerBound(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			s := NewSeeded[int](k, 0)
			content := make([]int, 0, tAddN)
			for range tAddN {
				v := rg.Intn(tAddValRange)
				if s.Insert(v) {
					content = append(content, v)
				}
			}
			slices.Sort(content)
			for range tAddN {
				v := rg.Intn(tAddValRange + 2)
				c := s.LowerBound(v)
				if i, _ := slices.BinarySearch(content, v); i == len(content) {
					if !c.Equal(s.End()) {
						got, _ := c.Value()
						t.Fatalf("lower bound of %v is %v, want end", v, got)
					}
				} else {
					got, err := c.Value()
					if err != nil {
						t.Fatalf("lower bound of %v is end, want %v", v, content[i])
					}
					if got != content[i] {
						t.Fatalf("lower bound of %v is %v, want %v", v, got, content[i])
					}
				}
			}
		})
	}
}

func TestSet_From(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			content := make([]int, tAddN)
			for i := range content {
				content[i] = rg.Intn(tAddValRange)
			}
			s := From(k, content)
			slices.Sort(content)
			content = slices.Compact(content)
			if int(s.Size()) != len(content) {
				t.Fatalf("set size is %d, want %d", s.Size(), len(content))
			}
			if !slices.Equal(traverse(t, s), content) {
				t.Fatalf("traversal differs from the source values")
			}
			t.Logf("depth: %f, size: %d.\n", shape(s), s.Size())
		})
	}
}

func TestSet_MinimumMaximum(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			s := NewSeeded[int](k, 0)
			if _, ok := s.Minimum(); ok {
				t.Errorf("empty set reports a minimum")
			}
			if _, ok := s.Maximum(); ok {
				t.Errorf("empty set reports a maximum")
			}
			lo, hi := tAddValRange, -1
			for range tAddN {
				v := rg.Intn(tAddValRange)
				s.Insert(v)
				lo, hi = min(lo, v), max(hi, v)
			}
			if v, ok := s.Minimum(); !ok || v != lo {
				t.Errorf("minimum is %v, want %v", v, lo)
			}
			if v, ok := s.Maximum(); !ok || v != hi {
				t.Errorf("maximum is %v, want %v", v, hi)
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(k.String())
		if err != nil {
			t.Fatalf("cannot parse %q back: %v", k.String(), err)
		}
		if got != k {
			t.Fatalf("parsed %q to %v, want %v", k.String(), got, k)
		}
	}
	if _, err := ParseKind("no such kind"); err == nil {
		t.Fatal("parsing an unknown name did not fail")
	}
}
