package Trees

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkSupported reports whether a Kind can introspect its own structure.
func checkSupported(k Kind) bool {
	switch k {
	case Reference, BTreeRef, LLRBRef:
		return false
	}
	return true
}

func requireCheck(t *testing.T, k Kind, s Set[int]) {
	t.Helper()
	err := s.Check()
	if checkSupported(k) {
		require.NoError(t, err)
	} else {
		require.ErrorIs(t, err, ErrUnsupported)
	}
}

func TestSet_OrderedWalk(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			s := NewSeeded[int](k, 1)
			for _, v := range []int{3, 4, 2, 5, 1} {
				require.True(t, s.Insert(v))
			}
			require.EqualValues(t, 5, s.Size())

			want := 1
			for c := s.Begin(); !c.Equal(s.End()); want++ {
				v, err := c.Value()
				require.NoError(t, err)
				require.Equal(t, want, v)
				require.NoError(t, c.Next())
			}
			require.Equal(t, 6, want)

			assert.True(t, s.Find(10).Equal(s.End()))
			assert.True(t, s.LowerBound(0).Equal(s.Begin()))

			b := s.Begin()
			require.ErrorIs(t, b.Prev(), ErrOutOfRange)
			v, err := b.Value()
			require.NoError(t, err)
			assert.Equal(t, 1, v, "a failed step moved the cursor")

			e := s.End()
			require.ErrorIs(t, e.Next(), ErrOutOfRange)
			_, err = e.Value()
			require.ErrorIs(t, err, ErrOutOfRange)
			assert.True(t, e.Equal(s.End()), "a failed step moved the cursor")
		})
	}
}

func TestSet_EmptyBehavior(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			s := NewSeeded[int](k, 2)
			assert.True(t, s.Empty())
			assert.EqualValues(t, 0, s.Size())
			assert.True(t, s.Begin().Equal(s.End()))
			assert.True(t, s.Find(1).Equal(s.End()))
			assert.True(t, s.LowerBound(1).Equal(s.End()))
			assert.False(t, s.Remove(1))

			e := s.End()
			require.ErrorIs(t, e.Next(), ErrOutOfRange)
			require.ErrorIs(t, e.Prev(), ErrOutOfRange)
			_, err := e.Value()
			require.ErrorIs(t, err, ErrOutOfRange)

			c := s.Clone()
			assert.True(t, c.Empty())
			require.True(t, c.Insert(9))
			assert.True(t, s.Empty(), "mutating a clone leaked into the source")
			assert.EqualValues(t, 1, c.Size())
		})
	}
}

func TestSet_CloneIndependence(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			orig := From(k, []int{123, 532, 635, 13, 256, 986})
			copied := orig.Clone()
			require.EqualValues(t, orig.Size(), copied.Size())
			require.Equal(t, traverse(t, orig), traverse(t, copied))

			require.True(t, copied.Remove(532))
			assert.False(t, orig.Find(532).Equal(orig.End()), "removing from a clone leaked into the source")
			assert.True(t, copied.Find(532).Equal(copied.End()))

			require.True(t, orig.Insert(1))
			require.True(t, copied.Insert(100))
			assert.EqualValues(t, 7, orig.Size())
			assert.EqualValues(t, 6, copied.Size())

			v, err := copied.LowerBound(99).Value()
			require.NoError(t, err)
			assert.Equal(t, 100, v)
			v, err = orig.LowerBound(99).Value()
			require.NoError(t, err)
			assert.Equal(t, 123, v)

			orig.Clear()
			assert.True(t, orig.Empty())
			assert.EqualValues(t, 6, copied.Size())
			assert.False(t, copied.Find(986).Equal(copied.End()))
		})
	}
}

// TestSet_ModelMirror drives every kind through a dense insert/remove mix and
// compares each step against a sorted slice and against the Reference kind.
func TestSet_ModelMirror(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			s := NewSeeded[int](k, 7)
			ref := MakeRef[int]()
			model := make([]int, 0, 21)
			r := rand.New(rand.NewSource(7))
			for range 1000 {
				v := r.Intn(21) - 10
				at, found := slices.BinarySearch(model, v)
				if r.Intn(2) == 0 {
					require.Equal(t, !found, s.Insert(v))
					require.Equal(t, !found, ref.Insert(v))
					if !found {
						model = slices.Insert(model, at, v)
					}
				} else {
					require.Equal(t, found, s.Remove(v))
					require.Equal(t, found, ref.Remove(v))
					if found {
						model = slices.Delete(model, at, at+1)
					}
				}
				require.EqualValues(t, len(model), s.Size())
				requireCheck(t, k, s)
			}
			require.Equal(t, model, traverse(t, s))
			require.Equal(t, model, traverse(t, ref))
			for v := -12; v <= 12; v++ {
				at, found := slices.BinarySearch(model, v)
				assert.Equal(t, found, !s.Find(v).Equal(s.End()))
				c := s.LowerBound(v)
				if at == len(model) {
					assert.True(t, c.Equal(s.End()))
					continue
				}
				got, err := c.Value()
				require.NoError(t, err)
				assert.Equal(t, model[at], got)
			}
		})
	}
}

func TestSet_FillDrain(t *testing.T) {
	const n = 10000
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			s := NewSeeded[int](k, 3)
			for i := range n {
				require.True(t, s.Insert(i))
			}
			require.EqualValues(t, n, s.Size())
			requireCheck(t, k, s)

			want := 0
			for c := s.Begin(); !c.Equal(s.End()); want++ {
				v, err := c.Value()
				require.NoError(t, err)
				require.Equal(t, want, v)
				require.NoError(t, c.Next())
			}
			require.Equal(t, n, want)

			for i := n - 1; i >= 0; i-- {
				require.True(t, s.Remove(i))
				require.EqualValues(t, i, s.Size())
			}
			assert.True(t, s.Empty())
			assert.True(t, s.Begin().Equal(s.End()))
			_, ok := s.Minimum()
			assert.False(t, ok)
			requireCheck(t, k, s)
		})
	}
}

func TestSet_ClearReuse(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			s := NewSeeded[int](k, 5)
			for i := range 100 {
				s.Insert(i)
			}
			s.Clear()
			require.EqualValues(t, 0, s.Size())
			require.True(t, s.Empty())
			require.True(t, s.Begin().Equal(s.End()))
			require.True(t, s.Find(50).Equal(s.End()))

			require.True(t, s.Insert(42))
			require.False(t, s.Insert(42))
			v, ok := s.Minimum()
			require.True(t, ok)
			require.Equal(t, 42, v)
			requireCheck(t, k, s)
		})
	}
}

func TestSet_Strings(t *testing.T) {
	words := []string{"pear", "apple", "quince", "fig", "apple", "banana"}
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			s := From(k, words)
			require.EqualValues(t, 5, s.Size())
			require.Equal(t, []string{"apple", "banana", "fig", "pear", "quince"}, traverse(t, s))
			v, err := s.LowerBound("c").Value()
			require.NoError(t, err)
			assert.Equal(t, "fig", v)
			assert.True(t, s.LowerBound("zz").Equal(s.End()))
		})
	}
}
