package Bench

import (
	"math/rand"
	"slices"
	"strconv"
	"time"

	"golang.org/x/exp/constraints"

	"github.com/OganyanRV/Trees-implementation/Trees"
)

// All lists every registered workload. Insert workloads time inserts into a
// fresh set, erase workloads build their set untimed and time the erases,
// lookup workloads time the probes.
func All() []Benchmark {
	return []Benchmark{
		{"increasing_int_series_insert", increasingIntInsert},
		{"decreasing_int_series_insert", decreasingIntInsert},
		{"converging_int_series_insert", convergingIntInsert},
		{"diverging_int_series_insert", divergingIntInsert},
		{"random_sparse_int_series_insert", randomSparseIntInsert},
		{"random_dense_int_series_insert", randomDenseIntInsert},
		{"random_sparse_strings_insert", randomSparseStringsInsert},
		{"random_dense_strings_insert", randomDenseStringsInsert},
		{"increasing_int_series_erase_after_increasing_series_insert", increasingIntEraseAfterIncreasing},
		{"decreasing_int_series_erase_after_increasing_series_insert", decreasingIntEraseAfterIncreasing},
		{"converging_int_series_erase_after_increasing_series_insert", convergingIntEraseAfterIncreasing},
		{"diverging_int_series_erase_after_increasing_series_insert", divergingIntEraseAfterIncreasing},
		{"nonexistent_int_series_erase_after_increasing_series_insert", nonexistentIntEraseAfterIncreasing},
		{"random_int_series_erase_after_increasing_series_insert", randomIntEraseAfterIncreasing},
		{"increasing_int_series_erase_after_random_sparse_series_insert", increasingIntEraseAfterRandom},
		{"decreasing_int_series_erase_after_random_sparse_series_insert", decreasingIntEraseAfterRandom},
		{"converging_int_series_erase_after_random_sparse_series_insert", convergingIntEraseAfterRandom},
		{"diverging_int_series_erase_after_random_sparse_series_insert", divergingIntEraseAfterRandom},
		{"nonexistent_int_series_erase_after_random_sparse_series_insert", nonexistentIntEraseAfterRandom},
		{"random_int_series_erase_after_random_sparse_series_insert", randomIntEraseAfterRandom},
		{"random_strings_erase_after_random_insert", randomStringsErase},
		{"nonexistent_strings_erase_after_random_insert", nonexistentStringsErase},
		{"random_insert_and_erase_int_alternation", randomIntAlternation},
		{"find_int_after_random_sparse_insert", findExistingInt},
		{"find_random_sparse_int_after_random_sparse_insert", findRandomInt},
		{"lower_bound_random_sparse_int_after_random_sparse_insert", lowerBoundRandomInt},
	}
}

// timed reports the wall time of f.
func timed(f func()) time.Duration {
	start := time.Now()
	f()
	return time.Since(start)
}

// newSet seeds a fresh set from the workload generator, keeping the
// randomised implementations reproducible per (size, fold).
func newSet[T constraints.Ordered](k Trees.Kind, r *rand.Rand) Trees.Set[T] {
	return Trees.NewSeeded[T](k, r.Uint32())
}

// sparse draws over the whole 32-bit range.
func sparse(r *rand.Rand) int {
	return int(int32(r.Uint32()))
}

// dense draws from [0, n/5], narrow enough to collide often.
func dense(r *rand.Rand, n int) int {
	return r.Intn(n/5 + 1)
}

// wordPrefix is shared by every string element, so comparisons walk a common
// prefix before diverging, the way real-world keys tend to.
const wordPrefix = "shared prefix that every stored string carries up front "

func sparseWord(r *rand.Rand) string {
	return wordPrefix + strconv.Itoa(sparse(r))
}

func denseWord(r *rand.Rand, n int) string {
	return wordPrefix + strconv.Itoa(dense(r, n))
}

// buildSparse fills a fresh set with n sparse values, untimed, and returns
// them in insertion order.
func buildSparse(k Trees.Kind, r *rand.Rand, n int) (Trees.Set[int], []int) {
	s := newSet[int](k, r)
	elements := make([]int, n)
	for i := range elements {
		elements[i] = sparse(r)
		s.Insert(elements[i])
	}
	return s, elements
}

func shuffle[T any](r *rand.Rand, elements []T) {
	r.Shuffle(len(elements), func(i, j int) {
		elements[i], elements[j] = elements[j], elements[i]
	})
}

func increasingIntInsert(k Trees.Kind, r *rand.Rand, n int) time.Duration {
	s := newSet[int](k, r)
	return timed(func() {
		for i := 0; i < n; i++ {
			s.Insert(i)
		}
	})
}

func decreasingIntInsert(k Trees.Kind, r *rand.Rand, n int) time.Duration {
	s := newSet[int](k, r)
	return timed(func() {
		for i := 0; i < n; i++ {
			s.Insert(-i)
		}
	})
}

func convergingIntInsert(k Trees.Kind, r *rand.Rand, n int) time.Duration {
	s := newSet[int](k, r)
	return timed(func() {
		for i := 0; i < n>>1; i++ {
			s.Insert(i)
			s.Insert(n - i - 1)
		}
	})
}

func divergingIntInsert(k Trees.Kind, r *rand.Rand, n int) time.Duration {
	s := newSet[int](k, r)
	return timed(func() {
		for i := n >> 1; i < n; i++ {
			s.Insert(i)
			s.Insert(n - i - 1)
		}
	})
}

func randomSparseIntInsert(k Trees.Kind, r *rand.Rand, n int) time.Duration {
	s := newSet[int](k, r)
	return timed(func() {
		for i := 0; i < n; i++ {
			s.Insert(sparse(r))
		}
	})
}

func randomDenseIntInsert(k Trees.Kind, r *rand.Rand, n int) time.Duration {
	s := newSet[int](k, r)
	return timed(func() {
		for i := 0; i < n; i++ {
			s.Insert(dense(r, n))
		}
	})
}

func randomSparseStringsInsert(k Trees.Kind, r *rand.Rand, n int) time.Duration {
	s := newSet[string](k, r)
	elements := make([]string, n)
	for i := range elements {
		elements[i] = sparseWord(r)
	}
	return timed(func() {
		for _, e := range elements {
			s.Insert(e)
		}
	})
}

func randomDenseStringsInsert(k Trees.Kind, r *rand.Rand, n int) time.Duration {
	s := newSet[string](k, r)
	elements := make([]string, n)
	for i := range elements {
		elements[i] = denseWord(r, n)
	}
	return timed(func() {
		for _, e := range elements {
			s.Insert(e)
		}
	})
}

func increasingIntEraseAfterIncreasing(k Trees.Kind, r *rand.Rand, n int) time.Duration {
	s := newSet[int](k, r)
	for i := 0; i < n; i++ {
		s.Insert(i)
	}
	return timed(func() {
		for i := 0; i < n; i++ {
			s.Remove(i)
		}
	})
}

func decreasingIntEraseAfterIncreasing(k Trees.Kind, r *rand.Rand, n int) time.Duration {
	s := newSet[int](k, r)
	for i := 0; i < n; i++ {
		s.Insert(i)
	}
	return timed(func() {
		for i := n - 1; i >= 0; i-- {
			s.Remove(i)
		}
	})
}

func convergingIntEraseAfterIncreasing(k Trees.Kind, r *rand.Rand, n int) time.Duration {
	s := newSet[int](k, r)
	for i := 0; i < n; i++ {
		s.Insert(i)
	}
	return timed(func() {
		for i := 0; i < n>>1; i++ {
			s.Remove(i)
			s.Remove(n - i - 1)
		}
	})
}

func divergingIntEraseAfterIncreasing(k Trees.Kind, r *rand.Rand, n int) time.Duration {
	s := newSet[int](k, r)
	for i := 0; i < n; i++ {
		s.Insert(i)
	}
	return timed(func() {
		for i := n >> 1; i < n; i++ {
			s.Remove(i)
			s.Remove(n - i - 1)
		}
	})
}

// nonexistentIntEraseAfterIncreasing stores even values and erases odd ones,
// so every erase is a miss.
func nonexistentIntEraseAfterIncreasing(k Trees.Kind, r *rand.Rand, n int) time.Duration {
	s := newSet[int](k, r)
	for i := 0; i < n<<1; i += 2 {
		s.Insert(i)
	}
	return timed(func() {
		for i := 1; i < n<<1; i += 2 {
			s.Remove(i)
		}
	})
}

func randomIntEraseAfterIncreasing(k Trees.Kind, r *rand.Rand, n int) time.Duration {
	s := newSet[int](k, r)
	elements := make([]int, n)
	for i := range elements {
		elements[i] = i
		s.Insert(i)
	}
	shuffle(r, elements)
	return timed(func() {
		for _, e := range elements {
			s.Remove(e)
		}
	})
}

func increasingIntEraseAfterRandom(k Trees.Kind, r *rand.Rand, n int) time.Duration {
	s, elements := buildSparse(k, r, n)
	slices.Sort(elements)
	return timed(func() {
		for _, e := range elements {
			s.Remove(e)
		}
	})
}

func decreasingIntEraseAfterRandom(k Trees.Kind, r *rand.Rand, n int) time.Duration {
	s, elements := buildSparse(k, r, n)
	slices.Sort(elements)
	slices.Reverse(elements)
	return timed(func() {
		for _, e := range elements {
			s.Remove(e)
		}
	})
}

func convergingIntEraseAfterRandom(k Trees.Kind, r *rand.Rand, n int) time.Duration {
	s, elements := buildSparse(k, r, n)
	slices.Sort(elements)
	return timed(func() {
		for i := 0; i < n>>1; i++ {
			s.Remove(elements[i])
			s.Remove(elements[n-i-1])
		}
	})
}

func divergingIntEraseAfterRandom(k Trees.Kind, r *rand.Rand, n int) time.Duration {
	s, elements := buildSparse(k, r, n)
	slices.Sort(elements)
	return timed(func() {
		for i := n >> 1; i < n; i++ {
			s.Remove(elements[i])
			s.Remove(elements[n-i-1])
		}
	})
}

func nonexistentIntEraseAfterRandom(k Trees.Kind, r *rand.Rand, n int) time.Duration {
	s := newSet[int](k, r)
	for range n {
		s.Insert(sparse(r))
	}
	return timed(func() {
		for range n {
			s.Remove(sparse(r))
		}
	})
}

func randomIntEraseAfterRandom(k Trees.Kind, r *rand.Rand, n int) time.Duration {
	s, elements := buildSparse(k, r, n)
	shuffle(r, elements)
	return timed(func() {
		for _, e := range elements {
			s.Remove(e)
		}
	})
}

func randomStringsErase(k Trees.Kind, r *rand.Rand, n int) time.Duration {
	s := newSet[string](k, r)
	elements := make([]string, n)
	for i := range elements {
		elements[i] = sparseWord(r)
		s.Insert(elements[i])
	}
	shuffle(r, elements)
	return timed(func() {
		for _, e := range elements {
			s.Remove(e)
		}
	})
}

func nonexistentStringsErase(k Trees.Kind, r *rand.Rand, n int) time.Duration {
	s := newSet[string](k, r)
	for range n {
		s.Insert(sparseWord(r))
	}
	return timed(func() {
		for range n {
			s.Remove(sparseWord(r))
		}
	})
}

// randomIntAlternation mixes bursts of inserts and erases over a dense value
// range, two parts growth to one part shrink and back.
func randomIntAlternation(k Trees.Kind, r *rand.Rand, n int) time.Duration {
	if n < 10 {
		return 0
	}
	step := n / 10
	s := newSet[int](k, r)
	draw := func() int { return r.Intn(3*step + 1) }
	return timed(func() {
		for range 2 * step {
			s.Insert(draw())
		}
		for range step {
			s.Remove(draw())
		}
		for range 2 * step {
			s.Insert(draw())
		}
		for range 2 * step {
			s.Remove(draw())
		}
		for range step {
			s.Insert(draw())
		}
		for range 2 * step {
			s.Remove(draw())
		}
	})
}

// lookupSink keeps the probe loops observable.
var lookupSink int

func findExistingInt(k Trees.Kind, r *rand.Rand, n int) time.Duration {
	s, elements := buildSparse(k, r, n)
	shuffle(r, elements)
	counter := 0
	d := timed(func() {
		for _, e := range elements {
			if v, err := s.Find(e).Value(); err == nil {
				counter += v
			}
		}
	})
	lookupSink = counter
	return d
}

func findRandomInt(k Trees.Kind, r *rand.Rand, n int) time.Duration {
	s := newSet[int](k, r)
	for range n {
		s.Insert(sparse(r))
	}
	counter := 0
	d := timed(func() {
		for range n {
			if v, err := s.Find(sparse(r)).Value(); err == nil {
				counter += v
			}
		}
	})
	lookupSink = counter
	return d
}

func lowerBoundRandomInt(k Trees.Kind, r *rand.Rand, n int) time.Duration {
	s := newSet[int](k, r)
	for range n {
		s.Insert(sparse(r))
	}
	counter := 0
	d := timed(func() {
		for range n {
			if v, err := s.LowerBound(sparse(r)).Value(); err == nil {
				counter += v
			}
		}
	})
	lookupSink = counter
	return d
}
