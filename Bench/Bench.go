// Package Bench times the Trees implementations against each other over
// parameterised workloads. Every benchmark produces one CSV file holding a
// row per operation count and a column per (kind, fold) pair, so the results
// plot directly.
package Bench

import (
	"encoding/csv"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/alphadose/haxmap"
	"github.com/sirupsen/logrus"

	"github.com/OganyanRV/Trees-implementation/Trees"
)

// Range is a schedule of operation counts. A linear schedule walks Begin,
// Begin+Step, ...; a logarithmic one multiplies by Step instead. End is
// always included. Every point is measured Folds times (default 5).
type Range struct {
	Begin, End, Step int
	Log              bool
	Folds            int
}

// Points expands the schedule. A logarithmic schedule needs Begin > 0 and
// Step > 1, a linear one Step > 0; anything else degrades to End alone.
func (r Range) Points() []int {
	var pts []int
	switch {
	case r.Log && r.Begin > 0 && r.Step > 1:
		for n := r.Begin; n < r.End; n *= r.Step {
			pts = append(pts, n)
		}
	case !r.Log && r.Step > 0:
		for n := r.Begin; n < r.End; n += r.Step {
			pts = append(pts, n)
		}
	}
	return append(pts, r.End)
}

func (r Range) folds() int {
	if r.Folds <= 0 {
		return 5
	}
	return r.Folds
}

// Benchmark is one named workload. Run builds a set of the given kind, feeds
// it a workload of n operations drawn from r, and reports the duration of
// the timed section alone; setup is excluded. Name doubles as the CSV file
// name.
type Benchmark struct {
	Name string
	Run  func(k Trees.Kind, r *rand.Rand, n int) time.Duration
}

// Match keeps the benchmarks whose name contains pattern. An empty pattern
// keeps everything.
func Match(benches []Benchmark, pattern string) []Benchmark {
	var out []Benchmark
	for _, b := range benches {
		if strings.Contains(b.Name, pattern) {
			out = append(out, b)
		}
	}
	return out
}

// Runner executes benchmarks, one goroutine each, and writes their CSVs into
// Dir. Workload data is reproducible: every (size, fold) pair seeds its own
// generator, so reruns and kinds see identical operation streams.
type Runner struct {
	Dir   string
	Kinds []Trees.Kind
	Log   *logrus.Logger
}

// Run executes every benchmark over the sizes schedule and waits for all of
// them. Failures are logged and returned joined; the remaining benchmarks
// still finish.
func (ru *Runner) Run(benches []Benchmark, sizes Range) error {
	kinds := ru.Kinds
	if len(kinds) == 0 {
		kinds = Trees.Kinds()
	}
	spent := haxmap.New[string, time.Duration]()
	fails := haxmap.New[string, error]()
	var wg sync.WaitGroup
	for _, b := range benches {
		ru.Log.Infof("running %s", b.Name)
		wg.Add(1)
		go func(b Benchmark) {
			defer wg.Done()
			start := time.Now()
			if err := ru.runOne(b, kinds, sizes); err != nil {
				fails.Set(b.Name, err)
				return
			}
			spent.Set(b.Name, time.Since(start))
		}(b)
	}
	wg.Wait()
	spent.ForEach(func(name string, d time.Duration) bool {
		ru.Log.Infof("%s: ok, time spent: %s", name, d)
		return true
	})
	var errs []error
	fails.ForEach(func(name string, err error) bool {
		ru.Log.Errorf("%s: %v", name, err)
		errs = append(errs, fmt.Errorf("%s: %w", name, err))
		return true
	})
	return errors.Join(errs...)
}

// runOne measures one benchmark over every kind and fold and writes
// <Name>.csv: a header, then a row per point of the schedule with
// millisecond timings at three decimals.
func (ru *Runner) runOne(b Benchmark, kinds []Trees.Kind, sizes Range) error {
	f, err := os.Create(filepath.Join(ru.Dir, b.Name+".csv"))
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	folds := sizes.folds()
	header := make([]string, 1, 1+len(kinds)*folds)
	header[0] = "op_count"
	for _, k := range kinds {
		for fold := 0; fold < folds; fold++ {
			header = append(header, fmt.Sprintf("%s_split_%d", k, fold))
		}
	}
	if err := w.Write(header); err != nil {
		return err
	}
	row := make([]string, 0, len(header))
	for _, n := range sizes.Points() {
		row = append(row[:0], strconv.Itoa(n))
		for _, k := range kinds {
			for fold := 0; fold < folds; fold++ {
				r := rand.New(rand.NewSource(int64(n)*1000003 + int64(fold)))
				ms := float64(b.Run(k, r, n).Nanoseconds()) / 1e6
				row = append(row, strconv.FormatFloat(ms, 'f', 3, 64))
			}
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
