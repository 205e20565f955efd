// Command treebench measures the Trees implementations over the registered
// workloads and writes one CSV per workload into the output directory.
package main

import (
	"flag"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/OganyanRV/Trees-implementation/Bench"
	"github.com/OganyanRV/Trees-implementation/Trees"
)

func main() {
	var (
		out     = flag.String("out", "results", "directory for the CSV files")
		match   = flag.String("match", "", "run only benchmarks whose name contains this substring")
		kinds   = flag.String("kinds", "", "comma separated kinds to measure, empty for all")
		begin   = flag.Int("begin", 1000, "smallest operation count")
		end     = flag.Int("end", 100000, "largest operation count")
		step    = flag.Int("step", 10, "linear increment, or factor with -log")
		logStep = flag.Bool("log", true, "multiply sizes by -step instead of adding it")
		folds   = flag.Int("folds", 5, "measurements per size")
	)
	flag.Parse()

	log := logrus.New()

	var ks []Trees.Kind
	if *kinds != "" {
		for _, name := range strings.Split(*kinds, ",") {
			k, err := Trees.ParseKind(strings.TrimSpace(name))
			if err != nil {
				log.Fatal(err)
			}
			ks = append(ks, k)
		}
	}

	benches := Bench.Match(Bench.All(), *match)
	if len(benches) == 0 {
		log.Fatalf("no benchmark matches %q", *match)
	}
	if err := os.MkdirAll(*out, 0o755); err != nil {
		log.Fatal(err)
	}

	ru := &Bench.Runner{Dir: *out, Kinds: ks, Log: log}
	sizes := Bench.Range{Begin: *begin, End: *end, Step: *step, Log: *logStep, Folds: *folds}
	if err := ru.Run(benches, sizes); err != nil {
		log.Fatal(err)
	}
}
