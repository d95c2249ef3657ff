// Command life-sweep surveys aging and seeding parameters headlessly and
// ranks them by how long and how large populations persist.
package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"strings"
	"time"

	"lifegrid/internal/app"
	"lifegrid/internal/core"
	"lifegrid/internal/sims/life"
)

func main() {
	sim := flag.String("sim", "life-decay", "preset the sweep starts from")
	steps := flag.Int("steps", 500, "generations to simulate per run")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	seeds := flag.Int("seeds", 4, "runs per parameter set")
	liveness := flag.String("liveness", "0.1,0.3,0.5", "comma separated seeding probabilities")
	params := flag.String("aging", "4,8,16,32", "comma separated aging caps or bounds")
	top := flag.Int("top", 10, "rows to print")
	list := flag.Bool("list", false, "list presets and exit")
	var overrides app.KVList
	flag.Var(&overrides, "set", "preset override in key=value form (repeatable)")
	flag.Parse()

	if *list {
		fmt.Println(strings.Join(core.SimNames(), "\n"))
		return
	}

	base, err := baseConfig(*sim, overrides)
	if err != nil {
		log.Fatal(err)
	}
	livenessOptions, err := parseFloats(*liveness)
	if err != nil {
		log.Fatalf("-liveness: %v", err)
	}
	agingOptions, err := parseInts(*params)
	if err != nil {
		log.Fatalf("-aging: %v", err)
	}
	sets := buildSets(base, livenessOptions, agingOptions)
	if len(sets) == 0 {
		log.Fatal("no valid parameter sets")
	}

	n := workerCount(*workers)
	fmt.Printf("Sweeping %d parameter sets x %d seeds on %dx%d (%d workers, %d steps)\n",
		len(sets), *seeds, base.Cols, base.Rows, n, *steps)

	start := time.Now()
	all := sweep(sets, n, *seeds, *steps)
	rank(all)
	elapsed := time.Since(start)

	fmt.Printf("\nTop %d results (elapsed %s):\n", *top, elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < *top; i++ {
		fmt.Printf("%2d) %s\n", i+1, all[i])
	}
}

func baseConfig(name string, overrides app.KVList) (life.Config, error) {
	kv := map[string]string{}
	for _, o := range overrides {
		key, value, ok := strings.Cut(o, "=")
		if !ok {
			return life.Config{}, fmt.Errorf("bad -set %q: want key=value", o)
		}
		kv[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	sim, err := core.NewSim(name, kv)
	if err != nil {
		return life.Config{}, err
	}
	l, ok := sim.(*life.Life)
	if !ok {
		return life.Config{}, fmt.Errorf("sim %q is not a life preset", name)
	}
	return l.Config(), nil
}
