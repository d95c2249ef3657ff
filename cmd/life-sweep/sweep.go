package main

import (
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"
	"sync"

	"lifegrid/internal/sims/life"
)

type sweepResult struct {
	cfg       life.Config
	runs      int
	extinct   int
	meanSteps float64
	meanPeak  float64
	meanFinal float64
	meanAge   float64
}

func (r sweepResult) String() string {
	return fmt.Sprintf("final=%.1f peak=%.1f gens=%.1f extinct=%d/%d age=%.2f %s",
		r.meanFinal, r.meanPeak, r.meanSteps, r.extinct, r.runs, r.meanAge, describe(r.cfg))
}

func describe(cfg life.Config) string {
	return fmt.Sprintf("liveness=%.2f types=%d aging=%s", cfg.Liveness, cfg.TypeCount, cfg.Aging)
}

// buildSets crosses seeding probabilities with aging parameters. Without an
// aging mode only the liveness axis varies. Invalid combinations are dropped.
func buildSets(base life.Config, liveness []float64, aging []int) []life.Config {
	if len(liveness) == 0 {
		liveness = []float64{base.Liveness}
	}
	if base.Aging.Kind == life.AgingNone || len(aging) == 0 {
		aging = []int{base.Aging.Param}
	}
	var sets []life.Config
	for _, p := range liveness {
		for _, a := range aging {
			cfg := base
			cfg.Liveness = p
			cfg.Aging.Param = a
			if cfg.Validate() != nil {
				continue
			}
			sets = append(sets, cfg)
		}
	}
	return sets
}

// workerCount clamps the requested pool size to at least one goroutine.
func workerCount(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

// sweep fans sets out over a pool of workers and collects one result per
// set that ran cleanly. Results arrive in completion order.
func sweep(sets []life.Config, workers, seeds, steps int) []sweepResult {
	jobs := make(chan life.Config)
	results := make(chan sweepResult)
	var wg sync.WaitGroup

	for i := 0; i < workerCount(workers); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for cfg := range jobs {
				res, err := runSet(cfg, seeds, steps)
				if err != nil {
					log.Printf("skip %s: %v", describe(cfg), err)
					continue
				}
				results <- res
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, cfg := range sets {
			jobs <- cfg
		}
		close(jobs)
	}()

	var all []sweepResult
	for res := range results {
		all = append(all, res)
	}
	return all
}

// runSet surveys cfg once per seed, seeds counting up from cfg.Seed.
func runSet(cfg life.Config, seeds, steps int) (sweepResult, error) {
	if seeds <= 0 {
		seeds = 1
	}
	res := sweepResult{cfg: cfg, runs: seeds}
	for i := 0; i < seeds; i++ {
		run := cfg
		run.Seed = cfg.Seed + int64(i)
		s, err := life.Survey(run, steps)
		if err != nil {
			return sweepResult{}, err
		}
		if s.ExtinctAt >= 0 {
			res.extinct++
		}
		res.meanSteps += float64(s.Steps)
		res.meanPeak += float64(s.Peak)
		res.meanFinal += float64(s.FinalAlive)
		res.meanAge += s.MeanAge
	}
	n := float64(seeds)
	res.meanSteps /= n
	res.meanPeak /= n
	res.meanFinal /= n
	res.meanAge /= n
	return res, nil
}

// rank orders results by surviving population, then by generations run.
func rank(all []sweepResult) {
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].meanFinal != all[j].meanFinal {
			return all[i].meanFinal > all[j].meanFinal
		}
		return all[i].meanSteps > all[j].meanSteps
	})
}

func parseFloats(s string) ([]float64, error) {
	var out []float64
	for _, field := range splitList(s) {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func parseInts(s string) ([]int, error) {
	var out []int
	for _, field := range splitList(s) {
		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func splitList(s string) []string {
	var fields []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			fields = append(fields, f)
		}
	}
	return fields
}
