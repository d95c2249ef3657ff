package life

import (
	"errors"
	"slices"
	"testing"

	"lifegrid/internal/core"
)

// fixedSource returns the same draw every time, clamped to the bound.
type fixedSource struct{ draw int }

func (f fixedSource) IntN(n int) int {
	if f.draw >= n {
		return n - 1
	}
	return f.draw
}

func (f fixedSource) Float64() float64 { return 0.999 }

// countingSource records how many draws pass through it.
type countingSource struct {
	src   core.Source
	draws int
}

func (c *countingSource) IntN(n int) int {
	c.draws++
	return c.src.IntN(n)
}

func (c *countingSource) Float64() float64 {
	c.draws++
	return c.src.Float64()
}

func newEmpty(t *testing.T, rows, cols int, aging AgingMode) *Life {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Rows, cfg.Cols = rows, cols
	cfg.Liveness = 0
	cfg.Aging = aging
	l, err := New(cfg, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return l
}

func place(l *Life, points ...Point) {
	for _, p := range points {
		l.cur.Set(p.Col, p.Row, Cell{Alive: true})
	}
	l.rebuildDisplay()
}

func expectPattern(t *testing.T, l *Life, alive ...Point) {
	t.Helper()
	want := map[Point]bool{}
	for _, p := range alive {
		want[p] = true
	}
	size := l.Size()
	for row := 0; row < size.H; row++ {
		for col := 0; col < size.W; col++ {
			if got := l.Alive(row, col); got != want[Point{row, col}] {
				t.Fatalf("generation %d: cell (%d,%d) alive=%v, expected %v", l.Generation(), row, col, got, want[Point{row, col}])
			}
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	l := newEmpty(t, 5, 5, NoAging())
	place(l, Point{1, 0}, Point{1, 1}, Point{1, 2})

	l.Step()
	expectPattern(t, l, Point{0, 1}, Point{1, 1}, Point{2, 1})

	l.Step()
	expectPattern(t, l, Point{1, 0}, Point{1, 1}, Point{1, 2})
}

func TestCenteredBlinkerOscillation(t *testing.T) {
	l := newEmpty(t, 5, 5, NoAging())
	place(l, Point{1, 2}, Point{2, 2}, Point{3, 2})

	l.Step()
	expectPattern(t, l, Point{2, 1}, Point{2, 2}, Point{2, 3})
	if got := l.Age(2, 2); got != 1 {
		t.Fatalf("surviving center should have age 1, got %d", got)
	}
	if got := l.Age(2, 1); got != 0 {
		t.Fatalf("newborn should have age 0, got %d", got)
	}
}

func TestBlockIsStillLife(t *testing.T) {
	l := newEmpty(t, 4, 4, NoAging())
	block := []Point{{1, 1}, {1, 2}, {2, 1}, {2, 2}}
	place(l, block...)
	for i := 0; i < 5; i++ {
		l.Step()
	}
	expectPattern(t, l, block...)
	if got := l.Age(1, 1); got != 5 {
		t.Fatalf("block cell should have aged 5 generations, got %d", got)
	}
}

func TestNeighborCountHardBoundary(t *testing.T) {
	l := newEmpty(t, 4, 6, NoAging())
	for i := range l.cur.Cells() {
		l.cur.Cells()[i] = Cell{Alive: true}
	}

	cases := []struct {
		row, col int
		want     int
	}{
		{0, 0, 3},
		{0, 5, 3},
		{3, 0, 3},
		{3, 5, 3},
		{0, 2, 5},
		{2, 0, 5},
		{1, 1, 8},
		{2, 4, 8},
	}
	for _, c := range cases {
		if got := l.CountAliveNeighbors(c.row, c.col); got != c.want {
			t.Fatalf("CountAliveNeighbors(%d,%d) = %d, want %d", c.row, c.col, got, c.want)
		}
	}
}

func TestNeighborCountNoWraparound(t *testing.T) {
	l := newEmpty(t, 5, 5, NoAging())
	place(l, Point{4, 4}, Point{0, 4}, Point{4, 0})
	if got := l.CountAliveNeighbors(0, 0); got != 0 {
		t.Fatalf("corner must not see cells across the edge, got %d", got)
	}
}

func TestNeighborCountSingleCell(t *testing.T) {
	l := newEmpty(t, 1, 1, NoAging())
	place(l, Point{0, 0})
	if got := l.CountAliveNeighbors(0, 0); got != 0 {
		t.Fatalf("a lone cell has no neighbours, got %d", got)
	}
}

func TestRuleClassicTransitions(t *testing.T) {
	rule := Rule{Aging: NoAging()}
	src := core.NewRNG(1)
	for n := 0; n <= 8; n++ {
		alive := rule.Next(Cell{Alive: true, Age: 4}, n, src)
		survives := n == 2 || n == 3
		if alive.Alive != survives {
			t.Fatalf("live cell with %d neighbours: alive=%v, want %v", n, alive.Alive, survives)
		}
		if survives && alive.Age != 5 {
			t.Fatalf("survivor with %d neighbours should age to 5, got %d", n, alive.Age)
		}
		if !survives && alive.Age != 0 {
			t.Fatalf("dead cell must have age 0, got %d", alive.Age)
		}

		dead := rule.Next(Cell{}, n, src)
		if dead.Alive != (n == 3) {
			t.Fatalf("dead cell with %d neighbours: alive=%v", n, dead.Alive)
		}
		if dead.Age != 0 {
			t.Fatalf("dead or newborn cell must have age 0, got %d", dead.Age)
		}
	}
}

func TestRuleTypeAssignedOnlyAtBirth(t *testing.T) {
	rule := Rule{TypeCount: 3, Aging: NoAging()}

	born := rule.Next(Cell{Type: 0}, 3, fixedSource{draw: 2})
	if !born.Alive || born.Type != 2 {
		t.Fatalf("birth should redraw type to 2, got %+v", born)
	}

	survivor := rule.Next(Cell{Alive: true, Age: 1, Type: 1}, 2, fixedSource{draw: 2})
	if survivor.Type != 1 {
		t.Fatalf("survival must keep type 1, got %d", survivor.Type)
	}

	died := rule.Next(Cell{Alive: true, Age: 1, Type: 1}, 0, fixedSource{draw: 2})
	if died.Type != 1 {
		t.Fatalf("death must not redraw type, got %d", died.Type)
	}
}

func TestRuleFixedCap(t *testing.T) {
	rule := Rule{Aging: FixedCap(6)}
	src := core.NewRNG(1)

	if next := rule.Next(Cell{Alive: true, Age: 5}, 2, src); !next.Alive || next.Age != 6 {
		t.Fatalf("age 6 is within the cap, got %+v", next)
	}
	if next := rule.Next(Cell{Alive: true, Age: 6}, 3, src); next.Alive || next.Age != 0 {
		t.Fatalf("age 7 exceeds the cap and must die with age 0, got %+v", next)
	}
	if next := rule.Next(Cell{}, 3, src); !next.Alive {
		t.Fatal("newborns are never over the cap")
	}
}

func TestRuleProbabilisticAging(t *testing.T) {
	rule := Rule{Aging: Probabilistic(10)}

	if next := rule.Next(Cell{Alive: true, Age: 3}, 2, fixedSource{draw: 5}); !next.Alive || next.Age != 4 {
		t.Fatalf("draw 5 > age 4 should survive, got %+v", next)
	}
	if next := rule.Next(Cell{Alive: true, Age: 3}, 2, fixedSource{draw: 4}); next.Alive || next.Age != 0 {
		t.Fatalf("draw 4 <= age 4 should die with age 0, got %+v", next)
	}
	if next := rule.Next(Cell{}, 3, fixedSource{draw: 0}); next.Alive || next.Age != 0 {
		t.Fatalf("newborn age 0 still dies on a zero draw, got %+v", next)
	}
	if next := rule.Next(Cell{}, 2, fixedSource{draw: 0}); next.Alive {
		t.Fatal("dead cells are not revived by the aging draw")
	}
}

func TestProbabilisticBoundOneKillsEveryone(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows, cfg.Cols = 12, 12
	cfg.Liveness = 1
	cfg.Aging = Probabilistic(1)
	l, err := New(cfg, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if l.CountAlive() != 144 {
		t.Fatalf("expected full grid, got %d alive", l.CountAlive())
	}

	for i := 0; i < 3; i++ {
		l.Step()
		if got := l.CountAlive(); got != 0 {
			t.Fatalf("step %d: expected every cell dead, got %d alive", i+1, got)
		}
	}
}

func TestLTrominoBecomesBlock(t *testing.T) {
	l := newEmpty(t, 3, 3, NoAging())
	place(l, Point{0, 1}, Point{1, 0}, Point{1, 1})
	l.Step()
	expectPattern(t, l, Point{0, 0}, Point{0, 1}, Point{1, 0}, Point{1, 1})
}

func TestAliveDeadSumInvariant(t *testing.T) {
	for _, cfg := range []Config{DefaultConfig(), CappedConfig(), DecayConfig()} {
		cfg.Rows, cfg.Cols = 20, 30
		l, err := New(cfg, nil)
		if err != nil {
			t.Fatalf("New(%v): %v", cfg.Aging, err)
		}
		for i := 0; i < 40; i++ {
			l.Step()
			if l.CountAlive()+l.CountDead() != 600 {
				t.Fatalf("%v step %d: alive+dead != rows*cols", cfg.Aging, i+1)
			}
			for _, c := range l.cur.Cells() {
				if !c.Alive && c.Age != 0 {
					t.Fatalf("%v: dead cell with age %d", cfg.Aging, c.Age)
				}
				if cfg.TypeCount > 0 && (c.Type < 0 || c.Type >= cfg.TypeCount) {
					t.Fatalf("%v: type %d out of range", cfg.Aging, c.Type)
				}
			}
		}
	}
}

func TestCountsDoNotMutate(t *testing.T) {
	cfg := DecayConfig()
	cfg.Rows, cfg.Cols = 10, 10
	l, err := New(cfg, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l.Step()
	before := slices.Clone(l.cur.Cells())
	a1, d1 := l.CountAlive(), l.CountDead()
	a2, d2 := l.CountAlive(), l.CountDead()
	_ = l.Stats()
	if a1 != a2 || d1 != d2 {
		t.Fatalf("counts changed between calls: %d/%d vs %d/%d", a1, d1, a2, d2)
	}
	if !slices.Equal(before, l.cur.Cells()) {
		t.Fatal("counting mutated the grid")
	}
}

func TestDeterministicRuns(t *testing.T) {
	run := func() []Cell {
		cfg := DecayConfig()
		cfg.Rows, cfg.Cols = 16, 24
		cfg.Liveness = 0.4
		cfg.Seed = 2024
		l, err := New(cfg, nil)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		for i := 0; i < 25; i++ {
			l.Step()
		}
		return slices.Clone(l.cur.Cells())
	}
	if !slices.Equal(run(), run()) {
		t.Fatal("seeded runs diverged")
	}
}

func TestResetDropsInjectedSource(t *testing.T) {
	cfg := DecayConfig()
	cfg.Rows, cfg.Cols = 4, 4
	cfg.Seed = 5
	injected := &countingSource{src: core.NewRNG(99)}
	l, err := New(cfg, injected)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if injected.draws == 0 {
		t.Fatal("initial grid should draw from the injected source")
	}
	drawn := injected.draws

	l.Reset(0)
	l.Step()
	l.Reseed()
	if injected.draws != drawn {
		t.Fatalf("injected source used after Reset: %d draws, want %d", injected.draws, drawn)
	}

	l.Reset(0)
	fresh, err := New(cfg, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !slices.Equal(fresh.cur.Cells(), l.cur.Cells()) {
		t.Fatal("reset grid should depend only on the seed")
	}
}

func TestResetDeterministic(t *testing.T) {
	cfg := DecayConfig()
	cfg.Rows, cfg.Cols = 12, 12
	cfg.Liveness = 0.5
	l, err := New(cfg, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	initial := slices.Clone(l.cur.Cells())

	l.Step()
	l.Step()
	l.Reset(0)
	if !slices.Equal(initial, l.cur.Cells()) {
		t.Fatal("Reset with config seed not deterministic")
	}
	if l.Generation() != 0 || l.Stats().TotalBirths != 0 {
		t.Fatal("Reset must clear the generation and counters")
	}

	l.Reset(777)
	seeded := slices.Clone(l.cur.Cells())
	l.Reset(777)
	if !slices.Equal(seeded, l.cur.Cells()) {
		t.Fatal("Reset with explicit seed not deterministic")
	}
	if slices.Equal(initial, seeded) {
		t.Fatal("different seeds should produce different grids")
	}

	l.Reseed()
	if slices.Equal(seeded, l.cur.Cells()) {
		t.Fatal("Reseed should continue the generator and produce a new grid")
	}
	for _, c := range l.cur.Cells() {
		if c.Age != 0 {
			t.Fatal("initialization must leave every age at 0")
		}
	}
}

func TestInitializeLivenessProbability(t *testing.T) {
	for _, p := range []float64{0.1, 0.5} {
		cfg := DefaultConfig()
		cfg.Rows, cfg.Cols = 100, 100
		cfg.Liveness = p
		l, err := New(cfg, nil)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		got := float64(l.CountAlive()) / 10000
		if got < p-0.03 || got > p+0.03 {
			t.Fatalf("liveness %.2f seeded %.3f alive", p, got)
		}
	}
}

func TestInitializeTypesIndependentOfLiveness(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rows, cfg.Cols = 40, 40
	cfg.Liveness = 0
	cfg.TypeCount = 3
	l, err := New(cfg, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	seen := map[int]bool{}
	for _, c := range l.cur.Cells() {
		seen[c.Type] = true
	}
	if len(seen) != 3 {
		t.Fatalf("dead cells should still carry all 3 types, saw %v", seen)
	}
}

func TestStepCountsBirthsAndDeaths(t *testing.T) {
	l := newEmpty(t, 5, 5, NoAging())
	place(l, Point{1, 2}, Point{2, 2}, Point{3, 2})
	l.Step()
	s := l.Stats()
	if s.Births != 2 || s.Deaths != 2 {
		t.Fatalf("blinker flip should have 2 births and 2 deaths, got %d/%d", s.Births, s.Deaths)
	}
	l.Step()
	s = l.Stats()
	if s.TotalBirths != 4 || s.TotalDeaths != 4 || s.Generation != 2 {
		t.Fatalf("unexpected totals %+v", s)
	}
	if s.Alive != 3 || s.Dead != 22 || s.MaxAge != 2 {
		t.Fatalf("unexpected population stats %+v", s)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"zero rows", func(c *Config) { c.Rows = 0 }, ErrInvalidDimensions},
		{"negative cols", func(c *Config) { c.Cols = -3 }, ErrInvalidDimensions},
		{"liveness above one", func(c *Config) { c.Liveness = 1.5 }, ErrInvalidLiveness},
		{"negative liveness", func(c *Config) { c.Liveness = -0.1 }, ErrInvalidLiveness},
		{"too many types", func(c *Config) { c.TypeCount = MaxTypeCount + 1 }, ErrInvalidTypeCount},
		{"zero bound", func(c *Config) { c.Aging = Probabilistic(0) }, ErrInvalidAging},
		{"negative cap", func(c *Config) { c.Aging = FixedCap(-1) }, ErrInvalidAging},
	}
	for _, tc := range cases {
		cfg := DefaultConfig()
		tc.mutate(&cfg)
		if _, err := New(cfg, nil); !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestAgingModeAccessors(t *testing.T) {
	l := newEmpty(t, 3, 3, Probabilistic(12))
	mode := l.AgingMode()
	if mode.Kind != AgingProbabilistic || mode.Bound() != 12 || mode.Threshold() != 0 {
		t.Fatalf("unexpected mode %+v", mode)
	}
	if mode.String() != "prob(12)" {
		t.Fatalf("unexpected String %q", mode.String())
	}
	if FixedCap(6).Threshold() != 6 || NoAging().String() != "none" {
		t.Fatal("accessor mismatch")
	}
}

func TestRegisteredPresets(t *testing.T) {
	for _, name := range []string{"life", "life-capped", "life-decay"} {
		sim, err := core.NewSim(name, map[string]string{"rows": "8", "cols": "9"})
		if err != nil {
			t.Fatalf("NewSim(%q): %v", name, err)
		}
		if sim.Name() != name {
			t.Fatalf("expected name %q, got %q", name, sim.Name())
		}
		if sim.Size() != (core.Size{W: 9, H: 8}) || len(sim.Cells()) != 72 {
			t.Fatalf("%s: unexpected size %+v", name, sim.Size())
		}
	}
	sim, _ := core.NewSim("life-decay", nil)
	if mode := sim.(*Life).AgingMode(); mode.Kind != AgingProbabilistic {
		t.Fatalf("life-decay should use probabilistic aging, got %v", mode)
	}
	if _, err := core.NewSim("life", map[string]string{"liveness": "2"}); !errors.Is(err, ErrInvalidLiveness) {
		t.Fatalf("expected liveness error, got %v", err)
	}
	if _, err := core.NewSim("nope", nil); err == nil {
		t.Fatal("unknown sim should fail")
	}
}
