package life

import (
	"lifegrid/internal/core"
)

// Life is the grid simulation engine. It owns two grids: Step reads the
// current one and writes the other, then swaps them, so no cell ever sees a
// neighbour's value from the generation being computed.
type Life struct {
	name string
	cfg  Config
	// pending collects parameter edits applied on the next reset.
	pending Config
	rule    Rule

	cur *core.Grid[Cell]
	nxt *core.Grid[Cell]
	src core.Source

	display []uint8
	ages    []uint8

	generation  int
	births      int
	deaths      int
	totalBirths int
	totalDeaths int
}

// New validates cfg and returns a randomly seeded simulation. When src is nil
// a deterministic generator seeded from cfg.Seed is used.
func New(cfg Config, src core.Source) (*Life, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		src = core.NewRNG(cfg.Seed)
	}
	l := &Life{
		name:    "life",
		cfg:     cfg,
		pending: cfg,
		rule:    Rule{TypeCount: cfg.TypeCount, Aging: cfg.Aging},
		cur:     core.NewGrid[Cell](cfg.Cols, cfg.Rows),
		nxt:     core.NewGrid[Cell](cfg.Cols, cfg.Rows),
		src:     src,
		display: make([]uint8, cfg.Rows*cfg.Cols),
	}
	l.seed()
	return l, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return l.name }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.cfg.Cols, H: l.cfg.Rows} }

// Config returns the configuration of the running generation.
func (l *Life) Config() Config { return l.cfg }

// AgingMode reports the active aging policy.
func (l *Life) AgingMode() AgingMode { return l.cfg.Aging }

// Generation returns the number of steps since the last reset.
func (l *Life) Generation() int { return l.generation }

// Cells exposes the display encoding of the current generation. Callers must
// treat it as read-only.
func (l *Life) Cells() []uint8 { return l.display }

// Cell returns the state at (row, col).
func (l *Life) Cell(row, col int) Cell { return l.cur.At(col, row) }

// Alive reports whether the cell at (row, col) is alive.
func (l *Life) Alive(row, col int) bool { return l.cur.At(col, row).Alive }

// Age returns the age of the cell at (row, col).
func (l *Life) Age(row, col int) int { return l.cur.At(col, row).Age }

// Type returns the display category of the cell at (row, col).
func (l *Life) Type(row, col int) int { return l.cur.At(col, row).Type }

// CountAliveNeighbors counts live neighbours of (row, col) in the current
// generation.
func (l *Life) CountAliveNeighbors(row, col int) int {
	return CountAliveNeighbors(l.cur, row, col)
}

// Reset reinitializes the grid from a fresh generator seeded with seed. A
// zero seed reuses the configured one. Pending parameter edits take effect.
// The source handed to New is dropped; from here on draws come from a
// core.RNG, so a reset grid depends only on the seed. Use Reseed to keep
// drawing from the current source.
func (l *Life) Reset(seed int64) {
	if seed == 0 {
		seed = l.pending.Seed
	}
	l.pending.Seed = seed
	l.src = core.NewRNG(seed)
	l.seed()
}

// Reseed reinitializes the grid drawing from the current generator, giving a
// new independent grid without reseeding.
func (l *Life) Reseed() {
	l.seed()
}

func (l *Life) seed() {
	l.cfg = l.pending
	l.rule = Rule{TypeCount: l.cfg.TypeCount, Aging: l.cfg.Aging}
	cells := l.cur.Cells()
	for i := range cells {
		c := Cell{Alive: core.Chance(l.src, l.cfg.Liveness)}
		if l.cfg.TypeCount > 0 {
			c.Type = l.src.IntN(l.cfg.TypeCount)
		}
		cells[i] = c
	}
	l.nxt.Clear()
	l.generation = 0
	l.births, l.deaths = 0, 0
	l.totalBirths, l.totalDeaths = 0, 0
	l.rebuildDisplay()
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	rows, cols := l.cfg.Rows, l.cfg.Cols
	cur, nxt := l.cur.Cells(), l.nxt.Cells()
	births, deaths := 0, 0
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			idx := row*cols + col
			before := cur[idx]
			after := l.rule.Next(before, CountAliveNeighbors(l.cur, row, col), l.src)
			switch {
			case after.Alive && !before.Alive:
				births++
			case !after.Alive && before.Alive:
				deaths++
			}
			nxt[idx] = after
		}
	}
	l.cur, l.nxt = l.nxt, l.cur

	l.generation++
	l.births, l.deaths = births, deaths
	l.totalBirths += births
	l.totalDeaths += deaths
	l.rebuildDisplay()
}

// Ages exposes the current cell ages saturated to 255, for overlays.
func (l *Life) Ages() []uint8 {
	cells := l.cur.Cells()
	if len(l.ages) != len(cells) {
		l.ages = make([]uint8, len(cells))
	}
	for i, c := range cells {
		age := c.Age
		if age > 255 {
			age = 255
		}
		l.ages[i] = uint8(age)
	}
	return l.ages
}

func newPreset(name string, base Config) core.Factory {
	return func(cfg map[string]string) (core.Sim, error) {
		c, err := FromMap(base, cfg)
		if err != nil {
			return nil, err
		}
		l, err := New(c, nil)
		if err != nil {
			return nil, err
		}
		l.name = name
		return l, nil
	}
}

func init() {
	core.Register("life", newPreset("life", DefaultConfig()))
	core.Register("life-capped", newPreset("life-capped", CappedConfig()))
	core.Register("life-decay", newPreset("life-decay", DecayConfig()))
}
