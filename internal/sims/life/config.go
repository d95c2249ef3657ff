package life

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Configuration errors reported by Validate and New.
var (
	ErrInvalidDimensions = errors.New("life: invalid grid dimensions")
	ErrInvalidLiveness   = errors.New("life: liveness probability out of range")
	ErrInvalidTypeCount  = errors.New("life: invalid type count")
	ErrInvalidAging      = errors.New("life: invalid aging mode")
)

const (
	// DefaultDisplayWidth and DefaultDisplayHeight describe the drawing area
	// the default grid is derived from.
	DefaultDisplayWidth  = 900
	DefaultDisplayHeight = 600
	// DefaultCellSize is the edge length of one cell in display pixels.
	DefaultCellSize = 10

	// MaxTypeCount bounds the number of display categories.
	MaxTypeCount = 8
)

// Config holds the parameters of one simulation run.
type Config struct {
	Rows int
	Cols int

	Seed int64

	// Liveness is the probability that a cell starts alive.
	Liveness float64
	// TypeCount is the number of display categories; 0 disables typing.
	TypeCount int
	Aging     AgingMode
}

// DimensionsFor derives grid dimensions from a display area and cell size.
func DimensionsFor(width, height, cell int) (rows, cols int, err error) {
	if cell <= 0 {
		return 0, 0, fmt.Errorf("%w: cell size %d must be > 0", ErrInvalidDimensions, cell)
	}
	rows, cols = height/cell, width/cell
	if rows <= 0 || cols <= 0 {
		return 0, 0, fmt.Errorf("%w: %dx%d display holds no %dpx cells", ErrInvalidDimensions, width, height, cell)
	}
	return rows, cols, nil
}

// DefaultConfig returns the classic configuration: half the cells alive, no
// aging and no types.
func DefaultConfig() Config {
	return Config{
		Rows:     DefaultDisplayHeight / DefaultCellSize,
		Cols:     DefaultDisplayWidth / DefaultCellSize,
		Seed:     42,
		Liveness: 0.5,
		Aging:    NoAging(),
	}
}

// CappedConfig kills every cell that survives past six generations.
func CappedConfig() Config {
	c := DefaultConfig()
	c.Aging = FixedCap(6)
	return c
}

// DecayConfig seeds a mostly dead grid of three cell types whose cells die
// of old age with growing probability.
func DecayConfig() Config {
	c := DefaultConfig()
	c.Liveness = 0.1
	c.TypeCount = 3
	c.Aging = Probabilistic(16)
	return c
}

// Validate reports the first configuration error, if any.
func (c Config) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("%w: %d rows x %d cols", ErrInvalidDimensions, c.Rows, c.Cols)
	}
	if math.IsNaN(c.Liveness) || c.Liveness < 0 || c.Liveness > 1 {
		return fmt.Errorf("%w: %v not in [0, 1]", ErrInvalidLiveness, c.Liveness)
	}
	if c.TypeCount < 0 || c.TypeCount > MaxTypeCount {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrInvalidTypeCount, c.TypeCount, MaxTypeCount)
	}
	return c.Aging.Validate()
}

// FromMap applies flag-style key/value overrides to base. Unknown keys are
// ignored; malformed values are errors. Display keys (width, height, cell)
// derive rows and cols unless those are given explicitly.
func FromMap(base Config, cfg map[string]string) (Config, error) {
	c := base
	if cfg == nil {
		return c, c.Validate()
	}

	atoi := func(key string, dst *int) error {
		v, ok := cfg[key]
		if !ok {
			return nil
		}
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("life: parse %s=%q: %w", key, v, err)
		}
		*dst = parsed
		return nil
	}

	width, height, cell := c.Cols*DefaultCellSize, c.Rows*DefaultCellSize, DefaultCellSize
	_, hasW := cfg["width"]
	_, hasH := cfg["height"]
	_, hasCell := cfg["cell"]
	for key, dst := range map[string]*int{"width": &width, "height": &height, "cell": &cell} {
		if err := atoi(key, dst); err != nil {
			return c, err
		}
	}
	if hasW || hasH || hasCell {
		rows, cols, err := DimensionsFor(width, height, cell)
		if err != nil {
			return c, err
		}
		c.Rows, c.Cols = rows, cols
	}
	if err := atoi("rows", &c.Rows); err != nil {
		return c, err
	}
	if err := atoi("cols", &c.Cols); err != nil {
		return c, err
	}
	if v, ok := cfg["seed"]; ok {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c, fmt.Errorf("life: parse seed=%q: %w", v, err)
		}
		c.Seed = parsed
	}
	if v, ok := cfg["liveness"]; ok {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return c, fmt.Errorf("life: parse liveness=%q: %w", v, err)
		}
		c.Liveness = parsed
	}
	if err := atoi("types", &c.TypeCount); err != nil {
		return c, err
	}

	if v, ok := cfg["aging"]; ok {
		kind, err := ParseAgingKind(v)
		if err != nil {
			return c, err
		}
		if kind != c.Aging.Kind {
			c.Aging = AgingMode{Kind: kind, Param: defaultAgingParam(kind)}
		}
	}
	switch c.Aging.Kind {
	case AgingFixedCap:
		if err := atoi("aging_cap", &c.Aging.Param); err != nil {
			return c, err
		}
	case AgingProbabilistic:
		if err := atoi("aging_bound", &c.Aging.Param); err != nil {
			return c, err
		}
	}
	return c, c.Validate()
}

func defaultAgingParam(kind AgingKind) int {
	switch kind {
	case AgingFixedCap:
		return CappedConfig().Aging.Param
	case AgingProbabilistic:
		return DecayConfig().Aging.Param
	}
	return 0
}
