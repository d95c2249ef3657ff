package core

import (
	"fmt"
	"slices"

	"golang.org/x/exp/maps"
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a cellular automaton must implement.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Factory constructs a Sim using an optional configuration map. Invalid
// configuration is reported as an error rather than patched over.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// SimNames returns the registered simulation names in sorted order.
func SimNames() []string {
	names := maps.Keys(sims)
	slices.Sort(names)
	return names
}

// NewSim looks up name in the registry and builds it from cfg.
func NewSim(name string, cfg map[string]string) (Sim, error) {
	factory, ok := sims[name]
	if !ok {
		return nil, fmt.Errorf("unknown sim %q (available: %v)", name, SimNames())
	}
	return factory(cfg)
}
