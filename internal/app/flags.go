package app

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Config represents the command-line parameters shared by the hosts.
type Config struct {
	Sim      string
	Width    int
	Height   int
	Scale    int
	TPS      int
	Interval time.Duration
	Seed     int64
	Grid     bool
	HUD      int
	Sets     KVList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:      "life",
		Width:    900,
		Height:   600,
		Scale:    10,
		TPS:      60,
		Interval: 100 * time.Millisecond,
		Seed:     42,
		Grid:     true,
		HUD:      260,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Width, "width", c.Width, "display width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "display height in pixels")
	fs.IntVar(&c.Scale, "cell", c.Scale, "cell size in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "time between generations")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.BoolVar(&c.Grid, "grid", c.Grid, "draw grid lines")
	fs.IntVar(&c.HUD, "hud", c.HUD, "HUD panel width in pixels (0 hides it)")
	fs.Var(&c.Sets, "set", "sim parameter override in key=value form (repeatable)")
}

// SimConfig returns the key/value map handed to the sim factory. Explicit
// -set overrides win over the display flags.
func (c *Config) SimConfig() (map[string]string, error) {
	m := map[string]string{
		"width":  strconv.Itoa(c.Width),
		"height": strconv.Itoa(c.Height),
		"cell":   strconv.Itoa(c.Scale),
		"seed":   strconv.FormatInt(c.Seed, 10),
	}
	for _, kv := range c.Sets {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("bad -set %q: want key=value", kv)
		}
		m[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return m, nil
}

// KVList collects repeated key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

func (l *KVList) Set(value string) error {
	*l = append(*l, value)
	return nil
}
