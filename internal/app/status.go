package app

import (
	"fmt"
	"strings"

	"lifegrid/internal/core"
	"lifegrid/internal/sims/life"
)

type statsProvider interface {
	Stats() life.Stats
}

type agingProvider interface {
	AgingMode() life.AgingMode
}

// StatusLines renders the session and sim counters as short text lines for
// the HUD and the terminal status bar.
func StatusLines(sim core.Sim, s *Session) []string {
	state := "running"
	if s.Paused {
		state = "paused"
	}
	lines := []string{
		fmt.Sprintf("%s  %s", sim.Name(), state),
		fmt.Sprintf("iteration %d  every %v", s.Iterations, s.Interval()),
	}
	if p, ok := sim.(agingProvider); ok {
		lines = append(lines, fmt.Sprintf("aging %s", p.AgingMode()))
	}
	p, ok := sim.(statsProvider)
	if !ok {
		return lines
	}
	st := p.Stats()
	lines = append(lines,
		fmt.Sprintf("alive %d  dead %d", st.Alive, st.Dead),
		fmt.Sprintf("born %d  died %d", st.Births, st.Deaths),
		fmt.Sprintf("age mean %.1f  max %d", st.MeanAge, st.MaxAge),
	)
	if len(st.ByType) > 0 {
		parts := make([]string, len(st.ByType))
		for i, n := range st.ByType {
			parts[i] = fmt.Sprintf("%d:%d", i, n)
		}
		lines = append(lines, "types "+strings.Join(parts, " "))
	}
	return lines
}
