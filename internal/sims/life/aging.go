package life

import (
	"fmt"
	"strings"

	"lifegrid/internal/core"
)

// AgingKind selects the aging-death policy.
type AgingKind uint8

const (
	// AgingNone disables aging death; only the neighbour rule applies.
	AgingNone AgingKind = iota
	// AgingFixedCap kills any cell whose age exceeds a fixed threshold.
	AgingFixedCap
	// AgingProbabilistic kills a cell when a draw from [0, bound) is at most
	// its age, so older cells are ever more likely to die.
	AgingProbabilistic
)

func (k AgingKind) String() string {
	switch k {
	case AgingNone:
		return "none"
	case AgingFixedCap:
		return "cap"
	case AgingProbabilistic:
		return "prob"
	default:
		return fmt.Sprintf("AgingKind(%d)", uint8(k))
	}
}

// ParseAgingKind accepts the names produced by AgingKind.String plus a few
// long-form aliases.
func ParseAgingKind(s string) (AgingKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "off", "":
		return AgingNone, nil
	case "cap", "fixed", "fixedcap":
		return AgingFixedCap, nil
	case "prob", "probabilistic", "random":
		return AgingProbabilistic, nil
	}
	return AgingNone, fmt.Errorf("%w: unknown aging mode %q", ErrInvalidAging, s)
}

// AgingMode is the aging policy selected once at configuration time. Only
// one mode is active; Param holds the threshold for AgingFixedCap and the
// exclusive draw bound for AgingProbabilistic.
type AgingMode struct {
	Kind  AgingKind
	Param int
}

// NoAging returns the mode without aging death.
func NoAging() AgingMode { return AgingMode{Kind: AgingNone} }

// FixedCap returns a mode killing cells whose age exceeds threshold.
func FixedCap(threshold int) AgingMode {
	return AgingMode{Kind: AgingFixedCap, Param: threshold}
}

// Probabilistic returns a mode that draws from [0, bound) each generation and
// kills the cell when the draw is at most its age.
func Probabilistic(bound int) AgingMode {
	return AgingMode{Kind: AgingProbabilistic, Param: bound}
}

// Threshold returns the fixed cap, or 0 for other kinds.
func (m AgingMode) Threshold() int {
	if m.Kind != AgingFixedCap {
		return 0
	}
	return m.Param
}

// Bound returns the probabilistic draw bound, or 0 for other kinds.
func (m AgingMode) Bound() int {
	if m.Kind != AgingProbabilistic {
		return 0
	}
	return m.Param
}

// Validate rejects parameters that cannot describe a usable policy.
func (m AgingMode) Validate() error {
	switch m.Kind {
	case AgingNone:
		return nil
	case AgingFixedCap:
		if m.Param < 0 {
			return fmt.Errorf("%w: cap threshold %d must be >= 0", ErrInvalidAging, m.Param)
		}
		return nil
	case AgingProbabilistic:
		if m.Param <= 0 {
			return fmt.Errorf("%w: probabilistic bound %d must be > 0", ErrInvalidAging, m.Param)
		}
		return nil
	}
	return fmt.Errorf("%w: unknown kind %d", ErrInvalidAging, m.Kind)
}

func (m AgingMode) String() string {
	switch m.Kind {
	case AgingFixedCap:
		return fmt.Sprintf("cap(%d)", m.Param)
	case AgingProbabilistic:
		return fmt.Sprintf("prob(%d)", m.Param)
	default:
		return m.Kind.String()
	}
}

// kills reports whether a live cell of the given age dies of old age. The
// probabilistic mode consumes exactly one draw from src per call.
func (m AgingMode) kills(age int, src core.Source) bool {
	switch m.Kind {
	case AgingFixedCap:
		return age > m.Param
	case AgingProbabilistic:
		return src.IntN(m.Param) <= age
	}
	return false
}
