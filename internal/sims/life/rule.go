package life

import "lifegrid/internal/core"

// Rule is the transition rule: survival on 2 or 3 neighbours, birth on
// exactly 3, then the aging policy on top.
type Rule struct {
	TypeCount int
	Aging     AgingMode
}

// Next returns the state of cur one generation later given its count of live
// neighbours in the previous generation. src supplies the birth type draw and
// the probabilistic aging draw; it is not touched by the classic rule alone.
func (r Rule) Next(cur Cell, neighbors int, src core.Source) Cell {
	next := cur
	switch {
	case cur.Alive && (neighbors == 2 || neighbors == 3):
		next.Age = cur.Age + 1
	case cur.Alive:
		next.Alive = false
		next.Age = 0
	case neighbors == 3:
		next.Alive = true
		next.Age = 0
		if r.TypeCount > 0 {
			next.Type = src.IntN(r.TypeCount)
		}
	default:
		next.Age = 0
	}

	if next.Alive && r.Aging.kills(next.Age, src) {
		next.Alive = false
		next.Age = 0
	}
	return next
}

// CountAliveNeighbors counts live cells in the Moore neighbourhood of
// (row, col). Positions outside the grid are skipped, so corners see at most
// three neighbours and edges at most five.
func CountAliveNeighbors(g *core.Grid[Cell], row, col int) int {
	n := 0
	for _, d := range moore {
		x, y := col+d.Col, row+d.Row
		if !g.InBounds(x, y) {
			continue
		}
		if g.At(x, y).Alive {
			n++
		}
	}
	return n
}
