package main

import (
	"image/color"

	"lifegrid/internal/core"

	"github.com/gdamore/tcell/v2"
)

// statusRows is the number of terminal rows reserved below the grid.
const statusRows = 2

type paletteProvider interface {
	Palette() []color.RGBA
}

// painter draws each cell as two terminal columns so cells look square.
type painter struct {
	sim    core.Sim
	styles []tcell.Style
	dead   tcell.Style
	alive  tcell.Style
	status tcell.Style
}

func newPainter(sim core.Sim) *painter {
	p := &painter{
		sim:    sim,
		dead:   tcell.StyleDefault.Background(tcell.ColorBlack),
		alive:  tcell.StyleDefault.Background(tcell.ColorWhite),
		status: tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorBlack),
	}
	if pp, ok := sim.(paletteProvider); ok {
		for _, c := range pp.Palette() {
			p.styles = append(p.styles, tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))))
		}
	}
	return p
}

func (p *painter) styleFor(v uint8) tcell.Style {
	if len(p.styles) > 0 {
		if int(v) >= len(p.styles) {
			v = uint8(len(p.styles) - 1)
		}
		return p.styles[v]
	}
	if v == 0 {
		return p.dead
	}
	return p.alive
}

func (p *painter) draw(screen tcell.Screen, status []string) {
	size := p.sim.Size()
	cells := p.sim.Cells()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			style := p.styleFor(cells[y*size.W+x])
			screen.SetContent(x*2, y, ' ', nil, style)
			screen.SetContent(x*2+1, y, ' ', nil, style)
		}
	}

	// The status bar folds all lines into statusRows rows.
	w, _ := screen.Size()
	for row := 0; row < statusRows; row++ {
		line := ""
		for i := row; i < len(status); i += statusRows {
			if line != "" {
				line += "  |  "
			}
			line += status[i]
		}
		y := size.H + row
		col := 0
		for _, r := range line {
			if col >= w {
				break
			}
			screen.SetContent(col, y, r, nil, p.status)
			col++
		}
		for ; col < w; col++ {
			screen.SetContent(col, y, ' ', nil, p.status)
		}
	}
	screen.Show()
}

// gridForTerminal fits a grid into a w x h terminal, leaving room for the
// status bar.
func gridForTerminal(w, h int) (rows, cols int) {
	rows, cols = h-statusRows, w/2
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	return rows, cols
}
