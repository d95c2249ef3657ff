//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridLineColor is the default cell border color.
var GridLineColor = color.RGBA{R: 0x28, G: 0x28, B: 0x30, A: 0xff}

// GridPainter updates a single RGBA image from cell data and draws it scaled,
// optionally with cell borders on top.
type GridPainter struct {
	w, h  int
	scale int
	img   *ebiten.Image
	buf   []byte
	lines *ebiten.Image
}

// NewGridPainter allocates a painter for a grid of size w*h drawn at scale.
func NewGridPainter(w, h, scale int) *GridPainter {
	if scale <= 0 {
		scale = 1
	}
	gp := &GridPainter{w: w, h: h, scale: scale, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// EnableGridLines prepares the border overlay, or drops it when on is false.
func (gp *GridPainter) EnableGridLines(on bool, line color.RGBA) {
	if !on {
		gp.lines = nil
		return
	}
	pw, ph := gp.w*gp.scale, gp.h*gp.scale
	buf := make([]byte, 4*pw*ph)
	fillGridLines(buf, gp.w, gp.h, gp.scale, line)
	gp.lines = ebiten.NewImage(pw, ph)
	gp.lines.WritePixels(buf)
}

// GridLines reports whether borders are drawn.
func (gp *GridPainter) GridLines() bool { return gp.lines != nil }

// Blit uploads cells through palette and draws them onto dst. Without a
// palette cells are drawn as binary on/off.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, palette []color.RGBA) {
	if len(cells) != gp.w*gp.h {
		return
	}
	if len(palette) > 0 {
		fillPaletteRGBA(gp.buf, cells, palette)
	} else {
		fillBinaryRGBA(gp.buf, cells, color.White, color.Black)
	}
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(gp.scale), float64(gp.scale))
	dst.DrawImage(gp.img, op)
	if gp.lines != nil {
		dst.DrawImage(gp.lines, nil)
	}
}
