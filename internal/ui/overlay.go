//go:build ebiten

package ui

import (
	"lifegrid/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type ageProvider interface {
	Ages() []uint8
}

// Overlay draws an optional age heatmap over the grid. Key 1 toggles it.
type Overlay struct {
	sim     core.Sim
	scale   int
	maxAge  int
	showAge bool
	img     *ebiten.Image
	buf     []byte
}

// NewOverlay constructs a new overlay instance. Ages at or above maxAge draw
// at full heat.
func NewOverlay(sim core.Sim, scale, maxAge int) *Overlay {
	return &Overlay{sim: sim, scale: scale, maxAge: maxAge}
}

// Update handles the overlay toggle.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showAge = !o.showAge
	}
}

// Draw renders the enabled layers.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showAge {
		return
	}
	provider, ok := o.sim.(ageProvider)
	if !ok {
		return
	}
	size := o.sim.Size()
	if o.img == nil {
		o.img = ebiten.NewImage(size.W, size.H)
		o.buf = make([]byte, 4*size.W*size.H)
	}
	fillAgeHeatRGBA(o.buf, provider.Ages(), o.sim.Cells(), o.maxAge)
	o.img.WritePixels(o.buf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(o.scale), float64(o.scale))
	screen.DrawImage(o.img, op)
}
