package life

import "image/color"

// Display values: 0 is a dead cell; live cells encode their type and a
// saturated age band as 1 + type*ageBands + band.
const ageBands = 4

var lifePalette = buildLifePalette()

// Palette exposes the color palette indexed by the values in Cells.
func (l *Life) Palette() []color.RGBA {
	return lifePalette
}

// typeColors holds the base color of each cell type. The first one is the
// classic cell color.
var typeColors = [MaxTypeCount]color.NRGBA{
	{R: 0x88, G: 0x24, B: 0x69, A: 0xff},
	{R: 0x24, G: 0x88, B: 0x5c, A: 0xff},
	{R: 0x2c, G: 0x5a, B: 0xa8, A: 0xff},
	{R: 0xc8, G: 0x8a, B: 0x1e, A: 0xff},
	{R: 0x8a, G: 0x8a, B: 0x20, A: 0xff},
	{R: 0x20, G: 0x9a, B: 0xa8, A: 0xff},
	{R: 0xa8, G: 0x3a, B: 0x2c, A: 0xff},
	{R: 0x6a, G: 0x4a, B: 0xb8, A: 0xff},
}

var deadColor = color.NRGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xff}

func buildLifePalette() []color.RGBA {
	palette := make([]color.RGBA, 1+MaxTypeCount*ageBands)
	palette[0] = toRGBA(deadColor)
	for t := 0; t < MaxTypeCount; t++ {
		for band := 0; band < ageBands; band++ {
			// Older cells fade towards white.
			c := blendColors(typeColors[t], color.NRGBA{R: 255, G: 255, B: 255, A: 255}, 0.18*float64(band))
			palette[1+t*ageBands+band] = toRGBA(c)
		}
	}
	return palette
}

func toRGBA(c color.NRGBA) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func blendColors(base, overlay color.NRGBA, overlayWeight float64) color.NRGBA {
	if overlayWeight <= 0 {
		return base
	}
	if overlayWeight >= 1 {
		return overlay
	}
	w := overlayWeight
	inv := 1 - w
	mix := func(a, b uint8) uint8 { return uint8(float64(a)*inv + float64(b)*w + 0.5) }
	return color.NRGBA{
		R: mix(base.R, overlay.R),
		G: mix(base.G, overlay.G),
		B: mix(base.B, overlay.B),
		A: mix(base.A, overlay.A),
	}
}

func encodeDisplayValue(c Cell) uint8 {
	if !c.Alive {
		return 0
	}
	band := c.Age
	if band >= ageBands {
		band = ageBands - 1
	}
	t := c.Type
	if t < 0 || t >= MaxTypeCount {
		t = 0
	}
	return uint8(1 + t*ageBands + band)
}

func (l *Life) rebuildDisplay() {
	for i, c := range l.cur.Cells() {
		l.display[i] = encodeDisplayValue(c)
	}
}
