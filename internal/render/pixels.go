package render

import "image/color"

// fillBinaryRGBA converts binary cell data (0/non-zero) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:len(cells)*4])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// fillGridLines paints cell borders into a (w*scale)x(h*scale) RGBA buffer:
// the first pixel row and column of every cell get line, everything else is
// transparent. Scales below 3 leave no room for a border and stay empty.
func fillGridLines(buf []byte, w, h, scale int, line color.RGBA) {
	clear(buf)
	if scale < 3 {
		return
	}
	pw, ph := w*scale, h*scale
	for y := 0; y < ph; y++ {
		for x := 0; x < pw; x++ {
			if x%scale != 0 && y%scale != 0 {
				continue
			}
			base := (y*pw + x) * 4
			buf[base+0] = line.R
			buf[base+1] = line.G
			buf[base+2] = line.B
			buf[base+3] = line.A
		}
	}
}
