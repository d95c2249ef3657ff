package ui

// fillAgeHeatRGBA tints live cells by age from blue (young) to red (at or
// beyond maxAge). Dead cells, which always have age 0 and a zero display
// value, stay transparent.
func fillAgeHeatRGBA(buf []byte, ages, cells []uint8, maxAge int) {
	if maxAge <= 0 {
		maxAge = 1
	}
	for i, age := range ages {
		base := i * 4
		if i >= len(cells) || cells[i] == 0 {
			buf[base+0], buf[base+1], buf[base+2], buf[base+3] = 0, 0, 0, 0
			continue
		}
		a := int(age)
		if a > maxAge {
			a = maxAge
		}
		t := a * 255 / maxAge
		buf[base+0] = uint8(t)
		buf[base+1] = 40
		buf[base+2] = uint8(255 - t)
		buf[base+3] = 200
	}
}
