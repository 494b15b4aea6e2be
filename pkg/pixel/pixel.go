package pixel

import "image/color"

// Pack quantizes an 8-8-8 RGB triple down to 5-6-5 by truncation: the low
// 3 bits of red and blue and the low 2 bits of green are discarded, then
// the channels are composed as RRRRRGGGGGGBBBBB. This matches the pixel
// format of the DE1-SoC VGA framebuffer.
func Pack(r, g, b uint8) uint16 {
	return uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
}

// RGB565 is one packed 5-6-5 pixel. It implements the color.Color
// interface. Red lives in bits 15-11, green in 10-5, blue in 4-0.
type RGB565 uint16

// Model converts arbitrary colors to RGB565.
var Model color.Model = color.ModelFunc(model)

func model(c color.Color) color.Color {
	if c2, ok := c.(RGB565); ok {
		return c2
	}
	r, g, b, _ := c.RGBA()
	return RGB565(Pack(uint8(r>>8), uint8(g>>8), uint8(b>>8)))
}

// RGBA implements the color.Color interface. To widen a 5 or 6 bit
// channel back to 16 bits the short bit pattern is duplicated downwards,
// so all-zero and all-one channels map to the exact 16-bit minimum and
// maximum. There is no alpha channel, pixels are always opaque.
func (c RGB565) RGBA() (r, g, b, a uint32) {
	rBits := uint32(c & 0xF800) // RRRRR00000000000
	gBits := uint32(c & 0x07E0) // 00000GGGGGG00000
	bBits := uint32(c & 0x001F) // 00000000000BBBBB
	r = rBits | rBits>>5 | rBits>>10 | rBits>>15
	g = gBits<<5 | gBits>>1 | gBits>>7
	b = bBits<<11 | bBits<<6 | bBits<<1 | bBits>>4
	a = 0xFFFF
	return
}
