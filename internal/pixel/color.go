package pixel

import "image/color"

// RGB565 is a packed 16-bit colour: 5 bits red, 6 bits green, 5 bits blue.
// It is always opaque.
type RGB565 uint16

// RGBA implements color.Color.
func (c RGB565) RGBA() (r, g, b, a uint32) {
	return ABGR8888(RGB565ToABGR8888(uint16(c))).RGBA()
}

// ABGR8888 is a packed 32-bit colour stored as 0xAABBGGRR.
// Channels are straight (not premultiplied) alpha.
type ABGR8888 uint32

// RGBA implements color.Color.
func (c ABGR8888) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{
		R: uint8(c),
		G: uint8(c >> 8),
		B: uint8(c >> 16),
		A: uint8(c >> 24),
	}.RGBA()
}

// Color models for the packed formats.
var (
	RGB565Model   color.Model = color.ModelFunc(rgb565Model)
	ABGR8888Model color.Model = color.ModelFunc(abgr8888Model)
)

func rgb565Model(c color.Color) color.Color {
	if c, ok := c.(RGB565); ok {
		return c
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB565(RGB565From8(n.R, n.G, n.B))
}

func abgr8888Model(c color.Color) color.Color {
	if c, ok := c.(ABGR8888); ok {
		return c
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return ABGR8888(PackABGR8888(n.R, n.G, n.B, n.A))
}
