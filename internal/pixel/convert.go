package pixel

// Unset is the output sample value meaning "not painted this pass".
const Unset uint32 = 0

// opaque is the alpha byte of every converted sample, already shifted.
const opaque uint32 = 0xff << 24

// RGB565ToABGR8888 converts a packed RGB565 sample (RRRRR GGGGGG BBBBB) to a
// packed ABGR8888 sample (AAAAAAAA BBBBBBBB GGGGGGGG RRRRRRRR) with alpha
// forced to fully opaque.
//
// Each channel is scaled independently with c * 255 / max, truncating.
// Stored little-endian, the result has the byte order R, G, B, A.
//
// Example:
//
//	RGB565ToABGR8888(0xFFFF) // 0xFFFFFFFF
//	RGB565ToABGR8888(0x0000) // 0xFF000000
func RGB565ToABGR8888(p uint16) uint32 {
	r := uint32(expand5LUT[(p>>11)&0x1f])
	g := uint32(expand6LUT[(p>>5)&0x3f])
	b := uint32(expand5LUT[p&0x1f])
	return opaque | b<<16 | g<<8 | r
}

// rgb565ToABGR8888Direct is the table-free form of RGB565ToABGR8888.
// Kept for verifying the lookup tables.
func rgb565ToABGR8888Direct(p uint16) uint32 {
	r := uint32((p>>11)&0x1f) * 0xff / 0x1f
	g := uint32((p>>5)&0x3f) * 0xff / 0x3f
	b := uint32(p&0x1f) * 0xff / 0x1f
	return opaque | (b&0xff)<<16 | (g&0xff)<<8 | (r & 0xff)
}

// PackRGB565 packs 5/6/5-bit channels into an RGB565 sample.
// Out-of-range bits are masked off.
func PackRGB565(r, g, b uint8) uint16 {
	return uint16(r&0x1f)<<11 | uint16(g&0x3f)<<5 | uint16(b&0x1f)
}

// RGB565From8 encodes 8-bit channels as RGB565 by dropping the low bits.
func RGB565From8(r, g, b uint8) uint16 {
	return PackRGB565(r>>3, g>>2, b>>3)
}

// PackABGR8888 packs 8-bit channels into an ABGR8888 sample.
func PackABGR8888(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// UnpackABGR8888 splits an ABGR8888 sample into its 8-bit channels.
func UnpackABGR8888(p uint32) (r, g, b, a uint8) {
	//nolint:gosec // G115: each value is masked to a single byte
	return uint8(p), uint8(p >> 8), uint8(p >> 16), uint8(p >> 24)
}
