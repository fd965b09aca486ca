// Package pixel provides the packed pixel formats used by the compositor
// and the fixed RGB565 to ABGR8888 conversion between them.
//
// The lookup tables give O(1) per-channel expansion from 5 and 6 bit
// channels to 8 bits. They are built from the same integer formula that
// the direct conversion uses (c * 255 / max), so both paths agree exactly
// and never dither.
package pixel

// expand5LUT maps a 5-bit channel [0-31] to 8 bits [0-255].
var expand5LUT [32]uint8

// expand6LUT maps a 6-bit channel [0-63] to 8 bits [0-255].
var expand6LUT [64]uint8

func init() {
	for i := 0; i < 32; i++ {
		//nolint:gosec // G115: i*255/31 is within [0,255]
		expand5LUT[i] = uint8(i * 0xff / 0x1f)
	}
	for i := 0; i < 64; i++ {
		//nolint:gosec // G115: i*255/63 is within [0,255]
		expand6LUT[i] = uint8(i * 0xff / 0x3f)
	}
}

// Expand5 scales a 5-bit channel to 8 bits using the lookup table.
// Only the low 5 bits of c are used.
func Expand5(c uint8) uint8 {
	return expand5LUT[c&0x1f]
}

// Expand6 scales a 6-bit channel to 8 bits using the lookup table.
// Only the low 6 bits of c are used.
func Expand6(c uint8) uint8 {
	return expand6LUT[c&0x3f]
}
