package pixel

import (
	"image"
	"image/color"
	"image/draw"
)

// RGB565Image is an image.Image view over a row-major RGB565 buffer.
// Pix is not copied; writes through Set modify the caller's slice.
type RGB565Image struct {
	Pix    []uint16
	Width  int
	Height int
}

// NewRGB565Image allocates a zeroed RGB565 image.
func NewRGB565Image(width, height int) *RGB565Image {
	if width < 0 || height < 0 {
		width, height = 0, 0
	}
	return &RGB565Image{
		Pix:    make([]uint16, width*height),
		Width:  width,
		Height: height,
	}
}

// ColorModel implements image.Image.
func (p *RGB565Image) ColorModel() color.Model { return RGB565Model }

// Bounds implements image.Image.
func (p *RGB565Image) Bounds() image.Rectangle { return image.Rect(0, 0, p.Width, p.Height) }

// At implements image.Image. Out-of-bounds coordinates return transparent.
func (p *RGB565Image) At(x, y int) color.Color {
	if !p.in(x, y) {
		return color.Transparent
	}
	return RGB565(p.Pix[y*p.Width+x])
}

// Set implements draw.Image.
func (p *RGB565Image) Set(x, y int, c color.Color) {
	if !p.in(x, y) {
		return
	}
	p.Pix[y*p.Width+x] = uint16(RGB565Model.Convert(c).(RGB565))
}

func (p *RGB565Image) in(x, y int) bool {
	return x >= 0 && y >= 0 && x < p.Width && y < p.Height && y*p.Width+x < len(p.Pix)
}

// ABGR8888Image is a draw.Image view over a row-major ABGR8888 buffer.
type ABGR8888Image struct {
	Pix    []uint32
	Width  int
	Height int
}

// NewABGR8888Image allocates an ABGR8888 image with every sample unset.
func NewABGR8888Image(width, height int) *ABGR8888Image {
	if width < 0 || height < 0 {
		width, height = 0, 0
	}
	return &ABGR8888Image{
		Pix:    make([]uint32, width*height),
		Width:  width,
		Height: height,
	}
}

// ColorModel implements image.Image.
func (p *ABGR8888Image) ColorModel() color.Model { return ABGR8888Model }

// Bounds implements image.Image.
func (p *ABGR8888Image) Bounds() image.Rectangle { return image.Rect(0, 0, p.Width, p.Height) }

// At implements image.Image.
func (p *ABGR8888Image) At(x, y int) color.Color {
	if !p.in(x, y) {
		return color.Transparent
	}
	return ABGR8888(p.Pix[y*p.Width+x])
}

// Set implements draw.Image.
func (p *ABGR8888Image) Set(x, y int, c color.Color) {
	if !p.in(x, y) {
		return
	}
	p.Pix[y*p.Width+x] = uint32(ABGR8888Model.Convert(c).(ABGR8888))
}

func (p *ABGR8888Image) in(x, y int) bool {
	return x >= 0 && y >= 0 && x < p.Width && y < p.Height && y*p.Width+x < len(p.Pix)
}

// ToNRGBA copies the image into an *image.NRGBA.
// Unset samples come out fully transparent.
func (p *ABGR8888Image) ToNRGBA() *image.NRGBA {
	img := image.NewNRGBA(p.Bounds())
	n := p.Width * p.Height
	if n > len(p.Pix) {
		n = len(p.Pix)
	}
	for i := 0; i < n; i++ {
		r, g, b, a := UnpackABGR8888(p.Pix[i])
		o := i * 4
		img.Pix[o+0] = r
		img.Pix[o+1] = g
		img.Pix[o+2] = b
		img.Pix[o+3] = a
	}
	return img
}

// EncodeRGB565 converts any image into a new RGB565 buffer of the same size.
// The source is read relative to its bounds origin.
func EncodeRGB565(src image.Image) *RGB565Image {
	b := src.Bounds()
	dst := NewRGB565Image(b.Dx(), b.Dy())

	if rgba, ok := src.(*image.RGBA); ok && rgba.Opaque() {
		for y := 0; y < dst.Height; y++ {
			row := rgba.Pix[y*rgba.Stride : y*rgba.Stride+dst.Width*4]
			for x := 0; x < dst.Width; x++ {
				o := x * 4
				dst.Pix[y*dst.Width+x] = RGB565From8(row[o], row[o+1], row[o+2])
			}
		}
		return dst
	}

	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}
