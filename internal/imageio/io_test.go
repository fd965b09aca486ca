package imageio

import (
	"bytes"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x * 60), G: uint8(y * 100), B: 10, A: 255})
		}
	}
	return img
}

func TestSaveLoadPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.png")
	src := testImage()

	if err := SavePNG(path, src); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Bounds() != src.Bounds() {
		t.Fatalf("Load() bounds = %v, want %v", got.Bounds(), src.Bounds())
	}
	r, g, b, _ := got.At(3, 2).RGBA()
	if r>>8 != 180 || g>>8 != 200 || b>>8 != 10 {
		t.Errorf("pixel (3,2) = (%d, %d, %d), want (180, 200, 10)", r>>8, g>>8, b>>8)
	}
}

func TestDecode_XImageFormats(t *testing.T) {
	src := testImage()
	tests := []struct {
		name   string
		encode func(*bytes.Buffer) error
	}{
		{"bmp", func(b *bytes.Buffer) error { return bmp.Encode(b, src) }},
		{"tiff", func(b *bytes.Buffer) error { return tiff.Encode(b, src, nil) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := tt.encode(&buf); err != nil {
				t.Fatalf("encode error = %v", err)
			}
			got, err := Decode(&buf)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if got.Bounds().Dx() != 4 || got.Bounds().Dy() != 3 {
				t.Errorf("Decode() size = %v, want 4x3", got.Bounds().Size())
			}
		})
	}
}

func TestDecode_Garbage(t *testing.T) {
	if _, err := Decode(bytes.NewReader([]byte("not an image"))); err == nil {
		t.Error("Decode(garbage) error = nil, want error")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("Load(missing) error = nil, want error")
	}
}

func TestFit(t *testing.T) {
	src := testImage()

	same, err := Fit(src, 4, 3)
	if err != nil {
		t.Fatalf("Fit(same size) error = %v", err)
	}
	if c := same.RGBAAt(3, 2); c.R != 180 || c.G != 200 {
		t.Errorf("Fit(same size) pixel = %v, want R=180 G=200", c)
	}

	scaled, err := Fit(src, 16, 9)
	if err != nil {
		t.Fatalf("Fit(16x9) error = %v", err)
	}
	if scaled.Bounds() != image.Rect(0, 0, 16, 9) {
		t.Errorf("Fit(16x9) bounds = %v", scaled.Bounds())
	}
	if c := scaled.RGBAAt(0, 0); c.A < 250 {
		t.Errorf("Fit(16x9) corner alpha = %d, want near 255", c.A)
	}

	if _, err := Fit(src, 0, 10); err == nil {
		t.Error("Fit(0x10) error = nil, want error")
	}
}
