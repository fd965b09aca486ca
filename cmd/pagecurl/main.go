// Command pagecurl runs one edge compositing pass and saves the result.
//
// It loads a page image (or generates a checkerboard), paints a flat
// stand-in for the curl layer left of the fold line, blends the page into
// the rest of the frame and writes a PNG.
package main

import (
	"flag"
	"image"
	"image/color"
	"log"
	"log/slog"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/pagecurl"
	"github.com/gogpu/pagecurl/internal/imageio"
	"github.com/gogpu/pagecurl/internal/pixel"
)

func main() {
	var (
		input      = flag.String("input", "", "page image (PNG, JPEG, GIF, BMP, TIFF, WebP); empty for a checkerboard")
		output     = flag.String("output", "pagecurl.png", "output file")
		width      = flag.Int("width", 480, "frame width")
		height     = flag.Int("height", 800, "frame height")
		wx         = flag.Float64("wx", 360, "fold point W x")
		wy         = flag.Float64("wy", 0, "fold point W y")
		zx         = flag.Float64("zx", 220, "fold point Z x")
		zy         = flag.Float64("zy", 800, "fold point Z y")
		sx         = flag.Float64("sx", 330, "seam point S x")
		upsideDown = flag.Bool("upside-down", false, "mirror edge rows vertically")
		verbose    = flag.Bool("verbose", false, "debug logging to stderr")
	)
	flag.Parse()

	if *verbose {
		pagecurl.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	page, err := loadPage(*input, *width, *height)
	if err != nil {
		log.Fatalf("Failed to load page: %v", err)
	}
	lower := pagecurl.LowerBitmapFromImage(page)

	s := pagecurl.NewSynthesizer()
	defer s.Destroy()
	if err := s.Resize(*width, *height); err != nil {
		log.Fatalf("Failed to resize: %v", err)
	}

	w, z, sp := pagecurl.Pt(*wx, *wy), pagecurl.Pt(*zx, *zy), pagecurl.Pt(*sx, 0)
	if err := paintCurl(s.Bitmap(), w, z, *upsideDown); err != nil {
		log.Fatalf("Failed to paint curl layer: %v", err)
	}
	curl := countSet(s.Bitmap())

	if err := s.Synthesize(lower, w, z, sp, *upsideDown); err != nil {
		log.Fatalf("Failed to synthesize: %v", err)
	}
	painted := countSet(s.Bitmap()) - curl

	img, err := s.Bitmap().ToNRGBA()
	if err != nil {
		log.Fatalf("Failed to read frame: %v", err)
	}
	if err := imageio.SavePNG(*output, img); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	p := message.NewPrinter(language.English)
	p.Printf("Frame saved to %s (%dx%d): %d curl pixels, %d pixels from the lower page\n",
		*output, *width, *height, curl, painted)
}

// loadPage returns the page scaled to the frame, or a checkerboard.
func loadPage(path string, width, height int) (image.Image, error) {
	if path == "" {
		return checkerboard(width, height, 40), nil
	}
	img, err := imageio.Load(path)
	if err != nil {
		return nil, err
	}
	return imageio.Fit(img, width, height)
}

func checkerboard(width, height, cell int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	light := color.RGBA{R: 240, G: 232, B: 214, A: 255}
	dark := color.RGBA{R: 90, G: 110, B: 150, A: 255}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if (x/cell+y/cell)%2 == 0 {
				img.SetRGBA(x, y, light)
			} else {
				img.SetRGBA(x, y, dark)
			}
		}
	}
	return img
}

// paintCurl fills every sample left of the fold line with a shaded
// page-back colour, standing in for the distortion renderer.
func paintCurl(bm *pagecurl.SynthesizedBitmap, w, z pagecurl.Point, upsideDown bool) error {
	pix, err := bm.LockPixels()
	if err != nil {
		return err
	}
	defer bm.UnlockPixels()

	width, height := bm.Width(), bm.Height()
	d := z.Sub(w)
	if d.Y == 0 {
		return nil
	}
	for i := 0; i < height; i++ {
		fold := int(w.X + (float64(i)-w.Y)*d.X/d.Y)
		row := i
		if upsideDown {
			row = height - 1 - i
		}
		for x := 0; x < fold && x < width; x++ {
			shade := uint8(200 - 120*x/max(fold, 1))
			pix[row*width+x] = pixel.PackABGR8888(shade, shade, shade-20, 0xff)
		}
	}
	return nil
}

func countSet(bm *pagecurl.SynthesizedBitmap) int {
	pix, err := bm.LockPixels()
	if err != nil {
		return 0
	}
	defer bm.UnlockPixels()

	n := 0
	for _, v := range pix {
		if v != pixel.Unset {
			n++
		}
	}
	return n
}
