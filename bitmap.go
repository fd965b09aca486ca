package pagecurl

import (
	"errors"
	"image"
	"sync"

	"github.com/gogpu/pagecurl/internal/pixel"
)

// Bitmap lock errors.
var (
	// ErrLocked is returned by LockPixels when the bitmap is already locked.
	ErrLocked = errors.New("pagecurl: bitmap already locked")

	// ErrRecycled is returned by LockPixels after Recycle.
	ErrRecycled = errors.New("pagecurl: bitmap recycled")
)

// PixelLocker gives temporary exclusive access to a bitmap's samples.
//
// LockPixels returns the row-major samples. The slice is valid until
// UnlockPixels, which must be called exactly once after every successful
// LockPixels.
type PixelLocker[T uint16 | uint32] interface {
	Width() int
	Height() int
	LockPixels() ([]T, error)
	UnlockPixels()
}

// bitmap is the in-memory PixelLocker shared by LowerBitmap and
// SynthesizedBitmap.
type bitmap[T uint16 | uint32] struct {
	mu       sync.Mutex
	width    int
	height   int
	pix      []T
	locked   bool
	recycled bool
}

// alloc sets the size and allocates zeroed storage. Negative sizes become 0x0.
func (b *bitmap[T]) alloc(width, height int) {
	if width < 0 || height < 0 {
		width, height = 0, 0
	}
	b.width = width
	b.height = height
	b.pix = make([]T, width*height)
}

// Width returns the bitmap width in pixels.
func (b *bitmap[T]) Width() int { return b.width }

// Height returns the bitmap height in pixels.
func (b *bitmap[T]) Height() int { return b.height }

// LockPixels implements PixelLocker.
func (b *bitmap[T]) LockPixels() ([]T, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.recycled {
		return nil, ErrRecycled
	}
	if b.locked {
		return nil, ErrLocked
	}
	b.locked = true
	return b.pix, nil
}

// UnlockPixels implements PixelLocker. Unlocking an unlocked bitmap is a no-op.
func (b *bitmap[T]) UnlockPixels() {
	b.mu.Lock()
	b.locked = false
	b.mu.Unlock()
}

// Recycle frees the pixel storage. Later LockPixels calls fail with
// ErrRecycled. Recycle is idempotent.
func (b *bitmap[T]) Recycle() {
	b.mu.Lock()
	b.recycled = true
	b.pix = nil
	b.mu.Unlock()
}

// IsRecycled reports whether Recycle has been called.
func (b *bitmap[T]) IsRecycled() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.recycled
}

// LowerBitmap is an in-memory RGB565 page bitmap.
type LowerBitmap struct {
	bitmap[uint16]
}

// NewLowerBitmap allocates a black RGB565 bitmap.
func NewLowerBitmap(width, height int) *LowerBitmap {
	b := &LowerBitmap{}
	b.alloc(width, height)
	return b
}

// LowerBitmapFromImage encodes img as RGB565. The bitmap has the size of
// img's bounds.
func LowerBitmapFromImage(img image.Image) *LowerBitmap {
	enc := pixel.EncodeRGB565(img)
	b := &LowerBitmap{}
	b.width = enc.Width
	b.height = enc.Height
	b.pix = enc.Pix
	return b
}

// SynthesizedBitmap is an in-memory ABGR8888 frame. New bitmaps start with
// every sample unset.
type SynthesizedBitmap struct {
	bitmap[uint32]
}

// NewSynthesizedBitmap allocates an unset ABGR8888 bitmap.
func NewSynthesizedBitmap(width, height int) *SynthesizedBitmap {
	b := &SynthesizedBitmap{}
	b.alloc(width, height)
	return b
}

// ToNRGBA locks the bitmap and copies it into an *image.NRGBA. Unset samples
// come out fully transparent.
func (b *SynthesizedBitmap) ToNRGBA() (*image.NRGBA, error) {
	pix, err := b.LockPixels()
	if err != nil {
		return nil, err
	}
	defer b.UnlockPixels()

	view := &pixel.ABGR8888Image{Pix: pix, Width: b.width, Height: b.height}
	return view.ToNRGBA(), nil
}
