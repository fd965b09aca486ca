package pagecurl

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrSizeMismatch is returned when the lower bitmap does not have the
// synthesized frame's dimensions.
var ErrSizeMismatch = errors.New("pagecurl: lower bitmap size does not match frame")

// Synthesizer owns a Compositor and the synthesized bitmap it writes to,
// and borrows lower page bitmaps through PixelLocker for each pass.
//
// Every lock taken by a Synthesizer is released before the call returns,
// on every path. Lock failures are logged at error level and abort the
// call with no buffer modified.
//
// A Synthesizer is NOT safe for concurrent use.
type Synthesizer struct {
	comp        *Compositor
	synthesized *SynthesizedBitmap
	opts        options
}

// NewSynthesizer creates a Synthesizer with no frame. Call Resize before
// the first Synthesize.
func NewSynthesizer(opts ...Option) *Synthesizer {
	return &Synthesizer{
		comp: NewCompositor(opts...),
		opts: applyOptions(opts),
	}
}

// Bitmap returns the synthesized bitmap, or nil before the first Resize
// and after Destroy.
func (s *Synthesizer) Bitmap() *SynthesizedBitmap {
	return s.synthesized
}

// Compositor returns the underlying compositor.
func (s *Synthesizer) Compositor() *Compositor {
	return s.comp
}

// Resize makes the synthesized bitmap width x height. The bitmap is
// reallocated, and the compositor resized, only when the size changes.
func (s *Synthesizer) Resize(width, height int) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if s.synthesized != nil && s.synthesized.Width() == width && s.synthesized.Height() == height {
		return nil
	}

	if s.synthesized != nil {
		s.synthesized.Recycle()
	}
	s.synthesized = NewSynthesizedBitmap(width, height)

	out, err := s.lock(s.synthesized, "synthesized")
	if err != nil {
		return err
	}
	defer s.synthesized.UnlockPixels()

	return s.comp.Resize(width, height, out)
}

// Synthesize blends lower into the synthesized bitmap using the fold line
// through w and z and the seam offset given by sp.X. sp.Y is unused.
func (s *Synthesizer) Synthesize(lower PixelLocker[uint16], w, z, sp Point, upsideDown bool) error {
	if s.synthesized == nil {
		return nil
	}
	if lower.Width() != s.synthesized.Width() || lower.Height() != s.synthesized.Height() {
		return fmt.Errorf("%w: lower %dx%d, frame %dx%d", ErrSizeMismatch,
			lower.Width(), lower.Height(), s.synthesized.Width(), s.synthesized.Height())
	}

	out, err := s.lock(s.synthesized, "synthesized")
	if err != nil {
		return err
	}
	defer s.synthesized.UnlockPixels()

	base, err := s.lockLower(lower)
	if err != nil {
		return err
	}
	defer lower.UnlockPixels()

	return s.comp.Synthesize(out, base, Geometry{W: w, Z: z, Sx: sp.X}, upsideDown)
}

// ClearSynthesizedCache marks every synthesized sample unset so the next
// pass recomputes the whole frame.
func (s *Synthesizer) ClearSynthesizedCache() error {
	if s.synthesized == nil {
		return nil
	}
	out, err := s.lock(s.synthesized, "synthesized")
	if err != nil {
		return err
	}
	defer s.synthesized.UnlockPixels()

	s.comp.ClearSynthesizedCache(out)
	return nil
}

// Destroy recycles the synthesized bitmap and releases the compositor's
// tables. The Synthesizer can be reused after another Resize.
func (s *Synthesizer) Destroy() {
	if s.synthesized != nil {
		s.synthesized.Recycle()
		s.synthesized = nil
	}
	s.comp.Destroy()
}

func (s *Synthesizer) lock(b *SynthesizedBitmap, name string) ([]uint32, error) {
	pix, err := b.LockPixels()
	if err != nil {
		s.opts.log().Error("pagecurl: lock pixels failed",
			slog.String("bitmap", name),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("pagecurl: lock %s: %w", name, err)
	}
	return pix, nil
}

func (s *Synthesizer) lockLower(lower PixelLocker[uint16]) ([]uint16, error) {
	pix, err := lower.LockPixels()
	if err != nil {
		s.opts.log().Error("pagecurl: lock pixels failed",
			slog.String("bitmap", "lower"),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("pagecurl: lock lower: %w", err)
	}
	return pix, nil
}
