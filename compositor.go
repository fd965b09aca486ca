package pagecurl

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gogpu/pagecurl/internal/pixel"
)

// Common errors for compositing operations.
var (
	// ErrInvalidDimensions is returned when width or height is negative.
	ErrInvalidDimensions = errors.New("pagecurl: invalid dimensions")

	// ErrBufferSize is returned when a pixel buffer holds fewer than
	// width*height samples.
	ErrBufferSize = errors.New("pagecurl: buffer too small for frame")

	// ErrInvalidGeometry is returned for geometry with non-finite values.
	ErrInvalidGeometry = errors.New("pagecurl: invalid geometry")

	// ErrDegenerateGeometry is returned when W and Z lie on the same row.
	ErrDegenerateGeometry = errors.New("pagecurl: degenerate geometry, fold line has no vertical extent")
)

// Compositor blends a lower RGB565 page into an ABGR8888 synthesized frame
// along a per-row boundary derived from a Geometry.
//
// A Compositor owns two row tables: the fold edge (left boundary of the
// lower-page fill) and the seam edge. They are sized by Resize and
// recomputed from scratch on every Synthesize.
//
// A Compositor is NOT safe for concurrent use. Calls to Resize, Synthesize,
// ClearSynthesizedCache and Destroy must be serialised by the caller.
// Independent Compositors share no state.
type Compositor struct {
	width  int
	height int
	fold   []int
	seam   []int
	opts   options
}

// NewCompositor creates an unsized Compositor. Synthesize is a no-op until
// the first successful Resize.
func NewCompositor(opts ...Option) *Compositor {
	return &Compositor{opts: applyOptions(opts)}
}

// Size returns the current frame dimensions.
func (c *Compositor) Size() (width, height int) {
	return c.width, c.height
}

// FoldEdges returns a copy of the fold edge table from the last pass.
// Entries are undefined before the first Synthesize after a Resize.
func (c *Compositor) FoldEdges() []int {
	return append([]int(nil), c.fold...)
}

// SeamEdges returns a copy of the seam edge table from the last pass.
func (c *Compositor) SeamEdges() []int {
	return append([]int(nil), c.seam...)
}

// Resize sets the frame dimensions, resizes the row tables to height and
// clears out to the unset value.
//
// Zero dimensions are accepted and make Synthesize a no-op. On error the
// compositor and out are left unchanged.
func (c *Compositor) Resize(width, height int, out []uint32) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if len(out) < width*height {
		return fmt.Errorf("%w: output has %d samples, need %d", ErrBufferSize, len(out), width*height)
	}

	c.width = width
	c.height = height
	c.fold = resizeTable(c.fold, height)
	c.seam = resizeTable(c.seam, height)

	c.opts.log().Debug("pagecurl: resize",
		slog.Int("width", width),
		slog.Int("height", height))

	c.ClearSynthesizedCache(out[:width*height])
	return nil
}

// resizeTable returns a table of length n, reusing t's storage when it is
// large enough. Contents are left undefined.
func resizeTable(t []int, n int) []int {
	if cap(t) >= n {
		return t[:n]
	}
	return make([]int, n)
}

// ClearSynthesizedCache sets every sample of out to the unset value,
// forcing the next Synthesize to recompute the whole lower-page region.
// It does not touch the row tables or the frame dimensions.
func (c *Compositor) ClearSynthesizedCache(out []uint32) {
	clear(out)
}

// Destroy releases the row tables. The compositor is unsized until the
// next Resize.
func (c *Compositor) Destroy() {
	c.fold = nil
	c.seam = nil
	c.width = 0
	c.height = 0
}

// ready reports whether a pass has anything to do.
func (c *Compositor) ready() bool {
	return c.width > 0 && c.height > 0 && c.fold != nil && c.seam != nil
}

// Synthesize runs one compositing pass.
//
// For every row it computes the fold and seam edge columns from g, then
// fills each unset sample of out from the fold edge to the end of the row
// with the matching base sample converted to ABGR8888. Samples left of the
// fold edge, and samples that are already set, are never written, so a
// second pass over the same frame changes nothing.
//
// When upsideDown is set the edge tables are mirrored vertically: the
// value computed for row i is used for row height-1-i.
//
// An unsized compositor makes Synthesize a silent no-op returning nil.
// Short buffers and invalid geometry are rejected before any write.
func (c *Compositor) Synthesize(out []uint32, base []uint16, g Geometry, upsideDown bool) error {
	if !c.ready() {
		return nil
	}

	n := c.width * c.height
	if len(out) < n || len(base) < n {
		c.opts.log().Warn("pagecurl: synthesize buffer size mismatch",
			slog.Int("need", n),
			slog.Int("output", len(out)),
			slog.Int("base", len(base)))
		return fmt.Errorf("%w: output %d, base %d, need %d", ErrBufferSize, len(out), len(base), n)
	}

	if err := g.Validate(); err != nil {
		c.opts.log().Warn("pagecurl: synthesize rejected geometry",
			slog.Float64("wx", g.W.X), slog.Float64("wy", g.W.Y),
			slog.Float64("zx", g.Z.X), slog.Float64("zy", g.Z.Y),
			slog.Float64("sx", g.Sx),
			slog.String("reason", err.Error()))
		return err
	}

	c.computeEdges(g.line(), upsideDown)

	w := c.width
	for i := 0; i < c.height; i++ {
		row := out[i*w : (i+1)*w]
		src := base[i*w : (i+1)*w]

		// Curl-to-seam band.
		fillUnset(row, src, c.fold[i], c.seam[i])
		// Flat lower page right of the seam.
		fillUnset(row, src, c.seam[i]+1, w-1)
	}
	return nil
}

// computeEdges fills both row tables for one pass.
func (c *Compositor) computeEdges(l seamLine, upsideDown bool) {
	for i := 0; i < c.height; i++ {
		x := l.foldX(i)
		row := i
		if upsideDown {
			row = c.height - 1 - i
		}
		c.fold[row] = edgeColumn(x, c.width)
		c.seam[row] = edgeColumn(x+l.ws, c.width)
	}
}

// fillUnset converts src[from..to] into row[from..to] wherever row is
// unset. An empty range (from > to) writes nothing.
func fillUnset(row []uint32, src []uint16, from, to int) {
	for j := from; j <= to; j++ {
		if row[j] != pixel.Unset {
			continue
		}
		row[j] = pixel.RGB565ToABGR8888(src[j])
	}
}
