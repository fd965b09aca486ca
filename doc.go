// Package pagecurl composites a flat page under a page-turn curl.
//
// # Overview
//
// A page-turn widget renders the curled part of the turning page into a
// 32-bit frame and leaves the rest of the frame unset (zero). pagecurl
// fills that rest from the 16-bit page underneath, one scanline at a time,
// starting at a boundary derived from the fold line.
//
// # Quick Start
//
//	c := pagecurl.NewCompositor()
//	out := make([]uint32, width*height)   // ABGR8888, 0 = unset
//	base := make([]uint16, width*height)  // RGB565 lower page
//
//	if err := c.Resize(width, height, out); err != nil {
//	    return err
//	}
//	// ... the curl renderer writes its samples into out ...
//	err := c.Synthesize(out, base, pagecurl.Geometry{
//	    W:  pagecurl.Pt(wx, wy),
//	    Z:  pagecurl.Pt(zx, zy),
//	    Sx: sx,
//	}, upsideDown)
//
// Synthesizer wraps a Compositor together with the frame bitmap and
// borrows lower pages through PixelLocker, releasing every lock on return.
//
// # Geometry
//
// W and Z span the fold line. For row y the fold column is the line's x at
// y, truncated and moved one column left so no gap shows, then clamped to
// the frame. The seam runs parallel, offset by Sx - W.X. Samples from the
// fold column to the end of the row that are still unset receive the
// converted lower page sample; samples left of the fold are left to the
// curl renderer.
//
// # Pixel Formats
//
//   - Lower page: RGB565, 5 bits red in the high bits, then 6 green, 5 blue.
//   - Frame: 0xAABBGGRR, which in memory is R, G, B, A like image.RGBA.
//
// Conversion scales each channel by 255/max with integer division and
// forces alpha to 0xFF, so black converts to 0xFF000000 and never collides
// with the unset value.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
package pagecurl
