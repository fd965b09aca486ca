package pagecurl

import (
	"fmt"
	"math"
)

// Geometry describes where the curl meets the flat lower page.
//
// W and Z span the fold line. Sx, together with W.X, gives the horizontal
// offset of the seam line, which runs parallel to the fold. When the fold
// is vertical both lines are computed but usually coincide.
type Geometry struct {
	W, Z Point
	Sx   float64
}

// GeometryFromSlice builds a Geometry from the packed layout
// [Wx, Wy, Zx, Zy, Sx]. Extra trailing values (the page widget also sends
// Sy) are ignored.
func GeometryFromSlice(v []float32) (Geometry, error) {
	if len(v) < 5 {
		return Geometry{}, fmt.Errorf("%w: need 5 values, got %d", ErrInvalidGeometry, len(v))
	}
	return Geometry{
		W:  Pt(float64(v[0]), float64(v[1])),
		Z:  Pt(float64(v[2]), float64(v[3])),
		Sx: float64(v[4]),
	}, nil
}

// Validate reports whether the geometry can produce finite edge columns.
// It returns ErrInvalidGeometry for NaN or infinite coordinates and
// ErrDegenerateGeometry when W and Z share a row, which leaves the fold
// line with no vertical extent.
func (g Geometry) Validate() error {
	if !g.W.IsFinite() || !g.Z.IsFinite() || math.IsNaN(g.Sx) || math.IsInf(g.Sx, 0) {
		return ErrInvalidGeometry
	}
	if g.Z.Y == g.W.Y {
		return ErrDegenerateGeometry
	}
	return nil
}

// seamLine is the fold line solved for x as a function of the row.
type seamLine struct {
	kInv float64 // dx/dy of the fold line
	b    float64 // y-intercept of the fold line
	ws   float64 // horizontal offset from fold to seam
	wx   float64 // fold column when the line is vertical
}

// line derives the per-row line parameters. g must have passed Validate.
func (g Geometry) line() seamLine {
	kInv := (g.Z.X - g.W.X) / (g.Z.Y - g.W.Y)
	l := seamLine{
		kInv: kInv,
		ws:   g.Sx - g.W.X,
		wx:   g.W.X,
	}
	if kInv != 0 {
		l.b = g.Z.Y - g.Z.X/kInv
	}
	return l
}

// foldX returns the unclamped fold x coordinate on the given row.
func (l seamLine) foldX(row int) float64 {
	if l.kInv == 0 {
		// Vertical fold: the intercept form is undefined, x is constant.
		return l.wx
	}
	return (float64(row) - l.b) * l.kInv
}

// edgeColumn converts a line x coordinate to a clamped table column.
// The column is biased one to the left so the fill leaves no gap.
func edgeColumn(x float64, width int) int {
	c := math.Trunc(x) - 1
	if !(c >= 0) {
		return 0
	}
	if c >= float64(width) {
		return width - 1
	}
	return int(c)
}
