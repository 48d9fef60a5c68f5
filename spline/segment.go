package spline

import (
	"fmt"

	"github.com/npillmayer/hermite"
)

// At evaluates the segment at parameter t, using the cubic Hermite basis
// functions. At(0) is exactly P0 and At(1) is exactly P1.
func (seg Segment) At(t float64) hermite.Pair {
	t2 := t * t
	t3 := t2 * t
	h00 := 2*t3 - 3*t2 + 1
	h10 := t3 - 2*t2 + t
	h01 := -2*t3 + 3*t2
	h11 := t3 - t2
	x := h00*seg.P0.X() + h10*seg.M0.X() + h01*seg.P1.X() + h11*seg.M1.X()
	y := h00*seg.P0.Y() + h10*seg.M0.Y() + h01*seg.P1.Y() + h11*seg.M1.Y()
	return hermite.P(x, y)
}

// Bezier returns the control points of the cubic Bézier curve describing the
// same curve as the segment.
func (seg Segment) Bezier() [4]hermite.Pair {
	return [4]hermite.Pair{
		seg.P0,
		seg.P0 + seg.M0.Scaled(1.0/3.0),
		seg.P1 - seg.M1.Scaled(1.0/3.0),
		seg.P1,
	}
}

// CatmullRomSegments derives Hermite segments for consecutive pairs of
// control points. Tangents are half the difference of the neighbouring points;
// the first and last point lack a neighbour and use the segment chord instead.
// Returns nil for less than 2 points.
func CatmullRomSegments(points []hermite.Pair) []Segment {
	n := len(points)
	if n < 2 {
		return nil
	}
	segs := make([]Segment, 0, n-1)
	for j := 0; j < n-1; j++ {
		p0, p1 := points[j], points[j+1]
		var m0, m1 hermite.Pair
		if j > 0 {
			m0 = (points[j+1] - points[j-1]).Scaled(0.5)
		} else {
			m0 = p1 - p0
		}
		if j < n-2 {
			m1 = (points[j+2] - points[j]).Scaled(0.5)
		} else {
			m1 = p1 - p0
		}
		segs = append(segs, Segment{P0: p0, P1: p1, M0: m0, M1: m1})
	}
	return segs
}

// HermiteSegments creates segments for control points with tangent handles.
// The tangent vector at point i is handles[i] − points[i].
//
// Only segments for which both end points have a handle are produced, i.e.
// min(len(points), len(handles)) − 1 segments. Points without a handle are
// ignored.
func HermiteSegments(points, handles []hermite.Pair) []Segment {
	k := min(len(points), len(handles))
	if k < 2 {
		return nil
	}
	segs := make([]Segment, 0, k-1)
	for j := 0; j < k-1; j++ {
		segs = append(segs, Segment{
			P0: points[j],
			P1: points[j+1],
			M0: handles[j] - points[j],
			M1: handles[j+1] - points[j+1],
		})
	}
	return segs
}

// ValidateHermite checks if every control point has its tangent handle and if
// there are enough points to form a segment.
func ValidateHermite(points, handles []hermite.Pair) error {
	if len(points) < 2 {
		return ErrTooFewPoints
	}
	if len(handles) < len(points) {
		return fmt.Errorf("%w: point %d of %d", ErrMissingTangent, len(handles), len(points))
	}
	return nil
}
