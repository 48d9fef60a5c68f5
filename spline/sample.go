package spline

import (
	"github.com/npillmayer/hermite"
)

// Sample flattens a sequence of segments into a polyline, using n samples per
// segment. Samples are taken at t = i/n for i = 0 … n−1, except for the last
// segment, where t = i/(n−1). This way every joint is sampled exactly once and
// the polyline ends on the end point of the last segment.
//
// Sample returns nil if there are no segments or if n < 2.
func Sample(segs []Segment, n int) []hermite.Pair {
	if len(segs) == 0 || n < 2 {
		return nil
	}
	polyline := make([]hermite.Pair, 0, len(segs)*n)
	last := len(segs) - 1
	for j, seg := range segs {
		div := float64(n)
		if j == last {
			div = float64(n - 1)
		}
		for i := 0; i < n; i++ {
			polyline = append(polyline, seg.At(float64(i)/div))
		}
	}
	tracer().Debugf("sampled %d segments into %d points", len(segs), len(polyline))
	return polyline
}

// CatmullRom returns the sampled Catmull-Rom curve through points.
func CatmullRom(points []hermite.Pair, n int) []hermite.Pair {
	return Sample(CatmullRomSegments(points), n)
}

// Hermite returns the sampled Hermite curve through points, with tangents
// given by handles. See HermiteSegments for points lacking a handle.
func Hermite(points, handles []hermite.Pair, n int) []hermite.Pair {
	return Sample(HermiteSegments(points, handles), n)
}
