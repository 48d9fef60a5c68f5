package render

import (
	"image"
	"image/draw"

	"github.com/npillmayer/hermite"
	"golang.org/x/image/vector"
)

// StrokeAlpha rasterizes polylines with the given stroke width into a
// coverage mask of size w × h. Every edge of a polyline is drawn as a
// rectangle, extended by half the width at both ends to close the joints.
func StrokeAlpha(lines [][]hermite.Pair, w, h int, width float64) *image.Alpha {
	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	if w <= 0 || h <= 0 || width <= 0 {
		return dst
	}
	z := vector.NewRasterizer(w, h)
	hw := width / 2
	edges := 0
	for _, line := range lines {
		for i := 1; i < len(line); i++ {
			a, b := line[i-1], line[i]
			l := a.Dist(b)
			if l <= hermite.Epsilon {
				continue
			}
			dir := (b - a).Scaled(hw / l)
			nrm := hermite.P(-dir.Y(), dir.X())
			a, b = a-dir, b+dir
			z.Reset(w, h)
			z.DrawOp = draw.Over
			moveTo(z, a+nrm)
			lineTo(z, b+nrm)
			lineTo(z, b-nrm)
			lineTo(z, a-nrm)
			z.ClosePath()
			z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
			edges++
		}
	}
	tracer().Debugf("rasterized %d edges into %d x %d", edges, w, h)
	return dst
}

func moveTo(z *vector.Rasterizer, p hermite.Pair) {
	z.MoveTo(float32(p.X()), float32(p.Y()))
}

func lineTo(z *vector.Rasterizer, p hermite.Pair) {
	z.LineTo(float32(p.X()), float32(p.Y()))
}
