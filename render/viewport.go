package render

import (
	"github.com/npillmayer/hermite"
	"github.com/npillmayer/hermite/builder"
	"github.com/npillmayer/hermite/polygon"
)

// Viewport maps canvas coordinates of a render state to surface coordinates.
// The zero value is not usable; use Identity or Fit.
type Viewport struct {
	at    hermite.AT
	scale float64
}

// Identity is a viewport drawing canvas coordinates unchanged.
func Identity() Viewport {
	return Viewport{at: hermite.Identity(), scale: 1}
}

// Fit creates a viewport which scales and centers everything in st into a
// surface of size width × height, keeping a margin on every side. An empty
// render state results in the identity viewport.
func Fit(st builder.RenderState, width, height int, margin float64) Viewport {
	ext, ok := Extent(st)
	if !ok {
		return Identity()
	}
	availW := float64(width) - 2*margin
	availH := float64(height) - 2*margin
	if availW <= 0 || availH <= 0 {
		tracer().Errorf("margin %g too large for %d x %d surface", margin, width, height)
		return Identity()
	}
	scale := 1.0
	switch {
	case hermite.Is0(ext.Width()) && hermite.Is0(ext.Height()):
	case hermite.Is0(ext.Width()):
		scale = availH / ext.Height()
	case hermite.Is0(ext.Height()):
		scale = availW / ext.Width()
	default:
		scale = min(availW/ext.Width(), availH/ext.Height())
	}
	offset := hermite.P(
		margin+(availW-ext.Width()*scale)/2,
		margin+(availH-ext.Height()*scale)/2,
	)
	at := hermite.Translation(-ext.Min).
		Combine(hermite.Scaling(scale, scale)).
		Combine(hermite.Translation(offset))
	tracer().Debugf("fit %s into %d x %d: %s", ext, width, height, at)
	return Viewport{at: at, scale: scale}
}

// Extent returns the area covered by the curve and all markers of st.
func Extent(st builder.RenderState) (polygon.Extent, bool) {
	r := hermite.P(MarkerRadius, MarkerRadius)
	pgs := []*polygon.Polygon{polygon.NullPolygon().Knots(st.Polyline...).End()}
	for _, p := range st.ControlPoints {
		pgs = append(pgs, polygon.Box(p-r, p+r))
	}
	for _, p := range st.TangentHandles {
		pgs = append(pgs, polygon.Box(p-r, p+r))
	}
	return polygon.BoundingBox(pgs...)
}

// Apply maps a canvas point to the surface.
func (v Viewport) Apply(p hermite.Pair) hermite.Pair {
	return v.at.Transform(p)
}

// Scale returns the scaling factor of the viewport.
func (v Viewport) Scale() float64 {
	return v.scale
}

func (v Viewport) applyAll(pts []hermite.Pair) []hermite.Pair {
	out := make([]hermite.Pair, len(pts))
	for i, p := range pts {
		out[i] = v.Apply(p)
	}
	return out
}
