// Package polygon deals with simple polygons and polylines, built from
// knots in the manner of package spline's paths. Renderers use it to find the
// extent of what they have to draw.
package polygon

import (
	"fmt"
	"strings"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/hermite"
	"github.com/npillmayer/schuko/tracing"
)

// L traces to the polygon tracer.
func L() tracing.Trace {
	return tracing.Select("hermite.polygon")
}

// Polygon is an open or closed sequence of knots connected by straight lines.
// To construct a polygon, start with NullPolygon() and extend it.
type Polygon struct {
	contour polyclip.Contour
	cycle   bool
}

// NullPolygon creates an empty polygon, to be extended by subsequent builder
// calls:
//
//	pg := NullPolygon().Knot(P(0,0)).Knot(P(1,3)).Knot(P(3,0)).Cycle()
func NullPolygon() *Polygon {
	return &Polygon{}
}

// Knot appends a knot. Part of builder functionality.
func (pg *Polygon) Knot(p hermite.Pair) *Polygon {
	pg.contour.Add(polyclip.Point{X: p.X(), Y: p.Y()})
	return pg
}

// Knots appends a sequence of knots, e.g. a sampled curve. Part of builder
// functionality.
func (pg *Polygon) Knots(pts ...hermite.Pair) *Polygon {
	for _, p := range pts {
		pg.Knot(p)
	}
	return pg
}

// Cycle closes the polygon. Part of builder functionality.
func (pg *Polygon) Cycle() *Polygon {
	pg.cycle = true
	return pg
}

// End leaves the polygon open. Part of builder functionality.
func (pg *Polygon) End() *Polygon {
	return pg
}

// Box creates a closed rectangle from two opposite corners.
func Box(p1, p2 hermite.Pair) *Polygon {
	x0, x1 := min(p1.X(), p2.X()), max(p1.X(), p2.X())
	y0, y1 := min(p1.Y(), p2.Y()), max(p1.Y(), p2.Y())
	return NullPolygon().Knot(hermite.P(x0, y0)).Knot(hermite.P(x1, y0)).
		Knot(hermite.P(x1, y1)).Knot(hermite.P(x0, y1)).Cycle()
}

// N returns the number of knots.
func (pg *Polygon) N() int {
	return len(pg.contour)
}

// Z returns knot i.
func (pg *Polygon) Z(i int) hermite.Pair {
	pt := pg.contour[i]
	return hermite.P(pt.X, pt.Y)
}

// IsCycle is a predicate: is this polygon closed?
func (pg *Polygon) IsCycle() bool {
	return pg.cycle
}

// AsString returns a polygon as a (debugging) string, e.g.
//
//	(0,0) -- (1,3) -- (3,0) -- cycle
func AsString(pg *Polygon) string {
	if pg == nil {
		return "<nil>"
	}
	parts := make([]string, 0, pg.N()+1)
	for i := 0; i < pg.N(); i++ {
		parts = append(parts, pg.Z(i).String())
	}
	if pg.cycle {
		parts = append(parts, "cycle")
	}
	return strings.Join(parts, " -- ")
}

// Extent is an axis-aligned rectangle.
type Extent struct {
	Min, Max hermite.Pair
}

// Width of the extent.
func (e Extent) Width() float64 {
	return e.Max.X() - e.Min.X()
}

// Height of the extent.
func (e Extent) Height() float64 {
	return e.Max.Y() - e.Min.Y()
}

func (e Extent) String() string {
	return fmt.Sprintf("[%s,%s]", e.Min, e.Max)
}

// BoundingBox returns the common bounding box of polygons. Empty polygons are
// ignored; ok is false if there is nothing to bound.
func BoundingBox(pgs ...*Polygon) (ext Extent, ok bool) {
	var all polyclip.Polygon
	for _, pg := range pgs {
		if pg == nil || pg.N() == 0 {
			continue
		}
		all.Add(pg.contour)
	}
	if len(all) == 0 {
		return Extent{}, false
	}
	bb := all.BoundingBox()
	ext = Extent{
		Min: hermite.P(bb.Min.X, bb.Min.Y),
		Max: hermite.P(bb.Max.X, bb.Max.Y),
	}
	L().Debugf("bounding box of %d polygons = %s", len(all), ext)
	return ext, true
}
