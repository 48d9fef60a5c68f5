package polygon

import (
	"testing"

	"github.com/npillmayer/hermite"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestBuilder(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pg := NullPolygon().Knot(hermite.P(0, 0)).Knot(hermite.P(1, 3)).Knot(hermite.P(3, 0)).Cycle()
	L().Infof("pg = %s", AsString(pg))
	if pg.N() != 3 || !pg.IsCycle() {
		t.Fail()
	}
	if s := AsString(pg); s != "(0,0) -- (1,3) -- (3,0) -- cycle" {
		t.Errorf("unexpected string %q", s)
	}
}

func TestBox(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	box := Box(hermite.P(0, 5), hermite.P(4, 1))
	L().Infof("box = %s", AsString(box))
	if box.N() != 4 {
		t.Fail()
	}
	if box.Z(0) != hermite.P(0, 1) || box.Z(2) != hermite.P(4, 5) {
		t.Errorf("unexpected corners in %s", AsString(box))
	}
}

func TestBoundingBox(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	line := NullPolygon().Knots(hermite.P(0, 0), hermite.P(10, 2), hermite.P(20, -3)).End()
	marker := Box(hermite.P(16, 4), hermite.P(24, 12))
	ext, ok := BoundingBox(line, nil, NullPolygon(), marker)
	if !ok {
		t.Fatalf("expected a bounding box")
	}
	if ext.Min != hermite.P(0, -3) || ext.Max != hermite.P(24, 12) {
		t.Errorf("unexpected bounding box %s", ext)
	}
	if ext.Width() != 24 || ext.Height() != 15 {
		t.Errorf("unexpected size %g x %g", ext.Width(), ext.Height())
	}
	if _, ok := BoundingBox(NullPolygon()); ok {
		t.Errorf("expected no bounding box for empty polygon")
	}
}
