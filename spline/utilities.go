package spline

import (
	"fmt"
	"math"

	"github.com/npillmayer/hermite"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// AsString returns segments in their Bézier form as a (debugging) string,
// similar to MetaPost's path notation:
//
//	(0,0) .. controls (1.6667,0.0000) and (8.3333,0.0000)
//	  .. (10,0)
func AsString(segs []Segment) string {
	if len(segs) == 0 {
		return "<empty>"
	}
	var s string
	for i, seg := range segs {
		b := seg.Bezier()
		if i == 0 {
			s += ptstring(b[0], false)
		}
		s += fmt.Sprintf(" .. controls %s and %s\n  .. %s",
			ptstring(b[1], true), ptstring(b[2], true), ptstring(b[3], false))
	}
	return s
}

// AsPath returns the exact curve of segments as a path of cubic Bézier
// curves. The path consists of a single open subpath. The slices passed to
// yield are only valid during the call.
func AsPath(segs []Segment) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if len(segs) == 0 {
			return
		}
		var buf [3]vec.Vec2
		buf[0] = toVec(segs[0].P0)
		if !yield(path.CmdMoveTo, buf[:1]) {
			return
		}
		for _, seg := range segs {
			b := seg.Bezier()
			buf[0], buf[1], buf[2] = toVec(b[1]), toVec(b[2]), toVec(b[3])
			if !yield(path.CmdCubeTo, buf[:3]) {
				return
			}
		}
	}
}

func toVec(p hermite.Pair) vec.Vec2 {
	return vec.Vec2{X: p.X(), Y: p.Y()}
}

func ptstring(p hermite.Pair, iscontrol bool) string {
	if math.IsNaN(p.X()) || math.IsNaN(p.Y()) {
		return "(<unknown>)"
	}
	if iscontrol {
		return fmt.Sprintf("(%.4f,%.4f)", round(p.X()), round(p.Y()))
	}
	return fmt.Sprintf("(%.4g,%.4g)", round(p.X()), round(p.Y()))
}

func round(x float64) float64 {
	if x >= 0 {
		return float64(int64(x*10000.0+0.5)) / 10000.0
	}
	return float64(int64(x*10000.0-0.5)) / 10000.0
}
