package builder

import (
	"github.com/npillmayer/hermite"
	"github.com/npillmayer/hermite/spline"
)

// Connector is a line between a control point and its tangent handle.
type Connector struct {
	From, To hermite.Pair
}

// RenderState is a snapshot of everything a renderer needs to draw.
// All slices are copies owned by the receiver of the snapshot.
type RenderState struct {
	Mode           Mode
	Phase          InputPhase
	Polyline       []hermite.Pair   // sampled curve
	ControlPoints  []hermite.Pair   // markers for control points
	TangentHandles []hermite.Pair   // markers for tangent handles placed in Hermite mode
	Connectors     []Connector      // control point → handle, one per paired index
	Segments       []spline.Segment // exact curve the polyline was sampled from
}

// IsEmpty is a predicate: does the state have nothing to draw?
func (st RenderState) IsEmpty() bool {
	return len(st.Polyline) == 0 && len(st.ControlPoints) == 0 && len(st.TangentHandles) == 0
}

func clonePairs(pairs []hermite.Pair) []hermite.Pair {
	if len(pairs) == 0 {
		return nil
	}
	c := make([]hermite.Pair, len(pairs))
	copy(c, pairs)
	return c
}
