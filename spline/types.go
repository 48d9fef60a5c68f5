package spline

import (
	"errors"

	"github.com/npillmayer/hermite"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'hermite.spline'
func tracer() tracing.Trace {
	return tracing.Select("hermite.spline")
}

// DefaultSamples is the number of samples per curve segment if clients do not
// choose otherwise.
const DefaultSamples = 20

var (
	// ErrTooFewPoints indicates that a curve needs at least 2 control points.
	ErrTooFewPoints = errors.New("curve has too few control points")
	// ErrMissingTangent indicates a control point without a tangent handle.
	ErrMissingTangent = errors.New("control point has no tangent handle")
)

// Segment is a single cubic Hermite curve piece from P0 to P1, leaving P0
// with tangent vector M0 and arriving at P1 with tangent vector M1.
type Segment struct {
	P0, P1 hermite.Pair // end points
	M0, M1 hermite.Pair // tangent vectors (not handles!)
}
