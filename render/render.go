/*
Package render draws the render state of a curve builder onto concrete
surfaces. It contains no curve logic; everything drawn is read from a
builder.RenderState snapshot.

Colours and marker sizes follow the classic drawing panel: the curve is blue,
control points are black circles, tangent handles are orange circles and
control points are connected to their handles by green lines.
*/
package render

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'hermite.render'
func tracer() tracing.Trace {
	return tracing.Select("hermite.render")
}

// MarkerRadius is the radius of point markers, in canvas units.
const MarkerRadius = 4

// Stroke colours.
const (
	CurveColor     = "blue"
	ControlColor   = "black"
	TangentColor   = "orange"
	ConnectorColor = "green"
)
