// Package spline evaluates piecewise cubic Hermite curves. It provides the
// two classic constructions for interpolating curves through a sequence of
// control points:
/*

Hermite interpolation, where every control point carries an explicit tangent
vector, and Catmull-Rom interpolation, where the tangent at a control point is
derived from its neighbours. Both result in a sequence of cubic Hermite
segments. A segment with endpoints P0, P1 and tangents M0, M1 is

   position(t) = (2t³ − 3t² + 1)·P0 + (t³ − 2t² + t)·M0
               + (−2t³ + 3t²)·P1      + (t³ − t²)·M1

for t ∈ [0,1], applied to each coordinate independently.

Sampling

Curves are handed to renderers as dense polylines. Every segment contributes
n samples at t = i/n, i.e. the end point of a segment is not sampled, as it
is the start point of the following segment. The final segment of a curve is
sampled at t = i/(n−1) instead, so that the polyline ends exactly on the last
control point:

   polyline := spline.CatmullRom(points, spline.DefaultSamples)

Segments may also be converted to their cubic Bézier form, either for
debugging (AsString) or for vector backends (AsPath):

   (0,0) .. controls (3.3333,0.0000) and (6.6667,0.0000)
     .. (10,0) .. controls (13.3333,0.0000) and (16.6667,0.0000)
     .. (20,0)

Functions of this package keep no state and are safe for concurrent use;
besides their results they only write debug tracing.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package spline
