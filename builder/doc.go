/*
Package builder implements the interaction logic for building a curve from a
sequence of submitted points.

A Builder operates in one of two modes. In CatmullRom mode every submitted
point is a control point, and the curve is recomputed as soon as there are at
least two of them. In Hermite mode submissions alternate between a control
point and its tangent handle; the curve is recomputed whenever a pair is
complete:

   b := builder.New(builder.WithSamplesPerSegment(20))
   b.Submit(0, 0)    // control point
   b.Submit(5, 0)    // tangent handle, curve still empty
   b.Submit(10, 0)   // control point
   b.Submit(15, 0)   // tangent handle, curve now has one segment
   st := b.RenderState()

Switching modes neither clears nor reinterprets points already placed. A
Builder is not safe for concurrent use; hosts which receive events on more
than one goroutine have to serialize calls.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package builder
