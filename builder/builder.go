package builder

import (
	"github.com/npillmayer/hermite"
	"github.com/npillmayer/hermite/spline"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'hermite.builder'
func tracer() tracing.Trace {
	return tracing.Select("hermite.builder")
}

// minSamples is the smallest usable number of samples per segment: the final
// segment is sampled with step 1/(n−1).
const minSamples = 2

// Builder owns the points of a curve under construction and the state of the
// input cycle. Create one with New.
type Builder struct {
	points   []hermite.Pair   // control points, in submission order
	handles  []hermite.Pair   // tangent handles, paired by index with points
	polyline []hermite.Pair   // sampled curve, rebuilt on every recomputation
	segments []spline.Segment // segments polyline was sampled from
	mode     Mode
	phase    InputPhase
	samples  int    // samples per segment
	refresh  func() // render refresh notifier, may be nil
}

// Option configures a Builder at construction time.
type Option func(*Builder)

// WithSamplesPerSegment sets the curve sampling density. Values below 2 are
// raised to 2.
func WithSamplesPerSegment(n int) Option {
	return func(b *Builder) {
		if n < minSamples {
			tracer().Infof("samples per segment %d too small, using %d", n, minSamples)
			n = minSamples
		}
		b.samples = n
	}
}

// WithMode sets the initial input mode (default is Hermite).
func WithMode(m Mode) Option {
	return func(b *Builder) {
		b.mode = m
	}
}

// WithRefreshNotifier sets a function which is called whenever the builder
// wants its renderer to redraw.
func WithRefreshNotifier(notify func()) Option {
	return func(b *Builder) {
		b.refresh = notify
	}
}

// New creates an empty builder in Hermite mode, sampling
// spline.DefaultSamples points per segment.
func New(opts ...Option) *Builder {
	b := &Builder{
		mode:    Hermite,
		phase:   AwaitingControlPoint,
		samples: spline.DefaultSamples,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Mode returns the current input mode.
func (b *Builder) Mode() Mode {
	return b.mode
}

// Phase returns the phase of the Hermite input cycle.
func (b *Builder) Phase() InputPhase {
	return b.phase
}

// SamplesPerSegment returns the sampling density of the curve.
func (b *Builder) SamplesPerSegment() int {
	return b.samples
}

// SetMode switches the input mode. Existing points, tangents and the curve are
// left untouched and the curve is not recomputed; the new mode takes effect
// with the next submission.
func (b *Builder) SetMode(m Mode) {
	if b.mode != m {
		tracer().Debugf("switching mode %s -> %s", b.mode, m)
	}
	b.mode = m
}

// SetHermite selects Hermite mode if on is true, Catmull-Rom otherwise.
func (b *Builder) SetHermite(on bool) {
	if on {
		b.SetMode(Hermite)
	} else {
		b.SetMode(CatmullRom)
	}
}

// Reset clears all points, tangents and the curve, and restarts the Hermite
// input cycle.
func (b *Builder) Reset() {
	b.points = b.points[:0]
	b.handles = b.handles[:0]
	b.polyline = nil
	b.segments = nil
	b.phase = AwaitingControlPoint
	tracer().Debugf("reset")
	b.notify()
}

// Submit is a shortcut for SubmitPoint(hermite.P(x, y)).
func (b *Builder) Submit(x, y float64) {
	b.SubmitPoint(hermite.P(x, y))
}

// SubmitPoint feeds a user supplied point into the builder. Depending on mode
// and input phase p becomes a control point or a tangent handle. Every point
// is accepted; non-finite coordinates are replaced by (0,0).
func (b *Builder) SubmitPoint(p hermite.Pair) {
	p = hermite.C2P(p.C())
	switch b.mode {
	case CatmullRom:
		b.points = append(b.points, p)
		tracer().Debugf("control point #%d = %s", len(b.points)-1, p)
		if len(b.points) >= 2 {
			b.recompute(spline.CatmullRomSegments(b.points))
		}
	default:
		if b.phase == AwaitingControlPoint {
			b.points = append(b.points, p)
			tracer().Debugf("control point #%d = %s", len(b.points)-1, p)
		} else {
			b.handles = append(b.handles, p)
			tracer().Debugf("tangent handle #%d = %s", len(b.handles)-1, p)
			segs := spline.HermiteSegments(b.points, b.handles)
			if len(segs) == 0 && len(b.points) > 1 {
				// only after mode switches: a control point waits for its tangent
				tracer().Debugf("no hermite curve: %v", spline.ValidateHermite(b.points, b.handles))
			}
			b.recompute(segs)
		}
		b.phase = b.phase.next()
	}
	b.notify()
}

// recompute replaces the curve as a whole.
func (b *Builder) recompute(segs []spline.Segment) {
	b.segments = segs
	b.polyline = spline.Sample(segs, b.samples)
	tracer().Debugf("curve has %d segments, %d samples", len(segs), len(b.polyline))
}

func (b *Builder) notify() {
	if b.refresh != nil {
		b.refresh()
	}
}

// RenderState returns a snapshot of the curve and its markers. Tangent
// handles and their connectors are reported regardless of the current mode,
// so switching modes never changes the snapshot except for Mode itself. The
// snapshot does not share memory with the builder.
func (b *Builder) RenderState() RenderState {
	st := RenderState{
		Mode:          b.mode,
		Phase:         b.phase,
		Polyline:      clonePairs(b.polyline),
		ControlPoints: clonePairs(b.points),
	}
	if len(b.segments) > 0 {
		st.Segments = make([]spline.Segment, len(b.segments))
		copy(st.Segments, b.segments)
	}
	st.TangentHandles = clonePairs(b.handles)
	if n := min(len(b.points), len(b.handles)); n > 0 {
		st.Connectors = make([]Connector, n)
		for i := 0; i < n; i++ {
			st.Connectors[i] = Connector{From: b.points[i], To: b.handles[i]}
		}
	}
	return st
}
