package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo"
	"github.com/npillmayer/hermite"
	"github.com/npillmayer/hermite/builder"
	"github.com/npillmayer/hermite/spline"
	"seehuhn.de/go/geom/path"
)

// SVGOptions control the SVG output.
type SVGOptions struct {
	Width, Height int     // size of the drawing
	Fit           bool    // scale content to the drawing size
	Margin        float64 // margin for Fit
	Exact         bool    // draw Bézier segments instead of the sampled polyline
}

// WriteSVG draws a render state as an SVG document.
func WriteSVG(w io.Writer, st builder.RenderState, opts SVGOptions) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		return fmt.Errorf("invalid SVG size %d x %d", opts.Width, opts.Height)
	}
	vp := Identity()
	if opts.Fit {
		vp = Fit(st, opts.Width, opts.Height, opts.Margin)
	}
	ew := &errWriter{w: w}
	s := svg.New(ew)
	s.Start(opts.Width, opts.Height)
	s.Rect(0, 0, opts.Width, opts.Height, "fill:white")
	if opts.Exact && len(st.Segments) > 0 {
		s.Path(pathData(spline.AsPath(st.Segments), vp), style(CurveColor))
	} else if len(st.Polyline) > 1 {
		xs, ys := ints(vp.applyAll(st.Polyline))
		s.Polyline(xs, ys, style(CurveColor))
	}
	if len(st.Connectors) > 0 {
		s.Gstyle(style(ConnectorColor))
		for _, c := range st.Connectors {
			from, to := vp.Apply(c.From), vp.Apply(c.To)
			s.Line(iround(from.X()), iround(from.Y()), iround(to.X()), iround(to.Y()))
		}
		s.Gend()
	}
	markers(s, vp.applyAll(st.ControlPoints), ControlColor)
	markers(s, vp.applyAll(st.TangentHandles), TangentColor)
	s.End()
	if ew.err != nil {
		return fmt.Errorf("writing SVG: %w", ew.err)
	}
	tracer().Debugf("wrote SVG with %d curve samples", len(st.Polyline))
	return nil
}

func markers(s *svg.SVG, pts []hermite.Pair, color string) {
	if len(pts) == 0 {
		return
	}
	s.Gstyle(style(color))
	for _, p := range pts {
		s.Circle(iround(p.X()), iround(p.Y()), MarkerRadius)
	}
	s.Gend()
}

// pathData converts a path into SVG path data, mapping every point through
// the viewport. Affine maps keep Bézier curves intact.
func pathData(p path.Path, vp Viewport) string {
	var sb strings.Builder
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			sb.WriteString("M")
		case path.CmdCubeTo:
			sb.WriteString(" C")
		default:
			continue
		}
		for _, v := range pts {
			q := vp.Apply(hermite.P(v.X, v.Y))
			fmt.Fprintf(&sb, " %.2f %.2f", q.X(), q.Y())
		}
	}
	return sb.String()
}

func style(color string) string {
	return "fill:none;stroke:" + color
}

func ints(pts []hermite.Pair) ([]int, []int) {
	xs := make([]int, len(pts))
	ys := make([]int, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = iround(p.X()), iround(p.Y())
	}
	return xs, ys
}

func iround(x float64) int {
	return int(math.Round(x))
}

// errWriter remembers the first write error, as svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	if err != nil {
		ew.err = err
	}
	return n, err
}
