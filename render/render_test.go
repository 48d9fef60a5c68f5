package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/hermite"
	"github.com/npillmayer/hermite/builder"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hermiteState() builder.RenderState {
	b := builder.New(builder.WithSamplesPerSegment(4))
	b.Submit(0, 0)
	b.Submit(5, 0)
	b.Submit(10, 0)
	b.Submit(15, 0)
	return b.RenderState()
}

func TestWriteSVG(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	var buf bytes.Buffer
	err := WriteSVG(&buf, hermiteState(), SVGOptions{Width: 100, Height: 80})
	require.NoError(t, err)
	out := buf.String()
	t.Log(out)
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "<polyline")
	assert.Contains(t, out, "stroke:"+CurveColor)
	assert.Equal(t, 4, strings.Count(out, "<circle"), "2 control + 2 tangent markers")
	assert.Equal(t, 2, strings.Count(out, "<line"), "one connector per pair")
	assert.NotContains(t, out, "<path")
}

func TestWriteSVGExact(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	var buf bytes.Buffer
	err := WriteSVG(&buf, hermiteState(), SVGOptions{Width: 100, Height: 80, Exact: true})
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, `d="M 0.00 0.00 C 1.67 0.00 8.33 0.00 10.00 0.00"`)
	assert.NotContains(t, out, "<polyline")
}

func TestWriteSVGCatmullRomHasNoHandles(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	b := builder.New(builder.WithMode(builder.CatmullRom))
	b.Submit(10, 10)
	b.Submit(50, 40)
	b.Submit(90, 10)
	var buf bytes.Buffer
	require.NoError(t, WriteSVG(&buf, b.RenderState(), SVGOptions{Width: 100, Height: 80, Fit: true, Margin: 5}))
	out := buf.String()
	assert.Equal(t, 3, strings.Count(out, "<circle"))
	assert.NotContains(t, out, "stroke:"+TangentColor)
	assert.NotContains(t, out, "<line")
}

func TestWriteSVGKeepsHandlesAfterModeSwitch(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	b := builder.New(builder.WithSamplesPerSegment(4))
	b.Submit(0, 0)
	b.Submit(5, 0)
	b.Submit(10, 0)
	b.Submit(15, 0)
	b.SetHermite(false)
	var buf bytes.Buffer
	require.NoError(t, WriteSVG(&buf, b.RenderState(), SVGOptions{Width: 100, Height: 80}))
	out := buf.String()
	assert.Equal(t, 4, strings.Count(out, "<circle"))
	assert.Equal(t, 2, strings.Count(out, "<line"))
}

type failingWriter struct{}

var errDiskFull = errors.New("disk full")

func (failingWriter) Write([]byte) (int, error) {
	return 0, errDiskFull
}

func TestWriteSVGErrors(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	err := WriteSVG(failingWriter{}, hermiteState(), SVGOptions{Width: 10, Height: 10})
	assert.ErrorIs(t, err, errDiskFull)
	err = WriteSVG(&bytes.Buffer{}, hermiteState(), SVGOptions{})
	assert.Error(t, err)
}

func TestFitViewport(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	b := builder.New(builder.WithMode(builder.CatmullRom), builder.WithSamplesPerSegment(2))
	b.Submit(0, 0)
	b.Submit(100, 50)
	vp := Fit(b.RenderState(), 236, 136, 10)
	assert.InDelta(t, 2.0, vp.Scale(), 1e-9)
	lo := vp.Apply(hermite.P(-MarkerRadius, -MarkerRadius))
	hi := vp.Apply(hermite.P(100+MarkerRadius, 50+MarkerRadius))
	assert.InDelta(t, 0, lo.Dist(hermite.P(10, 10)), 1e-9, "lower corner at %v", lo)
	assert.InDelta(t, 0, hi.Dist(hermite.P(226, 126)), 1e-9, "upper corner at %v", hi)
}

func TestFitEmptyIsIdentity(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	vp := Fit(builder.RenderState{}, 100, 100, 10)
	assert.Equal(t, hermite.P(3, 4), vp.Apply(hermite.P(3, 4)))
	_, ok := Extent(builder.RenderState{})
	assert.False(t, ok)
}

func TestStrokeAlpha(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	line := []hermite.Pair{hermite.P(2, 5), hermite.P(18, 5)}
	mask := StrokeAlpha([][]hermite.Pair{line, {hermite.P(3, 3)}}, 20, 10, 2)
	assert.Equal(t, 20, mask.Bounds().Dx())
	assert.Greater(t, mask.AlphaAt(10, 4).A, uint8(200))
	assert.Greater(t, mask.AlphaAt(10, 5).A, uint8(200))
	assert.Equal(t, uint8(0), mask.AlphaAt(10, 8).A)
	assert.Equal(t, uint8(0), mask.AlphaAt(0, 5).A)
	empty := StrokeAlpha(nil, 4, 4, 1)
	assert.Equal(t, uint8(0), empty.AlphaAt(1, 1).A)
}
