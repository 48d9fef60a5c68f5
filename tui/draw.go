package tui

import (
	"fmt"
	"image"

	"github.com/gdamore/tcell/v2"
	"github.com/npillmayer/hermite"
	"github.com/npillmayer/hermite/builder"
	"github.com/npillmayer/hermite/render"
)

// Dots with at least this coverage are set.
const dotThreshold = 0x40

// Styles for the different layers.
var (
	curveStyle     = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	connectorStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	controlStyle   = tcell.StyleDefault.Bold(true)
	tangentStyle   = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	statusStyle    = tcell.StyleDefault.Reverse(true)
)

// Marker glyphs.
const (
	ControlMarker = '●'
	TangentMarker = '○'
)

// braille dot bits, indexed by [row][column] of a cell
var brailleBits = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Draw renders the builder's current state onto the screen.
func (app *App) Draw() {
	s := app.screen
	s.Clear()
	w, _ := s.Size()
	rows := app.canvasRows()
	st := app.builder.RenderState()
	if w > 0 && rows > 0 {
		curve := render.StrokeAlpha([][]hermite.Pair{st.Polyline}, 2*w, 4*rows, 1)
		conns := make([][]hermite.Pair, 0, len(st.Connectors))
		for _, c := range st.Connectors {
			conns = append(conns, []hermite.Pair{c.From, c.To})
		}
		connectors := render.StrokeAlpha(conns, 2*w, 4*rows, 1)
		for cy := 0; cy < rows; cy++ {
			for cx := 0; cx < w; cx++ {
				if r := braille(curve, cx, cy); r != 0 {
					s.SetContent(cx, cy, r, nil, curveStyle)
				} else if r := braille(connectors, cx, cy); r != 0 {
					s.SetContent(cx, cy, r, nil, connectorStyle)
				}
			}
		}
		app.markers(st.TangentHandles, TangentMarker, tangentStyle)
		app.markers(st.ControlPoints, ControlMarker, controlStyle)
	}
	app.status(st)
	s.Show()
	app.dirty = false
}

// braille returns the braille glyph for the dots of a cell, or 0 if no dot
// is set.
func braille(mask *image.Alpha, cx, cy int) rune {
	var bits rune
	for dy := 0; dy < 4; dy++ {
		for dx := 0; dx < 2; dx++ {
			if mask.AlphaAt(2*cx+dx, 4*cy+dy).A >= dotThreshold {
				bits |= brailleBits[dy][dx]
			}
		}
	}
	if bits == 0 {
		return 0
	}
	return 0x2800 + bits
}

func (app *App) markers(pts []hermite.Pair, glyph rune, style tcell.Style) {
	w, _ := app.screen.Size()
	rows := app.canvasRows()
	for _, p := range pts {
		cx, cy := CanvasToCell(p)
		if cx < 0 || cy < 0 || cx >= w || cy >= rows {
			continue
		}
		app.screen.SetContent(cx, cy, glyph, nil, style)
	}
}

func (app *App) status(st builder.RenderState) {
	w, h := app.screen.Size()
	if h == 0 {
		return
	}
	line := fmt.Sprintf(" %s", st.Mode)
	if st.Mode == builder.Hermite {
		line += fmt.Sprintf(", %s", st.Phase)
	}
	line += fmt.Sprintf(" | %d points", len(st.ControlPoints))
	if st.Mode == builder.Hermite || len(st.TangentHandles) > 0 {
		line += fmt.Sprintf(", %d tangents", len(st.TangentHandles))
	}
	line += " | h hermite  c catmull-rom  r reset  q quit"
	x := 0
	for _, r := range line {
		if x >= w {
			break
		}
		app.screen.SetContent(x, h-1, r, nil, statusStyle)
		x++
	}
	for ; x < w; x++ {
		app.screen.SetContent(x, h-1, ' ', nil, statusStyle)
	}
}
