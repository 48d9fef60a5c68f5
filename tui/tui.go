// Package tui is an interactive terminal front-end for the curve builder.
//
// The terminal is used as a braille canvas: every character cell holds 2 × 4
// dots, and canvas coordinates are dot coordinates. Clicking the left mouse
// button submits the centre of the clicked cell. Keys 'h' and 'c' switch
// between Hermite and Catmull-Rom mode, 'r' (or backspace) starts over and
// 'q' (or Esc, Ctrl-C) quits.
package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/npillmayer/hermite"
	"github.com/npillmayer/hermite/builder"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'hermite.tui'
func tracer() tracing.Trace {
	return tracing.Select("hermite.tui")
}

// App connects a terminal screen to a curve builder. All methods have to be
// called from the goroutine running the event loop.
type App struct {
	screen  tcell.Screen
	builder *builder.Builder
	buttons tcell.ButtonMask // mouse buttons held at the previous mouse event
	dirty   bool             // screen needs a redraw
}

// New creates an application drawing onto screen. opts configure the
// builder; the builder's refresh notifier is used by the application.
func New(screen tcell.Screen, opts ...builder.Option) *App {
	app := &App{screen: screen, dirty: true}
	opts = append(opts[:len(opts):len(opts)], builder.WithRefreshNotifier(func() { app.dirty = true }))
	app.builder = builder.New(opts...)
	return app
}

// Builder returns the curve builder operated by the application.
func (app *App) Builder() *builder.Builder {
	return app.builder
}

// Run initializes the screen and processes events until the user quits.
// The screen is finalized on return.
func (app *App) Run() error {
	if err := app.screen.Init(); err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}
	defer app.screen.Fini()
	app.screen.EnableMouse()
	app.dirty = true
	for {
		if app.dirty {
			app.Draw()
		}
		ev := app.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if app.HandleEvent(ev) {
			tracer().Infof("quit")
			return nil
		}
	}
}

// HandleEvent reacts to a single terminal event. It returns true if the user
// asked to quit.
func (app *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		app.screen.Sync()
		app.dirty = true
	case *tcell.EventKey:
		return app.handleKey(ev)
	case *tcell.EventMouse:
		app.handleMouse(ev)
	}
	return false
}

func (app *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		app.builder.Reset()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return true
		case 'h', 'H':
			app.builder.SetMode(builder.Hermite)
			app.dirty = true
		case 'c', 'C':
			app.builder.SetMode(builder.CatmullRom)
			app.dirty = true
		case 'r', 'R':
			app.builder.Reset()
		}
	}
	return false
}

// handleMouse submits a point when the left button goes down. Holding the
// button and dragging does not submit more points.
func (app *App) handleMouse(ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	pressed := buttons&tcell.Button1 != 0 && app.buttons&tcell.Button1 == 0
	app.buttons = buttons
	if !pressed {
		return
	}
	x, y := ev.Position()
	if y >= app.canvasRows() {
		return
	}
	p := CellToCanvas(x, y)
	tracer().Debugf("click at cell (%d,%d) -> %s", x, y, p)
	app.builder.SubmitPoint(p)
}

// canvasRows is the number of terminal rows available for drawing; the last
// row holds the status line.
func (app *App) canvasRows() int {
	_, h := app.screen.Size()
	return max(h-1, 0)
}

// CellToCanvas returns the canvas point at the centre of a cell.
func CellToCanvas(cx, cy int) hermite.Pair {
	return hermite.P(float64(2*cx+1), float64(4*cy+2))
}

// CanvasToCell returns the cell containing a canvas point.
func CanvasToCell(p hermite.Pair) (int, int) {
	return floorDiv(p.X(), 2), floorDiv(p.Y(), 4)
}

func floorDiv(v, d float64) int {
	q := v / d
	i := int(q)
	if float64(i) > q {
		i--
	}
	return i
}
