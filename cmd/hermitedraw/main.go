// Command hermitedraw builds Hermite and Catmull-Rom curves from mouse clicks
// in a terminal. With -svg it replays the events of a configuration file
// instead and writes the resulting drawing to standard output.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/npillmayer/hermite/builder"
	"github.com/npillmayer/hermite/config"
	"github.com/npillmayer/hermite/render"
	"github.com/npillmayer/hermite/tui"
	"github.com/npillmayer/schuko/tracing"
)

var (
	flagConf    = flag.String("c", "", "configuration file (TOML)")
	flagSamples = flag.Int("n", 0, "samples per curve segment, overrides the configuration")
	flagSVG     = flag.Bool("svg", false, "replay the configured events and write SVG to stdout")
	flagExact   = flag.Bool("exact", false, "draw the exact curve instead of the sampled polyline (SVG only)")
	flagFit     = flag.Bool("fit", false, "scale the drawing to fit the canvas (SVG only)")
)

var traceKeys = []string{
	"hermite", "hermite.spline", "hermite.builder", "hermite.polygon",
	"hermite.render", "hermite.tui", "hermite.config",
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s [arguments]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	c, err := loadConfig(*flagConf)
	if err != nil {
		log.Fatal(err)
	}
	if *flagSamples > 0 {
		c.SamplesPerSegment = *flagSamples
	}
	if *flagExact {
		c.Canvas.Exact = true
	}
	if *flagFit {
		c.Canvas.Fit = true
	}
	lvl, err := c.Level()
	if err != nil {
		log.Fatal(err)
	}
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(lvl)
	}
	if *flagSVG {
		if err := writeSVG(os.Stdout, c); err != nil {
			log.Fatal(err)
		}
		return
	}
	if err := runTUI(c); err != nil {
		log.Fatal(err)
	}
}

func loadConfig(name string) (*config.Config, error) {
	if name == "" {
		return config.Default(), nil
	}
	return config.ParseFile(name)
}

func writeSVG(w io.Writer, c *config.Config) error {
	opts, err := c.BuilderOptions()
	if err != nil {
		return err
	}
	b := builder.New(opts...)
	if err := c.Replay(b); err != nil {
		return err
	}
	return render.WriteSVG(w, b.RenderState(), c.SVGOptions())
}

// runTUI starts the interactive front-end. Scripted events of the
// configuration are replayed first, so a session may start from a
// prepared curve.
func runTUI(c *config.Config) error {
	opts, err := c.BuilderOptions()
	if err != nil {
		return err
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating terminal screen: %w", err)
	}
	app := tui.New(screen, opts...)
	if err := c.Replay(app.Builder()); err != nil {
		return err
	}
	return app.Run()
}
