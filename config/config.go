// Package config reads the configuration of the curve drawing command from
// TOML. Besides settings, a configuration may contain a script of input
// events, which is replayed into a builder for headless rendering.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/npillmayer/hermite/builder"
	"github.com/npillmayer/hermite/render"
	"github.com/npillmayer/hermite/spline"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'hermite.config'
func tracer() tracing.Trace {
	return tracing.Select("hermite.config")
}

var (
	// ErrUnknownMode indicates a mode name other than "hermite" or "catmull-rom".
	ErrUnknownMode = errors.New("unknown mode")
	// ErrUnknownEvent indicates an event kind other than "point", "mode" or "reset".
	ErrUnknownEvent = errors.New("unknown event kind")
	// ErrCanvasSize indicates a non-positive canvas dimension.
	ErrCanvasSize = errors.New("invalid canvas size")
	// ErrTraceLevel indicates an unknown trace level.
	ErrTraceLevel = errors.New("unknown trace level")
)

// Event kinds.
const (
	EventPoint = "point"
	EventMode  = "mode"
	EventReset = "reset"
)

// Config is the complete configuration.
type Config struct {
	SamplesPerSegment int     `toml:"samples_per_segment"`
	Mode              string  `toml:"mode"`
	TraceLevel        string  `toml:"trace_level"`
	Canvas            Canvas  `toml:"canvas"`
	Events            []Event `toml:"event"`
}

// Canvas configures the drawing surface for SVG output.
type Canvas struct {
	Width  int     `toml:"width"`
	Height int     `toml:"height"`
	Fit    bool    `toml:"fit"`
	Margin float64 `toml:"margin"`
	Exact  bool    `toml:"exact"`
}

// Event is a scripted input event.
type Event struct {
	Kind string  `toml:"kind"`
	X    float64 `toml:"x"`
	Y    float64 `toml:"y"`
	Mode string  `toml:"mode"`
}

// Default returns the configuration used without a config file.
func Default() *Config {
	return &Config{
		SamplesPerSegment: spline.DefaultSamples,
		Mode:              builder.Hermite.String(),
		TraceLevel:        "error",
		Canvas: Canvas{
			Width:  640,
			Height: 480,
			Margin: 16,
		},
	}
}

// ParseFile loads a configuration file. Settings missing from the file keep
// their default values.
func ParseFile(name string) (*Config, error) {
	return parse(name, true)
}

// Parse is like ParseFile but reads the configuration from a string.
func Parse(text string) (*Config, error) {
	return parse(text, false)
}

func parse(conf string, isFileName bool) (*Config, error) {
	c := Default()
	var md toml.MetaData
	var err error
	if isFileName {
		md, err = toml.DecodeFile(conf, c)
	} else {
		md, err = toml.Decode(conf, c)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding configuration: %w", err)
	}
	if len(md.Undecoded()) > 0 {
		return nil, fmt.Errorf("undecoded fields in configuration: %v", md.Undecoded())
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	tracer().Debugf("configuration with %d events loaded", len(c.Events))
	return c, nil
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if _, err := ParseMode(c.Mode); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("%w: %d x %d", ErrCanvasSize, c.Canvas.Width, c.Canvas.Height)
	}
	for i, ev := range c.Events {
		switch ev.Kind {
		case EventPoint, EventReset:
		case EventMode:
			if _, err := ParseMode(ev.Mode); err != nil {
				return fmt.Errorf("event %d: %w", i+1, err)
			}
		default:
			return fmt.Errorf("%w at event %d: %q", ErrUnknownEvent, i+1, ev.Kind)
		}
	}
	return nil
}

// ParseMode returns the builder mode for a mode name.
func ParseMode(name string) (builder.Mode, error) {
	switch strings.ToLower(name) {
	case "hermite":
		return builder.Hermite, nil
	case "catmull-rom", "catmullrom", "catmull":
		return builder.CatmullRom, nil
	}
	return builder.Hermite, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

// Level returns the trace level.
func (c *Config) Level() (tracing.TraceLevel, error) {
	switch strings.ToLower(c.TraceLevel) {
	case "error", "":
		return tracing.LevelError, nil
	case "info":
		return tracing.LevelInfo, nil
	case "debug":
		return tracing.LevelDebug, nil
	}
	return tracing.LevelError, fmt.Errorf("%w: %q", ErrTraceLevel, c.TraceLevel)
}

// BuilderOptions returns the options for creating a builder. It fails for an
// unknown mode.
func (c *Config) BuilderOptions() ([]builder.Option, error) {
	mode, err := ParseMode(c.Mode)
	if err != nil {
		return nil, err
	}
	return []builder.Option{
		builder.WithSamplesPerSegment(c.SamplesPerSegment),
		builder.WithMode(mode),
	}, nil
}

// SVGOptions returns the options for SVG output.
func (c *Config) SVGOptions() render.SVGOptions {
	return render.SVGOptions{
		Width:  c.Canvas.Width,
		Height: c.Canvas.Height,
		Fit:    c.Canvas.Fit,
		Margin: c.Canvas.Margin,
		Exact:  c.Canvas.Exact,
	}
}

// Replay feeds the scripted events into b, in order.
func (c *Config) Replay(b *builder.Builder) error {
	for i, ev := range c.Events {
		switch ev.Kind {
		case EventPoint:
			b.Submit(ev.X, ev.Y)
		case EventMode:
			mode, err := ParseMode(ev.Mode)
			if err != nil {
				return fmt.Errorf("event %d: %w", i+1, err)
			}
			b.SetMode(mode)
		case EventReset:
			b.Reset()
		default:
			return fmt.Errorf("%w at event %d: %q", ErrUnknownEvent, i+1, ev.Kind)
		}
	}
	tracer().Infof("replayed %d events", len(c.Events))
	return nil
}
