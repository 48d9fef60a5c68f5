package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/hermite/config"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSVGFromConfig(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c, err := loadConfig("../../config/testdata/wave.toml")
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, writeSVG(&buf, c))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, "<polyline")
	assert.Equal(t, 4, strings.Count(out, "<circle"), "catmull-rom draws control points only")
}

func TestLoadDefaultConfig(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), c)
}

func TestWriteSVGRejectsUnknownMode(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := config.Default()
	c.Mode = "bezier"
	var buf bytes.Buffer
	assert.ErrorIs(t, writeSVG(&buf, c), config.ErrUnknownMode)
	assert.Zero(t, buf.Len())
}
