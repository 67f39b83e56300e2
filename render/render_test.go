package render

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sidewalk/gridgraph"
	"github.com/katalvlaran/sidewalk/route"
)

// planned returns a road band grid and a route that crosses it.
func planned(t *testing.T) (*gridgraph.Grid, *route.Route) {
	t.Helper()
	cells := make([][]int, 12)
	for r := range cells {
		cells[r] = make([]int, 16)
		if r >= 4 && r <= 7 {
			for c := range cells[r] {
				cells[r][c] = 255
			}
		}
	}
	g, err := gridgraph.FromInts(cells)
	require.NoError(t, err)

	p, err := route.NewPlanner(route.DefaultConfig(), route.WithIDGenerator(func() string { return "r-42" }))
	require.NoError(t, err)
	r, err := p.Plan(context.Background(), g, gridgraph.Pt(0, 0), gridgraph.Pt(11, 15))
	require.NoError(t, err)

	return g, r
}

// ------------------------------------------------------------------------
// Overlay
// ------------------------------------------------------------------------

func TestWriteOverlay_PNG(t *testing.T) {
	g, r := planned(t)
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Waypoints = true
	require.NoError(t, WriteOverlay(&buf, "png", g, r, opts))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")), "not a PNG stream")
}

func TestWriteOverlay_SVG(t *testing.T) {
	g, r := planned(t)
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Title = "crossing"
	require.NoError(t, WriteOverlay(&buf, "SVG", g, r, opts))
	assert.Contains(t, buf.String(), "<svg")
}

func TestSaveOverlay(t *testing.T) {
	g, r := planned(t)
	path := filepath.Join(t.TempDir(), "route.png")
	require.NoError(t, SaveOverlay(path, g, r, Options{}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestOverlay_Errors(t *testing.T) {
	g, r := planned(t)

	_, err := Overlay(nil, r, DefaultOptions())
	assert.ErrorIs(t, err, ErrNilInput)
	_, err = Overlay(g, nil, DefaultOptions())
	assert.ErrorIs(t, err, ErrNilInput)

	err = SaveOverlay(filepath.Join(t.TempDir(), "route.gif"), g, r, DefaultOptions())
	assert.ErrorIs(t, err, ErrFormat)
	err = WriteOverlay(&bytes.Buffer{}, "bmp", g, r, DefaultOptions())
	assert.ErrorIs(t, err, ErrFormat)
}

func TestToXYs_FlipsRows(t *testing.T) {
	g, err := gridgraph.Filled(5, 3, 0)
	require.NoError(t, err)
	xys := toXYs(g, []gridgraph.Point{{Row: 0, Col: 2}, {Row: 4, Col: 0}})
	assert.Equal(t, 2.0, xys[0].X)
	assert.Equal(t, 4.0, xys[0].Y)
	assert.Equal(t, 0.0, xys[1].Y)

	z := gridXYZ{g}
	c, rows := z.Dims()
	assert.Equal(t, 3, c)
	assert.Equal(t, 5, rows)
}

// ------------------------------------------------------------------------
// Report
// ------------------------------------------------------------------------

func TestNewReport(t *testing.T) {
	_, r := planned(t)

	full := NewReport(r, true)
	assert.Equal(t, "r-42", full.ID)
	assert.Equal(t, r.Crossings, full.Crossings)
	assert.Equal(t, r.Trunk.Len(), full.TrunkLen)
	assert.Len(t, full.Segments, len(r.Segments))
	assert.Len(t, full.Waypoints, len(r.Waypoints))

	brief := NewReport(r, false)
	assert.Empty(t, brief.Trunk)
	assert.Empty(t, brief.Waypoints)
	for _, s := range brief.Segments {
		assert.True(t, s.Forced || s.Detour)
	}
	assert.GreaterOrEqual(t, r.Crossings, len(brief.Segments))
	assert.NotEmpty(t, brief.Segments, "the band forces at least one crossing")
}

func TestWriteReport_JSON(t *testing.T) {
	_, r := planned(t)
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, FormatJSON, NewReport(r, false)))

	var got Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "r-42", got.ID)
	assert.Equal(t, r.Start, got.Start)
	assert.Equal(t, r.Crossings, got.Crossings)
	assert.Contains(t, buf.String(), `"raw_start": {`)
}

func TestWriteReport_YAML(t *testing.T) {
	_, r := planned(t)
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, "yml", []Report{NewReport(r, true)}))

	var got []Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, r.End, got[0].End)
	assert.Equal(t, []gridgraph.Point(r.Trunk), got[0].Trunk)
	assert.True(t, strings.HasPrefix(buf.String(), "- id: r-42"), buf.String())
}

func TestWriteReport_BadFormat(t *testing.T) {
	assert.ErrorIs(t, WriteReport(&bytes.Buffer{}, "xml", Report{}), ErrFormat)
}

func TestFormatFromPath(t *testing.T) {
	for path, want := range map[string]string{"a.json": FormatJSON, "b.YAML": FormatYAML, "c.yml": FormatYAML} {
		got, err := FormatFromPath(path)
		require.NoError(t, err)
		assert.Equal(t, want, got, path)
	}
	_, err := FormatFromPath("d.txt")
	assert.ErrorIs(t, err, ErrFormat)
}
