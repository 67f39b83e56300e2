package render

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sidewalk/gridgraph"
	"github.com/katalvlaran/sidewalk/route"
)

// Report formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Report is the serialisable summary of a Route.
type Report struct {
	Name      string            `json:"name,omitempty" yaml:"name,omitempty"`
	ID        string            `json:"id" yaml:"id"`
	RawStart  gridgraph.Point   `json:"raw_start" yaml:"raw_start"`
	RawEnd    gridgraph.Point   `json:"raw_end" yaml:"raw_end"`
	Start     gridgraph.Point   `json:"start" yaml:"start"`
	End       gridgraph.Point   `json:"end" yaml:"end"`
	Crossings int               `json:"crossings" yaml:"crossings"`
	TrunkLen  int               `json:"trunk_len" yaml:"trunk_len"`
	Trunk     []gridgraph.Point `json:"trunk,omitempty" yaml:"trunk,omitempty"`
	Waypoints []gridgraph.Point `json:"waypoints,omitempty" yaml:"waypoints,omitempty"`
	Segments  []SegmentReport   `json:"segments,omitempty" yaml:"segments,omitempty"`
	ElapsedMS float64           `json:"elapsed_ms" yaml:"elapsed_ms"`
	Error     string            `json:"error,omitempty" yaml:"error,omitempty"`
}

// SegmentReport describes one waypoint pair without the full paths.
type SegmentReport struct {
	From        gridgraph.Point `json:"from" yaml:"from"`
	To          gridgraph.Point `json:"to" yaml:"to"`
	SidewalkLen int             `json:"sidewalk_len" yaml:"sidewalk_len"`
	DirectLen   int             `json:"direct_len" yaml:"direct_len"`
	Forced      bool            `json:"forced,omitempty" yaml:"forced,omitempty"`
	Detour      bool            `json:"detour,omitempty" yaml:"detour,omitempty"`
}

// NewReport summarises r. With full unset only crossing segments are kept
// and the trunk and waypoint lists are dropped.
func NewReport(r *route.Route, full bool) Report {
	rep := Report{
		ID:        r.ID,
		RawStart:  r.RawStart,
		RawEnd:    r.RawEnd,
		Start:     r.Start,
		End:       r.End,
		Crossings: r.Crossings,
		TrunkLen:  r.Trunk.Len(),
		ElapsedMS: float64(r.Elapsed.Microseconds()) / 1000,
	}
	if full {
		rep.Trunk = r.Trunk
		rep.Waypoints = r.Waypoints
	}
	for _, s := range r.Segments {
		if !full && s.Crossings() == 0 {
			continue
		}
		rep.Segments = append(rep.Segments, SegmentReport{
			From:        s.From,
			To:          s.To,
			SidewalkLen: s.Sidewalk.Len(),
			DirectLen:   s.Direct.Len(),
			Forced:      s.Forced,
			Detour:      s.Detour,
		})
	}

	return rep
}

// FormatFromPath picks the report format from a file extension.
func FormatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}

	return "", fmt.Errorf("%w: %q", ErrFormat, filepath.Ext(path))
}

// WriteReport encodes v (a Report or a slice of them) to w.
func WriteReport(w io.Writer, format string, v any) error {
	switch strings.ToLower(format) {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML, "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrFormat, format)
	}
}
