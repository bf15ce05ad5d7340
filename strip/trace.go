package strip

import (
	"io"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
)

// TraceRow is one segment of one frame in a CSV trace.
type TraceRow struct {
	Turn    int64  `csv:"turn"`
	Mode    string `csv:"mode"`
	Status  string `csv:"status"`
	Segment int    `csv:"segment"`
	Hue     int    `csv:"hue"`
	R       int    `csv:"r"`
	G       int    `csv:"g"`
	B       int    `csv:"b"`
}

// CSVRenderer writes every frame as CSV rows, one per segment. The header is
// written with the first frame.
type CSVRenderer struct {
	w             io.Writer
	headerWritten bool
}

// NewCSVRenderer returns a renderer writing to w.
func NewCSVRenderer(w io.Writer) *CSVRenderer {
	return &CSVRenderer{w: w}
}

// Render implements Renderer.
func (r *CSVRenderer) Render(f *Frame) error {
	rows := make([]*TraceRow, 0, len(f.Segments))
	for _, s := range f.Segments {
		rows = append(rows, &TraceRow{
			Turn:    f.Turn,
			Mode:    string(f.Mode),
			Status:  string(f.Status),
			Segment: int(s.ID),
			Hue:     int(s.Hue),
			R:       int(s.Color.R),
			G:       int(s.Color.G),
			B:       int(s.Color.B),
		})
	}

	if !r.headerWritten {
		if err := gocsv.Marshal(rows, r.w); err != nil {
			return errors.Wrap(err, "strip: writing trace")
		}
		r.headerWritten = true
		return nil
	}
	return errors.Wrap(gocsv.MarshalWithoutHeaders(rows, r.w), "strip: writing trace")
}
