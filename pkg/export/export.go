// Package export writes computed electrode tables to TSV and JSON.
//
// TSV output matches the conventional electrode file layout: a header row
// followed by one line per electrode with tab-separated label and
// coordinates at fixed decimal precision. JSON output carries the same
// table for programmatic consumers.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/neurolab/eegpos/pkg/montage"
)

// DefaultPrecision is the decimal precision used when none is configured.
const DefaultPrecision = 4

// Options configures table output.
type Options struct {
	// Precision is the number of decimal places, [DefaultPrecision] when 0.
	Precision int
}

func (o Options) precision() int {
	if o.Precision == 0 {
		return DefaultPrecision
	}
	return o.Precision
}

// formatCoord renders one coordinate at fixed precision. Undefined
// coordinates (NaN) render as "n/a".
func formatCoord(v float64, precision int) string {
	if math.IsNaN(v) {
		return "n/a"
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}

// WriteTSV writes the 3D electrode table to w: a header line, then one
// "label\tx\ty\tz" line per electrode in table order.
func WriteTSV(w io.Writer, sys *montage.System, opts Options) error {
	p := opts.precision()
	var b strings.Builder
	b.WriteString("label\tx\ty\tz\n")
	for _, np := range sys.Points() {
		b.WriteString(np.Label)
		b.WriteByte('\t')
		b.WriteString(formatCoord(np.Point.X, p))
		b.WriteByte('\t')
		b.WriteString(formatCoord(np.Point.Y, p))
		b.WriteByte('\t')
		b.WriteString(formatCoord(np.Point.Z, p))
		b.WriteByte('\n')
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write tsv: %w", err)
	}
	return nil
}

// WriteFlatTSV writes a projected 2D table to w as "label\tx\ty" lines.
func WriteFlatTSV(w io.Writer, flat []montage.FlatPoint, opts Options) error {
	p := opts.precision()
	var b strings.Builder
	b.WriteString("label\tx\ty\n")
	for _, fp := range flat {
		b.WriteString(fp.Label)
		b.WriteByte('\t')
		b.WriteString(formatCoord(fp.X, p))
		b.WriteByte('\t')
		b.WriteString(formatCoord(fp.Y, p))
		b.WriteByte('\n')
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write tsv: %w", err)
	}
	return nil
}

// jsonTable is the JSON wire format shared by 2D and 3D output.
type jsonTable struct {
	Density    string      `json:"density,omitempty"`
	Equator    string      `json:"equator,omitempty"`
	Dimensions int         `json:"dimensions"`
	Electrodes []jsonEntry `json:"electrodes"`
}

type jsonEntry struct {
	Label string    `json:"label"`
	Pos   []float64 `json:"pos"`
}

// roundTo keeps JSON payloads at the same precision as TSV output.
func roundTo(v float64, precision int) float64 {
	if math.IsNaN(v) {
		return v
	}
	scale := math.Pow(10, float64(precision))
	return math.Round(v*scale) / scale
}

// WriteJSON encodes the 3D electrode table as JSON and writes it to w.
func WriteJSON(w io.Writer, sys *montage.System, opts Options) error {
	p := opts.precision()
	out := jsonTable{
		Density:    string(sys.Density()),
		Equator:    string(sys.Equator()),
		Dimensions: 3,
		Electrodes: make([]jsonEntry, 0, sys.Len()),
	}
	for _, np := range sys.Points() {
		out.Electrodes = append(out.Electrodes, jsonEntry{
			Label: np.Label,
			Pos: []float64{
				roundTo(np.Point.X, p),
				roundTo(np.Point.Y, p),
				roundTo(np.Point.Z, p),
			},
		})
	}
	return encodeJSON(w, out)
}

// WriteFlatJSON encodes a projected 2D table as JSON and writes it to w.
func WriteFlatJSON(w io.Writer, flat []montage.FlatPoint, opts Options) error {
	p := opts.precision()
	out := jsonTable{
		Dimensions: 2,
		Electrodes: make([]jsonEntry, 0, len(flat)),
	}
	for _, fp := range flat {
		out.Electrodes = append(out.Electrodes, jsonEntry{
			Label: fp.Label,
			Pos:   []float64{roundTo(fp.X, p), roundTo(fp.Y, p)},
		})
	}
	return encodeJSON(w, out)
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportFile writes a table to a file at path in the given format ("tsv"
// or "json"). This is a convenience wrapper for file-based output.
func ExportFile(path, format string, sys *montage.System, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	switch strings.ToLower(format) {
	case "json":
		return WriteJSON(f, sys, opts)
	default:
		return WriteTSV(f, sys, opts)
	}
}
