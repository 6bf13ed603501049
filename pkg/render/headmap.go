// Package render draws 2D head maps of projected electrode positions.
//
// Electrodes are emitted as pinned-position Graphviz nodes (neato layout
// with pos="x,y!") inside a schematic head outline, then rendered to SVG
// or PNG via Graphviz.
package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/neurolab/eegpos/pkg/montage"
)

// scale converts unit-sphere projection coordinates to layout inches.
const scale = 3.0

// Options configures head map generation.
type Options struct {
	// ShowNames labels each electrode with its name. When false only
	// markers are drawn.
	ShowNames bool

	// Sensors draws filled electrode markers instead of open circles.
	Sensors bool
}

// ToDOT converts a projected electrode table to Graphviz DOT for neato.
// Every electrode becomes a node pinned at its projected position; the
// head outline and nose are pinned shapes around the unit circle. Render
// the result with [SVG] or [PNG].
func ToDOT(flat []montage.FlatPoint, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph headmap {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"white\";\n")
	buf.WriteString("  outputorder=edgesfirst;\n")
	buf.WriteString("\n")

	// Head rim on the unit circle, nose tip above the front.
	fmt.Fprintf(&buf, "  head [shape=circle, width=%.2f, fixedsize=true, label=\"\", color=black, penwidth=2, pos=\"0,0!\"];\n", 2*scale)
	fmt.Fprintf(&buf, "  nose [shape=triangle, width=0.5, height=0.35, fixedsize=true, label=\"\", color=black, pos=\"0,%.2f!\"];\n", scale*1.05)
	buf.WriteString("\n")

	style := "shape=circle, width=0.12, fixedsize=true, color=black, fillcolor=white, style=filled"
	if opts.Sensors {
		style = "shape=point, width=0.08, color=black"
	}
	fmt.Fprintf(&buf, "  node [%s, fontsize=10];\n", style)
	buf.WriteString("\n")

	for _, fp := range flat {
		attrs := []string{fmt.Sprintf("pos=\"%.4f,%.4f!\"", fp.X*scale, fp.Y*scale)}
		if opts.ShowNames {
			attrs = append(attrs, fmt.Sprintf("xlabel=%q", fp.Label))
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", fp.Label, strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

// SVG renders a DOT head map to SVG bytes using Graphviz.
func SVG(ctx context.Context, dot string) ([]byte, error) {
	return renderFormat(ctx, dot, graphviz.SVG)
}

// PNG renders a DOT head map to PNG bytes using Graphviz.
func PNG(ctx context.Context, dot string) ([]byte, error) {
	return renderFormat(ctx, dot, graphviz.PNG)
}

func renderFormat(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
