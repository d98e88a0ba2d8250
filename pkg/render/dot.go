// Package render exports diagram graphs to Graphviz DOT and renders them to
// SVG or PNG. Every stencil shape type maps onto a native Graphviz node
// shape, so exported diagrams keep their visual vocabulary.
package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/diagramlab/stencil/pkg/diagram"
)

// Options configures DOT export.
type Options struct {
	// Detailed includes position, size, and port count in node labels.
	// When false, only the node's text attribute (or ID) is shown.
	Detailed bool
}

// dotShapes maps stencil shape types onto Graphviz node shapes.
var dotShapes = map[diagram.ShapeType]string{
	diagram.ShapeRectangle:     "box",
	diagram.ShapeOval:          "ellipse",
	diagram.ShapeDiamond:       "diamond",
	diagram.ShapeParallelogram: "parallelogram",
	diagram.ShapeHexagon:       "hexagon",
	diagram.ShapeCylinder:      "cylinder",
	diagram.ShapeText:          "plaintext",
}

// ToDOT converts a graph to Graphviz DOT format.
// The resulting DOT string can be rendered with [RenderSVG] or [RenderPNG].
func ToDOT(g *diagram.Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [style=filled, fillcolor=white, fontsize=14];\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes() {
		attrs := fmtAttrs(n, opts.Detailed)
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		if e.Label != "" {
			fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", e.SourceNode, e.TargetNode, e.Label)
		} else {
			fmt.Fprintf(&buf, "  %q -> %q;\n", e.SourceNode, e.TargetNode)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtAttrs(n *diagram.Node, detailed bool) []string {
	attrs := []string{fmt.Sprintf("label=%q", fmtLabel(n, detailed))}
	if shape, ok := dotShapes[n.Type]; ok {
		attrs = append(attrs, fmt.Sprintf("shape=%s", shape))
	}
	return attrs
}

func fmtLabel(n *diagram.Node, detailed bool) string {
	label := n.ID
	if text, ok := n.Attrs["text"].(string); ok && text != "" {
		label = text
	}
	if !detailed {
		return label
	}

	parts := []string{
		fmt.Sprintf("at: (%g, %g)", n.Position.X, n.Position.Y),
		fmt.Sprintf("size: %gx%g", n.Size.Width, n.Size.Height),
		fmt.Sprintf("ports: %d", len(n.Ports)),
	}
	return label + "\n" + strings.Join(parts, "\n")
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.PNG)
}

func renderFormat(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
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
