package automorphism

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
)

// graphvizPalette cycles through a small set of fill colors, one per
// partition cell, so distinct color classes are visually distinguishable
// regardless of how many cells the partition has.
var graphvizPalette = []string{
	"#a6cee3", "#b2df8a", "#fb9a99", "#fdbf6f", "#cab2d6",
	"#ffff99", "#1f78b4", "#33a02c", "#e31a1c", "#ff7f00",
}

// ToDOT renders the graph to Graphviz DOT: vertices grouped into subgraphs
// per partition cell and colored by cell index, edges drawn with
// arrowheads iff Directed() (or EffectivelyDirected()).
func (g *Graph) ToDOT() string {
	var buf bytes.Buffer
	kind := "graph"
	arrow := "--"
	if g.directed || g.effectivelyDirected {
		kind = "digraph"
		arrow = "->"
	}

	fmt.Fprintf(&buf, "%s G {\n", kind)
	buf.WriteString("  node [style=filled, shape=circle];\n\n")

	for cellIdx, cell := range g.partition {
		color := graphvizPalette[cellIdx%len(graphvizPalette)]
		fmt.Fprintf(&buf, "  subgraph cluster_%d {\n", cellIdx)
		fmt.Fprintf(&buf, "    style=dashed;\n    label=%q;\n", fmt.Sprintf("cell %d", cellIdx))
		for _, v := range cell {
			fmt.Fprintf(&buf, "    %d [fillcolor=%q];\n", v, color)
		}
		buf.WriteString("  }\n")
	}

	buf.WriteString("\n")
	for _, e := range g.edges {
		fmt.Fprintf(&buf, "  %d %s %d;\n", e.From, arrow, e.To)
	}
	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders the graph's DOT representation to SVG via
// goccy/go-graphviz, in-process (no external dot binary required).
func (g *Graph) RenderSVG() ([]byte, error) {
	dot := g.ToDOT()

	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	parsed, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer parsed.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, parsed, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
