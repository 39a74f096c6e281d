package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/scholarnet/pkg/coauthor"
	"github.com/matzehuels/scholarnet/pkg/render"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed labels nodes with full names instead of initials.
	Detailed bool
	// BgColor is the canvas color; empty means transparent.
	BgColor string
	// FontColor colors node labels; empty means black.
	FontColor string
}

// ToDOT converts a co-authorship graph to undirected Graphviz DOT. Nodes are
// filled with their node color and sized by paper count; edges take their
// edge color and thicken with weight up to ten shared papers.
func ToDOT(g *coauthor.Graph, opts Options) string {
	bg := opts.BgColor
	if bg == "" {
		bg = "transparent"
	}
	font := opts.FontColor
	if font == "" {
		font = "black"
	}

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	fmt.Fprintf(&buf, "  bgcolor=%q;\n", bg)
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  splines=true;\n")
	fmt.Fprintf(&buf, "  node [shape=circle, style=filled, fontcolor=%q, fontsize=12];\n", font)
	buf.WriteString("\n")

	for _, n := range g.Nodes() {
		fmt.Fprintf(&buf, "  %q [%s];\n", n.Name, strings.Join(nodeAttrs(n, opts.Detailed), ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %q -- %q [%s];\n", e.Source, e.Target, strings.Join(edgeAttrs(e), ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeAttrs(n coauthor.Node, detailed bool) []string {
	label := n.Label
	if detailed {
		label = n.Name
	}
	return []string{
		fmt.Sprintf("label=%q", label),
		fmt.Sprintf("tooltip=%q", n.Tooltip),
		fmt.Sprintf("fillcolor=%q", n.Color),
		fmt.Sprintf("width=%.2f", float64(n.Size)/24),
	}
}

func edgeAttrs(e coauthor.Edge) []string {
	return []string{
		fmt.Sprintf("color=%q", e.Color),
		fmt.Sprintf("penwidth=%.1f", penWidth(e.Weight)),
		fmt.Sprintf("weight=%d", e.Weight),
		fmt.Sprintf("tooltip=%q", fmt.Sprintf("%s - %s: %d", e.Source, e.Target, e.Weight)),
	}
}

func penWidth(weight int) float64 {
	return 1 + 0.5*float64(min(max(weight, 1), 10)-1)
}

// RenderSVG lays out a DOT graph with neato and renders it to SVG.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root tag so the SVG scales from its viewBox
// instead of Graphviz's point-based width and height.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(ctx, svg, scale)
}
