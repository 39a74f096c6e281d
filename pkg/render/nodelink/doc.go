// Package nodelink renders co-authorship graphs as static Graphviz diagrams.
//
// # Usage
//
// Convert a graph to DOT, then render:
//
//	dot := nodelink.ToDOT(g, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//	pdf, err := nodelink.RenderPDF(ctx, dot)
//	png, err := nodelink.RenderPNG(ctx, dot, 2.0) // 2x scale
//
// The layout engine is neato (spring model), which suits undirected
// collaboration networks better than the layered dot engine.
//
// # DOT Format
//
// [ToDOT] emits an undirected graph. Node attributes come straight from the
// co-authorship graph: initials as label (full names with Detailed), the
// tooltip text, fill color, and a width scaled from node size. Edges carry
// their gradient color, a weight attribute, and a penwidth between 1 and
// 5.5 points.
//
// PDF and PNG need rsvg-convert from librsvg.
package nodelink
