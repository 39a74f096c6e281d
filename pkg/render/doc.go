// Package render turns co-authorship graphs into files.
//
// # Overview
//
//   - [network]: the interactive HTML page (vis-network, physics layout)
//   - [nodelink]: static Graphviz diagrams (DOT, SVG, PNG, PDF)
//
// JSON output lives in the graph package since it is a serialization, not a
// drawing.
//
// # Format Conversion
//
// [ToPDF] and [ToPNG] convert any SVG using the external rsvg-convert tool
// (from librsvg):
//
//	svg, err := nodelink.RenderSVG(ctx, dot)
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0) // 2x scale
//
// [network]: github.com/matzehuels/scholarnet/pkg/render/network
// [nodelink]: github.com/matzehuels/scholarnet/pkg/render/nodelink
package render
