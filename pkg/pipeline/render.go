package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/scholarnet/pkg/coauthor"
	"github.com/matzehuels/scholarnet/pkg/graph"
	"github.com/matzehuels/scholarnet/pkg/render/network"
	"github.com/matzehuels/scholarnet/pkg/render/nodelink"
)

// RenderFormat renders g in a single format.
func RenderFormat(ctx context.Context, g *coauthor.Graph, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatHTML:
		return network.Render(g, opts.NetworkOptions())
	case FormatJSON:
		return graph.Marshal(g)
	}

	dot := nodelink.ToDOT(g, opts.NodelinkOptions())
	switch format {
	case FormatDOT:
		return []byte(dot), nil
	case FormatSVG:
		return nodelink.RenderSVG(ctx, dot)
	case FormatPNG:
		return nodelink.RenderPNG(ctx, dot, opts.PNGScale)
	case FormatPDF:
		return nodelink.RenderPDF(ctx, dot)
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
