package network

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"

	"github.com/matzehuels/scholarnet/pkg/coauthor"
)

//go:embed network.html.tmpl
var pageTemplate string

var compiledTemplate = template.Must(template.New("network").Parse(pageTemplate))

// VisNetworkURL is the vis-network bundle the page loads.
const VisNetworkURL = "https://unpkg.com/vis-network@9.1.9/standalone/umd/vis-network.min.js"

// Options configures the interactive page.
type Options struct {
	Height    string // CSS height of the canvas, e.g. "700px"
	Width     string // CSS width of the canvas, e.g. "100%"
	BgColor   string
	FontColor string
	Title     string // page title; defaults to the primary author
}

// DefaultOptions returns the collaboration-graph preset.
func DefaultOptions() Options {
	return Options{
		Height:    "700px",
		Width:     "100%",
		BgColor:   "#ECE9E9",
		FontColor: "#636060",
	}
}

// WithDefaults fills empty fields from [DefaultOptions].
func (o Options) WithDefaults() Options {
	d := DefaultOptions()
	if o.Height == "" {
		o.Height = d.Height
	}
	if o.Width == "" {
		o.Width = d.Width
	}
	if o.BgColor == "" {
		o.BgColor = d.BgColor
	}
	if o.FontColor == "" {
		o.FontColor = d.FontColor
	}
	return o
}

type visNode struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Title string `json:"title"`
	Size  int    `json:"size"`
	Color string `json:"color"`
}

type visEdge struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Value  int    `json:"value"`
	Weight int    `json:"weight"`
	Color  string `json:"color"`
	Title  string `json:"title"`
}

// Physics is the force-layout configuration embedded in the page.
type Physics struct {
	Enabled       bool          `json:"enabled"`
	Stabilization Stabilization `json:"stabilization"`
	BarnesHut     BarnesHut     `json:"barnesHut"`
}

// Stabilization controls the pre-render settling pass.
type Stabilization struct {
	Enabled    bool `json:"enabled"`
	Iterations int  `json:"iterations"`
}

// BarnesHut holds the solver parameters.
type BarnesHut struct {
	SpringLength   float64 `json:"springLength"`
	SpringConstant float64 `json:"springConstant"`
	Damping        float64 `json:"damping"`
}

// DefaultPhysics is tuned for collaboration graphs: long springs keep dense
// co-author clusters readable.
var DefaultPhysics = Physics{
	Enabled:       true,
	Stabilization: Stabilization{Enabled: true, Iterations: 500},
	BarnesHut:     BarnesHut{SpringLength: 200, SpringConstant: 0.02, Damping: 0.3},
}

type visOptions struct {
	Physics Physics `json:"physics"`
	Nodes   struct {
		Shape string `json:"shape"`
		Font  struct {
			Color string `json:"color"`
		} `json:"font"`
	} `json:"nodes"`
	Edges struct {
		Smooth bool `json:"smooth"`
	} `json:"edges"`
	Interaction struct {
		Hover bool `json:"hover"`
	} `json:"interaction"`
}

type pageData struct {
	Title     string
	ScriptURL string
	Height    string
	Width     string
	BgColor   string
	Nodes     []visNode
	Edges     []visEdge
	Options   visOptions
	Summary   string
}

// Render produces a self-contained HTML document showing g as an
// interactive force-directed network. Node and edge styling comes from the
// graph; opts only affect the canvas.
func Render(g *coauthor.Graph, opts Options) ([]byte, error) {
	if g == nil {
		return nil, fmt.Errorf("graph cannot be nil")
	}
	opts = opts.WithDefaults()

	data := pageData{
		Title:     opts.Title,
		ScriptURL: VisNetworkURL,
		Height:    opts.Height,
		Width:     opts.Width,
		BgColor:   opts.BgColor,
		Nodes:     make([]visNode, 0, g.NodeCount()),
		Edges:     make([]visEdge, 0, g.EdgeCount()),
		Summary:   fmt.Sprintf("%d authors, %d collaborations", g.NodeCount(), g.EdgeCount()),
	}
	if data.Title == "" {
		data.Title = g.Primary() + " - co-author network"
	}

	for _, n := range g.Nodes() {
		data.Nodes = append(data.Nodes, visNode{
			ID:    n.Name,
			Label: n.Label,
			Title: n.Tooltip,
			Size:  n.Size,
			Color: n.Color,
		})
	}
	for _, e := range g.Edges() {
		data.Edges = append(data.Edges, visEdge{
			From:   e.Source,
			To:     e.Target,
			Value:  e.Weight,
			Weight: e.Weight,
			Color:  e.Color,
			Title:  fmt.Sprintf("%s - %s: %d shared papers", e.Source, e.Target, e.Weight),
		})
	}

	data.Options.Physics = DefaultPhysics
	data.Options.Nodes.Shape = "dot"
	data.Options.Nodes.Font.Color = opts.FontColor
	data.Options.Interaction.Hover = true

	var buf bytes.Buffer
	if err := compiledTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
