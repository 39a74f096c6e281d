package graph

import "github.com/matzehuels/scholarnet/pkg/coauthor"

// Graph is the JSON form of a co-authorship graph, used for --format json,
// the /graph.json endpoint, and cached builds.
type Graph struct {
	Primary string `json:"primary" bson:"primary"`
	Nodes   []Node `json:"nodes" bson:"nodes"`
	Edges   []Edge `json:"edges" bson:"edges"`
}

// Node is one author.
type Node struct {
	ID         string `json:"id" bson:"id"`
	Label      string `json:"label" bson:"label"`
	PaperCount int    `json:"paper_count" bson:"paper_count"`
	Primary    bool   `json:"primary,omitempty" bson:"primary,omitempty"`
	Size       int    `json:"size" bson:"size"`
	Color      string `json:"color" bson:"color"`
	Tooltip    string `json:"tooltip" bson:"tooltip"`
}

// Edge is one co-author pair, Source < Target.
type Edge struct {
	Source string `json:"source" bson:"source"`
	Target string `json:"target" bson:"target"`
	Weight int    `json:"weight" bson:"weight"`
	Color  string `json:"color" bson:"color"`
}

// FromCoauthor converts a built graph. Order is preserved: nodes by name,
// edges by (source, target). Nodes and Edges are never nil.
func FromCoauthor(g *coauthor.Graph) Graph {
	out := Graph{
		Primary: g.Primary(),
		Nodes:   make([]Node, 0, g.NodeCount()),
		Edges:   make([]Edge, 0, g.EdgeCount()),
	}
	for _, n := range g.Nodes() {
		out.Nodes = append(out.Nodes, Node{
			ID:         n.Name,
			Label:      n.Label,
			PaperCount: n.PaperCount,
			Primary:    n.IsPrimary,
			Size:       n.Size,
			Color:      n.Color,
			Tooltip:    n.Tooltip,
		})
	}
	for _, e := range g.Edges() {
		out.Edges = append(out.Edges, Edge{
			Source: e.Source,
			Target: e.Target,
			Weight: e.Weight,
			Color:  e.Color,
		})
	}
	return out
}
