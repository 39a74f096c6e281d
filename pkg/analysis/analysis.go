// Package analysis computes summary statistics for co-authorship graphs.
//
// Community detection uses gonum's Louvain implementation over a weighted
// undirected graph whose edge weights are shared-paper counts. The random
// source is seeded with a fixed value so repeated runs on the same graph
// report the same partition.
package analysis

import (
	"cmp"
	"math/rand/v2"
	"slices"

	"gonum.org/v1/gonum/graph/community"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/matzehuels/scholarnet/pkg/coauthor"
)

// Resolution is the modularity resolution used for community detection.
const Resolution = 1.0

const seed = 0x5eed

// Coauthor is one entry in a ranking of the primary author's collaborators.
type Coauthor struct {
	Name   string `json:"name"`
	Papers int    `json:"papers"`
}

// Summary holds statistics for one graph.
type Summary struct {
	Primary        string     `json:"primary"`
	Authors        int        `json:"authors"`
	Collaborations int        `json:"collaborations"`
	PrimaryPapers  int        `json:"primary_papers"`
	SharedPapers   int        `json:"shared_papers"`
	Density        float64    `json:"density"`
	TopCoauthors   []Coauthor `json:"top_coauthors"`
	Communities    [][]string `json:"communities,omitempty"`
	Modularity     float64    `json:"modularity"`
}

// Summarize computes statistics for g. At most top co-authors are listed;
// top <= 0 lists all of them. Communities are only computed when g has at
// least one edge.
func Summarize(g *coauthor.Graph, top int) Summary {
	s := Summary{
		Primary:        g.Primary(),
		Authors:        g.NodeCount(),
		Collaborations: g.EdgeCount(),
		SharedPapers:   g.TotalWeight(),
		TopCoauthors:   topCoauthors(g, top),
	}
	if n, ok := g.PrimaryNode(); ok {
		s.PrimaryPapers = n.PaperCount
	}
	if n := s.Authors; n > 1 {
		s.Density = float64(2*s.Collaborations) / float64(n*(n-1))
	}
	if s.Collaborations > 0 {
		s.Communities, s.Modularity = communities(g)
	}
	return s
}

func topCoauthors(g *coauthor.Graph, top int) []Coauthor {
	primary := g.Primary()
	var out []Coauthor
	for _, name := range g.Neighbors(primary) {
		e, _ := g.Edge(primary, name)
		out = append(out, Coauthor{Name: name, Papers: e.Weight})
	}
	slices.SortStableFunc(out, func(a, b Coauthor) int {
		if c := cmp.Compare(b.Papers, a.Papers); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	if top > 0 && len(out) > top {
		out = out[:top]
	}
	return out
}

// toGonum maps node names to dense ids in g's node order.
func toGonum(g *coauthor.Graph) (*simple.WeightedUndirectedGraph, []string) {
	nodes := g.Nodes()
	names := make([]string, len(nodes))
	ids := make(map[string]int64, len(nodes))
	wg := simple.NewWeightedUndirectedGraph(0, 0)
	for i, n := range nodes {
		names[i] = n.Name
		ids[n.Name] = int64(i)
		wg.AddNode(simple.Node(int64(i)))
	}
	for _, e := range g.Edges() {
		wg.SetWeightedEdge(simple.WeightedEdge{
			F: simple.Node(ids[e.Source]),
			T: simple.Node(ids[e.Target]),
			W: float64(e.Weight),
		})
	}
	return wg, names
}

func communities(g *coauthor.Graph) ([][]string, float64) {
	wg, names := toGonum(g)
	reduced := community.Modularize(wg, Resolution, rand.NewPCG(seed, seed))
	parts := reduced.Communities()

	out := make([][]string, 0, len(parts))
	for _, part := range parts {
		if len(part) == 0 {
			continue
		}
		members := make([]string, len(part))
		for i, n := range part {
			members[i] = names[n.ID()]
		}
		slices.Sort(members)
		out = append(out, members)
	}
	slices.SortFunc(out, func(a, b []string) int {
		if c := cmp.Compare(len(b), len(a)); c != 0 {
			return c
		}
		return cmp.Compare(a[0], b[0])
	})
	return out, community.Q(wg, parts, Resolution)
}

// CommunityOf returns the index into s.Communities containing name, or -1.
func (s Summary) CommunityOf(name string) int {
	for i, c := range s.Communities {
		if _, ok := slices.BinarySearch(c, name); ok {
			return i
		}
	}
	return -1
}
