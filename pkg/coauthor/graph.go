package coauthor

import (
	"slices"
	"strings"
)

// Node is one author in a co-authorship graph.
type Node struct {
	Name       string // Display name, the node's identity
	Label      string // Initials shown on the node
	PaperCount int    // Records listing this author
	IsPrimary  bool   // Name equals the graph's primary author
	Size       int    // 10 + 2*PaperCount
	Color      string
	Tooltip    string
}

// Edge connects two authors who share at least one record. Source sorts
// before Target.
type Edge struct {
	Source string
	Target string
	Weight int // Records shared by both authors
	Color  string
}

type pair struct{ a, b string }

func makePair(x, y string) pair {
	if y < x {
		x, y = y, x
	}
	return pair{x, y}
}

// Graph is an undirected weighted co-authorship graph. It is not modified
// after [Build] returns; accessors hand out copies.
type Graph struct {
	primary string
	nodes   []Node
	edges   []Edge
	byName  map[string]int
	byPair  map[pair]int
}

// Build folds records into a co-authorship graph centered on primary.
//
// Records with no authors are skipped. A name listed twice in one record is
// counted once for that record and never pairs with itself. Every distinct
// pair within a record adds one to that pair's weight.
func Build(primary string, records []Record) *Graph {
	papers := make(map[string]int)
	shared := make(map[pair]int)

	for _, rec := range records {
		if len(rec) == 0 {
			continue
		}
		authors := distinct(rec)
		for _, a := range authors {
			papers[a]++
		}
		for i := 0; i < len(authors); i++ {
			for j := i + 1; j < len(authors); j++ {
				shared[makePair(authors[i], authors[j])]++
			}
		}
	}

	g := &Graph{
		primary: primary,
		nodes:   make([]Node, 0, len(papers)),
		edges:   make([]Edge, 0, len(shared)),
		byName:  make(map[string]int, len(papers)),
		byPair:  make(map[pair]int, len(shared)),
	}

	for name, count := range papers {
		isPrimary := name == primary
		g.nodes = append(g.nodes, Node{
			Name:       name,
			Label:      Initials(name),
			PaperCount: count,
			IsPrimary:  isPrimary,
			Size:       NodeSize(count),
			Color:      nodeColor(isPrimary),
			Tooltip:    nodeTooltip(name, primary, count, isPrimary),
		})
	}
	slices.SortFunc(g.nodes, func(x, y Node) int { return strings.Compare(x.Name, y.Name) })
	for i, n := range g.nodes {
		g.byName[n.Name] = i
	}

	for p, w := range shared {
		g.edges = append(g.edges, Edge{Source: p.a, Target: p.b, Weight: w, Color: EdgeColor(w)})
	}
	slices.SortFunc(g.edges, func(x, y Edge) int {
		if c := strings.Compare(x.Source, y.Source); c != 0 {
			return c
		}
		return strings.Compare(x.Target, y.Target)
	})
	for i, e := range g.edges {
		g.byPair[pair{e.Source, e.Target}] = i
	}

	return g
}

// distinct returns rec's names in first-seen order without repeats.
func distinct(rec Record) []string {
	seen := make(map[string]struct{}, len(rec))
	out := make([]string, 0, len(rec))
	for _, name := range rec {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

// Primary returns the name the graph was built around.
func (g *Graph) Primary() string { return g.primary }

// NodeCount returns the number of authors.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of co-author pairs.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Nodes returns all nodes sorted by name.
func (g *Graph) Nodes() []Node { return slices.Clone(g.nodes) }

// Edges returns all edges sorted by source, then target.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// Node looks up an author by exact name.
func (g *Graph) Node(name string) (Node, bool) {
	i, ok := g.byName[name]
	if !ok {
		return Node{}, false
	}
	return g.nodes[i], true
}

// Edge looks up the edge between a and b in either order.
func (g *Graph) Edge(a, b string) (Edge, bool) {
	i, ok := g.byPair[makePair(a, b)]
	if !ok {
		return Edge{}, false
	}
	return g.edges[i], true
}

// PrimaryNode returns the node whose name equals the primary author, if the
// primary appears in any record.
func (g *Graph) PrimaryNode() (Node, bool) {
	n, ok := g.Node(g.primary)
	if !ok || !n.IsPrimary {
		return Node{}, false
	}
	return n, true
}

// Neighbors returns the names adjacent to name, sorted.
func (g *Graph) Neighbors(name string) []string {
	var out []string
	for _, e := range g.edges {
		switch name {
		case e.Source:
			out = append(out, e.Target)
		case e.Target:
			out = append(out, e.Source)
		}
	}
	slices.Sort(out)
	return out
}

// TotalWeight returns the sum of all edge weights.
func (g *Graph) TotalWeight() int {
	total := 0
	for _, e := range g.edges {
		total += e.Weight
	}
	return total
}
