package coauthor

import (
	"math/rand/v2"
	"reflect"
	"slices"
	"testing"
)

func TestBuildReferenceExample(t *testing.T) {
	g := Build("A", []Record{{"A", "B"}, {"A", "B", "C"}, {"B", "C"}})

	wantNodes := map[string]struct {
		count   int
		primary bool
	}{
		"A": {2, true},
		"B": {3, false},
		"C": {2, false},
	}
	if g.NodeCount() != len(wantNodes) {
		t.Fatalf("NodeCount() = %d, want %d", g.NodeCount(), len(wantNodes))
	}
	for name, want := range wantNodes {
		n, ok := g.Node(name)
		if !ok {
			t.Fatalf("Node(%q) missing", name)
		}
		if n.PaperCount != want.count {
			t.Errorf("Node(%q).PaperCount = %d, want %d", name, n.PaperCount, want.count)
		}
		if n.IsPrimary != want.primary {
			t.Errorf("Node(%q).IsPrimary = %v, want %v", name, n.IsPrimary, want.primary)
		}
	}

	wantEdges := []struct {
		a, b   string
		weight int
	}{
		{"A", "B", 2},
		{"A", "C", 1},
		{"B", "C", 2},
	}
	if g.EdgeCount() != len(wantEdges) {
		t.Fatalf("EdgeCount() = %d, want %d", g.EdgeCount(), len(wantEdges))
	}
	for _, want := range wantEdges {
		e, ok := g.Edge(want.a, want.b)
		if !ok {
			t.Fatalf("Edge(%q, %q) missing", want.a, want.b)
		}
		if e.Weight != want.weight {
			t.Errorf("Edge(%q, %q).Weight = %d, want %d", want.a, want.b, e.Weight, want.weight)
		}
	}
}

func TestBuildEmpty(t *testing.T) {
	tests := []struct {
		name    string
		records []Record
	}{
		{"nil", nil},
		{"no records", []Record{}},
		{"only empty records", []Record{{}, nil, {}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Build("A", tt.records)
			if g.NodeCount() != 0 || g.EdgeCount() != 0 {
				t.Errorf("got %d nodes, %d edges, want empty", g.NodeCount(), g.EdgeCount())
			}
			if _, ok := g.PrimaryNode(); ok {
				t.Error("PrimaryNode() found in empty graph")
			}
		})
	}
}

func TestBuildSkipsEmptyRecords(t *testing.T) {
	g := Build("A", []Record{{}, {"A", "B"}, nil})
	if g.NodeCount() != 2 || g.EdgeCount() != 1 {
		t.Errorf("got %d nodes, %d edges, want 2 and 1", g.NodeCount(), g.EdgeCount())
	}
}

func TestBuildSingleAuthorRecord(t *testing.T) {
	g := Build("A", []Record{{"A"}, {"A"}})
	n, ok := g.Node("A")
	if !ok || n.PaperCount != 2 {
		t.Fatalf("Node(A) = %+v, %v", n, ok)
	}
	if g.EdgeCount() != 0 {
		t.Errorf("EdgeCount() = %d, want 0", g.EdgeCount())
	}
}

func TestBuildRepeatedNameCountsOncePerRecord(t *testing.T) {
	rec := Record{"A", "B", "A"}
	g := Build("A", []Record{rec})

	a, _ := g.Node("A")
	if a.PaperCount != 1 {
		t.Errorf("A.PaperCount = %d, want 1", a.PaperCount)
	}
	if _, ok := g.Edge("A", "A"); ok {
		t.Error("self-loop A-A present")
	}
	e, ok := g.Edge("A", "B")
	if !ok || e.Weight != 1 {
		t.Errorf("Edge(A, B) = %+v, %v, want weight 1", e, ok)
	}
	if !slices.Equal(rec, Record{"A", "B", "A"}) {
		t.Errorf("record mutated: %v", rec)
	}
}

func TestBuildPaperCountMatchesRecords(t *testing.T) {
	records := []Record{
		{"Ada", "Bob"},
		{"Bob", "Cy", "Dee"},
		{"Ada", "Dee"},
		{"Eve"},
		{"Ada", "Bob", "Cy", "Dee", "Eve"},
	}
	g := Build("Ada", records)

	for _, n := range g.Nodes() {
		want := 0
		for _, r := range records {
			if slices.Contains(r, n.Name) {
				want++
			}
		}
		if n.PaperCount != want {
			t.Errorf("%s.PaperCount = %d, want %d", n.Name, n.PaperCount, want)
		}
		if n.Size != 10+2*n.PaperCount {
			t.Errorf("%s.Size = %d, want %d", n.Name, n.Size, 10+2*n.PaperCount)
		}
	}

	for _, e := range g.Edges() {
		if e.Source >= e.Target {
			t.Errorf("edge %s-%s not canonical", e.Source, e.Target)
		}
		want := 0
		for _, r := range records {
			if slices.Contains(r, e.Source) && slices.Contains(r, e.Target) {
				want++
			}
		}
		if e.Weight != want {
			t.Errorf("%s-%s weight = %d, want %d", e.Source, e.Target, e.Weight, want)
		}
		if e.Color != EdgeColor(e.Weight) {
			t.Errorf("%s-%s color = %s, want %s", e.Source, e.Target, e.Color, EdgeColor(e.Weight))
		}
	}
	if got := g.TotalWeight(); got != 1+3+1+10 {
		t.Errorf("TotalWeight() = %d, want 15", got)
	}
}

func TestBuildPairOrderIndependent(t *testing.T) {
	g := Build("X", []Record{{"Zed", "Amy"}, {"Amy", "Zed"}})
	e1, ok1 := g.Edge("Zed", "Amy")
	e2, ok2 := g.Edge("Amy", "Zed")
	if !ok1 || !ok2 || e1 != e2 {
		t.Fatalf("Edge lookups differ: %+v %+v", e1, e2)
	}
	if e1.Source != "Amy" || e1.Target != "Zed" || e1.Weight != 2 {
		t.Errorf("edge = %+v", e1)
	}
}

// shuffled returns a copy of records with both the record order and the
// names inside each record permuted.
func shuffled(records []Record, seed uint64) []Record {
	rng := rand.New(rand.NewPCG(seed, seed))
	out := make([]Record, len(records))
	for i, r := range records {
		out[i] = slices.Clone(r)
		rng.Shuffle(len(out[i]), func(a, b int) { out[i][a], out[i][b] = out[i][b], out[i][a] })
	}
	rng.Shuffle(len(out), func(a, b int) { out[a], out[b] = out[b], out[a] })
	return out
}

func TestBuildRecordOrderIndependent(t *testing.T) {
	tests := []struct {
		name    string
		primary string
		records []Record
	}{
		{"reference", "A", []Record{{"A", "B"}, {"A", "B", "C"}, {"B", "C"}}},
		{"duplicates and empties", "A", []Record{{"A", "A", "B"}, {}, {"C"}, {"B", "C", "B"}, {"A", "C"}}},
		{"heavy pair", "Zeshan Khan", []Record{
			{"Zeshan Khan", "Ada Lovelace"}, {"Ada Lovelace", "Zeshan Khan", "Alan Turing"},
			{"Alan Turing", "Grace Hopper"}, {"Zeshan Khan", "Ada Lovelace"}, {"Grace Hopper"},
			{"Ada Lovelace", "Zeshan Khan"}, {"Zeshan Khan", "Grace Hopper", "Ada Lovelace"},
		}},
		{"primary absent", "Nobody", []Record{{"X", "Y"}, {"Y", "Z"}, {"Z", "X"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := Build(tt.primary, tt.records)

			again := Build(tt.primary, tt.records)
			if !reflect.DeepEqual(want.Nodes(), again.Nodes()) || !reflect.DeepEqual(want.Edges(), again.Edges()) {
				t.Fatal("building twice from the same records differs")
			}

			for seed := uint64(1); seed <= 20; seed++ {
				got := Build(tt.primary, shuffled(tt.records, seed))
				if !reflect.DeepEqual(want.Nodes(), got.Nodes()) {
					t.Errorf("seed %d: nodes differ\ngot  %+v\nwant %+v", seed, got.Nodes(), want.Nodes())
				}
				if !reflect.DeepEqual(want.Edges(), got.Edges()) {
					t.Errorf("seed %d: edges differ\ngot  %+v\nwant %+v", seed, got.Edges(), want.Edges())
				}
			}

			reversed := slices.Clone(tt.records)
			slices.Reverse(reversed)
			if got := Build(tt.primary, reversed); !reflect.DeepEqual(want.Edges(), got.Edges()) {
				t.Errorf("reversed records: edges differ")
			}
		})
	}
}

func TestBuildPrimaryAbsent(t *testing.T) {
	g := Build("Nobody", []Record{{"A", "B"}})
	for _, n := range g.Nodes() {
		if n.IsPrimary || n.Color != DefaultColor {
			t.Errorf("node %s marked primary", n.Name)
		}
	}
	if _, ok := g.PrimaryNode(); ok {
		t.Error("PrimaryNode() found")
	}
}

func TestBuildNodeStyling(t *testing.T) {
	g := Build("Zeshan Khan", []Record{{"Zeshan Khan", "Ada Lovelace"}, {"Zeshan Khan"}})

	primary, ok := g.PrimaryNode()
	if !ok {
		t.Fatal("PrimaryNode() missing")
	}
	if primary.Color != "red" {
		t.Errorf("primary color = %q", primary.Color)
	}
	if primary.Label != "ZK" {
		t.Errorf("primary label = %q", primary.Label)
	}
	if primary.Tooltip != "Zeshan Khan\nTotal Papers: 2" {
		t.Errorf("primary tooltip = %q", primary.Tooltip)
	}
	if primary.Size != 14 {
		t.Errorf("primary size = %d", primary.Size)
	}

	other, _ := g.Node("Ada Lovelace")
	if other.Color != "#1f78b4" {
		t.Errorf("other color = %q", other.Color)
	}
	if other.Tooltip != "Ada Lovelace\nCo-authored with Zeshan Khan: 1" {
		t.Errorf("other tooltip = %q", other.Tooltip)
	}
}

func TestGraphAccessorsReturnCopies(t *testing.T) {
	g := Build("A", []Record{{"A", "B"}})
	nodes := g.Nodes()
	nodes[0].Name = "mutated"
	edges := g.Edges()
	edges[0].Weight = 99

	if _, ok := g.Node("A"); !ok {
		t.Error("node lookup broken after mutating copy")
	}
	if e, _ := g.Edge("A", "B"); e.Weight != 1 {
		t.Errorf("edge weight = %d after mutating copy", e.Weight)
	}
	if g.Nodes()[0].Name != "A" {
		t.Error("Nodes() shares backing array")
	}
}

func TestGraphOrdering(t *testing.T) {
	g := Build("c", []Record{{"c", "b", "a"}, {"d", "a"}})
	var names []string
	for _, n := range g.Nodes() {
		names = append(names, n.Name)
	}
	if !slices.Equal(names, []string{"a", "b", "c", "d"}) {
		t.Errorf("node order = %v", names)
	}
	var pairs []string
	for _, e := range g.Edges() {
		pairs = append(pairs, e.Source+e.Target)
	}
	if !slices.Equal(pairs, []string{"ab", "ac", "ad", "bc"}) {
		t.Errorf("edge order = %v", pairs)
	}
	if got := g.Neighbors("a"); !slices.Equal(got, []string{"b", "c", "d"}) {
		t.Errorf("Neighbors(a) = %v", got)
	}
}
