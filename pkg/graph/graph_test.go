package graph

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/matzehuels/scholarnet/pkg/coauthor"
)

func sample() *coauthor.Graph {
	return coauthor.Build("A", []coauthor.Record{{"A", "B"}, {"A", "B", "C"}, {"B", "C"}})
}

func TestFromCoauthor(t *testing.T) {
	g := FromCoauthor(sample())
	if g.Primary != "A" {
		t.Errorf("Primary = %q", g.Primary)
	}
	if len(g.Nodes) != 3 || len(g.Edges) != 3 {
		t.Fatalf("got %d nodes, %d edges", len(g.Nodes), len(g.Edges))
	}
	a := g.Nodes[0]
	if a.ID != "A" || !a.Primary || a.PaperCount != 2 || a.Size != 14 || a.Color != "red" {
		t.Errorf("node A = %+v", a)
	}
	bc := g.Edges[2]
	if bc.Source != "B" || bc.Target != "C" || bc.Weight != 2 {
		t.Errorf("edge B-C = %+v", bc)
	}
}

func TestFromCoauthorEmpty(t *testing.T) {
	data, err := Marshal(coauthor.Build("A", nil))
	if err != nil {
		t.Fatal(err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatal(err)
	}
	if nodes, ok := raw["nodes"].([]any); !ok || len(nodes) != 0 {
		t.Errorf("nodes = %v, want []", raw["nodes"])
	}
	if edges, ok := raw["edges"].([]any); !ok || len(edges) != 0 {
		t.Errorf("edges = %v, want []", raw["edges"])
	}
}

func TestMarshalDeterministic(t *testing.T) {
	a, _ := Marshal(sample())
	b, _ := Marshal(coauthor.Build("A", []coauthor.Record{{"B", "C"}, {"C", "B", "A"}, {"B", "A"}}))
	if !bytes.Equal(a, b) {
		t.Errorf("equal graphs serialized differently:\n%s\n%s", a, b)
	}
}

func TestWriteFileReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.json")
	if err := WriteFile(sample(), path); err != nil {
		t.Fatal(err)
	}
	g, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if g.Primary != "A" || len(g.Nodes) != 3 || len(g.Edges) != 3 {
		t.Errorf("read back %+v", g)
	}
}

func TestReadInvalid(t *testing.T) {
	if _, err := Read(bytes.NewReader([]byte("{"))); err == nil {
		t.Error("Read() should fail on truncated JSON")
	}
	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("ReadFile() should fail on missing file")
	}
}
