package nodelink

import (
	"strings"
	"testing"

	"github.com/matzehuels/scholarnet/pkg/coauthor"
)

func sample() *coauthor.Graph {
	return coauthor.Build("Ada Lovelace", []coauthor.Record{
		{"Ada Lovelace", "Charles Babbage"},
		{"Ada Lovelace", "Charles Babbage", "Mary Somerville"},
	})
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(sample(), Options{})

	for _, want := range []string{
		"graph G {",
		`bgcolor="transparent"`,
		`"Ada Lovelace" [label="AL"`,
		`fillcolor="red"`,
		`fillcolor="#1f78b4"`,
		`"Ada Lovelace" -- "Charles Babbage" [color="#788dbb", penwidth=1.5, weight=2`,
		`"Ada Lovelace" -- "Mary Somerville" [color="#8199cb", penwidth=1.0, weight=1`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
	if strings.Contains(dot, "->") {
		t.Error("DOT should be undirected")
	}
}

func TestToDOTOptions(t *testing.T) {
	dot := ToDOT(sample(), Options{Detailed: true, BgColor: "#ECE9E9", FontColor: "#636060"})
	for _, want := range []string{
		`bgcolor="#ECE9E9"`,
		`fontcolor="#636060"`,
		`label="Mary Somerville"`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q", want)
		}
	}
}

func TestToDOTEscapesNames(t *testing.T) {
	g := coauthor.Build("x", []coauthor.Record{{`Jo "JJ" Smith`, "B"}})
	dot := ToDOT(g, Options{})
	if !strings.Contains(dot, `"Jo \"JJ\" Smith"`) {
		t.Errorf("quotes not escaped:\n%s", dot)
	}
}

func TestToDOTEmpty(t *testing.T) {
	dot := ToDOT(coauthor.Build("x", nil), Options{})
	if !strings.HasPrefix(dot, "graph G {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("empty DOT malformed:\n%s", dot)
	}
}

func TestPenWidth(t *testing.T) {
	tests := []struct {
		weight int
		want   float64
	}{
		{1, 1},
		{2, 1.5},
		{10, 5.5},
		{40, 5.5},
		{0, 1},
	}
	for _, tt := range tests {
		if got := penWidth(tt.weight); got != tt.want {
			t.Errorf("penWidth(%d) = %v, want %v", tt.weight, got, tt.want)
		}
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(in))
	if !strings.Contains(out, `viewBox="0 0 100.00 50.00" width="100" height="50"`) {
		t.Errorf("normalizeViewBox() = %s", out)
	}
	if got := normalizeViewBox([]byte("<svg></svg>")); string(got) != "<svg></svg>" {
		t.Errorf("no viewBox should be unchanged: %s", got)
	}
}
