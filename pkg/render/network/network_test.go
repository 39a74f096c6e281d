package network

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

func TestRender(t *testing.T) {
	out, err := Render(sample(), Options{})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	page := string(out)

	for _, want := range []string{
		"<!DOCTYPE html>",
		VisNetworkURL,
		"height: 700px",
		"width: 100%",
		"background-color: #ECE9E9",
		`"id":"Ada Lovelace"`,
		`"label":"AL"`,
		`"title":"Ada Lovelace\nTotal Papers: 2"`,
		`"title":"Mary Somerville\nCo-authored with Ada Lovelace: 1"`,
		`"color":"red"`,
		`"size":14`,
		`"from":"Ada Lovelace","to":"Charles Babbage","value":2,"weight":2,"color":"#788dbb"`,
		`"physics":{"enabled":true,"stabilization":{"enabled":true,"iterations":500},"barnesHut":{"springLength":200,"springConstant":0.02,"damping":0.3}}`,
		`"font":{"color":"#636060"}`,
		"3 authors, 3 collaborations",
	} {
		if !strings.Contains(page, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestRenderOptions(t *testing.T) {
	out, err := Render(sample(), Options{Height: "900px", Width: "80%", BgColor: "#ffffff", FontColor: "#000000", Title: "Custom"})
	if err != nil {
		t.Fatal(err)
	}
	page := string(out)
	for _, want := range []string{"height: 900px", "width: 80%", "background-color: #ffffff", `"font":{"color":"#000000"}`, "<title>Custom</title>"} {
		if !strings.Contains(page, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestRenderEscapesNames(t *testing.T) {
	g := coauthor.Build("x", []coauthor.Record{{"</script><b>", "B"}})
	out, err := Render(g, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(out), "</script><b>") {
		t.Error("author name not escaped inside script")
	}
}

func TestRenderEmptyGraph(t *testing.T) {
	out, err := Render(coauthor.Build("Nobody", nil), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), "0 authors, 0 collaborations") {
		t.Error("empty graph summary missing")
	}
}

func TestRenderNil(t *testing.T) {
	if _, err := Render(nil, Options{}); err == nil {
		t.Error("Render(nil) should fail")
	}
}

func TestWithDefaults(t *testing.T) {
	got := Options{Height: "500px"}.WithDefaults()
	want := Options{Height: "500px", Width: "100%", BgColor: "#ECE9E9", FontColor: "#636060"}
	if got != want {
		t.Errorf("WithDefaults() = %+v, want %+v", got, want)
	}
}
