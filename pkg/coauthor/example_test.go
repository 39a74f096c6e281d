package coauthor_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/matzehuels/scholarnet/pkg/coauthor"
)

func ExampleBuild() {
	g := coauthor.Build("A", []coauthor.Record{
		{"A", "B"},
		{"A", "B", "C"},
		{"B", "C"},
	})
	for _, n := range g.Nodes() {
		fmt.Println(n.Name, n.PaperCount, n.IsPrimary)
	}
	for _, e := range g.Edges() {
		fmt.Println(e.Source, e.Target, e.Weight)
	}
	// Output:
	// A 2 true
	// B 3 false
	// C 2 false
	// A B 2
	// A C 1
	// B C 2
}

func ExampleEdgeColor() {
	fmt.Println(coauthor.EdgeColor(1))
	fmt.Println(coauthor.EdgeColor(10))
	// Output:
	// #8199cb
	// #2a3141
}

func ExampleResolver_Resolve() {
	search := coauthor.SearcherFunc(func(_ context.Context, name string) (*coauthor.SearchResult, error) {
		if name != "Ada Lovelace" {
			return &coauthor.SearchResult{}, nil
		}
		return &coauthor.SearchResult{
			AuthorEntries: []string{"https://dblp.org/pid/00/1.html"},
		}, nil
	})
	r := coauthor.NewResolver(search)

	loc, _ := r.Resolve(context.Background(), "Ada Lovelace")
	fmt.Println(loc)

	_, err := r.Resolve(context.Background(), "Nobody")
	fmt.Println(errors.Is(err, coauthor.ErrNotFound))
	// Output:
	// https://dblp.org/pid/00/1.html
	// true
}
