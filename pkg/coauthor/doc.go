// Package coauthor builds weighted co-authorship graphs and resolves author
// names to profile locators.
//
// # Overview
//
// A researcher's publication list is a sequence of [Record] values, each the
// ordered author list of one paper. [Build] folds those records into a
// [Graph]: one [Node] per distinct author name and one [Edge] per pair of
// authors who share at least one record. Edge weight is the number of
// records the pair shares; node paper count is the number of records the
// author appears in.
//
//	g := coauthor.Build("Ada Lovelace", []coauthor.Record{
//	    {"Ada Lovelace", "Charles Babbage"},
//	})
//	fmt.Println(g.NodeCount(), g.EdgeCount()) // 2 1
//
// # Styling
//
// Nodes and edges carry derived presentation attributes so renderers never
// recompute them: node size grows with paper count, the primary author is
// colored [PrimaryColor] and everyone else [DefaultColor], and edge colors
// darken from [BaseEdgeColor] as weight approaches ten shared papers (see
// [EdgeColor]).
//
// # Identity
//
// Names are compared as exact strings. Two people with the same display name
// collapse into one node and different spellings of one person stay apart.
//
// # Resolution
//
// [Resolver] maps free text to a profile locator. Input that already is an
// http(s) URL passes through untouched; anything else is handed to a
// [Searcher] and the first profile link wins. A miss yields a
// [*NotFoundError] that matches [ErrNotFound].
package coauthor
