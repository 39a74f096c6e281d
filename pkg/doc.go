// Package pkg provides the core libraries for scholarnet co-authorship
// network visualization.
//
// # Overview
//
// scholarnet looks up a researcher on DBLP, counts the papers they share with
// each co-author, and renders the result as a network where node size follows
// paper count and edge color follows the number of joint papers. The pkg
// directory is organized into these areas:
//
//  1. [coauthor] - Domain logic (identity resolution, graph construction, styling)
//  2. [integrations] - HTTP clients for bibliography services (DBLP)
//  3. [cache] - Response and artifact caching (file, Redis, MongoDB)
//  4. [render] - Visualization (interactive HTML, Graphviz diagrams)
//  5. [pipeline] - Orchestration (resolve → fetch → build → render)
//  6. [graph] - JSON serialization of co-authorship graphs
//
// # Architecture
//
// The typical data flow through scholarnet:
//
//	Author name or profile URL
//	         ↓
//	    [coauthor.Resolver] (search page → profile URL)
//	         ↓
//	    [integrations/dblp] (profile page → author records)
//	         ↓
//	    [coauthor.Build] (records → weighted co-authorship graph)
//	         ↓
//	    [render/network], [render/nodelink], [graph]
//	         ↓
//	    HTML/SVG/PNG/PDF/DOT/JSON output
//
// # Quick Start
//
//	import (
//	    "context"
//	    "time"
//
//	    "github.com/matzehuels/scholarnet/pkg/cache"
//	    "github.com/matzehuels/scholarnet/pkg/coauthor"
//	    "github.com/matzehuels/scholarnet/pkg/integrations/dblp"
//	    "github.com/matzehuels/scholarnet/pkg/render/network"
//	)
//
//	client := dblp.NewClient(cache.NewNullCache(), 24*time.Hour, dblp.DefaultBaseURL)
//
//	// 1. Resolve the query to a profile
//	locator, _ := coauthor.NewResolver(client).Resolve(ctx, "Zeshan Khan")
//
//	// 2. Fetch author records
//	profile, _ := client.FetchProfile(ctx, locator, false)
//
//	// 3. Build the graph
//	g := coauthor.Build(profile.PrimaryAuthor, profile.Records)
//
//	// 4. Render the interactive page
//	page, _ := network.Render(g, network.DefaultOptions())
//
// [pipeline.Runner] wraps these steps with caching, hooks, and multi-format
// output.
//
// # Supporting Packages
//
// [analysis] - Network statistics: density, top co-authors, and communities
// detected with Louvain modularity.
//
// [builds] - Stored builds for the HTTP server, kept in memory or on disk.
//
// [errors] - Coded errors and input validation shared by the CLI and server.
//
// [httputil] - Retry with exponential backoff.
//
// [observability] - Hooks for pipeline, cache, and HTTP events.
//
// [buildinfo] - Version information injected at build time.
//
// [coauthor]: https://pkg.go.dev/github.com/matzehuels/scholarnet/pkg/coauthor
// [integrations]: https://pkg.go.dev/github.com/matzehuels/scholarnet/pkg/integrations
// [cache]: https://pkg.go.dev/github.com/matzehuels/scholarnet/pkg/cache
// [render]: https://pkg.go.dev/github.com/matzehuels/scholarnet/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/scholarnet/pkg/pipeline
// [pipeline.Runner]: https://pkg.go.dev/github.com/matzehuels/scholarnet/pkg/pipeline#Runner
// [graph]: https://pkg.go.dev/github.com/matzehuels/scholarnet/pkg/graph
// [analysis]: https://pkg.go.dev/github.com/matzehuels/scholarnet/pkg/analysis
// [builds]: https://pkg.go.dev/github.com/matzehuels/scholarnet/pkg/builds
// [errors]: https://pkg.go.dev/github.com/matzehuels/scholarnet/pkg/errors
// [httputil]: https://pkg.go.dev/github.com/matzehuels/scholarnet/pkg/httputil
// [observability]: https://pkg.go.dev/github.com/matzehuels/scholarnet/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/scholarnet/pkg/buildinfo
//
// [coauthor.Resolver]: https://pkg.go.dev/github.com/matzehuels/scholarnet/pkg/coauthor#Resolver
// [coauthor.Build]: https://pkg.go.dev/github.com/matzehuels/scholarnet/pkg/coauthor#Build
// [integrations/dblp]: https://pkg.go.dev/github.com/matzehuels/scholarnet/pkg/integrations/dblp
// [render/network]: https://pkg.go.dev/github.com/matzehuels/scholarnet/pkg/render/network
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/scholarnet/pkg/render/nodelink
package pkg
