// Package network renders a co-authorship graph as a single interactive
// HTML page.
//
// The page loads vis-network from a CDN and embeds nodes, edges, and a
// Barnes-Hut physics preset (spring length 200, spring constant 0.02,
// damping 0.3, 500 stabilization iterations). Hovering a node shows its
// tooltip; dragging rearranges the layout.
//
//	page, err := network.Render(g, network.DefaultOptions())
//	os.WriteFile("research_network.html", page, 0o644)
package network
