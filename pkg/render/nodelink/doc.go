// Package nodelink renders peering graphs as static node-link diagrams.
//
// # Overview
//
// This package produces Graphviz diagrams of a styled view, where VPCs appear
// as ellipses filled with their account color and peering connections as
// gray arrows from requester to accepter. It is the static companion of the
// interactive HTML page, useful for embedding in documents and tickets.
//
// # Usage
//
//	dot := nodelink.ToDOT(view, nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(dot)
//
// # DOT Format
//
// The [ToDOT] function produces Graphviz DOT source that can be:
//
//   - Rendered directly via [RenderSVG]
//   - Saved and processed with external Graphviz tools
//
// Node and edge tooltips carry the same text as the HTML page, so SVG viewers
// that show <title> elements get the full identifiers on hover.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering; no Graphviz installation is required.
package nodelink
