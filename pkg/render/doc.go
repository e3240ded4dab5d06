// Package render groups the peering report renderers.
//
// # Overview
//
// Rendering happens in two steps. The [style] subpackage turns a peering
// graph into a sink-neutral view: every node gets a label, tooltip and
// account color, every edge a label and tooltip. Sinks then draw that view:
//
//   - [network]: interactive HTML page built on vis-network
//   - [nodelink]: Graphviz DOT and SVG diagrams
//
// All sinks share the same view, so a VPC has the same label and color in
// every output format of one run.
//
//	view := style.Decorate(g, names)
//	html, err := network.Render(view, network.Options{Title: "Prod"})
//	svg, err := nodelink.RenderSVG(nodelink.ToDOT(view, nodelink.Options{}))
//
// [style]: github.com/matzehuels/peermap/pkg/render/style
// [network]: github.com/matzehuels/peermap/pkg/render/network
// [nodelink]: github.com/matzehuels/peermap/pkg/render/nodelink
package render
