// Package pkg provides the core libraries for peermap, the AWS VPC peering
// visualizer.
//
// # Overview
//
// peermap turns AWS Config exports of VPC peering connections into a network
// diagram where every VPC is a node colored by its owning account and every
// peering connection is an arrow from requester to accepter.
//
// # Architecture
//
// The data flow through peermap:
//
//	AWS Config peering export
//	         ↓
//	    [peering] package (load and validate records)
//	         ↓
//	    [filter] package (account and region selection)
//	         ↓
//	    [graph] package (VPC nodes, peering edges)
//	         ↓
//	    [names] package (VPC Name tags, account names)
//	         ↓
//	    [render/style] package (labels, tooltips, account colors)
//	         ↓
//	    HTML / JSON / DOT / SVG output
//
// [pipeline] runs all stages in order and is what the CLI calls.
//
// # Quick Start
//
//	records, _ := peering.Load("vpc_peering_data.json")
//	records = filter.Apply(records, filter.Criteria{Regions: []string{"us-east-1"}})
//
//	g, _ := graph.Build(records)
//	m, _ := names.Resolve("vpc_data.json", "account_data.json", logger)
//
//	view := style.Decorate(g, m)
//	html, _ := network.Render(view, network.Options{})
//
// # Supporting Packages
//
//   - [config]: TOML config file with defaults for every CLI flag
//   - [errors]: Coded errors shared by all packages
//   - [io]: JSON export of rendered reports
//   - [buildinfo]: Version information set at build time
//
// [peering]: github.com/matzehuels/peermap/pkg/peering
// [filter]: github.com/matzehuels/peermap/pkg/filter
// [graph]: github.com/matzehuels/peermap/pkg/graph
// [names]: github.com/matzehuels/peermap/pkg/names
// [render/style]: github.com/matzehuels/peermap/pkg/render/style
// [pipeline]: github.com/matzehuels/peermap/pkg/pipeline
// [config]: github.com/matzehuels/peermap/pkg/config
// [errors]: github.com/matzehuels/peermap/pkg/errors
// [io]: github.com/matzehuels/peermap/pkg/io
// [buildinfo]: github.com/matzehuels/peermap/pkg/buildinfo
package pkg
