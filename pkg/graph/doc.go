// Package graph models VPC peering as a directed multigraph.
//
// # Overview
//
// Nodes are VPCs keyed by vpc id; edges are peering connections pointing
// from the requester VPC to the accepter VPC. Unlike a dependency DAG,
// peering graphs routinely contain cycles, and the same pair of VPCs may be
// joined by more than one connection, so neither is rejected.
//
// # Building
//
// [Build] turns filtered [peering.Record] values into a graph:
//
//	records, _ := peering.Load("vpc_peering_data.json")
//	g, err := graph.Build(filter.Apply(records, criteria))
//
// Node creation is lookup-or-create ([Graph.EnsureNode]). A VPC mentioned by
// several records yields exactly one node, and the attributes from the first
// record win. Every edge's endpoints exist before the edge is added, and
// nothing is removed afterwards.
//
// # Metadata
//
// Nodes carry [MetaAccountID] and [MetaRegion]. Edges carry
// [MetaConnectionID]. Display names are not part of the graph; renderers
// look them up in the resolved name maps.
//
// [peering.Record]: github.com/matzehuels/peermap/pkg/peering.Record
package graph
