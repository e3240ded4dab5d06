package graph

import (
	"fmt"

	"github.com/matzehuels/peermap/pkg/peering"
)

// Build converts peering records into a Graph in a single pass.
//
// For each record the requester and accepter nodes are looked up or created
// (account and region come from whichever record mentions the VPC first),
// then a requester -> accepter edge carrying the connection id is added.
// Self-peerings and repeated connections between the same pair are kept.
//
// Build only fails on records with an empty VPC id; [peering.Read] never
// produces those.
func Build(records []peering.Record) (*Graph, error) {
	g := New(nil)
	for _, r := range records {
		if err := addRecord(g, r); err != nil {
			return nil, fmt.Errorf("connection %s: %w", r.ConnectionID, err)
		}
	}
	return g, nil
}

func addRecord(g *Graph, r peering.Record) error {
	if _, _, err := g.EnsureNode(vpcNode(r.RequesterVPCID, r.RequesterAccountID, r.RequesterRegion)); err != nil {
		return fmt.Errorf("requester: %w", err)
	}
	if _, _, err := g.EnsureNode(vpcNode(r.AccepterVPCID, r.AccepterAccountID, r.AccepterRegion)); err != nil {
		return fmt.Errorf("accepter: %w", err)
	}
	return g.AddEdge(Edge{
		From: r.RequesterVPCID,
		To:   r.AccepterVPCID,
		Meta: Metadata{MetaConnectionID: r.ConnectionID},
	})
}

func vpcNode(id, account, region string) Node {
	return Node{ID: id, Meta: Metadata{MetaAccountID: account, MetaRegion: region}}
}
