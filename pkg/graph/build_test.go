package graph

import (
	"fmt"
	"testing"

	"github.com/matzehuels/peermap/pkg/peering"
)

func record(id, from, fromAcct, to, toAcct string) peering.Record {
	return peering.Record{
		ConnectionID:       id,
		AccountID:          fromAcct,
		RequesterVPCID:     from,
		RequesterAccountID: fromAcct,
		RequesterRegion:    "us-east-1",
		AccepterVPCID:      to,
		AccepterAccountID:  toAcct,
		AccepterRegion:     "us-west-2",
	}
}

func TestBuildDistinctVPCs(t *testing.T) {
	for _, n := range []int{0, 1, 5, 50} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			var records []peering.Record
			for i := range n {
				records = append(records, record(
					fmt.Sprintf("pcx-%d", i),
					fmt.Sprintf("vpc-req-%d", i), "111",
					fmt.Sprintf("vpc-acc-%d", i), "222",
				))
			}

			g, err := Build(records)
			if err != nil {
				t.Fatalf("Build() error: %v", err)
			}
			if g.NodeCount() != 2*n {
				t.Errorf("NodeCount() = %d, want %d", g.NodeCount(), 2*n)
			}
			if g.EdgeCount() != n {
				t.Errorf("EdgeCount() = %d, want %d", g.EdgeCount(), n)
			}
		})
	}
}

func TestBuildSharedVPC(t *testing.T) {
	records := []peering.Record{
		record("pcx-1", "vpc-hub", "111", "vpc-a", "222"),
		record("pcx-2", "vpc-b", "333", "vpc-hub", "999"),
	}

	g, err := Build(records)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if g.NodeCount() != 3 {
		t.Errorf("NodeCount() = %d, want 3", g.NodeCount())
	}

	hub, ok := g.Node("vpc-hub")
	if !ok {
		t.Fatal("vpc-hub missing")
	}
	// First record names the hub as requester in account 111.
	if hub.AccountID() != "111" || hub.Region() != "us-east-1" {
		t.Errorf("hub attributes = %q/%q, want first-seen 111/us-east-1", hub.AccountID(), hub.Region())
	}
}

func TestBuildReferentialIntegrity(t *testing.T) {
	records := []peering.Record{
		record("pcx-1", "vpc-a", "1", "vpc-b", "2"),
		record("pcx-2", "vpc-b", "2", "vpc-c", "3"),
		record("pcx-3", "vpc-c", "3", "vpc-a", "1"),
		record("pcx-4", "vpc-d", "4", "vpc-d", "4"),
	}

	g, err := Build(records)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if err := g.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
	for _, e := range g.Edges() {
		if _, ok := g.Node(e.From); !ok {
			t.Errorf("edge source %s missing", e.From)
		}
		if _, ok := g.Node(e.To); !ok {
			t.Errorf("edge target %s missing", e.To)
		}
	}
}

func TestBuildSelfLoopAndParallelEdges(t *testing.T) {
	records := []peering.Record{
		record("pcx-self", "vpc-a", "1", "vpc-a", "1"),
		record("pcx-1", "vpc-a", "1", "vpc-b", "2"),
		record("pcx-2", "vpc-a", "1", "vpc-b", "2"),
	}

	g, err := Build(records)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if g.NodeCount() != 2 {
		t.Errorf("NodeCount() = %d, want 2", g.NodeCount())
	}
	if g.EdgeCount() != 3 {
		t.Fatalf("EdgeCount() = %d, want 3", g.EdgeCount())
	}

	edges := g.Edges()
	if edges[0].From != "vpc-a" || edges[0].To != "vpc-a" {
		t.Errorf("self loop not preserved: %+v", edges[0])
	}
	if edges[1].ConnectionID() != "pcx-1" || edges[2].ConnectionID() != "pcx-2" {
		t.Errorf("parallel edges = %s, %s", edges[1].ConnectionID(), edges[2].ConnectionID())
	}
}

func TestBuildEmptyVPCID(t *testing.T) {
	_, err := Build([]peering.Record{{ConnectionID: "pcx-bad", AccepterVPCID: "vpc-b"}})
	if err == nil {
		t.Fatal("Build() expected error for empty requester VPC id")
	}
}
