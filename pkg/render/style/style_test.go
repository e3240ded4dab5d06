package style

import (
	"fmt"
	"strings"
	"testing"

	"github.com/matzehuels/peermap/pkg/graph"
	"github.com/matzehuels/peermap/pkg/names"
	"github.com/matzehuels/peermap/pkg/peering"
)

func sampleGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.Build([]peering.Record{{
		ConnectionID:       "pcx-0123456789",
		AccountID:          "111",
		RequesterVPCID:     "vpc-aaaa1111",
		RequesterAccountID: "111",
		RequesterRegion:    "us-east-1",
		AccepterVPCID:      "vpc-bbbb2222",
		AccepterAccountID:  "222",
		AccepterRegion:     "us-west-2",
	}})
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func nodeByID(v View, id string) Node {
	for _, n := range v.Nodes {
		if n.ID == id {
			return n
		}
	}
	return Node{}
}

func TestDecorateLabels(t *testing.T) {
	m := names.Maps{VPCs: map[string]string{"vpc-aaaa1111": "prod-vpc"}}
	v := Decorate(sampleGraph(t), m)

	if got := nodeByID(v, "vpc-aaaa1111").Label; got != "prod-vpc" {
		t.Errorf("named label = %q, want prod-vpc", got)
	}
	if got := nodeByID(v, "vpc-bbbb2222").Label; got != "vpc-bbbb" {
		t.Errorf("fallback label = %q, want vpc-bbbb", got)
	}
}

func TestDecorateLeavesGraphUntouched(t *testing.T) {
	g := sampleGraph(t)
	Decorate(g, names.Maps{VPCs: map[string]string{"vpc-bbbb2222": "shared"}})

	for _, n := range g.Nodes() {
		if _, ok := n.Meta["name"]; ok {
			t.Errorf("node %s metadata gained a name", n.ID)
		}
	}
}

func TestDecorateTooltips(t *testing.T) {
	m := names.Maps{
		VPCs:     map[string]string{"vpc-aaaa1111": "prod-vpc"},
		Accounts: map[string]string{"111": "production"},
	}
	v := Decorate(sampleGraph(t), m)

	named := nodeByID(v, "vpc-aaaa1111").Title
	want := "Account ID: 111 Account Name: production Region: us-east-1 VPC ID: vpc-aaaa1111 VPC Name: prod-vpc"
	if named != want {
		t.Errorf("title = %q\nwant    %q", named, want)
	}

	unnamed := nodeByID(v, "vpc-bbbb2222").Title
	want = "Account ID: 222 Account Name: Unknown Region: us-west-2 VPC ID: vpc-bbbb2222"
	if unnamed != want {
		t.Errorf("title = %q\nwant    %q", unnamed, want)
	}
}

func TestDecorateEdges(t *testing.T) {
	v := Decorate(sampleGraph(t), names.Maps{})
	if len(v.Edges) != 1 {
		t.Fatalf("edges = %d, want 1", len(v.Edges))
	}
	e := v.Edges[0]
	if e.Label != "pcx-0123" {
		t.Errorf("edge label = %q, want pcx-0123", e.Label)
	}
	if e.Title != "Connection ID: pcx-0123456789" {
		t.Errorf("edge title = %q", e.Title)
	}
	if e.Color != EdgeColor {
		t.Errorf("edge color = %q, want %q", e.Color, EdgeColor)
	}
	if e.From != "vpc-aaaa1111" || e.To != "vpc-bbbb2222" {
		t.Errorf("edge direction = %s -> %s", e.From, e.To)
	}
}

func TestDecorateParallelEdgeIDsDistinct(t *testing.T) {
	g := graph.New(nil)
	_ = g.AddNode(graph.Node{ID: "a"})
	_ = g.AddNode(graph.Node{ID: "b"})
	_ = g.AddEdge(graph.Edge{From: "a", To: "b", Meta: graph.Metadata{graph.MetaConnectionID: "pcx-1"}})
	_ = g.AddEdge(graph.Edge{From: "a", To: "b", Meta: graph.Metadata{graph.MetaConnectionID: "pcx-1"}})

	v := Decorate(g, names.Maps{})
	if v.Edges[0].ID == v.Edges[1].ID {
		t.Errorf("edge ids collide: %q", v.Edges[0].ID)
	}
}

func TestDecorateColorsPerAccount(t *testing.T) {
	v := Decorate(sampleGraph(t), names.Maps{})

	a, b := nodeByID(v, "vpc-aaaa1111"), nodeByID(v, "vpc-bbbb2222")
	if a.Color != Tab20[0] {
		t.Errorf("account 111 color = %q, want %q", a.Color, Tab20[0])
	}
	if b.Color != Tab20[1] {
		t.Errorf("account 222 color = %q, want %q", b.Color, Tab20[1])
	}
	if len(v.Legend) != 2 || v.Legend[0].AccountID != "111" || v.Legend[0].AccountName != names.UnknownAccount {
		t.Errorf("legend = %+v", v.Legend)
	}
}

func TestDecorateColorsDeterministic(t *testing.T) {
	build := func(order []string) View {
		g := graph.New(nil)
		for _, acct := range order {
			_ = g.AddNode(graph.Node{ID: "vpc-" + acct, Meta: graph.Metadata{graph.MetaAccountID: acct}})
		}
		return Decorate(g, names.Maps{})
	}

	v1 := build([]string{"333", "111", "222"})
	v2 := build([]string{"222", "333", "111"})
	for _, id := range []string{"vpc-111", "vpc-222", "vpc-333"} {
		if nodeByID(v1, id).Color != nodeByID(v2, id).Color {
			t.Errorf("%s color differs across input orders", id)
		}
	}
}

func TestDecorateWithPalette(t *testing.T) {
	v := Decorate(sampleGraph(t), names.Maps{}, WithPalette(Palette{"red"}))
	for _, n := range v.Nodes {
		if n.Color != "red" {
			t.Errorf("%s color = %q, want red", n.ID, n.Color)
		}
	}

	v = Decorate(sampleGraph(t), names.Maps{}, WithPalette(nil))
	if v.Nodes[0].Color != Tab20[0] {
		t.Error("empty palette option should keep the default")
	}
}

func TestPaletteWraps(t *testing.T) {
	var accounts []string
	for i := range 22 {
		accounts = append(accounts, fmt.Sprintf("%03d", i))
	}
	colors := Tab20.Assign(accounts)

	if colors["000"] != colors["020"] {
		t.Errorf("21st account = %q, want wrap to %q", colors["020"], colors["000"])
	}
	if colors["001"] != colors["021"] {
		t.Errorf("22nd account = %q, want wrap to %q", colors["021"], colors["001"])
	}
	if colors["000"] == colors["001"] {
		t.Error("first two accounts share a color")
	}
}

func TestPaletteAssignDedupes(t *testing.T) {
	colors := Tab20.Assign([]string{"b", "a", "b"})
	if len(colors) != 2 || colors["a"] != Tab20[0] || colors["b"] != Tab20[1] {
		t.Errorf("Assign() = %v", colors)
	}
	if (Palette{}).Color(3) != "" {
		t.Error("empty palette should return empty color")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"vpc-aaaa1111", "vpc-aaaa"},
		{"vpc-1", "vpc-1"},
		{"", ""},
		{"exactly8", "exactly8"},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, LabelLength); got != tt.want {
			t.Errorf("Truncate(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
	if !strings.HasPrefix("vpc-aaaa1111", Truncate("vpc-aaaa1111", 4)) {
		t.Error("Truncate() should return a prefix")
	}
}
