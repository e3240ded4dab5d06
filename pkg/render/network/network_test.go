package network

import (
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/peermap/pkg/render/style"
)

func sampleView() style.View {
	return style.View{
		Nodes: []style.Node{
			{ID: "vpc-aaaa1111", Label: "prod-vpc", Title: "Account ID: 111", Color: "#1f77b4", AccountID: "111", AccountName: "production", Region: "us-east-1"},
			{ID: "vpc-bbbb2222", Label: "vpc-bbbb", Title: "Account ID: 222", Color: "#aec7e8", AccountID: "222", AccountName: "Unknown", Region: "us-west-2"},
			{ID: "vpc-cccc3333", Label: "vpc-cccc", Color: "#aec7e8", AccountID: "222", Region: "us-west-2"},
		},
		Edges: []style.Edge{
			{ID: "0:pcx-1", From: "vpc-aaaa1111", To: "vpc-bbbb2222", Label: "pcx-1", Title: "Connection ID: pcx-1", Color: "gray"},
		},
		Legend: []style.LegendEntry{
			{AccountID: "111", AccountName: "production", Color: "#1f77b4"},
			{AccountID: "222", AccountName: "Unknown", Color: "#aec7e8"},
		},
	}
}

func TestRender(t *testing.T) {
	out, err := Render(sampleView(), Options{
		ReportID:    "report-123",
		Version:     "v1.2.3",
		GeneratedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		Filters:     []string{"accounts: 111"},
	})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	html := string(out)

	checks := []string{
		"<!DOCTYPE html>",
		"<title>VPC Peering Connections</title>",
		visNetworkURL,
		`"id":"vpc-aaaa1111"`,
		`"label":"prod-vpc"`,
		`"from":"vpc-aaaa1111"`,
		`"title":"Connection ID: pcx-1"`,
		"height: 1300px",
		`id="select-node"`,
		`id="filter-account"`,
		`filter: ["physics"]`,
		"report-123",
		"2024-01-02T03:04:05Z",
		"3 VPCs",
		"1 peering connections",
		"accounts: 111",
	}
	for _, want := range checks {
		if !strings.Contains(html, want) {
			t.Errorf("Render() output missing %q", want)
		}
	}
}

func TestRenderRegionsDistinct(t *testing.T) {
	out, err := Render(sampleView(), Options{})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if n := strings.Count(string(out), `<option value="us-west-2">`); n != 1 {
		t.Errorf("us-west-2 option appears %d times, want 1", n)
	}
}

func TestRenderCustomOptions(t *testing.T) {
	out, err := Render(sampleView(), Options{Title: "Prod peering", Height: "800px"})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	html := string(out)
	if !strings.Contains(html, "<title>Prod peering</title>") {
		t.Error("custom title missing")
	}
	if !strings.Contains(html, "height: 800px") {
		t.Error("custom height missing")
	}
}

func TestRenderEscapesTitle(t *testing.T) {
	out, err := Render(style.View{}, Options{Title: "<script>alert(1)</script>"})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if strings.Contains(string(out), "<script>alert(1)</script>") {
		t.Error("title was not escaped")
	}
}

func TestRenderEscapesNodeJSON(t *testing.T) {
	v := style.View{Nodes: []style.Node{{ID: "vpc-1", Label: "</script><b>x</b>"}}}
	out, err := Render(v, Options{})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if strings.Contains(string(out), "</script><b>x</b>") {
		t.Error("node label broke out of the script element")
	}
}

func TestRenderEmptyView(t *testing.T) {
	out, err := Render(style.View{}, Options{})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	compact := strings.ReplaceAll(string(out), " ", "")
	if !strings.Contains(compact, "newvis.DataSet([])") {
		t.Error("empty view should render empty datasets")
	}
}
