// Package style turns a peering graph into a render-ready [View].
//
// All presentation decisions live here so every sink (HTML, DOT/SVG, JSON)
// shows the same labels, tooltips and colors:
//
//   - one palette color per account id, assigned over the sorted account ids
//   - node label: the VPC's Name tag, or the first 8 characters of its id
//   - node tooltip: account id, account name, region, VPC id and name
//   - edge label: the first 8 characters of the connection id, drawn gray
package style

import (
	"fmt"

	"github.com/matzehuels/peermap/pkg/graph"
	"github.com/matzehuels/peermap/pkg/names"
)

const (
	// LabelLength is how many characters of a raw id are shown as a label.
	LabelLength = 8

	// EdgeColor is the color of every peering edge.
	EdgeColor = "gray"
)

// Node is a styled VPC.
type Node struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Title       string `json:"title"`
	Color       string `json:"color"`
	Group       string `json:"group"`
	AccountID   string `json:"account_id"`
	AccountName string `json:"account_name"`
	Region      string `json:"region,omitempty"`
	Name        string `json:"name,omitempty"`
}

// Edge is a styled peering connection.
type Edge struct {
	ID           string `json:"id"`
	From         string `json:"from"`
	To           string `json:"to"`
	Label        string `json:"label"`
	Title        string `json:"title"`
	Color        string `json:"color"`
	ConnectionID string `json:"connection_id"`
}

// LegendEntry pairs an account with its color.
type LegendEntry struct {
	AccountID   string `json:"account_id"`
	AccountName string `json:"account_name"`
	Color       string `json:"color"`
}

// View is the sink-neutral rendering of a graph. Nodes and edges keep the
// graph's insertion order; the legend is sorted by account id.
type View struct {
	Nodes  []Node        `json:"nodes"`
	Edges  []Edge        `json:"edges"`
	Legend []LegendEntry `json:"legend"`
}

// Option configures [Decorate].
type Option func(*decorator)

type decorator struct {
	palette Palette
}

// WithPalette overrides the default [Tab20] palette.
func WithPalette(p Palette) Option {
	return func(d *decorator) {
		if len(p) > 0 {
			d.palette = p
		}
	}
}

// Decorate assigns labels, tooltips and colors to every node and edge of g.
// Names missing from m fall back to raw identifiers.
func Decorate(g *graph.Graph, m names.Maps, opts ...Option) View {
	d := decorator{palette: Tab20}
	for _, opt := range opts {
		opt(&d)
	}

	accounts := g.AccountIDs()
	colors := d.palette.Assign(accounts)

	v := View{
		Nodes:  make([]Node, 0, g.NodeCount()),
		Edges:  make([]Edge, 0, g.EdgeCount()),
		Legend: make([]LegendEntry, 0, len(accounts)),
	}
	for _, a := range accounts {
		v.Legend = append(v.Legend, LegendEntry{AccountID: a, AccountName: m.AccountName(a), Color: colors[a]})
	}
	for _, n := range g.Nodes() {
		v.Nodes = append(v.Nodes, decorateNode(n, m, colors))
	}
	for i, e := range g.Edges() {
		v.Edges = append(v.Edges, decorateEdge(i, e))
	}
	return v
}

func decorateNode(n *graph.Node, m names.Maps, colors map[string]string) Node {
	account := n.AccountID()
	out := Node{
		ID:          n.ID,
		Label:       Truncate(n.ID, LabelLength),
		Color:       colors[account],
		Group:       account,
		AccountID:   account,
		AccountName: m.AccountName(account),
		Region:      n.Region(),
	}

	if name, ok := m.VPCName(n.ID); ok {
		out.Name = name
		out.Label = name
	}
	out.Title = nodeTitle(out)
	return out
}

func nodeTitle(n Node) string {
	title := fmt.Sprintf("Account ID: %s Account Name: %s Region: %s VPC ID: %s",
		n.AccountID, n.AccountName, n.Region, n.ID)
	if n.Name != "" {
		title += " VPC Name: " + n.Name
	}
	return title
}

func decorateEdge(i int, e graph.Edge) Edge {
	id := e.ConnectionID()
	return Edge{
		// Parallel connections between the same VPCs need distinct ids.
		ID:           fmt.Sprintf("%d:%s", i, id),
		From:         e.From,
		To:           e.To,
		Label:        Truncate(id, LabelLength),
		Title:        "Connection ID: " + id,
		Color:        EdgeColor,
		ConnectionID: id,
	}
}

// Truncate returns the first n runes of s.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
