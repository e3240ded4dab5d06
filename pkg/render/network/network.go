// Package network renders a styled peering view as an interactive HTML page.
//
// # Overview
//
// The page is a single self-contained HTML document driving vis-network
// (loaded from a CDN). It offers:
//
//   - force-directed layout with a physics configuration panel
//   - a node select menu that focuses and highlights one VPC
//   - a filter menu that restricts the view to one account or region
//   - hover tooltips carrying the full identifiers and resolved names
//   - a legend mapping accounts to their colors
//
// # Usage
//
//	v := style.Decorate(g, maps)
//	page, err := network.Render(v, network.Options{Title: "VPC peering"})
//
// Styling (labels, colors, tooltips) is decided by the style package; this
// package only lays the view out as HTML.
package network

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"time"

	"github.com/matzehuels/peermap/pkg/render/style"
)

const (
	// DefaultTitle is the page title when none is configured.
	DefaultTitle = "VPC Peering Connections"

	// DefaultHeight is the canvas height (CSS length).
	DefaultHeight = "1300px"

	// DefaultWidth is the canvas width (CSS length).
	DefaultWidth = "100%"

	visNetworkURL = "https://unpkg.com/vis-network@9.1.9/standalone/umd/vis-network.min.js"
)

// Options configures the generated page. Zero values fall back to defaults.
type Options struct {
	Title       string
	Height      string
	Width       string
	ReportID    string    // shown in the footer, e.g. a UUID per run
	Version     string    // build version shown in the footer
	GeneratedAt time.Time // zero means "now"
	Filters     []string  // human-readable filter summary, e.g. "accounts: 111"
}

func (o *Options) setDefaults() {
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.Height == "" {
		o.Height = DefaultHeight
	}
	if o.Width == "" {
		o.Width = DefaultWidth
	}
	if o.GeneratedAt.IsZero() {
		o.GeneratedAt = time.Now()
	}
}

type pageData struct {
	Options
	Generated string
	ScriptURL string
	Nodes     template.JS
	Edges     template.JS
	Legend    []style.LegendEntry
	Regions   []string
	NodeCount int
	EdgeCount int
}

var page = template.Must(template.New("network").Parse(pageTemplate))

// Render produces the HTML page for v.
func Render(v style.View, opts Options) ([]byte, error) {
	opts.setDefaults()

	nodes, err := json.Marshal(nonNil(v.Nodes))
	if err != nil {
		return nil, fmt.Errorf("encode nodes: %w", err)
	}
	edges, err := json.Marshal(nonNil(v.Edges))
	if err != nil {
		return nil, fmt.Errorf("encode edges: %w", err)
	}

	data := pageData{
		Options:   opts,
		Generated: opts.GeneratedAt.UTC().Format(time.RFC3339),
		ScriptURL: visNetworkURL,
		Nodes:     template.JS(nodes),
		Edges:     template.JS(edges),
		Legend:    v.Legend,
		Regions:   regions(v),
		NodeCount: len(v.Nodes),
		EdgeCount: len(v.Edges),
	}

	var buf bytes.Buffer
	if err := page.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}
	return buf.Bytes(), nil
}

// regions returns the distinct non-empty node regions in first-seen order.
func regions(v style.View) []string {
	seen := make(map[string]bool)
	var out []string
	for _, n := range v.Nodes {
		if n.Region != "" && !seen[n.Region] {
			seen[n.Region] = true
			out = append(out, n.Region)
		}
	}
	return out
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
