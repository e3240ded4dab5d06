package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/peermap/pkg/render/style"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds the region and account name under each label.
	// When false, only the label is shown.
	Detailed bool
	// LeftToRight lays the graph out horizontally instead of top-to-bottom.
	LeftToRight bool
}

// ToDOT converts a styled view to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG].
//
// Nodes are filled with their account color and carry the styled tooltip;
// edges are labelled with the shortened connection id.
func ToDOT(v style.View, opts Options) string {
	rankdir := "TB"
	if opts.LeftToRight {
		rankdir = "LR"
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	fmt.Fprintf(&buf, "  rankdir=%s;\n", rankdir)
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=ellipse, style=filled, fontsize=14, fontname=\"Helvetica\"];\n")
	fmt.Fprintf(&buf, "  edge [color=%q, fontsize=10, fontname=\"Helvetica\"];\n", style.EdgeColor)
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("\n")

	for _, n := range v.Nodes {
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(fmtAttrs(n, opts.Detailed), ", "))
	}

	buf.WriteString("\n")
	for _, e := range v.Edges {
		fmt.Fprintf(&buf, "  %q -> %q [label=%q, tooltip=%q];\n", e.From, e.To, e.Label, e.Title)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(n style.Node, detailed bool) string {
	if !detailed {
		return n.Label
	}

	parts := []string{n.Label}
	if n.Region != "" {
		parts = append(parts, n.Region)
	}
	if n.AccountID != "" {
		parts = append(parts, fmt.Sprintf("%s (%s)", n.AccountID, n.AccountName))
	}
	return strings.Join(parts, "\n")
}

func fmtAttrs(n style.Node, detailed bool) []string {
	attrs := []string{
		fmt.Sprintf("label=%q", fmtLabel(n, detailed)),
		fmt.Sprintf("tooltip=%q", n.Title),
	}
	if n.Color != "" {
		attrs = append(attrs, fmt.Sprintf("fillcolor=%q", n.Color))
	} else {
		attrs = append(attrs, "fillcolor=white")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
