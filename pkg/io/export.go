package io

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/matzehuels/peermap/pkg/render/style"
)

// Report is the JSON document written by [WriteJSON].
type Report struct {
	ID        string              `json:"id,omitempty"`
	Version   string              `json:"version,omitempty"`
	Generated *time.Time          `json:"generated,omitempty"`
	Filters   Filters             `json:"filters"`
	Nodes     []style.Node        `json:"nodes"`
	Edges     []style.Edge        `json:"edges"`
	Legend    []style.LegendEntry `json:"legend"`
}

// Filters records the account and region filters a report was produced with.
type Filters struct {
	Accounts []string `json:"accounts,omitempty"`
	Regions  []string `json:"regions,omitempty"`
}

// Meta describes the run that produced a view.
type Meta struct {
	ID        string
	Version   string
	Generated time.Time
	Filters   Filters
}

// NewReport combines a styled view with run metadata.
// Nil slices in the view become empty arrays in the output.
func NewReport(v style.View, m Meta) Report {
	r := Report{
		ID:      m.ID,
		Version: m.Version,
		Filters: m.Filters,
		Nodes:   v.Nodes,
		Edges:   v.Edges,
		Legend:  v.Legend,
	}
	if !m.Generated.IsZero() {
		t := m.Generated.UTC()
		r.Generated = &t
	}
	if r.Nodes == nil {
		r.Nodes = []style.Node{}
	}
	if r.Edges == nil {
		r.Edges = []style.Edge{}
	}
	if r.Legend == nil {
		r.Legend = []style.LegendEntry{}
	}
	return r
}

// WriteJSON encodes a styled view and its run metadata as JSON and writes it
// to w. The output decodes back into a [Report].
func WriteJSON(v style.View, m Meta, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewReport(v, m)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
