// Package pipeline provides the core peering report pipeline for peermap.
//
// This package implements the complete load → filter → build → resolve →
// render pipeline. The CLI only collects options and writes the returned
// artifacts to disk, so all report semantics live here.
//
// # Architecture
//
// The pipeline consists of five stages:
//
//  1. Load: read the peering export into records
//  2. Filter: keep records matching the account and region filters
//  3. Build: turn the records into a directed graph of VPCs
//  4. Resolve: attach VPC and account names from the optional exports
//  5. Render: style the graph and produce output in each requested format
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    PeeringFile: "vpc_peering_data.json",
//	    Accounts:    []string{"111111111111"},
//	    Formats:     []string{"html", "json"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	html := result.Artifacts["html"]
package pipeline

import (
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/peermap/pkg/buildinfo"
	perrors "github.com/matzehuels/peermap/pkg/errors"
	"github.com/matzehuels/peermap/pkg/filter"
	"github.com/matzehuels/peermap/pkg/graph"
	"github.com/matzehuels/peermap/pkg/names"
	"github.com/matzehuels/peermap/pkg/render/style"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultPeeringFile is the peering connection export read by default.
	DefaultPeeringFile = "vpc_peering_data.json"

	// DefaultVPCFile is the VPC inventory export used for VPC names.
	DefaultVPCFile = "vpc_data.json"

	// DefaultAccountFile maps account ids to account names.
	DefaultAccountFile = "account_data.json"

	// DefaultOutput is the report file written when no output is given.
	DefaultOutput = "vpc_peering_visualization.html"
)

// Format constants for output formats.
const (
	FormatHTML = "html"
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatHTML: true,
	FormatJSON: true,
	FormatDOT:  true,
	FormatSVG:  true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a pipeline run.
type Options struct {
	// Input files. VPCFile and AccountFile are optional: when missing the
	// report falls back to VPC ids and "Unknown" account names.
	PeeringFile string
	VPCFile     string
	AccountFile string

	// Filters. Empty means no filtering on that dimension.
	Accounts []string
	Regions  []string

	// Render options
	Formats []string
	Title   string
	Height  string

	// ReportID identifies the generated report. A random UUID is used when empty.
	ReportID string
	// Version is stamped into report footers; defaults to [buildinfo.Short].
	Version string
	// Now returns the generation time; defaults to time.Now.
	Now func() time.Time

	// Logger receives progress and diagnostics. Output is discarded when nil.
	Logger *log.Logger

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// ReportID is the id stamped into every artifact of this run.
	ReportID string

	// Generated is the generation time stamped into the artifacts.
	Generated time.Time

	// Graph is the peering graph built from the filtered records.
	Graph *graph.Graph

	// Names holds the resolved VPC and account names.
	Names names.Maps

	// View is the styled graph shared by all output formats.
	View style.View

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains counts and timing information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Records    int // peering connections in the export
	Matched    int // connections left after filtering
	NodeCount  int
	EdgeCount  int
	Accounts   int // distinct accounts among the nodes
	NamedVPCs  int

	// Connection kinds among the matched records.
	CrossAccount int
	CrossRegion  int
	SelfPeering  int

	// BusiestVPC is the VPC with the most peering connections, counting
	// both directions; ties go to the VPC seen first.
	BusiestVPC   string
	BusiestPeers int

	LoadTime   time.Duration
	BuildTime  time.Duration
	RenderTime time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return perrors.New(perrors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: html, json, dot, svg)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// Extension returns the file extension, including the dot, for a format.
func Extension(format string) string {
	return "." + format
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks the options and fills in defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.PeeringFile == "" {
		o.PeeringFile = DefaultPeeringFile
	}

	o.Formats = normalizeFormats(o.Formats)
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatHTML}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}

	o.Accounts = filter.ParseList(o.Accounts...)
	o.Regions = filter.ParseList(o.Regions...)
	if err := o.Criteria().Validate(); err != nil {
		return err
	}

	if o.ReportID == "" {
		o.ReportID = uuid.NewString()
	}
	if o.Version == "" {
		o.Version = buildinfo.Short()
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}

// Criteria returns the record filter described by the options.
func (o *Options) Criteria() filter.Criteria {
	return filter.Criteria{Accounts: o.Accounts, Regions: o.Regions}
}

// FilterSummary describes the active filters for display, one entry per
// filtered dimension (e.g. "accounts: 111, 222").
func (o *Options) FilterSummary() []string {
	var out []string
	if len(o.Accounts) > 0 {
		out = append(out, "accounts: "+strings.Join(o.Accounts, ", "))
	}
	if len(o.Regions) > 0 {
		out = append(out, "regions: "+strings.Join(o.Regions, ", "))
	}
	return out
}

// normalizeFormats splits comma lists, lowercases, and drops duplicates
// while keeping the first occurrence order.
func normalizeFormats(formats []string) []string {
	var out []string
	for _, f := range filter.ParseList(formats...) {
		f = strings.ToLower(f)
		if !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out
}
