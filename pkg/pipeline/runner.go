package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"

	perrors "github.com/matzehuels/peermap/pkg/errors"
	"github.com/matzehuels/peermap/pkg/filter"
	"github.com/matzehuels/peermap/pkg/graph"
	"github.com/matzehuels/peermap/pkg/names"
	"github.com/matzehuels/peermap/pkg/peering"
	"github.com/matzehuels/peermap/pkg/render/style"
)

// Runner executes the pipeline.
//
// The Runner is stateless except for the logger - it doesn't store pipeline
// results, so one Runner can execute any number of runs.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete load → filter → build → resolve → render pipeline.
//
// A missing or malformed peering export aborts the run. Missing name exports
// only degrade labels. An empty selection is not an error: the report is
// rendered with no nodes.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	logger := opts.Logger

	result := &Result{
		ReportID:  opts.ReportID,
		Generated: opts.Now(),
	}

	// Stage 1: Load
	loadStart := time.Now()
	records, err := peering.Load(opts.PeeringFile)
	if err != nil {
		return nil, err
	}
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.Records = len(records)
	logger.Info("loaded peering connections",
		"path", opts.PeeringFile,
		"count", len(records),
		"duration", result.Stats.LoadTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Filter
	matched := filter.Apply(records, opts.Criteria())
	result.Stats.Matched = len(matched)
	countKinds(&result.Stats, matched)
	if !opts.Criteria().IsEmpty() {
		logger.Info("filtered peering connections",
			"matched", len(matched),
			"excluded", len(records)-len(matched),
			"accounts", opts.Accounts,
			"regions", opts.Regions)
	}
	if len(matched) == 0 {
		logger.Warn("no peering connections to visualize")
	}

	// Stage 3: Build
	buildStart := time.Now()
	g, err := graph.Build(matched)
	if err != nil {
		return nil, perrors.Wrap(perrors.ErrCodeInternal, err, "build graph")
	}
	result.Graph = g
	result.Stats.NodeCount = g.NodeCount()
	result.Stats.EdgeCount = g.EdgeCount()
	result.Stats.Accounts = len(g.AccountIDs())
	result.Stats.BusiestVPC, result.Stats.BusiestPeers = busiest(g)

	// Stage 4: Resolve names
	m, err := names.Resolve(opts.VPCFile, opts.AccountFile, logger)
	if err != nil {
		return nil, err
	}
	result.Names = m
	result.Stats.NamedVPCs = m.CountNamed(g)
	result.Stats.BuildTime = time.Since(buildStart)
	logger.Info("built peering graph",
		"vpcs", g.NodeCount(),
		"connections", g.EdgeCount(),
		"accounts", result.Stats.Accounts,
		"named", result.Stats.NamedVPCs,
		"cross_account", result.Stats.CrossAccount,
		"cross_region", result.Stats.CrossRegion,
		"duration", result.Stats.BuildTime)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 5: Render
	renderStart := time.Now()
	result.View = style.Decorate(g, m)
	artifacts, err := Render(result.View, opts, result.Generated)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	for _, f := range opts.Formats {
		logger.Debug("rendered artifact", "format", f, "size", humanize.Bytes(uint64(len(artifacts[f]))))
	}
	logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// countKinds tallies cross-account, cross-region and self peerings.
func countKinds(s *Stats, records []peering.Record) {
	for _, r := range records {
		if r.IsCrossAccount() {
			s.CrossAccount++
		}
		if r.IsCrossRegion() {
			s.CrossRegion++
		}
		if r.IsSelfPeering() {
			s.SelfPeering++
		}
	}
}

// busiest returns the node with the highest in+out degree.
func busiest(g *graph.Graph) (string, int) {
	var id string
	best := 0
	for _, n := range g.Nodes() {
		if d := g.InDegree(n.ID) + g.OutDegree(n.ID); d > best {
			id, best = n.ID, d
		}
	}
	return id, best
}

// String summarizes the stats in one line, e.g. for debug logs.
func (s Stats) String() string {
	return fmt.Sprintf("%d/%d connections, %d VPCs, %d accounts",
		s.Matched, s.Records, s.NodeCount, s.Accounts)
}
