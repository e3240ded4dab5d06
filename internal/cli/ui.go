package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/matzehuels/peermap/pkg/pipeline"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleKey         = lipgloss.NewStyle().Foreground(colorGray).Width(12)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

func printSuccess(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+msg)
}

func printWarning(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconWarning.Render(iconWarning)+" "+StyleWarning.Render(msg))
}

func printInfo(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconInfo.Render(iconInfo)+" "+msg)
}

// printFile prints a written file with its size.
func printFile(w io.Writer, path string, size int) {
	fmt.Fprintln(w, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path)+" "+StyleDim.Render(humanize.Bytes(uint64(size))))
}

func printKeyValue(w io.Writer, key, value string) {
	fmt.Fprintln(w, styleKey.Render(key)+" "+StyleValue.Render(value))
}

// =============================================================================
// Stats Display
// =============================================================================

// printStats prints graph statistics on a single line.
func printStats(w io.Writer, s pipeline.Stats) {
	parts := []string{
		fmt.Sprintf("%s VPCs", humanize.Comma(int64(s.NodeCount))),
		fmt.Sprintf("%s connections", humanize.Comma(int64(s.EdgeCount))),
		fmt.Sprintf("%s accounts", humanize.Comma(int64(s.Accounts))),
	}
	if s.Matched != s.Records {
		parts = append(parts, fmt.Sprintf("%d of %d after filters", s.Matched, s.Records))
	}
	fmt.Fprintln(w, "  "+StyleDim.Render(strings.Join(parts, " · ")))

	var kinds []string
	if s.CrossAccount > 0 {
		kinds = append(kinds, fmt.Sprintf("%s cross-account", humanize.Comma(int64(s.CrossAccount))))
	}
	if s.CrossRegion > 0 {
		kinds = append(kinds, fmt.Sprintf("%s cross-region", humanize.Comma(int64(s.CrossRegion))))
	}
	if s.SelfPeering > 0 {
		kinds = append(kinds, fmt.Sprintf("%s self-peering", humanize.Comma(int64(s.SelfPeering))))
	}
	if len(kinds) > 0 {
		fmt.Fprintln(w, "  "+StyleDim.Render(strings.Join(kinds, " · ")))
	}
	if s.BusiestPeers > 1 {
		printKeyValue(w, "busiest", fmt.Sprintf("%s (%d peerings)", s.BusiestVPC, s.BusiestPeers))
	}
}

// printSummary prints the outcome of a report run: what was rendered,
// where it was written and which name sources were missing.
func printSummary(w io.Writer, res *pipeline.Result, files []writtenFile) {
	printSuccess(w, "%s", StyleTitle.Render("VPC peering report"))
	printStats(w, res.Stats)
	printKeyValue(w, "report", res.ReportID)
	for _, f := range files {
		printFile(w, f.path, f.size)
	}
	if !res.Names.HaveVPCs {
		printWarning(w, "VPC names unavailable, nodes are labelled with VPC ids")
	}
	if !res.Names.HaveAccounts {
		printWarning(w, "account names unavailable, tooltips show %q", "Unknown")
	}
	if res.Stats.EdgeCount == 0 {
		printInfo(w, "no peering connections matched; the report is empty")
	}
}
