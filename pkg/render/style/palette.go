package style

import "slices"

// Tab20 is the 20-entry Tableau palette used for account colors.
var Tab20 = Palette{
	"#1f77b4", "#aec7e8", "#ff7f0e", "#ffbb78", "#2ca02c",
	"#98df8a", "#d62728", "#ff9896", "#9467bd", "#c5b0d5",
	"#8c564b", "#c49c94", "#e377c2", "#f7b6d2", "#7f7f7f",
	"#c7c7c7", "#bcbd22", "#dbdb8d", "#17becf", "#9edae5",
}

// Palette is an ordered list of CSS colors.
type Palette []string

// Color returns the color for position i. Positions past the end wrap
// around, so with Tab20 the 21st account shares the first account's color.
func (p Palette) Color(i int) string {
	if len(p) == 0 {
		return ""
	}
	return p[i%len(p)]
}

// Assign maps each account id to a palette color.
// Accounts are sorted first so the same set of accounts always gets the same
// colors regardless of the order they appear in the export.
func (p Palette) Assign(accounts []string) map[string]string {
	sorted := slices.Clone(accounts)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	out := make(map[string]string, len(sorted))
	for i, a := range sorted {
		out[a] = p.Color(i)
	}
	return out
}
