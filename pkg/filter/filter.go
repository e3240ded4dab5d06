// Package filter selects peering records by account and region.
//
// Both predicates are open when empty: a nil or empty account list matches
// every account, and likewise for regions. With both empty, [Apply] returns
// the input unchanged.
//
//	kept := filter.Apply(records, filter.Criteria{
//	    Accounts: []string{"111111111111"},
//	    Regions:  []string{"us-east-1", "eu-west-1"},
//	})
package filter

import (
	"slices"
	"strings"

	perrors "github.com/matzehuels/peermap/pkg/errors"
	"github.com/matzehuels/peermap/pkg/peering"
)

// Criteria holds the optional account and region predicates.
type Criteria struct {
	// Accounts matches against the record's AccountID (the account the export
	// attributes the connection to), not the per-side owner ids.
	Accounts []string
	// Regions matches if either the requester or accepter region is listed.
	Regions []string
}

// IsEmpty reports whether both predicates are open.
func (c Criteria) IsEmpty() bool { return len(c.Accounts) == 0 && len(c.Regions) == 0 }

// Validate checks every account id and region for obvious quoting mistakes.
func (c Criteria) Validate() error {
	for _, a := range c.Accounts {
		if err := perrors.ValidateFilterValue("account id", a); err != nil {
			return err
		}
	}
	for _, r := range c.Regions {
		if err := perrors.ValidateFilterValue("region", r); err != nil {
			return err
		}
	}
	return nil
}

// Match reports whether a single record passes both predicates.
func (c Criteria) Match(r peering.Record) bool {
	if len(c.Accounts) > 0 && !slices.Contains(c.Accounts, r.AccountID) {
		return false
	}
	if len(c.Regions) > 0 &&
		!slices.Contains(c.Regions, r.RequesterRegion) &&
		!slices.Contains(c.Regions, r.AccepterRegion) {
		return false
	}
	return true
}

// Apply returns the records matching c, in input order.
// The input slice is never modified; the result is always a fresh slice.
func Apply(records []peering.Record, c Criteria) []peering.Record {
	out := make([]peering.Record, 0, len(records))
	for _, r := range records {
		if c.Match(r) {
			out = append(out, r)
		}
	}
	return out
}

// ParseList splits comma-separated flag values into a flat list.
// Whitespace around entries is trimmed and empty entries are dropped, so
// "111, 222,," yields ["111" "222"]. Each element of values may itself be a
// comma list, which lets repeated flags and comma lists be mixed.
func ParseList(values ...string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
