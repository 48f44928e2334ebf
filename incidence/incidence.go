// Package incidence builds the signed branch-net incidence matrix,
// independent of how the caller represents its nets. It only needs, per
// net (row), the list of (branch, polarity) pairs that belong to it.
package incidence

import "github.com/RuiCat/dkcircuit/maths"

// Entry is one (branch, polarity) contribution of a net, in whole-circuit
// branch numbering (1-based, matching the pin-numbering convention used
// throughout the element and circuit packages).
type Entry struct {
	Branch   int
	Polarity int
}

// Build produces a len(nets) x nb sparse matrix whose (r, b) entry is the
// polarity of branch b in net r, or zero if branch b never appears in net r.
// Duplicate (row, branch) contributions within a single net are summed and
// cancel to a structural zero rather than leaving an explicit zero entry,
// which is what happens when both ends of a branch land on the same net.
func Build(nets [][]Entry, nb int) maths.Matrix[float64] {
	var triplets []maths.Triplet[float64]
	for r, entries := range nets {
		for _, e := range entries {
			triplets = append(triplets, maths.Triplet[float64]{
				Row:   r,
				Col:   e.Branch - 1,
				Value: float64(e.Polarity),
			})
		}
	}
	return maths.FromTriplets[float64](len(nets), nb, triplets)
}
