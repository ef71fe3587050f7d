// Package rank reduces a process snapshot to the entries worth showing.
package rank

import (
	"sort"

	"github.com/hostpulse/hostpulse/internal/model"
)

// TopByCPU returns the top n processes by CPU usage, descending. An unknown
// CPU percentage sorts as zero but is not coerced in the returned entry.
// Ties keep the snapshot order (stable sort), so identical inputs always
// rank identically. The input slice is left untouched.
func TopByCPU(procs []model.Process, n int) []model.Process {
	ranked := make([]model.Process, len(procs))
	copy(ranked, procs)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].CPUValue() > ranked[j].CPUValue()
	})
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
