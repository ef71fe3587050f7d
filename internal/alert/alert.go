// Package alert evaluates the CPU threshold and persists alert records.
package alert

import (
	"fmt"
	"time"
)

// Record is one threshold violation, created by Evaluate and handed straight
// to a Sink; it is never retained in memory.
type Record struct {
	Time    time.Time
	Message string
}

// Evaluate compares aggregate CPU usage against the threshold. It returns a
// record only for a strict exceedance: usage equal to the threshold does not
// alert. There is no deduplication — a sustained overload yields one record
// per tick.
func Evaluate(now time.Time, cpuTotal float64, threshold int) (Record, bool) {
	if cpuTotal <= float64(threshold) {
		return Record{}, false
	}
	return Record{
		Time:    now,
		Message: fmt.Sprintf("CPU usage at %.1f%% exceeded threshold of %d%%", cpuTotal, threshold),
	}, true
}
