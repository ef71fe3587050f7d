// Package metrics reads raw host counters. The Provider interface is the
// seam the rest of the pipeline is tested against; System is the gopsutil
// implementation used in production.
package metrics

import "github.com/hostpulse/hostpulse/internal/model"

// Provider returns instantaneous host counters on demand.
//
// CPUPercent is interval-less: percentages cover the window since the
// previous CPUPercent call, so the caller owns the cadence. The first call
// after construction has no baseline and reports zeros.
type Provider interface {
	CPUPercent() (total float64, perCore []float64, err error)
	Memory() (model.Memory, error)
	IOCounters() (model.IO, error)
	Processes() ([]model.Process, error)
}
