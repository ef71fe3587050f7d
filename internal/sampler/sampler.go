// Package sampler assembles one Sample per tick from a metrics Provider.
package sampler

import (
	"time"

	"github.com/hostpulse/hostpulse/internal/metrics"
	"github.com/hostpulse/hostpulse/internal/model"
)

// Sampler drives one collection cycle. It holds no state of its own; the
// CPU delta baseline lives inside the provider.
type Sampler struct {
	provider metrics.Provider
}

func New(p metrics.Provider) *Sampler { return &Sampler{provider: p} }

// Collect reads every metric category and assembles a Sample stamped with
// now. Provider failures propagate untouched; Collect neither retries nor
// substitutes partial data.
func (s *Sampler) Collect(now time.Time) (model.Sample, error) {
	total, perCore, err := s.provider.CPUPercent()
	if err != nil {
		return model.Sample{}, err
	}
	memory, err := s.provider.Memory()
	if err != nil {
		return model.Sample{}, err
	}
	io, err := s.provider.IOCounters()
	if err != nil {
		return model.Sample{}, err
	}
	procs, err := s.provider.Processes()
	if err != nil {
		return model.Sample{}, err
	}

	return model.Sample{
		Timestamp: now,
		CPU:       model.CPU{Total: total, PerCore: perCore},
		Memory:    memory,
		IO:        io,
		Processes: procs,
	}, nil
}
