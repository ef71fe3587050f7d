// Package scheduler runs the sampling pipeline on a fixed cadence.
package scheduler

import (
	"context"
	"time"

	"github.com/hostpulse/hostpulse/internal/alert"
	"github.com/hostpulse/hostpulse/internal/config"
	"github.com/hostpulse/hostpulse/internal/model"
	"github.com/hostpulse/hostpulse/internal/rank"
	"github.com/hostpulse/hostpulse/internal/sampler"
)

// Frame is one tick's renderable state: the raw sample plus the ranked
// process list the process panel displays.
type Frame struct {
	Sample model.Sample
	Top    []model.Process
}

// Scheduler ties sampler, ranker, evaluator, and sink together. Frames flow
// to the UI over a channel; the UI redraws on its own cadence and simply
// shows the latest frame it has seen.
type Scheduler struct {
	cfg     config.Config
	sampler *sampler.Sampler
	sink    alert.Sink
}

func New(cfg config.Config, s *sampler.Sampler, sink alert.Sink) *Scheduler {
	return &Scheduler{cfg: cfg, sampler: s, sink: sink}
}

// Run samples once per interval until ctx is done, emitting a Frame per
// tick. The sampling ticker is the only cadence here: the provider's
// delta-based percentages rely on being read at exactly this rate.
//
// A provider or sink failure is fatal to the loop and is returned as-is;
// cancellation returns nil. The out channel is closed on every exit path so
// the consumer can tell the stream ended.
func (s *Scheduler) Run(ctx context.Context, out chan<- Frame) error {
	defer close(out)

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			if err := s.tick(ctx, now, out); err != nil {
				return err
			}
		}
	}
}

func (s *Scheduler) tick(ctx context.Context, now time.Time, out chan<- Frame) error {
	samp, err := s.sampler.Collect(now)
	if err != nil {
		return err
	}

	top := rank.TopByCPU(samp.Processes, s.cfg.TopN)

	if rec, ok := alert.Evaluate(samp.Timestamp, samp.CPU.Total, s.cfg.Threshold); ok {
		if err := s.sink.Write(rec); err != nil {
			return err
		}
	}

	select {
	case out <- Frame{Sample: samp, Top: top}:
	case <-ctx.Done():
	}
	return nil
}
