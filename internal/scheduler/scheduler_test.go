package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hostpulse/hostpulse/internal/alert"
	"github.com/hostpulse/hostpulse/internal/config"
	"github.com/hostpulse/hostpulse/internal/model"
	"github.com/hostpulse/hostpulse/internal/sampler"
)

type fakeProvider struct {
	total float64
	err   error
}

func (f *fakeProvider) CPUPercent() (float64, []float64, error) {
	return f.total, []float64{f.total, f.total}, f.err
}
func (f *fakeProvider) Memory() (model.Memory, error) { return model.Memory{UsedPercent: 10}, nil }
func (f *fakeProvider) IOCounters() (model.IO, error) { return model.IO{}, nil }
func (f *fakeProvider) Processes() ([]model.Process, error) {
	return []model.Process{
		{PID: 1, Name: "a", CPUPercent: model.Float(1)},
		{PID: 2, Name: "b", CPUPercent: model.Float(2)},
		{PID: 3, Name: "c", CPUPercent: model.Float(3)},
	}, nil
}

// memorySink records writes instead of touching the filesystem.
type memorySink struct {
	records []alert.Record
	err     error
}

func (m *memorySink) Write(rec alert.Record) error {
	if m.err != nil {
		return m.err
	}
	m.records = append(m.records, rec)
	return nil
}
func (m *memorySink) Close() error { return nil }

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Interval = 5 * time.Millisecond
	cfg.TopN = 2
	return cfg
}

func TestRun_EmitsFramesAndAlertsEveryQualifyingTick(t *testing.T) {
	sink := &memorySink{}
	sched := New(testConfig(), sampler.New(&fakeProvider{total: 90}), sink)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	frames := make(chan Frame)
	done := make(chan error, 1)
	go func() { done <- sched.Run(ctx, frames) }()

	var got []Frame
	for f := range frames {
		got = append(got, f)
		if len(got) == 3 {
			cancel()
		}
	}
	require.NoError(t, <-done)

	require.GreaterOrEqual(t, len(got), 3)
	// Sustained overload: one alert per tick, no deduplication.
	assert.GreaterOrEqual(t, len(sink.records), 3)
	for _, rec := range sink.records {
		assert.Contains(t, rec.Message, "90")
		assert.Contains(t, rec.Message, "85")
	}
	// Frames carry the ranked list, truncated to TopN, highest CPU first.
	require.Len(t, got[0].Top, 2)
	assert.Equal(t, int32(3), got[0].Top[0].PID)
	assert.Equal(t, int32(2), got[0].Top[1].PID)
}

func TestRun_NoAlertBelowThreshold(t *testing.T) {
	sink := &memorySink{}
	sched := New(testConfig(), sampler.New(&fakeProvider{total: 40}), sink)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	frames := make(chan Frame)
	done := make(chan error, 1)
	go func() { done <- sched.Run(ctx, frames) }()

	seen := 0
	for range frames {
		seen++
		if seen == 3 {
			cancel()
		}
	}
	require.NoError(t, <-done)
	assert.Empty(t, sink.records)
}

func TestRun_TimestampsStrictlyIncrease(t *testing.T) {
	sched := New(testConfig(), sampler.New(&fakeProvider{total: 10}), &memorySink{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	frames := make(chan Frame)
	go func() { _ = sched.Run(ctx, frames) }()

	var stamps []time.Time
	for f := range frames {
		stamps = append(stamps, f.Sample.Timestamp)
		if len(stamps) == 3 {
			cancel()
		}
	}
	for i := 1; i < len(stamps); i++ {
		assert.True(t, stamps[i].After(stamps[i-1]), "tick %d not after tick %d", i, i-1)
	}
}

func TestRun_ProviderFailureIsFatal(t *testing.T) {
	boom := errors.New("counter unreadable")
	sched := New(testConfig(), sampler.New(&fakeProvider{err: boom}), &memorySink{})

	frames := make(chan Frame)
	done := make(chan error, 1)
	go func() { done <- sched.Run(context.Background(), frames) }()

	_, open := <-frames
	assert.False(t, open, "stream must close when sampling fails")
	assert.ErrorIs(t, <-done, boom)
}

func TestRun_SinkFailureIsFatal(t *testing.T) {
	boom := errors.New("disk full")
	sched := New(testConfig(), sampler.New(&fakeProvider{total: 99}), &memorySink{err: boom})

	frames := make(chan Frame)
	done := make(chan error, 1)
	go func() { done <- sched.Run(context.Background(), frames) }()

	for range frames {
	}
	assert.ErrorIs(t, <-done, boom)
}

func TestRun_CancelReturnsNil(t *testing.T) {
	sched := New(testConfig(), sampler.New(&fakeProvider{total: 10}), &memorySink{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	frames := make(chan Frame)
	err := sched.Run(ctx, frames)

	assert.NoError(t, err)
	_, open := <-frames
	assert.False(t, open, "out channel closes on every exit path")
}
