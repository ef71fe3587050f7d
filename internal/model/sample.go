package model

import "time"

// CPU aggregates instantaneous CPU usage since the previous sample.
type CPU struct {
	Total   float64   // percent 0-100
	PerCore []float64 // per-core percent, one entry per logical core
}

// Memory captures RAM and swap usage in bytes for precision.
type Memory struct {
	UsedBytes   uint64
	TotalBytes  uint64
	UsedPercent float64
	SwapUsed    uint64
}

// IO holds cumulative network and disk counters since boot.
// No rate is derived from these; the dashboard shows running totals.
type IO struct {
	NetBytesSent   uint64
	NetBytesRecv   uint64
	DiskReadCount  uint64
	DiskWriteCount uint64
}

// Process is one entry of a process snapshot. CPUPercent and MemPercent
// are nil when the counter could not be read for the process.
type Process struct {
	PID        int32
	Name       string
	CPUPercent *float64
	MemPercent *float64
}

// CPUValue returns the CPU percentage, treating an unknown value as 0.
func (p Process) CPUValue() float64 {
	if p.CPUPercent == nil {
		return 0
	}
	return *p.CPUPercent
}

// MemValue returns the memory percentage, treating an unknown value as 0.
func (p Process) MemValue() float64 {
	if p.MemPercent == nil {
		return 0
	}
	return *p.MemPercent
}

// Sample is one tick's full snapshot exchanged between the scheduler and UI.
// Processes carries the raw snapshot order as returned by the provider.
type Sample struct {
	Timestamp time.Time
	CPU       CPU
	Memory    Memory
	IO        IO
	Processes []Process
}

// Float returns a pointer to v, for building optional percent fields.
func Float(v float64) *float64 { return &v }
