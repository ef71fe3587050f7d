package metrics

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/net"
	"github.com/shirou/gopsutil/v3/process"

	"github.com/hostpulse/hostpulse/internal/model"
)

// System reads counters via gopsutil. The previous CPU times are kept as
// fields so the delta baseline is explicit state of this value, not hidden
// package globals.
type System struct {
	prevTotal cpu.TimesStat
	prevCore  []cpu.TimesStat
	primed    bool
}

func NewSystem() *System { return &System{} }

// CPUPercent derives aggregate and per-core usage from the CPU times delta
// since the previous call. Zeros until a baseline exists.
func (s *System) CPUPercent() (float64, []float64, error) {
	totals, err := cpu.Times(false)
	if err != nil {
		return 0, nil, fmt.Errorf("read cpu times: %w", err)
	}
	if len(totals) == 0 {
		return 0, nil, fmt.Errorf("read cpu times: empty result")
	}
	cores, err := cpu.Times(true)
	if err != nil {
		return 0, nil, fmt.Errorf("read per-core cpu times: %w", err)
	}

	var total float64
	perCore := make([]float64, len(cores))
	if s.primed {
		total = busyPercent(s.prevTotal, totals[0])
		for i, c := range cores {
			if i < len(s.prevCore) {
				perCore[i] = busyPercent(s.prevCore[i], c)
			}
		}
	}
	s.prevTotal, s.prevCore, s.primed = totals[0], cores, true
	return total, perCore, nil
}

func busyPercent(prev, cur cpu.TimesStat) float64 {
	dt := cur.Total() - prev.Total()
	di := (cur.Idle + cur.Iowait) - (prev.Idle + prev.Iowait)
	if dt <= 0 {
		return 0
	}
	pct := 100 * (1 - di/dt)
	if pct < 0 {
		return 0
	}
	return pct
}

func (s *System) Memory() (model.Memory, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return model.Memory{}, fmt.Errorf("read virtual memory: %w", err)
	}
	swap, err := mem.SwapMemory()
	if err != nil {
		return model.Memory{}, fmt.Errorf("read swap: %w", err)
	}
	return model.Memory{
		UsedBytes:   vm.Used,
		TotalBytes:  vm.Total,
		UsedPercent: vm.UsedPercent,
		SwapUsed:    swap.Used,
	}, nil
}

// IOCounters returns cumulative since-boot totals: network bytes across all
// interfaces and read/write operation counts summed over block devices.
func (s *System) IOCounters() (model.IO, error) {
	netStats, err := net.IOCounters(false)
	if err != nil {
		return model.IO{}, fmt.Errorf("read net counters: %w", err)
	}
	diskStats, err := disk.IOCounters()
	if err != nil {
		return model.IO{}, fmt.Errorf("read disk counters: %w", err)
	}

	var io model.IO
	if len(netStats) > 0 {
		io.NetBytesSent = netStats[0].BytesSent
		io.NetBytesRecv = netStats[0].BytesRecv
	}
	for _, st := range diskStats {
		io.DiskReadCount += st.ReadCount
		io.DiskWriteCount += st.WriteCount
	}
	return io, nil
}

// Processes snapshots the process table. A process that vanishes or denies
// access between enumeration and detail reads is skipped; unreadable
// percent counters stay nil on an otherwise readable process.
func (s *System) Processes() ([]model.Process, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, fmt.Errorf("enumerate processes: %w", err)
	}

	out := make([]model.Process, 0, len(procs))
	for _, p := range procs {
		name, err := p.Name()
		if err != nil {
			continue
		}
		entry := model.Process{PID: p.Pid, Name: name}
		if pct, err := p.CPUPercent(); err == nil {
			entry.CPUPercent = model.Float(pct)
		}
		if pct, err := p.MemoryPercent(); err == nil {
			entry.MemPercent = model.Float(float64(pct))
		}
		out = append(out, entry)
	}
	return out, nil
}
