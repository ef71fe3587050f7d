package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hostpulse/hostpulse/internal/model"
)

// Panel is one renderable dashboard region. Builders are pure: the same
// sample always produces the same Panel, byte for byte.
type Panel struct {
	Title  string
	Border lipgloss.Color
	Body   string
}

// coreColor classifies one core's usage: green below 50, yellow from 50 up
// to the threshold, red at or above the threshold.
func coreColor(usage float64, threshold int) lipgloss.Color {
	switch {
	case usage >= float64(threshold):
		return colorRed
	case usage >= 50:
		return colorYellow
	default:
		return colorGreen
	}
}

// memColor uses fixed informational breakpoints, not the alert threshold.
func memColor(pct float64) lipgloss.Color {
	switch {
	case pct >= 85:
		return colorRed
	case pct >= 60:
		return colorYellow
	default:
		return colorGreen
	}
}

// cpuBorder stays blue until the aggregate strictly exceeds the threshold,
// mirroring the alert condition.
func cpuBorder(total float64, threshold int) lipgloss.Color {
	if total > float64(threshold) {
		return colorAlert
	}
	return colorBlue
}

// CPUPanel renders one bar row per logical core plus the aggregate in the
// title. Bar length is usage/5 glyphs.
func CPUPanel(s model.Sample, threshold int) Panel {
	var b strings.Builder
	for i, usage := range s.CPU.PerCore {
		bar := lipgloss.NewStyle().
			Foreground(coreColor(usage, threshold)).
			Render(strings.Repeat("|", int(usage/5)))
		fmt.Fprintf(&b, "Core %-3d %5.1f%% %s\n", i, usage, bar)
	}
	return Panel{
		Title:  fmt.Sprintf("CPU Total: %.1f%%", s.CPU.Total),
		Border: cpuBorder(s.CPU.Total, threshold),
		Body:   strings.TrimRight(b.String(), "\n"),
	}
}

// MemoryPanel shows RAM in GB plus swap. Its border is informational only
// and does not track the alert threshold.
func MemoryPanel(s model.Sample) Panel {
	m := s.Memory
	var b strings.Builder
	fmt.Fprintf(&b, "Total     %7.2f GB\n", bytesToGB(m.TotalBytes))
	fmt.Fprintf(&b, "Used      %7.2f GB\n", bytesToGB(m.UsedBytes))
	fmt.Fprintf(&b, "Percent   %6.1f%%\n", m.UsedPercent)
	fmt.Fprintf(&b, "Swap Used %7.2f GB", bytesToGB(m.SwapUsed))
	return Panel{
		Title:  "Memory",
		Border: memColor(m.UsedPercent),
		Body:   b.String(),
	}
}

// IOPanel shows cumulative since-boot totals; no rates are derived.
func IOPanel(s model.Sample) Panel {
	io := s.IO
	var b strings.Builder
	fmt.Fprintf(&b, "Net Sent    %.1f MB\n", bytesToMB(io.NetBytesSent))
	fmt.Fprintf(&b, "Net Recv    %.1f MB\n", bytesToMB(io.NetBytesRecv))
	fmt.Fprintf(&b, "Disk Reads  %d\n", io.DiskReadCount)
	fmt.Fprintf(&b, "Disk Writes %d", io.DiskWriteCount)
	return Panel{Title: "System I/O", Border: colorCyan, Body: b.String()}
}

// ProcessPanel renders the ranked list exactly as given, preserving order.
func ProcessPanel(top []model.Process, topN int) Panel {
	var b strings.Builder
	fmt.Fprintf(&b, "%6s  %-20s %6s %6s\n", "PID", "NAME", "CPU%", "MEM%")
	for _, p := range top {
		fmt.Fprintf(&b, "%6d  %-20s %6.1f %6.1f\n",
			p.PID, truncate(p.Name, 20), p.CPUValue(), p.MemValue())
	}
	return Panel{
		Title:  fmt.Sprintf("Top %d Processes (CPU)", topN),
		Border: colorWhite,
		Body:   strings.TrimRight(b.String(), "\n"),
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func bytesToMB(b uint64) float64 { return float64(b) / (1024 * 1024) }
func bytesToGB(b uint64) float64 { return float64(b) / (1024 * 1024 * 1024) }
