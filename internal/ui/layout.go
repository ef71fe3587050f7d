package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const (
	headerHeight = 3
	minWidth     = 60
	minHeight    = 20
)

// Compose arranges the dashboard grid: a header strip spanning the full
// width, then two equal columns. The left column stacks CPU, Memory, and
// I/O at a 2:1:1 height ratio; the right column is the process table at
// full height. The structure is fixed; only the terminal size scales it.
func Compose(ts time.Time, cpu, mem, io, procs Panel, width, height int) string {
	if width < minWidth {
		width = minWidth
	}
	if height < minHeight {
		height = minHeight
	}

	body := height - headerHeight
	leftW := width / 2
	rightW := width - leftW
	cpuH := body / 2
	memH := body / 4
	ioH := body - cpuH - memH

	header := headerStyle.
		Width(width - 2).
		Render(fmt.Sprintf("System Monitor - %s", ts.Format("15:04:05")))

	left := lipgloss.JoinVertical(lipgloss.Left,
		renderPanel(cpu, leftW, cpuH),
		renderPanel(mem, leftW, memH),
		renderPanel(io, leftW, ioH),
	)
	right := renderPanel(procs, rightW, body)

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		lipgloss.JoinHorizontal(lipgloss.Top, left, right),
	)
}

// renderPanel draws p into a bordered box of total size w x h.
func renderPanel(p Panel, w, h int) string {
	style := panelStyle.
		BorderForeground(p.Border).
		Width(w - 2).
		Height(h - 2)
	return style.Render(titleStyle.Render(p.Title) + "\n" + p.Body)
}
