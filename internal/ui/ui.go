// Package ui renders scheduler frames as a full-screen dashboard.
package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hostpulse/hostpulse/internal/config"
	"github.com/hostpulse/hostpulse/internal/scheduler"
)

// Model shows the latest frame from the scheduler. Redraw runs on its own
// tick (cfg.Refresh), independent of the sampling cadence; between samples
// it simply re-renders the frame it already has.
type Model struct {
	cfg    config.Config
	frames <-chan scheduler.Frame
	cancel context.CancelFunc

	frame  scheduler.Frame
	ready  bool
	width  int
	height int
}

func NewModel(cfg config.Config, frames <-chan scheduler.Frame, cancel context.CancelFunc) *Model {
	return &Model{
		cfg:    cfg,
		frames: frames,
		cancel: cancel,
		width:  120,
		height: 40,
	}
}

type tickMsg struct{}

func (m *Model) redraw() tea.Cmd {
	return tea.Tick(m.cfg.Refresh, func(time.Time) tea.Msg { return tickMsg{} })
}

func (m *Model) Init() tea.Cmd { return m.redraw() }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.cancel()
			return m, tea.Quit
		}
	case tickMsg:
		// Drain whatever the scheduler produced since the last redraw;
		// only the newest frame matters. A closed channel means the
		// pipeline stopped (fatal sampling failure) and we quit too.
		for {
			select {
			case f, ok := <-m.frames:
				if !ok {
					m.cancel()
					return m, tea.Quit
				}
				m.frame = f
				m.ready = true
			default:
				return m, m.redraw()
			}
		}
	}
	return m, nil
}

func (m *Model) View() string {
	if !m.ready {
		return "collecting metrics..."
	}
	s := m.frame.Sample
	return Compose(
		s.Timestamp,
		CPUPanel(s, m.cfg.Threshold),
		MemoryPanel(s),
		IOPanel(s),
		ProcessPanel(m.frame.Top, m.cfg.TopN),
		m.width, m.height,
	)
}

// Run takes over the terminal until the user quits or the frame stream
// ends. The alt screen is released on every exit path, including errors.
func Run(cfg config.Config, frames <-chan scheduler.Frame, cancel context.CancelFunc) error {
	prog := tea.NewProgram(NewModel(cfg, frames, cancel), tea.WithAltScreen())
	_, err := prog.Run()
	cancel()
	return err
}
