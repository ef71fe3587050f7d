// Package cli wires the command line to the monitoring pipeline.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hostpulse/hostpulse/internal/alert"
	"github.com/hostpulse/hostpulse/internal/config"
	"github.com/hostpulse/hostpulse/internal/metrics"
	"github.com/hostpulse/hostpulse/internal/sampler"
	"github.com/hostpulse/hostpulse/internal/scheduler"
	"github.com/hostpulse/hostpulse/internal/ui"
)

var cfg = config.Default()

var rootCmd = &cobra.Command{
	Use:   "hostpulse",
	Short: "Live terminal dashboard for host CPU, memory, I/O, and processes",
	Long: `hostpulse samples host resource counters on a fixed cadence and renders
them as a full-screen dashboard: aggregate and per-core CPU, memory and
swap, cumulative network and disk I/O, and the top processes by CPU.

Whenever aggregate CPU usage exceeds the configured threshold, one line is
appended to the alert log for every sampling interval the condition holds.

Press q or ctrl+c to quit.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cfg)
	},
}

func init() {
	rootCmd.Flags().IntVar(&cfg.Threshold, "threshold", cfg.Threshold,
		"CPU alert threshold in percent")
	rootCmd.Flags().DurationVar(&cfg.Interval, "interval", cfg.Interval,
		"sampling interval")
	rootCmd.Flags().IntVar(&cfg.TopN, "top", cfg.TopN,
		"number of processes shown in the process panel")
	rootCmd.Flags().StringVar(&cfg.LogPath, "log", cfg.LogPath,
		"path of the append-only alert log")
}

// Execute runs the root command. Returns a non-nil error only on abnormal
// termination; a user-initiated quit exits cleanly.
func Execute() error {
	return rootCmd.Execute()
}

func run(cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	sink, err := alert.NewFileSink(cfg.LogPath)
	if err != nil {
		return err
	}
	defer sink.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := scheduler.New(cfg, sampler.New(metrics.NewSystem()), sink)

	frames := make(chan scheduler.Frame, 1)
	errc := make(chan error, 1)
	go func() { errc <- sched.Run(ctx, frames) }()

	uiErr := ui.Run(cfg, frames, cancel)
	if err := <-errc; err != nil {
		return fmt.Errorf("sampling stopped: %w", err)
	}
	if uiErr != nil {
		return uiErr
	}

	fmt.Printf("Monitor stopped. Alerts logged to %s\n", cfg.LogPath)
	return nil
}
