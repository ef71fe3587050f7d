package config

import (
	"fmt"
	"time"
)

// Config carries runtime options for hostpulse. It is built once at startup
// and passed by value to every component; nothing mutates it afterwards.
type Config struct {
	Threshold int           // CPU alert threshold in percent
	TopN      int           // process table length
	Interval  time.Duration // sampling cadence
	Refresh   time.Duration // screen redraw cadence, independent of Interval
	LogPath   string        // append-only alert log
}

func Default() Config {
	return Config{
		Threshold: 85,
		TopN:      10,
		Interval:  500 * time.Millisecond,
		Refresh:   time.Second / 4,
		LogPath:   "cpu_alerts.log",
	}
}

// Validate rejects values the pipeline cannot run with. The threshold is
// deliberately not range-checked: out-of-range values pass through and
// simply never (or always) fire.
func (c Config) Validate() error {
	if c.Interval <= 0 {
		return fmt.Errorf("sampling interval must be positive, got %s", c.Interval)
	}
	if c.Refresh <= 0 {
		return fmt.Errorf("refresh interval must be positive, got %s", c.Refresh)
	}
	if c.TopN <= 0 {
		return fmt.Errorf("top process count must be positive, got %d", c.TopN)
	}
	if c.LogPath == "" {
		return fmt.Errorf("alert log path must not be empty")
	}
	return nil
}
