package main

import (
	"fmt"
	"time"
)

// Stats collects statistics about pulled values for the status area.
type Stats struct {
	Start  time.Time
	Pulled int
	Count  int // expected total, 0 when unknown

	last    string
	lastVPS time.Time
	vps     float64
}

// NewStats returns statistics for a sequence of count values, 0 when the
// total is not known in advance.
func NewStats(count int) *Stats {
	return &Stats{Start: time.Now(), Count: count}
}

// Record notes one pulled value.
func (s *Stats) Record(value string) {
	s.Pulled++
	s.last = value
}

func formatSeconds(secs float64) string {
	sec := int(secs)
	hours := sec / 3600
	sec -= hours * 3600
	min := sec / 60
	sec -= min * 60

	if hours > 0 {
		return fmt.Sprintf("%dh%02dm%02ds", hours, min, sec)
	}

	return fmt.Sprintf("%dm%02ds", min, sec)
}

// Report returns the lines for the status area.
func (s *Stats) Report() []string {
	status := fmt.Sprintf("%v values", s.Pulled)
	if s.Count > 0 {
		status = fmt.Sprintf("%v of %v values", s.Pulled, s.Count)
	}

	dur := time.Since(s.Start) / time.Second
	if dur > 0 && time.Since(s.lastVPS) > time.Second {
		s.vps = float64(s.Pulled) / float64(dur)
		s.lastVPS = time.Now()
	}

	if s.vps > 0 {
		status += fmt.Sprintf(", %.0f val/s", s.vps)

		if todo := s.Count - s.Pulled; s.Count > 0 && todo > 0 {
			status += fmt.Sprintf(", %s remaining", formatSeconds(float64(todo)/s.vps))
		}
	}

	if s.last != "" {
		status += fmt.Sprintf(", last: %v", s.last)
	}

	return []string{"", status}
}

// Summary returns the final line printed after the last value.
func (s *Stats) Summary() string {
	return fmt.Sprintf("pulled %v values in %v", s.Pulled, time.Since(s.Start).Round(time.Millisecond))
}
