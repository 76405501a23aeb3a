package rest

import (
	"sync"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"

	"yqhp/calculator/internal/expression"
)

// Latency bounds in microseconds. Slower evaluations are clamped to the max.
const (
	minLatencyUS = 1
	maxLatencyUS = 60_000_000
	sigFigures   = 3
)

// Stats aggregates evaluation outcomes and latencies. It is safe for
// concurrent use.
type Stats struct {
	mu        sync.Mutex
	latency   *hdrhistogram.Histogram
	successes int64
	failures  map[string]int64
}

// NewStats creates an empty Stats.
func NewStats() *Stats {
	return &Stats{
		latency:  hdrhistogram.New(minLatencyUS, maxLatencyUS, sigFigures),
		failures: make(map[string]int64),
	}
}

// Record adds one evaluation. A non-nil err counts as a failure under its
// error kind.
func (s *Stats) Record(elapsed time.Duration, err error) {
	us := elapsed.Microseconds()
	if us < minLatencyUS {
		us = minLatencyUS
	}
	if us > maxLatencyUS {
		us = maxLatencyUS
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// RecordValue only fails outside [minLatencyUS, maxLatencyUS], excluded by the clamp above.
	_ = s.latency.RecordValue(us)
	if err == nil {
		s.successes++
		return
	}
	s.failures[kindName(err)]++
}

// Snapshot returns a copy of the current statistics.
func (s *Stats) Snapshot() StatsResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	failures := make(map[string]int64, len(s.failures))
	for k, v := range s.failures {
		failures[k] = v
	}

	summary := LatencySummary{Count: s.latency.TotalCount()}
	if summary.Count > 0 {
		summary.Min = s.latency.Min()
		summary.Max = s.latency.Max()
		summary.Mean = s.latency.Mean()
		summary.P50 = s.latency.ValueAtQuantile(50)
		summary.P90 = s.latency.ValueAtQuantile(90)
		summary.P99 = s.latency.ValueAtQuantile(99)
	}

	return StatsResponse{
		Successes: s.successes,
		Failures:  failures,
		LatencyUS: summary,
	}
}

// Reset clears all recorded values.
func (s *Stats) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.latency.Reset()
	s.successes = 0
	s.failures = make(map[string]int64)
}

func kindName(err error) string {
	if kind, ok := expression.KindOf(err); ok {
		return kind.String()
	}
	return "Unknown"
}
