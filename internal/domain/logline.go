// Package domain holds the core data model for the log security analyzer:
// the immutable line store, the per-line derived arrays produced by the
// scanner, and the report structures consumed by the output adapters.
package domain

import "time"

// MaxLineLength caps the raw text kept for a single log line.
// Longer lines are truncated at ingestion before any extraction runs.
const MaxLineLength = 8192

// LogLine is one trimmed, non-empty line of the analyzed file together with
// its zero-based position in the line store. Immutable once created.
type LogLine struct {
	Index int    `json:"index"`
	Raw   string `json:"raw"`
}

// Scan is the line store plus the per-line derived arrays every detector
// reads. All slices have the same length as Lines and are index-aligned;
// absence is encoded per field ("" for Addresses and Usernames, the zero
// time.Time for Timestamps). Consumers must not assume every index is
// populated.
//
// A Scan is built once and never mutated afterwards, so detectors may read
// it concurrently without locking.
type Scan struct {
	Lines      []LogLine
	Failed     []bool
	Addresses  []string
	Timestamps []time.Time
	Usernames  []string
}

// NewScan allocates a Scan with all derived arrays sized to the line store.
func NewScan(lines []LogLine) *Scan {
	n := len(lines)
	return &Scan{
		Lines:      lines,
		Failed:     make([]bool, n),
		Addresses:  make([]string, n),
		Timestamps: make([]time.Time, n),
		Usernames:  make([]string, n),
	}
}

// Len returns the number of lines in the store.
func (s *Scan) Len() int {
	return len(s.Lines)
}

// FailedCount returns the number of lines classified as failed logins.
func (s *Scan) FailedCount() int {
	count := 0
	for _, failed := range s.Failed {
		if failed {
			count++
		}
	}
	return count
}

// TimeRange is the earliest and latest parseable timestamp across all lines,
// failed or not.
type TimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// TimeRange reports the span covered by the lines with a parsed timestamp.
// ok is false when no line carried one.
func (s *Scan) TimeRange() (tr TimeRange, ok bool) {
	for _, ts := range s.Timestamps {
		if ts.IsZero() {
			continue
		}
		if !ok {
			tr.Start, tr.End = ts, ts
			ok = true
			continue
		}
		if ts.Before(tr.Start) {
			tr.Start = ts
		}
		if ts.After(tr.End) {
			tr.End = ts
		}
	}
	return tr, ok
}
