package detection

import (
	"sort"
	"time"

	"github.com/awais-ramzan/log-security-analyzer/internal/domain"
)

// WindowDetector flags addresses whose failures burst inside a sliding time
// window. Only failed lines carrying both an address and a parsed timestamp
// count here; lines missing either are excluded from this detector (they may
// still count toward the static threshold).
type WindowDetector struct {
	threshold     int
	windowMinutes float64
}

// NewWindowDetector creates a detector. Non-positive arguments get defaults.
func NewWindowDetector(threshold int, windowMinutes float64) *WindowDetector {
	if threshold <= 0 {
		threshold = DefaultWindowThreshold
	}
	if windowMinutes <= 0 {
		windowMinutes = DefaultWindowMinutes
	}
	return &WindowDetector{threshold: threshold, windowMinutes: windowMinutes}
}

// Detect reports, per address, the first qualifying window: the earliest
// failed event (in ascending timestamp order) whose inclusive forward window
// [t, t+window] contains at least threshold events. First hit wins — this is
// deliberately not the maximum-density window. Events sharing a timestamp
// are all inside each other's window.
func (d *WindowDetector) Detect(scan *domain.Scan) map[string]domain.WindowFinding {
	events := make(map[string][]time.Time)
	for i := range scan.Lines {
		if !scan.Failed[i] || scan.Addresses[i] == "" || scan.Timestamps[i].IsZero() {
			continue
		}
		addr := scan.Addresses[i]
		events[addr] = append(events[addr], scan.Timestamps[i])
	}

	window := time.Duration(d.windowMinutes * float64(time.Minute))
	findings := make(map[string]domain.WindowFinding)

	for addr, times := range events {
		// A group below the threshold cannot satisfy any window.
		if len(times) < d.threshold {
			continue
		}

		sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })

		if finding, ok := d.firstWindow(times, window); ok {
			findings[addr] = finding
		}
	}

	return findings
}

// firstWindow is a two-pointer scan over sorted timestamps. The right bound
// only moves forward because window ends are non-decreasing, so the result
// matches the naive per-event rescan at O(n) instead of O(n²).
func (d *WindowDetector) firstWindow(times []time.Time, window time.Duration) (domain.WindowFinding, bool) {
	j := 0
	for i := range times {
		end := times[i].Add(window)
		if j < i {
			j = i
		}
		for j < len(times) && !times[j].After(end) {
			j++
		}
		// times[i..j-1] all fall in the inclusive window [times[i], end].
		if count := j - i; count >= d.threshold {
			return domain.WindowFinding{
				Count:         count,
				WindowStart:   times[i],
				WindowMinutes: d.windowMinutes,
			}, true
		}
	}
	return domain.WindowFinding{}, false
}
