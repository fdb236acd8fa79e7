package detection

import "github.com/awais-ramzan/log-security-analyzer/internal/domain"

// Default detection thresholds, shared with the config layer.
const (
	DefaultBruteForceThreshold = 3
	DefaultWindowThreshold     = 10
	DefaultWindowMinutes       = 5.0
	DefaultUsernameThreshold   = 3
)

// CountFailuresByAddress counts failed lines per source address. Failed
// lines without an extractable address contribute to the overall failure
// count but to no address.
func CountFailuresByAddress(scan *domain.Scan) map[string]int {
	counts := make(map[string]int)
	for i := range scan.Lines {
		if !scan.Failed[i] || scan.Addresses[i] == "" {
			continue
		}
		counts[scan.Addresses[i]]++
	}
	return counts
}

// ThresholdDetector flags addresses whose total failure count reaches a
// static threshold. No time dimension; emission order is the caller's
// concern.
type ThresholdDetector struct {
	threshold int
}

// NewThresholdDetector creates a detector. threshold <= 0 means the default.
func NewThresholdDetector(threshold int) *ThresholdDetector {
	if threshold <= 0 {
		threshold = DefaultBruteForceThreshold
	}
	return &ThresholdDetector{threshold: threshold}
}

// Detect returns every address with at least threshold failed lines, paired
// with its final count.
func (d *ThresholdDetector) Detect(scan *domain.Scan) map[string]int {
	flagged := make(map[string]int)
	for addr, count := range CountFailuresByAddress(scan) {
		if count >= d.threshold {
			flagged[addr] = count
		}
	}
	return flagged
}
