package detection

import (
	"sort"

	"github.com/awais-ramzan/log-security-analyzer/internal/domain"
)

// UsernameDetector flags addresses that tried many distinct usernames, the
// classic enumeration/spraying signal. Only failed lines with both an
// address and an extracted username participate; extraction misses are
// silently excluded.
type UsernameDetector struct {
	threshold int
}

// NewUsernameDetector creates a detector. threshold <= 0 means the default.
func NewUsernameDetector(threshold int) *UsernameDetector {
	if threshold <= 0 {
		threshold = DefaultUsernameThreshold
	}
	return &UsernameDetector{threshold: threshold}
}

// Detect returns every address whose distinct-username count reaches the
// threshold. Usernames in each finding are deduplicated and sorted
// ascending; UniqueUsernames always equals len(Usernames).
func (d *UsernameDetector) Detect(scan *domain.Scan) map[string]domain.UsernameFinding {
	seen := make(map[string]map[string]struct{})
	for i := range scan.Lines {
		if !scan.Failed[i] || scan.Addresses[i] == "" || scan.Usernames[i] == "" {
			continue
		}
		addr := scan.Addresses[i]
		if seen[addr] == nil {
			seen[addr] = make(map[string]struct{})
		}
		seen[addr][scan.Usernames[i]] = struct{}{}
	}

	findings := make(map[string]domain.UsernameFinding)
	for addr, usernames := range seen {
		if len(usernames) < d.threshold {
			continue
		}
		sorted := make([]string, 0, len(usernames))
		for username := range usernames {
			sorted = append(sorted, username)
		}
		sort.Strings(sorted)
		findings[addr] = domain.UsernameFinding{
			UniqueUsernames: len(sorted),
			Usernames:       sorted,
		}
	}
	return findings
}
