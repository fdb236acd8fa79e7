package domain

import "time"

// WindowFinding records the first qualifying brute-force window for an
// address: the earliest failed event whose forward window of WindowMinutes
// contains at least the configured number of failed events.
type WindowFinding struct {
	Count         int       `json:"count"`
	WindowStart   time.Time `json:"window_start"`
	WindowMinutes float64   `json:"window_minutes"`
}

// UsernameFinding records username-enumeration activity from one address.
// Usernames is deduplicated and sorted ascending; UniqueUsernames equals
// len(Usernames).
type UsernameFinding struct {
	UniqueUsernames int      `json:"unique_usernames"`
	Usernames       []string `json:"usernames"`
}

// Report is everything a single analysis run hands to the output boundary.
// The three detector maps are keyed by source address; an address appears
// only when it crossed the relevant threshold. FailuresByAddress holds the
// unthresholded per-address failure counts.
type Report struct {
	LogFile     string    `json:"log_file"`
	GeneratedAt time.Time `json:"generated_at"`

	TotalLines   int `json:"total_lines"`
	FailedLogins int `json:"failed_logins"`

	FailuresByAddress map[string]int             `json:"failures_by_address"`
	BruteForce        map[string]int             `json:"brute_force"`
	WindowAttacks     map[string]WindowFinding   `json:"window_attacks"`
	UsernameEnum      map[string]UsernameFinding `json:"username_enum"`

	TimeRange *TimeRange `json:"time_range,omitempty"`
}

// Clean reports whether the run produced no flagged addresses at all.
func (r *Report) Clean() bool {
	return len(r.BruteForce) == 0 && len(r.WindowAttacks) == 0 && len(r.UsernameEnum) == 0
}
