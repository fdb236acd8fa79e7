package detection

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// addressPattern matches the first dotted-quad in a line. Octet ranges are
// not validated: "999.999.999.999" extracts fine. Addresses are opaque
// grouping keys here, not validated IPv4 — tightening this would silently
// change which lines group together.
var addressPattern = regexp.MustCompile(`\b(\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3})\b`)

// ExtractAddress returns the first dotted-quad substring of line.
// A line with several addresses yields only the first.
func ExtractAddress(line string) (addr string, ok bool) {
	match := addressPattern.FindStringSubmatch(line)
	if match == nil {
		return "", false
	}
	return match[1], true
}

var monthsByAbbrev = map[string]time.Month{
	"Jan": time.January, "Feb": time.February, "Mar": time.March,
	"Apr": time.April, "May": time.May, "Jun": time.June,
	"Jul": time.July, "Aug": time.August, "Sep": time.September,
	"Oct": time.October, "Nov": time.November, "Dec": time.December,
}

// monthFromAbbrev resolves a three-letter month name. Unrecognized
// abbreviations fall back to January instead of failing the whole line.
func monthFromAbbrev(abbrev string) time.Month {
	if m, ok := monthsByAbbrev[abbrev]; ok {
		return m
	}
	return time.January
}

// timestampPattern is one entry in the ordered matcher list tried per line.
// build returns ok=false when a captured group does not parse; the line's
// timestamp is then absent, never a fatal error.
type timestampPattern struct {
	re    *regexp.Regexp
	build func(groups []string, year int) (time.Time, bool)
}

var (
	// Bare syslog style: "Jan 15 10:30:45" — no year.
	syslogPattern = regexp.MustCompile(`(\w{3})\s+(\d{1,2})\s+(\d{2}):(\d{2}):(\d{2})`)
	// Bracketed access-log style: "[15/Jan/2025:10:30:45".
	accessPattern = regexp.MustCompile(`\[(\d{2})/(\w{3})/(\d{4}):(\d{2}):(\d{2}):(\d{2})`)
)

// TimestampExtractor derives a normalized timestamp from a line by trying an
// ordered list of patterns; the first successful one wins. Lines matching the
// yearless syslog format get the extractor's year — a best-effort
// approximation, not authoritative.
type TimestampExtractor struct {
	year     int
	patterns []timestampPattern
}

// NewTimestampExtractor creates an extractor that substitutes year into
// yearless timestamps. year <= 0 means the current calendar year.
func NewTimestampExtractor(year int) *TimestampExtractor {
	if year <= 0 {
		year = time.Now().Year()
	}
	e := &TimestampExtractor{year: year}
	e.patterns = []timestampPattern{
		{re: syslogPattern, build: buildSyslogTime},
		{re: accessPattern, build: buildAccessTime},
	}
	return e
}

// Extract returns the line's normalized timestamp, or ok=false when no
// pattern matches or a matched pattern carries unparseable digits.
func (e *TimestampExtractor) Extract(line string) (ts time.Time, ok bool) {
	for _, p := range e.patterns {
		match := p.re.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		if ts, ok = p.build(match, e.year); ok {
			return ts, true
		}
	}
	return time.Time{}, false
}

func buildSyslogTime(groups []string, year int) (time.Time, bool) {
	month := monthFromAbbrev(groups[1])
	nums, ok := atoiAll(groups[2:6])
	if !ok {
		return time.Time{}, false
	}
	return time.Date(year, month, nums[0], nums[1], nums[2], nums[3], 0, time.UTC), true
}

func buildAccessTime(groups []string, _ int) (time.Time, bool) {
	month := monthFromAbbrev(groups[2])
	nums, ok := atoiAll([]string{groups[1], groups[3], groups[4], groups[5], groups[6]})
	if !ok {
		return time.Time{}, false
	}
	return time.Date(nums[1], month, nums[0], nums[2], nums[3], nums[4], 0, time.UTC), true
}

func atoiAll(groups []string) ([]int, bool) {
	nums := make([]int, len(groups))
	for i, g := range groups {
		n, err := strconv.Atoi(g)
		if err != nil {
			return nil, false
		}
		nums[i] = n
	}
	return nums, true
}

// usernamePatterns is the ordered matcher list for username extraction.
// First match wins; order matters because the broad "user <token>" pattern
// would otherwise shadow the more specific forms below it.
var usernamePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)for\s+(\S+)\s+from`),
	regexp.MustCompile(`(?i)user\s+(\S+)`),
	regexp.MustCompile(`(?i)username[:\s]\s*(\S+)`),
	regexp.MustCompile(`(?i)login[:\s]\s*(\S+)`),
	regexp.MustCompile(`(?i)invalid user\s+(\S+)`),
	regexp.MustCompile(`(?i)failed password for\s+(\S+)`),
}

// usernameStopwords are log vocabulary the patterns capture by accident.
// A token in this set means the pattern matched log prose, not a username,
// and extraction yields absent for the line.
var usernameStopwords = map[string]struct{}{
	"invalid":        {},
	"failed":         {},
	"authentication": {},
	"password":       {},
	"from":           {},
}

// ExtractUsername returns the lower-cased username token from a line, or
// ok=false when no pattern matches or the captured token is a stop word.
func ExtractUsername(line string) (username string, ok bool) {
	for _, p := range usernamePatterns {
		match := p.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		token := strings.ToLower(match[1])
		if _, stop := usernameStopwords[token]; stop {
			return "", false
		}
		return token, true
	}
	return "", false
}
