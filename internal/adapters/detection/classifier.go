// Package detection implements the detection engine: the failure classifier,
// the per-line field extractors, the scanner that materializes the derived
// arrays, and the three aggregators that turn a scan into findings.
//
// Everything in this package is a pure function over an immutable
// domain.Scan. Detectors share no state and may run concurrently.
package detection

import (
	"github.com/awais-ramzan/log-security-analyzer/pkg/ahocorasick"
)

// DefaultFailedLoginKeywords is the keyword set used when the configuration
// supplies none. The config layer falls back to this same slice, so the
// default lives in exactly one place.
var DefaultFailedLoginKeywords = []string{
	"failed password",
	"invalid user",
	"authentication failure",
	"401",
	"403",
	"unauthorized",
}

// FailureClassifier marks a line as a failed-authentication event when any
// configured keyword occurs anywhere in it, case-insensitively. Substring
// containment only: no word boundaries, so "4010" matches the "401" keyword.
// That permissiveness is deliberate and relied on by callers.
type FailureClassifier struct {
	matcher  *ahocorasick.Matcher
	keywords []string
}

// NewFailureClassifier builds a classifier for the given keyword set.
// An empty set is a configuration error the config layer rejects before it
// gets here; if one slips through anyway the defaults are used so the
// classifier never silently matches nothing.
func NewFailureClassifier(keywords []string) *FailureClassifier {
	if len(keywords) == 0 {
		keywords = DefaultFailedLoginKeywords
	}
	return &FailureClassifier{
		matcher:  ahocorasick.New(keywords),
		keywords: keywords,
	}
}

// Failed reports whether line contains at least one configured keyword.
func (c *FailureClassifier) Failed(line string) bool {
	return c.matcher.Match(line)
}

// Keywords returns the keyword set the classifier was built with.
func (c *FailureClassifier) Keywords() []string {
	return c.keywords
}
