package detection

import (
	"sync"

	"github.com/awais-ramzan/log-security-analyzer/internal/domain"
)

// Scanner runs the classifier and all field extractors over a line store,
// producing the index-aligned derived arrays the aggregators consume.
type Scanner struct {
	classifier *FailureClassifier
	timestamps *TimestampExtractor
	workers    int
}

// ScannerConfig configures a Scanner.
type ScannerConfig struct {
	Keywords []string // failed-login keywords (default: DefaultFailedLoginKeywords)
	Year     int      // year substituted into yearless timestamps (default: current)
	Workers  int      // goroutines for the extraction pass (default: 4)
}

// NewScanner creates a scanner. Zero-value config fields get defaults.
func NewScanner(config ScannerConfig) *Scanner {
	if config.Workers <= 0 {
		config.Workers = 4
	}
	return &Scanner{
		classifier: NewFailureClassifier(config.Keywords),
		timestamps: NewTimestampExtractor(config.Year),
		workers:    config.Workers,
	}
}

// Scan derives the per-line arrays for the given line store. The work is
// split into contiguous index ranges, one goroutine per range; workers write
// only their own indices, so the pass needs no locking and the result is
// identical to a sequential scan.
func (s *Scanner) Scan(lines []domain.LogLine) *domain.Scan {
	scan := domain.NewScan(lines)
	n := len(lines)
	if n == 0 {
		return scan
	}

	workers := s.workers
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			s.scanRange(scan, start, end)
		}(start, end)
	}
	wg.Wait()

	return scan
}

func (s *Scanner) scanRange(scan *domain.Scan, start, end int) {
	for i := start; i < end; i++ {
		line := scan.Lines[i].Raw

		scan.Failed[i] = s.classifier.Failed(line)

		if addr, ok := ExtractAddress(line); ok {
			scan.Addresses[i] = addr
		}
		if ts, ok := s.timestamps.Extract(line); ok {
			scan.Timestamps[i] = ts
		}
		if username, ok := ExtractUsername(line); ok {
			scan.Usernames[i] = username
		}
	}
}
