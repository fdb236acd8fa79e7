// Package input provides line sources for the detection engine.
package input

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/awais-ramzan/log-security-analyzer/internal/domain"
)

// FileSource reads a whole log file into an ordered line store.
//
// Decoding is permissive: invalid UTF-8 byte sequences are dropped rather
// than failing the read. A missing or unreadable file is reported as a
// warning and yields an empty store — the engine then has nothing to
// analyze, which is the correct outcome, not an error.
type FileSource struct {
	path string
}

// NewFileSource creates a source for the given path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Name returns the base name of the underlying file.
func (s *FileSource) Name() string {
	return filepath.Base(s.path)
}

// Path returns the full path of the underlying file.
func (s *FileSource) Path() string {
	return s.path
}

// Lines reads the file and returns its trimmed, non-empty lines in order.
// Lines longer than domain.MaxLineLength are truncated.
func (s *FileSource) Lines(ctx context.Context) ([]domain.LogLine, error) {
	file, err := os.Open(s.path)
	if err != nil {
		log.Warn().Err(err).Str("path", s.path).Msg("Cannot open log file, nothing to analyze")
		return nil, nil
	}
	defer file.Close()

	var lines []domain.LogLine

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		raw := strings.TrimSpace(strings.ToValidUTF8(scanner.Text(), ""))
		if raw == "" {
			continue
		}
		if len(raw) > domain.MaxLineLength {
			raw = raw[:domain.MaxLineLength]
		}
		lines = append(lines, domain.LogLine{Index: len(lines), Raw: raw})
	}

	if err := scanner.Err(); err != nil {
		// Keep whatever was read before the failure.
		log.Warn().Err(err).Str("path", s.path).Int("lines", len(lines)).
			Msg("Log file read aborted, analyzing partial content")
	}

	return lines, nil
}
