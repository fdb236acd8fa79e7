// Package ports defines the interfaces between the detection engine and its
// replaceable collaborators: where lines come from and where reports go.
package ports

import (
	"context"

	"github.com/awais-ramzan/log-security-analyzer/internal/domain"
)

// LineSource supplies the ordered line store for one analysis run.
//
// Contract:
//   - Lines are trimmed and non-empty, in file order, decoded permissively
//     (invalid byte sequences dropped, never a decode failure).
//   - A missing or unreadable source yields an empty slice and a nil error;
//     the engine treats an empty store as "nothing to analyze".
type LineSource interface {
	Lines(ctx context.Context) ([]domain.LogLine, error)

	// Name identifies the source for the report header and logging.
	Name() string
}
