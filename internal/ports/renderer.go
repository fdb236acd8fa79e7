package ports

import "github.com/awais-ramzan/log-security-analyzer/internal/domain"

// ReportRenderer turns a finished report into its output representation.
//
// Implementations:
//   - output.TextRenderer: styled sectioned text for terminals
//   - output.JSONRenderer: pretty JSON for machine consumption
//
// Renderers own all presentation ordering (descending-by-count sections);
// the detector maps themselves are unordered.
type ReportRenderer interface {
	Render(report *domain.Report) (string, error)
}
